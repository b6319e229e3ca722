package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finance-backend-go/internal/models"
)

func applyTransaction(tx *models.Transaction, in map[string]any, errs fieldErrors) {
	if v, ok := in["amount"]; ok {
		if d, err := decimalField(v); err != nil {
			errs["amount"] = "a valid number is required"
		} else {
			tx.Amount = d
		}
	}
	if v, ok := in["type"]; ok {
		s, isStr := v.(string)
		if !isStr || !models.ValidTransactionType(s) {
			errs["type"] = "must be one of INCOME, EXPENSE, TRANSFER"
		} else {
			tx.Type = s
		}
	}
	if v, ok := in["category"]; ok {
		s, isStr := v.(string)
		switch {
		case !isStr || strings.TrimSpace(s) == "":
			errs["category"] = errBlank
		case len(s) > 50:
			errs["category"] = "must be at most 50 characters"
		default:
			tx.Category = s
		}
	}
	if v, ok := in["date"]; ok {
		if t, err := timeField(v); err != nil {
			errs["date"] = "a valid ISO 8601 timestamp is required"
		} else {
			tx.Date = t.UTC()
		}
	}
	if v, ok := in["note"]; ok {
		switch s := v.(type) {
		case string:
			tx.Note = s
		case nil:
			tx.Note = ""
		default:
			errs["note"] = "must be a string"
		}
	}
}

// listTransactions returns the caller's transactions ordered by event date,
// newest first, regardless of insertion order. Optional query filters only
// ever narrow the caller's own rows.
func (s *Server) listTransactions(c *gin.Context) {
	userID := currentUserID(c)

	query := s.db.Where("user_id = ?", userID).Order("date desc, created_at desc")

	if t := strings.TrimSpace(c.Query("type")); t != "" {
		query = query.Where("type = ?", strings.ToUpper(t))
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		query = query.Where("LOWER(category) = LOWER(?)", cat)
	}
	if minStr := c.Query("min_amount"); minStr != "" {
		if min, err := decimal.NewFromString(minStr); err == nil {
			query = query.Where("amount >= ?", min)
		}
	}
	if maxStr := c.Query("max_amount"); maxStr != "" {
		if max, err := decimal.NewFromString(maxStr); err == nil {
			query = query.Where("amount <= ?", max)
		}
	}
	if start := c.Query("start_date"); start != "" {
		if t, err := time.Parse(time.RFC3339, start); err == nil {
			query = query.Where("date >= ?", t)
		}
	}
	if end := c.Query("end_date"); end != "" {
		if t, err := time.Parse(time.RFC3339, end); err == nil {
			query = query.Where("date <= ?", t)
		}
	}

	transactions := []models.Transaction{}
	if err := query.Find(&transactions).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	c.JSON(200, transactions)
}

func (s *Server) createTransaction(c *gin.Context) {
	userID := currentUserID(c)

	in, ok := decodeBody(c)
	if !ok {
		return
	}

	errs := fieldErrors{}
	errs.require(in, "amount", "type", "category", "date")

	var tx models.Transaction
	applyTransaction(&tx, in, errs)
	if len(errs) > 0 {
		c.JSON(400, gin.H{"errors": errs})
		return
	}

	tx.UserID = userID

	if err := s.db.Create(&tx).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	c.JSON(201, tx)
}

func (s *Server) getTransaction(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var tx models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		c.JSON(404, gin.H{"error": "not_found"})
		return
	}

	c.JSON(200, tx)
}

func (s *Server) updateTransaction(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var tx models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		c.JSON(404, gin.H{"error": "not_found"})
		return
	}

	in, ok := decodeBody(c)
	if !ok {
		return
	}

	errs := fieldErrors{}
	applyTransaction(&tx, in, errs)
	if len(errs) > 0 {
		c.JSON(400, gin.H{"errors": errs})
		return
	}

	if err := s.db.Save(&tx).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	c.JSON(200, tx)
}

func (s *Server) deleteTransaction(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var tx models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		c.JSON(404, gin.H{"error": "not_found"})
		return
	}

	if err := s.db.Delete(&tx).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	c.JSON(200, gin.H{"message": "transaction deleted"})
}
