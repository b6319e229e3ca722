package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"finance-backend-go/internal/models"
)

// applyAccount copies writable payload fields onto acct, collecting
// per-field validation failures. Owner and timestamps are never touched.
func applyAccount(acct *models.BankAccount, in map[string]any, errs fieldErrors) {
	if v, ok := in["name"]; ok {
		s, isStr := v.(string)
		switch {
		case !isStr || strings.TrimSpace(s) == "":
			errs["name"] = errBlank
		case len(s) > 100:
			errs["name"] = "must be at most 100 characters"
		default:
			acct.Name = s
		}
	}
	if v, ok := in["type"]; ok {
		s, isStr := v.(string)
		switch {
		case !isStr || strings.TrimSpace(s) == "":
			errs["type"] = errBlank
		case len(s) > 50:
			errs["type"] = "must be at most 50 characters"
		default:
			acct.Type = s
		}
	}
	if v, ok := in["balance"]; ok {
		if d, err := decimalField(v); err != nil {
			errs["balance"] = "a valid number is required"
		} else {
			acct.Balance = d
		}
	}
}

func (s *Server) listAccounts(c *gin.Context) {
	userID := currentUserID(c)

	accounts := []models.BankAccount{}
	if err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&accounts).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	c.JSON(200, accounts)
}

func (s *Server) createAccount(c *gin.Context) {
	userID := currentUserID(c)

	in, ok := decodeBody(c)
	if !ok {
		return
	}

	errs := fieldErrors{}
	errs.require(in, "name", "type")

	var acct models.BankAccount
	applyAccount(&acct, in, errs)
	if len(errs) > 0 {
		c.JSON(400, gin.H{"errors": errs})
		return
	}

	acct.UserID = userID

	if err := s.db.Create(&acct).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	c.JSON(201, acct)
}

func (s *Server) getAccount(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var acct models.BankAccount
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&acct).Error; err != nil {
		c.JSON(404, gin.H{"error": "not_found"})
		return
	}

	c.JSON(200, acct)
}

func (s *Server) updateAccount(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var acct models.BankAccount
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&acct).Error; err != nil {
		c.JSON(404, gin.H{"error": "not_found"})
		return
	}

	in, ok := decodeBody(c)
	if !ok {
		return
	}

	errs := fieldErrors{}
	applyAccount(&acct, in, errs)
	if len(errs) > 0 {
		c.JSON(400, gin.H{"errors": errs})
		return
	}

	if err := s.db.Save(&acct).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	c.JSON(200, acct)
}

func (s *Server) deleteAccount(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var acct models.BankAccount
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&acct).Error; err != nil {
		c.JSON(404, gin.H{"error": "not_found"})
		return
	}

	if err := s.db.Delete(&acct).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	c.JSON(200, gin.H{"message": "account deleted"})
}
