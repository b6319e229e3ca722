package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"finance-backend-go/internal/models"
)

func applyNote(note *models.Note, in map[string]any, errs fieldErrors) {
	if v, ok := in["text"]; ok {
		s, isStr := v.(string)
		if !isStr || strings.TrimSpace(s) == "" {
			errs["text"] = errBlank
		} else {
			note.Text = s
		}
	}
	if v, ok := in["date"]; ok {
		if d, err := dateField(v); err != nil {
			errs["date"] = "a valid date in YYYY-MM-DD format is required"
		} else {
			note.Date = d
		}
	}
	if v, ok := in["frequency"]; ok {
		s, isStr := v.(string)
		if !isStr || !models.ValidFrequency(s) {
			errs["frequency"] = "must be one of daily, weekly, monthly, yearly"
		} else {
			note.Frequency = s
		}
	}
	if v, ok := in["completed"]; ok {
		b, isBool := v.(bool)
		if !isBool {
			errs["completed"] = "must be a boolean"
		} else {
			note.Completed = b
		}
	}
}

func (s *Server) listNotes(c *gin.Context) {
	userID := currentUserID(c)

	notes := []models.Note{}
	if err := s.db.Where("user_id = ?", userID).Order("date desc, created_at desc").Find(&notes).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	c.JSON(200, notes)
}

func (s *Server) createNote(c *gin.Context) {
	userID := currentUserID(c)

	in, ok := decodeBody(c)
	if !ok {
		return
	}

	errs := fieldErrors{}
	errs.require(in, "text", "date")

	var note models.Note
	applyNote(&note, in, errs)
	if len(errs) > 0 {
		c.JSON(400, gin.H{"errors": errs})
		return
	}

	note.UserID = userID
	if note.Frequency == "" {
		note.Frequency = models.FrequencyMonthly
	}

	if err := s.db.Create(&note).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	c.JSON(201, note)
}

func (s *Server) getNote(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var note models.Note
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&note).Error; err != nil {
		c.JSON(404, gin.H{"error": "not_found"})
		return
	}

	c.JSON(200, note)
}

func (s *Server) updateNote(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var note models.Note
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&note).Error; err != nil {
		c.JSON(404, gin.H{"error": "not_found"})
		return
	}

	in, ok := decodeBody(c)
	if !ok {
		return
	}

	errs := fieldErrors{}
	applyNote(&note, in, errs)
	if len(errs) > 0 {
		c.JSON(400, gin.H{"errors": errs})
		return
	}

	if err := s.db.Save(&note).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	c.JSON(200, note)
}

func (s *Server) deleteNote(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var note models.Note
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&note).Error; err != nil {
		c.JSON(404, gin.H{"error": "not_found"})
		return
	}

	if err := s.db.Delete(&note).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	c.JSON(200, gin.H{"message": "note deleted"})
}
