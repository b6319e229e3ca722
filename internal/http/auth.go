package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"finance-backend-go/internal/models"
)

// POST /api/auth/register/
func (s *Server) register(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": "invalid_json"})
		return
	}

	errs := fieldErrors{}
	if strings.TrimSpace(input.Username) == "" {
		errs["username"] = errRequired
	} else if len(input.Username) > 150 {
		errs["username"] = "must be at most 150 characters"
	}
	if input.Password == "" {
		errs["password"] = errRequired
	} else if len(input.Password) < 8 {
		errs["password"] = "must be at least 8 characters"
	}
	if len(errs) > 0 {
		c.JSON(400, gin.H{"errors": errs})
		return
	}

	var existing models.User
	if err := s.db.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		c.JSON(409, gin.H{"error": "username_taken"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(500, gin.H{"error": "encryption_failed"})
		return
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&user).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	s.log.WithField("username", user.Username).Info("user registered")
	c.JSON(201, &user)
}

// POST /api/auth/login/
func (s *Server) login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": "invalid_json"})
		return
	}

	// A missing user and a wrong password are indistinguishable.
	var user models.User
	if err := s.db.Where("username = ?", input.Username).First(&user).Error; err != nil {
		c.JSON(401, gin.H{"error": "invalid_credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(401, gin.H{"error": "invalid_credentials"})
		return
	}

	access, refresh, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		c.JSON(500, gin.H{"error": "token_generation_failed"})
		return
	}

	s.log.WithField("username", user.Username).Info("user logged in")
	c.JSON(200, gin.H{"access": access, "refresh": refresh})
}

// POST /api/auth/refresh/
func (s *Server) refresh(c *gin.Context) {
	var input struct {
		Refresh string `json:"refresh"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Refresh == "" {
		c.JSON(400, gin.H{"error": "invalid_json"})
		return
	}

	userID, err := s.tokens.VerifyRefresh(input.Refresh)
	if err != nil {
		c.JSON(401, gin.H{"error": "invalid_token"})
		return
	}

	access, err := s.tokens.IssueAccess(userID)
	if err != nil {
		c.JSON(500, gin.H{"error": "token_generation_failed"})
		return
	}

	c.JSON(200, gin.H{"access": access})
}
