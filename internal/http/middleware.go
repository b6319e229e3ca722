package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"finance-backend-go/internal/auth"
	"finance-backend-go/internal/models"
)

// AuthMiddleware resolves the bearer access token to exactly one user and
// stores it in the gin context. Anything short of that aborts with 401
// before any data access happens.
func AuthMiddleware(tokens *auth.Manager, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "authorization_header_missing"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(401, gin.H{"error": "authorization_header_invalid"})
			return
		}

		userID, err := tokens.VerifyAccess(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "invalid_token"})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "invalid_token_user_not_found"})
			return
		}

		c.Set("user", &user)
		c.Set("userID", user.ID)

		c.Next()
	}
}

func currentUserID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}
