package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"finance-backend-go/internal/auth"
	"finance-backend-go/internal/config"
)

type Server struct {
	cfg    *config.Config
	db     *gorm.DB
	tokens *auth.Manager
	log    *logrus.Logger
}

func NewServer(cfg *config.Config, db *gorm.DB, log *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors(cfg))
	r.Use(requestLog(log))

	s := &Server{
		cfg:    cfg,
		db:     db,
		tokens: auth.NewManager(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL),
		log:    log,
	}

	// Auth: registration and token endpoints are the only unauthenticated surface.
	r.POST("/api/auth/register/", s.register)
	r.POST("/api/auth/login/", s.login)
	r.POST("/api/auth/refresh/", s.refresh)

	authorized := r.Group("/api")
	authorized.Use(AuthMiddleware(s.tokens, db))
	{
		authorized.GET("/accounts/", s.listAccounts)
		authorized.POST("/accounts/", s.createAccount)
		authorized.GET("/accounts/:id/", s.getAccount)
		authorized.PUT("/accounts/:id/", s.updateAccount)
		authorized.PATCH("/accounts/:id/", s.updateAccount)
		authorized.DELETE("/accounts/:id/", s.deleteAccount)

		authorized.GET("/transactions/", s.listTransactions)
		authorized.POST("/transactions/", s.createTransaction)
		authorized.GET("/transactions/:id/", s.getTransaction)
		authorized.PUT("/transactions/:id/", s.updateTransaction)
		authorized.PATCH("/transactions/:id/", s.updateTransaction)
		authorized.DELETE("/transactions/:id/", s.deleteTransaction)

		authorized.GET("/notes/", s.listNotes)
		authorized.POST("/notes/", s.createNote)
		authorized.GET("/notes/:id/", s.getNote)
		authorized.PUT("/notes/:id/", s.updateNote)
		authorized.PATCH("/notes/:id/", s.updateNote)
		authorized.DELETE("/notes/:id/", s.deleteNote)
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}

func cors(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.AllowOrigins)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, PUT, PATCH, DELETE, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func requestLog(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("request")
	}
}
