package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"finance-backend-go/internal/config"
	"finance-backend-go/internal/database"
	httpserver "finance-backend-go/internal/http"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	r := httpserver.NewServer(cfg, db, logger)
	logger.Infof("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}
}
