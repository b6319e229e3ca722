package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is loaded once at startup and treated as immutable for the
// process lifetime.
type Config struct {
	Port         string
	AllowOrigins string
	LogLevel     string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() *Config {
	return &Config{
		Port:         getenv("PORT", "8080"),
		AllowOrigins: getenv("ALLOW_ORIGINS", "*"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		DBHost:       getenv("DB_HOST", "localhost"),
		DBPort:       getenv("DB_PORT", "5432"),
		DBUser:       getenv("DB_USER", "finance"),
		DBPassword:   getenv("DB_PASSWORD", "finance"),
		DBName:       getenv("DB_NAME", "finance"),
		DBSSLMode:    getenv("DB_SSLMODE", "disable"),
		JWTSecret:    getenv("JWT_SECRET", "dev-secret"),
		AccessTTL:    time.Duration(atoi("ACCESS_TOKEN_MINUTES", 30)) * time.Minute,
		RefreshTTL:   time.Duration(atoi("REFRESH_TOKEN_HOURS", 24*7)) * time.Hour,
	}
}

// DatabaseDSN builds the postgres connection URL.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}
