package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"finance-backend-go/internal/config"
	"finance-backend-go/internal/models"
)

// Connect opens the postgres handle described by cfg. The handle is the
// only shared mutable resource; it is passed explicitly to whoever needs it.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseDSN()), &gorm.Config{})
}

// Migrate creates or updates the schema for every entity, including the
// cascade foreign keys from owned rows to users.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.BankAccount{},
		&models.Transaction{},
		&models.Note{},
	)
}
