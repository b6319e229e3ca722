package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"finance-backend-go/internal/config"
	"finance-backend-go/internal/database"
	"finance-backend-go/internal/models"
)

// adduser is the administrative path for managing users directly against
// the store: the API surface itself never deletes a user, and registration
// is the only API path that creates one. Deleting here cascades to the
// user's accounts, transactions, and notes.
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	username := fs.String("user", "", "Username")
	email := fs.String("email", "", "Email (optional)")
	password := fs.String("password", "", "Password")
	del := fs.Bool("delete", false, "Delete the user instead of creating it")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" {
		fmt.Fprintln(stdout, "Usage: adduser -user <username> [-email <email>] -password <password> | -user <username> -delete")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flag: user")
	}

	_ = godotenv.Load(".env")
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if *del {
		return deleteUser(db, *username, stdout)
	}
	return createUser(db, *username, *email, *password, stdout)
}

func createUser(db *gorm.DB, username, email, password string, stdout io.Writer) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return fmt.Errorf("user %s already exists", username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{Username: username, Email: email, PasswordHash: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(stdout, "User %s created successfully with ID %d\n", user.Username, user.ID)
	return nil
}

func deleteUser(db *gorm.DB, username string, stdout io.Writer) error {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return fmt.Errorf("user %s not found", username)
	}

	if err := db.Delete(&user).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	fmt.Fprintf(stdout, "User %s deleted along with all owned rows\n", username)
	return nil
}
