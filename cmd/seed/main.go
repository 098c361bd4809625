package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the default admin account so the panel is reachable on a fresh
// database. Idempotent: an existing account with the same email is left
// alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	email := getEnv("ADMIN_EMAIL", "admin@example.com")
	password := getEnv("ADMIN_PASSWORD", "admin123")
	name := getEnv("ADMIN_NAME", "Admin User")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Println("Error hashing password:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(db)

	var created user.User
	var alreadyExists bool

	// Check and insert in one transaction so two concurrent seed runs
	// cannot both create the account.
	err = postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := userRepo.GetByEmail(txCtx, email); err == nil {
			alreadyExists = true
			return nil
		} else if !errors.Is(err, user.ErrUserNotFound) {
			return err
		}

		var createErr error
		created, createErr = userRepo.Create(txCtx, user.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         user.RoleAdmin,
		})
		return createErr
	})
	if err != nil {
		fmt.Println("Error creating admin user:", err)
		os.Exit(1)
	}
	if alreadyExists {
		fmt.Println("Admin user already exists")
		return
	}

	fmt.Println("Admin user created successfully")
	fmt.Println("Email:", created.Email)
	fmt.Println("IMPORTANT: Please change this password after first login!")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
