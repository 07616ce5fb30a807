// Command seed creates the bootstrap admin account if it does not
// exist yet, so a fresh deployment has a moderation login.
package main

import (
	"errors"
	"fmt"
	"os"

	"social-platform/config"
	"social-platform/internal/apperr"
	"social-platform/internal/model"
	"social-platform/internal/repository"
	dbPkg "social-platform/pkg/db"
	"social-platform/pkg/password"
)

func main() {
	cfg := config.LoadConfig()

	db, err := dbPkg.InitDB(cfg.Database)
	if err != nil {
		fmt.Fprintln(os.Stderr, "database connect failed:", err)
		os.Exit(1)
	}
	defer dbPkg.CloseDB()

	if err := dbPkg.AutoMigrate(
		&model.User{}, &model.Post{}, &model.Like{}, &model.Comment{}, &model.Message{},
	); err != nil {
		fmt.Fprintln(os.Stderr, "migration failed:", err)
		os.Exit(1)
	}

	email := getenv("ADMIN_EMAIL", "admin@social.local")
	plain := getenv("ADMIN_PASSWORD", "admin123")

	repo := repository.NewUserRepository(db)
	if _, err := repo.GetByEmail(email); err == nil {
		fmt.Println("admin already exists:", email)
		return
	} else if !errors.Is(err, apperr.ErrNotFound) {
		fmt.Fprintln(os.Stderr, "lookup failed:", err)
		os.Exit(1)
	}

	hash, err := password.Hash(plain)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash failed:", err)
		os.Exit(1)
	}

	admin := &model.User{
		FullName:     "Administrator",
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      true,
		IsVerified:   true,
	}
	if err := repo.Create(admin); err != nil {
		fmt.Fprintln(os.Stderr, "create failed:", err)
		os.Exit(1)
	}

	fmt.Println("admin created:", email)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
