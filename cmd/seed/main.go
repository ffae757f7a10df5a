package main

import (
	"context"
	"log"

	"tourguide/internal/auth"
	"tourguide/internal/config"
	"tourguide/internal/db"
	"tourguide/internal/model"
	"tourguide/internal/repository"
)

// Seeds the bootstrap admin account from ADMIN_* environment variables.
// Idempotent: an existing admin username is left untouched.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD must be set to seed the admin account")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)

	exists, err := users.ExistsByUsername(ctx, cfg.AdminUsername)
	if err != nil {
		log.Fatalf("Failed to check admin account: %v", err)
	}
	if exists {
		log.Printf("Admin account %q already exists, nothing to do", cfg.AdminUsername)
		return
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &model.User{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Roles:        model.Roles{model.RoleAdmin},
		Enabled:      true,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	log.Printf("Seeded admin account %q (%s)", admin.Username, admin.Email)
}
