package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found, using environment variables: %v", err)
	}

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		log.Fatal("DATABASE_URL is required")
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}
	if name == "" {
		name = "Admin"
	}

	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	// Check if admin already exists
	var existingID uuid.UUID
	err = pool.QueryRow(ctx, "SELECT id FROM admin_users WHERE email = $1", email).Scan(&existingID)
	if err == nil {
		log.Printf("Admin with email %s already exists (ID: %s)", email, existingID)
		return
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// Insert admin
	var userID uuid.UUID
	err = pool.QueryRow(ctx, `
		INSERT INTO admin_users (email, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING id
	`, email, string(hashedPassword), name).Scan(&userID)

	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Printf("✅ Admin user created successfully!\n")
	fmt.Printf("   ID: %s\n", userID)
	fmt.Printf("   Email: %s\n", email)
	fmt.Printf("   Name: %s\n", name)
}
