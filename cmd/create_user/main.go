package main

import (
	"context"
	"flag"
	"log"
	"os"

	"taskboard/internal/db"
	"taskboard/internal/repository"
	"taskboard/internal/service"
)

// Creates a user directly against the database, for local development.
// Expects DATABASE_URL in the environment.
func main() {
	email := flag.String("email", "test@example.com", "user email")
	password := flag.String("password", "secret1", "user password")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	repo := repository.NewUserRepository(pool)
	ctx := context.Background()

	hash, err := service.HashPassword(*password)
	if err != nil {
		log.Fatalf("hash password failed: %v", err)
	}

	u, err := repo.Create(ctx, *email, hash)
	if err != nil {
		log.Fatalf("create user failed: %v", err)
	}

	log.Printf("user created id=%d email=%s\n", u.ID, u.Email)
}
