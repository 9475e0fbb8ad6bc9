package main

import (
	"context"
	"log"
	"os"

	"taskboard/internal/db"
)

// Applies the embedded schema migrations without starting the server.
// Expects DATABASE_URL in the environment.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	if err := db.RunMigrations(context.Background(), dsn); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	log.Println("migrations applied")
}
