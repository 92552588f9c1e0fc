package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"gymadmin/internal/config"
	"gymadmin/internal/database"
	"gymadmin/internal/repository"
)

// Deletes expired refresh tokens and tokens revoked more than 30 days ago.
// Meant to run from cron.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	tokens := repository.NewRefreshTokenRepository(db)

	deleted, err := tokens.DeleteStale(context.Background(), time.Now().AddDate(0, 0, -30))
	if err != nil {
		log.Fatalf("cleanup refresh_tokens failed: %v", err)
	}

	log.Printf("auth cleanup completed: refresh_tokens=%d", deleted)
}
