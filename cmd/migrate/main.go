package main

import (
	"context" // Migration deadline
	"time"    // Timeout

	"blood_donation/internal/config" // Custom import path (Config)
	"blood_donation/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logging
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	client, err := db.Connect(ctx, cfg)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}

	err = db.Migrate(ctx, client.Database(cfg.DBName))
	_ = client.Disconnect(context.Background()) // Fatalf skips deferred calls
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Non-zero exit for scripts
	}
}
