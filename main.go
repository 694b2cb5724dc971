// Package main is the entry point for the restaurant API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"restaurant/src/app/server"
	"restaurant/src/infra/config"
	"restaurant/src/infra/db"
	"restaurant/src/infra/logger"
	"restaurant/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	ctx := context.Background()

	// Initialize database connection
	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	// The listener must not bind until the schema exists
	if err := pg.Initialize(ctx); err != nil {
		log.Error("failed to initialize database", "error", err)
		return fmt.Errorf("initialize database: %w", err)
	}

	// Initialize repositories
	restaurantRepo := repo.NewPostgresRepository(pg, logger.WithComponent(log, "repo"))

	// Create and run HTTP server
	srv := server.New(cfg, log, restaurantRepo)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
