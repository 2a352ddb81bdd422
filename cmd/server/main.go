package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"platewatch/internal/config"
	"platewatch/internal/db"
	"platewatch/internal/metrics"
	"platewatch/internal/server"
	"platewatch/internal/storage"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	if cfg.IsDev() {
		if err := database.SeedDevRestaurants(ctx); err != nil {
			log.Printf("Warning: failed to seed dev restaurants: %v", err)
		}
	}

	// Register prometheus collectors
	metrics.Init(database)

	// Upload storage
	store := storage.New(cfg.UploadDir)

	srv := server.New(cfg)
	srv.RegisterRoutes(database, store)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
