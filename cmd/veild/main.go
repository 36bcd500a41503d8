package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/IoTIVP/data-veil/adapters/api"
	"github.com/IoTIVP/data-veil/adapters/postgres"
	"github.com/IoTIVP/data-veil/adapters/profiles"
	"github.com/IoTIVP/data-veil/adapters/registry"
	"github.com/IoTIVP/data-veil/adapters/rng"
	"github.com/IoTIVP/data-veil/app"
	"github.com/IoTIVP/data-veil/internal"
	"github.com/IoTIVP/data-veil/internal/config"
	"github.com/IoTIVP/data-veil/internal/testkit"
	"github.com/IoTIVP/data-veil/ports"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	logger := internal.NewLogger(internal.ParseLevel(cfg.Veil.LogLevel))

	source := rng.NewSource()
	if cfg.Veil.Seed != nil {
		applied := source.Reseed(cfg.Veil.Seed)
		logger.Info("shared generator seeded with %d", applied)
	}

	service := app.NewVeilService(
		registry.NewRegistry(),
		profiles.NewResolver(cfg.Veil.ProfilesFile, logger),
		source,
		initRecorder(cfg, logger),
		logger,
		cfg.Veil.DefaultProfile,
	)

	server := api.NewServer(service, logger)
	if err := server.Start(cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// initRecorder connects the Postgres audit store when DATABASE_URL is set and
// falls back to in-memory auditing otherwise.
func initRecorder(cfg *config.Config, logger *internal.Logger) ports.RunRecorder {
	if cfg.Database.URL == "" {
		logger.Info("DATABASE_URL not set, recording veil runs in memory")
		return testkit.NewInMemoryRecorder()
	}

	db, err := postgres.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("Failed to prepare audit schema: %v", err)
	}

	logger.Info("recording veil runs to postgres")
	return postgres.NewRunRepository(db)
}
