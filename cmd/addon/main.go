package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-addon-kit/internal/config"
	handler "github.com/MKhiriev/go-addon-kit/internal/handler/http"
	"github.com/MKhiriev/go-addon-kit/internal/logger"
	"github.com/MKhiriev/go-addon-kit/internal/server"
	"github.com/MKhiriev/go-addon-kit/internal/store"
	"github.com/MKhiriev/go-addon-kit/internal/supervisor"
	"github.com/MKhiriev/go-addon-kit/internal/workers"
	"github.com/MKhiriev/go-addon-kit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("addon", config.LevelInfo)
	cfg, err := config.Load(config.DefaultOptionsPaths...)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// recreate at the configured verbosity
	log = logger.NewLogger("addon", cfg.LogLevel)
	log.Info().
		Str("log_level", cfg.LogLevel.String()).
		Int("port", cfg.Port).
		Bool("database", cfg.Database.DSN != "").
		Msg("configuration loaded")

	ctx, stop := server.RunContext()
	defer stop()

	supervisorClient := supervisor.NewClient(cfg.Supervisor, log)
	if !supervisorClient.Ping(ctx) {
		log.Warn().Msg("home assistant is not reachable, continuing anyway")
	}

	var events store.EventStore
	if cfg.Database.DSN != "" {
		db, err := store.NewConnect(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to database")
		}
		defer db.Close()

		if err = db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error migrating database")
		}

		events = store.NewEventRepository(db, log)
		if _, err = events.RecordEvent(ctx, models.Event{Kind: models.EventStartup, Message: "add-on started"}); err != nil {
			log.Warn().Err(err).Msg("error recording startup event")
		}
	}

	heartbeat := workers.NewHeartbeat(supervisorClient, events, cfg.HeartbeatInterval, logger.NewLogger("worker", cfg.LogLevel))
	workers.NewWorkers(heartbeat).Run(ctx)

	handlers := handler.NewHandler(cfg, supervisorClient, events, buildVersion, log)
	srv := server.NewServer(handlers.Init(), cfg, log)

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("error running server")
	}

	if events != nil {
		// ctx is already cancelled at this point
		if _, err = events.RecordEvent(context.Background(), models.Event{Kind: models.EventShutdown, Message: "add-on stopped"}); err != nil {
			log.Warn().Err(err).Msg("error recording shutdown event")
		}
	}

	log.Info().Msg("add-on stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
