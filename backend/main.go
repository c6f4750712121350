package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursereview/backend/config"
	"coursereview/backend/routes"
	"coursereview/backend/seed"
	"coursereview/backend/stores"
	"coursereview/backend/utils"

	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	// Initialize logger
	logger := utils.InitLogger(utils.LoggerConfig{Format: cfg.LogFormat, Level: cfg.LogLevel})

	// Initialize database
	db, err := utils.InitDB(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Error initializing database")
	}
	if err := utils.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("Error migrating database")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := seed.EnsureAdmin(ctx, db, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("Error creating default admin")
	}

	app := routes.NewApp(stores.NewGormStores(db), cfg, logger)

	go func() {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Error().Err(err).Msg("Error during shutdown")
		}
	}()

	logger.Info().Str("port", cfg.ServerPort).Msg("server starting")
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
