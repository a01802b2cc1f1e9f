package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ticket-booking/cmd"
	"ticket-booking/internal/data/repository"
	"ticket-booking/internal/data/seed"
	"ticket-booking/internal/wire"
	"ticket-booking/pkg/database"
	"ticket-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Bool("audit", config.Audit.Enabled),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The audit trail is the only thing that touches Postgres
	var db database.PgxIface
	if config.Audit.Enabled {
		db, err = database.InitDB(ctx, config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
	}

	repos := repository.NewRepository(db, logger)
	if err := repos.Audit.Init(ctx); err != nil {
		logger.Fatal("Failed to prepare audit trail", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	if config.Catalog.Seed {
		if err := seed.Load(ctx, app.Service.Catalog); err != nil {
			logger.Fatal("Failed to seed catalog", zap.Error(err))
		}
		logger.Info("Catalog seeded")
	}

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server exited with error", zap.Error(err))
	}
}
