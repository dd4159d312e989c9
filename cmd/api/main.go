package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pageza/pantry-chef/config"
	"github.com/pageza/pantry-chef/internal/api"
	"github.com/pageza/pantry-chef/internal/database"
	"github.com/pageza/pantry-chef/internal/metrics"
	"github.com/pageza/pantry-chef/internal/router"
	"github.com/pageza/pantry-chef/internal/server"
	"github.com/pageza/pantry-chef/internal/service"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	if err := database.RunMigrations(db, "migrations", logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	catalogService := service.NewCatalogService(db.DB, logger)
	if err := catalogService.Seed(context.Background()); err != nil {
		logger.Fatal("failed to seed catalog", zap.Error(err))
	}

	m := metrics.New()
	completionClient := service.InstrumentCompletionClient(
		service.NewOpenAIClient(cfg, logger), m)
	suggestionService := service.NewSuggestionService(completionClient, logger, cfg.Debug)

	engine := router.SetupRouter(
		cfg,
		logger,
		m,
		api.NewPageHandler(),
		api.NewSuggestionHandler(suggestionService),
		api.NewCatalogHandler(catalogService),
		api.NewHealthHandler(db),
	)

	srv := server.New(cfg, engine, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(cfg *config.Config) *zap.Logger {
	if cfg.Debug {
		return zap.Must(zap.NewDevelopment())
	}
	return zap.Must(zap.NewProduction())
}
