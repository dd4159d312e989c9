package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pageza/pantry-chef/internal/models"
	"github.com/pageza/pantry-chef/internal/service"
)

// Seeds the common-items catalog. Connects to DATABASE_URL when set,
// otherwise to the local SQLite file. Safe to run repeatedly; existing
// rows are left untouched.
func main() {
	_ = godotenv.Load()

	logger := zap.Must(zap.NewProduction())
	defer func() { _ = logger.Sync() }()

	var (
		db  *gorm.DB
		err error
	)
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "pantrychef.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}

	if err := db.AutoMigrate(&models.CatalogItem{}); err != nil {
		logger.Fatal("failed to migrate catalog schema", zap.Error(err))
	}

	if err := service.NewCatalogService(db, logger).Seed(context.Background()); err != nil {
		logger.Fatal("failed to seed catalog", zap.Error(err))
	}
	logger.Info("catalog seeded")
}
