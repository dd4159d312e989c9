package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pageza/pantry-chef/config"
)

// DB wraps the gorm handle so callers share one place for pooling and
// health checks.
type DB struct {
	*gorm.DB
}

// New opens the configured database. Postgres is used when connection
// details are present; otherwise a local SQLite file keeps development
// and CI self-contained.
func New(cfg *config.Config, logger *zap.Logger) (*DB, error) {
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
	if cfg.Debug {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	var (
		db  *gorm.DB
		err error
	)
	if cfg.UsesPostgres() {
		logger.Info("connecting to postgres",
			zap.String("host", cfg.DBHost),
			zap.String("database", cfg.DBName))
		db, err = gorm.Open(postgres.Open(cfg.PostgresDSN()), gormCfg)
	} else {
		logger.Info("using sqlite database", zap.String("path", cfg.SQLitePath))
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	return &DB{db}, nil
}

// HealthCheck reports whether the database answers a ping.
func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
