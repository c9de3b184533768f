package infra

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"cougcuts/internal/config"
	"cougcuts/internal/models/db_models"
)

// InitPostgresql opens the pool and migrates the lead tables.
func InitPostgresql(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.IsDevelopment() {
		level = gormlogger.Info
	}

	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	sqlDB, err := connectionPool.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := AutoMigrate(connectionPool); err != nil {
		return nil, err
	}

	logger.Info("postgres connected")
	return connectionPool, nil
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&db_models.Lead{},
		&db_models.QuizSession{},
		&db_models.EmailEvent{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// RegisterPostgresLifecycle closes the pool when the app stops.
func RegisterPostgresLifecycle(lc fx.Lifecycle, db *gorm.DB, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			ClosePostgresql(db, logger)
			return nil
		},
	})
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("get database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Warn("close postgres", zap.Error(err))
	} else {
		logger.Info("postgres connection closed")
	}
}
