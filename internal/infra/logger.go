package infra

import (
	"fmt"

	"go.uber.org/zap"

	"cougcuts/internal/config"
)

// NewLogger builds a JSON production logger, or a console logger in
// development.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zc = zap.NewDevelopmentConfig()
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.With(zap.String("app_env", cfg.AppEnv)), nil
}
