package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a JSON sugared logger. "production" selects the production
// preset; anything else the development one.
func New(env string) (*zap.SugaredLogger, error) {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Encoding = "json"

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Sugar(), nil
}

// Must is New for main packages; it falls back to a no-op logger on failure.
func Must(env string) *zap.SugaredLogger {
	logger, err := New(env)
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger
}
