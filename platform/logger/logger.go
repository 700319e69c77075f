// Package logger builds the zap logger shared by every binary.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option changes the default config of New
type Option func(config *zap.Config)

// WithOutput writes logs to paths instead of stdout
func WithOutput(paths ...string) Option {
	return func(config *zap.Config) {
		config.OutputPaths = paths
		config.ErrorOutputPaths = paths
	}
}

// WithLevel sets the minimum enabled level
func WithLevel(level zapcore.Level) Option {
	return func(config *zap.Config) {
		config.Level = zap.NewAtomicLevelAt(level)
	}
}

// New constructs a Sugared Logger that writes to stdout and
// provides human-readable timestamps.
func New(service string, opts ...Option) (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.InitialFields = map[string]any{
		"service": service,
	}
	for _, opt := range opts {
		opt(&config)
	}

	log, err := config.Build()
	if err != nil {
		return nil, err
	}

	return log.Sugar(), nil
}
