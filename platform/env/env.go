// Package env reads configuration from environment variables.
package env

import (
	"go.uber.org/zap"
	"os"
)

// OrDefault return the env var value, or def when it is empty
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if value, ok := os.LookupEnv(env); ok && value != "" {
		return value
	}
	log.Debugw("config", "env", env, "default", def)
	return def
}

// Must return the env var value and panics when it is empty
func Must(log *zap.SugaredLogger, env string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Errorw("config", "env", env, "ERROR", "required env var is empty")
		panic("required env var " + env + " is empty")
	}
	return value
}
