// Package app provides logger initialization.
package app

import (
	"os"

	"github.com/John-Mota/production-optimizer-back/internal/logger"
)

// InitializeLogger configures the global zerolog logger from the
// environment. LOG_LEVEL accepts zerolog level names; LOG_PRETTY=true
// switches to console output for local development.
func InitializeLogger() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	logger.Init(level, os.Getenv("LOG_PRETTY") == "true")
}
