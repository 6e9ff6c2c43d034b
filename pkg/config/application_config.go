package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// ApplicationConfiguration holds settings of the tool's own diagnostics.
type ApplicationConfiguration struct {
	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `yaml:"LogLevel"`
	// LogPath is a file for diagnostics, stderr is used if empty.
	LogPath string `yaml:"LogPath"`
}

// Validate checks the log level.
func (a ApplicationConfiguration) Validate() error {
	if a.LogLevel == "" {
		return nil
	}
	if _, err := zapcore.ParseLevel(a.LogLevel); err != nil {
		return fmt.Errorf("LogLevel: %w", err)
	}
	return nil
}
