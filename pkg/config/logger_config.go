package config

import (
	"github.com/eosfactory/eosf/pkg/logger"
)

// LoggerConfiguration holds settings of the console output.
type LoggerConfiguration struct {
	// Verbosity is the list of active channels, the default set is used if
	// it's not specified.
	Verbosity     []logger.Channel  `yaml:"Verbosity"`
	ThrowOnError  bool              `yaml:"ThrowOnError"`
	TestingErrors bool              `yaml:"TestingErrors"`
	NoColor       bool              `yaml:"NoColor"`
	Aliases       map[string]string `yaml:"Aliases"`
}

// Options converts the configuration to logger.Options.
func (l LoggerConfiguration) Options() logger.Options {
	return logger.Options{
		Channels:      l.Verbosity,
		ThrowOnError:  l.ThrowOnError,
		TestingErrors: l.TestingErrors,
		NoColor:       l.NoColor,
		Aliases:       l.Aliases,
	}
}
