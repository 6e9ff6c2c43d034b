package config

import (
	"errors"
	"time"
)

const (
	// DefaultCleosPath is the toolchain binary looked up in PATH.
	DefaultCleosPath = "cleos"
	// DefaultCleosTimeout is the time limit of a single toolchain command.
	DefaultCleosTimeout = 30 * time.Second
)

// CleosConfiguration describes how the toolchain is invoked.
type CleosConfiguration struct {
	Path      string        `yaml:"Path"`
	URL       string        `yaml:"URL"`
	WalletURL string        `yaml:"WalletURL"`
	Timeout   time.Duration `yaml:"Timeout"`
}

// Validate checks the configuration.
func (c CleosConfiguration) Validate() error {
	if c.Timeout < 0 {
		return errors.New("negative Timeout")
	}
	return nil
}

// Args returns the global toolchain arguments for the node and wallet
// endpoints.
func (c CleosConfiguration) Args() []string {
	var args []string
	if c.URL != "" {
		args = append(args, "--url", c.URL)
	}
	if c.WalletURL != "" {
		args = append(args, "--wallet-url", c.WalletURL)
	}
	return args
}
