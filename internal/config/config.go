// Package config loads converter settings from the environment. Command-line
// flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/caarlos0/env/v11"

	"github.com/sleroq/onepux-to-csv/internal/logger"
)

var (
	ErrInvalidWorkers  = errors.New("workers must not be negative")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

type Config struct {
	IncludeArchived bool   `env:"ONEPUX_INCLUDE_ARCHIVED"`
	Workers         int    `env:"ONEPUX_WORKERS" envDefault:"0"`
	LogLevel        string `env:"ONEPUX_LOG_LEVEL" envDefault:"warn"`
	NoProgress      bool   `env:"ONEPUX_NO_PROGRESS"`
}

func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error getting env configs: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

// WorkerCount resolves 0 to the number of CPUs.
func (c Config) WorkerCount() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}
