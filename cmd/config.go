package cmd

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/etnz/lifestock/annotator"
)

// Config is the application configuration, read from the environment and
// overridden by the global flags.
type Config struct {
	Store         string        `env:"LIFESTOCK_STORE"          envDefault:"lifestock.csv"`
	Currency      string        `env:"LIFESTOCK_CURRENCY"       envDefault:"CNY"`
	APIKey        string        `env:"GEMINI_API_KEY"`
	Model         string        `env:"LIFESTOCK_MODEL"`
	FallbackModel string        `env:"LIFESTOCK_FALLBACK_MODEL" envDefault:"gemini-1.5-flash"`
	Timeout       time.Duration `env:"LIFESTOCK_TIMEOUT"        envDefault:"30s"`
	Verbose       bool          `env:"LIFESTOCK_VERBOSE"`
}

// LoadConfig parses the environment and applies the global flags on top of it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if *storeFile != "" {
		cfg.Store = *storeFile
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	if *model != "" {
		cfg.Model = *model
	}
	if *Verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// Annotator returns the annotator part of the configuration.
func (c Config) Annotator() annotator.Config {
	return annotator.Config{
		APIKey:        c.APIKey,
		Model:         c.Model,
		FallbackModel: c.FallbackModel,
		Timeout:       c.Timeout,
	}
}
