package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfig holds overrides read from the environment. Zero values mean unset.
type EnvConfig struct {
	Endpoint   string        `env:"HAIKU_ENDPOINT"`
	Timeout    time.Duration `env:"HAIKU_TIMEOUT"`
	Nouns      string        `env:"HAIKU_NOUNS"`
	Adjectives string        `env:"HAIKU_ADJECTIVES"`
}

// LoadEnv reads HAIKU_* variables.
func LoadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}

// Overlay copies the set environment values onto the file config.
func (e EnvConfig) Overlay(cfg *FileConfig) {
	if e.Endpoint != "" {
		endpoint := e.Endpoint
		cfg.Datamuse.Endpoint = &endpoint
	}
	if e.Timeout > 0 {
		cfg.Datamuse.Timeout = &Duration{Duration: e.Timeout}
	}
	if e.Nouns != "" {
		nouns := e.Nouns
		cfg.Haiku.Nouns = &nouns
	}
	if e.Adjectives != "" {
		adjectives := e.Adjectives
		cfg.Haiku.Adjectives = &adjectives
	}
}
