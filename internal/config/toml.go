// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Haiku    HaikuConfig    `toml:"haiku"`
	Datamuse DatamuseConfig `toml:"datamuse"`
}

// HaikuConfig maps generation settings.
type HaikuConfig struct {
	Nouns       *string `toml:"nouns"`
	Adjectives  *string `toml:"adjectives"`
	MaxAttempts *int    `toml:"max-attempts"`
	Count       *int    `toml:"count"`
	Style       *bool   `toml:"style"`
}

// DatamuseConfig maps lexical service settings.
type DatamuseConfig struct {
	Endpoint *string   `toml:"endpoint"`
	Timeout  *Duration `toml:"timeout"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
