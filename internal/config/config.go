// Package config loads runner settings from the environment and an optional
// .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. AOC_INPUT_DIR.
const Prefix = "AOC"

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all environment-based configuration.
type Config struct {
	// InputDir is the directory holding one sub-directory per day.
	// Env: AOC_INPUT_DIR (default: inputs)
	InputDir string `envconfig:"INPUT_DIR" default:"inputs"`

	// LogLevel is the log verbosity level.
	// Env: AOC_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is text or json.
	// Env: AOC_LOG_FORMAT (default: text)
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads envFile (if it exists) into the process environment and then
// decodes Config from it. An empty envFile means ".env".
func Load(envFile string) (Config, error) {
	if err := LoadDotEnv(envFile); err != nil {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	if cfg.LogFormat != LogFormatText && cfg.LogFormat != LogFormatJSON {
		return Config{}, fmt.Errorf("invalid %s_LOG_FORMAT %q", Prefix, cfg.LogFormat)
	}

	return cfg, nil
}

// LoadDotEnv loads variables from path without overriding ones already set.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(path)
}

// InputPath returns the default input file for a day, e.g. inputs/03/input.txt.
func (c Config) InputPath(day string) string {
	return filepath.Join(c.InputDir, day, "input.txt")
}
