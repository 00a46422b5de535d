// Package config loads the dfagen settings from the environment and optional .env files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	FormatTable = "table"
	FormatDot   = "dot"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config Settings of the dfagen command. Command-line flags take precedence over these.
// Whitelist is a .yaml/.yml file holding a "whitelist" list, or a text file with one entry per line.
// An empty Alphabet selects the default [a-zA-Z0-9.] alphabet.
type Config struct {
	Whitelist string `env:"DFAGEN_WHITELIST"`
	Format    string `env:"DFAGEN_FORMAT" envDefault:"table"`
	Alphabet  string `env:"DFAGEN_ALPHABET"`
	LogLevel  string `env:"DFAGEN_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"DFAGEN_LOG_FORMAT" envDefault:"text"`
}

// Load Parses the configuration from the process environment. Values from the given .env files fill
// in variables the environment does not set; without files, ./.env is read if it exists.
func Load(files ...string) (*Config, error) {
	environment := env.ToMap(os.Environ())

	if len(files) == 0 {
		if values, err := godotenv.Read(); err == nil {
			mergeMissing(environment, values)
		}
	}
	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReadingEnvFile, file, err)
		}
		mergeMissing(environment, values)
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return nil, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func mergeMissing(dst, src map[string]string) {
	for k, v := range src {
		if _, ok := dst[k]; !ok {
			dst[k] = v
		}
	}
}

func (c *Config) Validate() error {
	switch c.Format {
	case FormatTable, FormatDot:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel Returns LogLevel as a slog level ("debug", "info", "warn", "error").
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}
