package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config captures process level configuration shared by the binaries.
type Config struct {
	// Addr is the HTTP listen address of cmd/server.
	Addr string `validate:"required"`
	// DatasetPath points at a YAML or JSON census file. Empty selects the
	// embedded sample dataset.
	DatasetPath string
	LogLevel    string `validate:"oneof=debug info warn error"`
	LogFormat   string `validate:"oneof=text json"`
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Addr:        envOr("MENAGERIE_ADDR", ":8080"),
		DatasetPath: strings.TrimSpace(os.Getenv("MENAGERIE_DATASET")),
		LogLevel:    strings.ToLower(envOr("MENAGERIE_LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(envOr("MENAGERIE_LOG_FORMAT", "text")),
	}
}

// Load is FromEnv followed by Validate.
func Load() (Config, error) {
	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown log levels and formats and an empty address.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
