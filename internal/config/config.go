// Package config loads the service configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	RasterizerChromedp = "chromedp"
	RasterizerGofpdf   = "gofpdf"
)

// Config holds all configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host      string
	Port      string
	Env       string // "development", "production", "testing"
	LogLevel  slog.Level
	BodyLimit int

	// Rasterization
	Rasterizer    string // "chromedp" or "gofpdf"
	ChromePath    string
	RenderTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where a variable is unset. Malformed values are errors.
func Load() (*Config, error) {
	cfg := &Config{
		Host:       envOrDefault("HOST", "0.0.0.0"),
		Port:       envOrDefault("PORT", "3000"),
		Env:        envOrDefault("APP_ENV", "development"),
		Rasterizer: strings.ToLower(envOrDefault("RASTERIZER", RasterizerChromedp)),
		ChromePath: os.Getenv("CHROME_PATH"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	timeout, err := time.ParseDuration(envOrDefault("RENDER_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("RENDER_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("RENDER_TIMEOUT must be positive, got %s", timeout)
	}
	cfg.RenderTimeout = timeout

	limit, err := strconv.Atoi(envOrDefault("BODY_LIMIT", strconv.Itoa(4<<20)))
	if err != nil {
		return nil, fmt.Errorf("BODY_LIMIT: %w", err)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("BODY_LIMIT must be positive, got %d", limit)
	}
	cfg.BodyLimit = limit

	switch cfg.Rasterizer {
	case RasterizerChromedp, RasterizerGofpdf:
	default:
		return nil, fmt.Errorf("RASTERIZER must be %q or %q, got %q", RasterizerChromedp, RasterizerGofpdf, cfg.Rasterizer)
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
