package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"boulouiha.dev/internal/content"
)

// Config holds all application configuration
type Config struct {
	ServerAddr    string `env:"SERVER_ADDR" envDefault:":8080"`
	ContentDir    string `env:"CONTENT_DIR"`
	DefaultLang   string `env:"DEFAULT_LANG" envDefault:"fr"`
	ReducedMotion bool   `env:"REDUCED_MOTION" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads .env (when present) and then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse builds a Config from the current environment only
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadContent returns the content store: ContentDir when set, else the embedded copy
func (c *Config) LoadContent() (*content.Store, error) {
	if c.ContentDir == "" {
		return content.Embedded()
	}
	store, err := content.Load(os.DirFS(c.ContentDir))
	if err != nil {
		return nil, fmt.Errorf("load content from %s: %w", c.ContentDir, err)
	}
	return store, nil
}

// ParseLevel maps LOG_LEVEL to a slog level
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
}
