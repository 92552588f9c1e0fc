package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAddr         = ":8080"
	defaultDatabaseURL  = "gym.db"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultJWTAccessTTL = "15m"
	defaultRefreshTTL   = "168h"
	defaultPerPage      = "10"
	defaultLowStock     = "5"
)

// Config is the typed runtime configuration, read once at startup.
type Config struct {
	AppEnv      string
	Debug       bool
	Addr        string
	DatabaseURL string

	JWTSecret    string
	JWTAccessTTL time.Duration
	RefreshTTL   time.Duration

	ItemsPerPage      int
	LowStockThreshold int
}

func (c *Config) IsProduction() bool { return c.AppEnv == "production" }

// Load reads configuration from the environment. In production the JWT
// secret must be overridden; everywhere else the defaults make a zero-setup
// local run possible.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:      strings.TrimSpace(getEnv("APP_ENV", "development")),
		Debug:       getEnv("APP_DEBUG", "") == "true",
		Addr:        getEnv("ADDR", defaultAddr),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:   getEnv("JWT_SECRET", defaultJWTSecret),
	}

	var err error
	if cfg.JWTAccessTTL, err = parseDuration("JWT_ACCESS_TTL", defaultJWTAccessTTL); err != nil {
		return nil, err
	}
	if cfg.RefreshTTL, err = parseDuration("REFRESH_TTL", defaultRefreshTTL); err != nil {
		return nil, err
	}
	if cfg.ItemsPerPage, err = parseInt("ITEMS_PER_PAGE", defaultPerPage); err != nil {
		return nil, err
	}
	if cfg.LowStockThreshold, err = parseInt("LOW_STOCK_THRESHOLD", defaultLowStock); err != nil {
		return nil, err
	}

	if cfg.IsProduction() && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func parseInt(key, fallback string) (int, error) {
	raw := getEnv(key, fallback)
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return n, nil
}
