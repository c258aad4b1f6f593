package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// WeatherstackAPIKey authenticates outbound Weatherstack calls.
	WeatherstackAPIKey string

	// ProviderTimeout bounds a single outbound provider call.
	ProviderTimeout time.Duration

	// StatsInterval controls how often the store size is logged.
	StatsInterval time.Duration

	// CORSAllowOrigin is the browser origin allowed to call the API.
	CORSAllowOrigin string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	// The variable name is read as-is, including its casing.
	cfg.WeatherstackAPIKey = os.Getenv("WeatherStackAPI")

	timeoutStr := getenvDefault("PROVIDER_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT: %w", err)
	}
	cfg.ProviderTimeout = timeout

	statsStr := getenvDefault("STATS_INTERVAL", "15m")
	stats, err := time.ParseDuration(statsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STATS_INTERVAL: %w", err)
	}
	cfg.StatsInterval = stats

	cfg.CORSAllowOrigin = getenvDefault("CORS_ALLOW_ORIGIN", "http://localhost:3000")
	cfg.Port = getenvDefault("PORT", "8000")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
