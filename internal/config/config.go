package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the configuration for the storefront search service
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
}

// ServerConfig holds the HTTP API configuration
type ServerConfig struct {
	ListenAddr string
}

// CatalogConfig holds catalog collaborator configuration
type CatalogConfig struct {
	BaseURL         string
	RequestTimeout  time.Duration
	RefreshInterval time.Duration
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr: GetStringEnv("LISTEN_ADDR", ":8080"),
		},
		Catalog: CatalogConfig{
			BaseURL:         GetStringEnv("CATALOG_BASE_URL", "http://localhost:8888/.netlify/functions"),
			RequestTimeout:  GetDurationEnv("CATALOG_REQUEST_TIMEOUT", 10*time.Second),
			RefreshInterval: GetDurationEnv("CATALOG_REFRESH_INTERVAL", 5*time.Minute),
		},
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
