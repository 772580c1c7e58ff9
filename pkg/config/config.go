// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the server, news source, and logging

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Source contains news source configuration
	Source SourceConfig

	// LogLevel controls logging verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// SourceConfig holds news source configuration
type SourceConfig struct {
	// BaseURL is the news source API base URL; empty uses the default
	BaseURL string

	// FetchTimeout is the per-page fetch timeout in seconds
	FetchTimeout int

	// MaxConcurrentFetches bounds simultaneous source fetches process-wide
	MaxConcurrentFetches int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Source: SourceConfig{
			BaseURL:              getEnvOrDefault("SOURCE_BASE_URL", ""),
			FetchTimeout:         getEnvAsIntOrDefault("FETCH_TIMEOUT_SECONDS", 5),
			MaxConcurrentFetches: getEnvAsIntOrDefault("MAX_CONCURRENT_FETCHES", 20),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Source.FetchTimeout < 1 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	if c.Source.MaxConcurrentFetches < 1 {
		return errors.New("max concurrent fetches must be at least 1")
	}

	return nil
}
