package config

import (
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Veil     VeilConfig
}

// DatabaseConfig holds audit store settings. An empty URL disables the
// Postgres recorder and falls back to in-memory auditing.
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// VeilConfig holds veiling defaults
type VeilConfig struct {
	Seed           *int64 // nil leaves the shared generator on entropy seeding
	ProfilesFile   string
	DefaultProfile string
	LogLevel       string
}

// Load reads configuration from environment variables. Every setting has a
// usable default, so loading never fails.
func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Veil: VeilConfig{
			Seed:           getEnvInt64Ptr("DATA_VEIL_SEED"),
			ProfilesFile:   getEnvOrDefault("DATA_VEIL_PROFILES", ""),
			DefaultProfile: getEnvOrDefault("DEFAULT_PROFILE", "privacy"),
			LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64Ptr(key string) *int64 {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil
	}
	return &parsed
}
