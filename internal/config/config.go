package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Seed     SeedConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
}

type DatabaseConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	Database       string
	SSLMode        string
	MaxConns       int32
	MinConns       int32
	ConnectTimeout time.Duration
}

type SeedConfig struct {
	Enabled bool
	File    string
}

// Load reads configuration from environment variables, falling back to
// development defaults.
func Load() (*Config, error) {
	return &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Library API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnvInt("DB_PORT", 5432),
			User:           getEnv("DB_USER", "library"),
			Password:       getEnv("DB_PASSWORD", ""),
			Database:       getEnv("DB_NAME", "library_dev"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxConns:       int32(getEnvInt("DB_MAX_CONNS", 25)),
			MinConns:       int32(getEnvInt("DB_MIN_CONNS", 5)),
			ConnectTimeout: getEnvDuration("DB_CONNECT_TIMEOUT", 10*time.Second),
		},
		Seed: SeedConfig{
			Enabled: getEnvBool("SEED_ENABLED", true),
			File:    getEnv("SEED_FILE", "books.json"),
		},
	}, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
