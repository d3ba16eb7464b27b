package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API API
	Log LogConfig
}

type API struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type LogConfig struct {
	Level   string
	Verbose bool
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		API: API{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:3000/api/v1"),
			Token:   getEnv("API_TOKEN", ""),
			Timeout: getEnvDuration("API_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:   getEnv("LOG_LEVEL", "info"),
			Verbose: getEnvBool("LOG_VERBOSE", false),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		fmt.Printf("Warning: invalid duration for %s, using default\n", key)
	}
	return defaultValue
}
