package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          int
	Env           string
	LogLevel      string
	LogFile       string
	MaxPhotoBytes int64
}

const defaultMaxPhotoBytes = 5 << 20

// LoadConfig reads an optional .env file and the process environment.
// Command-line flags are applied on top by the root command.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Port:          getEnvInt("PORT", 8080),
		Env:           getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("LOG_FILE", ""),
		MaxPhotoBytes: int64(getEnvInt("MAX_PHOTO_BYTES", defaultMaxPhotoBytes)),
	}
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.MaxPhotoBytes <= 0 {
		return fmt.Errorf("MAX_PHOTO_BYTES must be positive, got %d", c.MaxPhotoBytes)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
