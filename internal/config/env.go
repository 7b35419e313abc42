package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds process-level settings read from the environment
type AppConfig struct {
	HTTPAddr   string
	LogLevel   string
	LogFormat  string
	TablesFile string
}

// LoadAppConfig reads the environment, after loading an optional .env file
// from the working directory. Variables already set take precedence.
func LoadAppConfig() *AppConfig {
	_ = godotenv.Load()

	return &AppConfig{
		HTTPAddr:   getEnv("VIAGER_HTTP_ADDR", ":8080"),
		LogLevel:   strings.ToLower(getEnv("VIAGER_LOG_LEVEL", "info")),
		LogFormat:  strings.ToLower(getEnv("VIAGER_LOG_FORMAT", "text")),
		TablesFile: getEnv("VIAGER_TABLES_FILE", ""),
	}
}

// LoadAppConfigFrom reads settings from a specific env file
func LoadAppConfigFrom(filename string) (*AppConfig, error) {
	if err := godotenv.Load(filename); err != nil {
		return nil, err
	}
	return LoadAppConfig(), nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
