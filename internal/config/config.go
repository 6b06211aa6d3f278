package config

import (
	"os"
	"strconv"

	"github.com/justinecabel/3-digit-lotto-analyzer/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	AI       AIConfig
	Database DatabaseConfig
	Data     DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// AIConfig holds the prediction service settings.
// OpenAIKey may be empty: the predictor then starts disabled and every
// prediction attempt fails with SERVICE_UNAVAILABLE instead of calling out.
type AIConfig struct {
	OpenAIKey   string
	OpenAIModel string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	TimeoutMS   int
}

// DatabaseConfig holds optional draw-history persistence settings.
// An empty URL selects the in-memory repository.
type DatabaseConfig struct {
	URL string
}

// DataConfig holds data import settings
type DataConfig struct {
	DefaultGame  string
	MaxUploadMB  int
	ErrorPreview int // line errors shown before "and N more"
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		AI: AIConfig{
			OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
			OpenAIModel: getEnvOrDefault("LLM_MODEL", "gpt-4o-mini"),
			BaseURL:     getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Temperature: getEnvFloatOrDefault("LLM_TEMPERATURE", 0.7),
			MaxTokens:   getEnvIntOrDefault("LLM_MAX_TOKENS", 1000),
			TimeoutMS:   getEnvIntOrDefault("LLM_TIMEOUT_MS", 60000),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Data: DataConfig{
			DefaultGame:  getEnvOrDefault("DEFAULT_GAME", "3d"),
			MaxUploadMB:  getEnvIntOrDefault("MAX_UPLOAD_MB", 5),
			ErrorPreview: getEnvIntOrDefault("ERROR_PREVIEW_LINES", 5),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.AI.Temperature < 0 || config.AI.Temperature > 2 {
		return errors.ConfigInvalid("LLM_TEMPERATURE must be between 0 and 2")
	}
	if config.Data.MaxUploadMB <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_MB must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
