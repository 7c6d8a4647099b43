package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	GoEnv string `env:"GO_ENV" default:"development"`

	// Service Port
	HTTPPort int `env:"HTTP_PORT" default:"8003"`

	// Database
	DatabaseURL string `env:"DATABASE_URL" default:"postgres://postgres:password@db:5432/rating_db"`

	// Upstream services
	TripServiceURL  string `env:"TRIP_SERVICE_URL" default:"http://trip-service:8002"`
	RiderServiceURL string `env:"RIDER_SERVICE_URL" default:"http://rider-service:8000"`

	// The trip-completion check ships disabled; rider existence is always checked.
	RequireCompletedTrip bool          `env:"REQUIRE_COMPLETED_TRIP" default:"false"`
	ClientTimeout        time.Duration `env:"CLIENT_TIMEOUT" default:"5s"`

	// Development
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Try to load .env file from project root (adjust path as needed)
	err := godotenv.Load(".env")
	if err != nil {
		// If .env file doesn't exist, that's OK - we can still use system env vars
		// Only log this in development, don't fail
		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	config := &Config{}

	// Load each field with proper type conversion and validation
	if err := loadEnvString(&config.GoEnv, "GO_ENV", "development"); err != nil {
		return nil, err
	}

	// Port
	if err := loadEnvInt(&config.HTTPPort, "HTTP_PORT", 8003); err != nil {
		return nil, err
	}

	// Database
	if err := loadEnvString(&config.DatabaseURL, "DATABASE_URL", "postgres://postgres:password@db:5432/rating_db"); err != nil {
		return nil, err
	}

	// Upstream services
	if err := loadEnvString(&config.TripServiceURL, "TRIP_SERVICE_URL", "http://trip-service:8002"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.RiderServiceURL, "RIDER_SERVICE_URL", "http://rider-service:8000"); err != nil {
		return nil, err
	}
	if err := loadEnvBool(&config.RequireCompletedTrip, "REQUIRE_COMPLETED_TRIP", false); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.ClientTimeout, "CLIENT_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}

	// Development
	if err := loadEnvString(&config.LogLevel, "LOG_LEVEL", "info"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.LogFormat, "LOG_FORMAT", "text"); err != nil {
		return nil, err
	}

	return config, nil
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) error {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvInt(target *int, key string, defaultValue int) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvBool(target *bool, key string, defaultValue bool) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvDuration(target *time.Duration, key string, defaultValue time.Duration) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

// Validate performs validation on the loaded configuration
func (c *Config) Validate() error {
	var errors []string

	// Validate port is in valid range
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		errors = append(errors, "HTTP_PORT must be between 1 and 65535")
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: %s", strings.Join(validLogLevels, ", ")))
	}

	// Validate log format
	validLogFormats := []string{"text", "json"}
	if !contains(validLogFormats, c.LogFormat) {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: %s", strings.Join(validLogFormats, ", ")))
	}

	if c.DatabaseURL == "" {
		errors = append(errors, "DATABASE_URL must not be empty")
	}
	if c.ClientTimeout <= 0 {
		errors = append(errors, "CLIENT_TIMEOUT must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// Helper function to check if slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
