package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, 8003, cfg.HTTPPort)
	assert.Equal(t, "http://rider-service:8000", cfg.RiderServiceURL)
	assert.Equal(t, "http://trip-service:8002", cfg.TripServiceURL)
	assert.False(t, cfg.RequireCompletedTrip)
	assert.Equal(t, 5*time.Second, cfg.ClientTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REQUIRE_COMPLETED_TRIP", "true")
	t.Setenv("CLIENT_TIMEOUT", "2s")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.True(t, cfg.RequireCompletedTrip)
	assert.Equal(t, 2*time.Second, cfg.ClientTimeout)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate_Rejections(t *testing.T) {
	cfg := &Config{
		HTTPPort:      70000,
		DatabaseURL:   "",
		LogLevel:      "verbose",
		LogFormat:     "xml",
		ClientTimeout: 0,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_PORT")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
	assert.Contains(t, err.Error(), "LOG_FORMAT")
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
