package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"feedback-service/internal/http-api/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPinger mocks the store's Ping for the health endpoint
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping() error {
	args := m.Called()
	return args.Error(0)
}

func setupHealthRouter(pinger Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router.GET("/health", NewHealthHandler(pinger, logger).Check)
	return router
}

func TestHealthCheck_DatabaseUp(t *testing.T) {
	pinger := new(MockPinger)
	pinger.On("Ping").Return(nil)
	router := setupHealthRouter(pinger)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.HealthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, "ok", response.Database)
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	pinger := new(MockPinger)
	pinger.On("Ping").Return(errors.New("dial tcp: connection refused"))
	router := setupHealthRouter(pinger)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response dto.HealthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, "unhealthy", response.Database)
}
