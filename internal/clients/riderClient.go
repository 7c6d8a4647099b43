package clients

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// RiderClient checks rider existence against the rider service.
type RiderClient interface {
	RiderExists(ctx context.Context, riderID int64) (bool, error)
}

// riderClient is the HTTP implementation of RiderClient.
type riderClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewRiderClient creates a new instance of RiderClient backed by the rider service
func NewRiderClient(baseURL string, timeout time.Duration, logger *slog.Logger) RiderClient {
	return &riderClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// RiderExists performs GET /v1/riders/{rider_id}; any 200 means the rider is known.
// Non-200 responses report absence rather than an error so the caller can turn
// them into a client-facing rejection.
func (c *riderClient) RiderExists(ctx context.Context, riderID int64) (bool, error) {
	url := fmt.Sprintf("%s/v1/riders/%d", c.baseURL, riderID)
	c.logger.Info("checking rider existence", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build rider request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("rider service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		c.logger.Info("rider found", "rider_id", riderID)
		return true, nil
	}

	c.logger.Warn("rider not found", "rider_id", riderID, "status", resp.StatusCode)
	return false, nil
}
