package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// TripClient checks trip state against the trip service.
type TripClient interface {
	TripCompleted(ctx context.Context, tripID int64) (bool, error)
}

// tripClient is the HTTP implementation of TripClient.
type tripClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewTripClient creates a new instance of TripClient backed by the trip service
func NewTripClient(baseURL string, timeout time.Duration, logger *slog.Logger) TripClient {
	return &tripClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type tripStatusResponse struct {
	Status string `json:"status"`
}

// TripCompleted performs GET /v1/trips/{trip_id} and reports whether the trip
// status is COMPLETED. Unknown trips count as not completed.
func (c *tripClient) TripCompleted(ctx context.Context, tripID int64) (bool, error) {
	url := fmt.Sprintf("%s/v1/trips/%d", c.baseURL, tripID)
	c.logger.Info("checking trip status", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build trip request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("trip service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("trip not found or invalid status", "trip_id", tripID, "status", resp.StatusCode)
		return false, nil
	}

	var trip tripStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&trip); err != nil {
		return false, fmt.Errorf("failed to decode trip response: %w", err)
	}

	c.logger.Info("trip status", "trip_id", tripID, "trip_status", trip.Status)
	return trip.Status == "COMPLETED", nil
}
