package depth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/echosight/echosight/internal/httpc"
)

// sensorTimeout bounds one sensor read. Reads race the capture cycle, so
// they fail fast rather than stall narration.
const sensorTimeout = 2 * time.Second

// HTTPSensor implements Sensor against a LiDAR bridge exposing a small
// HTTP API (GET /health, GET /distance returning {"meters": x}).
type HTTPSensor struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewHTTPSensor creates a sensor client for the bridge at baseURL.
func NewHTTPSensor(baseURL string, logger *slog.Logger) *HTTPSensor {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPSensor{
		baseURL: baseURL,
		client:  httpc.NewClient(sensorTimeout),
		logger:  logger.With("component", "depth.http"),
	}
}

// Available probes the bridge health endpoint.
func (s *HTTPSensor) Available(ctx context.Context) bool {
	if s.baseURL == "" {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Debug("sensor probe failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// ReadCenterDistance requests one distance sample from the bridge.
func (s *HTTPSensor) ReadCenterDistance(ctx context.Context) (float64, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/distance", nil)
	if err != nil {
		return 0, false
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Debug("sensor read failed", "error", err)
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Debug("sensor read rejected", "status", resp.StatusCode)
		return 0, false
	}

	var body struct {
		Meters float64 `json:"meters"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		s.logger.Debug("sensor response malformed", "error", err)
		return 0, false
	}

	if body.Meters <= 0 {
		return 0, false
	}

	return body.Meters, true
}

// String identifies the sensor for logs.
func (s *HTTPSensor) String() string {
	return fmt.Sprintf("lidar-bridge(%s)", s.baseURL)
}
