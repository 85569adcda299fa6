// Package vision calls the dashboard image analysis service.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"kounhany-ai-go/internal/config"
)

// Detection is one recognized dashboard indicator.
type Detection struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
}

// Client defines the interface for the vision service.
type Client interface {
	// DetectIndicators analyzes a dashboard photo and returns the
	// recognized warning lights.
	DetectIndicators(ctx context.Context, image []byte) ([]Detection, error)
}

type httpClient struct {
	cfg    config.VisionConfig
	client *http.Client
}

// NewClient creates a new vision client.
func NewClient(cfg config.VisionConfig) Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return &httpClient{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type detectRequest struct {
	Image string `json:"image"`
}

type detectResponse struct {
	Detections []Detection `json:"detections"`
}

func (c *httpClient) DetectIndicators(ctx context.Context, image []byte) ([]Detection, error) {
	reqBody := detectRequest{Image: base64.StdEncoding.EncodeToString(image)}
	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal detect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.cfg.BaseURL+"/detect", bytes.NewReader(reqBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create detect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call vision api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("vision api returned non-200 status: %s, body: %s", resp.Status, string(bodyBytes))
	}

	var parsed detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode detect response: %w", err)
	}
	return parsed.Detections, nil
}
