package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	domain "github.com/checkmycar/checkmycar/internal/domain/analysis"
)

// Client is the CLI's HTTP client for the inference gateway. Any failure —
// refused connection, non-200, undecodable body — is returned as an error so
// the caller can run the local filename fallback.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type analyzeRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

// Analyze submits one prepared image and returns the gateway's result.
// Demo-sourced responses come back as plain successes.
func (c *Client) Analyze(ctx context.Context, imageBase64 string) (domain.Result, error) {
	jsonData, err := json.Marshal(analyzeRequest{ImageBase64: imageBase64})
	if err != nil {
		return domain.Result{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/analyze", bytes.NewBuffer(jsonData))
	if err != nil {
		return domain.Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Result{}, fmt.Errorf("failed to reach gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Result{}, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Result{}, fmt.Errorf("gateway error (status %d): %s", resp.StatusCode, string(body))
	}

	var res domain.Result
	if err := json.Unmarshal(body, &res); err != nil {
		return domain.Result{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return res, nil
}
