package workersai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/checkmycar/checkmycar/internal/infra/ai/prompt"
)

const baseURL = "https://api.cloudflare.com/client/v4/accounts"

// DefaultModel is used when no model override is configured.
const DefaultModel = "@cf/meta/llama-3.2-11b-vision-instruct"

// Client calls the Cloudflare Workers AI run endpoint directly over HTTP.
type Client struct {
	accountID string
	token     string
	model     string
	baseURL   string
	client    *http.Client
}

func NewClient(accountID, token, model string, timeout time.Duration) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		accountID: accountID,
		token:     token,
		model:     model,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: timeout},
	}
}

type message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type textContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type imageContent struct {
	Type     string `json:"type"`
	ImageURL string `json:"image_url"`
}

type runRequest struct {
	Messages []message `json:"messages"`
}

// runResponse is the Workers AI envelope. Depending on the model the text
// shows up under response, text or output_text.
type runResponse struct {
	Result struct {
		Response   string `json:"response"`
		Text       string `json:"text"`
		OutputText string `json:"output_text"`
	} `json:"result"`
	Success bool `json:"success"`
	Errors  []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// AnalyzeImage sends one system+user chat turn with the image as a JPEG data
// URI and returns the model's raw text reply.
func (c *Client) AnalyzeImage(ctx context.Context, imageBase64 string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s/ai/run/%s", c.baseURL, c.accountID, url.PathEscape(c.model))

	reqBody := runRequest{
		Messages: []message{
			{Role: "system", Content: prompt.GetSystemPrompt()},
			{Role: "user", Content: []any{
				textContent{Type: "text", Text: prompt.GetUserPrompt()},
				imageContent{Type: "image_url", ImageURL: prompt.ImageDataURI(imageBase64)},
			}},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("workers ai error (status %d): %s", resp.StatusCode, string(body))
	}

	var run runResponse
	if err := json.Unmarshal(body, &run); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if !run.Success && len(run.Errors) > 0 {
		return "", fmt.Errorf("workers ai error %d: %s", run.Errors[0].Code, run.Errors[0].Message)
	}

	// First non-empty of the known reply fields; an empty reply is left to
	// the normalizer's defaulting policy.
	switch {
	case run.Result.Response != "":
		return run.Result.Response, nil
	case run.Result.Text != "":
		return run.Result.Text, nil
	default:
		return run.Result.OutputText, nil
	}
}
