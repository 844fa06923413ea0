package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL       = "https://api.openai.com/v1"
	defaultClientTimeout = 60 * time.Second
	maxResponseBytes     = 2 * 1024 * 1024
)

// ProviderError carries the provider's reported failure, mapped to a uniform
// message/status pair for the HTTP layer.
type ProviderError struct {
	Message string
	Status  int
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("provider error (status %d)", e.Status)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    base,
		httpClient: &http.Client{Timeout: defaultClientTimeout},
	}
}

type chatPayload struct {
	Model       string           `json:"model"`
	Messages    []Message        `json:"messages"`
	Tools       []map[string]any `json:"tools,omitempty"`
	Temperature float64          `json:"temperature"`
	MaxTokens   int              `json:"max_tokens"`
	TopP        float64          `json:"top_p"`
}

// ChatCompletion injects the hidden system prompt, performs the single
// outbound provider call, and returns the provider's response body verbatim.
// No retry, no caching, no streaming.
func (c *Client) ChatCompletion(ctx context.Context, req ChatRequest) (json.RawMessage, error) {
	payload := chatPayload{
		Model:       req.Model,
		Messages:    InjectSystemPrompt(req.Messages),
		Tools:       req.Tools,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		TopP:        DefaultTopP,
	}
	if payload.Model == "" {
		payload.Model = DefaultModel
	}
	if req.Temperature != nil {
		payload.Temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		payload.MaxTokens = *req.MaxTokens
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &ProviderError{Message: "failed to encode provider request", Status: http.StatusInternalServerError, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, &ProviderError{Message: "failed to create provider request", Status: http.StatusInternalServerError, Err: err}
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &ProviderError{Message: "provider request failed", Status: http.StatusInternalServerError, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &ProviderError{Message: "failed to read provider response", Status: http.StatusInternalServerError, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, mapProviderError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

// mapProviderError extracts the most specific message the provider offered:
// a nested error.message, then a top-level message, then a generic fallback.
// The provider's status is kept when present.
func mapProviderError(status int, body []byte) *ProviderError {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	message := fmt.Sprintf("provider returned status %d", status)
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.Error.Message != "":
			message = parsed.Error.Message
		case parsed.Message != "":
			message = parsed.Message
		}
	}
	return &ProviderError{Message: message, Status: status}
}
