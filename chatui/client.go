package chatui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type relayRequest struct {
	Message string `json:"message"`
}

type relayResponse struct {
	Reply *string `json:"reply"`
	Error string  `json:"error"`
}

// Client sends messages to a chat relay
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a new Client for the relay at serverURL
func NewClient(serverURL string) *Client {
	return &Client{
		endpoint:   strings.TrimSuffix(serverURL, "/") + "/api/chat",
		httpClient: &http.Client{},
	}
}

// Send relays text and returns the reply. Transport failures, non-200
// statuses and malformed bodies are all errors.
func (c *Client) Send(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(relayRequest{Message: text})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("relay error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var relayResp relayResponse
	if err := json.NewDecoder(resp.Body).Decode(&relayResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if relayResp.Reply == nil {
		return "", errors.New("response has no reply")
	}

	return *relayResp.Reply, nil
}
