package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultCohereEndpoint is Cohere's generate API
const DefaultCohereEndpoint = "https://api.cohere.ai/v1/generate"

// cohereRequest is the request body for the generate API
type cohereRequest struct {
	Model       string  `json:"model,omitempty"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// cohereResponse is the response from the generate API
type cohereResponse struct {
	ID          string             `json:"id"`
	Generations []cohereGeneration `json:"generations"`
}

// cohereGeneration is a single generated candidate
type cohereGeneration struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// CohereClient is a client for Cohere's generate API
type CohereClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewCohereClient creates a new Cohere client. An empty endpoint uses
// DefaultCohereEndpoint.
func NewCohereClient(endpoint, apiKey string) *CohereClient {
	if endpoint == "" {
		endpoint = DefaultCohereEndpoint
	}
	return &CohereClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// Name returns "Cohere"
func (c *CohereClient) Name() string {
	return "Cohere"
}

// Generate makes a non-streaming generate request
func (c *CohereClient) Generate(ctx context.Context, req *GenerateRequest) (*Generation, error) {
	body, err := json.Marshal(cohereRequest{
		Model:       req.Model,
		Prompt:      req.Prompt,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var genResp cohereResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(genResp.Generations) == 0 {
		return nil, fmt.Errorf("no generations in response %s", genResp.ID)
	}

	gen := &Generation{Texts: make([]string, len(genResp.Generations))}
	for i, g := range genResp.Generations {
		gen.Texts[i] = g.Text
	}
	return gen, nil
}
