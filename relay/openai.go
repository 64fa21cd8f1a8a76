package relay

import (
	"context"
	"fmt"

	oai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider uses an OpenAI-compatible completions API
type OpenAIProvider struct {
	client *oai.Client
}

// NewOpenAIProvider creates a new OpenAIProvider. baseURL may be empty to use
// the OpenAI default.
func NewOpenAIProvider(apiKey, baseURL string) *OpenAIProvider {
	config := oai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIProvider{client: oai.NewClientWithConfig(config)}
}

// Name returns "OpenAI"
func (p *OpenAIProvider) Name() string {
	return "OpenAI"
}

// Generate makes a single completion request
func (p *OpenAIProvider) Generate(ctx context.Context, req *GenerateRequest) (*Generation, error) {
	resp, err := p.client.CreateCompletion(ctx, oai.CompletionRequest{
		Model:       req.Model,
		Prompt:      req.Prompt,
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in completion %s", resp.ID)
	}

	gen := &Generation{Texts: make([]string, len(resp.Choices))}
	for i, c := range resp.Choices {
		gen.Texts[i] = c.Text
	}
	return gen, nil
}
