package relay

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// errMissingGeminiKey is returned by Generate when no API key was configured
var errMissingGeminiKey = errors.New("Gemini API key is required")

// GeminiProvider uses Google's Gemini API
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a new GeminiProvider. baseURL may be empty to use
// the Gemini default. Without an apiKey every Generate call fails.
func NewGeminiProvider(ctx context.Context, apiKey, baseURL string) (*GeminiProvider, error) {
	if apiKey == "" {
		return &GeminiProvider{}, nil
	}

	config := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		config.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

// Name returns "Gemini"
func (p *GeminiProvider) Name() string {
	return "Gemini"
}

// Generate makes a single GenerateContent request
func (p *GeminiProvider) Generate(ctx context.Context, req *GenerateRequest) (*Generation, error) {
	if p.client == nil {
		return nil, errMissingGeminiKey
	}

	resp, err := p.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
		Temperature:     genai.Ptr(float32(req.Temperature)),
	})
	if err != nil {
		return nil, fmt.Errorf("Gemini generate failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, errors.New("no candidates returned")
	}

	gen := &Generation{}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		var text string
		for _, part := range c.Content.Parts {
			text += part.Text
		}
		gen.Texts = append(gen.Texts, text)
	}
	if len(gen.Texts) == 0 {
		return nil, errors.New("no content in candidates")
	}
	return gen, nil
}
