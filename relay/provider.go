package relay

import "context"

// Generation limits applied to every relay call
const (
	MaxTokens   = 300
	Temperature = 0.7
)

// GenerateRequest is a single, non-streaming text generation request
type GenerateRequest struct {
	Model       string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Generation holds the candidate texts returned by a provider
type Generation struct {
	Texts []string
}

// Provider is a hosted text generation service
type Provider interface {
	// Name returns the provider's brand as it may appear in generated text
	Name() string

	// Generate performs exactly one generation call
	Generate(ctx context.Context, req *GenerateRequest) (*Generation, error)
}
