package relay

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// DefaultAltBrand is the brand substituted for the provider's name
const DefaultAltBrand = "Mians"

// Relay forwards single messages to a Provider and rebrands the result.
// A Relay holds no per-request state and is safe for concurrent use.
type Relay struct {
	provider Provider
	model    string
	altBrand string
	rebrand  *Rebrander
	logger   *zap.Logger
}

// Option configures a Relay
type Option func(*Relay)

// WithAltBrand sets the brand substituted into generated text
func WithAltBrand(brand string) Option {
	return func(r *Relay) {
		if brand != "" {
			r.altBrand = brand
		}
	}
}

// WithLogger sets the logger used to record provider failures
func WithLogger(logger *zap.Logger) Option {
	return func(r *Relay) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a new Relay for the given provider and model
func New(provider Provider, model string, opts ...Option) *Relay {
	r := &Relay{
		provider: provider,
		model:    model,
		altBrand: DefaultAltBrand,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.rebrand = NewRebrander(provider.Name(), r.altBrand)
	return r
}

// ProviderName returns the brand of the underlying provider
func (r *Relay) ProviderName() string {
	return r.provider.Name()
}

// Reply sends message to the provider and returns the rebranded first
// generation. Only an empty message is rejected; whitespace is passed through.
// Errors are always of type *Error.
func (r *Relay) Reply(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", &Error{Description: "Message is required", Type: ErrorTypeValidation, Err: errors.New("message empty")}
	}

	gen, err := r.provider.Generate(ctx, &GenerateRequest{
		Model:       r.model,
		Prompt:      BuildPrompt(r.altBrand, message),
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
	})
	if err == nil && (gen == nil || len(gen.Texts) == 0) {
		err = errors.New("no generations returned")
	}
	if err != nil {
		r.logger.Error("provider request failed",
			zap.String("provider", r.provider.Name()),
			zap.String("model", r.model),
			zap.Error(err),
		)
		return "", &Error{Description: "Could not generate reply", Type: ErrorTypeProvider, Err: err}
	}

	return r.rebrand.Rebrand(gen.Texts[0]), nil
}
