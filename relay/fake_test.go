package relay_test

import (
	"context"
	"sync"

	"github.com/korylprince/mians-chat/relay"
)

// fakeProvider returns canned generations and records requests
type fakeProvider struct {
	name  string
	texts []string
	err   error

	mu       sync.Mutex
	requests []*relay.GenerateRequest
}

func (p *fakeProvider) Name() string {
	if p.name == "" {
		return "Cohere"
	}
	return p.name
}

func (p *fakeProvider) Generate(ctx context.Context, req *relay.GenerateRequest) (*relay.Generation, error) {
	p.mu.Lock()
	p.requests = append(p.requests, req)
	p.mu.Unlock()

	if p.err != nil {
		return nil, p.err
	}
	return &relay.Generation{Texts: p.texts}, nil
}

func (p *fakeProvider) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}
