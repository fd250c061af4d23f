package llm

import (
	"context"
	"fmt"
)

// Client is an abstraction over text-generation providers.
type Client interface {
	// GenerateContent produces text for a system+user prompt pair.
	GenerateContent(ctx context.Context, system, prompt string, opts Options) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a client for the configured backend.
func NewClient(ctx context.Context, config *Config) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Backend {
	case BackendGemini:
		return NewGeminiClient(ctx, config)
	case BackendOllama:
		return NewOllamaClient(config)
	case BackendOffline, "":
		return NewOfflineClient(), nil
	default:
		return nil, fmt.Errorf("unknown llm backend %q", config.Backend)
	}
}
