// Package definition provides a pluggable interface for definition gloss providers.
package definition

import (
	"context"
	"fmt"

	"github.com/puzzlewire/wordled/internal/config"
)

// Provider supplies a short free-text gloss for a resolved answer. The
// gloss is optional record data: callers treat any failure as an empty
// definition, never as a pipeline failure.
type Provider interface {
	// Define returns a one-line definition of the word.
	Define(ctx context.Context, word string) (string, error)

	// Name returns the provider name.
	Name() string
}

// NewProvider creates a definition provider based on configuration. A nil
// provider (with nil error) means definitions are disabled.
func NewProvider(cfg config.DefinitionConfig) (Provider, error) {
	switch cfg.Provider {
	case "", "none":
		return nil, nil
	case "dictionary":
		return NewDictionaryClient(), nil
	case "openai":
		return NewOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported definition provider: %s", cfg.Provider)
	}
}
