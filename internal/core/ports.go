package core

import (
	"context"
)

// Classifier defines the interface for calling a hosted classifier model.
// A nil result with a nil error means the model answered but produced
// nothing usable ("no classification")
type Classifier interface {
	// Classify sends text to the named model and returns its best label/score
	Classify(ctx context.Context, model string, text string) (*ClassificationResult, error)

	// IsConfigured reports whether the classifier has a credential to call with
	IsConfigured() bool
}

// ChatClient defines the interface for streaming chat completions from
// a hosted LLM provider
type ChatClient interface {
	// StreamChat sends the conversation to the model and delivers each
	// text chunk to onChunk as it arrives
	StreamChat(ctx context.Context, model string, messages []ChatMessage, onChunk func(string) error) error
}

// CacheRepository defines the interface for caching detection results
type CacheRepository interface {
	// Get retrieves a cached entry for a model/text pair
	Get(ctx context.Context, model string, text string) (*CacheEntry, error)

	// Set stores a cache entry
	Set(ctx context.Context, entry *CacheEntry) error

	// Delete removes a cache entry
	Delete(ctx context.Context, model string, text string) error

	// Cleanup removes expired entries
	Cleanup(ctx context.Context) error
}
