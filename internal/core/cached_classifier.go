package core

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// CachedClassifier wraps a Classifier with a read-through cache keyed
// by model and text. Cache failures are logged and never surfaced;
// the wrapped classifier is always the fallback
type CachedClassifier struct {
	classifier Classifier
	cache      CacheRepository
	logger     *zap.Logger
	ttl        time.Duration
}

// NewCachedClassifier creates a classifier with read-through caching
func NewCachedClassifier(classifier Classifier, cache CacheRepository, logger *zap.Logger, ttl time.Duration) *CachedClassifier {
	return &CachedClassifier{
		classifier: classifier,
		cache:      cache,
		logger:     logger,
		ttl:        ttl,
	}
}

// IsConfigured reports whether the wrapped classifier has a credential
func (c *CachedClassifier) IsConfigured() bool {
	return c.classifier.IsConfigured()
}

// Classify returns a cached result when one is present, otherwise
// calls the wrapped classifier and stores its answer
func (c *CachedClassifier) Classify(ctx context.Context, model string, text string) (*ClassificationResult, error) {
	if entry, err := c.cache.Get(ctx, model, text); err == nil && entry != nil {
		c.logger.Debug("Classification cache hit", zap.String("model", model))
		return &ClassificationResult{Label: entry.Label, Score: entry.Score}, nil
	}

	result, err := c.classifier.Classify(ctx, model, text)
	if err != nil || result == nil {
		return result, err
	}

	entry := &CacheEntry{
		Model:     model,
		Text:      text,
		Label:     result.Label,
		Score:     result.Score,
		LastSeen:  time.Now(),
		ExpiresAt: time.Now().Add(c.ttl),
	}
	if err := c.cache.Set(ctx, entry); err != nil {
		c.logger.Error("Failed to update classification cache", zap.Error(err))
	}

	return result, nil
}
