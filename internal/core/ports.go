package core

import (
	"context"
)

// SpamClassifier predicts whether a message body is spam.
type SpamClassifier interface {
	// Predict returns LabelSpam or LabelHam for the given text.
	Predict(text string) string
}

// SentimentAnalyzer classifies the emotional tone of a message body.
type SentimentAnalyzer interface {
	// Analyze returns SentimentPositive, SentimentNegative or SentimentNeutral.
	Analyze(text string) string
}

// StyleAnalyzer scores the writing style of a message body.
type StyleAnalyzer interface {
	// Analyze returns a style score in [0,100] and a formality label.
	Analyze(text string) (float64, string)
}

// CacheRepository defines the interface for caching analysis verdicts.
type CacheRepository interface {
	// Get retrieves a cached entry for a content key.
	Get(ctx context.Context, key string) (*CacheEntry, error)

	// Set stores a cache entry.
	Set(ctx context.Context, entry *CacheEntry) error

	// Delete removes a cache entry.
	Delete(ctx context.Context, key string) error

	// Cleanup removes expired entries.
	Cleanup(ctx context.Context) error
}
