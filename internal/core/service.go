package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.uber.org/zap"
)

// SenderWhitelist reports whether a sender's messages should bypass the spam
// classifier.
type SenderWhitelist interface {
	IsWhitelisted(sender string) bool
}

// AnalysisService runs the three analyzers over parsed message batches.
// All collaborators are read-only after construction, so one service instance
// is safe to share across concurrent batch runs.
type AnalysisService struct {
	classifier   SpamClassifier
	sentiment    SentimentAnalyzer
	style        StyleAnalyzer
	cache        CacheRepository
	whitelist    SenderWhitelist
	logger       *zap.Logger
	cacheEnabled bool
	cacheTTL     time.Duration
}

// NewAnalysisService creates a new analysis service. cache may be nil when
// caching is disabled.
func NewAnalysisService(
	classifier SpamClassifier,
	sentiment SentimentAnalyzer,
	style StyleAnalyzer,
	cache CacheRepository,
	whitelist SenderWhitelist,
	logger *zap.Logger,
	cacheEnabled bool,
	cacheTTL time.Duration,
) *AnalysisService {
	return &AnalysisService{
		classifier:   classifier,
		sentiment:    sentiment,
		style:        style,
		cache:        cache,
		whitelist:    whitelist,
		logger:       logger,
		cacheEnabled: cacheEnabled,
		cacheTTL:     cacheTTL,
	}
}

// AnalyzeBatch enriches every record of the batch, preserving input order.
// Error records pass through untouched with a zero analysis; records whose
// body is empty after trimming are dropped before analysis.
func (s *AnalysisService) AnalyzeBatch(ctx context.Context, batch []Message) []AnalyzedMessage {
	analyzed := make([]AnalyzedMessage, 0, len(batch))
	for _, msg := range batch {
		if msg.IsError() {
			analyzed = append(analyzed, AnalyzedMessage{Message: msg})
			continue
		}
		if !msg.HasContent() {
			s.logger.Debug("Skipping message with empty body",
				zap.String("message_id", msg.MessageID))
			continue
		}

		analyzed = append(analyzed, AnalyzedMessage{
			Message:  msg,
			Analysis: s.analyze(ctx, &msg),
		})
	}
	return analyzed
}

// analyze produces the verdict triple for one message. Cached verdicts are
// keyed by content hash only, so the sender whitelist is applied after the
// cache lookup; a whitelisted sender never contaminates the cached verdict
// for identical content from other senders.
func (s *AnalysisService) analyze(ctx context.Context, msg *Message) Analysis {
	key := contentKey(msg.Body)

	analysis, cached := s.lookupCache(ctx, key)
	if !cached {
		score, formality := s.style.Analyze(msg.Body)
		analysis = Analysis{
			SpamLabel:  s.classifier.Predict(msg.Body),
			Sentiment:  s.sentiment.Analyze(msg.Body),
			StyleScore: score,
			Formality:  formality,
		}
		s.storeCache(ctx, key, analysis)
	}

	if s.whitelist != nil && s.whitelist.IsWhitelisted(msg.Sender) {
		if analysis.SpamLabel != LabelHam {
			s.logger.Info("Whitelisted sender, overriding spam label",
				zap.String("sender", msg.Sender),
				zap.String("message_id", msg.MessageID))
		}
		analysis.SpamLabel = LabelHam
	}
	return analysis
}

func (s *AnalysisService) lookupCache(ctx context.Context, key string) (Analysis, bool) {
	if !s.cacheEnabled || s.cache == nil {
		return Analysis{}, false
	}
	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		return Analysis{}, false
	}
	s.logger.Debug("Cache hit for message content", zap.String("key", key))
	return Analysis{
		SpamLabel:  entry.SpamLabel,
		Sentiment:  entry.Sentiment,
		StyleScore: entry.StyleScore,
		Formality:  entry.Formality,
	}, true
}

func (s *AnalysisService) storeCache(ctx context.Context, key string, analysis Analysis) {
	if !s.cacheEnabled || s.cache == nil {
		return
	}
	now := time.Now()
	entry := &CacheEntry{
		Key:        key,
		SpamLabel:  analysis.SpamLabel,
		Sentiment:  analysis.Sentiment,
		StyleScore: analysis.StyleScore,
		Formality:  analysis.Formality,
		LastSeen:   now,
		ExpiresAt:  now.Add(s.cacheTTL),
	}
	if err := s.cache.Set(ctx, entry); err != nil {
		s.logger.Error("Failed to update cache", zap.Error(err))
	}
}

// contentKey derives the cache key for a message body.
func contentKey(body string) string {
	sum := sha256.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}
