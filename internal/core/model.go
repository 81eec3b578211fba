package core

import (
	"strings"
	"time"
)

// Spam labels assigned by the classifier.
const (
	LabelSpam = "SPAM"
	LabelHam  = "HAM"
)

// Sentiment labels assigned by the sentiment analyzer.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Formality labels assigned by the style analyzer.
const (
	FormalityFormal   = "formal"
	FormalityInformal = "informal"
	FormalityNeutral  = "neutral"
)

// Message is the canonical record produced by the parser. A record is either
// a parsed message or an error record: when Error is non-empty the record is
// excluded from analysis and metrics but kept for reporting.
type Message struct {
	Source         string
	MessageID      string
	Sender         string
	ConversationID string
	Timestamp      *time.Time
	// RawTimestamp holds the original timestamp text when it could not be
	// parsed into a time value. The metrics aggregator re-parses it.
	RawTimestamp string
	Subject      string
	Body         string
	Error        string
}

// IsError reports whether the record is an error record.
func (m *Message) IsError() bool {
	return m.Error != ""
}

// HasContent reports whether the record carries a non-empty body after trimming.
func (m *Message) HasContent() bool {
	return strings.TrimSpace(m.Body) != ""
}

// Analysis holds the per-message verdicts of the three analyzers.
type Analysis struct {
	SpamLabel  string
	Sentiment  string
	StyleScore float64
	Formality  string
}

// AnalyzedMessage is a canonical record enriched with analysis results.
// Error records carry a zero Analysis.
type AnalyzedMessage struct {
	Message
	Analysis
}

// SentimentCounts is the sentiment histogram over a batch.
type SentimentCounts struct {
	Positive int
	Negative int
	Neutral  int
}

// FormalityCounts is the formality histogram over a batch.
type FormalityCounts struct {
	Formal   int
	Informal int
	Neutral  int
}

// ContentMetrics summarizes what the messages in a batch contain.
type ContentMetrics struct {
	TotalMessages     int
	SpamCount         int
	HamCount          int
	Sentiment         SentimentCounts
	AverageStyleScore float64
	Formality         FormalityCounts
}

// EngagementMetrics summarizes sender behavior across a batch.
// AvgResponseSeconds is nil when no response gap was ever observed.
type EngagementMetrics struct {
	TopSenders         map[string]int
	AvgResponseSeconds *float64
	Suggestions        []string
}

// CacheEntry is a cached analysis verdict keyed by message content hash.
type CacheEntry struct {
	Key        string
	SpamLabel  string
	Sentiment  string
	StyleScore float64
	Formality  string
	LastSeen   time.Time
	ExpiresAt  time.Time
}
