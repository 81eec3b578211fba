package analyzer

import (
	"github.com/mikey/comm-analyzer/internal/core"
	"github.com/mikey/comm-analyzer/internal/utils"
)

// Closed lexicons for sentiment classification. The exact word lists matter:
// downstream metrics and thresholds were tuned against them.
var positiveWords = wordSet(
	"good", "great", "excellent", "wonderful", "amazing", "happy", "joy",
	"love", "fantastic", "awesome", "brilliant", "positive", "super",
	"success", "benefit", "pleasure", "like", "best", "perfect", "nice",
	"beautiful", "friendly", "kind", "optimistic", "glad", "delight", "cheer",
	"agree", "fine", "ok", "okay", "cool", "yeah",
)

var negativeWords = wordSet(
	"bad", "terrible", "horrible", "awful", "sad", "unhappy", "hate",
	"poor", "negative", "fail", "problem", "issue", "worry", "stress",
	"difficult", "worst", "ugly", "dislike", "error", "compromise", "urgent",
	"spam", "scam", "fraud", "danger", "risk", "threat", "warning", "suspicious",
	"not", "no", "never", "can't", "don't",
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Sentiment is a lexicon-based sentiment analyzer.
type Sentiment struct{}

// NewSentiment creates a new sentiment analyzer.
func NewSentiment() *Sentiment {
	return &Sentiment{}
}

// Analyze classifies the emotional tone of the text by counting lexicon hits.
// A 0-0 tie and empty input are neutral.
func (s *Sentiment) Analyze(text string) string {
	words := utils.Tokenize(text)

	positive := 0
	negative := 0
	for _, word := range words {
		if _, ok := positiveWords[word]; ok {
			positive++
		} else if _, ok := negativeWords[word]; ok {
			negative++
		}
	}

	switch {
	case positive > negative:
		return core.SentimentPositive
	case negative > positive:
		return core.SentimentNegative
	default:
		return core.SentimentNeutral
	}
}
