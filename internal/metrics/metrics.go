// Package metrics folds analyzed message batches into conversation-level
// statistics. Both entry points are pure functions over the batch; error
// records are excluded from every tally, and a batch of only error records
// yields zero-valued metrics.
package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/mikey/comm-analyzer/internal/core"
	"github.com/mikey/comm-analyzer/internal/parser"
)

// Fixed suggestion heuristics. The thresholds are tuned values; do not
// re-derive them.
const (
	clarityScoreThreshold = 40.0
	formalityExcessRatio  = 1.5
	promptnessGapSeconds  = 3600.0
)

// Suggestion texts emitted by the engagement metrics, in evaluation order.
const (
	SuggestionClarity    = "Improve clarity and structure in messages."
	SuggestionFormality  = "Consider using more formal phrasing for professional contexts."
	SuggestionPromptness = "Respond to messages more promptly to improve conversation engagement."
)

// CalculateContentMetrics tallies what the batch contains: spam/ham counts,
// sentiment and formality histograms, and the average style score (0.0 for an
// empty batch).
func CalculateContentMetrics(batch []core.AnalyzedMessage) core.ContentMetrics {
	var m core.ContentMetrics
	var styleSum float64
	var styleCount int

	for i := range batch {
		entry := &batch[i]
		if entry.IsError() {
			continue
		}
		m.TotalMessages++

		switch entry.SpamLabel {
		case core.LabelSpam:
			m.SpamCount++
		case core.LabelHam:
			m.HamCount++
		}

		switch entry.Sentiment {
		case core.SentimentPositive:
			m.Sentiment.Positive++
		case core.SentimentNegative:
			m.Sentiment.Negative++
		case core.SentimentNeutral:
			m.Sentiment.Neutral++
		}

		styleSum += entry.StyleScore
		styleCount++

		switch entry.Formality {
		case core.FormalityFormal:
			m.Formality.Formal++
		case core.FormalityInformal:
			m.Formality.Informal++
		case core.FormalityNeutral:
			m.Formality.Neutral++
		}
	}

	if styleCount > 0 {
		m.AverageStyleScore = round2(styleSum / float64(styleCount))
	}
	return m
}

// CalculateEngagementMetrics computes sender frequency, the average
// inter-message response gap across all conversations, and the applicable
// suggestions. The average gap is nil when no conversation ever produced a
// gap. Timestamps that arrived as raw text are re-parsed through the same
// fallback chain used during ingestion.
func CalculateEngagementMetrics(batch []core.AnalyzedMessage) core.EngagementMetrics {
	m := core.EngagementMetrics{
		TopSenders: make(map[string]int),
	}

	conversationTimes := make(map[string][]time.Time)
	var formality core.FormalityCounts
	var styleSum float64
	var styleCount int

	for i := range batch {
		entry := &batch[i]
		if entry.IsError() {
			continue
		}

		if entry.Sender != "" {
			m.TopSenders[entry.Sender]++
		}

		styleSum += entry.StyleScore
		styleCount++

		switch entry.Formality {
		case core.FormalityFormal:
			formality.Formal++
		case core.FormalityInformal:
			formality.Informal++
		case core.FormalityNeutral:
			formality.Neutral++
		}

		if entry.ConversationID == "" {
			continue
		}
		if entry.Timestamp != nil {
			conversationTimes[entry.ConversationID] = append(conversationTimes[entry.ConversationID], *entry.Timestamp)
		} else if ts := parser.ParseTimestamp(entry.RawTimestamp); ts != nil {
			conversationTimes[entry.ConversationID] = append(conversationTimes[entry.ConversationID], *ts)
		}
	}

	var gapSum float64
	var gapCount int
	for _, times := range conversationTimes {
		if len(times) < 2 {
			continue
		}
		sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
		for i := 1; i < len(times); i++ {
			gapSum += times[i].Sub(times[i-1]).Seconds()
			gapCount++
		}
	}
	if gapCount > 0 {
		avg := round2(gapSum / float64(gapCount))
		m.AvgResponseSeconds = &avg
	}

	avgStyle := 0.0
	if styleCount > 0 {
		avgStyle = round2(styleSum / float64(styleCount))
	}

	if avgStyle < clarityScoreThreshold {
		m.Suggestions = append(m.Suggestions, SuggestionClarity)
	}
	if formality.Formal+formality.Informal > 0 &&
		float64(formality.Informal) > float64(formality.Formal)*formalityExcessRatio {
		m.Suggestions = append(m.Suggestions, SuggestionFormality)
	}
	if m.AvgResponseSeconds != nil && *m.AvgResponseSeconds > promptnessGapSeconds {
		m.Suggestions = append(m.Suggestions, SuggestionPromptness)
	}

	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
