// Package report renders analysis batches as plain-text reports.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mikey/comm-analyzer/internal/core"
	"github.com/mikey/comm-analyzer/internal/utils"
)

const (
	bodyPreviewSize  = 100
	errorPreviewSize = 200

	timestampLayout = "2006-01-02 15:04:05"
)

// TextReport writes the per-message analysis and aggregate metrics as a
// human-readable text file, and prints a condensed summary to the console.
type TextReport struct {
	logger *zap.Logger
	text   *utils.TextProcessor
}

// NewTextReport creates a new text report writer.
func NewTextReport(logger *zap.Logger, text *utils.TextProcessor) *TextReport {
	return &TextReport{
		logger: logger,
		text:   text,
	}
}

// WriteReport renders the full report to the given path, creating parent
// directories as needed.
func (r *TextReport) WriteReport(path string, batch []core.AnalyzedMessage, content core.ContentMetrics, engagement core.EngagementMetrics) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	var b strings.Builder
	b.WriteString("Communication Analysis Report\n\n")
	b.WriteString("--- Individual Message Analysis ---\n\n")

	for i := range batch {
		r.writeMessage(&b, &batch[i])
		b.WriteString(strings.Repeat("-", 50) + "\n")
	}

	b.WriteString("\n--- Summary Metrics ---\n\n")
	writeContentMetrics(&b, content)
	b.WriteString("\n--- Behavioral Insights ---\n\n")
	writeEngagementMetrics(&b, engagement)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	r.logger.Info("Report saved", zap.String("path", path))
	return nil
}

// PrintSummary prints a condensed metrics summary to standard output.
func (r *TextReport) PrintSummary(content core.ContentMetrics, engagement core.EngagementMetrics) {
	border := strings.Repeat("=", 30)
	fmt.Println("\n" + border)
	fmt.Println("  Analysis Summary  ")
	fmt.Println(border)

	var b strings.Builder
	b.WriteString("\n--- Summary Metrics ---\n")
	writeContentMetrics(&b, content)
	b.WriteString("\n--- Behavioral Insights ---\n")
	writeEngagementMetrics(&b, engagement)
	fmt.Print(b.String())
	fmt.Println(border)
}

func (r *TextReport) writeMessage(b *strings.Builder, entry *core.AnalyzedMessage) {
	fmt.Fprintf(b, "File: %s\n", entry.Source)
	if entry.IsError() {
		fmt.Fprintf(b, " Error: %s\n", entry.Error)
		fmt.Fprintf(b, " Original Content: %s...\n", r.text.Preview(entry.Body, errorPreviewSize))
		return
	}

	fmt.Fprintf(b, " Subject: %s\n", entry.Subject)
	fmt.Fprintf(b, " Sender: %s\n", entry.Sender)
	fmt.Fprintf(b, " Conversation ID: %s\n", entry.ConversationID)
	fmt.Fprintf(b, " Timestamp: %s\n", formatTimestamp(&entry.Message))
	fmt.Fprintf(b, " Message Body Preview: %s...\n", r.text.Preview(entry.Body, bodyPreviewSize))
	fmt.Fprintf(b, "   Spam      : %s\n", entry.SpamLabel)
	fmt.Fprintf(b, "   Sentiment : %s\n", entry.Sentiment)
	fmt.Fprintf(b, "   Style     : %g (%s)\n", entry.StyleScore, entry.Formality)
}

func writeContentMetrics(b *strings.Builder, m core.ContentMetrics) {
	fmt.Fprintf(b, "Total Messages        : %d\n", m.TotalMessages)
	fmt.Fprintf(b, "Spam Breakdown        : SPAM = %d, HAM = %d\n", m.SpamCount, m.HamCount)
	fmt.Fprintf(b, "Sentiment Breakdown   : positive = %d, negative = %d, neutral = %d\n",
		m.Sentiment.Positive, m.Sentiment.Negative, m.Sentiment.Neutral)
	fmt.Fprintf(b, "Average Style Score   : %g\n", m.AverageStyleScore)
	fmt.Fprintf(b, "Formality Breakdown   : formal = %d, informal = %d, neutral = %d\n",
		m.Formality.Formal, m.Formality.Informal, m.Formality.Neutral)
}

func writeEngagementMetrics(b *strings.Builder, m core.EngagementMetrics) {
	fmt.Fprintf(b, "Top Senders           : %s\n", formatSenders(m.TopSenders))
	if m.AvgResponseSeconds != nil {
		fmt.Fprintf(b, "Avg Response Delay    : %g seconds\n", *m.AvgResponseSeconds)
	} else {
		b.WriteString("Avg Response Delay    : [Not enough data for response time calculation]\n")
	}

	b.WriteString("Suggestions           :\n")
	if len(m.Suggestions) == 0 {
		b.WriteString(" - No behavioral recommendations found.\n")
		return
	}
	for _, tip := range m.Suggestions {
		fmt.Fprintf(b, " - %s\n", tip)
	}
}

// formatSenders renders the sender frequency table most-active first, with
// name as the tiebreaker so output is stable.
func formatSenders(senders map[string]int) string {
	if len(senders) == 0 {
		return "none"
	}

	names := make([]string, 0, len(senders))
	for name := range senders {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if senders[names[i]] != senders[names[j]] {
			return senders[names[i]] > senders[names[j]]
		}
		return names[i] < names[j]
	})

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s = %d", name, senders[name])
	}
	return strings.Join(parts, ", ")
}

func formatTimestamp(msg *core.Message) string {
	switch {
	case msg.Timestamp != nil:
		return msg.Timestamp.Format(timestampLayout)
	case msg.RawTimestamp != "":
		return msg.RawTimestamp
	default:
		return "N/A"
	}
}

// ReportFileName returns a timestamped report file name inside dir.
func ReportFileName(dir string) string {
	return filepath.Join(dir, fmt.Sprintf("report_%s.txt", time.Now().Format("2006-01-02_15-04-05")))
}
