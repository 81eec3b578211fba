package ports

import (
	"github.com/mikey/comm-analyzer/internal/core"
)

// ReportWriter defines the interface for rendering a finished analysis batch.
type ReportWriter interface {
	// WriteReport renders the full per-message report plus aggregate metrics
	// to the given path.
	WriteReport(path string, batch []core.AnalyzedMessage, content core.ContentMetrics, engagement core.EngagementMetrics) error

	// PrintSummary prints a condensed metrics summary to standard output.
	PrintSummary(content core.ContentMetrics, engagement core.EngagementMetrics)
}
