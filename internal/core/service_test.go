package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/comm-analyzer/internal/adapters/cache"
	"github.com/mikey/comm-analyzer/internal/core"
	"github.com/mikey/comm-analyzer/internal/whitelist"
)

// countingClassifier labels anything containing "spam" as spam and counts
// how often it is consulted, so cache behavior is observable.
type countingClassifier struct {
	calls int
	label string
}

func (c *countingClassifier) Predict(text string) string {
	c.calls++
	return c.label
}

type fixedSentiment struct{ label string }

func (f fixedSentiment) Analyze(text string) string { return f.label }

type fixedStyle struct {
	score     float64
	formality string
}

func (f fixedStyle) Analyze(text string) (float64, string) { return f.score, f.formality }

func newTestService(classifier core.SpamClassifier, repo core.CacheRepository, wl core.SenderWhitelist, cacheEnabled bool) *core.AnalysisService {
	return core.NewAnalysisService(
		classifier,
		fixedSentiment{label: core.SentimentNeutral},
		fixedStyle{score: 50.0, formality: core.FormalityNeutral},
		repo,
		wl,
		zap.NewNop(),
		cacheEnabled,
		time.Hour,
	)
}

func TestAnalyzeBatchPreservesOrder(t *testing.T) {
	clf := &countingClassifier{label: core.LabelHam}
	svc := newTestService(clf, nil, nil, false)

	batch := []core.Message{
		{MessageID: "m1", Body: "first"},
		{MessageID: "m2", Body: "second"},
		{MessageID: "m3", Body: "third"},
	}

	analyzed := svc.AnalyzeBatch(context.Background(), batch)
	require.Len(t, analyzed, 3)
	assert.Equal(t, "m1", analyzed[0].MessageID)
	assert.Equal(t, "m2", analyzed[1].MessageID)
	assert.Equal(t, "m3", analyzed[2].MessageID)
	for _, entry := range analyzed {
		assert.Equal(t, core.LabelHam, entry.SpamLabel)
		assert.Equal(t, core.SentimentNeutral, entry.Sentiment)
		assert.InDelta(t, 50.0, entry.StyleScore, 1e-9)
	}
}

func TestAnalyzeBatchDropsEmptyBodies(t *testing.T) {
	clf := &countingClassifier{label: core.LabelHam}
	svc := newTestService(clf, nil, nil, false)

	batch := []core.Message{
		{MessageID: "m1", Body: "content"},
		{MessageID: "m2", Body: "   \n\t  "},
		{MessageID: "m3", Body: ""},
	}

	analyzed := svc.AnalyzeBatch(context.Background(), batch)
	require.Len(t, analyzed, 1)
	assert.Equal(t, "m1", analyzed[0].MessageID)
	assert.Equal(t, 1, clf.calls)
}

func TestAnalyzeBatchPassesErrorRecordsThrough(t *testing.T) {
	clf := &countingClassifier{label: core.LabelSpam}
	svc := newTestService(clf, nil, nil, false)

	batch := []core.Message{
		{MessageID: "bad", Error: "unreadable block", Body: "partial preview"},
		{MessageID: "good", Body: "real content"},
	}

	analyzed := svc.AnalyzeBatch(context.Background(), batch)
	require.Len(t, analyzed, 2)

	assert.Equal(t, "unreadable block", analyzed[0].Error)
	assert.Equal(t, core.Analysis{}, analyzed[0].Analysis)
	assert.Equal(t, core.LabelSpam, analyzed[1].SpamLabel)
	assert.Equal(t, 1, clf.calls, "error records must not reach the classifier")
}

func TestAnalyzeBatchWhitelistOverride(t *testing.T) {
	clf := &countingClassifier{label: core.LabelSpam}
	wl := whitelist.NewChecker([]string{"Trusted@Example.com"}, zap.NewNop())
	svc := newTestService(clf, nil, wl, false)

	batch := []core.Message{
		{MessageID: "m1", Sender: "trusted@example.com", Body: "free money now"},
		{MessageID: "m2", Sender: "stranger@example.com", Body: "free money now"},
	}

	analyzed := svc.AnalyzeBatch(context.Background(), batch)
	require.Len(t, analyzed, 2)
	assert.Equal(t, core.LabelHam, analyzed[0].SpamLabel)
	assert.Equal(t, core.LabelSpam, analyzed[1].SpamLabel)
}

func TestAnalyzeBatchCachesByContent(t *testing.T) {
	clf := &countingClassifier{label: core.LabelSpam}
	repo := cache.NewMemoryCache(zap.NewNop(), time.Hour)
	defer repo.Stop()

	svc := newTestService(clf, repo, nil, true)

	batch := []core.Message{
		{MessageID: "m1", Sender: "a", Body: "identical content"},
		{MessageID: "m2", Sender: "b", Body: "identical content"},
		{MessageID: "m3", Sender: "c", Body: "different content"},
	}

	analyzed := svc.AnalyzeBatch(context.Background(), batch)
	require.Len(t, analyzed, 3)
	assert.Equal(t, 2, clf.calls, "identical bodies must share one cached verdict")
	for _, entry := range analyzed {
		assert.Equal(t, core.LabelSpam, entry.SpamLabel)
	}
}

func TestAnalyzeBatchWhitelistDoesNotPoisonCache(t *testing.T) {
	clf := &countingClassifier{label: core.LabelSpam}
	wl := whitelist.NewChecker([]string{"trusted@example.com"}, zap.NewNop())
	repo := cache.NewMemoryCache(zap.NewNop(), time.Hour)
	defer repo.Stop()

	svc := newTestService(clf, repo, wl, true)

	// Whitelisted sender first: its override must not be what the second,
	// non-whitelisted sender reads back from the cache.
	batch := []core.Message{
		{MessageID: "m1", Sender: "trusted@example.com", Body: "same pitch"},
		{MessageID: "m2", Sender: "stranger@example.com", Body: "same pitch"},
	}

	analyzed := svc.AnalyzeBatch(context.Background(), batch)
	require.Len(t, analyzed, 2)
	assert.Equal(t, core.LabelHam, analyzed[0].SpamLabel)
	assert.Equal(t, core.LabelSpam, analyzed[1].SpamLabel)
	assert.Equal(t, 1, clf.calls)
}

func TestAnalyzeBatchCacheDisabledIgnoresRepository(t *testing.T) {
	clf := &countingClassifier{label: core.LabelHam}
	repo := cache.NewMemoryCache(zap.NewNop(), time.Hour)
	defer repo.Stop()

	svc := newTestService(clf, repo, nil, false)

	batch := []core.Message{
		{MessageID: "m1", Body: "same"},
		{MessageID: "m2", Body: "same"},
	}

	svc.AnalyzeBatch(context.Background(), batch)
	assert.Equal(t, 2, clf.calls)
}

func TestAnalyzeBatchEmptyInput(t *testing.T) {
	svc := newTestService(&countingClassifier{label: core.LabelHam}, nil, nil, false)

	analyzed := svc.AnalyzeBatch(context.Background(), nil)
	assert.Empty(t, analyzed)
}
