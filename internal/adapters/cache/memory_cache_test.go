package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/comm-analyzer/internal/core"
)

func newTestEntry(key string, ttl time.Duration) *core.CacheEntry {
	now := time.Now()
	return &core.CacheEntry{
		Key:        key,
		SpamLabel:  core.LabelSpam,
		Sentiment:  core.SentimentNegative,
		StyleScore: 12.34,
		Formality:  core.FormalityInformal,
		LastSeen:   now,
		ExpiresAt:  now.Add(ttl),
	}
}

func TestMemoryCacheSetAndGet(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()
	ctx := context.Background()

	entry := newTestEntry("k1", time.Hour)
	require.NoError(t, c.Set(ctx, entry))

	got, err := c.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, core.LabelSpam, got.SpamLabel)
	assert.Equal(t, core.SentimentNegative, got.Sentiment)
	assert.InDelta(t, 12.34, got.StyleScore, 1e-9)
	assert.Equal(t, core.FormalityInformal, got.Formality)
}

func TestMemoryCacheMissReturnsErrNotFound(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()

	_, err := c.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCacheExpiredEntryNotReturned(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, newTestEntry("k1", -time.Minute)))

	_, err := c.Get(ctx, "k1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, newTestEntry("k1", time.Hour)))
	require.NoError(t, c.Delete(ctx, "k1"))

	_, err := c.Get(ctx, "k1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCacheCleanupRemovesOnlyExpired(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, newTestEntry("expired", -time.Minute)))
	require.NoError(t, c.Set(ctx, newTestEntry("fresh", time.Hour)))

	require.NoError(t, c.Cleanup(ctx))

	_, err := c.Get(ctx, "expired")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Get(ctx, "fresh")
	assert.NoError(t, err)
}

func TestMemoryCacheGetReturnsCopy(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, newTestEntry("k1", time.Hour)))

	got, err := c.Get(ctx, "k1")
	require.NoError(t, err)
	got.SpamLabel = core.LabelHam

	again, err := c.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, core.LabelSpam, again.SpamLabel)
}
