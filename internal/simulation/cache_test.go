package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/galton-mountains/internal/galton"
)

func TestCoefficientCacheHitAndMiss(t *testing.T) {
	cc := NewCoefficientCache(time.Minute, 16)

	row, cached := cc.Row(4)
	assert.False(t, cached)
	assert.Equal(t, []float64{1, 4, 6, 4, 1}, row)

	row, cached = cc.Row(4)
	assert.True(t, cached)
	assert.Equal(t, []float64{1, 4, 6, 4, 1}, row)

	hits, misses, ratio := cc.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
	assert.InDelta(t, 0.5, ratio, 1e-12)
}

func TestCoefficientCacheReturnsCopies(t *testing.T) {
	cc := NewCoefficientCache(time.Minute, 16)

	row, _ := cc.Row(4)
	row[0] = 999

	again, cached := cc.Row(4)
	require.True(t, cached)
	assert.Equal(t, 1.0, again[0])
}

func TestCoefficientCacheKeyedByRows(t *testing.T) {
	cc := NewCoefficientCache(time.Minute, 16)

	cc.Row(4)
	_, cached := cc.Row(5)
	assert.False(t, cached)
	assert.Equal(t, 2, cc.Len())
}

func TestCoefficientCacheMaxSize(t *testing.T) {
	cc := NewCoefficientCache(time.Minute, 2)

	cc.Row(1)
	cc.Row(2)
	cc.Row(3)

	assert.LessOrEqual(t, cc.Len(), 2)
	row, cached := cc.Row(3)
	require.True(t, cached)
	assert.Equal(t, galton.CoefficientRow(3), row)
}

func TestCoefficientCacheEmptyStats(t *testing.T) {
	hits, misses, ratio := NewCoefficientCache(time.Minute, 4).Stats()
	assert.Zero(t, hits)
	assert.Zero(t, misses)
	assert.Zero(t, ratio)
}
