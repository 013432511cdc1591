package simulation

import (
	"strconv"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/galton-mountains/internal/galton"
	"github.com/yourusername/galton-mountains/internal/metrics"
)

// CoefficientCache memoizes binomial coefficient rows by peg-row count.
// Every sample of a run shares the board size, so all but the first lookup hit.
// Returned slices are copies and may be modified by the caller.
type CoefficientCache struct {
	cache     *cache.Cache
	ttl       time.Duration
	maxSize   int
	mu        sync.Mutex
	hitCount  uint64
	missCount uint64
}

// NewCoefficientCache creates a new coefficient cache
func NewCoefficientCache(ttl time.Duration, maxSize int) *CoefficientCache {
	return &CoefficientCache{
		cache:   cache.New(ttl, ttl*2),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Row returns galton.CoefficientRow(rows), computing it on a miss.
// The second return value reports whether the row came from the cache.
func (cc *CoefficientCache) Row(rows int) ([]float64, bool) {
	key := strconv.Itoa(rows)

	cc.mu.Lock()
	defer cc.mu.Unlock()

	if v, found := cc.cache.Get(key); found {
		if row, ok := v.([]float64); ok {
			cc.hitCount++
			metrics.RecordCacheLookup(true)
			return append([]float64{}, row...), true
		}
	}

	cc.missCount++
	metrics.RecordCacheLookup(false)

	row := galton.CoefficientRow(rows)
	if cc.cache.ItemCount() >= cc.maxSize {
		cc.cache.DeleteExpired()
		if cc.cache.ItemCount() >= cc.maxSize {
			cc.cache.Flush()
		}
	}
	cc.cache.Set(key, append([]float64{}, row...), cc.ttl)
	return row, false
}

// Stats returns hits, misses and the hit ratio
func (cc *CoefficientCache) Stats() (uint64, uint64, float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	total := cc.hitCount + cc.missCount
	if total == 0 {
		return cc.hitCount, cc.missCount, 0
	}
	return cc.hitCount, cc.missCount, float64(cc.hitCount) / float64(total)
}

// Len returns the number of cached rows
func (cc *CoefficientCache) Len() int {
	return cc.cache.ItemCount()
}
