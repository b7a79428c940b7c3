package cache

import (
	"sync"

	"github.com/mikey/email-triage/internal/core"
	"go.uber.org/zap"
)

// DefaultMaxEntries bounds the cache when no size is configured
const DefaultMaxEntries = 100

// MemoryCache is a bounded in-memory implementation of core.ResponseCache.
// When full, the oldest inserted entry is evicted.
type MemoryCache struct {
	entries    map[string]*core.Prediction
	order      []string
	maxEntries int
	mu         sync.Mutex
	logger     *zap.Logger
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache(maxEntries int, logger *zap.Logger) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryCache{
		entries:    make(map[string]*core.Prediction, maxEntries),
		order:      make([]string, 0, maxEntries),
		maxEntries: maxEntries,
		logger:     logger,
	}
}

// Get retrieves a cached prediction
func (c *MemoryCache) Get(key string) (*core.Prediction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return clonePrediction(p), true
}

// Set stores a prediction. Overwriting a key keeps its original position.
func (c *MemoryCache) Set(key string, prediction *core.Prediction) {
	if prediction == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.entries[key] = clonePrediction(prediction)
		return
	}

	for len(c.order) >= c.maxEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
		c.logger.Debug("Evicted oldest cache entry", zap.Int("size", len(c.entries)))
	}

	c.entries[key] = clonePrediction(prediction)
	c.order = append(c.order, key)
}

// Clear removes every entry
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[string]*core.Prediction, c.maxEntries)
	c.order = make([]string, 0, c.maxEntries)
	c.logger.Info("Cleared classifier cache", zap.Int("entries", n))
}

// Len returns the number of cached entries
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func clonePrediction(p *core.Prediction) *core.Prediction {
	return &core.Prediction{
		Labels: append([]string(nil), p.Labels...),
		Scores: append([]float64(nil), p.Scores...),
	}
}
