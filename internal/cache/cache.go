package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"tsum/internal/domain"
)

// Cache stores summaries keyed by Key.
type Cache interface {
	Get(key string) ([]domain.Sentence, bool)
	Set(key string, sentences []domain.Sentence)
	Clear()
}

// Key identifies a summary by the options that produced it, the ratio and
// the text.
func Key(options string, ratio float64, text string) string {
	h := sha256.New()
	h.Write([]byte(options))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatFloat(ratio, 'g', -1, 64)))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return "tsum:v1:" + hex.EncodeToString(h.Sum(nil))
}

// MemoryCache is an expiring in-memory cache.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get returns a copy of the cached sentences so callers cannot mutate the entry.
func (c *MemoryCache) Get(key string) ([]domain.Sentence, bool) {
	val, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	stored := val.([]domain.Sentence)
	out := make([]domain.Sentence, len(stored))
	copy(out, stored)
	return out, true
}

func (c *MemoryCache) Set(key string, sentences []domain.Sentence) {
	stored := make([]domain.Sentence, len(sentences))
	copy(stored, sentences)
	c.cache.SetDefault(key, stored)
}

func (c *MemoryCache) Clear() {
	c.cache.Flush()
}

// Len returns the number of unexpired entries.
func (c *MemoryCache) Len() int {
	return c.cache.ItemCount()
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(string) ([]domain.Sentence, bool) { return nil, false }
func (Nop) Set(string, []domain.Sentence)        {}
func (Nop) Clear()                               {}
