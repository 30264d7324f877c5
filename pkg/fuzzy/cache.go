package fuzzy

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// CachedMatcher wraps a Matcher with a memoized MatchMultiple: a large
// command tree calls it with the same candidate pool on every unresolved
// subcommand name, so hashing the pool once and keying a map on it turns
// repeated lookups into a single map hit instead of re-scoring every
// candidate again.
type CachedMatcher struct {
	m   *Matcher
	mu  sync.Mutex
	hit map[uint64][]MatchResult
}

// NewCachedMatcher wraps m. The zero Matcher from NewMatcher is typical.
func NewCachedMatcher(m *Matcher) *CachedMatcher {
	return &CachedMatcher{m: m, hit: make(map[uint64][]MatchResult)}
}

// MatchMultiple returns m.MatchMultiple(query, targets), memoized on the
// exact (query, targets) pair.
func (c *CachedMatcher) MatchMultiple(query string, targets []string) []MatchResult {
	key := cacheKey(query, targets)

	c.mu.Lock()
	if cached, ok := c.hit[key]; ok {
		c.mu.Unlock()
		return cached
	}
	c.mu.Unlock()

	result := c.m.MatchMultiple(query, targets)

	c.mu.Lock()
	c.hit[key] = result
	c.mu.Unlock()
	return result
}

func cacheKey(query string, targets []string) uint64 {
	h := xxhash.New()
	h.WriteString(query)
	h.WriteString("\x00")
	for _, t := range targets {
		h.WriteString(t)
		h.WriteString("\x01")
	}
	return h.Sum64()
}

// CacheSize reports how many distinct (query, targets) pairs are memoized,
// for tests and diagnostics.
func (c *CachedMatcher) CacheSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.hit)
}
