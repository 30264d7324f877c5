package fuzzy

import "testing"

func TestCachedMatcherMemoizesIdenticalQueries(t *testing.T) {
	c := NewCachedMatcher(NewMatcher(true, 3, 0.5))
	targets := []string{"build", "test", "deploy"}

	first := c.MatchMultiple("buld", targets)
	if c.CacheSize() != 1 {
		t.Fatalf("CacheSize() = %d, want 1 after the first lookup", c.CacheSize())
	}

	second := c.MatchMultiple("buld", targets)
	if c.CacheSize() != 1 {
		t.Errorf("CacheSize() = %d, want 1 still (repeat lookup must hit the cache)", c.CacheSize())
	}
	if len(first) != len(second) {
		t.Fatalf("cached result length = %d, want %d", len(second), len(first))
	}
	for i := range first {
		if first[i].Target != second[i].Target {
			t.Errorf("cached result[%d] = %q, want %q", i, second[i].Target, first[i].Target)
		}
	}
}

func TestCachedMatcherDistinguishesQueryFromTargetPool(t *testing.T) {
	c := NewCachedMatcher(NewMatcher(true, 3, 0.5))

	c.MatchMultiple("build", []string{"build", "test"})
	c.MatchMultiple("build", []string{"build", "deploy"})

	if c.CacheSize() != 2 {
		t.Errorf("CacheSize() = %d, want 2: a different target pool must not collide with a prior cache key", c.CacheSize())
	}
}

func TestCachedMatcherDistinguishesDifferentQueries(t *testing.T) {
	c := NewCachedMatcher(NewMatcher(true, 3, 0.5))
	targets := []string{"build", "test"}

	c.MatchMultiple("build", targets)
	c.MatchMultiple("test", targets)

	if c.CacheSize() != 2 {
		t.Errorf("CacheSize() = %d, want 2 distinct cache entries for distinct queries", c.CacheSize())
	}
}
