package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestCache(cfg Config) (*Cache[int], *time.Time) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	c := New[int](cfg)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestCache_GetSet(t *testing.T) {
	c, _ := newTestCache(Config{})
	defer c.Close()

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	hits, misses, rate := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
	assert.InDelta(t, 50.0, rate, 0.001)

	c.Delete("a")
	assert.Zero(t, c.Len())
}

func TestCache_Expiry(t *testing.T) {
	c, now := newTestCache(Config{TTL: time.Minute})
	defer c.Close()

	c.Set("a", 1)
	*now = now.Add(59 * time.Second)
	_, ok := c.Get("a")
	assert.True(t, ok)

	*now = now.Add(2 * time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestCache_NoExpiry(t *testing.T) {
	c, now := newTestCache(Config{TTL: -1})
	defer c.Close()

	c.Set("a", 1)
	*now = now.Add(24 * time.Hour)
	_, ok := c.Get("a")
	assert.True(t, ok)
}

func TestCache_Cleanup(t *testing.T) {
	c, now := newTestCache(Config{TTL: time.Minute})
	defer c.Close()

	c.Set("a", 1)
	c.Set("b", 2)
	*now = now.Add(2 * time.Minute)
	c.cleanup()
	assert.Zero(t, c.Len())
}

func TestCache_Eviction(t *testing.T) {
	c, now := newTestCache(Config{MaxItems: 2, TTL: time.Minute})
	defer c.Close()

	c.Set("a", 1)
	*now = now.Add(time.Second)
	c.Set("b", 2)
	*now = now.Add(time.Second)
	c.Set("c", 3)

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok, "the entry closest to expiry is evicted")

	c.Set("b", 20)
	assert.Equal(t, 2, c.Len(), "overwriting does not evict")
}

func TestCache_CloseIsIdempotent(t *testing.T) {
	c := New[string](DefaultConfig())
	c.Close()
	c.Close()
}
