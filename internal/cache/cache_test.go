package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCacheGetSet(t *testing.T) {
	c := NewTTL[int](time.Minute)

	_, found := c.Get("a")
	assert.False(t, found)

	c.Set("a", 42)
	v, found := c.Get("a")
	assert.True(t, found)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, c.Len())
}

func TestTTLCacheExpiry(t *testing.T) {
	c := NewTTL[string](10 * time.Millisecond)
	c.Set("a", "x")

	time.Sleep(20 * time.Millisecond)

	_, found := c.Get("a")
	assert.False(t, found)
	assert.Equal(t, 0, c.Len())
}

func TestTTLCacheDelete(t *testing.T) {
	c := NewTTL[string](time.Minute)
	c.Set("a", "x")
	c.Delete("a")

	_, found := c.Get("a")
	assert.False(t, found)
}

func TestTTLCachePurge(t *testing.T) {
	c := NewTTL[int](15 * time.Millisecond)
	c.Set("old", 1)
	time.Sleep(25 * time.Millisecond)
	c.Set("fresh", 2)

	remaining := c.Purge()
	assert.Equal(t, 1, remaining)

	_, found := c.Get("fresh")
	assert.True(t, found)
}
