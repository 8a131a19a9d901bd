package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetGetExpire(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	c := &Cache{entries: map[string]entry{}, enabled: true, now: func() time.Time { return now }}

	etag := c.Set("players", []byte(`[1,2]`), time.Minute)
	data, got, ok := c.Get("players")
	assert.True(t, ok)
	assert.Equal(t, etag, got)
	assert.Equal(t, `[1,2]`, string(data))

	now = now.Add(2 * time.Minute)
	_, _, ok = c.Get("players")
	assert.False(t, ok)

	c.evict()
	stats := c.Stats()
	assert.Equal(t, 0, stats["total_keys"])
	assert.Equal(t, 1, stats["hits"])
	assert.Equal(t, 1, stats["misses"])
}

func TestDisabledCache(t *testing.T) {
	c := New(false)

	etag := c.Set("k", []byte("v"), time.Hour)
	assert.Equal(t, ComputeETag([]byte("v")), etag)
	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("snapshot"))

	assert.False(t, CheckETagMatch("", etag))
	assert.True(t, CheckETagMatch("*", etag))
	assert.True(t, CheckETagMatch(etag, etag))
	assert.True(t, CheckETagMatch(`W/"0000", `+etag, etag))
	assert.False(t, CheckETagMatch(`W/"0000"`, etag))
}
