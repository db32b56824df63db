package privacy

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_PutGet(t *testing.T) {
	c := NewCache(Options{})
	key := c.Put(KindListing, "pub-1", map[string]any{"title": "Blue Dream"}, 0)

	got := c.Get(key)
	require.NotNil(t, got)
	doc, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Blue Dream", doc["title"])

	assert.Nil(t, c.Get(c.Key(KindListing, "nope")), "miss returns nil")
}

func TestCache_KeyIsSessionScoped(t *testing.T) {
	a := NewCache(Options{})
	b := NewCache(Options{})
	assert.NotEqual(t, a.Session(), b.Session(), "every cache gets a fresh session")

	key := a.Put(KindListing, "pub-1", "data", 0)
	assert.Contains(t, key, a.Session())
	assert.Nil(t, b.Get(key), "keys from another session never resolve")
}

func TestCache_Expiry(t *testing.T) {
	c := NewCache(Options{})
	key := c.Put(KindListing, "pub-1", "data", 1*time.Millisecond)

	time.Sleep(10 * time.Millisecond)
	assert.Nil(t, c.Get(key), "expired entry reads as nil")
	assert.Equal(t, 0, c.Stats().TotalEntries, "expired entry is deleted on access")
}

func TestCache_ClearExpired(t *testing.T) {
	c := NewCache(Options{})
	c.Put(KindListing, "short", "data", 1*time.Millisecond)
	c.Put(KindListing, "long", "data", time.Hour)

	time.Sleep(10 * time.Millisecond)
	removed := c.ClearExpired()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, c.Stats().TotalEntries)
	assert.NotNil(t, c.Get(c.Key(KindListing, "long")))
}

func TestCache_EvictionBound(t *testing.T) {
	const max = 3
	c := NewCache(Options{MaxPerKind: max})

	for i := 0; i < max+5; i++ {
		c.Put(KindListing, fmt.Sprintf("pub-%d", i), i, 0)
	}
	stats := c.Stats()
	assert.LessOrEqual(t, stats.ByKind[KindListing], max)

	// Other kinds have their own budget.
	c.Put(KindConfig, "cities", "cfg", 0)
	stats = c.Stats()
	assert.Equal(t, 1, stats.ByKind[KindConfig])
	assert.LessOrEqual(t, stats.ByKind[KindListing], max)
}

func TestCache_EvictsLeastRecentlyAccessed(t *testing.T) {
	c := NewCache(Options{MaxPerKind: 3})
	keyA := c.Put(KindListing, "a", "a", 0)
	keyB := c.Put(KindListing, "b", "b", 0)
	c.Put(KindListing, "c", "c", 0)

	// Touch a so b becomes the least recently accessed.
	require.NotNil(t, c.Get(keyA))

	c.Put(KindListing, "d", "d", 0)
	assert.Nil(t, c.Get(keyB), "least-recently-accessed entry evicted")
	assert.NotNil(t, c.Get(keyA))
}

func TestCache_ClearKindAndAll(t *testing.T) {
	c := NewCache(Options{})
	c.Put(KindListing, "l1", "x", 0)
	c.Put(KindListing, "l2", "x", 0)
	c.Put(KindConfig, "c1", "x", 0)

	removed := c.ClearKind(KindListing)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, c.Stats().TotalEntries)

	c.ClearAll()
	assert.Equal(t, 0, c.Stats().TotalEntries)
}

func TestCache_SweepTimer(t *testing.T) {
	c := NewCache(Options{})
	c.Put(KindListing, "pub-1", "data", 1*time.Millisecond)

	c.StartSweep(10 * time.Millisecond)
	defer c.Stop()

	assert.Eventually(t, func() bool {
		return c.Stats().TotalEntries == 0
	}, time.Second, 5*time.Millisecond, "sweep removes expired entries without reads")
}

func TestCache_StopIsIdempotent(t *testing.T) {
	c := NewCache(Options{})
	c.StartSweep(time.Minute)
	c.Stop()
	c.Stop()
}
