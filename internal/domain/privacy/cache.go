package privacy

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Kind partitions cache entries for TTL defaults and per-kind caps.
type Kind string

const (
	KindListing      Kind = "listing"
	KindSearchResult Kind = "search_result"
	KindVendor       Kind = "vendor"
	KindConfig       Kind = "config"
)

// Default TTLs: listing-shaped data goes stale fast, configuration-like
// data can live much longer. Both are overridable per cache and per Put.
const (
	DefaultListingTTL = 5 * time.Minute
	DefaultConfigTTL  = 30 * time.Minute
	DefaultMaxPerKind = 200
	DefaultSweepEvery = 5 * time.Minute
)

// Options configures a Cache. Zero values fall back to the defaults above.
type Options struct {
	ListingTTL time.Duration
	ConfigTTL  time.Duration
	MaxPerKind int
	Logger     *zap.Logger
}

// Stats is the operational snapshot exposed to the admin surface.
type Stats struct {
	TotalEntries int
	ByKind       map[Kind]int
}

type entry struct {
	key        string
	kind       Kind
	data       any
	createdAt  time.Time
	ttl        time.Duration
	lastAccess uint64
}

// Cache stores sanitized entity copies keyed by (kind, public id, session).
// Expired entries are deleted lazily on Get and proactively by the sweep
// ticker. Each kind has an independent LRU cap; access recency advances on
// successful Get only.
//
// Safe for concurrent use; a single mutex guards the backing store.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	session string
	opts    Options
	access  uint64 // logical clock for LRU ordering

	log *zap.Logger
	now func() time.Time

	sweepStop chan struct{}
	sweepDone chan struct{}
}

// NewCache creates an empty cache with a fresh session identity.
func NewCache(opts Options) *Cache {
	if opts.ListingTTL <= 0 {
		opts.ListingTTL = DefaultListingTTL
	}
	if opts.ConfigTTL <= 0 {
		opts.ConfigTTL = DefaultConfigTTL
	}
	if opts.MaxPerKind <= 0 {
		opts.MaxPerKind = DefaultMaxPerKind
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		entries: make(map[string]*entry),
		session: NewSessionID(),
		opts:    opts,
		log:     log,
		now:     time.Now,
	}
}

// Session returns the opaque session token all keys are scoped to.
func (c *Cache) Session() string { return c.session }

// Key builds the composite cache key for an entity.
func (c *Cache) Key(kind Kind, publicID string) string {
	return fmt.Sprintf("%s:%s:%s", kind, publicID, c.session)
}

// Put stores data under (kind, publicID) and returns the cache key.
// A non-positive ttl selects the kind's default. Inserting past the
// per-kind cap evicts least-recently-accessed entries of that kind first.
func (c *Cache) Put(kind Kind, publicID string, data any, ttl time.Duration) string {
	if ttl <= 0 {
		ttl = c.defaultTTL(kind)
	}
	key := c.Key(kind, publicID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		c.evictForInsertLocked(kind)
	}
	c.access++
	c.entries[key] = &entry{
		key:        key,
		kind:       kind,
		data:       data,
		createdAt:  c.now(),
		ttl:        ttl,
		lastAccess: c.access,
	}
	return key
}

// Get returns the cached data for key, or nil on miss. An expired entry
// is deleted and reported as a miss. A hit refreshes LRU recency.
func (c *Cache) Get(key string) any {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	if c.now().Sub(e.createdAt) > e.ttl {
		delete(c.entries, key)
		return nil
	}
	c.access++
	e.lastAccess = c.access
	return e.data
}

// ClearExpired sweeps every kind and removes expired entries.
func (c *Cache) ClearExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, e := range c.entries {
		if now.Sub(e.createdAt) > e.ttl {
			delete(c.entries, key)
			removed++
		}
	}
	if removed > 0 {
		c.log.Debug("cache sweep", zap.Int("removed", removed), zap.Int("remaining", len(c.entries)))
	}
	return removed
}

// ClearKind removes every entry of one kind and returns the count.
func (c *Cache) ClearKind(kind Kind) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if e.kind == kind {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// ClearAll drops every entry.
func (c *Cache) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}

// Stats reports entry counts for the admin cache screen.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	byKind := make(map[Kind]int)
	for _, e := range c.entries {
		byKind[e.kind]++
	}
	return Stats{TotalEntries: len(c.entries), ByKind: byKind}
}

// StartSweep launches the periodic expiry sweep. A non-positive interval
// selects the default. Call Stop to shut the sweeper down.
func (c *Cache) StartSweep(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepEvery
	}
	c.mu.Lock()
	if c.sweepStop != nil {
		c.mu.Unlock()
		return // already running
	}
	stop := make(chan struct{})
	done := make(chan struct{})
	c.sweepStop = stop
	c.sweepDone = done
	c.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.ClearExpired()
			case <-stop:
				return
			}
		}
	}()
}

// Stop terminates the sweep goroutine if one is running.
func (c *Cache) Stop() {
	c.mu.Lock()
	stop, done := c.sweepStop, c.sweepDone
	c.sweepStop, c.sweepDone = nil, nil
	c.mu.Unlock()
	if stop != nil {
		close(stop)
		<-done
	}
}

func (c *Cache) defaultTTL(kind Kind) time.Duration {
	if kind == KindConfig {
		return c.opts.ConfigTTL
	}
	return c.opts.ListingTTL
}

// evictForInsertLocked makes room for one new entry of kind by evicting
// its least-recently-accessed entries. Caller holds c.mu.
func (c *Cache) evictForInsertLocked(kind Kind) {
	for {
		count := 0
		var oldest *entry
		for _, e := range c.entries {
			if e.kind != kind {
				continue
			}
			count++
			if oldest == nil || e.lastAccess < oldest.lastAccess {
				oldest = e
			}
		}
		if count < c.opts.MaxPerKind || oldest == nil {
			return
		}
		delete(c.entries, oldest.key)
		c.log.Debug("cache eviction", zap.String("kind", string(kind)), zap.String("key", oldest.key))
	}
}
