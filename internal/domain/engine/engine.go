// Package engine scores the current index snapshot against user queries,
// ranks and deduplicates the hits, and notifies subscribers. The only
// concurrency-sensitive behavior lives in the debounce wrapper; plain
// Search is pure given the current snapshot.
package engine

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/packslist/packsearch/internal/domain/fuzzy"
	"github.com/packslist/packsearch/internal/domain/index"
	"github.com/packslist/packsearch/internal/ports"
)

// MinQueryLength is the shortest query that produces results.
const MinQueryLength = 2

// DefaultLimit bounds the result window when the caller passes limit <= 0.
const DefaultLimit = 4

// ScoredResult is an index entry plus its score for one specific query.
// Created fresh per query, never persisted.
type ScoredResult struct {
	Entry index.Entry
	Score float64
}

// Subscriber receives the result set and the query that produced it
// every time a search completes.
type Subscriber func(results []ScoredResult, query string)

// Options configures an Engine. Zero values select the defaults.
type Options struct {
	Threshold float64 // fuzzy match threshold, default fuzzy.DefaultThreshold
	Limit     int     // default result window for debounced searches
	Scheduler ports.Scheduler
	Logger    *zap.Logger
}

// Engine holds the current index snapshot and the subscriber list.
// SetIndex swaps the snapshot atomically; Search reads whatever snapshot
// is current and never observes a partially built index.
type Engine struct {
	snapshot  atomic.Pointer[[]index.Entry]
	threshold float64
	limit     int
	sched     ports.Scheduler
	log       *zap.Logger

	subMu sync.RWMutex
	subs  []Subscriber

	// seq orders debounced calls; a completion whose sequence number is
	// no longer the latest issued is discarded without notification.
	seq       atomic.Uint64
	pendingMu sync.Mutex
	pending   ports.TimerHandle

	// deliverMu serializes debounced deliveries. The staleness re-check
	// under this lock keeps a slow completion from landing after a newer
	// one has already been delivered.
	deliverMu sync.Mutex
}

// New creates an engine with an empty index.
func New(opts Options) *Engine {
	if opts.Threshold <= 0 {
		opts.Threshold = fuzzy.DefaultThreshold
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.Scheduler == nil {
		opts.Scheduler = ports.SystemScheduler()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	e := &Engine{
		threshold: opts.Threshold,
		limit:     opts.Limit,
		sched:     opts.Scheduler,
		log:       opts.Logger,
	}
	empty := []index.Entry{}
	e.snapshot.Store(&empty)
	return e
}

// SetIndex replaces the searchable index wholesale.
func (e *Engine) SetIndex(entries []index.Entry) {
	snap := make([]index.Entry, len(entries))
	copy(snap, entries)
	e.snapshot.Store(&snap)
}

// Size returns the number of indexed entries.
func (e *Engine) Size() int {
	return len(*e.snapshot.Load())
}

// Search scores every indexed entry against query, deduplicates by
// (kind, display text) keeping the first occurrence, sorts by score
// descending with insertion order breaking ties, truncates to limit,
// and notifies subscribers. Queries shorter than MinQueryLength yield
// an empty result set.
func (e *Engine) Search(query string, limit int) []ScoredResult {
	results := e.score(query, limit)
	e.notify(results, query)
	return results
}

// score is Search without the subscriber notification.
func (e *Engine) score(query string, limit int) []ScoredResult {
	if limit <= 0 {
		limit = e.limit
	}
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinQueryLength {
		return []ScoredResult{}
	}

	entries := *e.snapshot.Load()
	seen := make(map[string]bool, len(entries))
	results := make([]ScoredResult, 0, limit*2)

	for _, entry := range entries {
		score := fuzzy.Match(query, entry.SearchableText, e.threshold)
		if score == 0 {
			continue
		}
		dedupKey := entry.Kind.String() + "\x00" + entry.DisplayText
		if seen[dedupKey] {
			continue
		}
		seen[dedupKey] = true
		results = append(results, ScoredResult{Entry: entry, Score: score})
	}

	// Stable: ties keep original index insertion order, so repeated
	// identical queries return identical orderings.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// DebouncedSearch schedules Search(query, limit) after delay. A newer
// call supersedes any pending one: its timer is cancelled and, should a
// stale timer fire anyway, the sequence-number checks discard the stale
// execution. The check runs once before scoring and again under the
// delivery lock, so a stale result set is never delivered after a newer
// one even when completions race.
func (e *Engine) DebouncedSearch(query string, limit int, delay time.Duration) {
	mySeq := e.seq.Add(1)

	e.pendingMu.Lock()
	if e.pending != nil {
		e.pending.Cancel()
	}
	e.pending = e.sched.After(delay, func() {
		if e.seq.Load() != mySeq {
			return // superseded; cancelled silently
		}
		results := e.score(query, limit)

		e.deliverMu.Lock()
		defer e.deliverMu.Unlock()
		if e.seq.Load() != mySeq {
			return // superseded while scoring
		}
		e.notify(results, query)
	})
	e.pendingMu.Unlock()
}

// Subscribe registers a callback for completed searches. There is no
// unsubscribe in the reference behavior; subscribers live as long as
// the engine.
func (e *Engine) Subscribe(s Subscriber) {
	e.subMu.Lock()
	defer e.subMu.Unlock()
	e.subs = append(e.subs, s)
}

// notify calls every subscriber, isolating panics so one misbehaving
// callback cannot starve the rest or corrupt engine state.
func (e *Engine) notify(results []ScoredResult, query string) {
	e.subMu.RLock()
	subs := make([]Subscriber, len(e.subs))
	copy(subs, e.subs)
	e.subMu.RUnlock()

	for i, s := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					e.log.Error("search subscriber panicked",
						zap.Int("subscriber", i),
						zap.String("query", query),
						zap.Any("panic", r))
				}
			}()
			s(results, query)
		}()
	}
}
