// Package privacy holds the sanitized listing cache and the sanitization
// rules applied before anything vendor-related is stored or displayed.
// All identifiers issued here are opaque ksuids scoped to one session;
// nothing in this package is ever persisted, so a process restart is a
// full cache flush. That is deliberate.
package privacy

import (
	"sync"

	"github.com/segmentio/ksuid"
)

// NewSessionID returns a fresh opaque session token. Regenerated on every
// subsystem construction and never written to disk.
func NewSessionID() string {
	return ksuid.New().String()
}

// IDMap issues stable opaque public identifiers for real entity IDs.
// The same real ID always maps to the same public ID within a session.
type IDMap struct {
	mu     sync.Mutex
	byReal map[string]string
}

// NewIDMap creates an empty identifier registry.
func NewIDMap() *IDMap {
	return &IDMap{byReal: make(map[string]string)}
}

// Issue returns the public identifier for realID, minting one on first use.
// An empty realID gets a one-off identifier (no stable mapping to keep).
func (m *IDMap) Issue(realID string) string {
	if realID == "" {
		return ksuid.New().String()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if pub, ok := m.byReal[realID]; ok {
		return pub
	}
	pub := ksuid.New().String()
	m.byReal[realID] = pub
	return pub
}

// Len returns the number of registered identifiers.
func (m *IDMap) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byReal)
}
