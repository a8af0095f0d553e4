package store

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value   V
	expires time.Time
}

// MemoryStore keeps a thread-safe, short-lived set of values keyed by id.
// Entries expire ttl after they are set; a non-positive ttl keeps them forever.
type MemoryStore[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore. A nil clock uses time.Now.
func NewMemoryStore[V any](ttl time.Duration, now func() time.Time) *MemoryStore[V] {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     now,
	}
}

// Get retrieves an unexpired value by key.
func (s *MemoryStore[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || s.expired(e) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, replacing any previous entry. Expired entries are dropped on the way.
func (s *MemoryStore[V]) Set(key string, value V) {
	e := entry[V]{value: value}
	if s.ttl > 0 {
		e.expires = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	s.entries[key] = e
}

func (s *MemoryStore[V]) pruneLocked() {
	for k, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, k)
		}
	}
}

func (s *MemoryStore[V]) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *MemoryStore[V]) expired(e entry[V]) bool {
	return !e.expires.IsZero() && !s.now().Before(e.expires)
}
