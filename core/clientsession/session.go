package clientsession

import (
	"sort"
	"sync"
)

// Entry is a single session key/value pair. Serialize consumes entries in the
// order supplied; Session.Entries produces them sorted by key so that the same
// session content always yields the same envelope.
type Entry struct {
	Key   string
	Value any
}

// Session is the in-memory key/value state of one client session. It is safe
// for concurrent use: request-handling code may read and write it from
// multiple goroutines over the life of a request without external locking.
type Session struct {
	mu     sync.RWMutex
	values map[string]any
	dirty  bool
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{values: make(map[string]any)}
}

// newSessionFrom wraps deserialized values without marking the session modified.
func newSessionFrom(values map[string]any) *Session {
	if values == nil {
		values = make(map[string]any)
	}
	return &Session{values: values}
}

// Get retrieves a value by key.
func (s *Session) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores a value and marks the session modified.
func (s *Session) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.dirty = true
}

// Delete removes a key. The session is marked modified only if the key existed.
func (s *Session) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; ok {
		delete(s.values, key)
		s.dirty = true
	}
}

// Clear removes all entries. The session is marked modified only if it held any.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) > 0 {
		s.values = make(map[string]any)
		s.dirty = true
	}
}

// Len returns the number of entries.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Keys returns the session keys sorted lexicographically.
func (s *Session) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns a key-sorted snapshot of the session suitable for Serialize.
// Sorting keeps the serialized envelope deterministic for the same content.
func (s *Session) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]Entry, 0, len(s.values))
	for k, v := range s.values {
		entries = append(entries, Entry{Key: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// Snapshot returns a copy of the session contents.
func (s *Session) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values := make(map[string]any, len(s.values))
	for k, v := range s.values {
		values[k] = v
	}
	return values
}

// IsModified reports whether the session changed since it was created or
// deserialized. Transports use this to skip rewriting unchanged cookies.
func (s *Session) IsModified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}
