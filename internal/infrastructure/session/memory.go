package session

import (
	"sync"
	"time"

	"github.com/bazaarly/storefront/internal/usecase"
)

// entry is a single live session with its expiration time.
type entry struct {
	session    *usecase.BrowseSession
	expiration time.Time
}

// MemoryRegistry is a thread-safe in-memory registry of browse sessions with
// TTL support. A session lives for one page view; expired entries are swept
// by a background janitor.
type MemoryRegistry struct {
	data  map[string]entry
	ttl   time.Duration
	mutex sync.RWMutex
}

var _ usecase.SessionRegistry = (*MemoryRegistry)(nil)

// NewMemoryRegistry creates a registry whose entries expire after ttl.
func NewMemoryRegistry(ttl time.Duration) *MemoryRegistry {
	r := &MemoryRegistry{
		data: make(map[string]entry),
		ttl:  ttl,
	}

	// Sweep expired sessions every minute
	go r.cleanupExpired()

	return r
}

// Get retrieves a live session by id.
func (r *MemoryRegistry) Get(id string) (*usecase.BrowseSession, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	e, exists := r.data[id]
	if !exists {
		return nil, false
	}

	if time.Now().After(e.expiration) {
		return nil, false
	}

	return e.session, true
}

// Put stores a session under id, resetting its TTL.
func (r *MemoryRegistry) Put(id string, session *usecase.BrowseSession) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.data[id] = entry{
		session:    session,
		expiration: time.Now().Add(r.ttl),
	}
}

// Delete removes a session from the registry.
func (r *MemoryRegistry) Delete(id string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.data, id)
}

// Size returns the current number of entries (for debugging/monitoring).
func (r *MemoryRegistry) Size() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.data)
}

// cleanupExpired removes expired entries from the registry periodically.
func (r *MemoryRegistry) cleanupExpired() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		r.mutex.Lock()
		now := time.Now()
		for id, e := range r.data {
			if now.After(e.expiration) {
				delete(r.data, id)
			}
		}
		r.mutex.Unlock()
	}
}
