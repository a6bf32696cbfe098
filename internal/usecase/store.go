package usecase

import (
	"net/url"
	"sync"

	"github.com/bazaarly/storefront/internal/domain"
)

// Navigator commits a new location. In the HTTP delivery the commit is the
// redirect the client follows; in the original page it was the router's
// replace call. The committed location eventually comes back to the store
// through LocationChanged.
type Navigator interface {
	Replace(query url.Values)
}

// FilterStateStore holds the filter selection for one page view, decoded from
// the last committed location. The location is authoritative: ToggleCategory
// never mutates the state directly, it computes the desired query string and
// hands it to the Navigator, then waits for the committed location to arrive
// through LocationChanged. Keeping the store a read-through cache of the URL
// means the two can never diverge.
type FilterStateStore struct {
	nav Navigator

	mu       sync.RWMutex
	location url.Values
	state    domain.FilterState
}

// NewFilterStateStore seeds a store from the initial location. nav may be nil
// when the caller forwards the computed query itself.
func NewFilterStateStore(initial url.Values, nav Navigator) *FilterStateStore {
	s := &FilterStateStore{nav: nav}
	s.LocationChanged(initial)
	return s
}

// State returns the current filter selection.
func (s *FilterStateStore) State() domain.FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Location returns a copy of the last committed query string.
func (s *FilterStateStore) Location() url.Values {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneValues(s.location)
}

// ToggleCategory requests a location update with the given category toggled
// against the current selection. The new query string is handed to the
// Navigator and returned; the store's own state stays untouched until the
// location change is committed back via LocationChanged.
func (s *FilterStateStore) ToggleCategory(category string) url.Values {
	s.mu.RLock()
	next := EncodeToggle(s.location, category)
	s.mu.RUnlock()

	if s.nav != nil {
		s.nav.Replace(next)
	}
	return next
}

// LocationChanged installs a committed location, replacing the filter state
// wholesale with the decoded form. Called both after a toggle round-trips and
// when the location changes externally (back/forward, shared link).
func (s *FilterStateStore) LocationChanged(query url.Values) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = cloneValues(query)
	s.state = DecodeFilterState(s.location)
}
