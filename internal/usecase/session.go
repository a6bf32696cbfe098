package usecase

import (
	"context"
	"net/url"
	"sync"

	"github.com/bazaarly/storefront/internal/domain"
)

// SessionRegistry keeps live browse sessions for the duration of a page view.
type SessionRegistry interface {
	Get(id string) (*BrowseSession, bool)
	Put(id string, session *BrowseSession)
	Delete(id string)
}

// BrowseSession ties together the moving parts of one page view: the catalog
// snapshot loaded for the viewer, the filter selection synced with the
// location, and the derived visible list. The derived list is recomputed from
// the current FilterState whenever either input changes, so a toggle made
// while the fetches are still in flight is preserved and applied once the
// products arrive.
type BrowseSession struct {
	orchestrator *CatalogFetchOrchestrator
	store        *FilterStateStore

	mu   sync.RWMutex
	user *domain.User
	snap Snapshot
}

// NewBrowseSession creates a session seeded from the initial location. The
// catalog is not fetched until Refresh is called.
func NewBrowseSession(client domain.CatalogClient, initial url.Values, nav Navigator) *BrowseSession {
	return &BrowseSession{
		orchestrator: NewCatalogFetchOrchestrator(client),
		store:        NewFilterStateStore(initial, nav),
	}
}

// Refresh loads the catalog for the given viewer. Called on the first render
// and again whenever the viewer identity changes, since the self-exclusion
// set depends on it. A refresh superseded by a newer one reports
// domain.ErrStaleFetch and installs nothing.
func (b *BrowseSession) Refresh(ctx context.Context, user *domain.User) error {
	snap, err := b.orchestrator.Load(ctx, user)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	// A concurrent Refresh may have installed a newer snapshot between Load
	// returning and this lock; never replace it with an older generation.
	if snap.Generation < b.snap.Generation {
		return domain.ErrStaleFetch
	}
	b.user = user
	b.snap = snap
	return nil
}

// Loaded reports whether a catalog snapshot has been installed yet.
func (b *BrowseSession) Loaded() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap.Generation > 0
}

// SameViewer reports whether the current snapshot was loaded for the given
// identity.
func (b *BrowseSession) SameViewer(user *domain.User) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if (b.user == nil) != (user == nil) {
		return false
	}
	return b.user == nil || b.user.ID == user.ID
}

// Store exposes the session's filter state store.
func (b *BrowseSession) Store() *FilterStateStore {
	return b.store
}

// Snapshot returns the installed catalog snapshot.
func (b *BrowseSession) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap
}

// VisibleProducts recomputes the derived list from the current snapshot,
// filter state and viewer.
func (b *BrowseSession) VisibleProducts() []domain.Product {
	b.mu.RLock()
	snap := b.snap
	user := b.user
	b.mu.RUnlock()
	return ApplyFilters(snap.Products, b.store.State(), user)
}
