package usecase

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/bazaarly/storefront/internal/domain"
)

// LoadStatus is the consolidated outcome of the paired catalog fetches.
type LoadStatus string

const (
	LoadReady   LoadStatus = "ready"   // both fetches succeeded
	LoadPartial LoadStatus = "partial" // exactly one fetch failed
	LoadFailed  LoadStatus = "failed"  // both fetches failed
)

// Snapshot is one consistent view of the remote catalog for a page view.
// Collections are never nil; a failed fetch degrades to an empty slice.
type Snapshot struct {
	Products   []domain.Product
	Categories []domain.Category
	Status     LoadStatus
	Generation uint64
}

// CatalogFetchOrchestrator issues the products and categories fetches against
// the catalog backend and consolidates them into a Snapshot. It owns the raw
// collections; nothing downstream mutates them.
type CatalogFetchOrchestrator struct {
	client domain.CatalogClient
	gen    atomic.Uint64

	mu      sync.RWMutex
	current Snapshot
}

func NewCatalogFetchOrchestrator(client domain.CatalogClient) *CatalogFetchOrchestrator {
	return &CatalogFetchOrchestrator{client: client}
}

// Load fetches both collections for the given viewer. The fetches run
// concurrently and resolve independently: a failure of one is logged and
// degrades that collection to empty, it never prevents the other from being
// used. Products owned by the viewer are removed before the snapshot is
// installed, so nothing downstream ever sees them.
//
// Each Load takes a generation token. If a newer Load starts while this one
// is in flight (the viewer identity changed mid-fetch), the late result is
// discarded and ErrStaleFetch returned instead of overwriting newer data.
func (o *CatalogFetchOrchestrator) Load(ctx context.Context, user *domain.User) (Snapshot, error) {
	gen := o.gen.Add(1)

	var (
		products      []domain.Product
		categories    []domain.Category
		productsErr   error
		categoriesErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		all, err := o.client.FetchProducts(gctx)
		if err != nil {
			log.Printf("[CATALOG] products fetch failed: %v", err)
			productsErr = err
			return nil
		}
		products = excludeOwnListings(all, user)
		return nil
	})
	g.Go(func() error {
		all, err := o.client.FetchCategories(gctx)
		if err != nil {
			log.Printf("[CATALOG] categories fetch failed: %v", err)
			categoriesErr = err
			return nil
		}
		categories = all
		return nil
	})
	// Fetch failures are absorbed above so one fetch can never cancel the other.
	_ = g.Wait()

	if products == nil {
		products = []domain.Product{}
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	snap := Snapshot{
		Products:   products,
		Categories: categories,
		Status:     consolidateStatus(productsErr, categoriesErr),
		Generation: gen,
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if gen != o.gen.Load() {
		log.Printf("[CATALOG] discarding stale fetch (generation %d)", gen)
		return Snapshot{}, domain.ErrStaleFetch
	}
	o.current = snap
	return snap, nil
}

// Current returns the latest installed snapshot.
func (o *CatalogFetchOrchestrator) Current() Snapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.current
}

// excludeOwnListings removes the viewer's own products. This pre-filter runs
// before any facet filtering and is independent of it.
func excludeOwnListings(products []domain.Product, user *domain.User) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.OwnedBy(user) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func consolidateStatus(productsErr, categoriesErr error) LoadStatus {
	switch {
	case productsErr == nil && categoriesErr == nil:
		return LoadReady
	case productsErr != nil && categoriesErr != nil:
		return LoadFailed
	default:
		return LoadPartial
	}
}
