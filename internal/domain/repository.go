package domain

import "context"

// CatalogClient defines the interface for fetching collections from the
// catalog backend. The two fetches are independent units of work; callers may
// run them concurrently.
type CatalogClient interface {
	FetchProducts(ctx context.Context) ([]Product, error)
	FetchCategories(ctx context.Context) ([]Category, error)
}
