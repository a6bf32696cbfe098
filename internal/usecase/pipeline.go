package usecase

import (
	"strings"

	"github.com/bazaarly/storefront/internal/domain"
)

// ApplyFilters derives the visible product list for one render. It is a pure
// function over its inputs: no I/O, no mutation of the product slice, and the
// original catalog order is preserved. The result is always a fresh slice.
//
// A product is visible when it passes all three predicates:
//   - it is not the viewer's own listing
//   - with a non-empty selection, any of its normalized categories is
//     selected (union match); an empty selection matches everything
//   - with a non-empty search, its lower-cased name contains the search text
//     as a substring
func ApplyFilters(products []domain.Product, state domain.FilterState, user *domain.User) []domain.Product {
	visible := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.OwnedBy(user) {
			continue
		}
		if !matchesCategories(p, state) {
			continue
		}
		if !matchesSearch(p, state) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

// matchesCategories applies the facet predicate. A product without category
// values never matches a non-empty selection.
func matchesCategories(p domain.Product, state domain.FilterState) bool {
	if len(state.Categories) == 0 {
		return true
	}
	for _, c := range p.Category.Normalized() {
		if state.HasCategory(c) {
			return true
		}
	}
	return false
}

// matchesSearch applies the case-insensitive unanchored substring predicate.
// A product without a name never matches a non-empty search.
func matchesSearch(p domain.Product, state domain.FilterState) bool {
	if state.Search == "" {
		return true
	}
	if p.Name == "" {
		return false
	}
	return strings.Contains(strings.ToLower(p.Name), state.Search)
}
