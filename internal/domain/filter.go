package domain

import "strings"

// FilterState is the canonical in-memory filter selection for one page view.
// Categories keeps selection order (the order values round-trip through the
// URL); matching treats it as a set. All values are stored lower-cased.
type FilterState struct {
	Categories []string `json:"selectedCategories"`
	Search     string   `json:"searchQuery"`
}

// NewFilterState normalizes raw selections into a FilterState: categories are
// lower-cased, trimmed and deduplicated keeping first occurrence, the search
// text is lower-cased and trimmed.
func NewFilterState(categories []string, search string) FilterState {
	state := FilterState{
		Search: strings.ToLower(strings.TrimSpace(search)),
	}
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		state.Categories = append(state.Categories, c)
	}
	return state
}

// HasCategory reports whether the normalized form of c is selected.
func (f FilterState) HasCategory(c string) bool {
	c = strings.ToLower(strings.TrimSpace(c))
	for _, sel := range f.Categories {
		if sel == c {
			return true
		}
	}
	return false
}

// IsEmpty reports whether no facet and no search text is active.
func (f FilterState) IsEmpty() bool {
	return len(f.Categories) == 0 && f.Search == ""
}

// Equal compares two states under set-equality of the category selection and
// string-equality of the search text.
func (f FilterState) Equal(other FilterState) bool {
	if f.Search != other.Search || len(f.Categories) != len(other.Categories) {
		return false
	}
	for _, c := range f.Categories {
		if !other.HasCategory(c) {
			return false
		}
	}
	return true
}
