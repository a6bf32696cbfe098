package usecase

import (
	"net/url"
	"strings"

	"github.com/gorilla/schema"

	"github.com/bazaarly/storefront/internal/domain"
)

// Recognized query parameters. Everything else in the query string belongs to
// other consumers of the page URL and passes through the codec untouched.
const (
	searchParam   = "search"
	categoryParam = "category"
)

// filterQuery is the query-string shape of a filter selection.
type filterQuery struct {
	Search     string   `schema:"search"`
	Categories []string `schema:"category"`
}

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.ZeroEmpty(true)
	return d
}

// DecodeFilterState reads the recognized parameters out of a query string:
// zero or more repeatable category values and a single search value. The
// result is normalized (lower-cased, trimmed, deduplicated). Unrecognized
// parameters are ignored; anything that fails to parse is dropped silently,
// malformed query strings never raise.
func DecodeFilterState(query url.Values) domain.FilterState {
	var q filterQuery
	if err := queryDecoder.Decode(&q, query); err != nil {
		// Permissive decode: fall back to the raw values for the two
		// recognized keys and let normalization sort them out.
		return domain.NewFilterState(query[categoryParam], query.Get(searchParam))
	}
	return domain.NewFilterState(q.Categories, q.Search)
}

// EncodeToggle computes the query string resulting from toggling one category
// against the current location: the category is removed from the multi-value
// set if already selected (by normalized comparison) and appended otherwise.
// All prior category parameters are replaced by the updated set, written in
// selection order; every other parameter, including search, is copied through
// untouched.
func EncodeToggle(current url.Values, category string) url.Values {
	next := make(url.Values, len(current))
	for key, values := range current {
		if key == categoryParam {
			continue
		}
		next[key] = append([]string(nil), values...)
	}

	toggled := strings.ToLower(strings.TrimSpace(category))
	removed := false
	seen := make(map[string]bool)
	for _, raw := range current[categoryParam] {
		c := strings.ToLower(strings.TrimSpace(raw))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		if c == toggled {
			removed = true
			continue
		}
		next.Add(categoryParam, c)
	}
	if toggled != "" && !removed {
		next.Add(categoryParam, toggled)
	}

	return next
}

// cloneValues deep-copies a query string so callers never share backing slices.
func cloneValues(query url.Values) url.Values {
	clone := make(url.Values, len(query))
	for key, values := range query {
		clone[key] = append([]string(nil), values...)
	}
	return clone
}
