package domain

import (
	"encoding/json"
	"strings"
)

// Product represents a single listing as served by the catalog backend.
// Products are immutable once fetched for the duration of a page view.
type Product struct {
	ID       string       `json:"_id"`
	Name     string       `json:"name"`
	Category CategoryList `json:"category,omitempty"`
	Seller   SellerRef    `json:"seller,omitempty"`
	Price    float64      `json:"price,omitempty"`
	Image    string       `json:"image,omitempty"`
}

// OwnedBy reports whether the product belongs to the given viewer.
// Anonymous viewers (nil user) own nothing.
func (p Product) OwnedBy(user *User) bool {
	if user == nil || user.ID == "" {
		return false
	}
	return string(p.Seller) == user.ID
}

// CategoryList holds a product's category labels. The catalog backend emits
// the field either as a single string or as an array of strings; both decode
// into the same slice form.
type CategoryList []string

func (c *CategoryList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*c = many
		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one == "" {
			*c = nil
		} else {
			*c = CategoryList{one}
		}
		return nil
	}

	// A value in neither shape means "no category", not a decode failure.
	*c = nil
	return nil
}

// Normalized returns the lower-cased category values for matching.
func (c CategoryList) Normalized() []string {
	if len(c) == 0 {
		return nil
	}
	out := make([]string, 0, len(c))
	for _, v := range c {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// SellerRef is the identifier of a product's seller. The backend either
// inlines the bare id or nests the populated seller document; both decode to
// the id, and null decodes to the empty string.
type SellerRef string

func (s *SellerRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*s = SellerRef(id)
		return nil
	}

	var doc struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		*s = SellerRef(doc.ID)
		return nil
	}

	*s = ""
	return nil
}

// Category is a single facet label. The taxonomy has no hierarchy.
type Category struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}

// User identifies the current viewer. A nil *User is an anonymous visitor.
type User struct {
	ID string `json:"_id"`
}
