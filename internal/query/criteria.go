// Package query implements the in-memory filter, pagination, and debounce
// primitives behind the browse and admin list views. Filtering runs over a
// cached snapshot of a collection, never against the backing store.
package query

import (
	"strings"
)

// Criteria holds the active filter selections for a list view. An empty
// string means the criterion is unset and its stage is skipped entirely.
type Criteria struct {
	SearchTerm string
	Status     string
	OfferType  string
	Category   string
	Floor      string
	ShopID     string
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Schema maps filter stages onto fields of T. A nil accessor disables the
// corresponding stage for that collection; SearchFields lists the fields
// free-text search matches against.
type Schema[T any] struct {
	Status       func(T) string
	OfferType    func(T) string
	Category     func(T) string
	Floor        func(T) string
	ShopID       func(T) string
	SearchFields []func(T) string
}

// Apply filters items by the criteria, running stages in a fixed order:
// status, offer type, category, floor, shop, then free-text search. Each
// stage narrows the previous stage's result; unset criteria skip their
// stage. The result preserves input order and shares no backing array with
// the input.
func Apply[T any](items []T, c Criteria, s Schema[T]) []T {
	out := make([]T, 0, len(items))
	out = append(out, items...)

	if c.Status != "" && s.Status != nil {
		out = keep(out, func(item T) bool { return s.Status(item) == c.Status })
	}
	if c.OfferType != "" && s.OfferType != nil {
		out = keep(out, func(item T) bool { return s.OfferType(item) == c.OfferType })
	}
	if c.Category != "" && s.Category != nil {
		out = keep(out, func(item T) bool { return s.Category(item) == c.Category })
	}
	if c.Floor != "" && s.Floor != nil {
		out = keep(out, func(item T) bool { return s.Floor(item) == c.Floor })
	}
	if c.ShopID != "" && s.ShopID != nil {
		out = keep(out, func(item T) bool { return s.ShopID(item) == c.ShopID })
	}

	if term := strings.ToLower(strings.TrimSpace(c.SearchTerm)); term != "" && len(s.SearchFields) > 0 {
		out = keep(out, func(item T) bool {
			for _, field := range s.SearchFields {
				value := field(item)
				if value != "" && strings.Contains(strings.ToLower(value), term) {
					return true
				}
			}
			return false
		})
	}

	return out
}

// keep filters in place, preserving order.
func keep[T any](items []T, match func(T) bool) []T {
	out := items[:0]
	for _, item := range items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}
