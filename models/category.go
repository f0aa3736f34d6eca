// Package models defines the shared value types exchanged between the
// classification cascades and their callers.
package models

// Category identifies the kind of content a page describes. The set of valid
// categories is fixed by the registry configuration; categories are never
// created at runtime.
type Category string

const (
	CategoryRealEstate     Category = "real_estate"
	CategoryTour           Category = "tour"
	CategoryRestaurant     Category = "restaurant"
	CategoryLocalTips      Category = "local_tips"
	CategoryTransportation Category = "transportation"
)

// DefaultCategory is the hard fallback when no detection strategy produces a
// verdict. Real estate was the system's original, most common input.
const DefaultCategory = CategoryRealEstate

func (c Category) String() string {
	return string(c)
}
