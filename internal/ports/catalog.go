// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

import "context"

// Vendor is a raw vendor record as delivered by the catalog source.
// Contact fields are PII and must never leave the privacy layer.
type Vendor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Listing is a raw marketplace listing as delivered by the catalog source.
// Price, Lat and Lng are pointers so "absent" is distinguishable from zero.
type Listing struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	City        string   `json:"city,omitempty"`
	ProductType string   `json:"product_type,omitempty"`
	Vendor      *Vendor  `json:"vendor,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	Address     string   `json:"address,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Images      []string `json:"images,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	InStock     bool     `json:"in_stock,omitempty"`
	Verified    bool     `json:"verified,omitempty"`
}

// City is a curated city record with its map anchor point.
type City struct {
	Name  string  `json:"name"`
	State string  `json:"state"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// ProductType is a curated product category with its autocomplete aliases.
type ProductType struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	SearchTerms []string `json:"search_terms,omitempty"`
}

// Catalog is the read-only boundary with the document store.
// Implementations return whatever is currently available; an empty slice
// with a nil error is the defined "data not loaded yet" state, never a
// failure the search layer has to handle specially.
type Catalog interface {
	Listings(ctx context.Context) ([]Listing, error)
	Cities(ctx context.Context) ([]City, error)
	ProductTypes(ctx context.Context) ([]ProductType, error)
}
