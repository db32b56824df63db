// Package index normalizes heterogeneous catalog records (listings,
// cities, product types) into a flat searchable index. Building is
// wholesale: every Build produces a complete replacement slice that the
// engine swaps in atomically.
package index

// Kind tags an Entry with its source entity type.
type Kind uint8

const (
	KindListing Kind = iota
	KindCity
	KindProductType
)

// String returns the lower-case label used in display output and dedup keys.
func (k Kind) String() string {
	switch k {
	case KindListing:
		return "listing"
	case KindCity:
		return "city"
	case KindProductType:
		return "product"
	}
	return "unknown"
}

// ListingPayload carries the listing-specific slice of an Entry.
// Vendor and listing identifiers are session-scoped public ids; the raw
// catalog ids never appear past the builder.
type ListingPayload struct {
	ID             string
	PublicID       string
	Price          float64
	City           string
	ProductType    string
	VendorPublicID string
}

// CityPayload carries the city-specific slice of an Entry.
type CityPayload struct {
	Name  string
	State string
	Lat   float64
	Lng   float64
}

// ProductPayload carries the product-type-specific slice of an Entry.
type ProductPayload struct {
	Key         string
	SearchTerms []string
}

// Entry is one normalized searchable record. Exactly one payload pointer
// is non-nil, matching Kind.
//
// Invariant: SearchableText is lower-case and non-empty; records that
// would violate this are skipped at build time.
type Entry struct {
	Kind           Kind
	DisplayText    string
	SearchableText string

	Listing *ListingPayload
	City    *CityPayload
	Product *ProductPayload
}
