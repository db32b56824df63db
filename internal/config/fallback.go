package config

import "github.com/packslist/packsearch/internal/ports"

// FallbackCities is the curated service-area list used when the catalog
// source provides no city collection.
func FallbackCities() []ports.City {
	return []ports.City{
		{Name: "Boston", State: "MA", Lat: 42.3601, Lng: -71.0589},
		{Name: "Cambridge", State: "MA", Lat: 42.3736, Lng: -71.1097},
		{Name: "Somerville", State: "MA", Lat: 42.3876, Lng: -71.0995},
		{Name: "Worcester", State: "MA", Lat: 42.2626, Lng: -71.8023},
		{Name: "Springfield", State: "MA", Lat: 42.1015, Lng: -72.5898},
		{Name: "Providence", State: "RI", Lat: 41.8240, Lng: -71.4128},
		{Name: "Hartford", State: "CT", Lat: 41.7658, Lng: -72.6734},
		{Name: "Manchester", State: "NH", Lat: 42.9956, Lng: -71.4548},
		{Name: "Nashua", State: "NH", Lat: 42.7654, Lng: -71.4676},
		{Name: "Portland", State: "ME", Lat: 43.6591, Lng: -70.2568},
		{Name: "Burlington", State: "VT", Lat: 44.4759, Lng: -73.2121},
	}
}

// FallbackProductTypes is the curated category list with autocomplete
// aliases, used when the catalog source provides no product collection.
func FallbackProductTypes() []ports.ProductType {
	return []ports.ProductType{
		{Key: "flower", Name: "Flower", SearchTerms: []string{"flower", "bud", "eighth", "quarter", "ounce"}},
		{Key: "indica", Name: "Indica Pack", SearchTerms: []string{"indica"}},
		{Key: "sativa", Name: "Sativa Pack", SearchTerms: []string{"sativa"}},
		{Key: "hybrid", Name: "Hybrid Pack", SearchTerms: []string{"hybrid"}},
		{Key: "edibles", Name: "Edibles", SearchTerms: []string{"edible", "edibles", "gummies", "chocolate"}},
		{Key: "prerolls", Name: "Pre-Rolls", SearchTerms: []string{"preroll", "pre-roll", "joint", "joints"}},
		{Key: "vapes", Name: "Vapes", SearchTerms: []string{"vape", "cart", "carts", "cartridge", "pen"}},
		{Key: "concentrates", Name: "Concentrates", SearchTerms: []string{"concentrate", "wax", "shatter", "rosin", "dab"}},
	}
}
