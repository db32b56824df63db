package index

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/packslist/packsearch/internal/domain/privacy"
	"github.com/packslist/packsearch/internal/ports"
)

// Builder normalizes catalog collections into index entries. As each
// listing entry is built, a sanitized copy of the listing is stored in
// the privacy cache under a session-scoped public identifier, so nothing
// downstream ever needs the raw document again.
type Builder struct {
	cache      *privacy.Cache
	listingIDs *privacy.IDMap
	vendorIDs  *privacy.IDMap
	fuzzRadius float64
	scrub      privacy.TextScrubber
	log        *zap.Logger
}

// NewBuilder wires a builder to the privacy cache. scrub may be nil.
func NewBuilder(cache *privacy.Cache, fuzzRadius float64, scrub privacy.TextScrubber, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		cache:      cache,
		listingIDs: privacy.NewIDMap(),
		vendorIDs:  privacy.NewIDMap(),
		fuzzRadius: fuzzRadius,
		scrub:      scrub,
		log:        log,
	}
}

// Build produces a fresh index from the given collections. Listings
// missing a title, price, city, or vendor are skipped silently; empty
// input collections yield an empty (but valid) index, which makes
// "search before data is loaded" a defined state.
func (b *Builder) Build(listings []ports.Listing, cities []ports.City, products []ports.ProductType) []Entry {
	entries := make([]Entry, 0, len(listings)+len(cities)+len(products))
	skipped := 0

	for _, l := range listings {
		e, ok := b.buildListing(l)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	for _, c := range cities {
		if e, ok := buildCity(c); ok {
			entries = append(entries, e)
		}
	}
	for _, p := range products {
		if e, ok := buildProduct(p); ok {
			entries = append(entries, e)
		}
	}

	b.log.Debug("index built",
		zap.Int("entries", len(entries)),
		zap.Int("listings_skipped", skipped))
	return entries
}

// buildListing validates required fields, issues public identifiers, and
// caches the sanitized document as a side effect.
func (b *Builder) buildListing(l ports.Listing) (Entry, bool) {
	if strings.TrimSpace(l.Title) == "" || l.Price == nil || l.City == "" || l.Vendor == nil {
		return Entry{}, false
	}

	publicID := b.listingIDs.Issue(l.ID)
	vendorPublicID := b.vendorIDs.Issue(l.Vendor.ID)

	if b.cache != nil {
		sanitized := privacy.SanitizeListing(privacy.ListingDoc(l), vendorPublicID, b.fuzzRadius, b.scrub)
		b.cache.Put(privacy.KindListing, publicID, sanitized, 0)
	}

	return Entry{
		Kind:           KindListing,
		DisplayText:    l.Title,
		SearchableText: strings.ToLower(l.Title),
		Listing: &ListingPayload{
			ID:             l.ID,
			PublicID:       publicID,
			Price:          *l.Price,
			City:           l.City,
			ProductType:    l.ProductType,
			VendorPublicID: vendorPublicID,
		},
	}, true
}

func buildCity(c ports.City) (Entry, bool) {
	if c.Name == "" {
		return Entry{}, false
	}
	display := c.Name
	if c.State != "" {
		display = fmt.Sprintf("%s, %s", c.Name, c.State)
	}
	return Entry{
		Kind:           KindCity,
		DisplayText:    display,
		SearchableText: strings.ToLower(strings.TrimSpace(c.Name + " " + c.State)),
		City: &CityPayload{
			Name:  c.Name,
			State: c.State,
			Lat:   c.Lat,
			Lng:   c.Lng,
		},
	}, true
}

func buildProduct(p ports.ProductType) (Entry, bool) {
	if p.Name == "" {
		return Entry{}, false
	}
	searchable := strings.ToLower(strings.Join(p.SearchTerms, " "))
	if strings.TrimSpace(searchable) == "" {
		searchable = strings.ToLower(p.Name)
	}
	key := p.Key
	if key == "" {
		key = strings.ToLower(strings.ReplaceAll(p.Name, " ", "_"))
	}
	return Entry{
		Kind:           KindProductType,
		DisplayText:    p.Name,
		SearchableText: searchable,
		Product: &ProductPayload{
			Key:         key,
			SearchTerms: append([]string(nil), p.SearchTerms...),
		},
	}, true
}
