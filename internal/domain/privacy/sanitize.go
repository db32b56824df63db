package privacy

import (
	"math/rand"
	"regexp"

	"github.com/packslist/packsearch/internal/ports"
)

// DefaultFuzzRadius is the coordinate perturbation bound in degrees,
// roughly half a mile of latitude.
const DefaultFuzzRadius = 0.0072

// maxImageRefs caps how many image references survive sanitization.
const maxImageRefs = 3

// TextScrubber redacts vendor contact channels embedded in free text.
// The second return reports whether anything was redacted.
type TextScrubber interface {
	Scrub(text string) (string, bool)
}

// allowedFields is the complete set of keys a sanitized listing may carry.
// Anything not listed here is dropped, whatever the input contained.
var allowedFields = map[string]bool{
	"id":               true,
	"title":            true,
	"description":      true,
	"price":            true,
	"city":             true,
	"product_type":     true,
	"vendor_public_id": true,
	"rating":           true,
	"in_stock":         true,
	"verified":         true,
	"images":           true,
	"fuzzy_coords":     true,
}

// phoneRe matches North American phone number shapes in free text.
var phoneRe = regexp.MustCompile(`\+?1?[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

// FuzzCoords perturbs each axis by a uniform offset in [-radius, +radius].
// The result is marked approximate; exact coordinates never leave this
// function's caller.
func FuzzCoords(lat, lng, radius float64) map[string]any {
	return map[string]any{
		"lat":         lat + (rand.Float64()*2-1)*radius,
		"lng":         lng + (rand.Float64()*2-1)*radius,
		"approximate": true,
	}
}

// SanitizeListing projects a raw listing document onto the allow-list,
// fuzzes coordinates, substitutes the vendor with its public identifier,
// truncates image references, and scrubs contact channels from the
// description. The input document is not modified.
func SanitizeListing(doc map[string]any, vendorPublicID string, radius float64, scrub TextScrubber) map[string]any {
	if radius <= 0 {
		radius = DefaultFuzzRadius
	}
	out := make(map[string]any, len(doc))

	for key, val := range doc {
		if !allowedFields[key] {
			continue
		}
		switch key {
		case "description":
			if s, ok := val.(string); ok {
				out[key] = scrubText(s, scrub)
			}
		case "images":
			if imgs, ok := val.([]string); ok {
				if len(imgs) > maxImageRefs {
					imgs = imgs[:maxImageRefs]
				}
				out[key] = append([]string(nil), imgs...)
			}
		case "vendor_public_id", "fuzzy_coords":
			// Derived below; never taken from the input.
		default:
			out[key] = val
		}
	}

	lat, latOK := floatField(doc, "lat")
	lng, lngOK := floatField(doc, "lng")
	if latOK && lngOK {
		out["fuzzy_coords"] = FuzzCoords(lat, lng, radius)
	}

	if vendorPublicID != "" {
		out["vendor_public_id"] = vendorPublicID
	}

	return out
}

// ListingDoc flattens a typed catalog listing into its document form.
// PII fields (phone, address, exact coordinates, vendor contact data)
// are included here precisely so SanitizeListing can strip them.
func ListingDoc(l ports.Listing) map[string]any {
	doc := map[string]any{
		"id":           l.ID,
		"title":        l.Title,
		"description":  l.Description,
		"city":         l.City,
		"product_type": l.ProductType,
		"rating":       l.Rating,
		"in_stock":     l.InStock,
		"verified":     l.Verified,
	}
	if l.Price != nil {
		doc["price"] = *l.Price
	}
	if l.Lat != nil {
		doc["lat"] = *l.Lat
	}
	if l.Lng != nil {
		doc["lng"] = *l.Lng
	}
	if l.Address != "" {
		doc["address"] = l.Address
	}
	if l.Phone != "" {
		doc["phone"] = l.Phone
	}
	if len(l.Images) > 0 {
		doc["images"] = append([]string(nil), l.Images...)
	}
	if l.Vendor != nil {
		doc["vendor"] = map[string]any{
			"id":    l.Vendor.ID,
			"name":  l.Vendor.Name,
			"phone": l.Vendor.Phone,
			"email": l.Vendor.Email,
		}
	}
	return doc
}

// scrubText masks phone numbers and, when a scrubber is attached,
// contact-channel terms in free text.
func scrubText(s string, scrub TextScrubber) string {
	s = phoneRe.ReplaceAllString(s, "[removed]")
	if scrub != nil {
		s, _ = scrub.Scrub(s)
	}
	return s
}

func floatField(doc map[string]any, key string) (float64, bool) {
	switch v := doc[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}
