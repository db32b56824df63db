// Package present maps ranked search results to display-ready records.
// All text is HTML-escaped before any markup is added: display text
// comes from user-authored listings and is untrusted.
package present

import (
	"fmt"
	"html"
	"strings"

	"github.com/packslist/packsearch/internal/domain/engine"
	"github.com/packslist/packsearch/internal/domain/index"
)

// DisplayRecord is what the presentation layer receives per result.
// Title contains escaped markup with <mark> around query matches.
type DisplayRecord struct {
	Icon     string
	Title    string
	Subtitle string
}

// Icon tags per entry kind. The unknown tag covers kinds added to the
// catalog before this mapping learns about them.
const (
	IconListing = "package"
	IconCity    = "map-pin"
	IconProduct = "tag"
	IconUnknown = "search"
)

// Present formats one scored result for display.
func Present(res engine.ScoredResult, query string) DisplayRecord {
	return DisplayRecord{
		Icon:     iconFor(res.Entry.Kind),
		Title:    Highlight(res.Entry.DisplayText, query),
		Subtitle: subtitleFor(res.Entry),
	}
}

func iconFor(kind index.Kind) string {
	switch kind {
	case index.KindListing:
		return IconListing
	case index.KindCity:
		return IconCity
	case index.KindProductType:
		return IconProduct
	}
	return IconUnknown
}

func subtitleFor(e index.Entry) string {
	switch e.Kind {
	case index.KindListing:
		if e.Listing != nil && e.Listing.City != "" {
			return fmt.Sprintf("Listing in %s", e.Listing.City)
		}
		return "Listing"
	case index.KindCity:
		return "City"
	case index.KindProductType:
		return "Product type"
	}
	return ""
}

// Highlight wraps every case-insensitive occurrence of query inside text
// with <mark> markers. Both matched and unmatched segments are escaped.
// An empty query returns the escaped text unchanged. Matching runs over
// a lowered copy of the text; offsets are mapped back to the original
// because lowering can change rune byte widths.
func Highlight(text, query string) string {
	if query == "" {
		return html.EscapeString(text)
	}
	lower, starts := foldOffsets(text)
	lowerQuery := strings.ToLower(query)

	var b strings.Builder
	pos := 0  // byte offset into text
	lpos := 0 // byte offset into lower
	for {
		idx := strings.Index(lower[lpos:], lowerQuery)
		if idx < 0 {
			break
		}
		ls := lpos + idx
		le := ls + len(lowerQuery)
		// A match ending inside one rune's folded bytes covers the whole rune.
		for le < len(lower) && starts[le] == starts[le-1] {
			le++
		}
		b.WriteString(html.EscapeString(text[pos:starts[ls]]))
		b.WriteString("<mark>")
		b.WriteString(html.EscapeString(text[starts[ls]:starts[le]]))
		b.WriteString("</mark>")
		pos = starts[le]
		lpos = le
	}
	b.WriteString(html.EscapeString(text[pos:]))
	return b.String()
}

// foldOffsets lowers s rune by rune and records, for every byte of the
// lowered text, the starting offset of the original rune it came from.
// The extra final element is len(s), so any lowered span maps back to a
// whole-rune span of s. Offsets into the lowered text are never valid
// in the original (lowering shrinks some runes and grows others).
func foldOffsets(s string) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	starts := make([]int, 0, len(s)+1)
	for i, r := range s {
		low := strings.ToLower(string(r))
		b.WriteString(low)
		for j := 0; j < len(low); j++ {
			starts = append(starts, i)
		}
	}
	starts = append(starts, len(s))
	return b.String(), starts
}
