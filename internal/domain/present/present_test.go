package present

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/packslist/packsearch/internal/domain/engine"
	"github.com/packslist/packsearch/internal/domain/index"
)

func TestPresent_Listing(t *testing.T) {
	res := engine.ScoredResult{
		Entry: index.Entry{
			Kind:        index.KindListing,
			DisplayText: "Blue Dream 3.5g",
			Listing:     &index.ListingPayload{City: "boston"},
		},
		Score: 1.0,
	}
	rec := Present(res, "blue")
	assert.Equal(t, IconListing, rec.Icon)
	assert.Equal(t, "<mark>Blue</mark> Dream 3.5g", rec.Title)
	assert.Equal(t, "Listing in boston", rec.Subtitle)
}

func TestPresent_ListingWithoutCity(t *testing.T) {
	res := engine.ScoredResult{
		Entry: index.Entry{Kind: index.KindListing, DisplayText: "Blue Dream", Listing: &index.ListingPayload{}},
	}
	assert.Equal(t, "Listing", Present(res, "").Subtitle)
}

func TestPresent_CityAndProduct(t *testing.T) {
	city := Present(engine.ScoredResult{
		Entry: index.Entry{Kind: index.KindCity, DisplayText: "Boston, MA", City: &index.CityPayload{}},
	}, "bos")
	assert.Equal(t, IconCity, city.Icon)
	assert.Equal(t, "City", city.Subtitle)
	assert.Equal(t, "<mark>Bos</mark>ton, MA", city.Title)

	product := Present(engine.ScoredResult{
		Entry: index.Entry{Kind: index.KindProductType, DisplayText: "Indica Pack", Product: &index.ProductPayload{}},
	}, "ind")
	assert.Equal(t, IconProduct, product.Icon)
	assert.Equal(t, "Product type", product.Subtitle)
}

func TestPresent_UnknownKind(t *testing.T) {
	rec := Present(engine.ScoredResult{Entry: index.Entry{Kind: index.Kind(99), DisplayText: "x"}}, "")
	assert.Equal(t, IconUnknown, rec.Icon)
	assert.Empty(t, rec.Subtitle)
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  string
	}{
		{"single match", "Boston, MA", "bos", "<mark>Bos</mark>ton, MA"},
		{"case preserved", "BOSTON", "bos", "<mark>BOS</mark>TON"},
		{"multiple matches", "indica indica", "ind", "<mark>ind</mark>ica <mark>ind</mark>ica"},
		{"no match", "Denver", "bos", "Denver"},
		{"empty query", "Denver", "", "Denver"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlight(tt.text, tt.query))
		})
	}
}

func TestHighlight_WidthChangingRunes(t *testing.T) {
	// Lowering shrinks İ (U+0130, 2 bytes -> 1) and grows Ⱥ (U+023A,
	// 2 bytes -> 3); the marked region must track the original text.
	assert.Equal(t, "İİİİ<mark>zq</mark>", Highlight("İİİİzq", "zq"))
	assert.Equal(t, "ȺȺȺȺ<mark>zq</mark>", Highlight("ȺȺȺȺzq", "zq"))
	assert.Equal(t, "<mark>İstanbul</mark> Pack", Highlight("İstanbul Pack", "istanbul"))
}

func TestHighlight_MatchCoversWholeRune(t *testing.T) {
	// A query matching only part of a rune's lowered form marks the
	// whole original rune, never a partial byte sequence.
	assert.Equal(t, "<mark>İ</mark>X", Highlight("İX", "i"))
}

func TestHighlight_EscapesUntrustedText(t *testing.T) {
	got := Highlight(`<script>alert("x")</script> deal`, "deal")
	assert.Equal(t, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt; <mark>deal</mark>", got)

	// Markup in the text never survives even inside the match.
	got = Highlight("<b>bold</b>", "<b>")
	assert.Equal(t, "<mark>&lt;b&gt;</mark>bold&lt;/b&gt;", got)
}
