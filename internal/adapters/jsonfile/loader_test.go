package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoader_MissingFilesAreEmptyCollections(t *testing.T) {
	l := New(t.TempDir())
	ctx := context.Background()

	listings, err := l.Listings(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)

	cities, err := l.Cities(ctx)
	require.NoError(t, err)
	assert.Empty(t, cities)

	products, err := l.ProductTypes(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestLoader_ReadsFixtures(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, ListingsFile, `[
		{"id": "lst-1", "title": "Blue Dream 3.5g", "price": 45, "city": "boston",
		 "vendor": {"id": "vnd-1", "name": "Green Guy", "phone": "617-555-0199"}}
	]`)
	writeFixture(t, dir, CitiesFile, `[{"name": "Boston", "state": "MA", "lat": 42.3601, "lng": -71.0589}]`)
	writeFixture(t, dir, ProductsFile, `[{"key": "indica", "name": "Indica Pack", "search_terms": ["indica"]}]`)

	l := New(dir)
	ctx := context.Background()

	listings, err := l.Listings(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Blue Dream 3.5g", listings[0].Title)
	require.NotNil(t, listings[0].Price)
	assert.Equal(t, 45.0, *listings[0].Price)
	require.NotNil(t, listings[0].Vendor)
	assert.Equal(t, "617-555-0199", listings[0].Vendor.Phone)

	cities, err := l.Cities(ctx)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, 42.3601, cities[0].Lat)

	products, err := l.ProductTypes(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, []string{"indica"}, products[0].SearchTerms)
}

func TestLoader_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, CitiesFile, `{not json`)

	_, err := New(dir).Cities(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), CitiesFile)
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(t.TempDir()).Listings(ctx)
	assert.Error(t, err)
}
