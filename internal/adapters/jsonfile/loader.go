// Package jsonfile implements the ports.Catalog interface over a data
// directory of JSON fixture files: listings.json, cities.json,
// products.json. A missing file is the defined "collection not loaded"
// state and yields an empty slice, not an error.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/packslist/packsearch/internal/ports"
)

// Fixture file names within the data directory.
const (
	ListingsFile = "listings.json"
	CitiesFile   = "cities.json"
	ProductsFile = "products.json"
)

// Loader implements ports.Catalog over a directory of JSON files.
type Loader struct {
	dir string
}

// New creates a loader for the given data directory.
func New(dir string) *Loader {
	return &Loader{dir: dir}
}

// Dir returns the data directory the loader reads from.
func (l *Loader) Dir() string { return l.dir }

// Listings reads listings.json; absent file means empty collection.
func (l *Loader) Listings(ctx context.Context) ([]ports.Listing, error) {
	var out []ports.Listing
	if err := l.read(ctx, ListingsFile, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Cities reads cities.json; absent file means empty collection.
func (l *Loader) Cities(ctx context.Context) ([]ports.City, error) {
	var out []ports.City
	if err := l.read(ctx, CitiesFile, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProductTypes reads products.json; absent file means empty collection.
func (l *Loader) ProductTypes(ctx context.Context) ([]ports.ProductType, error) {
	var out []ports.ProductType
	if err := l.read(ctx, ProductsFile, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Loader) read(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := os.ReadFile(filepath.Join(l.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "read %s", name)
	}
	return errors.Wrapf(json.Unmarshal(raw, v), "parse %s", name)
}
