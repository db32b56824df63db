// Package bolt implements the ports.Catalog interface using bbolt
// (embedded B+ tree). Each collection is stored as a JSON blob under its
// own key; imports are transactional, so a crash mid-write cannot
// corrupt previously committed data.
package bolt

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	bbolt "go.etcd.io/bbolt"

	"github.com/packslist/packsearch/internal/ports"
)

var (
	bucketCatalog = []byte("catalog")
	keyListings   = []byte("listings")
	keyCities     = []byte("cities")
	keyProducts   = []byte("products")
)

// Store implements ports.Catalog backed by bbolt.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) a catalog database at the given path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "bbolt open")
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Listings returns the stored listing collection; empty when never imported.
func (s *Store) Listings(ctx context.Context) ([]ports.Listing, error) {
	var out []ports.Listing
	if err := s.load(ctx, keyListings, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Cities returns the stored city collection; empty when never imported.
func (s *Store) Cities(ctx context.Context) ([]ports.City, error) {
	var out []ports.City
	if err := s.load(ctx, keyCities, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProductTypes returns the stored product collection; empty when never imported.
func (s *Store) ProductTypes(ctx context.Context) ([]ports.ProductType, error) {
	var out []ports.ProductType
	if err := s.load(ctx, keyProducts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ImportListings replaces the stored listing collection.
func (s *Store) ImportListings(ctx context.Context, listings []ports.Listing) error {
	return s.save(ctx, keyListings, listings)
}

// ImportCities replaces the stored city collection.
func (s *Store) ImportCities(ctx context.Context, cities []ports.City) error {
	return s.save(ctx, keyCities, cities)
}

// ImportProductTypes replaces the stored product collection.
func (s *Store) ImportProductTypes(ctx context.Context, products []ports.ProductType) error {
	return s.save(ctx, keyProducts, products)
}

func (s *Store) save(ctx context.Context, key []byte, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	blob, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshal collection")
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketCatalog)
		if err != nil {
			return err
		}
		return b.Put(key, blob)
	})
}

func (s *Store) load(ctx context.Context, key []byte, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var blob []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketCatalog)
		if b == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx).
		if raw := b.Get(key); raw != nil {
			blob = make([]byte, len(raw))
			copy(blob, raw)
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "bbolt view")
	}
	if blob == nil {
		return nil
	}
	return errors.Wrap(json.Unmarshal(blob, v), "unmarshal collection")
}
