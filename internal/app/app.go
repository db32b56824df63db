// Package app wires the catalog source, privacy cache, index builder,
// and query engine together and manages their lifecycle.
package app

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/packslist/packsearch/internal/adapters/bolt"
	"github.com/packslist/packsearch/internal/adapters/fswatch"
	"github.com/packslist/packsearch/internal/adapters/jsonfile"
	"github.com/packslist/packsearch/internal/adapters/scrubber"
	"github.com/packslist/packsearch/internal/config"
	"github.com/packslist/packsearch/internal/domain/engine"
	"github.com/packslist/packsearch/internal/domain/index"
	"github.com/packslist/packsearch/internal/domain/privacy"
	"github.com/packslist/packsearch/internal/ports"
)

// App is the top-level container wiring all components together.
type App struct {
	Cache   *privacy.Cache
	Builder *index.Builder
	Engine  *engine.Engine
	Catalog ports.Catalog

	cfg     config.Config
	log     *zap.Logger
	watcher *fswatch.Watcher
	closeFn func() error
}

// New constructs the component graph from configuration. Nothing is
// loaded or started yet; call Start (or Reload for one-shot use).
func New(cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var scrub privacy.TextScrubber
	if cfg.Scrub.Enabled {
		terms := scrubber.DefaultTerms
		if len(cfg.Scrub.ExtraTerms) > 0 {
			terms = append(append([]string(nil), terms...), cfg.Scrub.ExtraTerms...)
		}
		scrub = scrubber.New(terms)
	}

	cache := privacy.NewCache(privacy.Options{
		ListingTTL: cfg.Cache.ListingTTL,
		ConfigTTL:  cfg.Cache.ConfigTTL,
		MaxPerKind: cfg.Cache.MaxPerKind,
		Logger:     log,
	})

	a := &App{
		Cache:   cache,
		Builder: index.NewBuilder(cache, cfg.Cache.FuzzRadius, scrub, log),
		Engine: engine.New(engine.Options{
			Threshold: cfg.Search.Threshold,
			Limit:     cfg.Search.DefaultLimit,
			Logger:    log,
		}),
		cfg: cfg,
		log: log,
	}

	switch cfg.Catalog.Source {
	case "bolt":
		store, err := bolt.Open(cfg.Catalog.DBPath)
		if err != nil {
			return nil, errors.Wrap(err, "open catalog db")
		}
		a.Catalog = store
		a.closeFn = store.Close
	case "json", "":
		a.Catalog = jsonfile.New(cfg.Catalog.DataDir)
	default:
		return nil, errors.Newf("unknown catalog source %q", cfg.Catalog.Source)
	}

	return a, nil
}

// Reload fetches all collections and rebuilds the index wholesale.
// An unavailable collaborator degrades to an empty collection; searching
// before data is loaded is a defined state, not an error.
func (a *App) Reload(ctx context.Context) {
	listings := a.fetchListings(ctx)
	cities := a.fetchCities(ctx)
	products := a.fetchProducts(ctx)

	entries := a.Builder.Build(listings, cities, products)
	a.Engine.SetIndex(entries)
	a.log.Info("index reloaded",
		zap.Int("listings", len(listings)),
		zap.Int("cities", len(cities)),
		zap.Int("products", len(products)),
		zap.Int("entries", len(entries)))
}

// Start performs the initial load, launches the cache sweep, and, when
// configured, watches the data directory for fixture changes.
func (a *App) Start(ctx context.Context) error {
	a.Reload(ctx)
	a.Cache.StartSweep(a.cfg.Cache.SweepInterval)

	if a.cfg.Catalog.Watch && a.cfg.Catalog.Source != "bolt" {
		w, err := fswatch.New()
		if err != nil {
			return errors.Wrap(err, "create watcher")
		}
		if err := w.Watch(a.cfg.Catalog.DataDir, func(path string) {
			a.log.Debug("catalog fixture changed", zap.String("path", path))
			a.Reload(context.Background())
		}); err != nil {
			_ = w.Close()
			return errors.Wrap(err, "watch data dir")
		}
		a.watcher = w
	}
	return nil
}

// Stop shuts down the sweep ticker, the watcher, and the catalog store.
func (a *App) Stop() {
	a.Cache.Stop()
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	if a.closeFn != nil {
		_ = a.closeFn()
	}
}

func (a *App) fetchListings(ctx context.Context) []ports.Listing {
	listings, err := a.Catalog.Listings(ctx)
	if err != nil {
		a.log.Warn("listings unavailable", zap.Error(err))
		return nil
	}
	return listings
}

func (a *App) fetchCities(ctx context.Context) []ports.City {
	cities, err := a.Catalog.Cities(ctx)
	if err != nil {
		a.log.Warn("cities unavailable", zap.Error(err))
		cities = nil
	}
	if len(cities) == 0 && a.cfg.Catalog.UseFallbackCities {
		return config.FallbackCities()
	}
	return cities
}

func (a *App) fetchProducts(ctx context.Context) []ports.ProductType {
	products, err := a.Catalog.ProductTypes(ctx)
	if err != nil {
		a.log.Warn("product types unavailable", zap.Error(err))
		products = nil
	}
	if len(products) == 0 && a.cfg.Catalog.UseFallbackProducts {
		return config.FallbackProductTypes()
	}
	return products
}
