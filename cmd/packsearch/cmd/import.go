package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/packslist/packsearch/internal/adapters/bolt"
	"github.com/packslist/packsearch/internal/adapters/jsonfile"
)

var (
	importDataDir string
	importDBPath  string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import JSON fixtures into the catalog database",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&importDataDir, "data-dir", "data", "directory with listings.json, cities.json, products.json")
	importCmd.Flags().StringVar(&importDBPath, "db", "packsearch.db", "catalog database path")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	loader := jsonfile.New(importDataDir)

	store, err := bolt.Open(importDBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	listings, err := loader.Listings(ctx)
	if err != nil {
		return err
	}
	cities, err := loader.Cities(ctx)
	if err != nil {
		return err
	}
	products, err := loader.ProductTypes(ctx)
	if err != nil {
		return err
	}

	if err := store.ImportListings(ctx, listings); err != nil {
		return err
	}
	if err := store.ImportCities(ctx, cities); err != nil {
		return err
	}
	if err := store.ImportProductTypes(ctx, products); err != nil {
		return err
	}

	cmd.Printf("imported %d listings, %d cities, %d product types into %s\n",
		len(listings), len(cities), len(products), importDBPath)
	return nil
}
