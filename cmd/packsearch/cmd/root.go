package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/packslist/packsearch/internal/app"
	"github.com/packslist/packsearch/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "packsearch",
	Short:         "Fuzzy marketplace search",
	Long:          "Fuzzy autocomplete over listings, cities, and product types, with a privacy-scoped listing cache.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

// loadApp builds the wired application from configuration.
func loadApp() (*app.App, config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	log, err := newLogger(cfg.Env)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	a, err := app.New(cfg, log)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	return a, cfg, log, nil
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func init() {
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}
