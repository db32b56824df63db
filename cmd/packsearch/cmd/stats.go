package cmd

import (
	"context"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show privacy cache statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	a, _, log, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Stop()
	defer func() { _ = log.Sync() }()

	a.Reload(context.Background())

	stats := a.Cache.Stats()
	cmd.Printf("session:       %s\n", a.Cache.Session())
	cmd.Printf("index entries: %d\n", a.Engine.Size())
	cmd.Printf("cache entries: %d\n", stats.TotalEntries)

	kinds := make([]string, 0, len(stats.ByKind))
	for k := range stats.ByKind {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		cmd.Printf("  %-14s %d\n", k, stats.ByKind[privacyKind(k)])
	}
	return nil
}
