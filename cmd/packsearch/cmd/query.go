package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/packslist/packsearch/internal/domain/engine"
	"github.com/packslist/packsearch/internal/domain/present"
)

var queryLimit int

var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "Run a one-shot search against the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().IntVarP(&queryLimit, "limit", "n", 0, "maximum results (default from config)")
}

func runQuery(cmd *cobra.Command, args []string) error {
	a, _, log, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Stop()
	defer func() { _ = log.Sync() }()

	a.Reload(context.Background())

	results := a.Engine.Search(args[0], queryLimit)
	printResults(cmd, results, args[0])
	return nil
}

func printResults(cmd *cobra.Command, results []engine.ScoredResult, query string) {
	if len(results) == 0 {
		cmd.Println("no results found")
		return
	}
	for i, res := range results {
		rec := present.Present(res, query)
		cmd.Printf("%d. [%s] %s | %s (%.2f)\n", i+1, rec.Icon, rec.Title, rec.Subtitle, res.Score)
	}
}
