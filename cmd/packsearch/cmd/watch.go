package cmd

import (
	"bufio"
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/packslist/packsearch/internal/domain/engine"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Interactive search with live catalog reload",
	Long: "Reads queries from stdin and prints debounced results. When catalog.watch\n" +
		"is enabled, fixture changes rebuild the index without a restart.",
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, cfg, log, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Stop()
	defer func() { _ = log.Sync() }()

	if err := a.Start(context.Background()); err != nil {
		return err
	}

	// Print settled results as the debounce delivers them.
	a.Engine.Subscribe(func(results []engine.ScoredResult, query string) {
		cmd.Printf("\n%q:\n", query)
		printResults(cmd, results, query)
		cmd.Print("> ")
	})

	cmd.Printf("indexed %d entries, session %s\n", a.Engine.Size(), a.Cache.Session())
	cmd.Print("> ")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			cmd.Print("> ")
			continue
		}
		a.Engine.DebouncedSearch(line, cfg.Search.DefaultLimit, cfg.Search.DebounceDelay)
	}
	return scanner.Err()
}
