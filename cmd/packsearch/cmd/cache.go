package cmd

import (
	"github.com/spf13/cobra"

	"github.com/packslist/packsearch/internal/domain/privacy"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Privacy cache operations",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [kind]",
	Short: "Clear the privacy cache, optionally for one kind only",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	a, _, log, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Stop()
	defer func() { _ = log.Sync() }()

	if len(args) == 1 {
		removed := a.Cache.ClearKind(privacyKind(args[0]))
		cmd.Printf("cleared %d %s entries\n", removed, args[0])
		return nil
	}
	a.Cache.ClearAll()
	cmd.Println("cache cleared")
	return nil
}

// privacyKind converts a CLI kind argument to the cache kind type.
func privacyKind(s string) privacy.Kind {
	return privacy.Kind(s)
}
