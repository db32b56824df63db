package cmd

import "github.com/spf13/cobra"

// Version is set at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the packsearch version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("packsearch " + Version)
	},
}
