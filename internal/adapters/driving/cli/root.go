// Package cli wires pathfind's cobra command tree to the core search
// engine and its driven adapters.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/pathfind/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pathfind",
	Short: "Interactive fuzzy path search",
	Long: `pathfind walks a directory tree and ranks paths against a fuzzy
query as you type, the same engine VS Code's "Go to File" and similar
editor pickers use under the hood.

Run "pathfind interactive" for the live TUI, or "pathfind search <query>"
for a single non-interactive search.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose debug logging")
}

// Execute runs the root command. It is the sole entry point cmd/pathfind
// calls into.
func Execute() error {
	return rootCmd.Execute()
}
