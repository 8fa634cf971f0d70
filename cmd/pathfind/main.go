// Command pathfind is the entry point for the interactive fuzzy path
// search CLI and TUI.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/pathfind/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
