package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pathfind/internal/adapters/driven/config/file"
	"github.com/custodia-labs/pathfind/internal/adapters/driving/tui"
	"github.com/custodia-labs/pathfind/internal/core/domain"
	"github.com/custodia-labs/pathfind/internal/core/ports/driven"
	"github.com/custodia-labs/pathfind/internal/core/services"
)

var (
	interactiveRoot    string
	interactiveExclude []string
	watchConfig        bool
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive fuzzy path search TUI",
	Long: `Launch the interactive terminal user interface for pathfind.

Controls:
  (type)   Filter as you type
  ↑/ctrl+p Navigate up
  ↓/ctrl+n Navigate down
  enter    Accept the highlighted path and exit
  ctrl+u   Clear the query
  esc      Quit`,
	RunE: runInteractive,
}

func init() {
	interactiveCmd.Flags().StringVarP(&interactiveRoot, "root", "r", "", "directory to search (defaults to config or cwd)")
	interactiveCmd.Flags().StringSliceVar(&interactiveExclude, "exclude", nil, "gitignore-style glob to exclude")
	interactiveCmd.Flags().BoolVar(&watchConfig, "watch-config", false, "watch the config file while the TUI runs; changes take effect on the next launch")
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
		}
	}()

	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	cfg, err := store.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	root := resolveRoot(interactiveRoot, cfg.DefaultRoot)
	exclude := resolveExclude(interactiveExclude, cfg.ExcludeGlobs)

	results := make(chan domain.FileSearchResult, 4)
	sink := driven.EventSinkFunc(func(r domain.FileSearchResult) {
		select {
		case results <- r:
		default:
			// Drop a snapshot rather than block the engine worker; the
			// next tick publishes a fresher one anyway.
		}
	})

	orchestrator := services.NewOrchestrator(root, sink,
		services.WithExcludeGlobs(exclude),
		services.WithResultLimit(cfg.ResultLimit),
	)

	if watchConfig {
		stop, err := store.Watch(func(domain.Config) {
			// The orchestrator is already bound to the root/excludes it
			// started with for this session; a config change takes effect
			// on the next launch. Reloading mid-session would require
			// tearing down in-flight searches, which interactive sessions
			// rarely need.
		})
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		defer func() { _ = stop() }()
	}

	ports := tui.NewPorts(orchestrator, results)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	selected, err := app.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if selected != "" {
		cmd.Println(selected)
	}

	return nil
}

// resolveRoot picks the effective search root: an explicit flag wins, then
// a persisted config default, then the current working directory.
func resolveRoot(flagRoot, configRoot string) string {
	if flagRoot != "" {
		return flagRoot
	}
	if configRoot != "" {
		return configRoot
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

// resolveExclude picks the effective exclude globs: explicit flags replace
// the persisted config defaults rather than merging with them.
func resolveExclude(flagExclude, configExclude []string) []string {
	if len(flagExclude) > 0 {
		return flagExclude
	}
	return configExclude
}
