package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pathfind/internal/core/domain"
	"github.com/custodia-labs/pathfind/internal/core/services"
)

var (
	searchRoot    string
	searchLimit   int
	searchExclude []string
	searchJSON    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run a single fuzzy path search and print the results",
	Long: `Runs one fuzzy path search against a directory tree and prints the
ranked matches. Unlike "pathfind interactive", this does not start a TUI:
it walks the tree once, ranks paths against query, and exits.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchRoot, "root", "r", ".", "directory to search")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", services.MaxResults, "maximum number of results")
	searchCmd.Flags().StringSliceVar(&searchExclude, "exclude", nil, "gitignore-style glob to exclude")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	results, err := runOneShotSearch(query, searchRoot, searchExclude, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

// runOneShotSearch drives a Manager to completion and returns its final
// snapshot, used by the non-interactive search command where there is no
// orchestrator debouncing keystrokes.
func runOneShotSearch(query, root string, exclude []string, limit int) ([]domain.Match, error) {
	mgr, err := services.NewManager(domain.SearchOptions{
		Query:             query,
		Root:              root,
		ExcludeGlobs:      exclude,
		Limit:             limit,
		Threads:           services.MatcherThreads,
		ComputeHighlights: false,
		EnableWalker:      true,
	}, nil)
	if err != nil {
		return nil, err
	}

	for {
		status := mgr.Tick(services.TickTimeout)
		if !status.Running {
			break
		}
		time.Sleep(services.ActivePoll)
	}

	return mgr.CurrentResults().Matches, nil
}

func outputSearchJSON(cmd *cobra.Command, matches []domain.Match) error {
	data, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, matches []domain.Match) error {
	if len(matches) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, m := range matches {
		cmd.Printf("  [%d] %s\n", i+1, m.Path)
	}

	return nil
}
