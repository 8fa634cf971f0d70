package domain

// SearchItem is a single indexable record pushed into the matcher's
// injector. The matcher ranks items against a single textual column: the
// path.
type SearchItem struct {
	// Path is the item's path, relative to the search root.
	Path string
}

// Match is one ranked result produced by a matcher snapshot.
type Match struct {
	// Path is the matched item's path.
	Path string

	// Indices are the byte positions within Path that matched the query,
	// present only when the matcher was constructed with highlights enabled.
	Indices []int
}

// Results is an ordered snapshot of matches, best first, truncated to the
// matcher's configured limit. Snapshots are refined during a search but are
// not guaranteed monotonic across ticks: ranks may shuffle as new items
// arrive.
type Results struct {
	Matches []Match
}

// Paths returns the match paths in rank order, used to detect whether two
// snapshots are worth re-emitting.
func (r Results) Paths() []string {
	if len(r.Matches) == 0 {
		return nil
	}
	paths := make([]string, len(r.Matches))
	for i, m := range r.Matches {
		paths[i] = m.Path
	}
	return paths
}

// TickStatus reports the outcome of one bounded unit of engine progress.
type TickStatus struct {
	// Running is true while the walker or matcher still has pending work.
	Running bool

	// Changed indicates the snapshot may differ from the prior tick.
	Changed bool
}

// SearchOptions configures a single Manager search.
type SearchOptions struct {
	// Query is the fuzzy pattern to rank paths against. Empty matches
	// everything, preserving input order.
	Query string

	// Root is the directory the walker enumerates, when EnableWalker is set.
	Root string

	// ExcludeGlobs are gitignore-style patterns (matched with
	// doublestar.Match against the path relative to Root) that the walker
	// skips.
	ExcludeGlobs []string

	// Limit is the maximum number of matches returned per snapshot. Must be
	// at least 1.
	Limit int

	// Threads is the matcher's ranking parallelism. Must be at least 1.
	Threads int

	// ComputeHighlights requests per-match highlight indices.
	ComputeHighlights bool

	// EnableWalker spawns the directory walker against Root. When false the
	// caller is expected to populate the matcher via Injector (used by
	// tests and by callers streaming items from elsewhere).
	EnableWalker bool
}

// FileSearchResult is published to the event sink when an engine worker
// first reports and again whenever its list of match paths changes.
// Consumers must tolerate more than one
// FileSearchResult per query, and must filter by Query since a result for a
// stale query may still arrive after cancellation was requested.
type FileSearchResult struct {
	Query   string
	Matches []Match
}
