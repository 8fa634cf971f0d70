package driven

import (
	"time"

	"github.com/custodia-labs/pathfind/internal/core/domain"
)

// Injector is a thread-safe handle for pushing SearchItems into a Matcher's
// index without blocking the caller.
type Injector interface {
	// Push adds an item to the index. Safe for concurrent use, and for use
	// after the matcher has been cancelled (the item is simply dropped).
	Push(item domain.SearchItem)
}

// Matcher wraps an external fuzzy matching engine: it accepts an injected
// stream of SearchItem, exposes a non-blocking tick method, and a snapshot
// read of the current ranked matches.
type Matcher interface {
	// Injector returns a handle for pushing new items.
	Injector() Injector

	// Tick drives one unit of internal progress. It may block up to timeout
	// waiting for either matcher progress or injector changes, but returns
	// promptly if progress occurs earlier. Running is true iff the matcher
	// has outstanding injected items still to rank.
	Tick(timeout time.Duration) domain.TickStatus

	// CurrentSnapshot returns up to the matcher's configured limit of best
	// matches, sorted by descending rank, with highlight indices iff the
	// matcher was constructed with compute_highlights.
	CurrentSnapshot() domain.Results

	// Cancel requests graceful shutdown. Subsequent ticks complete quickly
	// with Running=false.
	Cancel()
}
