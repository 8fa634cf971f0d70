// Package services hosts the two components that make up the search
// engine's core: Manager (the per-search engine, composing a matcher and a
// directory walker behind one pump-driven API) and Orchestrator (the
// session-lived debounce/cancellation layer a UI keystroke loop drives).
package services

import "time"

// Fixed constants, not user-visible, governing engine timing and the
// per-emission result cap.
const (
	// MaxResults caps the number of matches returned per emission.
	MaxResults = 8

	// MatcherThreads is the matcher's ranking parallelism.
	MatcherThreads = 2

	// Debounce is the minimum delay before the first engine search starts.
	Debounce = 100 * time.Millisecond

	// TickTimeout bounds each engine tick, roughly one UI frame.
	TickTimeout = 16 * time.Millisecond

	// FirstResultTimeout is the deadline by which the first result event
	// must be emitted, even if the search is still running.
	FirstResultTimeout = 200 * time.Millisecond

	// ActivePoll is the debounce worker's poll interval while a prior
	// active search has not yet cleared.
	ActivePoll = 20 * time.Millisecond
)
