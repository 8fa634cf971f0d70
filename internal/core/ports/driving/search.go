package driving

// SearchOrchestrator is consumed by a UI keystroke loop. OnUserQuery is
// idempotent when called twice in a row with the same query, and otherwise
// never blocks the caller: debouncing, cancellation and engine dispatch all
// happen on background goroutines.
type SearchOrchestrator interface {
	OnUserQuery(query string)
}
