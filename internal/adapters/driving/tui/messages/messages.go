// Package messages defines Bubbletea message types for the pathfind TUI.
// Messages represent events and commands that flow through the Elm
// architecture.
package messages

import (
	"github.com/custodia-labs/pathfind/internal/core/domain"
)

// ResultsUpdated carries one emission from the Search Orchestrator's event
// sink. More than one may arrive per query as the engine worker refines its
// snapshot; consumers must check Query against the current input value to
// discard results for a query that has since changed.
type ResultsUpdated struct {
	Query   string
	Matches []domain.Match
}

// Selected is sent when the user accepts the highlighted result.
type Selected struct {
	Path string
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit without a selection.
type Quit struct{}
