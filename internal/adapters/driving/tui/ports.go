// Package tui provides an interactive terminal user interface for pathfind.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/pathfind/internal/core/domain"
	"github.com/custodia-labs/pathfind/internal/core/ports/driving"
)

// Ports aggregates the driving port and the event stream the TUI reads from.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Orchestrator drives the live fuzzy search engine.
	Orchestrator driving.SearchOrchestrator

	// Results delivers FileSearchResult events published by the
	// orchestrator's engine worker.
	Results <-chan domain.FileSearchResult
}

// NewPorts creates a new Ports aggregate.
func NewPorts(orchestrator driving.SearchOrchestrator, results <-chan domain.FileSearchResult) *Ports {
	return &Ports{
		Orchestrator: orchestrator,
		Results:      results,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Orchestrator == nil {
		return ErrMissingOrchestrator
	}
	if p.Results == nil {
		return ErrMissingResultsChannel
	}
	return nil
}
