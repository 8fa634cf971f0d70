package tui

import "errors"

// ErrMissingOrchestrator is returned when no search orchestrator is provided.
var ErrMissingOrchestrator = errors.New("tui: search orchestrator is required")

// ErrMissingResultsChannel is returned when no results channel is provided.
var ErrMissingResultsChannel = errors.New("tui: results channel is required")
