package search

import "errors"

// ErrNoOrchestrator indicates that no search orchestrator was provided.
var ErrNoOrchestrator = errors.New("search orchestrator is required")
