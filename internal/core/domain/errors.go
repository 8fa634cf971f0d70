package domain

import "errors"

// Domain errors represent business logic failures, distinct from
// infrastructure errors which are wrapped with fmt.Errorf("%w") at the call
// site that observed them.
var (
	// ErrInvalidRoot indicates the Manager's configured root is not a
	// readable directory.
	ErrInvalidRoot = errors.New("search root is not a readable directory")

	// ErrInvalidLimit indicates a non-positive result limit was requested.
	ErrInvalidLimit = errors.New("limit must be at least 1")

	// ErrInvalidThreads indicates a non-positive thread count was requested.
	ErrInvalidThreads = errors.New("threads must be at least 1")
)

// InitError wraps a Manager construction failure, letting callers
// distinguish "could not even start a search" from "found nothing". The
// engine worker never surfaces an InitError past the event sink; it logs
// the failure and emits an empty result set instead.
type InitError struct {
	Op  string
	Err error
}

func (e *InitError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}
