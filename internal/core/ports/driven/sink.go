package driven

import "github.com/custodia-labs/pathfind/internal/core/domain"

// EventSink publishes a FileSearchResult to a consumer (a UI event bus in
// production, a channel in tests). Implementations may be called more than
// once per query and must not block the engine worker for long.
type EventSink interface {
	Publish(result domain.FileSearchResult)
}

// EventSinkFunc adapts a plain function to an EventSink.
type EventSinkFunc func(domain.FileSearchResult)

// Publish calls f.
func (f EventSinkFunc) Publish(result domain.FileSearchResult) {
	f(result)
}
