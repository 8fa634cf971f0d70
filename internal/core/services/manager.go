package services

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/pathfind/internal/adapters/driven/matcher"
	"github.com/custodia-labs/pathfind/internal/adapters/driven/walker"
	"github.com/custodia-labs/pathfind/internal/core/domain"
	"github.com/custodia-labs/pathfind/internal/core/ports/driven"
)

// Manager composes a Matcher and, optionally, a Walker behind one
// pump-driven API. It is constructed per search and dropped when the
// search completes or is cancelled.
type Manager struct {
	matcher   driven.Matcher
	walker    driven.Walker
	limit     int
	cancelled atomic.Bool
}

// NewManager constructs a Manager for a single search. If opts.EnableWalker
// is set, it spawns a directory walker against opts.Root; otherwise the
// caller is expected to populate the matcher via Injector (used for tests
// and for callers streaming items from elsewhere). Returns an *InitError if
// opts is invalid or opts.Root is not a readable directory.
func NewManager(opts domain.SearchOptions, notify driven.Notifier) (*Manager, error) {
	if opts.Limit < 1 {
		return nil, &domain.InitError{Op: "new search manager", Err: domain.ErrInvalidLimit}
	}
	if opts.Threads < 1 {
		return nil, &domain.InitError{Op: "new search manager", Err: domain.ErrInvalidThreads}
	}

	m := &Manager{
		matcher: matcher.New(opts.Query, opts.Limit, opts.Threads, opts.ComputeHighlights, notify),
		limit:   opts.Limit,
	}

	if opts.EnableWalker {
		info, err := os.Stat(opts.Root)
		if err != nil || !info.IsDir() {
			return nil, &domain.InitError{Op: "check search root", Err: domain.ErrInvalidRoot}
		}

		w := walker.New(opts.Threads, opts.ExcludeGlobs)
		if err := w.Spawn(opts.Root, m.matcher.Injector(), m.cancelled.Load, notify); err != nil {
			return nil, &domain.InitError{Op: "spawn directory walker", Err: err}
		}
		m.walker = w
	}

	return m, nil
}

// Injector returns the matcher's injector handle, used by callers that
// populate the search manually (EnableWalker=false).
func (m *Manager) Injector() driven.Injector {
	return m.matcher.Injector()
}

// Tick delegates to the matcher's tick, also reporting Running=true while
// an enabled walker still has files left to enumerate. Once Cancel has been
// called, Tick reports Running=false.
func (m *Manager) Tick(timeout time.Duration) domain.TickStatus {
	status := m.matcher.Tick(timeout)
	if m.walker != nil && !m.cancelled.Load() && m.walker.Running() {
		status.Running = true
	}
	return status
}

// CurrentResults returns the matcher's snapshot, truncated to the
// configured limit.
func (m *Manager) CurrentResults() domain.Results {
	res := m.matcher.CurrentSnapshot()
	if len(res.Matches) > m.limit {
		res.Matches = res.Matches[:m.limit]
	}
	return res
}

// Cancel signals the walker's cancellation check and the matcher's cancel,
// forcing both to drain quickly.
func (m *Manager) Cancel() {
	m.cancelled.Store(true)
	m.matcher.Cancel()
}
