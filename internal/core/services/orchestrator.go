package services

import (
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/pathfind/internal/core/domain"
	"github.com/custodia-labs/pathfind/internal/core/ports/driven"
	"github.com/custodia-labs/pathfind/internal/core/ports/driving"
	"github.com/custodia-labs/pathfind/internal/logger"
)

// activeSearch identifies the at-most-one in-flight engine worker attached
// to an Orchestrator.
type activeSearch struct {
	query      string
	cancelFlag *atomic.Bool
}

// searchState is the Orchestrator's process-wide state, guarded by a single
// mutex held only for short updates — never across a sleep, tick, or I/O.
type searchState struct {
	mu        sync.Mutex
	latest    string
	scheduled bool
	active    *activeSearch
}

// Orchestrator debounces keystrokes, ensures at most one in-flight engine
// search, cancels stale searches whose query is no longer a prefix of the
// latest input, and streams result snapshots to an EventSink. It lives for
// the whole session; a new Manager is built per search.
type Orchestrator struct {
	state     searchState
	searchDir string
	sink      driven.EventSink
	exclude   []string
	limit     int
}

var _ driving.SearchOrchestrator = (*Orchestrator)(nil)

// Option configures an Orchestrator at construction time.
type Option func(*Orchestrator)

// WithExcludeGlobs sets the gitignore-style globs every search run by this
// orchestrator passes through to its Manager's walker.
func WithExcludeGlobs(globs []string) Option {
	return func(o *Orchestrator) { o.exclude = globs }
}

// WithResultLimit overrides MaxResults for every search this orchestrator
// runs. Non-positive values are ignored, leaving MaxResults in effect.
func WithResultLimit(limit int) Option {
	return func(o *Orchestrator) {
		if limit > 0 {
			o.limit = limit
		}
	}
}

// NewOrchestrator constructs a session-lived orchestrator rooted at
// searchDir, publishing results to sink.
func NewOrchestrator(searchDir string, sink driven.EventSink, opts ...Option) *Orchestrator {
	o := &Orchestrator{searchDir: searchDir, sink: sink, limit: MaxResults}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// OnUserQuery is called whenever the user edits the search token. It is
// idempotent when query equals the last-seen query.
func (o *Orchestrator) OnUserQuery(query string) {
	o.state.mu.Lock()

	if query == o.state.latest {
		o.state.mu.Unlock()
		return
	}
	o.state.latest = query

	// Cancel an in-flight search that has become obsolete: the new query
	// no longer extends the one currently running, whether the user typed
	// something different or deleted back past it. The active entry stays
	// until the worker's guard clears it, so the debounce worker below
	// waits for the stale worker to wind down before starting a new one.
	if active := o.state.active; active != nil && !strings.HasPrefix(query, active.query) {
		active.cancelFlag.Store(true)
	}

	if o.state.scheduled {
		o.state.mu.Unlock()
		return
	}
	o.state.scheduled = true
	o.state.mu.Unlock()

	// Having set scheduled=true before releasing the lock, this goroutine
	// is the only one that may spawn a debounce worker.
	go o.debounce()
}

// debounce waits the fixed debounce delay, then polls until any prior
// active search has cleared, before starting the engine worker for the
// latest query.
func (o *Orchestrator) debounce() {
	time.Sleep(Debounce)

	for {
		o.state.mu.Lock()
		stillActive := o.state.active != nil
		o.state.mu.Unlock()
		if !stillActive {
			break
		}
		time.Sleep(ActivePoll)
	}

	cancelFlag := &atomic.Bool{}

	o.state.mu.Lock()
	query := o.state.latest
	o.state.scheduled = false
	o.state.active = &activeSearch{query: query, cancelFlag: cancelFlag}
	o.state.mu.Unlock()

	go o.runEngineWorker(query, cancelFlag)
}

// activeSearchGuard guarantees active_search is cleared on every exit path
// from the engine worker, but only if the stored active search still
// matches this guard's flag by pointer identity — protecting against a
// racing newer search that already replaced it.
type activeSearchGuard struct {
	state *searchState
	flag  *atomic.Bool
}

func (g *activeSearchGuard) release() {
	g.state.mu.Lock()
	defer g.state.mu.Unlock()
	if g.state.active != nil && g.state.active.cancelFlag == g.flag {
		g.state.active = nil
	}
}

// runEngineWorker drives one Manager through tick, snapshot and publish
// until the search is cancelled or the walker and matcher both settle.
func (o *Orchestrator) runEngineWorker(query string, cancelFlag *atomic.Bool) {
	guard := &activeSearchGuard{state: &o.state, flag: cancelFlag}
	defer guard.release()

	// workerID tags this worker's debug log lines so concurrent (stale and
	// replacement) engine workers are distinguishable in verbose output.
	workerID := uuid.NewString()

	var notifyFlag atomic.Bool
	notify := func() { notifyFlag.Store(true) }

	mgr, err := NewManager(domain.SearchOptions{
		Query:             query,
		Root:              o.searchDir,
		ExcludeGlobs:      o.exclude,
		Limit:             o.limit,
		Threads:           MatcherThreads,
		ComputeHighlights: true,
		EnableWalker:      true,
	}, notify)
	if err != nil {
		logger.Error("search[%s] initialization failed for %q: %v", workerID, query, err)
		o.sink.Publish(domain.FileSearchResult{Query: query, Matches: nil})
		return
	}
	defer mgr.Cancel()
	logger.Debug("search[%s] started for %q", workerID, query)

	var lastSentPaths []string
	sentOnce := false
	start := time.Now()
	lastProgress := start

	for {
		// Cancellation is observed at the top of each iteration and exits
		// without a further emission; the deferred Cancel drains the
		// walker and matcher.
		if cancelFlag.Load() {
			logger.Debug("search[%s] cancelled for %q", workerID, query)
			return
		}

		status := mgr.Tick(TickTimeout)
		flagWasSet := notifyFlag.Swap(false)
		results := mgr.CurrentResults()
		paths := results.Paths()

		// Re-read after the tick: a cancel that landed mid-tick must
		// suppress this iteration's emissions too.
		cancelled := cancelFlag.Load()
		pathsChanged := !slices.Equal(paths, lastSentPaths)
		timeoutElapsed := time.Since(start) >= FirstResultTimeout

		shouldEmit := !cancelled &&
			(pathsChanged || (!sentOnce && (flagWasSet || status.Changed || !status.Running || timeoutElapsed)))

		if shouldEmit {
			o.sink.Publish(domain.FileSearchResult{Query: query, Matches: results.Matches})
			sentOnce = true
			lastSentPaths = paths
			lastProgress = time.Now()
		}

		if !status.Running && !flagWasSet {
			if sentOnce {
				if time.Since(lastProgress) >= FirstResultTimeout {
					logger.Debug("search[%s] settled for %q", workerID, query)
					return
				}
			} else if timeoutElapsed {
				if !cancelled {
					o.sink.Publish(domain.FileSearchResult{Query: query, Matches: results.Matches})
					logger.Debug("search[%s] first-result deadline hit for %q", workerID, query)
				}
				return
			}
		}
	}
}
