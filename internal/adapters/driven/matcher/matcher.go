// Package matcher adapts github.com/sahilm/fuzzy — a synchronous
// subsequence fuzzy scorer, the same one bubbles/list's built-in filter
// uses — into the tick-driven, injector-fed Matcher port the engine
// composes. The external scorer knows nothing about injectors, ticks or
// cancellation; all of that is this package's job.
package matcher

import (
	"sort"
	"sync"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/custodia-labs/pathfind/internal/core/domain"
	"github.com/custodia-labs/pathfind/internal/core/ports/driven"
)

// Matcher ranks an ever-growing set of SearchItem against a fixed query.
type Matcher struct {
	pattern    string
	limit      int
	threads    int
	highlights bool
	notify     driven.Notifier

	mu       sync.Mutex
	items    []domain.SearchItem // all items folded into the current snapshot
	pending  []domain.SearchItem // pushed but not yet ranked
	snapshot domain.Results
	wake     chan struct{}
	cancel   chan struct{}
	done     bool
}

var _ driven.Matcher = (*Matcher)(nil)

// New constructs a Matcher. limit and threads must be at least 1.
func New(pattern string, limit, threads int, computeHighlights bool, notify driven.Notifier) *Matcher {
	if notify == nil {
		notify = func() {}
	}
	return &Matcher{
		pattern:    pattern,
		limit:      limit,
		threads:    threads,
		highlights: computeHighlights,
		notify:     notify,
		wake:       make(chan struct{}, 1),
		cancel:     make(chan struct{}),
	}
}

// Injector returns a handle for pushing new items.
func (m *Matcher) Injector() driven.Injector {
	return (*injector)(m)
}

type injector Matcher

// Push adds an item to the pending queue and wakes any blocked Tick.
func (i *injector) Push(item domain.SearchItem) {
	m := (*Matcher)(i)
	m.mu.Lock()
	if m.done {
		m.mu.Unlock()
		return
	}
	m.pending = append(m.pending, item)
	m.mu.Unlock()

	m.notify()
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// Cancel requests graceful shutdown. Subsequent ticks return promptly with
// Running=false.
func (m *Matcher) Cancel() {
	m.mu.Lock()
	if !m.done {
		m.done = true
		close(m.cancel)
	}
	m.mu.Unlock()
}

// Tick folds any pending items into the ranked snapshot, waiting up to
// timeout for new items to arrive if there is nothing pending yet.
func (m *Matcher) Tick(timeout time.Duration) domain.TickStatus {
	m.mu.Lock()
	cancelled := m.done
	hasPending := len(m.pending) > 0
	m.mu.Unlock()

	if cancelled {
		return domain.TickStatus{Running: false, Changed: false}
	}

	if !hasPending {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case <-m.wake:
		case <-m.cancel:
			return domain.TickStatus{Running: false, Changed: false}
		case <-timer.C:
			return domain.TickStatus{Running: false, Changed: false}
		}
	}

	m.mu.Lock()
	if m.done {
		m.mu.Unlock()
		return domain.TickStatus{Running: false, Changed: false}
	}
	newItems := m.pending
	m.pending = nil
	m.items = append(m.items, newItems...)
	items := m.items
	m.mu.Unlock()

	if len(newItems) == 0 {
		return domain.TickStatus{Running: false, Changed: false}
	}

	results := m.rank(items)

	m.mu.Lock()
	changed := !sameMatches(m.snapshot.Matches, results.Matches)
	m.snapshot = results
	stillPending := len(m.pending) > 0
	m.mu.Unlock()

	return domain.TickStatus{Running: stillPending, Changed: changed}
}

// CurrentSnapshot returns the matcher's best-ranked matches.
func (m *Matcher) CurrentSnapshot() domain.Results {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot
}

// rank scores items against the pattern, splitting the work across
// m.threads goroutines, then merges and truncates to m.limit.
func (m *Matcher) rank(items []domain.SearchItem) domain.Results {
	if m.pattern == "" {
		return m.rankUnfiltered(items)
	}

	threads := m.threads
	if threads < 1 {
		threads = 1
	}
	if threads > len(items) {
		threads = len(items)
	}
	if threads == 0 {
		return domain.Results{}
	}

	shardSize := (len(items) + threads - 1) / threads
	shardMatches := make([][]fuzzy.Match, threads)

	var wg sync.WaitGroup
	for t := 0; t < threads; t++ {
		start := t * shardSize
		end := start + shardSize
		if start >= len(items) {
			continue
		}
		if end > len(items) {
			end = len(items)
		}
		wg.Add(1)
		go func(t, start, end int) {
			defer wg.Done()
			paths := make([]string, end-start)
			for i, item := range items[start:end] {
				paths[i] = item.Path
			}
			matches := fuzzy.Find(m.pattern, paths)
			for i := range matches {
				matches[i].Index += start
			}
			shardMatches[t] = matches
		}(t, start, end)
	}
	wg.Wait()

	var all []fuzzy.Match
	for _, shard := range shardMatches {
		all = append(all, shard...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		return all[i].Index < all[j].Index
	})

	if len(all) > m.limit {
		all = all[:m.limit]
	}

	out := make([]domain.Match, len(all))
	for i, fm := range all {
		match := domain.Match{Path: items[fm.Index].Path}
		if m.highlights {
			match.Indices = append([]int(nil), fm.MatchedIndexes...)
		}
		out[i] = match
	}
	return domain.Results{Matches: out}
}

// rankUnfiltered handles the empty-query edge case: everything matches,
// in stable input order, truncated at the limit.
func (m *Matcher) rankUnfiltered(items []domain.SearchItem) domain.Results {
	n := len(items)
	if n > m.limit {
		n = m.limit
	}
	out := make([]domain.Match, n)
	for i := 0; i < n; i++ {
		out[i] = domain.Match{Path: items[i].Path}
	}
	return domain.Results{Matches: out}
}

func sameMatches(a, b []domain.Match) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Path != b[i].Path {
			return false
		}
	}
	return true
}
