// Package walker adapts a parallel recursive directory walk into the
// driven.Walker port: it enumerates regular files under a root, skipping
// hidden entries and any path matching a configured exclude glob, and
// pushes each one into the matcher's injector using a fan-out worker pool
// over directories.
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/custodia-labs/pathfind/internal/core/domain"
	"github.com/custodia-labs/pathfind/internal/core/ports/driven"
	"github.com/custodia-labs/pathfind/internal/logger"
)

// Walker enumerates a directory tree with a bounded pool of goroutines.
type Walker struct {
	threads int
	exclude []string

	running atomic.Bool
}

var _ driven.Walker = (*Walker)(nil)

// New constructs a Walker. threads is clamped to at least 1. exclude holds
// doublestar patterns matched against each file's path relative to the
// walk root.
func New(threads int, exclude []string) *Walker {
	if threads < 1 {
		threads = 1
	}
	return &Walker{threads: threads, exclude: exclude}
}

// Running reports whether the walk is still in progress.
func (w *Walker) Running() bool {
	return w.running.Load()
}

// Spawn validates root, then starts the walk in background goroutines.
func (w *Walker) Spawn(root string, injector driven.Injector, cancelled func() bool, notify driven.Notifier) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("search root %q does not exist: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("search root %q is not a directory", root)
	}
	if notify == nil {
		notify = func() {}
	}
	if cancelled == nil {
		cancelled = func() bool { return false }
	}

	w.running.Store(true)
	go w.walk(root, injector, cancelled, notify)
	return nil
}

func (w *Walker) walk(root string, injector driven.Injector, cancelled func() bool, notify driven.Notifier) {
	defer w.running.Store(false)

	work := make(chan string, 1024)
	var pending sync.WaitGroup
	pending.Add(1)
	work <- root

	var workers sync.WaitGroup
	for i := 0; i < w.threads; i++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			for dir := range work {
				w.processDir(dir, root, injector, cancelled, notify, work, &pending)
				pending.Done()
			}
		}()
	}

	go func() {
		pending.Wait()
		close(work)
	}()
	workers.Wait()
}

func (w *Walker) processDir(
	dir, root string,
	injector driven.Injector,
	cancelled func() bool,
	notify driven.Notifier,
	work chan<- string,
	pending *sync.WaitGroup,
) {
	if cancelled() {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Debug("walker: skipping %s: %v", dir, err)
		return
	}

	pushed := false
	for _, entry := range entries {
		if cancelled() {
			return
		}

		name := entry.Name()
		if len(name) > 0 && name[0] == '.' {
			continue // skip hidden files and directories, including .git
		}

		full := filepath.Join(dir, name)

		if entry.IsDir() {
			pending.Add(1)
			select {
			case work <- full:
			default:
				// The queue is full and this goroutine is one of its
				// consumers; hand off asynchronously rather than block.
				go func(dir string) { work <- dir }(full)
			}
			continue
		}

		rel, err := filepath.Rel(root, full)
		if err != nil {
			rel = full
		}
		rel = filepath.ToSlash(rel)

		if w.isExcluded(rel) {
			continue
		}

		injector.Push(domain.SearchItem{Path: rel})
		pushed = true
	}

	if pushed {
		notify()
	}
}

func (w *Walker) isExcluded(relPath string) bool {
	for _, pattern := range w.exclude {
		if matched, _ := doublestar.Match(pattern, relPath); matched {
			return true
		}
	}
	return false
}
