package walker

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pathfind/internal/core/domain"
)

type collectingInjector struct {
	mu    sync.Mutex
	items []domain.SearchItem
}

func (c *collectingInjector) Push(item domain.SearchItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

func (c *collectingInjector) paths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.items))
	for i, item := range c.items {
		out[i] = item.Path
	}
	return out
}

func waitForCount(t *testing.T, inj *collectingInjector, n int, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if len(inj.paths()) >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d items, got %d", n, len(inj.paths()))
}

func TestWalker_DiscoversNestedFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "subdir"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "alpha.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "subdir", "gamma.rs"), []byte("fn main() {}"), 0o644))

	w := New(2, nil)
	inj := &collectingInjector{}
	require.NoError(t, w.Spawn(root, inj, func() bool { return false }, nil))

	waitForCount(t, inj, 2, 2*time.Second)

	paths := inj.paths()
	assert.Contains(t, paths, "alpha.txt")
	assert.Contains(t, paths, "subdir/gamma.rs")
}

func TestWalker_SkipsHiddenEntries(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "visible.txt"), []byte("v"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden.txt"), []byte("h"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git", "HEAD"), []byte("ref"), 0o644))

	w := New(1, nil)
	inj := &collectingInjector{}
	require.NoError(t, w.Spawn(root, inj, func() bool { return false }, nil))

	waitForCount(t, inj, 1, time.Second)
	time.Sleep(50 * time.Millisecond) // allow any spurious extra pushes to land

	assert.Equal(t, []string{"visible.txt"}, inj.paths())
}

func TestWalker_HonorsExcludeGlobs(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "vendor"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.go"), []byte("package main"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "vendor", "lib.go"), []byte("package vendor"), 0o644))

	w := New(1, []string{"vendor/**"})
	inj := &collectingInjector{}
	require.NoError(t, w.Spawn(root, inj, func() bool { return false }, nil))

	waitForCount(t, inj, 1, time.Second)
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, []string{"main.go"}, inj.paths())
}

func TestWalker_NonExistentRootReturnsError(t *testing.T) {
	w := New(1, nil)
	inj := &collectingInjector{}
	err := w.Spawn("/does/not/exist/at/all", inj, func() bool { return false }, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestWalker_CancellationStopsWalk(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 20; i++ {
		dir := filepath.Join(root, "d", string(rune('a'+i)))
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "f.txt"), []byte("x"), 0o644))
	}

	w := New(1, nil)
	inj := &collectingInjector{}
	var cancelled bool
	var mu sync.Mutex
	require.NoError(t, w.Spawn(root, inj, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return cancelled
	}, nil))

	mu.Lock()
	cancelled = true
	mu.Unlock()

	deadline := time.Now().Add(time.Second)
	for w.Running() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	assert.False(t, w.Running(), "walker should have stopped after cancellation")
}
