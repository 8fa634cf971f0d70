package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pathfind/internal/core/domain"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot determine home directory")
	}

	store, err := NewConfigStore("")
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(home, ".pathfind", "config.toml"), store.Path())

	_ = os.Remove(store.Path())
}

func TestConfigStore_LoadMissingFileReturnsZeroValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.Config{}, cfg)
}

func TestConfigStore_SaveThenLoadRoundTrips(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	want := domain.Config{
		DefaultRoot:  "/srv/code",
		ExcludeGlobs: []string{"**/.git/**", "**/node_modules/**"},
		ResultLimit:  5,
		Highlights:   true,
	}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConfigStore_WatchInvokesOnChangeAfterSave(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	changed := make(chan domain.Config, 1)
	stop, err := store.Watch(func(cfg domain.Config) { changed <- cfg })
	require.NoError(t, err)
	defer func() { _ = stop() }()

	require.NoError(t, store.Save(domain.Config{DefaultRoot: "/tmp/x", ResultLimit: 3}))

	select {
	case cfg := <-changed:
		assert.Equal(t, "/tmp/x", cfg.DefaultRoot)
		assert.Equal(t, 3, cfg.ResultLimit)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for config watch callback")
	}
}

func TestConfigStore_WatchRejectsNilCallback(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Watch(nil)
	assert.Error(t, err)
}
