package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/pathfind/internal/core/domain"
	"github.com/custodia-labs/pathfind/internal/core/ports/driven"
	"github.com/custodia-labs/pathfind/internal/logger"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is a TOML-backed implementation of driven.ConfigStore.
// Configuration lives in a single file within the pathfind config
// directory, by default ~/.pathfind/config.toml.
type ConfigStore struct {
	mu       sync.Mutex
	filePath string
}

// NewConfigStore creates a TOML-based config store. If configDir is empty,
// defaults to ~/.pathfind.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("determine home directory: %w", err)
		}
		configDir = filepath.Join(home, ".pathfind")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	return &ConfigStore{filePath: filepath.Join(configDir, "config.toml")}, nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// Load reads the current configuration from disk. A missing file is not an
// error; it yields the zero-value Config.
func (s *ConfigStore) Load() (domain.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *ConfigStore) load() (domain.Config, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Config{}, nil
		}
		return domain.Config{}, fmt.Errorf("read config file: %w", err)
	}

	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// Save persists cfg to disk with restricted permissions.
func (s *ConfigStore) Save(cfg domain.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Watch starts an fsnotify watch on the config file's directory (the file
// itself may not exist yet, or may be replaced atomically by an editor's
// save-via-rename) and invokes onChange with the freshly reloaded
// configuration on every write or create event targeting the config file.
// Parse errors during a reload are logged and otherwise ignored, leaving
// the previous in-memory configuration in effect.
func (s *ConfigStore) Watch(onChange func(domain.Config)) (func() error, error) {
	if onChange == nil {
		return nil, fmt.Errorf("watch config: onChange must not be nil")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}

	dir := filepath.Dir(s.filePath)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch config directory: %w", err)
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != s.filePath {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := s.Load()
				if err != nil {
					logger.Warn("config reload failed: %v", err)
					continue
				}
				onChange(cfg)
			case werr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error: %v", werr)
			case <-done:
				return
			}
		}
	}()

	stop := func() error {
		close(done)
		return watcher.Close()
	}
	return stop, nil
}
