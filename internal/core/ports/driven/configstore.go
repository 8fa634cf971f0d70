package driven

import "github.com/custodia-labs/pathfind/internal/core/domain"

// ConfigStore provides access to pathfind's persisted CLI preferences.
// Implementations handle storage and, optionally, live reload when the
// backing file changes out of band.
type ConfigStore interface {
	// Load reads the current configuration from storage.
	Load() (domain.Config, error)

	// Save persists cfg to storage.
	Save(cfg domain.Config) error

	// Path returns the configuration file path.
	Path() string

	// Watch invokes onChange, with the freshly reloaded configuration,
	// every time the backing file is modified. Watch returns a stop
	// function that releases watcher resources; callers must call it
	// when done. A nil onChange is invalid.
	Watch(onChange func(domain.Config)) (stop func() error, err error)
}
