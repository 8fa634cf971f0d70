package domain

// Config holds the persisted CLI preferences for pathfind: the defaults the
// interactive command applies when a flag is not given explicitly on the
// command line. The search command does not read them.
type Config struct {
	// DefaultRoot is the directory searched when --root is not given.
	// Empty means the current working directory.
	DefaultRoot string `toml:"default_root"`

	// ExcludeGlobs are gitignore-style patterns the walker skips when
	// --exclude is not given; an explicit --exclude replaces them.
	ExcludeGlobs []string `toml:"exclude_globs"`

	// ResultLimit overrides MaxResults when positive.
	ResultLimit int `toml:"result_limit"`

	// Highlights is saved and loaded with the rest of the file, but no
	// command reads it: the TUI always renders match highlight spans.
	Highlights bool `toml:"highlights"`
}
