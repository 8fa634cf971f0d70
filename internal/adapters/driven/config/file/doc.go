// Package file provides a file-based implementation of the ConfigStore
// driven port, persisting pathfind's CLI preferences as TOML with
// optional live reload via fsnotify.
package file
