// Package storage persists the single player record: a name and a high score.
// Two backends exist: the plain two-line text file the game has always used,
// and a one-row SQLite table using the pure-Go modernc.org/sqlite driver.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/jetty-boot/internal/config"
	"github.com/vovakirdan/jetty-boot/internal/games/jettyboot"
)

// Default record locations per backend.
const (
	DefaultFilePath   = "~/.jettyboot/jb.txt"
	DefaultSQLitePath = "~/.jettyboot/jettyboot.db"
)

// ErrMalformedRecord marks a record whose score could not be read.
// The accompanying Record still carries the name.
var ErrMalformedRecord = errors.New("storage: malformed high score")

// RecordStore is a jettyboot.RecordStore that holds resources.
type RecordStore interface {
	jettyboot.RecordStore
	Close() error
}

// Open opens the record store for backend at path.
// An empty path picks the backend default.
func Open(backend, path string) (RecordStore, error) {
	if path == "" {
		path = DefaultPath(backend)
	}

	switch backend {
	case config.BackendFile, "":
		return OpenFile(path)
	case config.BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}

// DefaultPath returns the default location for backend.
func DefaultPath(backend string) string {
	if backend == config.BackendSQLite {
		return DefaultSQLitePath
	}
	return DefaultFilePath
}

// preparePath expands a leading ~ and creates the parent directories.
func preparePath(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}
