// Package store persists the current-player selection as a flat file under
// the user cache directory. The file holds the raw player identifier and
// nothing else, so other tools can read it directly.
// Writes are atomic (temp+rename) but unlocked: concurrent instances race
// and the last write wins.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrUnreadable wraps I/O failures reading the selection file, distinct
	// from the file simply not existing yet.
	ErrUnreadable = errors.New("cannot read cache file")
	// ErrUnwritable wraps I/O failures writing the selection file.
	ErrUnwritable = errors.New("cannot write cache file")
)

const fileName = "currentplayer"

// Store reads and writes the persisted selection.
type Store struct {
	path string
}

// Open resolves the XDG-compliant cache file path and ensures its directory
// exists.
func Open(appName string) (*Store, error) {
	dir, err := cacheDir(appName)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("%w: creating cache dir: %v", ErrUnwritable, err)
	}
	return &Store{path: filepath.Join(dir, fileName)}, nil
}

// cacheDir returns the XDG-compliant cache directory for appName.
func cacheDir(appName string) (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".cache", appName), nil
}

// Path returns the location of the selection file.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted selection. ok is false when nothing has been
// persisted yet.
func (s *Store) Load() (id string, ok bool, err error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	id = strings.TrimSpace(string(data))
	return id, id != "", nil
}

// Save atomically overwrites the persisted selection.
func (s *Store) Save(id string) error {
	dir := filepath.Dir(s.path)

	tmpFile, err := os.CreateTemp(dir, fileName+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", ErrUnwritable, err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.WriteString(id); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrUnwritable, err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: closing temp file: %v", ErrUnwritable, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: renaming cache file: %v", ErrUnwritable, err)
	}
	return nil
}
