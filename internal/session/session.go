// Package session persists the restorable part of the UI state between runs.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// Version is written into every snapshot
const Version = 1

var (
	// ErrNotFound is returned by Load when no session has been saved
	ErrNotFound = errors.New("session not found")
	// ErrParse is returned by Load when the session file is malformed
	ErrParse = errors.New("session file is malformed")
	// ErrWrite is returned by Save when the snapshot can't be written
	ErrWrite = errors.New("failed to write session")
	// ErrUnavailable is returned when there is nowhere to keep the session
	ErrUnavailable = errors.New("session storage unavailable")
)

// Snapshot is the persisted subset of the UI state.
// Results and preview text are never stored; they are recomputed from the query.
type Snapshot struct {
	Version int          `toml:"version"`
	Window  string       `toml:"window"`
	Mode    string       `toml:"mode"`
	Search  SearchState  `toml:"search"`
	Command CommandState `toml:"command"`
	Options OptionsState `toml:"options"`
}

// SearchState holds the query line
type SearchState struct {
	Query  string `toml:"query"`
	Cursor int    `toml:"cursor"`
	Scroll int    `toml:"scroll"`
}

// CommandState holds the command line
type CommandState struct {
	Query  string `toml:"query"`
	Cursor int    `toml:"cursor"`
}

// OptionsState holds the options window
type OptionsState struct {
	Scroll        int  `toml:"scroll"`
	Hidden        bool `toml:"hidden"`
	CaseSensitive bool `toml:"case_sensitive"`
	WholeWord     bool `toml:"whole_word"`
	FixedStrings  bool `toml:"fixed_strings"`
}

// Store loads, saves and deletes session snapshots
type Store interface {
	Load() (*Snapshot, error)
	Save(snapshot *Snapshot) error
	Delete() error
}

// FileStore keeps the snapshot in a TOML file
type FileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore creates a store for path on the OS file system
func NewFileStore(path string) *FileStore {
	return NewFileStoreWithFs(afero.NewOsFs(), path)
}

// NewFileStoreWithFs creates a store for path on the given file system
func NewFileStoreWithFs(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// Path returns the session file location
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the snapshot from disk
func (s *FileStore) Load() (*Snapshot, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("failed to read session %s: %w", s.path, err)
	}

	var snap Snapshot
	if err := toml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return &snap, nil
}

// Save writes the snapshot, creating the parent directory if needed
func (s *FileStore) Save(snapshot *Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("%w: nil snapshot", ErrWrite)
	}
	snapshot.Version = Version

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	data, err := toml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return nil
}

// Delete removes the snapshot; a missing file is not an error
func (s *FileStore) Delete() error {
	if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete session %s: %w", s.path, err)
	}
	return nil
}

// UnavailableStore stands in when the session location can't be resolved.
// Loading finds nothing; saving and deleting report Err.
type UnavailableStore struct {
	Err error
}

// Load implements Store
func (s UnavailableStore) Load() (*Snapshot, error) {
	return nil, fmt.Errorf("%w: %w", ErrNotFound, s.cause())
}

// Save implements Store
func (s UnavailableStore) Save(*Snapshot) error {
	return fmt.Errorf("%w: %w", ErrWrite, s.cause())
}

// Delete implements Store
func (s UnavailableStore) Delete() error {
	return s.cause()
}

func (s UnavailableStore) cause() error {
	if s.Err == nil {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, s.Err)
}
