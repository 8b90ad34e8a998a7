package session

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "/home/u/.config/lens/session.toml"

func TestLoadMissing(t *testing.T) {
	store := NewFileStoreWithFs(afero.NewMemMapFs(), testPath)

	snap, err := store.Load()
	assert.Nil(t, snap)
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewFileStoreWithFs(fs, testPath)

	snap := &Snapshot{
		Window:  "search",
		Mode:    "insert",
		Search:  SearchState{Query: "foo: bar", Cursor: 3, Scroll: 2},
		Command: CommandState{Query: ":w", Cursor: 2},
		Options: OptionsState{Scroll: 1, Hidden: true, WholeWord: true},
	}
	require.NoError(t, store.Save(snap))

	exists, err := afero.DirExists(fs, "/home/u/.config/lens")
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Version, loaded.Version)
	assert.Equal(t, snap, loaded)
}

func TestSessionFileIsReadableTOML(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewFileStoreWithFs(fs, testPath)
	require.NoError(t, store.Save(&Snapshot{Window: "search", Mode: "normal", Search: SearchState{Query: "needle"}}))

	data, err := afero.ReadFile(fs, testPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "needle")
	assert.Contains(t, string(data), "[search]")
}

func TestLoadMalformed(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testPath, []byte("window = \n[[["), 0644))

	_, err := NewFileStoreWithFs(fs, testPath).Load()
	assert.True(t, errors.Is(err, ErrParse), "got %v", err)
}

func TestSaveFailure(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := NewFileStoreWithFs(fs, testPath).Save(&Snapshot{})
	assert.True(t, errors.Is(err, ErrWrite), "got %v", err)
}

func TestDelete(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewFileStoreWithFs(fs, testPath)

	// Nothing to delete is success
	require.NoError(t, store.Delete())

	require.NoError(t, store.Save(&Snapshot{Window: "search"}))
	require.NoError(t, store.Delete())

	_, err := store.Load()
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUnavailableStore(t *testing.T) {
	cause := errors.New("no home directory")
	var store Store = UnavailableStore{Err: cause}

	snap, err := store.Load()
	assert.Nil(t, snap)
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)

	err = store.Save(&Snapshot{Window: "search", Mode: "normal"})
	assert.True(t, errors.Is(err, ErrWrite), "got %v", err)
	assert.True(t, errors.Is(err, ErrUnavailable), "got %v", err)
	assert.Contains(t, err.Error(), "no home directory")

	err = store.Delete()
	assert.True(t, errors.Is(err, ErrUnavailable), "got %v", err)
}
