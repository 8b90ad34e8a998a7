package editor

import (
	"errors"
	"io"
	"os/exec"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lens/internal/domain"
)

// fakeTerminal records the order of release/restore calls
type fakeTerminal struct {
	events     []string
	releaseErr error
}

func (f *fakeTerminal) ReleaseTerminal() error {
	f.events = append(f.events, "release")
	return f.releaseErr
}

func (f *fakeTerminal) RestoreTerminal() error {
	f.events = append(f.events, "restore")
	return nil
}

type fakeRunner struct {
	terminal *fakeTerminal
	dir      string
	name     string
	args     []string
	err      error
	calls    int
}

func (f *fakeRunner) Run(dir, name string, args ...string) error {
	f.calls++
	f.dir, f.name, f.args = dir, name, args
	if f.terminal != nil {
		f.terminal.events = append(f.terminal.events, "run")
	}
	return f.err
}

var match = domain.Match{Path: "a.txt", Line: 3, Column: 1, Text: "foo"}

func newTestLauncher(editor string, runErr error) (*Launcher, *fakeTerminal, *fakeRunner) {
	term := &fakeTerminal{}
	runner := &fakeRunner{terminal: term, err: runErr}
	l := NewLauncher(editor, "/work", runner, nil)
	l.SetTerminal(term)
	return l, term, runner
}

func TestOpenVim(t *testing.T) {
	l, term, runner := newTestLauncher("vim", nil)

	require.NoError(t, l.Open(match))
	assert.Equal(t, "/work", runner.dir)
	assert.Equal(t, "vim", runner.name)
	assert.Equal(t, []string{"+normal 3G1|", "a.txt"}, runner.args)
	assert.Equal(t, []string{"release", "run", "restore"}, term.events)
}

func TestCommandArguments(t *testing.T) {
	tests := []struct {
		editor string
		name   string
		args   []string
	}{
		{"nvim", "nvim", []string{"+normal 3G1|", "a.txt"}},
		{"emacs", "emacs", []string{"+3:1", "a.txt"}},
		{"emacsclient -t", "emacsclient", []string{"-t", "+3:1", "a.txt"}},
		{"nano", "nano", []string{"a.txt"}},
		{"code -w", "code", []string{"-w", "a.txt"}},
		{`"/opt/my editor/bin/vim"`, "/opt/my editor/bin/vim", []string{"+normal 3G1|", "a.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.editor, func(t *testing.T) {
			l := NewLauncher(tt.editor, "", nil, nil)
			name, args, ok, err := l.Command(match)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestOpenWithoutEditor(t *testing.T) {
	l, term, runner := newTestLauncher("", nil)

	require.NoError(t, l.Open(match))
	assert.Zero(t, runner.calls)
	assert.Empty(t, term.events)
}

func TestOpenSpawnFailureRestoresTerminal(t *testing.T) {
	l, term, _ := newTestLauncher("vim", exec.ErrNotFound)

	err := l.Open(match)
	assert.True(t, errors.Is(err, ErrLaunchFailed), "got %v", err)
	assert.Equal(t, []string{"release", "run", "restore"}, term.events)
}

func TestOpenNonZeroExit(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	exitErr := exec.Command("sh", "-c", "exit 3").Run()
	require.Error(t, exitErr)

	l, term, _ := newTestLauncher("vim", exitErr)

	err := l.Open(match)
	assert.True(t, errors.Is(err, ErrEditorExited), "got %v", err)
	assert.Equal(t, []string{"release", "run", "restore"}, term.events)
}

func TestOpenReleaseFailure(t *testing.T) {
	l, term, runner := newTestLauncher("vim", nil)
	term.releaseErr = errors.New("no tty")

	require.Error(t, l.Open(match))
	assert.Zero(t, runner.calls)
}

func TestOpenWithoutTerminal(t *testing.T) {
	l := NewLauncher("vim", "", &fakeRunner{}, nil)

	err := l.Open(match)
	assert.True(t, errors.Is(err, ErrNoTerminal))
	assert.True(t, errors.Is(err, ErrLaunchFailed))
}

func TestOpenInvalidEditorCommand(t *testing.T) {
	l, _, runner := newTestLauncher(`vim "unterminated`, nil)

	err := l.Open(match)
	assert.True(t, errors.Is(err, ErrLaunchFailed), "got %v", err)
	assert.Zero(t, runner.calls)
}

func TestPagerShowFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/a.txt", []byte("bar\nbaz\nfoo\n"), 0644))

	var paged string
	term := &fakeTerminal{}
	p := NewPagerWithFs(fs, "/work", func(r io.Reader) error {
		data, err := io.ReadAll(r)
		paged = string(data)
		term.events = append(term.events, "view")
		return err
	})
	p.SetTerminal(term)

	require.NoError(t, p.ShowFile("a.txt"))
	assert.Equal(t, "bar\nbaz\nfoo\n", paged)
	assert.Equal(t, []string{"release", "view", "restore"}, term.events)

	require.NoError(t, p.ShowText("help"))
	assert.Equal(t, "help", paged)
}

func TestPagerMissingFile(t *testing.T) {
	term := &fakeTerminal{}
	p := NewPagerWithFs(afero.NewMemMapFs(), "/work", func(io.Reader) error { return nil })
	p.SetTerminal(term)

	require.Error(t, p.ShowFile("gone.txt"))
	assert.Empty(t, term.events)
}
