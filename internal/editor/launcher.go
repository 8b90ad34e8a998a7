// Package editor hands the terminal to external programs: the user's
// editor positioned at a match, and the in-process pager.
package editor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/google/shlex"

	"lens/internal/domain"
)

var (
	// ErrLaunchFailed is returned when the editor can't be spawned or waited on
	ErrLaunchFailed = errors.New("failed to launch editor")
	// ErrEditorExited is returned when the editor exits with a non-zero status
	ErrEditorExited = errors.New("editor exited with error")
	// ErrNoTerminal is returned when no terminal was set before running a program
	ErrNoTerminal = errors.New("terminal not set")
)

// Terminal gives up and takes back the screen around an external program.
// *tea.Program satisfies it.
type Terminal interface {
	ReleaseTerminal() error
	RestoreTerminal() error
}

// Runner runs a program attached to the user's terminal
type Runner interface {
	Run(dir, name string, args ...string) error
}

// ExecRunner runs programs with os/exec, inheriting stdio
type ExecRunner struct{}

// Run implements Runner
func (ExecRunner) Run(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	// Inherit stdio so the editor fully takes over the terminal
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Launcher opens matches in the user's editor
type Launcher struct {
	editor   string
	dir      string
	terminal Terminal
	runner   Runner
	logger   *slog.Logger
}

// NewLauncher creates a launcher for editor, run in dir.
// An empty editor makes Open a no-op.
func NewLauncher(editor, dir string, runner Runner, logger *slog.Logger) *Launcher {
	if runner == nil {
		runner = ExecRunner{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Launcher{
		editor: editor,
		dir:    dir,
		runner: runner,
		logger: logger,
	}
}

// SetTerminal sets the terminal released while the editor runs
func (l *Launcher) SetTerminal(t Terminal) {
	l.terminal = t
}

// Command returns the program and arguments that open match in the
// editor. ok is false when no editor is configured.
func (l *Launcher) Command(match domain.Match) (name string, args []string, ok bool, err error) {
	words, err := shlex.Split(l.editor)
	if err != nil {
		return "", nil, false, fmt.Errorf("%w: invalid editor command %q: %v", ErrLaunchFailed, l.editor, err)
	}
	if len(words) == 0 {
		return "", nil, false, nil
	}

	name = words[0]
	args = append(args, words[1:]...)
	if pos := domain.EditorFamilyOf(name).PositionArg(match.Line, match.Column); pos != "" {
		args = append(args, pos)
	}
	args = append(args, match.Path)
	return name, args, true, nil
}

// Open runs the editor on match and blocks until it exits. The terminal
// is restored afterwards whatever the editor's exit status.
func (l *Launcher) Open(match domain.Match) error {
	name, args, ok, err := l.Command(match)
	if err != nil {
		return err
	}
	if !ok {
		l.logger.Debug("no editor configured")
		return nil
	}
	if l.terminal == nil {
		return fmt.Errorf("%w: %w", ErrLaunchFailed, ErrNoTerminal)
	}

	l.logger.Info("opening editor", "editor", name, "args", args)

	return withReleasedTerminal(l.terminal, func() error {
		runErr := l.runner.Run(l.dir, name, args...)
		if runErr == nil {
			return nil
		}

		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return fmt.Errorf("%w: %s: %v", ErrEditorExited, name, runErr)
		}
		return fmt.Errorf("%w: %s: %v", ErrLaunchFailed, name, runErr)
	})
}

// withReleasedTerminal runs fn with the terminal released, restoring it
// even when fn fails
func withReleasedTerminal(t Terminal, fn func() error) (err error) {
	if err := t.ReleaseTerminal(); err != nil {
		return fmt.Errorf("failed to release terminal: %w", err)
	}
	defer func() {
		if restoreErr := t.RestoreTerminal(); restoreErr != nil && err == nil {
			err = fmt.Errorf("failed to restore terminal: %w", restoreErr)
		}
	}()

	return fn()
}
