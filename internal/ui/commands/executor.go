package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"lens/internal/session"
	"lens/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, store session.Store) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
			Store: store,
		},
	}
}

// Parse returns the command for a command line, matched verbatim.
// ok is false for unknown lines.
func (e *Executor) Parse(line string) (cmd Command, ok bool) {
	switch line {
	case ":q":
		return NewQuitCommand(e.ctx), true
	case ":w":
		return NewWriteCommand(e.ctx), true
	case ":wq":
		return NewWriteQuitCommand(e.ctx), true
	case ":q!":
		return NewForceQuitCommand(e.ctx), true
	}
	return nil, false
}

// Execute runs a command line. Unknown lines are ignored.
func (e *Executor) Execute(line string) (tea.Cmd, error) {
	cmd, ok := e.Parse(line)
	if !ok {
		return nil, nil
	}
	return cmd.Execute()
}
