package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"lens/internal/session"
	"lens/internal/ui/state"
)

// Command represents an executable ":" command
type Command interface {
	Execute() (tea.Cmd, error)
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
	Store session.Store
}

func (c *CommandContext) quit() tea.Cmd {
	c.State.Running = false
	return tea.Quit
}

// QuitCommand quits without touching the session (:q)
type QuitCommand struct {
	ctx *CommandContext
}

// NewQuitCommand creates a new quit command
func NewQuitCommand(ctx *CommandContext) *QuitCommand {
	return &QuitCommand{ctx: ctx}
}

// Execute performs the quit
func (c *QuitCommand) Execute() (tea.Cmd, error) {
	return c.ctx.quit(), nil
}

// WriteCommand saves the session (:w)
type WriteCommand struct {
	ctx *CommandContext
}

// NewWriteCommand creates a new write command
func NewWriteCommand(ctx *CommandContext) *WriteCommand {
	return &WriteCommand{ctx: ctx}
}

// Execute saves a snapshot of the current state
func (c *WriteCommand) Execute() (tea.Cmd, error) {
	if err := c.ctx.Store.Save(c.ctx.State.Snapshot()); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	c.ctx.State.StatusMessage = "session saved"
	return nil, nil
}

// WriteQuitCommand saves the session then quits (:wq). A failed save
// doesn't quit.
type WriteQuitCommand struct {
	ctx *CommandContext
}

// NewWriteQuitCommand creates a new write-quit command
func NewWriteQuitCommand(ctx *CommandContext) *WriteQuitCommand {
	return &WriteQuitCommand{ctx: ctx}
}

// Execute saves then quits
func (c *WriteQuitCommand) Execute() (tea.Cmd, error) {
	if _, err := NewWriteCommand(c.ctx).Execute(); err != nil {
		return nil, err
	}
	return c.ctx.quit(), nil
}

// ForceQuitCommand deletes the session then quits (:q!)
type ForceQuitCommand struct {
	ctx *CommandContext
}

// NewForceQuitCommand creates a new force-quit command
func NewForceQuitCommand(ctx *CommandContext) *ForceQuitCommand {
	return &ForceQuitCommand{ctx: ctx}
}

// Execute deletes the session and quits even when the delete fails
func (c *ForceQuitCommand) Execute() (tea.Cmd, error) {
	err := c.ctx.Store.Delete()
	if err != nil {
		err = fmt.Errorf("failed to delete session: %w", err)
	}
	return c.ctx.quit(), err
}
