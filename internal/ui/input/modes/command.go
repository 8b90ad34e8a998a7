package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lens/internal/ui/input/types"
)

// CommandMode edits and runs the ":" command line
type CommandMode struct {
	keys types.KeyMap
}

func NewCommandMode(keys types.KeyMap) *CommandMode {
	return &CommandMode{keys: keys}
}

func (m *CommandMode) Name() string {
	return "command"
}

// Enter starts a fresh ":" command line
func (m *CommandMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.ResetCommandAction{}}
}

// Exit discards the command line
func (m *CommandMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.ClearCommandAction{}}
}

func (m *CommandMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return []types.Action{types.ChangeWindowAction{Window: types.WindowSearch}}, true

	case key.Matches(msg, m.keys.Execute):
		// Captured before the exit hook clears the buffer
		return []types.Action{
			types.ChangeWindowAction{Window: types.WindowSearch},
			types.ExecuteCommandAction{Command: ctx.CommandBuffer()},
		}, true

	case key.Matches(msg, m.keys.Backspace):
		if len([]rune(ctx.CommandBuffer())) <= 1 {
			return []types.Action{types.ChangeWindowAction{Window: types.WindowSearch}}, true
		}
		return []types.Action{types.PopCommandAction{}}, true
	}

	if runes := typedRunes(msg); len(runes) > 0 {
		return []types.Action{types.AppendCommandAction{Runes: runes}}, true
	}

	return nil, false
}
