package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lens/internal/ui/input/types"
)

// viSequences are the multi-key normal mode commands
var viSequences = map[string]func() types.Action{
	"dd": func() types.Action { return types.ClearQueryAction{} },
	"yy": func() types.Action { return types.YankAction{} },
}

// NormalMode handles the search window in normal mode
type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	actions, mapped := m.mappedKey(msg, ctx)
	if mapped {
		// A mapped key abandons any pending sequence
		if ctx.ViCommand() != "" {
			actions = append([]types.Action{types.ClearViCommandAction{}}, actions...)
		}
		return actions, true
	}

	if msg.Type == tea.KeyRunes && !msg.Alt {
		return m.pendingSequence(ctx.ViCommand() + string(msg.Runes)), true
	}

	return nil, false
}

// mappedKey returns the actions for single-key commands
func (m *NormalMode) mappedKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		// Clearing the pending buffer is all escape does here
		return nil, true

	case key.Matches(msg, m.keys.Insert):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeInsert}}, true

	case key.Matches(msg, m.keys.Append):
		return []types.Action{
			types.MoveCursorAction{Direction: types.CursorForward},
			types.ChangeModeAction{Mode: types.ModeInsert},
		}, true

	case key.Matches(msg, m.keys.InsertStart):
		return []types.Action{
			types.MoveCursorAction{Direction: types.CursorStart},
			types.ChangeModeAction{Mode: types.ModeInsert},
		}, true

	case key.Matches(msg, m.keys.AppendEnd):
		return []types.Action{
			types.MoveCursorAction{Direction: types.CursorEnd},
			types.ChangeModeAction{Mode: types.ModeInsert},
		}, true

	case key.Matches(msg, m.keys.Left):
		return []types.Action{types.MoveCursorAction{Direction: types.CursorLeft}}, true

	case key.Matches(msg, m.keys.Right):
		return []types.Action{types.MoveCursorAction{Direction: types.CursorRight}}, true

	case key.Matches(msg, m.keys.DeleteChar):
		return []types.Action{types.DeleteCharAction{}}, true

	case key.Matches(msg, m.keys.DeleteToEnd):
		return []types.Action{types.DeleteToEndAction{}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.ScrollResultsAction{Direction: types.ScrollDown}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.ScrollResultsAction{Direction: types.ScrollUp}}, true

	case key.Matches(msg, m.keys.Top):
		// g and gg both land on the first result
		return []types.Action{types.ScrollResultsAction{Direction: types.ScrollTop}}, true

	case key.Matches(msg, m.keys.Bottom):
		return []types.Action{types.ScrollResultsAction{Direction: types.ScrollBottom}}, true

	case key.Matches(msg, m.keys.Options):
		return []types.Action{types.ChangeWindowAction{Window: types.WindowOptions}}, true

	case key.Matches(msg, m.keys.Command):
		return []types.Action{types.ChangeWindowAction{Window: types.WindowCommand}}, true

	case key.Matches(msg, m.keys.Open):
		if ctx.HasCurrentMatch() {
			return []types.Action{types.OpenEditorAction{}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.View):
		if ctx.HasCurrentMatch() {
			return []types.Action{types.OpenPagerAction{}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	}

	return nil, false
}

// pendingSequence advances the vi command buffer to candidate
func (m *NormalMode) pendingSequence(candidate string) []types.Action {
	if action, ok := viSequences[candidate]; ok {
		return []types.Action{types.ClearViCommandAction{}, action()}
	}

	for seq := range viSequences {
		if strings.HasPrefix(seq, candidate) {
			return []types.Action{types.SetViCommandAction{Command: candidate}}
		}
	}

	return []types.Action{types.ClearViCommandAction{}}
}
