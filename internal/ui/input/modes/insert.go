package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lens/internal/ui/input/types"
)

// InsertMode edits the search query
type InsertMode struct {
	keys types.KeyMap
}

func NewInsertMode(keys types.KeyMap) *InsertMode {
	return &InsertMode{keys: keys}
}

func (m *InsertMode) Name() string {
	return "insert"
}

func (m *InsertMode) Enter(ctx types.Context) []types.Action {
	return nil
}

// Exit steps the cursor back onto the last inserted rune, as vi does
func (m *InsertMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.MoveCursorAction{Direction: types.CursorLeft}}
}

func (m *InsertMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ExitInsert):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case key.Matches(msg, m.keys.Backspace):
		return []types.Action{types.DeleteBackwardAction{}}, true
	}

	if runes := typedRunes(msg); len(runes) > 0 {
		return []types.Action{types.InsertTextAction{Runes: runes}}, true
	}

	return nil, false
}

// typedRunes returns the printable runes carried by a key press or paste
func typedRunes(msg tea.KeyMsg) []rune {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		return msg.Runes
	case tea.KeySpace:
		return []rune{' '}
	}
	return nil
}
