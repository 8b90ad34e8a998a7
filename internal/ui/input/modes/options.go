package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lens/internal/ui/input/types"
)

// OptionsMode navigates and toggles the search options list
type OptionsMode struct {
	keys types.KeyMap
}

func NewOptionsMode(keys types.KeyMap) *OptionsMode {
	return &OptionsMode{keys: keys}
}

func (m *OptionsMode) Name() string {
	return "options"
}

func (m *OptionsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *OptionsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// HandleKey processes key messages for option selection
func (m *OptionsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.OptionDown):
		return []types.Action{types.ScrollOptionsAction{Direction: types.ScrollDown}}, true

	case key.Matches(msg, m.keys.OptionUp):
		return []types.Action{types.ScrollOptionsAction{Direction: types.ScrollUp}}, true

	case key.Matches(msg, m.keys.OptionToggle):
		return []types.Action{types.ToggleOptionAction{}}, true

	case key.Matches(msg, m.keys.OptionBack):
		return []types.Action{types.ChangeWindowAction{Window: types.WindowSearch}}, true
	}

	return nil, false
}
