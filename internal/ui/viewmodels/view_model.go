package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"lens/internal/domain"
	"lens/internal/ui/input/types"
	"lens/internal/ui/state"
	"lens/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state *state.AppState
	keys  types.KeyMap
	help  help.Model

	modeName      string
	statusIsError bool
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, keys types.KeyMap) *ViewModel {
	return &ViewModel{
		state: appState,
		keys:  keys,
		help:  help.New(),
	}
}

// SetModeName sets the display name of the focused input handler
func (vm *ViewModel) SetModeName(name string) {
	vm.modeName = name
}

// SetStatusIsError marks the status message as an error
func (vm *ViewModel) SetStatusIsError(isError bool) {
	vm.statusIsError = isError
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	s := vm.state

	var previewPath string
	if match, ok := s.Search.CurrentMatch(); ok {
		previewPath = match.Path
	}

	options := make([]views.OptionItem, domain.OptionCount)
	for i := range options {
		options[i] = views.OptionItem{
			Label:   domain.OptionLabels[i],
			Enabled: s.Options.Flags.Enabled(i),
		}
	}

	return views.ViewState{
		Width:           s.Width,
		Height:          s.Height,
		Window:          s.Window,
		Mode:            s.Mode,
		ModeName:        vm.modeName,
		ViCommand:       s.ViCommand,
		Query:           s.Search.Query,
		Cursor:          s.Search.Cursor,
		Results:         s.Search.Results,
		Scroll:          s.Search.Scroll,
		PreviewPath:     previewPath,
		Preview:         s.Search.Preview,
		HighlightedLine: s.Search.HighlightedLine,
		Options:         options,
		OptionsScroll:   s.Options.Scroll,
		CommandLine:     s.Command.String(),
		CommandCursor:   s.Command.Cursor,
		StatusMessage:   s.StatusMessage,
		StatusIsError:   vm.statusIsError,
		HelpModel:       vm.help,
		HelpKeys:        vm.keys.HelpFor(s.Window, s.Mode),
	}
}
