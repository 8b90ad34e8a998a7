package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lens/internal/ui/input/modes"
	"lens/internal/ui/input/types"
)

// focus is the window/mode pair keys are dispatched on
type focus struct {
	window types.Window
	mode   types.Mode
}

// Handler dispatches keys to the handler for the focused window and mode.
// It keeps no state of its own; the focus is read from the context.
type Handler struct {
	keys    types.KeyMap
	insert  types.ModeHandler
	normal  types.ModeHandler
	options types.ModeHandler
	command types.ModeHandler
}

func New() *Handler {
	return NewWithKeys(types.Keys)
}

func NewWithKeys(keys types.KeyMap) *Handler {
	return &Handler{
		keys:    keys,
		insert:  modes.NewInsertMode(keys),
		normal:  modes.NewNormalMode(keys),
		options: modes.NewOptionsMode(keys),
		command: modes.NewCommandMode(keys),
	}
}

// HandlerFor returns the mode handler for a window and mode
func (h *Handler) HandlerFor(window types.Window, mode types.Mode) types.ModeHandler {
	switch window {
	case types.WindowOptions:
		return h.options
	case types.WindowCommand:
		return h.command
	}
	if mode == types.ModeInsert {
		return h.insert
	}
	return h.normal
}

// HandleKey returns the actions for msg. Window and mode changes are
// preceded by the leaving handler's exit actions and the entering
// handler's enter actions, in that order.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	if key.Matches(msg, h.keys.Quit) {
		return []types.Action{types.QuitAction{}}
	}

	current := focus{window: ctx.Window(), mode: ctx.Mode()}
	actions, consumed := h.HandlerFor(current.window, current.mode).HandleKey(msg, ctx)
	if !consumed {
		return nil
	}

	var allActions []types.Action
	for _, action := range actions {
		next := current
		switch a := action.(type) {
		case types.ChangeModeAction:
			next.mode = a.Mode
		case types.ChangeWindowAction:
			next.window = a.Window
		default:
			allActions = append(allActions, action)
			continue
		}

		from := h.HandlerFor(current.window, current.mode)
		to := h.HandlerFor(next.window, next.mode)
		if from != to {
			allActions = append(allActions, from.Exit(ctx)...)
		}
		allActions = append(allActions, action)
		if from != to {
			allActions = append(allActions, to.Enter(ctx)...)
		}
		current = next
	}

	return allActions
}

// ModeName returns the display name of the focused handler
func (h *Handler) ModeName(ctx types.Context) string {
	return h.HandlerFor(ctx.Window(), ctx.Mode()).Name()
}
