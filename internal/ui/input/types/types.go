package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents the vi input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
)

// String returns the mode name used in the status line and session file
func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	default:
		return "normal"
	}
}

// ParseMode parses a mode name written by String
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "normal":
		return ModeNormal, true
	case "insert":
		return ModeInsert, true
	}
	return ModeNormal, false
}

// Window represents the focused pane
type Window int

const (
	WindowSearch Window = iota
	WindowOptions
	WindowCommand
)

// String returns the window name used in the session file
func (w Window) String() string {
	switch w {
	case WindowOptions:
		return "options"
	case WindowCommand:
		return "command"
	default:
		return "search"
	}
}

// ParseWindow parses a window name written by String
func ParseWindow(s string) (Window, bool) {
	switch s {
	case "search":
		return WindowSearch, true
	case "options":
		return WindowOptions, true
	case "command":
		return WindowCommand, true
	}
	return WindowSearch, false
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	Window() Window
	Mode() Mode
	QueryLen() int
	Cursor() int
	ResultCount() int
	HasCurrentMatch() bool
	ViCommand() string
	CommandBuffer() string
	OptionsScroll() int
}

// ModeHandler handles input for one window/mode pair
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
