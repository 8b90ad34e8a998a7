package types

// Query editing actions
type InsertTextAction struct {
	Runes []rune
}

func (a InsertTextAction) Type() string { return "insert_text" }

type DeleteBackwardAction struct{}

func (a DeleteBackwardAction) Type() string { return "delete_backward" }

// DeleteCharAction deletes the rune under the cursor (vi x)
type DeleteCharAction struct{}

func (a DeleteCharAction) Type() string { return "delete_char" }

// DeleteToEndAction deletes from the cursor to the end of the query (vi D)
type DeleteToEndAction struct{}

func (a DeleteToEndAction) Type() string { return "delete_to_end" }

type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

// Cursor directions
const (
	CursorLeft    = "left"
	CursorRight   = "right"   // stops on the last rune
	CursorForward = "forward" // may move past the last rune
	CursorStart   = "start"
	CursorEnd     = "end"
)

type MoveCursorAction struct {
	Direction string
}

func (a MoveCursorAction) Type() string { return "move_cursor" }

// Scroll directions
const (
	ScrollUp     = "up"
	ScrollDown   = "down"
	ScrollTop    = "top"
	ScrollBottom = "bottom"
)

type ScrollResultsAction struct {
	Direction string
}

func (a ScrollResultsAction) Type() string { return "scroll_results" }

type ScrollOptionsAction struct {
	Direction string
}

func (a ScrollOptionsAction) Type() string { return "scroll_options" }

// ToggleOptionAction flips the option under the options cursor
type ToggleOptionAction struct{}

func (a ToggleOptionAction) Type() string { return "toggle_option" }

// Mode and window transitions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

type ChangeWindowAction struct {
	Window Window
}

func (a ChangeWindowAction) Type() string { return "change_window" }

// Command line actions
type AppendCommandAction struct {
	Runes []rune
}

func (a AppendCommandAction) Type() string { return "append_command" }

type PopCommandAction struct{}

func (a PopCommandAction) Type() string { return "pop_command" }

// ResetCommandAction starts a fresh ":" command line
type ResetCommandAction struct{}

func (a ResetCommandAction) Type() string { return "reset_command" }

type ClearCommandAction struct{}

func (a ClearCommandAction) Type() string { return "clear_command" }

type ExecuteCommandAction struct {
	Command string
}

func (a ExecuteCommandAction) Type() string { return "execute_command" }

// Pending vi sequence actions
type SetViCommandAction struct {
	Command string
}

func (a SetViCommandAction) Type() string { return "set_vi_command" }

type ClearViCommandAction struct{}

func (a ClearViCommandAction) Type() string { return "clear_vi_command" }

// Actions on the current match
type OpenEditorAction struct{}

func (a OpenEditorAction) Type() string { return "open_editor" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type YankAction struct{}

func (a YankAction) Type() string { return "yank" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
