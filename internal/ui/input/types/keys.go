package types

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every key binding, grouped by the window that uses it
type KeyMap struct {
	Quit key.Binding

	// Search window, insert mode
	ExitInsert key.Binding
	Backspace  key.Binding

	// Search window, normal mode
	Insert      key.Binding
	Append      key.Binding
	InsertStart key.Binding
	AppendEnd   key.Binding
	Left        key.Binding
	Right       key.Binding
	DeleteChar  key.Binding
	DeleteToEnd key.Binding
	Down        key.Binding
	Up          key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Options     key.Binding
	Command     key.Binding
	Open        key.Binding
	View        key.Binding
	Help        key.Binding
	Cancel      key.Binding

	// Options window
	OptionDown   key.Binding
	OptionUp     key.Binding
	OptionToggle key.Binding
	OptionBack   key.Binding

	// Command window
	Execute key.Binding
}

// DefaultKeyMap returns the built-in bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		ExitInsert: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal mode")),
		Backspace:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),

		Insert:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
		Append:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "append")),
		InsertStart: key.NewBinding(key.WithKeys("I"), key.WithHelp("I", "insert at start")),
		AppendEnd:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "append at end")),
		Left:        key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "cursor left")),
		Right:       key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "cursor right")),
		DeleteChar:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete char")),
		DeleteToEnd: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete to end")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next result")),
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous result")),
		Top:         key.NewBinding(key.WithKeys("g"), key.WithHelp("gg", "first result")),
		Bottom:      key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last result")),
		Options:     key.NewBinding(key.WithKeys("o", "O"), key.WithHelp("o", "options")),
		Command:     key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Open:        key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter/e", "open in editor")),
		View:        key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view file")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		OptionDown:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next option")),
		OptionUp:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous option")),
		OptionToggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "toggle")),
		OptionBack:   key.NewBinding(key.WithKeys("s", "S", "esc"), key.WithHelp("s/esc", "back to search")),

		Execute: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	}
}

// Keys is the active key map
var Keys = DefaultKeyMap()

// bindingHelp adapts binding groups to help.KeyMap
type bindingHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (b bindingHelp) ShortHelp() []key.Binding  { return b.short }
func (b bindingHelp) FullHelp() [][]key.Binding { return b.full }

// HelpFor returns the bindings shown in the footer for a window and mode
func (k KeyMap) HelpFor(w Window, m Mode) help.KeyMap {
	switch w {
	case WindowOptions:
		return bindingHelp{short: []key.Binding{k.OptionDown, k.OptionUp, k.OptionToggle, k.OptionBack}}
	case WindowCommand:
		return bindingHelp{short: []key.Binding{k.Execute, k.Cancel}}
	}

	if m == ModeInsert {
		return bindingHelp{short: []key.Binding{k.ExitInsert, k.Quit}}
	}
	return bindingHelp{
		short: []key.Binding{k.Insert, k.Down, k.Up, k.Open, k.Options, k.Command, k.Help},
		full:  k.FullHelp(),
	}
}

// FullHelp returns every binding grouped for the help page
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Insert, k.Append, k.InsertStart, k.AppendEnd, k.ExitInsert, k.Backspace},
		{k.Left, k.Right, k.DeleteChar, k.DeleteToEnd},
		{k.Down, k.Up, k.Top, k.Bottom},
		{k.Open, k.View, k.Options, k.Command, k.Help, k.Quit},
		{k.OptionDown, k.OptionUp, k.OptionToggle, k.OptionBack},
	}
}
