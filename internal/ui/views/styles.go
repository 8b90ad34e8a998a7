package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Pane        lipgloss.Style
	PaneFocused lipgloss.Style
	Title       lipgloss.Style
	TitleKey    lipgloss.Style
	Prompt      lipgloss.Style
	Query       lipgloss.Style
	Cursor      lipgloss.Style
	Selected    lipgloss.Style
	Path        lipgloss.Style
	Position    lipgloss.Style
	Dim         lipgloss.Style
	Matched     lipgloss.Style
	OptionOn    lipgloss.Style
	ModeNormal  lipgloss.Style
	ModeInsert  lipgloss.Style
	ModeOther   lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Pending     lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("14")), // cyan
		PaneFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")), // blue
		Title:       lipgloss.NewStyle().Bold(true),
		TitleKey:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Query:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Cursor:      lipgloss.NewStyle().Reverse(true).Foreground(lipgloss.Color("12")),
		Selected:    lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("238")),
		Path:        lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Position:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Matched:     lipgloss.NewStyle().Reverse(true),
		OptionOn:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		ModeNormal:  lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(lipgloss.Color("33")).Foreground(lipgloss.Color("0")),
		ModeInsert:  lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(lipgloss.Color("78")).Foreground(lipgloss.Color("0")),
		ModeOther:   lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(lipgloss.Color("214")).Foreground(lipgloss.Color("0")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:        lipgloss.NewStyle().Faint(true),
	}
}

// PaneStyle returns the border style for a pane
func (s *Styles) PaneStyle(focused bool) lipgloss.Style {
	if focused {
		return s.PaneFocused
	}
	return s.Pane
}
