package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	inputtypes "lens/internal/ui/input/types"
)

// helpSections names the groups returned by KeyMap.FullHelp, in order
var helpSections = []string{
	"Insert mode",
	"Editing the query",
	"Results",
	"Actions",
	"Options window",
}

// renderHelpContent renders the key help page shown in the pager
func renderHelpContent(keys inputtypes.KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	groups := keys.FullHelp()

	keyWidth := 0
	for _, group := range groups {
		for _, b := range group {
			keyWidth = max(keyWidth, runewidth.StringWidth(b.Help().Key))
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("lens help"))
	help.WriteString("\n")

	for i, group := range groups {
		name := fmt.Sprintf("Group %d", i+1)
		if i < len(helpSections) {
			name = helpSections[i]
		}
		help.WriteString("\n")
		help.WriteString(sectionStyle.Render(name))
		help.WriteString("\n")
		for _, b := range group {
			help.WriteString(helpLine(b, keyWidth, keyStyle, descStyle))
		}
	}

	help.WriteString("\n")
	help.WriteString(sectionStyle.Render("Command line"))
	help.WriteString("\n")
	for _, c := range [][2]string{
		{":w", "save the session"},
		{":q", "quit"},
		{":wq", "save the session and quit"},
		{":q!", "delete the saved session and quit"},
	} {
		help.WriteString(fmt.Sprintf("  %s  %s\n",
			keyStyle.Render(runewidth.FillRight(c[0], keyWidth)), descStyle.Render(c[1])))
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  dd clears the query, yy copies path:line:column of the current match"))
	help.WriteString("\n")

	return help.String()
}

func helpLine(b key.Binding, width int, keyStyle, descStyle lipgloss.Style) string {
	h := b.Help()
	return fmt.Sprintf("  %s  %s\n", keyStyle.Render(runewidth.FillRight(h.Key, width)), descStyle.Render(h.Desc))
}
