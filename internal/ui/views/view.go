package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"lens/internal/domain"
	"lens/internal/ui/input/types"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Window    types.Window
	Mode      types.Mode
	ModeName  string
	ViCommand string

	Query  []rune
	Cursor int

	Results []domain.Match
	Scroll  int

	PreviewPath     string
	Preview         string
	HighlightedLine int // 1-based row within Preview, 0 for none

	Options       []OptionItem
	OptionsScroll int

	CommandLine   string
	CommandCursor int

	StatusMessage string
	StatusIsError bool

	HelpModel help.Model
	HelpKeys  help.KeyMap
}

// OptionItem is one row of the options list
type OptionItem struct {
	Label   string
	Enabled bool
}

// Pane width percentages, left to right
const (
	optionsPercent = 15
	resultsPercent = 50
	searchHeight   = 3
	footerHeight   = 2
)

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	highlighter *Highlighter
}

// NewRenderer creates a new renderer highlighting previews with theme
func NewRenderer(theme string) *Renderer {
	return &Renderer{
		styles:      NewStyles(),
		highlighter: NewHighlighter(theme),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width, height := state.Width, state.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	bodyHeight := max(height-footerHeight, searchHeight+2)
	optionsWidth := width * optionsPercent / 100
	resultsWidth := width * resultsPercent / 100
	previewWidth := width - optionsWidth - resultsWidth

	options := r.renderOptions(state, optionsWidth, bodyHeight)
	search := r.renderSearch(state, resultsWidth)
	results := r.renderResults(state, resultsWidth, bodyHeight-searchHeight)
	middle := lipgloss.JoinVertical(lipgloss.Left, search, results)
	preview := r.renderPreview(state, previewWidth, bodyHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top, options, middle, preview)
	return lipgloss.JoinVertical(lipgloss.Left, body, r.renderStatusLine(state, width), r.renderHelp(state, width))
}

// pane draws a bordered box of outer size w x h holding lines
func (r *Renderer) pane(title string, lines []string, w, h int, focused bool) string {
	innerW, innerH := max(w-2, 0), max(h-2, 0)

	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, innerW, "")
	}

	box := r.styles.PaneStyle(focused).
		Width(innerW).
		Height(innerH).
		Render(strings.Join(lines, "\n"))

	return r.withTitle(box, title)
}

// withTitle writes title centered into the top border
func (r *Renderer) withTitle(box, title string) string {
	if title == "" {
		return box
	}
	lines := strings.Split(box, "\n")
	top := lines[0]
	boxWidth := ansi.StringWidth(top)
	titleWidth := ansi.StringWidth(title)
	if titleWidth+4 > boxWidth {
		return box
	}

	left := (boxWidth - titleWidth) / 2
	lines[0] = ansi.Truncate(top, left, "") + title + ansi.TruncateLeft(top, left+titleWidth, "")
	return strings.Join(lines, "\n")
}

// paneTitle renders a title whose first letter is the key that focuses it
func (r *Renderer) paneTitle(name string) string {
	if name == "" {
		return ""
	}
	return r.styles.TitleKey.Render(name[:1]) + r.styles.Title.Render(name[1:])
}

func (r *Renderer) renderOptions(state ViewState, w, h int) string {
	focused := state.Window == types.WindowOptions
	lines := make([]string, 0, len(state.Options))
	for i, option := range state.Options {
		mark := "[ ]"
		if option.Enabled {
			mark = r.styles.OptionOn.Render("[x]")
		}
		prefix := "  "
		label := option.Label
		if i == state.OptionsScroll {
			prefix = "> "
			label = r.styles.Title.Render(label)
		}
		lines = append(lines, prefix+mark+" "+label)
	}
	return r.pane(r.paneTitle("Options"), lines, w, h, focused)
}

func (r *Renderer) renderSearch(state ViewState, w int) string {
	focused := state.Window == types.WindowSearch
	line := r.styles.Prompt.Render(">") + " " + r.renderQuery(state.Query, state.Cursor, focused)
	return r.pane(r.paneTitle("Search"), []string{line}, w, searchHeight, focused)
}

// renderQuery draws the query with the cursor cell reversed
func (r *Renderer) renderQuery(query []rune, cursor int, showCursor bool) string {
	if !showCursor {
		return r.styles.Query.Render(string(query))
	}
	cursor = min(max(cursor, 0), len(query))

	var b strings.Builder
	b.WriteString(r.styles.Query.Render(string(query[:cursor])))
	if cursor < len(query) {
		b.WriteString(r.styles.Cursor.Render(string(query[cursor])))
		b.WriteString(r.styles.Query.Render(string(query[cursor+1:])))
	} else {
		b.WriteString(r.styles.Cursor.Render(" "))
	}
	return b.String()
}

func (r *Renderer) renderResults(state ViewState, w, h int) string {
	innerW, innerH := max(w-2, 0), max(h-2, 0)
	title := "Results"
	if n := len(state.Results); n > 0 {
		title = fmt.Sprintf("Results %d/%d", state.Scroll+1, n)
	}

	// Keep the scrolled-to result on screen
	offset := 0
	if innerH > 0 && state.Scroll >= innerH {
		offset = state.Scroll - innerH + 1
	}

	var lines []string
	for i := offset; i < len(state.Results) && len(lines) < innerH; i++ {
		lines = append(lines, r.renderResult(state.Results[i], i == state.Scroll, innerW))
	}
	return r.pane(r.styles.Title.Render(title), lines, w, h, false)
}

// renderResult draws one match as path:line:column:text
func (r *Renderer) renderResult(match domain.Match, selected bool, width int) string {
	prefix := "   "
	if selected {
		prefix = " > "
	}
	location := fmt.Sprintf("%s:%d:%d:", match.Path, match.Line, match.Column)
	text := strings.TrimSpace(strings.ReplaceAll(match.Text, "\t", " "))
	plain := runewidth.Truncate(prefix+location+text, width, "…")

	if selected {
		return r.styles.Selected.Render(runewidth.FillRight(plain, width))
	}

	// Color the location when it survived truncation
	if strings.HasPrefix(plain, prefix+location) {
		rest := strings.TrimPrefix(plain, prefix+location)
		return prefix + r.styles.Path.Render(match.Path) +
			r.styles.Position.Render(fmt.Sprintf(":%d:%d:", match.Line, match.Column)) + rest
	}
	return plain
}

func (r *Renderer) renderPreview(state ViewState, w, h int) string {
	innerW := max(w-2, 0)
	if state.Preview == "" {
		return r.pane(r.styles.Title.Render("Preview"), nil, w, h, false)
	}

	plain := strings.Split(state.Preview, "\n")
	colored := r.highlighter.Lines(state.PreviewPath, state.Preview)

	innerH := max(h-2, 0)
	// Scroll so the match row stays visible in short panes
	offset := 0
	if state.HighlightedLine > innerH && innerH > 0 {
		offset = state.HighlightedLine - innerH/2
	}

	var lines []string
	for i := offset; i < len(plain) && len(lines) < innerH; i++ {
		if i == state.HighlightedLine-1 {
			line := ansi.Truncate(expandTabs(plain[i]), innerW, "")
			lines = append(lines, r.styles.Matched.Render(line))
			continue
		}
		line := plain[i]
		if i < len(colored) {
			line = colored[i]
		}
		lines = append(lines, expandTabs(line))
	}

	title := r.styles.Title.Render("Preview")
	if state.PreviewPath != "" {
		title = r.styles.Title.Render(" " + runewidth.Truncate(state.PreviewPath, max(innerW-4, 1), "…") + " ")
	}
	return r.pane(title, lines, w, h, false)
}

func (r *Renderer) renderStatusLine(state ViewState, width int) string {
	var mode string
	switch {
	case state.Window != types.WindowSearch:
		mode = r.styles.ModeOther.Render(strings.ToUpper(state.ModeName))
	case state.Mode == types.ModeInsert:
		mode = r.styles.ModeInsert.Render("INSERT")
	default:
		mode = r.styles.ModeNormal.Render("NORMAL")
	}

	var middle string
	switch {
	case state.Window == types.WindowCommand:
		middle = r.renderQuery([]rune(state.CommandLine), state.CommandCursor, true)
	case state.StatusIsError:
		middle = r.styles.StatusError.Render(state.StatusMessage)
	default:
		middle = r.styles.Status.Render(state.StatusMessage)
	}

	right := ""
	if state.ViCommand != "" {
		right = r.styles.Pending.Render(state.ViCommand)
	}

	line := mode + " " + middle
	gap := width - ansi.StringWidth(line) - ansi.StringWidth(right)
	if gap > 0 {
		line += strings.Repeat(" ", gap) + right
	}
	return ansi.Truncate(line, width, "")
}

func (r *Renderer) renderHelp(state ViewState, width int) string {
	if state.HelpKeys == nil {
		return ""
	}
	h := state.HelpModel
	h.Width = width
	return h.View(state.HelpKeys)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
