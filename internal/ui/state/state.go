package state

import (
	"lens/internal/domain"
	"lens/internal/ui/input/types"
)

// AppState contains all the application state
type AppState struct {
	Search  SearchState
	Command CommandState
	Options OptionsState

	// ViCommand is the pending multi-key normal mode sequence
	ViCommand string

	Mode   types.Mode
	Window types.Window

	Running       bool
	StatusMessage string // status bar message

	// Terminal size, display only
	Width  int
	Height int
}

// NewAppState creates the state of a fresh session
func NewAppState(opts domain.SearchOptions) *AppState {
	return &AppState{
		Options: OptionsState{Flags: opts},
		Mode:    types.ModeNormal,
		Window:  types.WindowSearch,
		Running: true,
	}
}

// SearchState is the query line, its results and the preview
type SearchState struct {
	Cursor          int
	Query           []rune
	Results         []domain.Match
	Preview         string
	HighlightedLine int // 1-based row of the match within Preview
	Scroll          int // index of the current result

	pendingScroll    int
	hasPendingScroll bool
}

// QueryString returns the query as a string
func (s *SearchState) QueryString() string {
	return string(s.Query)
}

func (s *SearchState) clampCursor() {
	s.Cursor = clamp(s.Cursor, 0, len(s.Query))
}

// InsertRunes inserts runes at the cursor and advances past them.
// The result scroll resets to the first result.
func (s *SearchState) InsertRunes(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	s.clampCursor()

	query := make([]rune, 0, len(s.Query)+len(runes))
	query = append(query, s.Query[:s.Cursor]...)
	query = append(query, runes...)
	query = append(query, s.Query[s.Cursor:]...)

	s.Query = query
	s.Cursor += len(runes)
	s.Scroll = 0
	s.queryChanged()
	return true
}

// DeleteBackward removes the rune before the cursor
func (s *SearchState) DeleteBackward() bool {
	s.clampCursor()
	if s.Cursor == 0 {
		return false
	}
	s.Query = append(s.Query[:s.Cursor-1:s.Cursor-1], s.Query[s.Cursor:]...)
	s.Cursor--
	s.queryChanged()
	return true
}

// DeleteChar removes the rune under the cursor, then steps the cursor
// left unless it is already at the start
func (s *SearchState) DeleteChar() bool {
	s.clampCursor()
	changed := false
	if len(s.Query) > 0 && s.Cursor < len(s.Query) {
		s.Query = append(s.Query[:s.Cursor:s.Cursor], s.Query[s.Cursor+1:]...)
		changed = true
		s.queryChanged()
	}
	if s.Cursor > 0 {
		s.Cursor--
	}
	return changed
}

// DeleteToEnd removes everything from the cursor on, then steps the
// cursor left unless it is already at the start
func (s *SearchState) DeleteToEnd() bool {
	if len(s.Query) == 0 {
		return false
	}
	s.clampCursor()
	changed := s.Cursor < len(s.Query)
	if changed {
		s.queryChanged()
	}
	s.Query = s.Query[:s.Cursor:s.Cursor]
	if s.Cursor > 0 {
		s.Cursor--
	}
	return changed
}

// ClearQuery empties the query
func (s *SearchState) ClearQuery() bool {
	changed := len(s.Query) > 0
	s.Query = nil
	s.Cursor = 0
	if changed {
		s.queryChanged()
	}
	return changed
}

// queryChanged drops a restored scroll; it only applies to the restored query
func (s *SearchState) queryChanged() {
	s.hasPendingScroll = false
}

// MoveCursor moves the cursor in one of the types.Cursor* directions
func (s *SearchState) MoveCursor(direction string) {
	s.clampCursor()
	switch direction {
	case types.CursorLeft:
		if s.Cursor > 0 {
			s.Cursor--
		}
	case types.CursorRight:
		if s.Cursor < len(s.Query)-1 {
			s.Cursor++
		}
	case types.CursorForward:
		if s.Cursor < len(s.Query) {
			s.Cursor++
		}
	case types.CursorStart:
		s.Cursor = 0
	case types.CursorEnd:
		s.Cursor = len(s.Query)
	}
}

// ScrollResults moves the result scroll, wrapping at either end
func (s *SearchState) ScrollResults(direction string) {
	n := len(s.Results)
	if n == 0 {
		s.Scroll = 0
		return
	}
	switch direction {
	case types.ScrollDown:
		s.Scroll = wrap(s.Scroll+1, n)
	case types.ScrollUp:
		s.Scroll = wrap(s.Scroll-1, n)
	case types.ScrollTop:
		s.Scroll = 0
	case types.ScrollBottom:
		s.Scroll = n - 1
	}
}

// SetResults replaces the results. A scroll past the new end goes back to
// the first result; a pending restored scroll is applied once.
func (s *SearchState) SetResults(results []domain.Match) {
	s.Results = results
	if s.hasPendingScroll {
		s.Scroll = s.pendingScroll
		s.hasPendingScroll = false
	}
	if s.Scroll < 0 || s.Scroll >= max(1, len(results)) {
		s.Scroll = 0
	}
}

// SetPendingScroll holds a restored scroll until results arrive
func (s *SearchState) SetPendingScroll(scroll int) {
	s.pendingScroll = scroll
	s.hasPendingScroll = true
}

// PendingScroll returns the held scroll, if any
func (s *SearchState) PendingScroll() (int, bool) {
	return s.pendingScroll, s.hasPendingScroll
}

// CurrentMatch returns the scrolled-to result
func (s *SearchState) CurrentMatch() (domain.Match, bool) {
	if s.Scroll < 0 || s.Scroll >= len(s.Results) {
		return domain.Match{}, false
	}
	return s.Results[s.Scroll], true
}

// SetPreview sets the preview text and the highlighted row
func (s *SearchState) SetPreview(text string, highlighted int) {
	s.Preview = text
	s.HighlightedLine = highlighted
}

// ClearPreview empties the preview
func (s *SearchState) ClearPreview() {
	s.SetPreview("", 0)
}

// CommandState is the ":" command line
type CommandState struct {
	Cursor int
	Query  []rune
}

// String returns the command line
func (c *CommandState) String() string {
	return string(c.Query)
}

// Reset starts a fresh command line holding ":"
func (c *CommandState) Reset() {
	c.Query = []rune{':'}
	c.Cursor = 1
}

// Clear empties the command line
func (c *CommandState) Clear() {
	c.Query = nil
	c.Cursor = 0
}

// Append adds runes at the end of the command line
func (c *CommandState) Append(runes []rune) {
	c.Query = append(c.Query, runes...)
	c.Cursor = len(c.Query)
}

// Pop removes the last rune, never the leading ':'
func (c *CommandState) Pop() bool {
	if len(c.Query) <= 1 {
		return false
	}
	c.Query = c.Query[:len(c.Query)-1]
	c.Cursor = len(c.Query)
	return true
}

// OptionsState is the options list cursor and the option values
type OptionsState struct {
	Scroll int
	Flags  domain.SearchOptions
}

// ScrollOptions moves the options cursor, wrapping at either end
func (o *OptionsState) ScrollOptions(direction string) {
	switch direction {
	case types.ScrollDown:
		o.Scroll = wrap(o.Scroll+1, domain.OptionCount)
	case types.ScrollUp:
		o.Scroll = wrap(o.Scroll-1, domain.OptionCount)
	}
}

// Toggle flips the option under the cursor
func (o *OptionsState) Toggle() {
	o.Flags = o.Flags.Toggle(o.Scroll)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}
