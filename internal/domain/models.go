package domain

import "fmt"

// Match represents one hit reported by the search tool
type Match struct {
	Path   string
	Line   int // 1-based
	Column int // 1-based
	Text   string
}

// Location returns the match as path:line:column
func (m Match) Location() string {
	return fmt.Sprintf("%s:%d:%d", m.Path, m.Line, m.Column)
}

// SearchOptions are the user-toggleable search flags
type SearchOptions struct {
	Hidden        bool // search hidden files and directories
	CaseSensitive bool // replaces smart case
	WholeWord     bool
	FixedStrings  bool // treat the query as a literal
}

// DefaultSearchOptions returns the options used when nothing was toggled
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{Hidden: true}
}

// Option indices in the options window
const (
	OptionHidden = iota
	OptionCaseSensitive
	OptionWholeWord
	OptionFixedStrings
	OptionCount
)

// OptionLabels are the labels shown in the options window, indexed by option
var OptionLabels = [OptionCount]string{
	OptionHidden:        "hidden files",
	OptionCaseSensitive: "case sensitive",
	OptionWholeWord:     "whole word",
	OptionFixedStrings:  "fixed strings",
}

// Enabled reports whether the option at index is on
func (o SearchOptions) Enabled(index int) bool {
	switch index {
	case OptionHidden:
		return o.Hidden
	case OptionCaseSensitive:
		return o.CaseSensitive
	case OptionWholeWord:
		return o.WholeWord
	case OptionFixedStrings:
		return o.FixedStrings
	}
	return false
}

// Toggle returns a copy with the option at index flipped
func (o SearchOptions) Toggle(index int) SearchOptions {
	switch index {
	case OptionHidden:
		o.Hidden = !o.Hidden
	case OptionCaseSensitive:
		o.CaseSensitive = !o.CaseSensitive
	case OptionWholeWord:
		o.WholeWord = !o.WholeWord
	case OptionFixedStrings:
		o.FixedStrings = !o.FixedStrings
	}
	return o
}
