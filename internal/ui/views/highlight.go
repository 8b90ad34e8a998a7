package views

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/lipgloss"
)

// maxHighlightCache bounds the number of cached previews
const maxHighlightCache = 64

// Highlighter syntax-highlights preview text by file name
type Highlighter struct {
	style *chroma.Style
	cache map[uint64][]string
}

// NewHighlighter creates a highlighter using a chroma style name.
// Unknown names fall back to chroma's default.
func NewHighlighter(theme string) *Highlighter {
	style := styles.Get(theme)
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{
		style: style,
		cache: make(map[uint64][]string),
	}
}

// Lines returns text split into lines, each rendered with ANSI colors for
// the language of path. Tabs are expanded to four spaces; otherwise the
// line content is kept. Text with no matching lexer comes back plain.
func (h *Highlighter) Lines(path, text string) []string {
	key := cacheKey(path, text)
	if cached, ok := h.cache[key]; ok {
		return cached
	}

	lines := h.highlight(path, text)

	if len(h.cache) >= maxHighlightCache {
		h.cache = make(map[uint64][]string)
	}
	h.cache[key] = lines
	return lines
}

func (h *Highlighter) highlight(path, text string) []string {
	// lipgloss renders tabs as spaces; expand first so both paths agree
	text = expandTabs(text)
	plain := strings.Split(text, "\n")

	lexer := lexers.Match(path)
	if lexer == nil {
		return plain
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, text)
	if err != nil {
		return plain
	}

	lines := make([]string, 0, len(plain))
	var current strings.Builder
	for _, token := range iterator.Tokens() {
		style := h.tokenStyle(token.Type)
		// Tokens may span lines; style each line's piece separately
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, current.String())
				current.Reset()
			}
			if part != "" {
				current.WriteString(style.Render(part))
			}
		}
	}
	lines = append(lines, current.String())

	// Lexers may add a trailing newline
	if len(lines) > len(plain) {
		lines = lines[:len(plain)]
	}
	return lines
}

// tokenStyle converts a chroma token type to a lipgloss style
func (h *Highlighter) tokenStyle(tokenType chroma.TokenType) lipgloss.Style {
	entry := h.style.Get(tokenType)
	style := lipgloss.NewStyle()

	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style
}

func cacheKey(path, text string) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(path)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(text)
	return h.Sum64()
}
