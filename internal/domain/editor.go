package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// EditorFamily groups editors that take the same start-position argument
type EditorFamily int

const (
	EditorOther EditorFamily = iota
	EditorVim
	EditorEmacs
)

// EditorFamilyOf classifies an editor program by its base name
func EditorFamilyOf(program string) EditorFamily {
	base := strings.TrimSuffix(filepath.Base(program), ".exe")
	switch base {
	case "vim", "nvim":
		return EditorVim
	case "emacs", "emacsclient":
		return EditorEmacs
	}
	return EditorOther
}

// PositionArg returns the argument that opens an editor of this family at
// line and column, or "" when the family has none.
func (f EditorFamily) PositionArg(line, column int) string {
	switch f {
	case EditorVim:
		return fmt.Sprintf("+normal %dG%d|", line, column)
	case EditorEmacs:
		return fmt.Sprintf("+%d:%d", line, column)
	}
	return ""
}
