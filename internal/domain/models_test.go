package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchLocation(t *testing.T) {
	m := Match{Path: "dir/a.txt", Line: 3, Column: 7, Text: "foo"}
	assert.Equal(t, "dir/a.txt:3:7", m.Location())
}

func TestSearchOptionsToggle(t *testing.T) {
	opts := DefaultSearchOptions()
	assert.True(t, opts.Enabled(OptionHidden))

	for i := 0; i < OptionCount; i++ {
		before := opts.Enabled(i)
		toggled := opts.Toggle(i)
		assert.Equal(t, !before, toggled.Enabled(i), "option %q", OptionLabels[i])
		// Toggle returns a copy
		assert.Equal(t, before, opts.Enabled(i))
	}

	assert.False(t, opts.Enabled(OptionCount))
}

func TestEditorFamily(t *testing.T) {
	tests := []struct {
		program string
		family  EditorFamily
		arg     string
	}{
		{"vim", EditorVim, "+normal 3G1|"},
		{"/usr/bin/nvim", EditorVim, "+normal 3G1|"},
		{"emacs", EditorEmacs, "+3:1"},
		{"emacsclient", EditorEmacs, "+3:1"},
		{"nano", EditorOther, ""},
		{"code", EditorOther, ""},
	}

	for _, tt := range tests {
		t.Run(tt.program, func(t *testing.T) {
			family := EditorFamilyOf(tt.program)
			assert.Equal(t, tt.family, family)
			assert.Equal(t, tt.arg, family.PositionArg(3, 1))
		})
	}
}
