package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lens/internal/domain"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want domain.Match
	}{
		{"a.txt:3:1:foo", domain.Match{Path: "a.txt", Line: 3, Column: 1, Text: "foo"}},
		{"dir/b.go:12:8:x := map[string]int{\"a\": 1}", domain.Match{Path: "dir/b.go", Line: 12, Column: 8, Text: "x := map[string]int{\"a\": 1}"}},
		{"c.txt:1:1:", domain.Match{Path: "c.txt", Line: 1, Column: 1, Text: ""}},
		{"d.txt:2:4:crlf\r", domain.Match{Path: "d.txt", Line: 2, Column: 4, Text: "crlf"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLineMalformed(t *testing.T) {
	lines := []string{
		"",
		"no colons at all",
		"a.txt:3:1",
		":3:1:empty path",
		"a.txt:three:1:text",
		"a.txt:3:one:text",
		"a.txt:0:1:zero line",
		"a.txt:3:-1:negative column",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, err := ParseLine(line)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedLine))

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, line, parseErr.Line)
		})
	}
}
