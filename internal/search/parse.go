package search

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"lens/internal/domain"
)

// ErrMalformedLine is wrapped by every ParseError
var ErrMalformedLine = errors.New("malformed search output line")

// ParseError describes a line of search output that couldn't be parsed
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %q", ErrMalformedLine, e.Reason, e.Line)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedLine
}

// ParseLine parses "path:line:column:text". Only the first three colons
// separate fields; the text keeps any further colons.
func ParseLine(line string) (domain.Match, error) {
	line = strings.TrimSuffix(line, "\r")

	fields := strings.SplitN(line, ":", 4)
	if len(fields) < 4 {
		return domain.Match{}, &ParseError{Line: line, Reason: "expected path:line:column:text"}
	}
	if fields[0] == "" {
		return domain.Match{}, &ParseError{Line: line, Reason: "empty path"}
	}

	lineNo, err := strconv.Atoi(fields[1])
	if err != nil || lineNo < 1 {
		return domain.Match{}, &ParseError{Line: line, Reason: "invalid line number"}
	}

	column, err := strconv.Atoi(fields[2])
	if err != nil || column < 1 {
		return domain.Match{}, &ParseError{Line: line, Reason: "invalid column"}
	}

	return domain.Match{
		Path:   fields[0],
		Line:   lineNo,
		Column: column,
		Text:   fields[3],
	}, nil
}
