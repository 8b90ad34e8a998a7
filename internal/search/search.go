// Package search runs ripgrep over a directory tree and parses its matches.
package search

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"lens/internal/domain"
)

// DefaultBinary is the search tool looked up on PATH
const DefaultBinary = "rg"

// maxLineSize bounds a single line of search output
const maxLineSize = 1024 * 1024

// ErrSearchFailed is returned when the search process can't be spawned or exits abnormally
var ErrSearchFailed = errors.New("search failed")

// Runner runs a program in dir and returns its standard output
type Runner interface {
	Run(dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs programs with os/exec
type ExecRunner struct{}

// Run implements Runner
func (ExecRunner) Run(dir, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd.Output()
}

// Searcher invokes the search tool for a query
type Searcher struct {
	binary string
	root   string
	runner Runner
	logger *slog.Logger
}

// NewSearcher creates a searcher that runs binary in root.
// A nil runner shells out; a nil logger discards.
func NewSearcher(binary, root string, runner Runner, logger *slog.Logger) *Searcher {
	if binary == "" {
		binary = DefaultBinary
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Searcher{
		binary: binary,
		root:   root,
		runner: runner,
		logger: logger,
	}
}

// Search runs the query and returns its matches in output order.
// An empty query returns no matches without running anything.
// When ripgrep exits abnormally after printing matches, such as for an
// unreadable file, those matches are returned along with the error.
func (s *Searcher) Search(query string, opts domain.SearchOptions) ([]domain.Match, error) {
	if query == "" {
		return nil, nil
	}

	args := BuildArgs(query, opts)
	s.logger.Debug("running search", "binary", s.binary, "args", args, "dir", s.root)

	output, err := s.runner.Run(s.root, s.binary, args...)
	if err != nil {
		// ripgrep exits 1 when nothing matched
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		matches := s.parseOutput(output)
		s.logger.Warn("search exited abnormally", "binary", s.binary, "err", err, "matches", len(matches))
		return matches, fmt.Errorf("%w: %s: %v", ErrSearchFailed, s.binary, err)
	}

	return s.parseOutput(output), nil
}

// BuildArgs constructs the ripgrep arguments for a query
func BuildArgs(query string, opts domain.SearchOptions) []string {
	args := []string{
		"--color=never",
		"--no-heading",
		"--with-filename",
		"--line-number",
		"--column",
	}

	if opts.CaseSensitive {
		args = append(args, "--case-sensitive")
	} else {
		args = append(args, "--smart-case")
	}

	if opts.Hidden {
		args = append(args, "--hidden")
	}

	if opts.WholeWord {
		args = append(args, "--word-regexp")
	}

	if opts.FixedStrings {
		args = append(args, "--fixed-strings")
	}

	// Queries starting with '-' are still patterns
	args = append(args, "--", query)

	return args
}

// parseOutput parses every line of output, dropping lines that don't parse
func (s *Searcher) parseOutput(output []byte) []domain.Match {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var matches []domain.Match
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		match, err := ParseLine(line)
		if err != nil {
			s.logger.Debug("dropping search output line", "err", err)
			continue
		}
		matches = append(matches, match)
	}

	if err := scanner.Err(); err != nil {
		s.logger.Warn("search output truncated", "err", err)
	}

	return matches
}
