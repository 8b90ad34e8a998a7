// Package preview windows file content around a search match.
package preview

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"lens/internal/domain"
)

const (
	// contextBefore is how many lines before the match open the window
	contextBefore = 25
	// windowSize is the number of lines in a preview window
	windowSize = 50
	// maxLineSize bounds a single line read from a previewed file
	maxLineSize = 1024 * 1024
)

// Preview is a window of file content around a match
type Preview struct {
	Text string
	// HighlightedLine is the 1-based row of the matched line within Text
	HighlightedLine int
	// Start and End are the 0-based line bounds of the window, End exclusive
	Start int
	End   int
}

// Provider builds previews from files under a search root
type Provider struct {
	fs     afero.Fs
	root   string
	logger *slog.Logger
}

// NewProvider creates a provider reading from the OS file system
func NewProvider(root string, logger *slog.Logger) *Provider {
	return NewProviderWithFs(afero.NewOsFs(), root, logger)
}

// NewProviderWithFs creates a provider reading from fs
func NewProviderWithFs(fs afero.Fs, root string, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Provider{fs: fs, root: root, logger: logger}
}

// Window returns the 0-based line bounds shown for a 1-based match line
func Window(line int) (start, end int) {
	start = max(0, line-contextBefore)
	return start, start + windowSize
}

// Build returns the preview for a match. A file that can't be opened
// yields an empty preview and no error.
func (p *Provider) Build(match domain.Match) (Preview, error) {
	start, end := Window(match.Line)
	result := Preview{
		HighlightedLine: match.Line - start,
		Start:           start,
		End:             end,
	}

	path := p.resolve(match.Path)
	file, err := p.fs.Open(path)
	if err != nil {
		p.logger.Debug("preview file unavailable", "path", path, "err", err)
		return Preview{}, nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for index := 0; index < end && scanner.Scan(); index++ {
		if index >= start {
			lines = append(lines, scanner.Text())
		}
	}
	if err := scanner.Err(); err != nil {
		return Preview{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	result.Text = strings.Join(lines, "\n")
	return result, nil
}

func (p *Provider) resolve(path string) string {
	if filepath.IsAbs(path) || p.root == "" {
		return path
	}
	return filepath.Join(p.root, path)
}
