package editor

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/noborus/ov/oviewer"
	"github.com/spf13/afero"
)

// ViewFunc displays content until the user quits
type ViewFunc func(r io.Reader) error

// Pager shows files and text in ov
type Pager struct {
	fs       afero.Fs
	root     string
	terminal Terminal
	view     ViewFunc
}

// NewPager creates a pager reading files under root from the OS file system
func NewPager(root string) *Pager {
	return NewPagerWithFs(afero.NewOsFs(), root, nil)
}

// NewPagerWithFs creates a pager over fs. A nil view runs ov.
func NewPagerWithFs(fs afero.Fs, root string, view ViewFunc) *Pager {
	if view == nil {
		view = runOviewer
	}
	return &Pager{fs: fs, root: root, view: view}
}

// SetTerminal sets the terminal released while the pager runs
func (p *Pager) SetTerminal(t Terminal) {
	p.terminal = t
}

// ShowFile pages the file at path, relative paths resolved against the root
func (p *Pager) ShowFile(path string) error {
	if !filepath.IsAbs(path) && p.root != "" {
		path = filepath.Join(p.root, path)
	}

	file, err := p.fs.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return p.show(file)
}

// ShowText pages text
func (p *Pager) ShowText(text string) error {
	return p.show(strings.NewReader(text))
}

func (p *Pager) show(r io.Reader) error {
	if p.terminal == nil {
		return ErrNoTerminal
	}
	return withReleasedTerminal(p.terminal, func() error {
		return p.view(r)
	})
}

func runOviewer(r io.Reader) error {
	root, err := oviewer.NewRoot(r)
	if err != nil {
		return fmt.Errorf("failed to start pager: %w", err)
	}

	// Don't leave pager output on the restored screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
