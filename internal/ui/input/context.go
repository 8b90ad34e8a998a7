package input

import (
	"lens/internal/ui/input/types"
	"lens/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

func (c *ModelContext) Window() types.Window {
	return c.State.Window
}

func (c *ModelContext) Mode() types.Mode {
	return c.State.Mode
}

func (c *ModelContext) QueryLen() int {
	return len(c.State.Search.Query)
}

func (c *ModelContext) Cursor() int {
	return c.State.Search.Cursor
}

func (c *ModelContext) ResultCount() int {
	return len(c.State.Search.Results)
}

// HasCurrentMatch reports whether the result scroll points at a match
func (c *ModelContext) HasCurrentMatch() bool {
	_, ok := c.State.Search.CurrentMatch()
	return ok
}

func (c *ModelContext) ViCommand() string {
	return c.State.ViCommand
}

func (c *ModelContext) CommandBuffer() string {
	return c.State.Command.String()
}

func (c *ModelContext) OptionsScroll() int {
	return c.State.Options.Scroll
}
