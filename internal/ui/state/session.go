package state

import (
	"strings"

	"lens/internal/domain"
	"lens/internal/session"
	"lens/internal/ui/input/types"
)

// Snapshot captures the persisted part of the state. Results and
// preview are never persisted.
func (s *AppState) Snapshot() *session.Snapshot {
	flags := s.Options.Flags
	return &session.Snapshot{
		Window: s.Window.String(),
		Mode:   s.Mode.String(),
		Search: session.SearchState{
			Query:  s.Search.QueryString(),
			Cursor: s.Search.Cursor,
			Scroll: s.Search.Scroll,
		},
		Command: session.CommandState{
			Query:  s.Command.String(),
			Cursor: s.Command.Cursor,
		},
		Options: session.OptionsState{
			Scroll:        s.Options.Scroll,
			Hidden:        flags.Hidden,
			CaseSensitive: flags.CaseSensitive,
			WholeWord:     flags.WholeWord,
			FixedStrings:  flags.FixedStrings,
		},
	}
}

// Restore replaces the persisted part of the state with snap. Values
// out of range are clamped; the result scroll is held until the restored
// query has been searched.
func (s *AppState) Restore(snap *session.Snapshot) {
	if snap == nil {
		return
	}

	s.Window, _ = types.ParseWindow(snap.Window)
	s.Mode, _ = types.ParseMode(snap.Mode)

	s.Search = SearchState{Query: []rune(snap.Search.Query), Cursor: snap.Search.Cursor}
	s.Search.clampCursor()
	s.Search.SetPendingScroll(snap.Search.Scroll)

	s.Command.Clear()
	if s.Window == types.WindowCommand {
		if strings.HasPrefix(snap.Command.Query, ":") {
			s.Command.Query = []rune(snap.Command.Query)
			s.Command.Cursor = clamp(snap.Command.Cursor, 1, len(s.Command.Query))
		} else {
			s.Command.Reset()
		}
	}

	s.Options = OptionsState{
		Scroll: clamp(snap.Options.Scroll, 0, domain.OptionCount-1),
		Flags: domain.SearchOptions{
			Hidden:        snap.Options.Hidden,
			CaseSensitive: snap.Options.CaseSensitive,
			WholeWord:     snap.Options.WholeWord,
			FixedStrings:  snap.Options.FixedStrings,
		},
	}

	s.ViCommand = ""
}
