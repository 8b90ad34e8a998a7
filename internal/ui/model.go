package ui

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"lens/internal/config"
	"lens/internal/domain"
	"lens/internal/editor"
	"lens/internal/preview"
	"lens/internal/session"
	"lens/internal/ui/commands"
	"lens/internal/ui/input"
	inputtypes "lens/internal/ui/input/types"
	"lens/internal/ui/state"
	"lens/internal/ui/viewmodels"
	"lens/internal/ui/views"
)

// Searcher runs a query against the search root
type Searcher interface {
	Search(query string, opts domain.SearchOptions) ([]domain.Match, error)
}

// Previewer builds the preview window around a match
type Previewer interface {
	Build(match domain.Match) (preview.Preview, error)
}

// Launcher opens a match in the external editor
type Launcher interface {
	Open(match domain.Match) error
}

// Pager shows files and text full screen
type Pager interface {
	ShowFile(path string) error
	ShowText(text string) error
}

// SessionStore persists the session snapshot
type SessionStore interface {
	Load() (*session.Snapshot, error)
	Save(snapshot *session.Snapshot) error
	Delete() error
}

// Clipboard receives yanked text
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard
type SystemClipboard struct{}

// WriteAll implements Clipboard
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// terminalUser is implemented by collaborators that take over the terminal
type terminalUser interface {
	SetTerminal(t editor.Terminal)
}

// Deps are the collaborators the model drives
type Deps struct {
	Searcher  Searcher
	Previewer Previewer
	Launcher  Launcher
	Pager     Pager
	Store     SessionStore
	Clipboard Clipboard
	Logger    *slog.Logger
}

// Model represents the UI state
type Model struct {
	config *config.Config
	state  *state.AppState
	logger *slog.Logger
	keys   inputtypes.KeyMap

	searcher  Searcher
	previewer Previewer
	launcher  Launcher
	pager     Pager
	store     SessionStore
	clipboard Clipboard

	inputHandler *input.Handler
	cmdExecutor  *commands.Executor
	viewModel    *viewmodels.ViewModel
	renderer     *views.Renderer

	statusIsError bool
	searchPending bool
	searched      bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, deps Deps) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	clip := deps.Clipboard
	if clip == nil {
		clip = SystemClipboard{}
	}

	appState := state.NewAppState(cfg.SearchOptions())
	keys := inputtypes.Keys

	return &Model{
		config:       cfg,
		state:        appState,
		logger:       logger,
		keys:         keys,
		searcher:     deps.Searcher,
		previewer:    deps.Previewer,
		launcher:     deps.Launcher,
		pager:        deps.Pager,
		store:        deps.Store,
		clipboard:    clip,
		inputHandler: input.NewWithKeys(keys),
		cmdExecutor:  commands.NewExecutor(appState, deps.Store),
		viewModel:    viewmodels.NewViewModel(appState, keys),
		renderer:     views.NewRenderer(cfg.UI.SyntaxTheme),
	}
}

// State returns the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// Restore applies a saved session. Results and preview stay empty until
// the first search runs.
func (m *Model) Restore(snap *session.Snapshot) {
	m.state.Restore(snap)
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	for _, c := range []any{m.launcher, m.pager} {
		if user, ok := c.(terminalUser); ok {
			user.SetTerminal(p)
		}
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tick()}
	if len(m.state.Search.Query) > 0 {
		cmds = append(cmds, func() tea.Msg { return initialSearchMsg{} })
	}
	return tea.Batch(cmds...)
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Duration(m.config.UI.TickInterval), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height

	case tea.KeyMsg:
		m.clearStatus()
		cmd, err := m.handleKey(msg)
		if err != nil {
			m.showError(err)
		}
		return m, cmd

	case initialSearchMsg:
		// Typing before the restored query was searched already ran a search
		if m.searched {
			return m, nil
		}
		if err := m.runSearch(); err != nil {
			m.showError(err)
		}
		m.refreshPreview()

	case tickMsg:
		return m, m.tick()
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if !m.state.Running {
		return ""
	}
	m.viewModel.SetModeName(m.inputHandler.ModeName(m.context()))
	m.viewModel.SetStatusIsError(m.statusIsError)
	return m.renderer.Render(m.viewModel.BuildViewState())
}

func (m *Model) context() inputtypes.Context {
	return &input.ModelContext{State: m.state}
}

// handleKey runs every action the key maps to, then the search if the query
// or options changed, then refreshes the preview unless the command line
// has focus. The first collaborator error is returned; the rest are logged.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, error) {
	actions := m.inputHandler.HandleKey(msg, m.context())
	m.logger.Debug("key", "key", msg.String(), "actions", len(actions))

	var cmds []tea.Cmd
	var firstErr error
	record := func(err error) {
		if err == nil {
			return
		}
		if firstErr == nil {
			firstErr = err
			return
		}
		m.logger.Error("dropped error", "err", err)
	}

	m.searchPending = false
	for _, action := range actions {
		cmd, err := m.processAction(action)
		record(err)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if m.searchPending && m.state.Running {
		record(m.runSearch())
	}

	if m.state.Window != inputtypes.WindowCommand && m.state.Running {
		m.refreshPreview()
	}

	return tea.Batch(cmds...), firstErr
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) (tea.Cmd, error) {
	s := m.state
	switch a := action.(type) {
	case inputtypes.InsertTextAction:
		m.searchIf(s.Search.InsertRunes(a.Runes))
	case inputtypes.DeleteBackwardAction:
		m.searchIf(s.Search.DeleteBackward())
	case inputtypes.DeleteCharAction:
		m.searchIf(s.Search.DeleteChar())
	case inputtypes.DeleteToEndAction:
		m.searchIf(s.Search.DeleteToEnd())
	case inputtypes.ClearQueryAction:
		m.searchIf(s.Search.ClearQuery())
	case inputtypes.MoveCursorAction:
		s.Search.MoveCursor(a.Direction)

	case inputtypes.ScrollResultsAction:
		s.Search.ScrollResults(a.Direction)
	case inputtypes.ScrollOptionsAction:
		s.Options.ScrollOptions(a.Direction)
	case inputtypes.ToggleOptionAction:
		s.Options.Toggle()
		m.searchPending = true

	case inputtypes.ChangeModeAction:
		s.Mode = a.Mode
	case inputtypes.ChangeWindowAction:
		s.Window = a.Window

	case inputtypes.AppendCommandAction:
		s.Command.Append(a.Runes)
	case inputtypes.PopCommandAction:
		s.Command.Pop()
	case inputtypes.ResetCommandAction:
		s.Command.Reset()
	case inputtypes.ClearCommandAction:
		s.Command.Clear()
	case inputtypes.ExecuteCommandAction:
		m.logger.Info("executing command", "command", a.Command)
		return m.cmdExecutor.Execute(a.Command)

	case inputtypes.SetViCommandAction:
		s.ViCommand = a.Command
	case inputtypes.ClearViCommandAction:
		s.ViCommand = ""

	case inputtypes.OpenEditorAction:
		return nil, m.openEditor()
	case inputtypes.OpenPagerAction:
		return nil, m.openPager()
	case inputtypes.YankAction:
		return nil, m.yank()
	case inputtypes.ShowHelpAction:
		return nil, m.showHelp()

	case inputtypes.QuitAction:
		s.Running = false
		return tea.Quit, nil

	default:
		m.logger.Warn("unhandled action", "action", fmt.Sprintf("%T", action))
	}
	return nil, nil
}

func (m *Model) searchIf(changed bool) {
	if changed {
		m.searchPending = true
	}
}

// runSearch replaces the results with the matches for the current query.
// A failed search keeps whatever matches the searcher still reported.
func (m *Model) runSearch() error {
	m.searchPending = false
	m.searched = true
	if m.searcher == nil {
		return nil
	}

	query := m.state.Search.QueryString()
	start := time.Now()
	results, err := m.searcher.Search(query, m.state.Options.Flags)
	if err != nil {
		m.logger.Error("search failed", "query", query, "results", len(results), "err", err)
		m.state.Search.SetResults(results)
		return err
	}

	m.logger.Debug("search finished", "query", query, "results", len(results), "elapsed", time.Since(start))
	m.state.Search.SetResults(results)
	return nil
}

// refreshPreview rebuilds the preview around the scrolled-to match, or
// clears it when there is none. Unreadable files give an empty preview.
func (m *Model) refreshPreview() {
	match, ok := m.state.Search.CurrentMatch()
	if !ok || m.previewer == nil {
		m.state.Search.ClearPreview()
		return
	}

	p, err := m.previewer.Build(match)
	if err != nil {
		m.logger.Warn("preview failed", "path", match.Path, "err", err)
		m.state.Search.ClearPreview()
		return
	}
	m.state.Search.SetPreview(p.Text, p.HighlightedLine)
}

func (m *Model) openEditor() error {
	match, ok := m.state.Search.CurrentMatch()
	if !ok || m.launcher == nil {
		return nil
	}
	m.logger.Info("opening editor", "location", match.Location())
	return m.launcher.Open(match)
}

func (m *Model) openPager() error {
	match, ok := m.state.Search.CurrentMatch()
	if !ok || m.pager == nil {
		return nil
	}
	return m.pager.ShowFile(match.Path)
}

func (m *Model) yank() error {
	match, ok := m.state.Search.CurrentMatch()
	if !ok {
		return nil
	}
	location := match.Location()
	if err := m.clipboard.WriteAll(location); err != nil {
		return fmt.Errorf("failed to copy %s: %w", location, err)
	}
	m.state.StatusMessage = "copied " + location
	return nil
}

func (m *Model) showHelp() error {
	if m.pager == nil {
		return nil
	}
	return m.pager.ShowText(renderHelpContent(m.keys))
}

func (m *Model) clearStatus() {
	m.state.StatusMessage = ""
	m.statusIsError = false
}

func (m *Model) showError(err error) {
	m.logger.Error("key handling failed", "err", err)
	m.state.StatusMessage = err.Error()
	m.statusIsError = true
}
