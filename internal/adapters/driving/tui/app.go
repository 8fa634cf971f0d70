package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pathfind/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pathfind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pathfind/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/pathfind/internal/core/domain"
)

// App is the top-level TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea. pathfind has a single
// view, so App is a thin wrapper around the search view that owns the
// terminal lifecycle (alt-screen, window title, quitting).
type App struct {
	ports *Ports
	ctx   context.Context

	styles *styles.Styles

	searchView *search.View

	selectedPath string
	quitting     bool

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	searchView := search.NewView(s, nil, ports.Orchestrator, ports.Results)

	return &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		searchView: searchView,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("pathfind"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}

	case messages.Selected:
		a.selectedPath = msg.Path
		a.quitting = true
		return a, tea.Quit

	case messages.Quit:
		a.quitting = true
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.searchView, cmd = a.searchView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.searchView.View()
}

// Run starts the TUI application and returns the selected path, if any.
func (a *App) Run() (string, error) {
	p := tea.NewProgram(a, tea.WithAltScreen())
	model, err := p.Run()
	if err != nil {
		return "", err
	}
	final, ok := model.(*App)
	if !ok {
		return "", nil
	}
	return final.selectedPath, nil
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.searchView.Query()
}

// Results returns the current search results.
func (a *App) Results() []domain.Match {
	return a.searchView.Results()
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.searchView.SelectedIndex()
}

// SelectedPath returns the path accepted by the user, if any.
func (a *App) SelectedPath() string {
	return a.selectedPath
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.searchView.Err()
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Quitting returns whether the app is shutting down.
func (a *App) Quitting() bool {
	return a.quitting
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
}
