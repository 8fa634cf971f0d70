// Package search provides the live fuzzy path search view for the TUI.
package search

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/pathfind/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/pathfind/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/pathfind/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/pathfind/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/pathfind/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pathfind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pathfind/internal/core/domain"
	"github.com/custodia-labs/pathfind/internal/core/ports/driving"
)

// View is the single live search view: a text input, a ranked result list
// and a status bar, wired directly to a SearchOrchestrator.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	orchestrator driving.SearchOrchestrator
	results      <-chan domain.FileSearchResult

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	orchestrator driving.SearchOrchestrator,
	results <-chan domain.FileSearchResult,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:       s,
		keymap:       km,
		input:        input.NewSearchInput(s),
		list:         list.NewResultList(s),
		statusbar:    status.NewBar(s, km),
		orchestrator: orchestrator,
		results:      results,
		width:        80,
		height:       24,
		ready:        false,
	}
}

// Init initialises the view and starts listening for result events.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.listenForResults())
}

// listenForResults returns a command that blocks on the results channel and
// delivers the next event as a tea.Msg. It must be re-issued after every
// ResultsUpdated message to keep draining the channel.
func (v *View) listenForResults() tea.Cmd {
	return func() tea.Msg {
		result, ok := <-v.results
		if !ok {
			return nil
		}
		return messages.ResultsUpdated{Query: result.Query, Matches: result.Matches}
	}
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ResultsUpdated:
		// A result for a stale query may still arrive after the input has
		// since changed; discard it rather than rendering it.
		if msg.Query == v.input.Value() {
			v.err = nil
			v.list.SetResults(msg.Matches)
			v.statusbar.SetState(status.StateResults)
			v.statusbar.SetResultCount(len(msg.Matches))
		}
		return v, v.listenForResults()

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }

	case key.Matches(msg, v.keymap.Select):
		m := v.list.SelectedResult()
		if m == nil {
			return v, nil
		}
		path := m.Path
		return v, func() tea.Msg { return messages.Selected{Path: path} }

	case key.Matches(msg, v.keymap.Cancel):
		v.input.SetValue("")
		v.list.SetResults(nil)
		v.statusbar.Clear()
		v.triggerSearch("")
		return v, nil

	case key.Matches(msg, v.keymap.Up):
		v.list.MoveUp()
		return v, nil

	case key.Matches(msg, v.keymap.Down):
		v.list.MoveDown()
		return v, nil
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	after := v.input.Value()

	if after != before {
		v.statusbar.SetState(status.StateSearching)
		v.triggerSearch(after)
	}

	return v, cmd
}

// triggerSearch forwards the query to the orchestrator, which owns
// debouncing and cancellation.
func (v *View) triggerSearch(query string) {
	if v.orchestrator == nil {
		v.err = ErrNoOrchestrator
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(v.err.Error())
		return
	}
	v.orchestrator.OnUserQuery(query)
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 6)

	header := v.styles.Title.Render("pathfind")
	sections = append(sections, header, "")

	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View())

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10)
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// Results returns the current matches.
func (v *View) Results() []domain.Match {
	return v.list.Results()
}

// SelectedIndex returns the index of the selected match.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedResult returns the currently selected match.
func (v *View) SelectedResult() *domain.Match {
	return v.list.SelectedResult()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset resets the view to its initial state.
func (v *View) Reset() {
	v.input.SetValue("")
	v.input.Focus()
	v.list.SetResults(nil)
	v.err = nil
	v.statusbar.Clear()
}
