package search

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pathfind/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/pathfind/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pathfind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pathfind/internal/core/domain"
)

// stubOrchestrator records queries passed to OnUserQuery.
type stubOrchestrator struct {
	queries []string
}

func (s *stubOrchestrator) OnUserQuery(query string) {
	s.queries = append(s.queries, query)
}

func testMatches() []domain.Match {
	return []domain.Match{
		{Path: "internal/core/services/manager.go", Indices: []int{0}},
		{Path: "cmd/pathfind/main.go"},
	}
}

func newTestView() (*View, *stubOrchestrator, chan domain.FileSearchResult) {
	orch := &stubOrchestrator{}
	ch := make(chan domain.FileSearchResult, 4)
	v := NewView(styles.DefaultStyles(), keymap.DefaultKeyMap(), orch, ch)
	return v, orch, ch
}

func TestNewView(t *testing.T) {
	v, _, _ := newTestView()

	require.NotNil(t, v)
	assert.False(t, v.Ready())
}

func TestNewView_Defaults(t *testing.T) {
	ch := make(chan domain.FileSearchResult)
	v := NewView(nil, nil, &stubOrchestrator{}, ch)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.NotNil(t, v.keymap)
}

func TestView_Init(t *testing.T) {
	v, _, _ := newTestView()

	cmd := v.Init()

	assert.NotNil(t, cmd)
}

func TestView_Update_WindowSize(t *testing.T) {
	v, _, _ := newTestView()

	updated, _ := v.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, updated.Ready())
}

func TestView_Update_TypingTriggersSearch(t *testing.T) {
	v, orch, _ := newTestView()
	v.SetDimensions(80, 24)

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	assert.Equal(t, "a", v.Query())
	assert.Equal(t, []string{"a"}, orch.queries)
}

func TestView_Update_ResultsUpdated_MatchingQuery(t *testing.T) {
	v, _, _ := newTestView()
	v.SetDimensions(80, 24)
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	updated, cmd := v.Update(messages.ResultsUpdated{Query: "a", Matches: testMatches()})

	assert.Len(t, updated.Results(), 2)
	assert.NotNil(t, cmd)
}

func TestView_Update_ResultsUpdated_StaleQueryDiscarded(t *testing.T) {
	v, _, _ := newTestView()
	v.SetDimensions(80, 24)
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})

	updated, _ := v.Update(messages.ResultsUpdated{Query: "stale", Matches: testMatches()})

	assert.Empty(t, updated.Results())
}

func TestView_Update_ErrorOccurred(t *testing.T) {
	v, _, _ := newTestView()

	updated, _ := v.Update(messages.ErrorOccurred{Err: &testError{"boom"}})

	assert.Error(t, updated.Err())
}

func TestView_Update_Quit(t *testing.T) {
	v, _, _ := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := msg.(messages.Quit)
	assert.True(t, ok)
}

func TestView_Update_Select(t *testing.T) {
	v, _, _ := newTestView()
	v.SetDimensions(80, 24)
	v.Update(messages.ResultsUpdated{Query: "", Matches: testMatches()})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg := cmd()
	selected, ok := msg.(messages.Selected)
	require.True(t, ok)
	assert.Equal(t, "internal/core/services/manager.go", selected.Path)
}

func TestView_Update_SelectWithNoResults(t *testing.T) {
	v, _, _ := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_Update_Cancel(t *testing.T) {
	v, orch, _ := newTestView()
	v.SetDimensions(80, 24)
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	v.Update(tea.KeyMsg{Type: tea.KeyCtrlU})

	assert.Equal(t, "", v.Query())
	assert.Equal(t, []string{"x", ""}, orch.queries)
}

func TestView_Update_Navigation(t *testing.T) {
	v, _, _ := newTestView()
	v.SetDimensions(80, 24)
	v.Update(messages.ResultsUpdated{Query: "", Matches: testMatches()})

	v.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, 1, v.SelectedIndex())

	v.Update(tea.KeyMsg{Type: tea.KeyUp})

	assert.Equal(t, 0, v.SelectedIndex())
}

func TestView_TriggerSearch_NoOrchestrator(t *testing.T) {
	ch := make(chan domain.FileSearchResult, 1)
	v := NewView(nil, nil, nil, ch)
	v.SetDimensions(80, 24)

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})

	assert.Error(t, v.Err())
}

func TestView_View_NotReady(t *testing.T) {
	v, _, _ := newTestView()

	view := v.View()

	assert.Contains(t, view, "Initialising")
}

func TestView_View_Ready(t *testing.T) {
	v, _, _ := newTestView()
	v.SetDimensions(80, 24)

	view := v.View()

	assert.Contains(t, view, "pathfind")
}

func TestView_SetDimensions(t *testing.T) {
	v, _, _ := newTestView()

	v.SetDimensions(120, 40)

	assert.Equal(t, 120, v.Width())
	assert.Equal(t, 40, v.Height())
	assert.True(t, v.Ready())
}

func TestView_Reset(t *testing.T) {
	v, _, _ := newTestView()
	v.SetDimensions(80, 24)
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	v.Update(messages.ResultsUpdated{Query: "a", Matches: testMatches()})

	v.Reset()

	assert.Equal(t, "", v.Query())
	assert.Empty(t, v.Results())
	assert.NoError(t, v.Err())
}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }
