package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pathfind/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pathfind/internal/core/domain"
)

// stubOrchestrator records the queries it is asked to search for.
type stubOrchestrator struct {
	queries []string
}

func (s *stubOrchestrator) OnUserQuery(query string) {
	s.queries = append(s.queries, query)
}

func newTestPorts() (*Ports, *stubOrchestrator, chan domain.FileSearchResult) {
	orch := &stubOrchestrator{}
	ch := make(chan domain.FileSearchResult, 4)
	return NewPorts(orch, ch), orch, ch
}

func TestNewApp_Success(t *testing.T) {
	ports, _, _ := newTestPorts()

	app, err := NewApp(ports)

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	ports := &Ports{}

	app, err := NewApp(ports)

	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	ports, _, _ := newTestPorts()
	app, _ := NewApp(ports)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")
	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
}

func TestApp_Init(t *testing.T) {
	ports, _, _ := newTestPorts()
	app, _ := NewApp(ports)

	cmd := app.Init()

	assert.NotNil(t, cmd)
}

func TestApp_Update_WindowSize(t *testing.T) {
	ports, _, _ := newTestPorts()
	app, _ := NewApp(ports)

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	updated, ok := model.(*App)
	require.True(t, ok)
	assert.True(t, updated.Ready())
	_ = cmd
}

func TestApp_Update_CtrlCQuits(t *testing.T) {
	ports, _, _ := newTestPorts()
	app, _ := NewApp(ports)

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	updated, ok := model.(*App)
	require.True(t, ok)
	assert.True(t, updated.Quitting())
	assert.NotNil(t, cmd)
}

func TestApp_Update_Selected(t *testing.T) {
	ports, _, _ := newTestPorts()
	app, _ := NewApp(ports)

	model, cmd := app.Update(messages.Selected{Path: "cmd/pathfind/main.go"})

	updated, ok := model.(*App)
	require.True(t, ok)
	assert.Equal(t, "cmd/pathfind/main.go", updated.SelectedPath())
	assert.True(t, updated.Quitting())
	assert.NotNil(t, cmd)
}

func TestApp_Update_Quit(t *testing.T) {
	ports, _, _ := newTestPorts()
	app, _ := NewApp(ports)

	model, cmd := app.Update(messages.Quit{})

	updated, ok := model.(*App)
	require.True(t, ok)
	assert.True(t, updated.Quitting())
	assert.NotNil(t, cmd)
}

func TestApp_View_NotReady(t *testing.T) {
	ports, _, _ := newTestPorts()
	app, _ := NewApp(ports)

	view := app.View()

	assert.Contains(t, view, "Initialising")
}

func TestApp_View_Ready(t *testing.T) {
	ports, _, _ := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)

	view := app.View()

	assert.Contains(t, view, "pathfind")
}

func TestApp_SetDimensions(t *testing.T) {
	ports, _, _ := newTestPorts()
	app, _ := NewApp(ports)

	app.SetDimensions(120, 40)

	assert.True(t, app.Ready())
}

func TestApp_Accessors_Empty(t *testing.T) {
	ports, _, _ := newTestPorts()
	app, _ := NewApp(ports)

	assert.Equal(t, "", app.Query())
	assert.Empty(t, app.Results())
	assert.Equal(t, 0, app.SelectedIndex())
	assert.Equal(t, "", app.SelectedPath())
	assert.NoError(t, app.Err())
}
