// Package list provides list display components for the pathfind TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pathfind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pathfind/internal/core/domain"
)

// ResultList displays fuzzy path matches in a navigable list, rendering
// each match's highlighted indices.
type ResultList struct {
	matches  []domain.Match
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		matches:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
			// Handle other keys
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.matches) == 0 {
		return r.styles.Muted.Render("No matches")
	}

	lines := make([]string, 0, len(r.matches)+2)

	header := r.styles.Subtitle.Render(fmt.Sprintf("Matches (%d)", len(r.matches)))
	lines = append(lines, header, "")

	visibleCount := r.height - 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.matches) {
		end = len(r.matches)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderMatch(i, &r.matches[i]))
	}

	return strings.Join(lines, "\n")
}

// renderMatch formats a single match, underlining the matched byte ranges.
func (r *ResultList) renderMatch(index int, m *domain.Match) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	path := r.renderHighlightedPath(m)

	if index == r.selected {
		return r.styles.Selected.Render(indicator) + path
	}
	return r.styles.Normal.Render(indicator) + path
}

// renderHighlightedPath renders a path with its matched byte indices styled
// via the highlight style, and the rest via the normal style.
func (r *ResultList) renderHighlightedPath(m *domain.Match) string {
	if len(m.Indices) == 0 {
		return r.styles.Normal.Render(m.Path)
	}

	highlighted := make(map[int]bool, len(m.Indices))
	for _, idx := range m.Indices {
		highlighted[idx] = true
	}

	var b strings.Builder
	runStart := 0
	runHighlighted := highlighted[0]
	flush := func(end int) {
		if end <= runStart {
			return
		}
		segment := m.Path[runStart:end]
		if runHighlighted {
			b.WriteString(r.styles.Highlight.Render(segment))
		} else {
			b.WriteString(r.styles.Normal.Render(segment))
		}
	}

	for i := 1; i <= len(m.Path); i++ {
		var cur bool
		if i < len(m.Path) {
			cur = highlighted[i]
		}
		if i == len(m.Path) || cur != runHighlighted {
			flush(i)
			runStart = i
			runHighlighted = cur
		}
	}

	return b.String()
}

// SetResults replaces the displayed matches.
func (r *ResultList) SetResults(matches []domain.Match) {
	r.matches = matches
	if r.selected >= len(matches) {
		r.selected = 0
	}
}

// Results returns the current matches.
func (r *ResultList) Results() []domain.Match {
	return r.matches
}

// Selected returns the index of the selected match.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.matches) {
		r.selected = index
	}
}

// SelectedResult returns the currently selected match, or nil if none.
func (r *ResultList) SelectedResult() *domain.Match {
	if len(r.matches) == 0 || r.selected < 0 || r.selected >= len(r.matches) {
		return nil
	}
	return &r.matches[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.matches)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of matches.
func (r *ResultList) Count() int {
	return len(r.matches)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.matches) == 0
}
