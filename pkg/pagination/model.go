package pagination

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PageMsg reports a page-change intent. The host owns the pagination state;
// the strip never mutates its own Page field in response to input.
type PageMsg struct {
	Page int
}

// Region is a clickable area of the rendered strip, relative to its origin.
// Hosts translate these into their mouse hit map.
type Region struct {
	ID    string // "prev", "next", or "page:N"
	X     int
	Width int
}

// Styles controls the visual appearance of the strip.
type Styles struct {
	Page     lipgloss.Style
	Current  lipgloss.Style
	Ellipsis lipgloss.Style
	Nav      lipgloss.Style
	Disabled lipgloss.Style
}

// DefaultStyles returns the standard strip styling.
func DefaultStyles() Styles {
	return Styles{
		Page:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		Current:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("212")).Bold(true).Padding(0, 1),
		Ellipsis: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		Nav:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Padding(0, 1),
	}
}

// Model renders a page strip and emits PageMsg intents. It holds no
// authoritative pagination state: Page and Total mirror the host's values.
type Model struct {
	Page         int
	Total        int
	MaxVisible   int
	ShowPrevNext bool
	Styles       Styles

	regions []Region
}

// New creates a strip mirroring the given host state.
func New(page, total int) Model {
	return Model{
		Page:         Clamp(page, total),
		Total:        total,
		MaxVisible:   DefaultMaxVisible,
		ShowPrevNext: true,
		Styles:       DefaultStyles(),
	}
}

// SetPage updates the mirrored current page, clamping silently.
func (m *Model) SetPage(page int) {
	m.Page = Clamp(page, m.Total)
}

// SetTotal updates the mirrored page count, re-clamping the current page.
func (m *Model) SetTotal(total int) {
	if total < 1 {
		total = 1
	}
	m.Total = total
	m.Page = Clamp(m.Page, total)
}

// Select returns a command emitting a PageMsg for page, or nil when the
// change would be a no-op: the current page, out of range, or total <= 1.
func (m Model) Select(page int) tea.Cmd {
	if m.Total <= 1 || page < 1 || page > m.Total || page == m.Page {
		return nil
	}
	return func() tea.Msg { return PageMsg{Page: page} }
}

// Prev returns a command for the previous page, nil at the first page.
func (m Model) Prev() tea.Cmd { return m.Select(m.Page - 1) }

// Next returns a command for the next page, nil at the last page.
func (m Model) Next() tea.Cmd { return m.Select(m.Page + 1) }

// Update handles left/right page navigation keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "left", "h":
		return m, m.Prev()
	case "right", "l":
		return m, m.Next()
	case "home":
		return m, m.Select(1)
	case "end":
		return m, m.Select(m.Total)
	}
	return m, nil
}

// HandleClick maps a region ID (from Regions) to a page-change command.
func (m Model) HandleClick(id string) tea.Cmd {
	switch {
	case id == "prev":
		return m.Prev()
	case id == "next":
		return m.Next()
	case strings.HasPrefix(id, "page:"):
		page, err := strconv.Atoi(strings.TrimPrefix(id, "page:"))
		if err != nil {
			return nil
		}
		return m.Select(page)
	}
	return nil
}

// View renders the strip. Renders nothing when there is at most one page.
// Clickable regions are recorded for Regions as a side effect.
func (m *Model) View() string {
	m.regions = m.regions[:0]
	items := Window(m.Page, m.Total, m.MaxVisible)
	if len(items) == 0 {
		return ""
	}

	var sb strings.Builder
	x := 0
	write := func(id, rendered string) {
		w := lipgloss.Width(rendered)
		if id != "" {
			m.regions = append(m.regions, Region{ID: id, X: x, Width: w})
		}
		sb.WriteString(rendered)
		x += w
	}

	if m.ShowPrevNext {
		if m.Page > 1 {
			write("prev", m.Styles.Nav.Render("‹ prev"))
		} else {
			write("", m.Styles.Disabled.Render("‹ prev"))
		}
	}

	for _, it := range items {
		if it.Ellipsis {
			write("", m.Styles.Ellipsis.Render("…"))
			continue
		}
		label := strconv.Itoa(it.Page)
		if it.Page == m.Page {
			write("", m.Styles.Current.Render(label))
		} else {
			write(fmt.Sprintf("page:%d", it.Page), m.Styles.Page.Render(label))
		}
	}

	if m.ShowPrevNext {
		if m.Page < m.Total {
			write("next", m.Styles.Nav.Render("next ›"))
		} else {
			write("", m.Styles.Disabled.Render("next ›"))
		}
	}

	return sb.String()
}

// Regions returns the clickable areas recorded by the last View call.
func (m *Model) Regions() []Region {
	return m.regions
}
