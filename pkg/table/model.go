package table

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/scout/pkg/pagination"
)

// EmptyState is the caller-supplied zero-rows presentation. Action is an
// optional next-step hint rendered under the message.
type EmptyState struct {
	Icon    string
	Title   string
	Message string
	Action  string
}

// HeaderRegion is the clickable area of one column header, relative to the
// table's origin. Only sortable columns are registered.
type HeaderRegion struct {
	Key   string
	X     int
	Width int
}

// Styles controls the table's visual appearance.
type Styles struct {
	Header    lipgloss.Style
	HeaderSep lipgloss.Style
	Cell      lipgloss.Style
	CellAlt   lipgloss.Style // striped rows
	Selected  lipgloss.Style
	Skeleton  lipgloss.Style
	Empty     lipgloss.Style
}

// DefaultStyles returns the standard table styling.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		HeaderSep: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Cell:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CellAlt:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("234")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("237")).Bold(true),
		Skeleton:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// DefaultSkeletonRows is the placeholder row count while loading.
const DefaultSkeletonRows = 3

// Model is a sortable, optionally paginated table over rows of type R.
//
// The model owns presentation state only (sort position, cursor). Row data
// and pagination counters belong to the host; sorting derives a new view
// on every render and never reorders the host's slice.
type Model[R any] struct {
	Columns []Column[R]
	Rows    []R
	Sort    SortState

	// Presorted marks Rows as already being in display order. The table
	// keeps Sort for header indicators and toggle cycling but derives no
	// order of its own. Hosts that sort a larger dataset and hand the
	// table a page slice set this, otherwise the descending reverse step
	// would run twice and flip tie order back to ascending.
	Presorted bool

	Loading      bool
	SkeletonRows int
	Striped      bool
	Empty        *EmptyState

	// RowKey maps a row to a stable identity. Falls back to the row's
	// position in the sorted view, which is stable per render.
	RowKey func(row R, index int) string

	// OnSelect fires when the cursor row is activated. It never changes
	// sort or pagination state.
	OnSelect func(row R, index int) tea.Cmd

	// Pager, when set, renders as the table footer and handles page keys.
	Pager *pagination.Model

	Styles Styles

	cursor        int
	headerRegions []HeaderRegion
	rowsTop       int // y offset of the first data row in the last View
}

// New creates a table over the given columns.
func New[R any](columns []Column[R]) Model[R] {
	return Model[R]{
		Columns:      columns,
		SkeletonRows: DefaultSkeletonRows,
		Styles:       DefaultStyles(),
	}
}

// SetRows replaces the row view and clamps the cursor.
func (m *Model[R]) SetRows(rows []R) {
	m.Rows = rows
	m.clampCursor()
}

// ToggleSort advances the sort cycle for the column with the given key.
// Unknown and non-sortable columns are no-ops.
func (m *Model[R]) ToggleSort(key string) {
	for _, col := range m.Columns {
		if col.Key == key {
			if col.Sortable {
				m.Sort = m.Sort.Toggle(key)
			}
			return
		}
	}
}

// VisibleRows returns the rows in display order under the current sort.
// Presorted rows pass through unchanged.
func (m Model[R]) VisibleRows() []R {
	col, ok := m.activeColumn()
	if m.Presorted || !ok {
		out := make([]R, len(m.Rows))
		copy(out, m.Rows)
		return out
	}
	return Sort(m.Rows, col, m.Sort.Dir)
}

func (m Model[R]) activeColumn() (Column[R], bool) {
	if m.Sort.Dir == DirNone {
		return Column[R]{}, false
	}
	for _, col := range m.Columns {
		if col.Key == m.Sort.Key {
			return col, true
		}
	}
	return Column[R]{}, false
}

// Cursor returns the cursor position within the visible rows.
func (m Model[R]) Cursor() int { return m.cursor }

// SetCursor moves the cursor, clamping to the visible range.
func (m *Model[R]) SetCursor(i int) {
	m.cursor = i
	m.clampCursor()
}

func (m *Model[R]) clampCursor() {
	if m.cursor >= len(m.Rows) {
		m.cursor = len(m.Rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles cursor movement, row activation and page navigation.
func (m Model[R]) Update(msg tea.Msg) (Model[R], tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.Rows)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m, m.selectCursorRow()
	}

	if m.Pager != nil {
		pager, cmd := m.Pager.Update(msg)
		*m.Pager = pager
		return m, cmd
	}
	return m, nil
}

func (m Model[R]) selectCursorRow() tea.Cmd {
	if m.OnSelect == nil || m.Loading {
		return nil
	}
	rows := m.VisibleRows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil
	}
	return m.OnSelect(rows[m.cursor], m.cursor)
}

// SelectRow activates the row at the given visible index (mouse path).
func (m *Model[R]) SelectRow(index int) tea.Cmd {
	if index < 0 || index >= len(m.Rows) {
		return nil
	}
	m.cursor = index
	return m.selectCursorRow()
}

// HeaderRegions returns the clickable sortable-header areas recorded by the
// last View call.
func (m Model[R]) HeaderRegions() []HeaderRegion { return m.headerRegions }

// RowsTop returns the y offset of the first data row in the last View,
// for translating mouse clicks into row indices (one line per row).
func (m Model[R]) RowsTop() int { return m.rowsTop }

// View renders the table. States take priority in this order: loading
// skeleton, empty state, data rows. The pagination footer renders last.
func (m *Model[R]) View() string {
	widths := m.columnWidths()

	var sb strings.Builder
	m.headerRegions = m.headerRegions[:0]
	sb.WriteString(m.renderHeader(widths))
	sb.WriteString("\n")
	sb.WriteString(m.renderDivider(widths))
	sb.WriteString("\n")
	m.rowsTop = 2

	switch {
	case m.Loading:
		sb.WriteString(m.renderSkeleton(widths))
	case len(m.Rows) == 0:
		sb.WriteString(m.renderEmpty(widths))
	default:
		sb.WriteString(m.renderRows(widths))
	}

	if m.Pager != nil {
		if footer := m.Pager.View(); footer != "" {
			sb.WriteString("\n")
			sb.WriteString(footer)
		}
	}
	return sb.String()
}

// columnWidths sizes columns from the width hint or the widest cell.
func (m Model[R]) columnWidths() []int {
	widths := make([]int, len(m.Columns))
	for i, col := range m.Columns {
		if col.Width > 0 {
			widths[i] = col.Width
			continue
		}
		w := lipgloss.Width(col.Label) + sortMarkerWidth
		for _, row := range m.Rows {
			if cw := lipgloss.Width(col.cellText(row)); cw > w {
				w = cw
			}
		}
		widths[i] = w
	}
	return widths
}

const sortMarkerWidth = 2 // room for " ▲" / " ▼"

func (m *Model[R]) renderHeader(widths []int) string {
	var cells []string
	x := 0
	for i, col := range m.Columns {
		label := col.Label
		if m.Sort.Key == col.Key {
			switch m.Sort.Dir {
			case DirAsc:
				label += " ▲"
			case DirDesc:
				label += " ▼"
			}
		}
		cell := pad(m.Styles.Header.Render(label), widths[i], col.Align)
		if col.Sortable {
			m.headerRegions = append(m.headerRegions, HeaderRegion{
				Key:   col.Key,
				X:     x,
				Width: widths[i],
			})
		}
		cells = append(cells, cell)
		x += widths[i] + 1 // separator column
	}
	return strings.Join(cells, m.Styles.HeaderSep.Render("│"))
}

func (m Model[R]) renderDivider(widths []int) string {
	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	return m.Styles.HeaderSep.Render(strings.Repeat("─", total))
}

func (m *Model[R]) renderSkeleton(widths []int) string {
	n := m.SkeletonRows
	if n < 1 {
		n = DefaultSkeletonRows
	}
	var lines []string
	for r := 0; r < n; r++ {
		var cells []string
		for i := range m.Columns {
			block := widths[i] - 2
			if block < 1 {
				block = 1
			}
			cell := m.Styles.Skeleton.Render(strings.Repeat("░", block))
			cells = append(cells, pad(cell, widths[i], AlignLeft))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func (m *Model[R]) renderEmpty(widths []int) string {
	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}

	es := m.Empty
	if es == nil {
		return m.Styles.Empty.Render(center("no data", total))
	}
	var lines []string
	if es.Icon != "" {
		lines = append(lines, center(es.Icon, total))
	}
	if es.Title != "" {
		lines = append(lines, center(es.Title, total))
	}
	if es.Message != "" {
		lines = append(lines, center(es.Message, total))
	}
	if es.Action != "" {
		lines = append(lines, center(es.Action, total))
	}
	if len(lines) == 0 {
		lines = append(lines, center("no data", total))
	}
	for i := range lines {
		lines[i] = m.Styles.Empty.Render(lines[i])
	}
	return strings.Join(lines, "\n")
}

func (m *Model[R]) renderRows(widths []int) string {
	rows := m.VisibleRows()
	m.clampCursor()

	var lines []string
	for ri, row := range rows {
		var cells []string
		for ci, col := range m.Columns {
			cells = append(cells, pad(col.cellText(row), widths[ci], col.Align))
		}
		line := strings.Join(cells, " ")

		style := m.Styles.Cell
		if m.Striped && ri%2 == 1 {
			style = m.Styles.CellAlt
		}
		if ri == m.cursor {
			style = m.Styles.Selected
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}

// pad fits content into width, truncating with an ellipsis when too wide.
func pad(s string, width int, align Align) string {
	w := lipgloss.Width(s)
	if w > width {
		return ansi.Truncate(s, width, "…")
	}
	gap := width - w
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

func center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
