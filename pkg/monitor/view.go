package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Screen offsets of the roster table, used to translate table-relative
// click regions into screen coordinates.
const (
	tableLeft = 1
	tableTop  = 3
)

// View renders the active overlay if any, otherwise the roster screen.
// Mouse hit regions are re-registered on every render.
func (m *Model) View() string {
	m.hits.Clear()

	width, height := m.width, m.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	if m.form != nil {
		return lipgloss.NewStyle().Margin(1, 2).Render(m.form.View())
	}

	if m.dialog != nil && m.dialog.IsOpen() {
		return m.dialog.Render(width, height, m.hits.HitMap)
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(m.renderSearchLine(width))
	sb.WriteString("\n\n")

	tableView := m.tbl.View()
	sb.WriteString(indent(tableView, tableLeft))
	m.registerTableHits(width)

	sb.WriteString("\n\n")
	sb.WriteString(m.renderStatusBar(width))
	return sb.String()
}

func (m *Model) renderHeader() string {
	title := titleStyle.Render(" Scout ")
	total := len(m.all)
	shown := m.rowCount()

	counts := fmt.Sprintf("%d players", total)
	if shown != total {
		counts = fmt.Sprintf("%d of %d players", shown, total)
	}
	if m.includeRetired {
		counts += retiredBadgeStyle.Render(" +retired")
	}
	return title + subtleStyle.Render(" · "+counts)
}

func (m *Model) renderSearchLine(width int) string {
	if m.searching {
		return " " + searchPromptStyle.Render(m.searchInput.View())
	}
	if m.query != "" {
		return " " + searchPromptStyle.Render("/ "+m.query) + subtleStyle.Render("  (esc to clear)")
	}
	return " " + subtleStyle.Render("/ to search")
}

func (m *Model) renderStatusBar(width int) string {
	hints := statusBarStyle.Render(" /:search  a:add  e:edit  d:release  t:retired  y:copy  1-6:sort  q:quit")
	if m.status == "" {
		return hints
	}
	style := statusInfoStyle
	if m.statusErr {
		style = statusErrStyle
	}
	return " " + style.Render(m.status) + "\n" + hints
}

// registerTableHits translates the table's relative header, row and
// pager regions into screen-space hit rectangles.
func (m *Model) registerTableHits(width int) {
	for _, hr := range m.tbl.HeaderRegions() {
		m.hits.HitMap.AddRect("hdr:"+hr.Key, tableLeft+hr.X, tableTop, hr.Width, 1, nil)
	}

	if m.tbl.Loading {
		return
	}

	rowsTop := tableTop + m.tbl.RowsTop()
	for i := range m.tbl.Rows {
		m.hits.HitMap.AddRect(fmt.Sprintf("row:%d", i), tableLeft, rowsTop+i, width-tableLeft, 1, nil)
	}

	if m.tbl.Pager != nil {
		footerY := rowsTop + len(m.tbl.Rows)
		for _, pr := range m.tbl.Pager.Regions() {
			m.hits.HitMap.AddRect(pr.ID, tableLeft+pr.X, footerY, pr.Width, 1, nil)
		}
	}
}

// indent prefixes every line with n spaces.
func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
