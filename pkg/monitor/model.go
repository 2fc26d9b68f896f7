// Package monitor is the interactive scouting dashboard: a sortable,
// paginated player roster with fuzzy search, detail and edit modals,
// and full mouse support.
package monitor

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/marcus/scout/internal/config"
	"github.com/marcus/scout/internal/db"
	"github.com/marcus/scout/internal/models"
	"github.com/marcus/scout/pkg/modal"
	"github.com/marcus/scout/pkg/monitor/mouse"
	"github.com/marcus/scout/pkg/pagination"
	"github.com/marcus/scout/pkg/table"
)

// focusRoster is the dashboard's resting focus, restored when a modal
// closes.
const focusRoster = "roster"

// Model is the dashboard's bubbletea model. It is used as a pointer
// model: open modals hold a Host reference back into it.
type Model struct {
	database *db.DB
	baseDir  string

	width  int
	height int

	tbl      table.Model[playerRow]
	pager    pagination.Model
	pageSize int

	all            []playerRow // full roster, post retired-filter
	teams          []models.Team
	includeRetired bool
	loading        bool

	searchInput textinput.Model
	searching   bool
	query       string

	dialog        *modal.Modal
	deleting      bool
	pendingDelete *playerRow
	detailTarget  *playerRow

	form       *huh.Form
	formData   *playerFormData
	formPlayer *models.Player
	formIsNew  bool

	hits *mouse.Handler

	focusID      string
	scrollOffset int

	status    string
	statusErr bool
}

// New builds the dashboard over an open database. Persisted sort and
// page-size preferences are applied immediately.
func New(database *db.DB, baseDir string) *Model {
	ti := textinput.New()
	ti.Placeholder = "search players, teams, positions"
	ti.Prompt = "/ "
	ti.CharLimit = 80

	pageSize, err := config.GetPageSize(baseDir)
	if err != nil {
		pageSize = config.DefaultPageSize
	}
	includeRetired, _ := config.GetIncludeRetired(baseDir)

	tbl := table.New(rosterColumns())
	tbl.Presorted = true // ordering is owned by refreshTable
	tbl.Striped = true
	tbl.Loading = true
	tbl.SkeletonRows = 5
	tbl.Empty = &table.EmptyState{
		Icon:    "⚽",
		Title:   "No players scouted yet",
		Message: "Your scouting book is empty.",
		Action:  "press a to add a player, or run 'scout seed'",
	}
	tbl.RowKey = func(r playerRow, _ int) string { return r.Name }

	if key, dir, err := config.GetSort(baseDir); err == nil && key != "" {
		tbl.Sort = table.SortState{Key: key, Dir: parseSortDir(dir)}
	}

	m := &Model{
		database:       database,
		baseDir:        baseDir,
		tbl:            tbl,
		pager:          pagination.New(1, 1),
		pageSize:       pageSize,
		includeRetired: includeRetired,
		searchInput:    ti,
		hits:           mouse.NewHandler(),
		focusID:        focusRoster,
		loading:        true,
	}
	m.tbl.Pager = &m.pager
	m.tbl.OnSelect = func(row playerRow, _ int) tea.Cmd {
		return m.openDetail(row)
	}
	return m
}

// Init starts the first roster load.
func (m *Model) Init() tea.Cmd {
	return fetchRoster(m.database, m.includeRetired)
}

// ScrollOffset implements modal.Host over the roster cursor.
func (m *Model) ScrollOffset() int { return m.tbl.Cursor() }

// SetScrollOffset implements modal.Host.
func (m *Model) SetScrollOffset(off int) { m.tbl.SetCursor(off) }

// CurrentFocus implements modal.Host.
func (m *Model) CurrentFocus() string { return m.focusID }

// SetFocus implements modal.Host.
func (m *Model) SetFocus(id string) { m.focusID = id }

// refreshTable recomputes the visible page from the full roster: fuzzy
// filter, sort, then slice to the current page. The table is in
// Presorted mode and renders the slice as given; sorting the page again
// would reverse descending tie order a second time.
func (m *Model) refreshTable() {
	rows := filterRoster(m.all, m.query)

	if m.tbl.Sort.Dir != table.DirNone {
		for _, col := range m.tbl.Columns {
			if col.Key == m.tbl.Sort.Key {
				rows = table.Sort(rows, col, m.tbl.Sort.Dir)
				break
			}
		}
	}

	totalPages := (len(rows) + m.pageSize - 1) / m.pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	m.pager.SetTotal(totalPages)

	start := (m.pager.Page - 1) * m.pageSize
	if start > len(rows) {
		start = len(rows)
	}
	end := start + m.pageSize
	if end > len(rows) {
		end = len(rows)
	}
	m.tbl.SetRows(rows[start:end])
}

// rowCount returns how many rows match the current query.
func (m *Model) rowCount() int {
	return len(filterRoster(m.all, m.query))
}

func parseSortDir(dir string) table.Direction {
	switch dir {
	case "asc":
		return table.DirAsc
	case "desc":
		return table.DirDesc
	default:
		return table.DirNone
	}
}

func sortDirString(dir table.Direction) string {
	switch dir {
	case table.DirAsc:
		return "asc"
	case table.DirDesc:
		return "desc"
	default:
		return ""
	}
}
