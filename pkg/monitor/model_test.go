package monitor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/scout/internal/models"
	"github.com/marcus/scout/pkg/pagination"
	"github.com/marcus/scout/pkg/table"
)

// testModel builds a dashboard model with a preloaded roster and no
// database, exercising the pure presentation paths.
func testModel(t *testing.T, rows []playerRow) *Model {
	t.Helper()
	m := New(nil, t.TempDir())
	m.loading = false
	m.tbl.Loading = false
	m.pageSize = 2
	m.all = rows
	m.refreshTable()
	return m
}

func manyPlayers(n int) []playerRow {
	rows := make([]playerRow, n)
	for i := range rows {
		rows[i] = playerRow{Player: models.Player{
			Name:     string(rune('A'+i)) + " Player",
			Position: models.PositionMidfielder,
			Age:      20 + i,
		}}
	}
	return rows
}

func TestRefreshTablePaging(t *testing.T) {
	m := testModel(t, manyPlayers(5))

	if m.pager.Total != 3 {
		t.Fatalf("total pages: got %d, want 3", m.pager.Total)
	}
	if len(m.tbl.Rows) != 2 {
		t.Fatalf("page 1: got %d rows, want 2", len(m.tbl.Rows))
	}
	if m.tbl.Rows[0].Name != "A Player" {
		t.Errorf("first row: got %q", m.tbl.Rows[0].Name)
	}

	// Page change intent flows back as a PageMsg.
	model, _ := m.Update(pagination.PageMsg{Page: 3})
	m = model.(*Model)
	if len(m.tbl.Rows) != 1 || m.tbl.Rows[0].Name != "E Player" {
		t.Errorf("page 3: got %+v", m.tbl.Rows)
	}
}

func TestRefreshTableSearchResetsScope(t *testing.T) {
	m := testModel(t, testRoster())

	m.query = "river"
	m.pager.SetPage(1)
	m.refreshTable()

	if m.rowCount() != 2 {
		t.Errorf("filtered count: got %d, want 2", m.rowCount())
	}
	if m.pager.Total != 1 {
		t.Errorf("filtered pages: got %d, want 1", m.pager.Total)
	}
}

func TestToggleSortResetsToFirstPage(t *testing.T) {
	m := testModel(t, manyPlayers(5))
	m.pager.SetPage(3)
	m.refreshTable()

	m.toggleSort("age")

	if m.pager.Page != 1 {
		t.Errorf("page after sort: got %d, want 1", m.pager.Page)
	}
	if m.tbl.Sort.Key != "age" || m.tbl.Sort.Dir != table.DirAsc {
		t.Errorf("sort state: got %+v", m.tbl.Sort)
	}

	// Second toggle flips to descending: oldest player first.
	m.toggleSort("age")
	if m.tbl.Sort.Dir != table.DirDesc {
		t.Fatalf("sort dir: got %v, want desc", m.tbl.Sort.Dir)
	}
	if m.tbl.Rows[0].Age != 24 {
		t.Errorf("desc first row age: got %d, want 24", m.tbl.Rows[0].Age)
	}

	// Third toggle clears the sort.
	m.toggleSort("age")
	if m.tbl.Sort.Dir != table.DirNone {
		t.Errorf("sort dir after third toggle: got %v", m.tbl.Sort.Dir)
	}
}

func TestSortKeyShortcuts(t *testing.T) {
	m := testModel(t, manyPlayers(3))

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}})
	m = model.(*Model)
	if m.tbl.Sort.Key != "age" || m.tbl.Sort.Dir != table.DirAsc {
		t.Errorf("key 4 should sort by age asc, got %+v", m.tbl.Sort)
	}

	// The status column (key 6) is not sortable.
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'6'}})
	m = model.(*Model)
	if m.tbl.Sort.Key != "age" {
		t.Errorf("key 6 must not change sort, got %+v", m.tbl.Sort)
	}
}

func TestSearchKeyFlow(t *testing.T) {
	m := testModel(t, testRoster())

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = model.(*Model)
	if !m.searching {
		t.Fatal("slash should enter search mode")
	}

	for _, r := range "river" {
		model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = model.(*Model)
	}
	if m.query != "river" {
		t.Fatalf("query: got %q", m.query)
	}
	if m.rowCount() != 2 {
		t.Errorf("live filter: got %d rows", m.rowCount())
	}

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(*Model)
	if m.searching {
		t.Error("enter should commit and leave search mode")
	}
	if m.query != "river" {
		t.Errorf("query must survive commit, got %q", m.query)
	}

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(*Model)
	if m.query != "" {
		t.Errorf("esc should clear the query, got %q", m.query)
	}
}

func TestDescendingTieOrderDisplayed(t *testing.T) {
	// Three players with the same age: ascending keeps insertion order,
	// descending must display the reverse of that, end to end through
	// refreshTable and the table's visible rows.
	rows := []playerRow{
		{Player: models.Player{Name: "First Tied", Position: models.PositionMidfielder, Age: 30}},
		{Player: models.Player{Name: "Second Tied", Position: models.PositionMidfielder, Age: 30}},
		{Player: models.Player{Name: "Third Tied", Position: models.PositionMidfielder, Age: 30}},
	}
	m := testModel(t, rows)
	m.pageSize = 10

	m.toggleSort("age")
	asc := rowNames(m.tbl.VisibleRows())
	if asc[0] != "First Tied" || asc[1] != "Second Tied" || asc[2] != "Third Tied" {
		t.Fatalf("ascending tie order must be stable, got %v", asc)
	}

	m.toggleSort("age")
	desc := rowNames(m.tbl.VisibleRows())
	if desc[0] != "Third Tied" || desc[1] != "Second Tied" || desc[2] != "First Tied" {
		t.Errorf("descending tie order must reverse the ascending pass, got %v", desc)
	}
}

func rowNames(rows []playerRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestCursorRowFollowsSort(t *testing.T) {
	m := testModel(t, manyPlayers(3))
	m.pageSize = 10
	m.toggleSort("age")
	m.toggleSort("age") // desc: C, B, A

	m.tbl.SetCursor(0)
	row, ok := m.cursorRow()
	if !ok || row.Name != "C Player" {
		t.Errorf("cursor row under desc sort: got %+v", row)
	}
}

func TestHostInterface(t *testing.T) {
	m := testModel(t, manyPlayers(3))
	m.pageSize = 10
	m.refreshTable()

	m.SetScrollOffset(2)
	if m.ScrollOffset() != 2 {
		t.Errorf("scroll offset: got %d", m.ScrollOffset())
	}

	m.SetFocus("modal:surface")
	if m.CurrentFocus() != "modal:surface" {
		t.Errorf("focus: got %q", m.CurrentFocus())
	}
}

func TestParseSortDirRoundTrip(t *testing.T) {
	for _, dir := range []table.Direction{table.DirNone, table.DirAsc, table.DirDesc} {
		if got := parseSortDir(sortDirString(dir)); got != dir {
			t.Errorf("round trip %v: got %v", dir, got)
		}
	}
}
