package monitor

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/marcus/scout/internal/config"
	"github.com/marcus/scout/pkg/modal"
	"github.com/marcus/scout/pkg/monitor/mouse"
	"github.com/marcus/scout/pkg/pagination"
)

// playerSavedMsg reports a completed create or update.
type playerSavedMsg struct {
	Name string
	Err  error
}

// playerDeletedMsg reports a completed delete.
type playerDeletedMsg struct {
	Name string
	Err  error
}

// statusMsg sets a transient status line message.
type statusMsg struct {
	Text  string
	IsErr bool
}

// Update routes messages by mode: form first, then modal, then search,
// then the roster itself.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case rosterMsg:
		m.loading = false
		m.tbl.Loading = false
		m.all = msg.Players
		m.teams = msg.Teams
		m.refreshTable()
		return m, nil

	case rosterErrMsg:
		m.loading = false
		m.tbl.Loading = false
		m.status = fmt.Sprintf("load failed: %v", msg.Err)
		m.statusErr = true
		return m, nil

	case pagination.PageMsg:
		m.pager.SetPage(msg.Page)
		m.tbl.SetCursor(0)
		m.refreshTable()
		return m, nil

	case playerSavedMsg:
		if msg.Err != nil {
			m.status = fmt.Sprintf("save failed: %v", msg.Err)
			m.statusErr = true
			return m, nil
		}
		m.status = fmt.Sprintf("saved %s", msg.Name)
		m.statusErr = false
		m.tbl.Loading = true
		return m, fetchRoster(m.database, m.includeRetired)

	case playerDeletedMsg:
		m.deleting = false
		m.pendingDelete = nil
		if m.dialog != nil {
			m.dialog.Close()
			m.dialog = nil
		}
		if msg.Err != nil {
			m.status = fmt.Sprintf("delete failed: %v", msg.Err)
			m.statusErr = true
			return m, nil
		}
		m.status = fmt.Sprintf("released %s", msg.Name)
		m.statusErr = false
		m.tbl.Loading = true
		return m, fetchRoster(m.database, m.includeRetired)

	case statusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Everything else (spinner ticks, form internals) flows to the
	// active overlay.
	if m.form != nil {
		return m.updateForm(msg)
	}
	if m.dialog != nil && m.dialog.IsOpen() {
		return m, m.dialog.Update(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if m.dialog != nil && m.dialog.IsOpen() {
		action, cmd := m.dialog.HandleKey(msg)
		return m, tea.Batch(cmd, m.dialogAction(action))
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		m.searching = true
		m.searchInput.SetValue(m.query)
		return m, m.searchInput.Focus()

	case "esc":
		if m.query != "" {
			m.query = ""
			m.searchInput.SetValue("")
			m.pager.SetPage(1)
			m.refreshTable()
		}
		return m, nil

	case "a":
		return m, m.openForm(nil)

	case "e":
		if row, ok := m.cursorRow(); ok {
			return m, m.openForm(&row)
		}
		return m, nil

	case "d":
		if row, ok := m.cursorRow(); ok {
			return m, m.openDeleteConfirm(row)
		}
		return m, nil

	case "t":
		m.includeRetired = !m.includeRetired
		config.SetIncludeRetired(m.baseDir, m.includeRetired)
		m.tbl.Loading = true
		return m, fetchRoster(m.database, m.includeRetired)

	case "y":
		if row, ok := m.cursorRow(); ok {
			return m, copyPlayerCmd(row)
		}
		return m, nil

	case "R":
		m.tbl.Loading = true
		return m, fetchRoster(m.database, m.includeRetired)

	case "1", "2", "3", "4", "5", "6":
		idx, _ := strconv.Atoi(msg.String())
		if idx >= 1 && idx <= len(m.tbl.Columns) {
			m.toggleSort(m.tbl.Columns[idx-1].Key)
		}
		return m, nil
	}

	// Cursor movement, enter, page keys.
	tbl, cmd := m.tbl.Update(msg)
	m.tbl = tbl
	return m, cmd
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.query = ""
		m.searchInput.SetValue("")
		m.pager.SetPage(1)
		m.refreshTable()
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if q := m.searchInput.Value(); q != m.query {
		m.query = q
		m.pager.SetPage(1)
		m.tbl.SetCursor(0)
		m.refreshTable()
	}
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	action := m.hits.HandleMouse(msg)

	switch action.Type {
	case mouse.ActionHover:
		if m.dialog != nil && m.dialog.IsOpen() {
			if action.Region != nil {
				m.dialog.SetHover(action.Region.ID)
			} else {
				m.dialog.SetHover("")
			}
		}
		return m, nil

	case mouse.ActionScrollUp:
		if m.dialog == nil || !m.dialog.IsOpen() {
			m.tbl.SetCursor(m.tbl.Cursor() - 1)
		}
		return m, nil

	case mouse.ActionScrollDown:
		if m.dialog == nil || !m.dialog.IsOpen() {
			m.tbl.SetCursor(m.tbl.Cursor() + 1)
		}
		return m, nil

	case mouse.ActionClick:
		return m.handleClick(action)
	}
	return m, nil
}

func (m *Model) handleClick(action mouse.Action) (tea.Model, tea.Cmd) {
	if m.dialog != nil && m.dialog.IsOpen() {
		regionID := modal.RegionBackdrop
		if action.Region != nil {
			regionID = action.Region.ID
		}
		dialogAction, cmd := m.dialog.HandleClick(regionID)
		return m, tea.Batch(cmd, m.dialogAction(dialogAction))
	}

	if action.Region == nil {
		return m, nil
	}

	id := action.Region.ID
	switch {
	case strings.HasPrefix(id, "hdr:"):
		m.toggleSort(strings.TrimPrefix(id, "hdr:"))
		return m, nil

	case strings.HasPrefix(id, "row:"):
		idx, err := strconv.Atoi(strings.TrimPrefix(id, "row:"))
		if err != nil {
			return m, nil
		}
		if action.IsDoubleClick {
			return m, m.tbl.SelectRow(idx)
		}
		m.tbl.SetCursor(idx)
		return m, nil

	case id == "prev" || id == "next" || strings.HasPrefix(id, "page:"):
		return m, m.pager.HandleClick(id)
	}
	return m, nil
}

// toggleSort advances the sort cycle on a column, resets to the first
// page and persists the preference.
func (m *Model) toggleSort(key string) {
	m.tbl.ToggleSort(key)
	m.pager.SetPage(1)
	m.tbl.SetCursor(0)
	m.refreshTable()
	config.SetSort(m.baseDir, m.tbl.Sort.Key, sortDirString(m.tbl.Sort.Dir))
}

// cursorRow returns the row under the cursor in the current page view.
func (m *Model) cursorRow() (playerRow, bool) {
	rows := m.tbl.VisibleRows()
	i := m.tbl.Cursor()
	if i < 0 || i >= len(rows) {
		return playerRow{}, false
	}
	return rows[i], true
}

// dialogAction reacts to an action string produced by the open modal.
func (m *Model) dialogAction(action string) tea.Cmd {
	switch action {
	case "":
		return nil

	case modal.ActionClose, "cancel":
		m.dialog.Close()
		m.dialog = nil
		m.pendingDelete = nil
		return nil

	case "delete":
		if m.pendingDelete == nil || m.deleting {
			return nil
		}
		m.deleting = true
		row := *m.pendingDelete
		return func() tea.Msg {
			err := m.database.DeletePlayer(row.ID)
			return playerDeletedMsg{Name: row.Name, Err: err}
		}

	case "retire":
		if row, ok := m.detailRow(); ok {
			m.dialog.Close()
			m.dialog = nil
			return func() tea.Msg {
				err := m.database.RetirePlayer(row.ID)
				return playerSavedMsg{Name: row.Name, Err: err}
			}
		}
		return nil

	case "edit":
		if row, ok := m.detailRow(); ok {
			m.dialog.Close()
			m.dialog = nil
			return m.openForm(&row)
		}
		return nil
	}
	return nil
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		m.formPlayer = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.submitForm()
	}
	if m.form.State == huh.StateAborted {
		m.form = nil
		m.formPlayer = nil
		return m, nil
	}
	return m, cmd
}
