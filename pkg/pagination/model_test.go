package pagination

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// fire runs a command and returns the PageMsg it produced, or -1.
func fire(t *testing.T, cmd tea.Cmd) int {
	t.Helper()
	if cmd == nil {
		return -1
	}
	msg, ok := cmd().(PageMsg)
	if !ok {
		t.Fatalf("expected PageMsg, got %T", cmd())
	}
	return msg.Page
}

func TestSelectEmitsOnlyRealChanges(t *testing.T) {
	m := New(3, 10)

	if got := fire(t, m.Select(5)); got != 5 {
		t.Errorf("Select(5) emitted %d, want 5", got)
	}

	// Current page, zero, and out-of-range pages never emit.
	for _, p := range []int{3, 0, -1, 11, 100} {
		if cmd := m.Select(p); cmd != nil {
			t.Errorf("Select(%d) emitted a command, want nil", p)
		}
	}
}

func TestSelectNoopWithSinglePage(t *testing.T) {
	m := New(1, 1)
	if cmd := m.Select(1); cmd != nil {
		t.Error("Select on a single-page strip should be a no-op")
	}
	if cmd := m.Next(); cmd != nil {
		t.Error("Next on a single-page strip should be a no-op")
	}
}

func TestPrevNextDisabledAtEdges(t *testing.T) {
	m := New(1, 5)
	if cmd := m.Prev(); cmd != nil {
		t.Error("Prev at page 1 should not emit")
	}
	if got := fire(t, m.Next()); got != 2 {
		t.Errorf("Next at page 1 emitted %d, want 2", got)
	}

	m.SetPage(5)
	if cmd := m.Next(); cmd != nil {
		t.Error("Next at the last page should not emit")
	}
	if got := fire(t, m.Prev()); got != 4 {
		t.Errorf("Prev at page 5 emitted %d, want 4", got)
	}
}

func TestUpdateKeys(t *testing.T) {
	m := New(3, 10)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := fire(t, cmd); got != 2 {
		t.Errorf("left emitted %d, want 2", got)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := fire(t, cmd); got != 4 {
		t.Errorf("right emitted %d, want 4", got)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	if got := fire(t, cmd); got != 1 {
		t.Errorf("home emitted %d, want 1", got)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if got := fire(t, cmd); got != 10 {
		t.Errorf("end emitted %d, want 10", got)
	}
}

func TestHandleClick(t *testing.T) {
	m := New(3, 10)

	if got := fire(t, m.HandleClick("page:7")); got != 7 {
		t.Errorf("page:7 click emitted %d, want 7", got)
	}
	if got := fire(t, m.HandleClick("prev")); got != 2 {
		t.Errorf("prev click emitted %d, want 2", got)
	}
	if got := fire(t, m.HandleClick("next")); got != 4 {
		t.Errorf("next click emitted %d, want 4", got)
	}
	if cmd := m.HandleClick("page:3"); cmd != nil {
		t.Error("clicking the current page should be a no-op")
	}
	if cmd := m.HandleClick("page:nonsense"); cmd != nil {
		t.Error("malformed region ID should be a no-op")
	}
}

func TestViewRendersNothingForSinglePage(t *testing.T) {
	m := New(1, 1)
	if v := m.View(); v != "" {
		t.Errorf("expected empty view, got %q", v)
	}
	if len(m.Regions()) != 0 {
		t.Errorf("expected no regions, got %v", m.Regions())
	}
}

func TestViewRegions(t *testing.T) {
	m := New(1, 5)
	v := m.View()
	if v == "" {
		t.Fatal("expected non-empty view")
	}

	ids := make(map[string]bool)
	for _, r := range m.Regions() {
		ids[r.ID] = true
		if r.Width <= 0 {
			t.Errorf("region %s has non-positive width", r.ID)
		}
	}

	// Page 1 is current: not clickable. Prev is disabled: not registered.
	if ids["page:1"] {
		t.Error("current page must not be clickable")
	}
	if ids["prev"] {
		t.Error("disabled prev must not be clickable")
	}
	for _, want := range []string{"page:2", "page:5", "next"} {
		if !ids[want] {
			t.Errorf("missing region %s in %v", want, m.Regions())
		}
	}
}

func TestViewMarksCurrentPage(t *testing.T) {
	m := New(2, 3)
	m.Styles = Styles{} // zero styles keep the output plain for assertions
	v := m.View()
	if !strings.Contains(v, "2") {
		t.Errorf("view missing current page: %q", v)
	}
}
