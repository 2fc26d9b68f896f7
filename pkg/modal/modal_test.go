package modal

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// fakeHost is a host view with a scroll offset and a focus cursor.
type fakeHost struct {
	offset  int
	focused string
}

func (h *fakeHost) ScrollOffset() int       { return h.offset }
func (h *fakeHost) SetScrollOffset(off int) { h.offset = off }
func (h *fakeHost) CurrentFocus() string    { return h.focused }
func (h *fakeHost) SetFocus(id string)      { h.focused = id }

// hitRecorder records registered hit regions.
type hitRecorder struct {
	rects map[string][4]int
}

func newHitRecorder() *hitRecorder {
	return &hitRecorder{rects: make(map[string][4]int)}
}

func (r *hitRecorder) AddRect(id string, x, y, w, h int, _ any) {
	r.rects[id] = [4]int{x, y, w, h}
}

func confirmModal() *Modal {
	return New("Release player").
		AddSection(Text("This removes the player from the roster.")).
		AddSection(Spacer()).
		AddSection(Buttons(
			Btn("Release", "release", BtnDanger()),
			Btn("Cancel", ActionClose),
		))
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func TestOpenCapturesHostState(t *testing.T) {
	host := &fakeHost{offset: 12, focused: "roster"}
	m := confirmModal()

	m.Open(host)
	if !m.IsOpen() {
		t.Fatal("modal should be open")
	}
	m.Render(80, 24, nil)

	// The scroll lock holds the pre-open offset even if the background
	// offset changes while the modal is up.
	host.offset = 99
	m.Close()

	if host.offset != 12 {
		t.Errorf("offset %d after close, want 12", host.offset)
	}
	if host.focused != "roster" {
		t.Errorf("focus %q after close, want roster", host.focused)
	}
}

func TestInitialFocusDeferredToRender(t *testing.T) {
	host := &fakeHost{focused: "roster"}
	m := confirmModal()

	m.Open(host)
	if m.CurrentFocus() != "" {
		t.Errorf("focus moved before render: %q", m.CurrentFocus())
	}

	m.Render(80, 24, nil)
	if m.CurrentFocus() != "release" {
		t.Errorf("initial focus %q, want release", m.CurrentFocus())
	}
}

func TestCloseBeforeRenderCancelsInitialFocus(t *testing.T) {
	host := &fakeHost{focused: "roster"}
	m := confirmModal()

	m.Open(host)
	m.Close()
	// A late render (one stale frame) must not move focus.
	m.Render(80, 24, nil)

	if m.CurrentFocus() != "" {
		t.Errorf("cancelled initial focus still landed: %q", m.CurrentFocus())
	}
}

func TestTabWrapsAcrossButtons(t *testing.T) {
	m := confirmModal()
	m.Open(&fakeHost{})
	m.Render(80, 24, nil)

	// Focus starts on the first button; Tab moves to the last.
	m.HandleKey(keyMsg(tea.KeyTab))
	if m.CurrentFocus() != ActionClose {
		t.Fatalf("focus %q, want %q", m.CurrentFocus(), ActionClose)
	}

	// Tab on the last focusable wraps to the first.
	m.HandleKey(keyMsg(tea.KeyTab))
	if m.CurrentFocus() != "release" {
		t.Errorf("focus %q after wrap, want release", m.CurrentFocus())
	}

	// Shift+Tab on the first wraps back to the last.
	m.HandleKey(keyMsg(tea.KeyShiftTab))
	if m.CurrentFocus() != ActionClose {
		t.Errorf("focus %q after backward wrap, want %q", m.CurrentFocus(), ActionClose)
	}
}

func TestEnterActivatesFocusedButton(t *testing.T) {
	m := confirmModal()
	m.Open(&fakeHost{})
	m.Render(80, 24, nil)

	action, _ := m.HandleKey(keyMsg(tea.KeyEnter))
	if action != "release" {
		t.Errorf("action %q, want release", action)
	}
}

func TestEscCloseTrigger(t *testing.T) {
	m := confirmModal()
	m.Open(&fakeHost{})
	m.Render(80, 24, nil)

	action, _ := m.HandleKey(keyMsg(tea.KeyEsc))
	if action != ActionClose {
		t.Errorf("esc action %q, want %q", action, ActionClose)
	}

	blocked := New("pinned", WithCloseOnEsc(false))
	blocked.Open(&fakeHost{})
	blocked.Render(80, 24, nil)
	if action, _ := blocked.HandleKey(keyMsg(tea.KeyEsc)); action != "" {
		t.Errorf("esc should be ignored, got %q", action)
	}
}

func TestBackdropClickCloseTrigger(t *testing.T) {
	m := confirmModal()
	m.Open(&fakeHost{})
	m.Render(80, 24, nil)

	if action, _ := m.HandleClick(RegionBackdrop); action != ActionClose {
		t.Errorf("backdrop click action %q, want %q", action, ActionClose)
	}
	// A click on the modal surface itself never closes.
	if action, _ := m.HandleClick(RegionSurface); action != "" {
		t.Errorf("surface click action %q, want none", action)
	}
	if action, _ := m.HandleClick(RegionClose); action != ActionClose {
		t.Errorf("close button action %q, want %q", action, ActionClose)
	}

	pinned := New("pinned", WithCloseOnBackdrop(false))
	pinned.Open(&fakeHost{})
	pinned.Render(80, 24, nil)
	if action, _ := pinned.HandleClick(RegionBackdrop); action != "" {
		t.Errorf("backdrop click should be ignored, got %q", action)
	}
}

func TestButtonClickFocusesAndActivates(t *testing.T) {
	m := confirmModal()
	m.Open(&fakeHost{})
	m.Render(80, 24, nil)

	action, _ := m.HandleClick(ActionClose)
	if action != ActionClose {
		t.Errorf("button click action %q, want %q", action, ActionClose)
	}
	if m.CurrentFocus() != ActionClose {
		t.Errorf("click should focus the button, got %q", m.CurrentFocus())
	}
}

func TestLoadingButtonIsDisabled(t *testing.T) {
	loading := true
	m := New("Saving").
		AddSection(Buttons(
			Btn("Save", "save", BtnLoading(&loading)),
			Btn("Cancel", ActionClose),
		))
	m.Open(&fakeHost{})
	m.Render(80, 24, nil)

	// The loading button is not focusable, so initial focus skips it.
	if m.CurrentFocus() != ActionClose {
		t.Errorf("focus %q, want %q", m.CurrentFocus(), ActionClose)
	}
	// Clicking it does nothing.
	if action, _ := m.HandleClick("save"); action != "" {
		t.Errorf("loading button click emitted %q", action)
	}

	// Once loading clears, the button is focusable again.
	loading = false
	m.Render(80, 24, nil)
	if action, _ := m.HandleClick("save"); action != "save" {
		t.Errorf("action %q after loading cleared, want save", action)
	}
}

func TestPrimaryActionOnEnterWithoutFocus(t *testing.T) {
	m := New("Note", WithPrimaryAction("ack")).
		AddSection(Text("Nothing focusable here."))
	m.Open(&fakeHost{})
	m.Render(80, 24, nil)

	action, _ := m.HandleKey(keyMsg(tea.KeyEnter))
	if action != "ack" {
		t.Errorf("action %q, want ack", action)
	}
}

func TestCloseIdempotentTeardown(t *testing.T) {
	host := &fakeHost{offset: 3, focused: "roster"}
	m := confirmModal()
	m.Open(host)
	m.Render(80, 24, nil)

	m.Close()
	host.offset = 55
	host.focused = "elsewhere"
	m.Close() // teardown path: must not disturb anything again

	if host.offset != 55 || host.focused != "elsewhere" {
		t.Errorf("second close disturbed host: offset=%d focus=%q", host.offset, host.focused)
	}
}

func TestStackedModalsCloseOutOfOrder(t *testing.T) {
	host := &fakeHost{offset: 20, focused: "roster"}

	first := confirmModal()
	first.Open(host)
	first.Render(80, 24, nil)

	second := New("On top").AddSection(Buttons(Btn("OK", "ok")))
	second.Open(host)
	second.Render(80, 24, nil)

	// Close the first-opened modal first (non-LIFO).
	host.offset = 77
	first.Close()
	if host.offset != 20 {
		t.Errorf("offset %d after first close, want 20", host.offset)
	}

	host.offset = 88
	second.Close()
	if host.offset != 20 {
		t.Errorf("offset %d after second close, want 20", host.offset)
	}
	if second.IsOpen() || first.IsOpen() {
		t.Error("both modals should be closed")
	}
}

func TestRenderRegistersHitRegions(t *testing.T) {
	m := confirmModal()
	m.Open(&fakeHost{})
	hits := newHitRecorder()
	m.Render(80, 24, hits)

	backdrop, ok := hits.rects[RegionBackdrop]
	if !ok {
		t.Fatal("backdrop region not registered")
	}
	if backdrop != [4]int{0, 0, 80, 24} {
		t.Errorf("backdrop rect %v, want full screen", backdrop)
	}

	surface, ok := hits.rects[RegionSurface]
	if !ok {
		t.Fatal("surface region not registered")
	}
	if surface[2] <= 0 || surface[3] <= 0 {
		t.Errorf("surface rect %v has no area", surface)
	}

	for _, id := range []string{RegionClose, "release", ActionClose} {
		if _, ok := hits.rects[id]; !ok {
			t.Errorf("region %s not registered", id)
		}
	}
}

func TestRenderClosedModalIsEmpty(t *testing.T) {
	m := confirmModal()
	if v := m.Render(80, 24, nil); v != "" {
		t.Errorf("closed modal rendered %q", v)
	}
}

func TestRenderShowsTitleAndButtons(t *testing.T) {
	m := confirmModal()
	m.Open(&fakeHost{})
	v := m.Render(80, 24, nil)

	for _, want := range []string{"Release player", "Release", "Cancel", "✕"} {
		if !strings.Contains(v, want) {
			t.Errorf("render missing %q", want)
		}
	}
}
