// Package modal provides a declarative, stacking modal dialog surface for
// bubbletea programs.
//
// A modal is a titled box of sections (text, lists, buttons, opaque custom
// content) layered over the host view. While open it confines Tab cycling
// to its own focusables, suspends background scrolling through an
// acquire/release scroll lock, and on close restores both the scroll
// offset and the previously focused element — on every close path,
// including host teardown.
//
//	m := modal.New("Release player", modal.WithVariant(modal.VariantDanger)).
//	    AddSection(modal.Text("This removes the player from the roster.")).
//	    AddSection(modal.Spacer()).
//	    AddSection(modal.Buttons(
//	        modal.Btn("Release", "release", modal.BtnDanger()),
//	        modal.Btn("Cancel", modal.ActionClose),
//	    ))
package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/scout/pkg/focus"
)

// ActionClose is the action emitted by the built-in close triggers:
// Escape, backdrop click, and the header close button.
const ActionClose = "close"

// Region IDs registered in the host's mouse hit map.
const (
	RegionBackdrop = "modal:backdrop"
	RegionSurface  = "modal:surface"
	RegionClose    = "modal:close"
)

// Host is what a modal needs from its surroundings while open: the
// background scroller to lock and the focus target to restore on close.
type Host interface {
	Scroller
	CurrentFocus() string
	SetFocus(id string)
}

// HitRegistry receives the modal's clickable regions during render.
// mouse.HitMap satisfies it.
type HitRegistry interface {
	AddRect(id string, x, y, w, h int, data any)
}

// DefaultWidth is the modal width when no size option is given.
const DefaultWidth = 50

// Option configures a modal.
type Option func(*Modal)

// WithWidth sets the outer modal width.
func WithWidth(w int) Option {
	return func(m *Modal) {
		if w > 0 {
			m.width = w
		}
	}
}

// WithVariant sets the visual intent (border and primary button color).
func WithVariant(v Variant) Option {
	return func(m *Modal) { m.variant = v }
}

// WithCloseOnEsc controls whether Escape closes the modal. Default true.
func WithCloseOnEsc(close bool) Option {
	return func(m *Modal) { m.closeOnEsc = close }
}

// WithCloseOnBackdrop controls whether clicking the backdrop (and only the
// backdrop, not the modal surface) closes the modal. Default true.
func WithCloseOnBackdrop(close bool) Option {
	return func(m *Modal) { m.closeOnBackdrop = close }
}

// WithShowClose controls the header close button. Default true.
func WithShowClose(show bool) Option {
	return func(m *Modal) { m.showClose = show }
}

// WithPrimaryAction sets the action emitted by Enter when no focusable is
// focused.
func WithPrimaryAction(action string) Option {
	return func(m *Modal) { m.primaryAction = action }
}

// WithHints controls the keyboard hint line at the bottom. Default true.
func WithHints(show bool) Option {
	return func(m *Modal) { m.showHints = show }
}

// Modal is a stacking dialog surface. Each instance owns its focus trap
// and scroll lock independently, so several modals can be open at once and
// close in any order.
type Modal struct {
	title           string
	sections        []Section
	width           int
	variant         Variant
	closeOnEsc      bool
	closeOnBackdrop bool
	showClose       bool
	showHints       bool
	primaryAction   string

	open       bool
	focusID    string
	hoverID    string
	focusables []focus.Focusable
	trap       *focus.Trap
	lock       ScrollLock
	host       Host
	prevFocus  string
}

// New creates a closed modal.
func New(title string, opts ...Option) *Modal {
	m := &Modal{
		title:           title,
		width:           DefaultWidth,
		closeOnEsc:      true,
		closeOnBackdrop: true,
		showClose:       true,
		showHints:       true,
	}
	m.trap = focus.New(m)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddSection appends a body section. Returns the modal for chaining.
func (m *Modal) AddSection(s Section) *Modal {
	m.sections = append(m.sections, s)
	return m
}

// IsOpen reports whether the modal is currently open.
func (m *Modal) IsOpen() bool { return m.open }

// focus.Surface implementation. The modal is its own focus surface: the
// focusables come from the last render pass.

// Focusables returns the focusable elements of the last render.
func (m *Modal) Focusables() []focus.Focusable { return m.focusables }

// CurrentFocus returns the focused element ID, or "".
func (m *Modal) CurrentFocus() string { return m.focusID }

// SetFocus moves focus to the given element ID.
func (m *Modal) SetFocus(id string) { m.focusID = id }

// SetHover updates the hovered element ID (mouse motion).
func (m *Modal) SetHover(id string) { m.hoverID = id }

// Open transitions closed -> open: captures the host's focus target,
// acquires the scroll lock, and engages the focus trap. The first focus
// move is deferred until the next Render, when the focusables exist.
// Opening an open modal is a no-op. The returned command starts section
// animations (busy indicators) and may be nil.
func (m *Modal) Open(host Host) tea.Cmd {
	if m.open {
		return nil
	}
	m.open = true
	m.host = host
	m.focusID = ""
	m.hoverID = ""
	m.focusables = nil
	if host != nil {
		m.prevFocus = host.CurrentFocus()
		m.lock.Acquire(host)
	}
	m.trap.Activate()

	var cmds []tea.Cmd
	for _, s := range m.sections {
		if bs, ok := s.(*buttonsSection); ok {
			cmds = append(cmds, bs.tick())
		}
	}
	return tea.Batch(cmds...)
}

// Close transitions open -> closed: disengages the trap, releases the
// scroll lock (restoring the pre-open offset), and restores the host's
// focus target. Idempotent, so teardown paths can call it unconditionally
// even when no explicit close event fired.
func (m *Modal) Close() {
	if !m.open {
		return
	}
	m.open = false
	m.trap.Deactivate()
	m.lock.Release()
	if m.host != nil {
		m.host.SetFocus(m.prevFocus)
		m.host = nil
	}
	m.focusID = ""
	m.hoverID = ""
}

// HandleKey processes a key press while open. A non-empty action is the
// modal's verdict: ActionClose for the built-in close triggers, otherwise
// whatever a section emitted (a button action, a list selection).
func (m *Modal) HandleKey(msg tea.KeyMsg) (string, tea.Cmd) {
	if !m.open {
		return "", nil
	}

	switch msg.String() {
	case "esc":
		if m.closeOnEsc {
			return ActionClose, nil
		}
		return "", nil

	case "tab":
		if !m.trap.HandleTab(false) {
			m.moveFocus(1)
		}
		return "", nil

	case "shift+tab":
		if !m.trap.HandleTab(true) {
			m.moveFocus(-1)
		}
		return "", nil
	}

	action, cmd := m.routeToSections(msg)
	if action != "" {
		return action, cmd
	}
	if msg.String() == "enter" && m.focusID == "" && m.primaryAction != "" {
		return m.primaryAction, cmd
	}
	return "", cmd
}

// Update routes non-key messages (animation ticks) to the sections.
func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	if !m.open {
		return nil
	}
	_, cmd := m.routeToSections(msg)
	return cmd
}

// HandleClick processes a click on one of the modal's registered regions.
func (m *Modal) HandleClick(regionID string) (string, tea.Cmd) {
	if !m.open {
		return "", nil
	}
	switch regionID {
	case RegionBackdrop:
		if m.closeOnBackdrop {
			return ActionClose, nil
		}
		return "", nil
	case RegionSurface:
		return "", nil
	case RegionClose:
		return ActionClose, nil
	}

	for _, f := range m.focusables {
		if f.ID == regionID {
			m.focusID = regionID
			// A click both focuses and activates.
			return m.routeToSections(tea.KeyMsg{Type: tea.KeyEnter})
		}
	}
	return "", nil
}

func (m *Modal) routeToSections(msg tea.Msg) (string, tea.Cmd) {
	var cmds []tea.Cmd
	var action string
	for _, s := range m.sections {
		a, cmd := s.Update(msg, m.focusID)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if a != "" && action == "" {
			action = a
		}
	}
	return action, tea.Batch(cmds...)
}

// moveFocus walks the focus order without wrapping; the trap owns the
// wrapping at either end.
func (m *Modal) moveFocus(delta int) {
	if len(m.focusables) == 0 {
		return
	}
	idx := -1
	for i, f := range m.focusables {
		if f.ID == m.focusID {
			idx = i
			break
		}
	}
	if idx == -1 {
		m.focusID = m.focusables[0].ID
		return
	}
	idx += delta
	if idx < 0 || idx >= len(m.focusables) {
		return
	}
	m.focusID = m.focusables[idx].ID
}

// Render draws the modal centered over a screenW x screenH backdrop and
// registers its clickable regions. Rendering measures the sections and
// rebuilds the focus surface, then fires any deferred initial focus.
func (m *Modal) Render(screenW, screenH int, hits HitRegistry) string {
	if !m.open {
		return ""
	}

	width := m.width
	if width > screenW-2 {
		width = screenW - 2
	}
	if width < minWidth {
		width = minWidth
	}
	contentWidth := width - boxChrome

	var lines []string
	var focusables []focus.Focusable

	// Header: title left, close button right.
	headerHeight := 0
	if m.title != "" || m.showClose {
		title := titleStyle.Render(m.title)
		if lipgloss.Width(title) > contentWidth {
			title = ansi.Truncate(title, contentWidth, "…")
		}
		header := title
		if m.showClose {
			gap := contentWidth - lipgloss.Width(title) - 1
			if gap < 1 {
				gap = 1
			}
			header = title + strings.Repeat(" ", gap) + closeButtonStyle.Render("✕")
		}
		lines = append(lines, header, "")
		headerHeight = 2
	}

	// Sections, render-then-measure: each section reports its focusables
	// relative to its own origin; offsets are translated as lines stack.
	y := headerHeight
	for _, s := range m.sections {
		rs := s.Render(contentWidth, m.focusID, m.hoverID)
		for _, f := range rs.Focusables {
			f.OffsetY += y
			focusables = append(focusables, f)
		}
		sectionLines := strings.Split(rs.Content, "\n")
		lines = append(lines, sectionLines...)
		y += len(sectionLines)
	}

	if m.showHints {
		lines = append(lines, "", hintStyle.Render("tab:next  enter:select  esc:close"))
	}

	content := strings.Join(lines, "\n")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.variant.borderColor()).
		Padding(0, 1).
		Width(width - 2).
		Render(content)

	boxW := lipgloss.Width(box)
	boxH := lipgloss.Height(box)
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	if boxX < 0 {
		boxX = 0
	}
	if boxY < 0 {
		boxY = 0
	}

	// Content origin inside the box: border plus horizontal padding.
	originX := boxX + 2
	originY := boxY + 1

	if hits != nil {
		hits.AddRect(RegionBackdrop, 0, 0, screenW, screenH, nil)
		hits.AddRect(RegionSurface, boxX, boxY, boxW, boxH, nil)
		if m.showClose {
			hits.AddRect(RegionClose, boxX+boxW-3, boxY+1, 1, 1, nil)
		}
		for _, f := range focusables {
			hits.AddRect(f.ID, originX+f.OffsetX, originY+f.OffsetY, f.Width, f.Height, nil)
		}
	}

	m.focusables = focusables
	m.trap.InitialFocus()

	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}

const (
	minWidth  = 20
	boxChrome = 4 // border + horizontal padding on both sides
)
