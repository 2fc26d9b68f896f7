package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/scout/pkg/focus"
)

// ButtonDef describes one footer action button.
type ButtonDef struct {
	label   string
	action  string
	danger  bool
	icon    string
	loading *bool // nil means never loading
}

// BtnOption configures a button.
type BtnOption func(*ButtonDef)

// Btn creates a button that emits action when activated.
func Btn(label, action string, opts ...BtnOption) ButtonDef {
	b := ButtonDef{label: label, action: action}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// BtnDanger styles the button as destructive.
func BtnDanger() BtnOption {
	return func(b *ButtonDef) { b.danger = true }
}

// BtnIcon prefixes the button label with an icon glyph. While the button
// is loading the icon is replaced by a busy indicator.
func BtnIcon(icon string) BtnOption {
	return func(b *ButtonDef) { b.icon = icon }
}

// BtnLoading binds the button's busy flag. While *flag is true the button
// is disabled and shows a spinner in place of its icon.
func BtnLoading(flag *bool) BtnOption {
	return func(b *ButtonDef) { b.loading = flag }
}

func (b ButtonDef) isLoading() bool {
	return b.loading != nil && *b.loading
}

// buttonsSection renders a row of focusable buttons.
type buttonsSection struct {
	buttons []ButtonDef
	spin    spinner.Model
}

// Buttons creates a footer button row. Each button is an independent
// focusable; loading buttons stay visible but cannot be activated.
func Buttons(buttons ...ButtonDef) Section {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &buttonsSection{buttons: buttons, spin: sp}
}

func (s *buttonsSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	var cells []string
	var focusables []focus.Focusable
	x := 0

	for _, b := range s.buttons {
		label := b.label
		switch {
		case b.isLoading():
			label = s.spin.View() + " " + b.label
		case b.icon != "":
			label = b.icon + " " + b.label
		}

		style := buttonStyle
		switch {
		case b.isLoading():
			style = buttonDisabledStyle
		case focusID == b.action && b.danger:
			style = buttonDangerFocusedStyle
		case focusID == b.action:
			style = buttonFocusedStyle
		case hoverID == b.action:
			style = buttonHoverStyle
		}

		cell := style.Render(label)
		w := lipgloss.Width(cell)
		if !b.isLoading() {
			focusables = append(focusables, focus.Focusable{
				ID:      b.action,
				OffsetX: x,
				Width:   w,
				Height:  1,
			})
		}
		cells = append(cells, cell)
		x += w + buttonGap
	}

	return RenderedSection{
		Content:    strings.Join(cells, strings.Repeat(" ", buttonGap)),
		Focusables: focusables,
	}
}

const buttonGap = 2

func (s *buttonsSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !s.anyLoading() {
			return "", nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return "", cmd

	case tea.KeyMsg:
		if msg.String() != "enter" && msg.String() != " " {
			return "", nil
		}
		for _, b := range s.buttons {
			if b.action == focusID && !b.isLoading() {
				return b.action, nil
			}
		}
	}
	return "", nil
}

func (s *buttonsSection) anyLoading() bool {
	for _, b := range s.buttons {
		if b.isLoading() {
			return true
		}
	}
	return false
}

// tick starts the busy indicator animation.
func (s *buttonsSection) tick() tea.Cmd {
	return s.spin.Tick
}
