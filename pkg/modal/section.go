package modal

import (
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/scout/pkg/focus"
)

// RenderedSection is the output of one section render: its content plus
// the focusable elements it contributed, with offsets relative to the
// section's own origin. The modal translates them into its focus surface
// and mouse hit regions using a render-then-measure pass.
type RenderedSection struct {
	Content    string
	Focusables []focus.Focusable
}

// Section is one block of modal body content.
type Section interface {
	// Render produces the section content for the given inner width.
	Render(contentWidth int, focusID, hoverID string) RenderedSection
	// Update handles input routed to this section. A non-empty action
	// bubbles out of Modal.HandleKey.
	Update(msg tea.Msg, focusID string) (action string, cmd tea.Cmd)
}

// textSection renders static, wrapped text.
type textSection struct {
	text  string
	style lipgloss.Style
}

// Text creates a static text section, wrapped to the modal width.
func Text(text string) Section {
	return &textSection{text: text, style: bodyStyle}
}

// MutedText creates a dimmed static text section.
func MutedText(text string) Section {
	return &textSection{text: text, style: mutedStyle}
}

func (s *textSection) Render(contentWidth int, _, _ string) RenderedSection {
	return RenderedSection{Content: s.style.Width(contentWidth).Render(s.text)}
}

func (s *textSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

// spacerSection renders one blank line.
type spacerSection struct{}

// Spacer creates a blank-line section.
func Spacer() Section { return spacerSection{} }

func (spacerSection) Render(int, string, string) RenderedSection {
	return RenderedSection{Content: ""}
}

func (spacerSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

// customSection is the escape hatch for opaque caller content (markdown
// bodies, embedded forms). The renderer receives the content width; the
// updater, when set, receives input while the section's focusable (if any)
// holds focus.
type customSection struct {
	id        string
	renderFn  func(contentWidth int) string
	updateFn  func(msg tea.Msg) (string, tea.Cmd)
	focusable bool
}

// CustomOption configures a Custom section.
type CustomOption func(*customSection)

// Focusable marks the custom section as a single focusable element.
func Focusable() CustomOption {
	return func(s *customSection) { s.focusable = true }
}

// OnUpdate attaches an input handler invoked while the section is focused.
func OnUpdate(fn func(msg tea.Msg) (string, tea.Cmd)) CustomOption {
	return func(s *customSection) { s.updateFn = fn }
}

// Custom creates an opaque content section.
func Custom(id string, render func(contentWidth int) string, opts ...CustomOption) Section {
	s := &customSection{id: id, renderFn: render}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *customSection) Render(contentWidth int, _, _ string) RenderedSection {
	content := s.renderFn(contentWidth)
	rs := RenderedSection{Content: content}
	if s.focusable {
		rs.Focusables = []focus.Focusable{{
			ID:     s.id,
			Width:  contentWidth,
			Height: lipgloss.Height(content),
		}}
	}
	return rs
}

func (s *customSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if s.updateFn == nil {
		return "", nil
	}
	if s.focusable && focusID != s.id {
		return "", nil
	}
	return s.updateFn(msg)
}
