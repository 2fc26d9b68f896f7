package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/scout/pkg/focus"
)

// ListItem is one entry of a list section.
type ListItem struct {
	ID    string
	Label string
	Data  any
}

// ListOption configures a List section.
type ListOption func(*listSection)

// WithMaxVisible bounds the number of list rows shown at once.
func WithMaxVisible(n int) ListOption {
	return func(s *listSection) {
		if n > 0 {
			s.maxVisible = n
		}
	}
}

// listSection renders a scrollable, selectable list. The list registers as
// a single focusable so Tab moves past it instead of walking every item.
type listSection struct {
	id           string
	items        []ListItem
	selectedIdx  *int
	maxVisible   int
	scrollOffset int
}

// List creates a list section. selectedIdx points at the host-owned
// selection; nil disables selection entirely.
func List(id string, items []ListItem, selectedIdx *int, opts ...ListOption) Section {
	s := &listSection{
		id:          id,
		items:       items,
		selectedIdx: selectedIdx,
		maxVisible:  5,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *listSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	if len(s.items) == 0 {
		return RenderedSection{Content: mutedStyle.Render("(no items)")}
	}

	visible := s.maxVisible
	if visible > len(s.items) {
		visible = len(s.items)
	}
	selected := 0
	if s.selectedIdx != nil {
		selected = *s.selectedIdx
	}

	// Keep the selection inside the scroll window.
	if selected < s.scrollOffset {
		s.scrollOffset = selected
	} else if selected >= s.scrollOffset+visible {
		s.scrollOffset = selected - visible + 1
	}
	maxScroll := len(s.items) - visible
	if s.scrollOffset > maxScroll {
		s.scrollOffset = maxScroll
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}

	focused := focusID == s.id

	var sb strings.Builder
	height := 0
	for i := 0; i < visible; i++ {
		idx := s.scrollOffset + i
		item := s.items[idx]
		isSelected := s.selectedIdx != nil && *s.selectedIdx == idx

		style := listItemStyle
		switch {
		case isSelected && focused:
			style = listItemFocusedStyle
		case isSelected || item.ID == hoverID:
			style = listItemSelectedStyle
		}

		cursor := "  "
		if isSelected {
			cursor = listCursorStyle.Render("> ")
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(cursor + style.Render(item.Label))
		height++
	}

	content := sb.String()
	if s.scrollOffset > 0 {
		content = mutedStyle.Render("↑ more above") + "\n" + content
		height++
	}
	if s.scrollOffset+visible < len(s.items) {
		content = content + "\n" + mutedStyle.Render("↓ more below")
		height++
	}

	return RenderedSection{
		Content: content,
		Focusables: []focus.Focusable{{
			ID:     s.id,
			Width:  contentWidth,
			Height: height,
		}},
	}
}

func (s *listSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if focusID != s.id || s.selectedIdx == nil {
		return "", nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return "", nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if *s.selectedIdx > 0 {
			*s.selectedIdx--
		}
	case "down", "j":
		if *s.selectedIdx < len(s.items)-1 {
			*s.selectedIdx++
		}
	case "home":
		*s.selectedIdx = 0
	case "end":
		*s.selectedIdx = len(s.items) - 1
	case "enter":
		if *s.selectedIdx >= 0 && *s.selectedIdx < len(s.items) {
			return s.items[*s.selectedIdx].ID, nil
		}
	}
	return "", nil
}
