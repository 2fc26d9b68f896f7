package monitor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/marcus/scout/pkg/modal"
)

// openDetail shows the scouting report modal for one player.
func (m *Model) openDetail(row playerRow) tea.Cmd {
	m.detailTarget = &row

	dlg := modal.New(row.Name,
		modal.WithWidth(64),
		modal.WithPrimaryAction("edit"),
	)

	dlg.AddSection(modal.Text(playerSummaryLine(row)))
	if row.Retired {
		dlg.AddSection(modal.MutedText("Retired"))
	}

	if strings.TrimSpace(row.Notes) != "" {
		notes := row.Notes
		dlg.AddSection(modal.Spacer())
		dlg.AddSection(modal.Custom("notes", func(contentWidth int) string {
			return renderMarkdown(notes, contentWidth)
		}))
	}

	dlg.AddSection(modal.Spacer())
	dlg.AddSection(modal.Buttons(
		modal.Btn("Edit", "edit"),
		modal.Btn("Retire", "retire"),
		modal.Btn("Close", modal.ActionClose),
	))

	m.dialog = dlg
	return dlg.Open(m)
}

// detailRow returns the player the open detail modal is showing.
func (m *Model) detailRow() (playerRow, bool) {
	if m.detailTarget == nil {
		return playerRow{}, false
	}
	return *m.detailTarget, true
}

// playerSummaryLine renders the one-line stat summary under the title.
func playerSummaryLine(row playerRow) string {
	parts := []string{row.Position.Label()}
	if row.TeamName != "" {
		parts = append(parts, row.TeamName)
	} else {
		parts = append(parts, "Free agent")
	}
	if row.Age > 0 {
		parts = append(parts, fmt.Sprintf("Age %d", row.Age))
	}
	if row.HeightCM > 0 {
		parts = append(parts, fmt.Sprintf("%d cm", row.HeightCM))
	}
	if row.Rating != nil {
		parts = append(parts, fmt.Sprintf("Rated %.1f", *row.Rating))
	} else {
		parts = append(parts, "Unrated")
	}
	return strings.Join(parts, " · ")
}

// renderMarkdown renders scouting notes for terminal display. Falls back
// to the raw text when rendering fails.
func renderMarkdown(text string, width int) string {
	if width < 10 {
		width = 10
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
