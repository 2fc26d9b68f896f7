package monitor

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/scout/pkg/modal"
)

// openDeleteConfirm shows the destructive release confirmation. The
// Release button carries the loading flag so the modal disables it while
// the delete runs.
func (m *Model) openDeleteConfirm(row playerRow) tea.Cmd {
	m.pendingDelete = &row

	dlg := modal.New("Release player",
		modal.WithVariant(modal.VariantDanger),
		modal.WithCloseOnBackdrop(false),
	)
	dlg.AddSection(modal.Text(fmt.Sprintf("Release %s from the scouting roster?", row.Name)))
	dlg.AddSection(modal.MutedText("This permanently deletes the player and all scouting notes."))
	dlg.AddSection(modal.Spacer())
	dlg.AddSection(modal.Buttons(
		modal.Btn("Release", "delete", modal.BtnDanger(), modal.BtnLoading(&m.deleting)),
		modal.Btn("Cancel", "cancel"),
	))

	m.dialog = dlg
	return dlg.Open(m)
}
