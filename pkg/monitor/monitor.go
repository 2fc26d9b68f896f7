package monitor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/scout/internal/db"
)

// Run starts the dashboard and blocks until the user quits.
func Run(database *db.DB, baseDir string) error {
	m := New(database, baseDir)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
