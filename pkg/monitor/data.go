package monitor

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/marcus/scout/internal/db"
	"github.com/marcus/scout/internal/models"
	"github.com/marcus/scout/pkg/table"
)

// playerRow is one roster table row: a player plus the display fields
// resolved from related records.
type playerRow struct {
	models.Player
	TeamName string
}

// rosterMsg carries a full roster refresh.
type rosterMsg struct {
	Players   []playerRow
	Teams     []models.Team
	Timestamp time.Time
}

// rosterErrMsg reports a failed refresh.
type rosterErrMsg struct {
	Err error
}

// fetchRoster loads players and teams concurrently and resolves team
// names onto each row.
func fetchRoster(database *db.DB, includeRetired bool) tea.Cmd {
	return func() tea.Msg {
		var (
			players []models.Player
			teams   []models.Team
		)

		var g errgroup.Group
		g.Go(func() error {
			var err error
			players, err = database.AllPlayers(includeRetired)
			return err
		})
		g.Go(func() error {
			var err error
			teams, err = database.ListTeams()
			return err
		})
		if err := g.Wait(); err != nil {
			return rosterErrMsg{Err: err}
		}

		names := make(map[int64]string, len(teams))
		for _, t := range teams {
			names[t.ID] = t.Name
		}

		rows := make([]playerRow, len(players))
		for i, p := range players {
			rows[i] = playerRow{Player: p, TeamName: names[p.TeamID]}
		}

		return rosterMsg{Players: rows, Teams: teams, Timestamp: time.Now()}
	}
}

// rosterColumns defines the roster table. Order matters: the 1-9 keys
// toggle sort on the column at that position.
func rosterColumns() []table.Column[playerRow] {
	return []table.Column[playerRow]{
		{
			Key:      "name",
			Label:    "Name",
			Render:   func(r playerRow) string { return r.Name },
			Sortable: true,
		},
		{
			Key:      "position",
			Label:    "Pos",
			Render:   func(r playerRow) string { return string(r.Position) },
			Sortable: true,
			Width:    5,
		},
		{
			Key:      "team",
			Label:    "Team",
			Render:   func(r playerRow) string { return r.TeamName },
			Sortable: true,
		},
		{
			Key:      "age",
			Label:    "Age",
			Render:   func(r playerRow) string { return fmt.Sprintf("%d", r.Age) },
			Value:    func(r playerRow) any { return r.Age },
			Sortable: true,
			Align:    table.AlignRight,
			Width:    5,
		},
		{
			Key:    "rating",
			Label:  "Rating",
			Render: func(r playerRow) string { return r.RatingString() },
			Value: func(r playerRow) any {
				if r.Rating == nil {
					return nil
				}
				return *r.Rating
			},
			Sortable: true,
			Align:    table.AlignRight,
			Width:    8,
		},
		{
			Key:   "status",
			Label: "Status",
			Render: func(r playerRow) string {
				if r.Retired {
					return "retired"
				}
				return "active"
			},
			Width: 8,
		},
	}
}
