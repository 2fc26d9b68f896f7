package monitor

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/marcus/scout/internal/models"
)

// playerFormData backs the add/edit form. Numeric fields stay strings
// until submit so the form can validate them as the user types.
type playerFormData struct {
	Name     string
	Position models.Position
	TeamID   int64
	Age      string
	Rating   string
	Notes    string
	Retired  bool
}

// openForm opens the add form (row == nil) or the edit form.
func (m *Model) openForm(row *playerRow) tea.Cmd {
	data := &playerFormData{Position: models.PositionMidfielder}
	editing := row != nil
	if editing {
		data.Name = row.Name
		data.Position = row.Position
		data.TeamID = row.TeamID
		data.Age = strconv.Itoa(row.Age)
		data.Rating = row.RatingString()
		data.Notes = row.Notes
		data.Retired = row.Retired
		m.formPlayer = &row.Player
	} else {
		m.formPlayer = nil
	}
	m.formIsNew = !editing
	m.formData = data

	positionOpts := make([]huh.Option[models.Position], len(models.Positions))
	for i, p := range models.Positions {
		positionOpts[i] = huh.NewOption(p.Label(), p)
	}

	teamOpts := []huh.Option[int64]{huh.NewOption("Free agent", int64(0))}
	for _, t := range m.teams {
		teamOpts = append(teamOpts, huh.NewOption(t.Name, t.ID))
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Name").
			Value(&data.Name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("name is required")
				}
				return nil
			}),
		huh.NewSelect[models.Position]().
			Title("Position").
			Options(positionOpts...).
			Value(&data.Position),
		huh.NewSelect[int64]().
			Title("Team").
			Options(teamOpts...).
			Value(&data.TeamID),
		huh.NewInput().
			Title("Age").
			Value(&data.Age).
			Validate(validateIntField(0, 60)),
		huh.NewInput().
			Title("Rating").
			Description("0-100, leave empty if unrated").
			Value(&data.Rating).
			Validate(validateRatingField),
		huh.NewText().
			Title("Scouting notes").
			Description("markdown supported").
			Value(&data.Notes),
	}
	if editing {
		fields = append(fields, huh.NewConfirm().
			Title("Retired").
			Affirmative("Yes").
			Negative("No").
			Value(&data.Retired))
	}

	m.form = huh.NewForm(huh.NewGroup(fields...))
	return m.form.Init()
}

// submitForm persists the completed form and clears form state.
func (m *Model) submitForm() tea.Cmd {
	data := m.formData
	form := m.form
	m.form = nil
	m.formData = nil
	if data == nil || form == nil {
		return nil
	}

	player := models.Player{
		Name:     strings.TrimSpace(data.Name),
		Position: data.Position,
		TeamID:   data.TeamID,
		Notes:    data.Notes,
		Retired:  data.Retired,
	}
	if data.Age != "" {
		player.Age, _ = strconv.Atoi(strings.TrimSpace(data.Age))
	}
	if strings.TrimSpace(data.Rating) != "" {
		if v, err := strconv.ParseFloat(strings.TrimSpace(data.Rating), 64); err == nil {
			player.Rating = &v
		}
	}

	isNew := m.formIsNew
	prev := m.formPlayer
	m.formPlayer = nil

	return func() tea.Msg {
		if isNew {
			_, err := m.database.CreatePlayer(&player)
			return playerSavedMsg{Name: player.Name, Err: err}
		}
		player.ID = prev.ID
		player.HeightCM = prev.HeightCM
		err := m.database.UpdatePlayer(&player)
		return playerSavedMsg{Name: player.Name, Err: err}
	}
}

func validateIntField(min, max int) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("must be a number")
		}
		if v < min || v > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

func validateRatingField(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v < 0 || v > 100 {
		return fmt.Errorf("must be between 0 and 100")
	}
	return nil
}
