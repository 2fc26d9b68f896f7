package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/marcus/scout/internal/models"
)

// CreateTeam inserts a team and returns it with its assigned ID.
func (db *DB) CreateTeam(t *models.Team) (*models.Team, error) {
	if t.Name == "" {
		return nil, fmt.Errorf("team name is required")
	}

	res, err := db.conn.Exec(
		`INSERT INTO teams (name, city, league) VALUES (?, ?, ?)`,
		t.Name, t.City, t.League,
	)
	if err != nil {
		return nil, fmt.Errorf("insert team: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("team id: %w", err)
	}

	created := *t
	created.ID = id
	return &created, nil
}

// GetTeam fetches one team by ID.
func (db *DB) GetTeam(id int64) (*models.Team, error) {
	var t models.Team
	err := db.conn.QueryRow(
		`SELECT id, name, city, league FROM teams WHERE id = ?`, id,
	).Scan(&t.ID, &t.Name, &t.City, &t.League)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("team %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	return &t, nil
}

// ListTeams returns all teams ordered by name.
func (db *DB) ListTeams() ([]models.Team, error) {
	rows, err := db.conn.Query(
		`SELECT id, name, city, league FROM teams ORDER BY name COLLATE NOCASE`,
	)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.City, &t.League); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// TeamNames returns a map from team ID to team name for display lookups.
func (db *DB) TeamNames() (map[int64]string, error) {
	teams, err := db.ListTeams()
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}
	return names, nil
}
