package db

import (
	"database/sql"
	"fmt"

	"github.com/marcus/scout/internal/models"
)

// CreateMatch records a fixture between two teams.
func (db *DB) CreateMatch(m *models.Match) (*models.Match, error) {
	if m.HomeTeamID == m.AwayTeamID {
		return nil, fmt.Errorf("a team cannot play itself")
	}

	res, err := db.conn.Exec(
		`INSERT INTO matches (home_team_id, away_team_id, played_at, home_score, away_score)
		 VALUES (?, ?, ?, ?, ?)`,
		m.HomeTeamID, m.AwayTeamID, m.PlayedAt, m.HomeScore, m.AwayScore,
	)
	if err != nil {
		return nil, fmt.Errorf("insert match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("match id: %w", err)
	}

	created := *m
	created.ID = id
	return &created, nil
}

// ListMatches returns one page of matches, most recent first.
func (db *DB) ListMatches(page, pageSize int) (*PagedResult[models.Match], error) {
	countQuery := `SELECT COUNT(*) FROM matches`
	baseQuery := `SELECT id, home_team_id, away_team_id, played_at, home_score, away_score
		FROM matches ORDER BY played_at DESC, id DESC`

	return pagedQuery(db.conn, countQuery, baseQuery, nil, page, pageSize, scanMatch)
}

// MatchesForTeam returns every match a team played, most recent first.
func (db *DB) MatchesForTeam(teamID int64) ([]models.Match, error) {
	rows, err := db.conn.Query(
		`SELECT id, home_team_id, away_team_id, played_at, home_score, away_score
		 FROM matches
		 WHERE home_team_id = ? OR away_team_id = ?
		 ORDER BY played_at DESC, id DESC`,
		teamID, teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var matches []models.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func scanMatch(rows *sql.Rows) (models.Match, error) {
	var m models.Match
	err := rows.Scan(&m.ID, &m.HomeTeamID, &m.AwayTeamID, &m.PlayedAt, &m.HomeScore, &m.AwayScore)
	return m, err
}
