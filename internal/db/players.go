package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/marcus/scout/internal/models"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// PlayerFilter narrows and orders a player listing.
type PlayerFilter struct {
	IncludeRetired bool
	TeamID         int64  // 0 means all teams
	Position       string // empty means all positions
	SortKey        string // name, position, age, rating, team; empty for insertion order
	SortDesc       bool
	Page           int
	PageSize       int
}

// playerSortColumns whitelists the ORDER BY targets a filter may name.
var playerSortColumns = map[string]string{
	"name":     "p.name COLLATE NOCASE",
	"position": "p.position",
	"age":      "p.age",
	"rating":   "p.rating",
	"team":     "t.name COLLATE NOCASE",
}

const playerSelect = `
	SELECT p.id, p.name, p.position, p.team_id, p.age, p.height_cm,
	       p.rating, p.notes, p.retired, p.created_at, p.updated_at
	FROM players p
	LEFT JOIN teams t ON t.id = p.team_id`

// CreatePlayer inserts a player and returns it with its assigned ID.
func (db *DB) CreatePlayer(p *models.Player) (*models.Player, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	res, err := db.conn.Exec(
		`INSERT INTO players (name, position, team_id, age, height_cm, rating, notes, retired, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, string(p.Position), p.TeamID, p.Age, p.HeightCM,
		ratingArg(p.Rating), p.Notes, p.Retired, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert player: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("player id: %w", err)
	}

	created := *p
	created.ID = id
	created.CreatedAt = now
	created.UpdatedAt = now
	return &created, nil
}

// GetPlayer fetches one player by ID.
func (db *DB) GetPlayer(id int64) (*models.Player, error) {
	row := db.conn.QueryRow(playerSelect+` WHERE p.id = ?`, id)
	p, err := scanPlayerRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("player %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	return p, nil
}

// UpdatePlayer rewrites all mutable fields of a player.
func (db *DB) UpdatePlayer(p *models.Player) error {
	if err := p.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	res, err := db.conn.Exec(
		`UPDATE players
		 SET name = ?, position = ?, team_id = ?, age = ?, height_cm = ?,
		     rating = ?, notes = ?, retired = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name, string(p.Position), p.TeamID, p.Age, p.HeightCM,
		ratingArg(p.Rating), p.Notes, p.Retired, now, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("player %d: %w", p.ID, ErrNotFound)
	}
	p.UpdatedAt = now
	return nil
}

// DeletePlayer removes a player permanently.
func (db *DB) DeletePlayer(id int64) error {
	res, err := db.conn.Exec(`DELETE FROM players WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("player %d: %w", id, ErrNotFound)
	}
	return nil
}

// RetirePlayer marks a player retired without deleting their record.
func (db *DB) RetirePlayer(id int64) error {
	res, err := db.conn.Exec(
		`UPDATE players SET retired = 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("retire player: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("retire player: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("player %d: %w", id, ErrNotFound)
	}
	return nil
}

// ListPlayers returns one page of players matching the filter, plus the
// totals the pagination controls need.
func (db *DB) ListPlayers(f PlayerFilter) (*PagedResult[models.Player], error) {
	var conds []string
	var args []any

	if !f.IncludeRetired {
		conds = append(conds, "p.retired = 0")
	}
	if f.TeamID != 0 {
		conds = append(conds, "p.team_id = ?")
		args = append(args, f.TeamID)
	}
	if f.Position != "" {
		conds = append(conds, "p.position = ?")
		args = append(args, f.Position)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	orderBy := "p.id"
	if col, ok := playerSortColumns[f.SortKey]; ok {
		dir := "ASC"
		if f.SortDesc {
			dir = "DESC"
		}
		// NULL ratings always sort after real values
		orderBy = fmt.Sprintf("(%s IS NULL), %s %s, p.id", col, col, dir)
	}

	countQuery := "SELECT COUNT(*) FROM players p LEFT JOIN teams t ON t.id = p.team_id" + where
	baseQuery := playerSelect + where + " ORDER BY " + orderBy

	return pagedQuery(db.conn, countQuery, baseQuery, args, f.Page, f.PageSize, func(rows *sql.Rows) (models.Player, error) {
		p, err := scanPlayerRow(rows.Scan)
		if err != nil {
			return models.Player{}, err
		}
		return *p, nil
	})
}

// AllPlayers returns every player matching the filter, unpaged. Used by
// the dashboard's fuzzy search, which matches across the whole roster.
func (db *DB) AllPlayers(includeRetired bool) ([]models.Player, error) {
	query := playerSelect
	if !includeRetired {
		query += " WHERE p.retired = 0"
	}
	query += " ORDER BY p.id"

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		p, err := scanPlayerRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// CountPlayers returns the number of players, optionally including retired.
func (db *DB) CountPlayers(includeRetired bool) (int, error) {
	query := "SELECT COUNT(*) FROM players"
	if !includeRetired {
		query += " WHERE retired = 0"
	}
	var count int
	if err := db.conn.QueryRow(query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return count, nil
}

func scanPlayerRow(scan func(...any) error) (*models.Player, error) {
	var p models.Player
	var position string
	var rating sql.NullFloat64

	err := scan(&p.ID, &p.Name, &position, &p.TeamID, &p.Age, &p.HeightCM,
		&rating, &p.Notes, &p.Retired, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	p.Position = models.Position(position)
	if rating.Valid {
		v := rating.Float64
		p.Rating = &v
	}
	return &p, nil
}

func ratingArg(r *float64) any {
	if r == nil {
		return nil
	}
	return *r
}
