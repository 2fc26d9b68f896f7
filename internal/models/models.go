// Package models defines the scouting domain records shared across the
// store, the commands, and the dashboard.
package models

import (
	"fmt"
	"time"
)

// Position is a player's field position.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DF"
	PositionMidfielder Position = "MF"
	PositionForward    Position = "FW"
)

// Positions lists every valid position in display order.
var Positions = []Position{
	PositionGoalkeeper,
	PositionDefender,
	PositionMidfielder,
	PositionForward,
}

// Valid reports whether p is a known position.
func (p Position) Valid() bool {
	for _, known := range Positions {
		if p == known {
			return true
		}
	}
	return false
}

// Label returns the human-readable position name.
func (p Position) Label() string {
	switch p {
	case PositionGoalkeeper:
		return "Goalkeeper"
	case PositionDefender:
		return "Defender"
	case PositionMidfielder:
		return "Midfielder"
	case PositionForward:
		return "Forward"
	default:
		return string(p)
	}
}

// Player is one scouted player.
type Player struct {
	ID        int64
	Name      string
	Position  Position
	TeamID    int64 // 0 means free agent
	Age       int
	HeightCM  int
	Rating    *float64 // nil means not yet rated
	Notes     string   // scouting notes, markdown
	Retired   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields a store write requires.
func (p *Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if !p.Position.Valid() {
		return fmt.Errorf("invalid position: %q", p.Position)
	}
	if p.Age < 0 {
		return fmt.Errorf("age cannot be negative")
	}
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 100) {
		return fmt.Errorf("rating must be within [0, 100]")
	}
	return nil
}

// RatingString formats the rating for display, empty when unrated.
func (p *Player) RatingString() string {
	if p.Rating == nil {
		return ""
	}
	return fmt.Sprintf("%.1f", *p.Rating)
}

// Team is a club a player belongs to.
type Team struct {
	ID     int64
	Name   string
	City   string
	League string
}

// Match is one observed fixture between two teams.
type Match struct {
	ID         int64
	HomeTeamID int64
	AwayTeamID int64
	PlayedAt   time.Time
	HomeScore  int
	AwayScore  int
}

// Score formats the final score for display.
func (m *Match) Score() string {
	return fmt.Sprintf("%d–%d", m.HomeScore, m.AwayScore)
}

// Config is the persisted per-project dashboard configuration.
type Config struct {
	PageSize       int    `json:"page_size,omitempty"`
	IncludeRetired bool   `json:"include_retired,omitempty"`
	SortKey        string `json:"sort_key,omitempty"`
	SortDir        string `json:"sort_dir,omitempty"`
}
