package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcus/scout/internal/db"
	"github.com/marcus/scout/internal/models"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with sample scouting data",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open(getBaseDir())
		if err != nil {
			return err
		}
		defer database.Close()

		teams := []models.Team{
			{Name: "River FC", City: "Porto", League: "Primeira"},
			{Name: "Harbor United", City: "Leith", League: "Premiership"},
			{Name: "Albion Rovers", City: "Bristol", League: "Championship"},
		}
		teamIDs := make([]int64, len(teams))
		for i, t := range teams {
			created, err := database.CreateTeam(&t)
			if err != nil {
				return fmt.Errorf("seed team %s: %w", t.Name, err)
			}
			teamIDs[i] = created.ID
		}

		rating := func(v float64) *float64 { return &v }
		players := []models.Player{
			{Name: "Eden Silva", Position: models.PositionForward, TeamID: teamIDs[0], Age: 24, HeightCM: 178, Rating: rating(88.5),
				Notes: "## Strengths\n\n- Explosive first step\n- Finishes with **both feet**\n\n## Concerns\n\n- Drifts out of press triggers"},
			{Name: "Ana Costa", Position: models.PositionMidfielder, TeamID: teamIDs[0], Age: 27, HeightCM: 170, Rating: rating(91.0),
				Notes: "Best passer in the league. Progressive carries *well above* positional average."},
			{Name: "Kai Moreno", Position: models.PositionGoalkeeper, TeamID: teamIDs[1], Age: 31, HeightCM: 192, Rating: rating(84.0)},
			{Name: "Sam Ito", Position: models.PositionDefender, TeamID: teamIDs[1], Age: 29, HeightCM: 185, Rating: rating(79.5),
				Notes: "Reads the game early. Aerials need work."},
			{Name: "Luca Brandt", Position: models.PositionDefender, TeamID: teamIDs[2], Age: 21, HeightCM: 188},
			{Name: "Theo Anand", Position: models.PositionMidfielder, TeamID: teamIDs[2], Age: 19, HeightCM: 175,
				Notes: "Raw but the upside is real. Watch again in spring."},
			{Name: "Mara Keller", Position: models.PositionForward, Age: 26, HeightCM: 172, Rating: rating(82.0),
				Notes: "Free agent since January. Fitness unknown."},
			{Name: "Jon Petrov", Position: models.PositionGoalkeeper, TeamID: teamIDs[2], Age: 38, Retired: true, Rating: rating(71.0)},
		}
		for i := range players {
			if _, err := database.CreatePlayer(&players[i]); err != nil {
				return fmt.Errorf("seed player %s: %w", players[i].Name, err)
			}
		}

		base := time.Now().AddDate(0, -2, 0)
		matches := []models.Match{
			{HomeTeamID: teamIDs[0], AwayTeamID: teamIDs[1], PlayedAt: base, HomeScore: 2, AwayScore: 1},
			{HomeTeamID: teamIDs[1], AwayTeamID: teamIDs[2], PlayedAt: base.AddDate(0, 0, 14), HomeScore: 0, AwayScore: 0},
			{HomeTeamID: teamIDs[2], AwayTeamID: teamIDs[0], PlayedAt: base.AddDate(0, 1, 0), HomeScore: 1, AwayScore: 3},
		}
		for i := range matches {
			if _, err := database.CreateMatch(&matches[i]); err != nil {
				return fmt.Errorf("seed match: %w", err)
			}
		}

		fmt.Printf("Seeded %d teams, %d players, %d matches\n", len(teams), len(players), len(matches))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
