package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marcus/scout/internal/config"
	"github.com/marcus/scout/internal/db"
	"github.com/marcus/scout/internal/models"
)

var (
	playersPage     int
	playersPageSize int
	playersSort     string
	playersDesc     bool
	playersRetired  bool
	playersPosition string
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List players in plain text",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open(getBaseDir())
		if err != nil {
			return err
		}
		defer database.Close()

		pageSize := playersPageSize
		if pageSize == 0 {
			pageSize, _ = config.GetPageSize(database.BaseDir())
		}

		page, err := database.ListPlayers(db.PlayerFilter{
			IncludeRetired: playersRetired,
			Position:       playersPosition,
			SortKey:        playersSort,
			SortDesc:       playersDesc,
			Page:           playersPage,
			PageSize:       pageSize,
		})
		if err != nil {
			return err
		}

		teamNames, err := database.TeamNames()
		if err != nil {
			return err
		}

		if page.Total == 0 {
			fmt.Println("No players found. Add some with 'scout players add'.")
			return nil
		}

		fmt.Printf("%-5s %-24s %-4s %-20s %4s %7s  %s\n", "ID", "NAME", "POS", "TEAM", "AGE", "RATING", "STATUS")
		for _, p := range page.Items {
			team := teamNames[p.TeamID]
			if team == "" {
				team = "-"
			}
			rating := "-"
			if p.Rating != nil {
				rating = fmt.Sprintf("%.1f", *p.Rating)
			}
			status := "active"
			if p.Retired {
				status = "retired"
			}
			fmt.Printf("%-5d %-24s %-4s %-20s %4d %7s  %s\n",
				p.ID, p.Name, p.Position, team, p.Age, rating, status)
		}
		fmt.Printf("\npage %d of %d (%d players)\n", page.Page, page.TotalPages, page.Total)
		return nil
	},
}

var playersAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open(getBaseDir())
		if err != nil {
			return err
		}
		defer database.Close()

		position, _ := cmd.Flags().GetString("position")
		teamID, _ := cmd.Flags().GetInt64("team")
		age, _ := cmd.Flags().GetInt("age")
		ratingStr, _ := cmd.Flags().GetString("rating")
		notes, _ := cmd.Flags().GetString("notes")

		player := &models.Player{
			Name:     args[0],
			Position: models.Position(position),
			TeamID:   teamID,
			Age:      age,
			Notes:    notes,
		}
		if ratingStr != "" {
			v, err := strconv.ParseFloat(ratingStr, 64)
			if err != nil {
				return fmt.Errorf("invalid rating %q", ratingStr)
			}
			player.Rating = &v
		}

		created, err := database.CreatePlayer(player)
		if err != nil {
			return err
		}
		fmt.Printf("ADDED %d %s\n", created.ID, created.Name)
		return nil
	},
}

var playersReleaseCmd = &cobra.Command{
	Use:   "release [id...]",
	Short: "Permanently delete players",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open(getBaseDir())
		if err != nil {
			return err
		}
		defer database.Close()

		for _, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				fmt.Printf("skipping %q: not a player id\n", arg)
				continue
			}
			player, err := database.GetPlayer(id)
			if err != nil {
				fmt.Printf("skipping %d: %v\n", id, err)
				continue
			}
			if err := database.DeletePlayer(id); err != nil {
				fmt.Printf("failed to release %d: %v\n", id, err)
				continue
			}
			fmt.Printf("RELEASED %d %s\n", id, player.Name)
		}
		return nil
	},
}

var playersRetireCmd = &cobra.Command{
	Use:   "retire [id...]",
	Short: "Mark players as retired",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open(getBaseDir())
		if err != nil {
			return err
		}
		defer database.Close()

		for _, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				fmt.Printf("skipping %q: not a player id\n", arg)
				continue
			}
			if err := database.RetirePlayer(id); err != nil {
				fmt.Printf("failed to retire %d: %v\n", id, err)
				continue
			}
			fmt.Printf("RETIRED %d\n", id)
		}
		return nil
	},
}

func init() {
	playersCmd.Flags().IntVar(&playersPage, "page", 1, "page number")
	playersCmd.Flags().IntVar(&playersPageSize, "page-size", 0, "players per page (default from config)")
	playersCmd.Flags().StringVar(&playersSort, "sort", "", "sort column: name, position, team, age, rating")
	playersCmd.Flags().BoolVar(&playersDesc, "desc", false, "sort descending")
	playersCmd.Flags().BoolVar(&playersRetired, "retired", false, "include retired players")
	playersCmd.Flags().StringVar(&playersPosition, "position", "", "filter by position: GK, DF, MF, FW")

	playersAddCmd.Flags().String("position", "MF", "position: GK, DF, MF, FW")
	playersAddCmd.Flags().Int64("team", 0, "team id (0 for free agent)")
	playersAddCmd.Flags().Int("age", 0, "age")
	playersAddCmd.Flags().String("rating", "", "rating 0-100")
	playersAddCmd.Flags().String("notes", "", "scouting notes (markdown)")

	playersCmd.AddCommand(playersAddCmd)
	playersCmd.AddCommand(playersReleaseCmd)
	playersCmd.AddCommand(playersRetireCmd)
	rootCmd.AddCommand(playersCmd)
}
