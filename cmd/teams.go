package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/scout/internal/db"
	"github.com/marcus/scout/internal/models"
	"github.com/marcus/scout/internal/output"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List teams and their rosters",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open(getBaseDir())
		if err != nil {
			return err
		}
		defer database.Close()

		teams, err := database.ListTeams()
		if err != nil {
			return err
		}
		if len(teams) == 0 {
			fmt.Println("No teams yet. Add one with 'scout teams add'.")
			return nil
		}

		for _, team := range teams {
			header := team.Name
			if team.City != "" {
				header += " (" + team.City + ")"
			}
			fmt.Println(header)

			page, err := database.ListPlayers(db.PlayerFilter{
				TeamID:   team.ID,
				SortKey:  "name",
				PageSize: db.MaxPageSize,
			})
			if err != nil {
				return err
			}

			root := output.TreeNode{Label: team.Name}
			for _, p := range page.Items {
				detail := string(p.Position)
				if p.Rating != nil {
					detail += fmt.Sprintf(" %.1f", *p.Rating)
				}
				root.Children = append(root.Children, output.TreeNode{
					Label:  p.Name,
					Detail: detail,
				})
			}
			if len(root.Children) == 0 {
				fmt.Println("    (no players)")
			} else {
				fmt.Println(output.RenderTree(root, output.TreeRenderOptions{ShowDetail: true}))
			}
			fmt.Println()
		}
		return nil
	},
}

var teamsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open(getBaseDir())
		if err != nil {
			return err
		}
		defer database.Close()

		city, _ := cmd.Flags().GetString("city")
		league, _ := cmd.Flags().GetString("league")

		created, err := database.CreateTeam(&models.Team{
			Name:   args[0],
			City:   city,
			League: league,
		})
		if err != nil {
			return err
		}
		fmt.Printf("ADDED %d %s\n", created.ID, created.Name)
		return nil
	},
}

func init() {
	teamsAddCmd.Flags().String("city", "", "home city")
	teamsAddCmd.Flags().String("league", "", "league name")

	teamsCmd.AddCommand(teamsAddCmd)
	rootCmd.AddCommand(teamsCmd)
}
