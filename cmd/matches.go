package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcus/scout/internal/db"
	"github.com/marcus/scout/internal/models"
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List recorded matches, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open(getBaseDir())
		if err != nil {
			return err
		}
		defer database.Close()

		pageNum, _ := cmd.Flags().GetInt("page")
		page, err := database.ListMatches(pageNum, 20)
		if err != nil {
			return err
		}
		if page.Total == 0 {
			fmt.Println("No matches recorded. Add one with 'scout matches add'.")
			return nil
		}

		teamNames, err := database.TeamNames()
		if err != nil {
			return err
		}

		for _, m := range page.Items {
			fmt.Printf("%s  %s %s %s\n",
				m.PlayedAt.Format("2006-01-02"),
				teamNames[m.HomeTeamID], m.Score(), teamNames[m.AwayTeamID])
		}
		fmt.Printf("\npage %d of %d (%d matches)\n", page.Page, page.TotalPages, page.Total)
		return nil
	},
}

var matchesAddCmd = &cobra.Command{
	Use:   "add [home-team-id] [away-team-id] [home-score] [away-score]",
	Short: "Record a match result",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open(getBaseDir())
		if err != nil {
			return err
		}
		defer database.Close()

		nums := make([]int64, 4)
		for i, arg := range args {
			n, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid number %q", arg)
			}
			nums[i] = n
		}

		playedAt := time.Now()
		if date, _ := cmd.Flags().GetString("date"); date != "" {
			playedAt, err = time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
			}
		}

		created, err := database.CreateMatch(&models.Match{
			HomeTeamID: nums[0],
			AwayTeamID: nums[1],
			HomeScore:  int(nums[2]),
			AwayScore:  int(nums[3]),
			PlayedAt:   playedAt,
		})
		if err != nil {
			return err
		}
		fmt.Printf("RECORDED match %d (%s)\n", created.ID, created.Score())
		return nil
	},
}

func init() {
	matchesCmd.Flags().Int("page", 1, "page number")
	matchesAddCmd.Flags().String("date", "", "match date (YYYY-MM-DD, default today)")

	matchesCmd.AddCommand(matchesAddCmd)
	rootCmd.AddCommand(matchesCmd)
}
