package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/scout/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the scouting database in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Initialize(getBaseDir())
		if err != nil {
			return err
		}
		defer database.Close()

		fmt.Printf("Initialized scouting database in %s/.scout\n", database.BaseDir())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
