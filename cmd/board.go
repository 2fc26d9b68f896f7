package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/scout/internal/db"
	"github.com/marcus/scout/pkg/monitor"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive roster dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("board requires an interactive terminal; use 'scout players' for plain output")
		}

		database, err := db.Open(getBaseDir())
		if err != nil {
			return err
		}
		defer database.Close()
		database.SetMaxOpenConns(1)

		return monitor.Run(database, database.BaseDir())
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
