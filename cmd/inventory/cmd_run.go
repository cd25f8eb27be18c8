package main

import (
	"os"

	"github.com/spf13/cobra"
)

// inventory run — start the interactive menu.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive inventory menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, teardown, err := boot(ctx)
		if err != nil {
			return err
		}
		defer teardown()

		m := newMenu(db, os.Stdin, os.Stdout)
		return m.run(ctx)
	},
}
