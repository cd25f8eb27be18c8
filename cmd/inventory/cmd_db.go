package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zackariya14/databasteknik-uppgift-2/database/seeders"
)

// inventory seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, teardown, err := boot(ctx)
		if err != nil {
			return err
		}
		defer teardown()

		fmt.Println("Running seeders…")
		return seeders.RunAll(ctx, db)
	},
}
