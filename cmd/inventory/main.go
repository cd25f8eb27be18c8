package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zackariya14/databasteknik-uppgift-2/config"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/database"
	"github.com/zackariya14/databasteknik-uppgift-2/pkg/logger"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Inventory and order management over MongoDB",
	Long:  "A menu-driven tool for managing categories, suppliers, products, offers and sales orders, with profit reporting.",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(seedCmd)
}

// boot loads config, opens the store and wires the activity log.
// The returned teardown closes everything in reverse order.
func boot(ctx context.Context) (*database.DB, func(), error) {
	if err := config.Load(); err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(ctx)
	if err != nil {
		return nil, nil, err
	}

	var activity *logger.ActivityHandler
	if config.LogToMongo() {
		activity = logger.NewActivityHandler(db.Collection(config.LogCollection()))
		logger.AttachActivityLog(activity)
	}

	teardown := func() {
		if activity != nil {
			activity.Close()
		}
		if err := db.Close(context.Background()); err != nil {
			logger.Warn("teardown", "error", err)
		}
	}
	return db, teardown, nil
}
