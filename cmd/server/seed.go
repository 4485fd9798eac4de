package main

import (
	"fmt"

	"isms-api/internal/config"
	"isms-api/internal/database"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run migrations and the seed routine without starting the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := database.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		return database.Seed(db)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
