package main

import (
	"fmt"
	"log/slog"

	"isms-api/internal/config"
	"isms-api/internal/database"
	"isms-api/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and the seed routine, then serve the API",
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
		if err := database.Seed(db); err != nil {
			return fmt.Errorf("seed: %w", err)
		}

		r := server.New(cfg, db)

		addr := fmt.Sprintf(":%s", cfg.ServerPort)
		slog.Info("starting server", "addr", addr)
		return r.Run(addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
