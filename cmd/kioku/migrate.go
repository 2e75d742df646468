package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/kioku/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			status, err := database.Migrate(db)
			if err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schema version %d (dirty: %t)\n", status.Version, status.Dirty)
			return nil
		},
	}
}
