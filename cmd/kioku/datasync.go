package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/kioku/internal/config"
	"github.com/at-ishikawa/kioku/internal/datasync"
)

func backupDirectory(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Backup.Directory
}

func newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [dir]",
		Short: "Export scheduler states and review events to YAML files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			db, repos, err := openRepositories(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			dir := backupDirectory(cfg, args)
			result, err := datasync.NewExporter(repos.states, repos.events).Export(cmd.Context(), dir)
			if err != nil {
				return fmt.Errorf("Export(%s) > %w", dir, err)
			}
			fmt.Printf("Exported %d states and %d events to %s\n", result.States, result.Events, dir)
			return nil
		},
	}
}

func newImportCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import [dir]",
		Short: "Import scheduler states and review events from YAML files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			db, repos, err := openRepositories(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			dir := backupDirectory(cfg, args)
			importer := datasync.NewImporter(repos.states, repos.events, os.Stdout)
			result, err := importer.Import(cmd.Context(), dir, datasync.ImportOptions{DryRun: dryRun})
			if err != nil {
				return fmt.Errorf("Import(%s) > %w", dir, err)
			}

			if dryRun {
				fmt.Println("\n[DRY RUN] No changes were written")
			}
			fmt.Printf("\nStates: %d new, %d skipped\n", result.StatesNew, result.StatesSkipped)
			fmt.Printf("Events: %d new, %d skipped\n", result.EventsNew, result.EventsSkipped)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be imported without writing")
	return cmd
}
