package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/kioku/internal/cli"
)

func newReviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "review <deck>",
		Short: "Review the due cards of a deck",
		Args:  cobra.ExactArgs(1),
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
			service, err := newService(cfg, repos)
			if err != nil {
				return err
			}

			reviewCLI := cli.NewReviewCLI(service, repos.cards, os.Stdin, os.Stdout)
			session, err := reviewCLI.Start(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(session.CardIDs) == 0 {
				return nil
			}
			if _, err := reviewCLI.Run(cmd.Context()); err != nil {
				return err
			}
			return nil
		},
	}
}
