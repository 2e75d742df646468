package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/kioku/internal/cli"
	"github.com/at-ishikawa/kioku/internal/study"
)

func newStatsCommand() *cobra.Command {
	var subjectID string
	var deckID string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show progress of a deck, a subject or everything",
		Long: "Show progress of a deck, a subject or everything. A subject given with --subject is remembered " +
			"for 30 minutes, so following runs without flags show the same subject.",
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

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			if deckID != "" {
				deck, err := service.DeckOverview(ctx, deckID)
				if err != nil {
					return fmt.Errorf("DeckOverview(%s) > %w", deckID, err)
				}
				cli.WriteDeckOverview(out, deck)
				return nil
			}

			selectionPath, err := cli.DefaultSelectionPath()
			if err != nil {
				return err
			}
			subject, err := cli.NewSelectionStore(selectionPath).ResolveSubject(subjectID, time.Now(), study.DefaultSelectionTTL)
			if err != nil {
				return fmt.Errorf("ResolveSubject() > %w", err)
			}
			overview, err := service.Overview(ctx, subject)
			if err != nil {
				return fmt.Errorf("Overview(%s) > %w", subject, err)
			}
			cli.WriteOverview(out, overview)
			return nil
		},
	}
	addSubjectFlag(cmd.Flags(), &subjectID, "subject to show, remembered for 30 minutes")
	cmd.Flags().StringVar(&deckID, "deck", "", "deck to show")
	cmd.MarkFlagsMutuallyExclusive("subject", "deck")
	return cmd
}
