package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/kioku/internal/client"
)

const defaultRetryAttempts = 2

func newRemoteCommand() *cobra.Command {
	var serverURL string

	remoteCmd := &cobra.Command{
		Use:   "remote",
		Short: "Query a running kioku-server",
	}
	remoteCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "base URL of the kioku-server")

	var deckID, subjectID string
	dueCmd := &cobra.Command{
		Use:   "due",
		Short: "List the due cards of a deck or a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(serverURL, defaultRetryAttempts)
			defer func() {
				_ = c.Close()
			}()

			var due []string
			var err error
			if deckID != "" {
				due, err = c.DeckDueCards(cmd.Context(), deckID)
			} else {
				due, err = c.SubjectDueCards(cmd.Context(), subjectID)
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d cards are due\n", len(due))
			for _, id := range due {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}
	dueCmd.Flags().StringVar(&deckID, "deck", "", "deck to list")
	addSubjectFlag(dueCmd.Flags(), &subjectID, "subject to list")
	dueCmd.MarkFlagsMutuallyExclusive("deck", "subject")
	dueCmd.MarkFlagsOneRequired("deck", "subject")

	var overviewSubject string
	overviewCmd := &cobra.Command{
		Use:   "overview",
		Short: "Show the progress summary of a subject or of everything",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(serverURL, defaultRetryAttempts)
			defer func() {
				_ = c.Close()
			}()

			overview, err := c.Overview(cmd.Context(), overviewSubject)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, deck := range overview.Decks {
				fmt.Fprintf(out, "%s: %d due, %d%% mature\n", deck.Name, deck.Stats.Due, deck.Stats.MaturePercent)
			}
			fmt.Fprintf(out, "Due now: %d cards, about %d minutes\n", overview.Learning.DueCards, overview.EstimatedMinutes)
			fmt.Fprintf(out, "Streak: %d days\n", overview.Streak)
			fmt.Fprintln(out, overview.Workload.Message)
			return nil
		},
	}
	addSubjectFlag(overviewCmd.Flags(), &overviewSubject, "subject to show, all subjects when empty")

	remoteCmd.AddCommand(dueCmd, overviewCmd)
	return remoteCmd
}
