package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/at-ishikawa/kioku/internal/statistics"
	"github.com/at-ishikawa/kioku/internal/study"
	"github.com/at-ishikawa/kioku/internal/workload"
)

// WriteDeckOverview prints the progress of a single deck.
func WriteDeckOverview(w io.Writer, deck study.DeckOverview) {
	bold := color.New(color.Bold)
	fmt.Fprintf(w, "%s\n", bold.Sprint(deck.Deck.Name))
	writeDeckStats(w, deck.Stats)
	fmt.Fprintf(w, "  Estimated time: %d minutes\n", deck.EstimatedMinutes)
	fmt.Fprintf(w, "  %s\n", deck.Workload.Message)
}

// WriteOverview prints the progress of a subject or of every subject.
func WriteOverview(w io.Writer, overview study.Overview) {
	bold := color.New(color.Bold)

	title := "All subjects"
	if overview.SubjectID != "" {
		title = "Subject " + overview.SubjectID
	}
	fmt.Fprintf(w, "%s\n\n", bold.Sprint(title))

	for _, deck := range overview.Decks {
		fmt.Fprintf(w, "%s\n", bold.Sprint(deck.Deck.Name))
		writeDeckStats(w, deck.Stats)
	}
	if len(overview.Decks) > 0 {
		fmt.Fprintln(w)
	}

	l := overview.Learning
	fmt.Fprintf(w, "Learning pool: %d cards (%d new, %d learning, %d mature), average ease %.2f\n",
		l.Total, l.NewCards, l.LearningCards, l.MatureCards, l.AverageEF)
	fmt.Fprintf(w, "Due now: %d cards, about %d minutes\n", l.DueCards, overview.EstimatedMinutes)
	fmt.Fprintf(w, "Streak: %d days\n", overview.Streak)
	fmt.Fprintln(w, workloadColor(overview.Workload.Level).Sprint(overview.Workload.Message))

	if len(overview.Recommendations) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, bold.Sprint("Recommendations"))
		for _, rec := range overview.Recommendations {
			fmt.Fprintf(w, "  - %s: %s\n", rec.DeckName, rec.Message)
		}
	}
}

func writeDeckStats(w io.Writer, stats statistics.DeckStats) {
	if !stats.HasBeenStarted {
		fmt.Fprintf(w, "  %d cards, not started\n", stats.Total)
		return
	}
	fmt.Fprintf(w, "  %d cards: %d unseen, %d new, %d learning, %d mature (%d%%)\n",
		stats.Total, stats.Unseen, stats.New, stats.Learning, stats.Mature, stats.MaturePercent)
	switch {
	case stats.Due > 0:
		fmt.Fprintf(w, "  %d due now\n", stats.Due)
	case stats.NextReviewDate != nil:
		fmt.Fprintf(w, "  next review on %s\n", stats.NextReviewDate.Local().Format(time.DateOnly))
	}
	if stats.IsMastered {
		fmt.Fprintln(w, color.GreenString("  mastered"))
	}
}

func workloadColor(level workload.Level) *color.Color {
	switch level {
	case workload.LevelHeavy:
		return color.New(color.FgYellow)
	case workload.LevelOverwhelming:
		return color.New(color.FgRed)
	}
	return color.New(color.FgGreen)
}
