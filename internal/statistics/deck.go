// Package statistics derives read-only summaries from scheduler states and
// review events.
package statistics

import (
	"math"
	"time"

	"github.com/at-ishikawa/kioku/internal/srs"
)

// DefaultMasteryPercent is the share of seen cards that must be mature for a
// deck to count as mastered.
const DefaultMasteryPercent = 80

// DeckStats summarizes the scheduler states of one deck.
type DeckStats struct {
	Total          int
	Unseen         int // cards without a state
	New            int
	Learning       int
	Mature         int
	Due            int // due now, excluding new cards
	DiscoveryCount int // cards still waiting for their first exposure
	MaturePercent  int
	HasBeenStarted bool
	IsMastered     bool
	NextReviewDate *time.Time // earliest due date after now
}

// DeckStatsFor computes the stats of a deck with total cards, given the
// states stored for it. A masteryPercent of zero or less falls back to
// DefaultMasteryPercent.
func DeckStatsFor(total int, states []srs.CardState, now time.Time, masteryPercent int) DeckStats {
	if total <= 0 {
		return DeckStats{}
	}
	if masteryPercent <= 0 {
		masteryPercent = DefaultMasteryPercent
	}

	stats := DeckStats{
		Total:  total,
		Unseen: max(0, total-len(states)),
	}
	for _, state := range states {
		switch state.Phase() {
		case srs.PhaseNew:
			stats.New++
		case srs.PhaseLearning:
			stats.Learning++
		case srs.PhaseMature:
			stats.Mature++
		}

		if !state.IsNew && state.IsDue(now) {
			stats.Due++
		}
		if state.DueDate.After(now) && (stats.NextReviewDate == nil || state.DueDate.Before(*stats.NextReviewDate)) {
			due := state.DueDate
			stats.NextReviewDate = &due
		}
	}

	seen := total - stats.Unseen
	stats.DiscoveryCount = stats.Unseen + stats.New
	stats.MaturePercent = int(math.Round(100 * float64(stats.Mature) / float64(total)))
	stats.HasBeenStarted = seen > 0
	stats.IsMastered = seen > 0 && stats.Mature*100 >= masteryPercent*seen
	return stats
}

// LearningStats is a summary over every state in the system.
type LearningStats struct {
	Total         int
	NewCards      int
	DueCards      int
	LearningCards int
	MatureCards   int
	AverageEF     float64 // rounded to 2 decimals, 0 without states
}

// LearningStatsFor folds all states into a LearningStats.
func LearningStatsFor(states []srs.CardState, now time.Time) LearningStats {
	var stats LearningStats
	var easeSum float64
	for _, state := range states {
		stats.Total++
		easeSum += state.EaseFactor

		switch state.Phase() {
		case srs.PhaseNew:
			stats.NewCards++
		case srs.PhaseLearning:
			stats.LearningCards++
		case srs.PhaseMature:
			stats.MatureCards++
		}
		if !state.IsNew && state.IsDue(now) {
			stats.DueCards++
		}
	}
	if stats.Total > 0 {
		stats.AverageEF = math.Round(easeSum/float64(stats.Total)*100) / 100
	}
	return stats
}
