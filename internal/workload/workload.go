// Package workload turns due-card counts into study time estimates.
package workload

import (
	"math"

	"github.com/at-ishikawa/kioku/internal/learning"
)

// MinTimedReviews is the number of timed reviews a deck needs before its own
// average response time replaces the default.
const MinTimedReviews = 3

// ResponseAverage is the observed response time of a deck.
type ResponseAverage struct {
	Seconds      float64
	TimedReviews int
}

// Reliable reports whether the average is backed by enough timed reviews.
func (a ResponseAverage) Reliable() bool {
	return a.TimedReviews >= MinTimedReviews && a.Seconds > 0
}

// EstimatedMinutes sums due*seconds over decks and converts the total to
// whole minutes, rounding up. A deck uses its own average only when it is
// reliable, otherwise defaultSeconds.
func EstimatedMinutes(dueByDeck map[string]int, averages map[string]ResponseAverage, defaultSeconds float64) int {
	var totalSeconds float64
	for deckID, due := range dueByDeck {
		if due <= 0 {
			continue
		}
		seconds := defaultSeconds
		if average, ok := averages[deckID]; ok && average.Reliable() {
			seconds = average.Seconds
		}
		totalSeconds += float64(due) * seconds
	}
	if totalSeconds <= 0 {
		return 0
	}
	return int(math.Ceil(totalSeconds / 60))
}

// AveragesFromEvents computes the mean response time per deck from timed
// review events.
func AveragesFromEvents(events []learning.ReviewEvent) map[string]ResponseAverage {
	totals := make(map[string]int)
	counts := make(map[string]int)
	for _, event := range events {
		if !event.IsTimed() {
			continue
		}
		totals[event.DeckID] += event.ResponseTimeMs
		counts[event.DeckID]++
	}

	averages := make(map[string]ResponseAverage, len(counts))
	for deckID, count := range counts {
		averages[deckID] = ResponseAverage{
			Seconds:      float64(totals[deckID]) / float64(count) / 1000,
			TimedReviews: count,
		}
	}
	return averages
}
