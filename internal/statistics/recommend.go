package statistics

import (
	"fmt"
	"sort"
)

const (
	maxRecommendations     = 3
	maxStartSuggestions    = 2
	nearMasteryMinPercent  = 60
	priorityReview         = 3000
	priorityStart          = 2000
	priorityNearMastery    = 1000
	maxPriorityWithinGroup = 999
)

// RecommendationKind says what the learner should do with a deck.
type RecommendationKind string

const (
	RecommendReview RecommendationKind = "review"
	RecommendStart  RecommendationKind = "start"
	RecommendFinish RecommendationKind = "finish"
)

// DeckSummary pairs a deck with its stats.
type DeckSummary struct {
	DeckID   string
	DeckName string
	Stats    DeckStats
}

// Recommendation is a suggested next action.
type Recommendation struct {
	DeckID   string
	DeckName string
	Kind     RecommendationKind
	Priority int
	Message  string
}

// Recommend ranks decks by urgency: decks with due cards first, then decks
// never started (at most two), then decks close to mastery. A deck is close
// to mastery when its mature share is below masteryPercent and it is not
// already mastered; a non-positive masteryPercent means DefaultMasteryPercent.
// At most three recommendations are returned. Equal priorities are ordered by
// deck id.
func Recommend(decks []DeckSummary, masteryPercent int) []Recommendation {
	if masteryPercent <= 0 {
		masteryPercent = DefaultMasteryPercent
	}
	var candidates []Recommendation
	for _, deck := range decks {
		if rec, ok := recommendationFor(deck, masteryPercent); ok {
			candidates = append(candidates, rec)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Priority != candidates[j].Priority {
			return candidates[i].Priority > candidates[j].Priority
		}
		return candidates[i].DeckID < candidates[j].DeckID
	})

	result := make([]Recommendation, 0, maxRecommendations)
	starts := 0
	for _, rec := range candidates {
		if len(result) == maxRecommendations {
			break
		}
		if rec.Kind == RecommendStart {
			if starts == maxStartSuggestions {
				continue
			}
			starts++
		}
		result = append(result, rec)
	}
	return result
}

func recommendationFor(deck DeckSummary, masteryPercent int) (Recommendation, bool) {
	stats := deck.Stats
	rec := Recommendation{DeckID: deck.DeckID, DeckName: deck.DeckName}
	switch {
	case stats.Due > 0:
		rec.Kind = RecommendReview
		rec.Priority = priorityReview + min(stats.Due, maxPriorityWithinGroup)
		rec.Message = fmt.Sprintf("%d cards are due for review", stats.Due)
	case stats.Total > 0 && !stats.HasBeenStarted:
		rec.Kind = RecommendStart
		rec.Priority = priorityStart
		rec.Message = fmt.Sprintf("start learning %d new cards", stats.Total)
	case !stats.IsMastered && stats.MaturePercent >= nearMasteryMinPercent && stats.MaturePercent < masteryPercent:
		rec.Kind = RecommendFinish
		rec.Priority = priorityNearMastery + stats.MaturePercent
		rec.Message = fmt.Sprintf("%d%% mature, almost mastered", stats.MaturePercent)
	default:
		return Recommendation{}, false
	}
	return rec, true
}
