package server

import (
	"time"

	"github.com/at-ishikawa/kioku/internal/srs"
	"github.com/at-ishikawa/kioku/internal/statistics"
	"github.com/at-ishikawa/kioku/internal/study"
)

type RateCardRequest struct {
	CardID         string `json:"card_id" validate:"required"`
	Rating         string `json:"rating" validate:"required"`
	ResponseTimeMs int64  `json:"response_time_ms" validate:"gte=0"`
}

type RateCardResponse struct {
	State CardState `json:"state"`
}

type StartSessionRequest struct {
	DeckID string `json:"deck_id" validate:"required"`
}

type StartSessionResponse struct {
	CardIDs           []string `json:"card_ids"`
	NewlyIntroduced   int      `json:"newly_introduced"`
	RemainingNewCards int      `json:"remaining_new_cards"`
	EstimatedMinutes  int      `json:"estimated_minutes"`
	Workload          Workload `json:"workload"`
}

// GetDueCardsRequest selects either a deck or a whole subject.
type GetDueCardsRequest struct {
	DeckID    string `json:"deck_id" validate:"required_without=SubjectID,excluded_with=SubjectID"`
	SubjectID string `json:"subject_id" validate:"required_without=DeckID"`
}

type GetDueCardsResponse struct {
	CardIDs []string `json:"card_ids"`
}

type GetDeckStatsRequest struct {
	DeckID string `json:"deck_id" validate:"required"`
}

type GetDeckStatsResponse struct {
	Deck DeckProgress `json:"deck"`
}

// GetOverviewRequest covers every subject when SubjectID is empty.
type GetOverviewRequest struct {
	SubjectID string `json:"subject_id"`
}

type GetOverviewResponse struct {
	SubjectID        string           `json:"subject_id,omitempty"`
	GeneratedAt      time.Time        `json:"generated_at"`
	Decks            []DeckProgress   `json:"decks"`
	Learning         LearningStats    `json:"learning"`
	Activity         []DayActivity    `json:"activity"`
	Streak           int              `json:"streak"`
	Recommendations  []Recommendation `json:"recommendations"`
	EstimatedMinutes int              `json:"estimated_minutes"`
	Workload         Workload         `json:"workload"`
}

type CardState struct {
	CardID         string     `json:"card_id"`
	EaseFactor     float64    `json:"ease_factor"`
	IntervalDays   int        `json:"interval_days"`
	Repetitions    int        `json:"repetitions"`
	DueAt          time.Time  `json:"due_at"`
	IsNew          bool       `json:"is_new"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	Version        int64      `json:"version"`
}

type DeckStats struct {
	Total          int        `json:"total"`
	Unseen         int        `json:"unseen"`
	New            int        `json:"new"`
	Learning       int        `json:"learning"`
	Mature         int        `json:"mature"`
	Due            int        `json:"due"`
	DiscoveryCount int        `json:"discovery_count"`
	MaturePercent  int        `json:"mature_percent"`
	HasBeenStarted bool       `json:"has_been_started"`
	IsMastered     bool       `json:"is_mastered"`
	NextReviewAt   *time.Time `json:"next_review_at,omitempty"`
}

type DeckProgress struct {
	DeckID           string    `json:"deck_id"`
	SubjectID        string    `json:"subject_id"`
	Name             string    `json:"name"`
	Stats            DeckStats `json:"stats"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	Workload         Workload  `json:"workload"`
}

type LearningStats struct {
	Total         int     `json:"total"`
	NewCards      int     `json:"new_cards"`
	DueCards      int     `json:"due_cards"`
	LearningCards int     `json:"learning_cards"`
	MatureCards   int     `json:"mature_cards"`
	AverageEF     float64 `json:"average_ease_factor"`
}

type DayActivity struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type Recommendation struct {
	DeckID   string `json:"deck_id"`
	DeckName string `json:"deck_name"`
	Kind     string `json:"kind"`
	Priority int    `json:"priority"`
	Message  string `json:"message"`
}

type Workload struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func toCardState(state srs.CardState) CardState {
	result := CardState{
		CardID:       state.CardID,
		EaseFactor:   state.EaseFactor,
		IntervalDays: state.Interval,
		Repetitions:  state.Repetitions,
		DueAt:        state.DueDate,
		IsNew:        state.IsNew,
		Version:      state.Version,
	}
	if !state.LastReviewedAt.IsZero() {
		reviewed := state.LastReviewedAt
		result.LastReviewedAt = &reviewed
	}
	return result
}

func toDeckStats(stats statistics.DeckStats) DeckStats {
	return DeckStats{
		Total:          stats.Total,
		Unseen:         stats.Unseen,
		New:            stats.New,
		Learning:       stats.Learning,
		Mature:         stats.Mature,
		Due:            stats.Due,
		DiscoveryCount: stats.DiscoveryCount,
		MaturePercent:  stats.MaturePercent,
		HasBeenStarted: stats.HasBeenStarted,
		IsMastered:     stats.IsMastered,
		NextReviewAt:   stats.NextReviewDate,
	}
}

func toDeckProgress(deck study.DeckOverview) DeckProgress {
	return DeckProgress{
		DeckID:           deck.Deck.ID,
		SubjectID:        deck.Deck.SubjectID,
		Name:             deck.Deck.Name,
		Stats:            toDeckStats(deck.Stats),
		EstimatedMinutes: deck.EstimatedMinutes,
		Workload:         Workload{Level: string(deck.Workload.Level), Message: deck.Workload.Message},
	}
}

func toOverviewResponse(overview study.Overview) *GetOverviewResponse {
	resp := &GetOverviewResponse{
		SubjectID:   overview.SubjectID,
		GeneratedAt: overview.GeneratedAt,
		Decks:       make([]DeckProgress, 0, len(overview.Decks)),
		Learning: LearningStats{
			Total:         overview.Learning.Total,
			NewCards:      overview.Learning.NewCards,
			DueCards:      overview.Learning.DueCards,
			LearningCards: overview.Learning.LearningCards,
			MatureCards:   overview.Learning.MatureCards,
			AverageEF:     overview.Learning.AverageEF,
		},
		Activity:         make([]DayActivity, 0, len(overview.Activity)),
		Streak:           overview.Streak,
		Recommendations:  make([]Recommendation, 0, len(overview.Recommendations)),
		EstimatedMinutes: overview.EstimatedMinutes,
		Workload:         Workload{Level: string(overview.Workload.Level), Message: overview.Workload.Message},
	}
	for _, deck := range overview.Decks {
		resp.Decks = append(resp.Decks, toDeckProgress(deck))
	}
	for _, day := range overview.Activity {
		resp.Activity = append(resp.Activity, DayActivity{Date: day.Date, Count: day.Count})
	}
	for _, rec := range overview.Recommendations {
		resp.Recommendations = append(resp.Recommendations, Recommendation{
			DeckID:   rec.DeckID,
			DeckName: rec.DeckName,
			Kind:     string(rec.Kind),
			Priority: rec.Priority,
			Message:  rec.Message,
		})
	}
	return resp
}
