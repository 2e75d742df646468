package srs

import (
	"math"
	"sort"
	"time"
)

// CardState is the scheduler state of a single card.
type CardState struct {
	CardID      string
	EaseFactor  float64
	Interval    int // days
	Repetitions int
	DueDate     time.Time
	IsNew       bool

	LastReviewedAt time.Time // zero until the first rating
	CreatedAt      time.Time // when the card entered the learning pool
	Version        int64     // bumped by every persisted write
}

// NewCardState returns the state of a card entering the learning pool at now.
// The card is due immediately.
func NewCardState(cardID string, now time.Time) CardState {
	now = now.Truncate(time.Millisecond)
	return CardState{
		CardID:      cardID,
		EaseFactor:  DefaultEaseFactor,
		Interval:    0,
		Repetitions: 0,
		DueDate:     now,
		IsNew:       true,
		CreatedAt:   now,
	}
}

// IsDue reports whether the card should be shown at now.
func (s CardState) IsDue(now time.Time) bool {
	return !s.DueDate.After(now)
}

// Phase is the point of a card in the learning lifecycle.
type Phase string

const (
	PhaseUnseen   Phase = "unseen"
	PhaseNew      Phase = "new"
	PhaseLearning Phase = "learning"
	PhaseMature   Phase = "mature"
)

// Phase classifies the state. A lapsed card (repetitions reset by "again")
// is learning again, never new.
func (s CardState) Phase() Phase {
	switch {
	case s.IsNew:
		return PhaseNew
	case s.Repetitions >= MatureRepetitions:
		return PhaseMature
	default:
		return PhaseLearning
	}
}

// PhaseOf returns PhaseUnseen for a card without state.
func PhaseOf(s *CardState) Phase {
	if s == nil {
		return PhaseUnseen
	}
	return s.Phase()
}

// DueCards returns the states due at now, earliest due first.
// Ties keep their input order.
func DueCards(states []CardState, now time.Time) []CardState {
	due := make([]CardState, 0, len(states))
	for _, s := range states {
		if s.IsDue(now) {
			due = append(due, s)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DueDate.Before(due[j].DueDate)
	})
	return due
}

// EstimateStudyTime returns the minutes needed to review dueCount cards.
func EstimateStudyTime(dueCount int, secondsPerCard float64) int {
	if dueCount <= 0 || secondsPerCard <= 0 {
		return 0
	}
	return int(math.Ceil(float64(dueCount) * secondsPerCard / 60))
}
