package datasync

import (
	"time"

	"github.com/at-ishikawa/kioku/internal/learning"
	"github.com/at-ishikawa/kioku/internal/srs"
)

const (
	statesFile = "states.yml"
	eventsFile = "events.yml"
)

// stateRecord is the YAML form of a scheduler state.
type stateRecord struct {
	CardID         string    `yaml:"card_id"`
	EaseFactor     float64   `yaml:"ease_factor"`
	IntervalDays   int       `yaml:"interval_days"`
	Repetitions    int       `yaml:"repetitions"`
	DueAt          time.Time `yaml:"due_at"`
	IsNew          bool      `yaml:"is_new"`
	LastReviewedAt time.Time `yaml:"last_reviewed_at,omitempty"`
	CreatedAt      time.Time `yaml:"created_at"`
}

func newStateRecord(s srs.CardState) stateRecord {
	return stateRecord{
		CardID:         s.CardID,
		EaseFactor:     s.EaseFactor,
		IntervalDays:   s.Interval,
		Repetitions:    s.Repetitions,
		DueAt:          s.DueDate.UTC(),
		IsNew:          s.IsNew,
		LastReviewedAt: utcOrZero(s.LastReviewedAt),
		CreatedAt:      s.CreatedAt.UTC(),
	}
}

func (r stateRecord) toState() srs.CardState {
	return srs.CardState{
		CardID:         r.CardID,
		EaseFactor:     r.EaseFactor,
		Interval:       r.IntervalDays,
		Repetitions:    r.Repetitions,
		DueDate:        r.DueAt.UTC(),
		IsNew:          r.IsNew,
		LastReviewedAt: utcOrZero(r.LastReviewedAt),
		CreatedAt:      r.CreatedAt.UTC(),
	}
}

// eventRecord is the YAML form of a review event.
type eventRecord struct {
	ID             string     `yaml:"id"`
	CardID         string     `yaml:"card_id"`
	DeckID         string     `yaml:"deck_id"`
	Rating         srs.Rating `yaml:"rating"`
	ReviewedAt     time.Time  `yaml:"reviewed_at"`
	ResponseTimeMs int        `yaml:"response_time_ms,omitempty"`
	IntervalDays   int        `yaml:"interval_days"`
	EaseFactor     float64    `yaml:"ease_factor"`
}

func newEventRecord(e learning.ReviewEvent) eventRecord {
	return eventRecord{
		ID:             e.ID,
		CardID:         e.CardID,
		DeckID:         e.DeckID,
		Rating:         e.Rating,
		ReviewedAt:     e.ReviewedAt.UTC(),
		ResponseTimeMs: e.ResponseTimeMs,
		IntervalDays:   e.IntervalDays,
		EaseFactor:     e.EaseFactor,
	}
}

func (r eventRecord) toEvent() learning.ReviewEvent {
	return learning.ReviewEvent{
		ID:             r.ID,
		CardID:         r.CardID,
		DeckID:         r.DeckID,
		Rating:         r.Rating,
		ReviewedAt:     r.ReviewedAt.UTC(),
		ResponseTimeMs: r.ResponseTimeMs,
		IntervalDays:   r.IntervalDays,
		EaseFactor:     r.EaseFactor,
	}
}

func utcOrZero(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return t.UTC()
}
