// Package learning provides the append-only review event log.
package learning

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/kioku/internal/srs"
)

// ReviewEvent records a single rating of a card. Events are never modified.
type ReviewEvent struct {
	ID             string
	CardID         string
	DeckID         string
	Rating         srs.Rating
	ReviewedAt     time.Time
	ResponseTimeMs int // 0 when the review was not timed
	IntervalDays   int
	EaseFactor     float64
}

// IsTimed reports whether the event carries a usable response time.
func (e ReviewEvent) IsTimed() bool {
	return e.ResponseTimeMs > 0
}

const eventColumns = "id, card_id, deck_id, rating, reviewed_at_ms, response_time_ms, interval_days, easiness_factor"

type eventRow struct {
	ID             string  `db:"id"`
	CardID         string  `db:"card_id"`
	DeckID         string  `db:"deck_id"`
	Rating         string  `db:"rating"`
	ReviewedAtMs   int64   `db:"reviewed_at_ms"`
	ResponseTimeMs int     `db:"response_time_ms"`
	IntervalDays   int     `db:"interval_days"`
	EasinessFactor float64 `db:"easiness_factor"`
}

func (row eventRow) toEvent() ReviewEvent {
	return ReviewEvent{
		ID:             row.ID,
		CardID:         row.CardID,
		DeckID:         row.DeckID,
		Rating:         srs.Rating(row.Rating),
		ReviewedAt:     time.UnixMilli(row.ReviewedAtMs).UTC(),
		ResponseTimeMs: row.ResponseTimeMs,
		IntervalDays:   row.IntervalDays,
		EaseFactor:     row.EasinessFactor,
	}
}

//go:generate mockgen -source=repository.go -destination=../mocks/learning/mock_repository.go -package=mock_learning

// Repository defines operations on the review event log.
type Repository interface {
	Append(ctx context.Context, event ReviewEvent) error
	FindBetween(ctx context.Context, from, to time.Time) ([]ReviewEvent, error)
	FindByDeck(ctx context.Context, deckID string) ([]ReviewEvent, error)
	FindAll(ctx context.Context) ([]ReviewEvent, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Append inserts an event. The id is generated by the caller.
func (r *DBRepository) Append(ctx context.Context, event ReviewEvent) error {
	if event.ID == "" {
		return fmt.Errorf("review event for card %s has no id", event.CardID)
	}
	if !event.Rating.IsValid() {
		return fmt.Errorf("review event %s > %w: %q", event.ID, srs.ErrInvalidRating, string(event.Rating))
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO review_events ("+eventColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		event.ID, event.CardID, event.DeckID, string(event.Rating), event.ReviewedAt.UnixMilli(),
		event.ResponseTimeMs, event.IntervalDays, event.EaseFactor)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert review_event) > %w", err)
	}
	return nil
}

// FindBetween returns the events reviewed within [from, to), oldest first.
func (r *DBRepository) FindBetween(ctx context.Context, from, to time.Time) ([]ReviewEvent, error) {
	return r.selectEvents(ctx, "review_events by time range",
		"SELECT "+eventColumns+" FROM review_events WHERE reviewed_at_ms >= ? AND reviewed_at_ms < ? ORDER BY reviewed_at_ms, id",
		from.UnixMilli(), to.UnixMilli())
}

// FindByDeck returns all events of a deck, oldest first.
func (r *DBRepository) FindByDeck(ctx context.Context, deckID string) ([]ReviewEvent, error) {
	return r.selectEvents(ctx, "review_events by deck",
		"SELECT "+eventColumns+" FROM review_events WHERE deck_id = ? ORDER BY reviewed_at_ms, id",
		deckID)
}

// FindAll returns every event, oldest first.
func (r *DBRepository) FindAll(ctx context.Context) ([]ReviewEvent, error) {
	return r.selectEvents(ctx, "review_events",
		"SELECT "+eventColumns+" FROM review_events ORDER BY reviewed_at_ms, id")
}

// Exists reports whether an event with the id was already appended.
func (r *DBRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM review_events WHERE id = ?", id); err != nil {
		return false, fmt.Errorf("db.GetContext(count review_events) > %w", err)
	}
	return count > 0, nil
}

func (r *DBRepository) selectEvents(ctx context.Context, name, query string, args ...any) ([]ReviewEvent, error) {
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(%s) > %w", name, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	events := make([]ReviewEvent, len(rows))
	for i, row := range rows {
		events[i] = row.toEvent()
	}
	return events, nil
}
