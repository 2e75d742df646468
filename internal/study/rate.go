package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go"

	"github.com/at-ishikawa/kioku/internal/learning"
	"github.com/at-ishikawa/kioku/internal/schedule"
	"github.com/at-ishikawa/kioku/internal/srs"
)

const maxConflictAttempts = 5

// Rate records a rating of a card and returns the card's new state.
//
// The read, compute and write of the state hold the card's lock, and the
// write is a compare-and-swap on the stored version. When another process
// wins the race the whole cycle is retried against the fresh state. A card
// without a state is treated as unseen and initialised by the rating.
// A zero responseTime means the review was not timed.
func (s *Service) Rate(ctx context.Context, cardID string, rating srs.Rating, responseTime time.Duration) (srs.CardState, error) {
	if !rating.IsValid() {
		return srs.CardState{}, fmt.Errorf("rate card %s > %w: %q", cardID, srs.ErrInvalidRating, string(rating))
	}

	c, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		return srs.CardState{}, fmt.Errorf("cards.FindByID(%s) > %w", cardID, err)
	}
	if c == nil {
		return srs.CardState{}, fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
	}

	unlock := s.locks.Lock(cardID)
	defer unlock()

	var next srs.CardState
	err = retry.Do(
		func() error {
			var err error
			next, err = s.applyRating(ctx, cardID, rating)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(maxConflictAttempts),
		retry.Delay(s.conflictRetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, schedule.ErrConflict)
		}),
		retry.OnRetry(func(n uint, err error) {
			slog.Debug("retrying rating after conflict", "card_id", cardID, "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return srs.CardState{}, err
	}

	event := learning.ReviewEvent{
		ID:             s.newID(),
		CardID:         cardID,
		DeckID:         c.DeckID,
		Rating:         rating,
		ReviewedAt:     next.LastReviewedAt,
		ResponseTimeMs: int(responseTime.Milliseconds()),
		IntervalDays:   next.Interval,
		EaseFactor:     next.EaseFactor,
	}
	if err := s.events.Append(ctx, event); err != nil {
		// The state is already stored. The caller has to know the history is incomplete.
		return next, fmt.Errorf("events.Append(%s) > %w", event.ID, err)
	}

	slog.Debug("card rated",
		"card_id", cardID,
		"rating", rating,
		"interval_days", next.Interval,
		"ease_factor", next.EaseFactor,
		"due", next.DueDate)
	return next, nil
}

func (s *Service) applyRating(ctx context.Context, cardID string, rating srs.Rating) (srs.CardState, error) {
	now := s.now()
	current, err := s.states.FindByCardID(ctx, cardID)
	if err != nil {
		return srs.CardState{}, fmt.Errorf("states.FindByCardID(%s) > %w", cardID, err)
	}

	if current == nil {
		initial := srs.NewCardState(cardID, now)
		next, err := srs.Next(initial, rating, now)
		if err != nil {
			return srs.CardState{}, fmt.Errorf("srs.Next(%s) > %w", cardID, err)
		}
		if err := s.states.Create(ctx, &next); err != nil {
			return srs.CardState{}, fmt.Errorf("states.Create(%s) > %w", cardID, err)
		}
		return next, nil
	}

	next, err := srs.Next(*current, rating, now)
	if err != nil {
		return srs.CardState{}, fmt.Errorf("srs.Next(%s) > %w", cardID, err)
	}
	if err := s.states.Update(ctx, &next); err != nil {
		return srs.CardState{}, fmt.Errorf("states.Update(%s) > %w", cardID, err)
	}
	return next, nil
}
