package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/kioku/internal/workload"
)

// Session is the set of cards to study now in one deck.
type Session struct {
	DeckID            string
	CardIDs           []string
	NewlyIntroduced   int
	RemainingNewCards int
	EstimatedMinutes  int
	Workload          workload.Assessment
}

// StartSession introduces as many unseen cards as today's intake allows and
// returns every due card of the deck.
func (s *Service) StartSession(ctx context.Context, deckID string) (Session, error) {
	deck, err := s.cards.FindDeck(ctx, deckID)
	if err != nil {
		return Session{}, fmt.Errorf("cards.FindDeck(%s) > %w", deckID, err)
	}
	if deck == nil {
		return Session{}, fmt.Errorf("%w: %s", ErrDeckNotFound, deckID)
	}

	now := s.now()
	remaining, err := s.intake.RemainingNewCards(ctx, now)
	if err != nil {
		return Session{}, fmt.Errorf("intake.RemainingNewCards() > %w", err)
	}
	introduced, err := s.selector.InitializeDeckForLearning(ctx, deckID, remaining)
	if err != nil {
		return Session{}, fmt.Errorf("selector.InitializeDeckForLearning(%s) > %w", deckID, err)
	}

	due, err := s.selector.DueCardsForDeck(ctx, deckID)
	if err != nil {
		return Session{}, fmt.Errorf("selector.DueCardsForDeck(%s) > %w", deckID, err)
	}

	history, err := s.events.FindByDeck(ctx, deckID)
	if err != nil {
		return Session{}, fmt.Errorf("events.FindByDeck(%s) > %w", deckID, err)
	}
	minutes := workload.EstimatedMinutes(
		map[string]int{deckID: len(due)},
		workload.AveragesFromEvents(history),
		s.policy.DefaultSecondsPerCard,
	)

	slog.Info("session started",
		"deck_id", deckID,
		"due", len(due),
		"introduced", introduced,
		"minutes", minutes)
	return Session{
		DeckID:            deckID,
		CardIDs:           due,
		NewlyIntroduced:   introduced,
		RemainingNewCards: remaining - introduced,
		EstimatedMinutes:  minutes,
		Workload:          workload.Assess(len(due), minutes),
	}, nil
}

// SubjectDue returns the due cards of every deck in the subject, earliest
// due first. Nothing is introduced.
func (s *Service) SubjectDue(ctx context.Context, subjectID string) ([]string, error) {
	due, err := s.selector.DueCardsForSubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("selector.DueCardsForSubject(%s) > %w", subjectID, err)
	}
	return due, nil
}

// DeckDue returns the due cards of a deck without introducing new ones.
func (s *Service) DeckDue(ctx context.Context, deckID string) ([]string, error) {
	due, err := s.selector.DueCardsForDeck(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("selector.DueCardsForDeck(%s) > %w", deckID, err)
	}
	return due, nil
}
