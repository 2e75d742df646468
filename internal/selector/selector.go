// Package selector decides which cards of a deck or subject are presented
// in the next study session.
package selector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/at-ishikawa/kioku/internal/card"
	"github.com/at-ishikawa/kioku/internal/schedule"
	"github.com/at-ishikawa/kioku/internal/srs"
)

// CardSource lists the cards and decks owned by the catalogue.
type CardSource interface {
	FindByDeck(ctx context.Context, deckID string) ([]card.Card, error)
	FindDecksBySubject(ctx context.Context, subjectID string) ([]card.Deck, error)
}

// StateStore reads and creates scheduler states.
type StateStore interface {
	FindByCardIDs(ctx context.Context, cardIDs []string) ([]srs.CardState, error)
	Create(ctx context.Context, state *srs.CardState) error
}

// Selector is stateless apart from its collaborators. Calls with unchanged
// storage return the same cards in the same order.
type Selector struct {
	cards  CardSource
	states StateStore
	now    func() time.Time
}

// New creates a Selector.
func New(cards CardSource, states StateStore) *Selector {
	return &Selector{
		cards:  cards,
		states: states,
		now:    time.Now,
	}
}

// DueCardsForDeck returns the ids of scheduled cards in the deck that are due,
// earliest due first. Cards created earlier win ties. Unseen cards are never
// returned.
func (s *Selector) DueCardsForDeck(ctx context.Context, deckID string) ([]string, error) {
	due, err := s.dueStatesForDeck(ctx, deckID, s.now())
	if err != nil {
		return nil, err
	}
	return cardIDsOf(due), nil
}

// NewCardsForDeck returns up to limit cards of the deck that have no state,
// in creation order. It does not write anything.
func (s *Selector) NewCardsForDeck(ctx context.Context, deckID string, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}
	cards, states, err := s.deckSnapshot(ctx, deckID)
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, limit)
	for _, c := range cards {
		if len(result) == limit {
			break
		}
		if _, ok := states[c.ID]; ok {
			continue
		}
		result = append(result, c.ID)
	}
	return result, nil
}

// InitializeDeckForLearning creates a fresh state for up to remainingLimit
// unseen cards of the deck and returns how many were created. Each card is
// written independently: on error the count of cards already written is
// returned with the error and nothing is rolled back. A card that another
// writer initialised concurrently is skipped.
func (s *Selector) InitializeDeckForLearning(ctx context.Context, deckID string, remainingLimit int) (int, error) {
	cardIDs, err := s.NewCardsForDeck(ctx, deckID, remainingLimit)
	if err != nil {
		return 0, err
	}

	now := s.now()
	initialized := 0
	for _, cardID := range cardIDs {
		state := srs.NewCardState(cardID, now)
		if err := s.states.Create(ctx, &state); err != nil {
			if errors.Is(err, schedule.ErrConflict) {
				slog.Debug("card already initialized", "deck_id", deckID, "card_id", cardID)
				continue
			}
			return initialized, fmt.Errorf("states.Create(%s) > %w", cardID, err)
		}
		initialized++
	}
	slog.Debug("initialized deck for learning",
		"deck_id", deckID,
		"requested", remainingLimit,
		"initialized", initialized)
	return initialized, nil
}

// DueCardsForSubject returns the due cards of every deck in the subject,
// merged into one list ordered by due date.
func (s *Selector) DueCardsForSubject(ctx context.Context, subjectID string) ([]string, error) {
	decks, err := s.cards.FindDecksBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("cards.FindDecksBySubject(%s) > %w", subjectID, err)
	}

	now := s.now()
	var merged []srs.CardState
	for _, deck := range decks {
		due, err := s.dueStatesForDeck(ctx, deck.ID, now)
		if err != nil {
			return nil, err
		}
		merged = append(merged, due...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].DueDate.Before(merged[j].DueDate)
	})
	return cardIDsOf(merged), nil
}

func (s *Selector) dueStatesForDeck(ctx context.Context, deckID string, now time.Time) ([]srs.CardState, error) {
	cards, states, err := s.deckSnapshot(ctx, deckID)
	if err != nil {
		return nil, err
	}

	// Lay states out in creation order so the stable sort breaks ties by it.
	ordered := make([]srs.CardState, 0, len(states))
	for _, c := range cards {
		if state, ok := states[c.ID]; ok {
			ordered = append(ordered, state)
		}
	}
	return srs.DueCards(ordered, now), nil
}

func (s *Selector) deckSnapshot(ctx context.Context, deckID string) ([]card.Card, map[string]srs.CardState, error) {
	cards, err := s.cards.FindByDeck(ctx, deckID)
	if err != nil {
		return nil, nil, fmt.Errorf("cards.FindByDeck(%s) > %w", deckID, err)
	}
	if len(cards) == 0 {
		return nil, map[string]srs.CardState{}, nil
	}

	states, err := s.states.FindByCardIDs(ctx, card.IDs(cards))
	if err != nil {
		return nil, nil, fmt.Errorf("states.FindByCardIDs(deck %s) > %w", deckID, err)
	}
	byCard := make(map[string]srs.CardState, len(states))
	for _, state := range states {
		byCard[state.CardID] = state
	}
	return cards, byCard, nil
}

func cardIDsOf(states []srs.CardState) []string {
	ids := make([]string, len(states))
	for i, state := range states {
		ids[i] = state.CardID
	}
	return ids
}
