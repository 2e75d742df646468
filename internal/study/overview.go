package study

import (
	"context"
	"fmt"
	"time"

	"github.com/at-ishikawa/kioku/internal/card"
	"github.com/at-ishikawa/kioku/internal/learning"
	"github.com/at-ishikawa/kioku/internal/selector"
	"github.com/at-ishikawa/kioku/internal/srs"
	"github.com/at-ishikawa/kioku/internal/statistics"
	"github.com/at-ishikawa/kioku/internal/workload"
)

// DeckOverview is the progress of one deck.
type DeckOverview struct {
	Deck             card.Deck
	Stats            statistics.DeckStats
	EstimatedMinutes int
	Workload         workload.Assessment
}

// Overview is the progress of a subject, or of everything when the subject
// is empty.
type Overview struct {
	SubjectID        string
	GeneratedAt      time.Time
	Decks            []DeckOverview
	Learning         statistics.LearningStats
	Activity         []statistics.DayActivity
	Streak           int
	Recommendations  []statistics.Recommendation
	EstimatedMinutes int
	Workload         workload.Assessment
}

// DeckOverview returns the stats and workload of a deck.
func (s *Service) DeckOverview(ctx context.Context, deckID string) (DeckOverview, error) {
	deck, err := s.cards.FindDeck(ctx, deckID)
	if err != nil {
		return DeckOverview{}, fmt.Errorf("cards.FindDeck(%s) > %w", deckID, err)
	}
	if deck == nil {
		return DeckOverview{}, fmt.Errorf("%w: %s", ErrDeckNotFound, deckID)
	}

	now := s.now()
	stats, _, err := s.deckStats(ctx, *deck, now)
	if err != nil {
		return DeckOverview{}, err
	}
	history, err := s.events.FindByDeck(ctx, deckID)
	if err != nil {
		return DeckOverview{}, fmt.Errorf("events.FindByDeck(%s) > %w", deckID, err)
	}

	minutes := workload.EstimatedMinutes(map[string]int{deckID: stats.Due}, workload.AveragesFromEvents(history), s.policy.DefaultSecondsPerCard)
	return DeckOverview{
		Deck:             *deck,
		Stats:            stats,
		EstimatedMinutes: minutes,
		Workload:         workload.Assess(stats.Due, minutes),
	}, nil
}

// Overview builds deck stats, learning stats, recent activity, the streak,
// recommendations and the workload estimate for a subject. Response time
// averages are learned from the reviews inside the activity window.
func (s *Service) Overview(ctx context.Context, subjectID string) (Overview, error) {
	now := s.now()
	decks, err := s.decksOf(ctx, subjectID)
	if err != nil {
		return Overview{}, err
	}

	overview := Overview{
		SubjectID:   subjectID,
		GeneratedAt: now,
		Decks:       make([]DeckOverview, 0, len(decks)),
	}
	var allStates []srs.CardState
	summaries := make([]statistics.DeckSummary, 0, len(decks))
	dueByDeck := make(map[string]int, len(decks))
	for _, deck := range decks {
		stats, states, err := s.deckStats(ctx, deck, now)
		if err != nil {
			return Overview{}, err
		}
		allStates = append(allStates, states...)
		summaries = append(summaries, statistics.DeckSummary{DeckID: deck.ID, DeckName: deck.Name, Stats: stats})
		dueByDeck[deck.ID] = stats.Due
		overview.Decks = append(overview.Decks, DeckOverview{Deck: deck, Stats: stats})
	}

	recent, err := s.recentEvents(ctx, now, decks)
	if err != nil {
		return Overview{}, err
	}
	windowDays := max(1, s.policy.ActivityWindowDays)
	inWindow := eventsSince(recent, daysBack(now, windowDays, s.policy.Location))
	averages := workload.AveragesFromEvents(inWindow)
	for i, deckOverview := range overview.Decks {
		minutes := workload.EstimatedMinutes(
			map[string]int{deckOverview.Deck.ID: deckOverview.Stats.Due},
			averages,
			s.policy.DefaultSecondsPerCard)
		overview.Decks[i].EstimatedMinutes = minutes
		overview.Decks[i].Workload = workload.Assess(deckOverview.Stats.Due, minutes)
	}

	overview.Learning = statistics.LearningStatsFor(allStates, now)
	overview.Activity = statistics.ActivityByDay(inWindow, now, windowDays, s.policy.Location)
	overview.Streak = statistics.Streak(
		statistics.ActivityByDay(recent, now, statistics.StreakLookbackDays, s.policy.Location),
		now, s.policy.Location)
	overview.Recommendations = statistics.Recommend(summaries, s.policy.MasteryPercent)
	overview.EstimatedMinutes = workload.EstimatedMinutes(dueByDeck, averages, s.policy.DefaultSecondsPerCard)
	overview.Workload = workload.Assess(overview.Learning.DueCards, overview.EstimatedMinutes)
	return overview, nil
}

// History returns every review event, oldest first.
func (s *Service) History(ctx context.Context) ([]learning.ReviewEvent, error) {
	events, err := s.events.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("events.FindAll() > %w", err)
	}
	return events, nil
}

// Location returns the time zone days are counted in.
func (s *Service) Location() *time.Location {
	return s.policy.Location
}

func (s *Service) deckStats(ctx context.Context, deck card.Deck, now time.Time) (statistics.DeckStats, []srs.CardState, error) {
	cards, err := s.cards.FindByDeck(ctx, deck.ID)
	if err != nil {
		return statistics.DeckStats{}, nil, fmt.Errorf("cards.FindByDeck(%s) > %w", deck.ID, err)
	}
	states, err := s.states.FindByCardIDs(ctx, card.IDs(cards))
	if err != nil {
		return statistics.DeckStats{}, nil, fmt.Errorf("states.FindByCardIDs(deck %s) > %w", deck.ID, err)
	}
	return statistics.DeckStatsFor(len(cards), states, now, s.policy.MasteryPercent), states, nil
}

func (s *Service) decksOf(ctx context.Context, subjectID string) ([]card.Deck, error) {
	if subjectID != "" {
		decks, err := s.cards.FindDecksBySubject(ctx, subjectID)
		if err != nil {
			return nil, fmt.Errorf("cards.FindDecksBySubject(%s) > %w", subjectID, err)
		}
		return decks, nil
	}

	subjects, err := s.cards.FindSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("cards.FindSubjects() > %w", err)
	}
	var decks []card.Deck
	for _, subject := range subjects {
		subjectDecks, err := s.cards.FindDecksBySubject(ctx, subject.ID)
		if err != nil {
			return nil, fmt.Errorf("cards.FindDecksBySubject(%s) > %w", subject.ID, err)
		}
		decks = append(decks, subjectDecks...)
	}
	return decks, nil
}

// recentEvents returns the events of the decks within the activity window,
// widened to the streak lookback when the window is shorter.
func (s *Service) recentEvents(ctx context.Context, now time.Time, decks []card.Deck) ([]learning.ReviewEvent, error) {
	days := max(1, s.policy.ActivityWindowDays, statistics.StreakLookbackDays)
	from := daysBack(now, days, s.policy.Location)
	to := selector.StartOfDay(now, s.policy.Location).AddDate(0, 0, 1)

	events, err := s.events.FindBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("events.FindBetween(%s, %s) > %w", from.Format(time.DateOnly), to.Format(time.DateOnly), err)
	}

	inScope := make(map[string]struct{}, len(decks))
	for _, deck := range decks {
		inScope[deck.ID] = struct{}{}
	}
	filtered := make([]learning.ReviewEvent, 0, len(events))
	for _, event := range events {
		if _, ok := inScope[event.DeckID]; ok {
			filtered = append(filtered, event)
		}
	}
	return filtered, nil
}

// daysBack returns the start of the first of the trailing days ending today.
func daysBack(now time.Time, days int, loc *time.Location) time.Time {
	return selector.StartOfDay(now, loc).AddDate(0, 0, -(days - 1))
}

func eventsSince(events []learning.ReviewEvent, from time.Time) []learning.ReviewEvent {
	result := make([]learning.ReviewEvent, 0, len(events))
	for _, event := range events {
		if !event.ReviewedAt.Before(from) {
			result = append(result, event)
		}
	}
	return result
}
