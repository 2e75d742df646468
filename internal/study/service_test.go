package study

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/kioku/internal/card"
	"github.com/at-ishikawa/kioku/internal/config"
	"github.com/at-ishikawa/kioku/internal/learning"
	mock_card "github.com/at-ishikawa/kioku/internal/mocks/card"
	mock_learning "github.com/at-ishikawa/kioku/internal/mocks/learning"
	mock_schedule "github.com/at-ishikawa/kioku/internal/mocks/schedule"
	"github.com/at-ishikawa/kioku/internal/schedule"
	"github.com/at-ishikawa/kioku/internal/srs"
	"github.com/at-ishikawa/kioku/internal/workload"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type testDeps struct {
	cards  *mock_card.MockRepository
	states *mock_schedule.MockRepository
	events *mock_learning.MockRepository
}

func newTestService(t *testing.T) (*Service, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := testDeps{
		cards:  mock_card.NewMockRepository(ctrl),
		states: mock_schedule.NewMockRepository(ctrl),
		events: mock_learning.NewMockRepository(ctrl),
	}
	s := NewService(deps.cards, deps.states, deps.events, Policy{
		DefaultSecondsPerCard: 30,
		DailyNewCardLimit:     10,
		MasteryPercent:        80,
		ActivityWindowDays:    7,
		Location:              time.UTC,
	})
	s.now = func() time.Time { return testNow }
	s.newID = func() string { return "event-1" }
	s.conflictRetryDelay = time.Millisecond
	return s, deps
}

func TestPolicyFromConfig(t *testing.T) {
	policy, err := PolicyFromConfig(config.SchedulerConfig{
		DefaultSecondsPerCard: 30,
		DailyNewCardLimit:     10,
		MasteryPercent:        80,
		ActivityWindowDays:    30,
		Timezone:              "UTC",
	})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, policy.Location)
	assert.Equal(t, 10, policy.DailyNewCardLimit)

	_, err = PolicyFromConfig(config.SchedulerConfig{Timezone: "Mars/Olympus"})
	assert.Error(t, err)
}

func TestService_Rate(t *testing.T) {
	existing := srs.CardState{
		CardID:         "c1",
		EaseFactor:     2.5,
		Interval:       6,
		Repetitions:    2,
		DueDate:        testNow.Add(-time.Hour),
		LastReviewedAt: testNow.Add(-6 * 24 * time.Hour),
		CreatedAt:      testNow.Add(-7 * 24 * time.Hour),
		Version:        3,
	}

	tests := []struct {
		name         string
		rating       srs.Rating
		responseTime time.Duration
		setup        func(deps testDeps)
		want         srs.CardState
		wantErrIs    error
		wantErr      bool
	}{
		{
			name:         "existing card is updated and event appended",
			rating:       srs.RatingGood,
			responseTime: 4200 * time.Millisecond,
			setup: func(deps testDeps) {
				deps.cards.EXPECT().FindByID(gomock.Any(), "c1").Return(&card.Card{ID: "c1", DeckID: "d1"}, nil)
				state := existing
				deps.states.EXPECT().FindByCardID(gomock.Any(), "c1").Return(&state, nil)
				deps.states.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *srs.CardState) error {
						assert.Equal(t, int64(3), s.Version)
						s.Version++
						return nil
					})
				deps.events.EXPECT().Append(gomock.Any(), learning.ReviewEvent{
					ID:             "event-1",
					CardID:         "c1",
					DeckID:         "d1",
					Rating:         srs.RatingGood,
					ReviewedAt:     testNow,
					ResponseTimeMs: 4200,
					IntervalDays:   15,
					EaseFactor:     2.5,
				}).Return(nil)
			},
			want: srs.CardState{
				CardID:         "c1",
				EaseFactor:     2.5,
				Interval:       15,
				Repetitions:    3,
				DueDate:        testNow.Add(15 * 24 * time.Hour),
				LastReviewedAt: testNow,
				CreatedAt:      existing.CreatedAt,
				Version:        4,
			},
		},
		{
			name:   "unseen card is initialised by the rating",
			rating: srs.RatingAgain,
			setup: func(deps testDeps) {
				deps.cards.EXPECT().FindByID(gomock.Any(), "c1").Return(&card.Card{ID: "c1", DeckID: "d1"}, nil)
				deps.states.EXPECT().FindByCardID(gomock.Any(), "c1").Return(nil, nil)
				deps.states.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *srs.CardState) error {
						s.Version = 1
						return nil
					})
				deps.events.EXPECT().Append(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e learning.ReviewEvent) error {
						assert.Equal(t, 0, e.ResponseTimeMs)
						assert.Equal(t, srs.RatingAgain, e.Rating)
						return nil
					})
			},
			want: srs.CardState{
				CardID:         "c1",
				EaseFactor:     srs.UpdateEaseFactor(2.5, 0),
				Interval:       1,
				Repetitions:    0,
				DueDate:        testNow.Add(24 * time.Hour),
				LastReviewedAt: testNow,
				CreatedAt:      testNow,
				Version:        1,
			},
		},
		{
			name:   "conflict is retried with the fresh state",
			rating: srs.RatingGood,
			setup: func(deps testDeps) {
				deps.cards.EXPECT().FindByID(gomock.Any(), "c1").Return(&card.Card{ID: "c1", DeckID: "d1"}, nil)
				stale := existing
				fresh := existing
				fresh.Repetitions = 0
				fresh.Interval = 1
				fresh.EaseFactor = 1.7
				fresh.Version = 4
				gomock.InOrder(
					deps.states.EXPECT().FindByCardID(gomock.Any(), "c1").Return(&stale, nil),
					deps.states.EXPECT().Update(gomock.Any(), gomock.Any()).Return(fmt.Errorf("update > %w", schedule.ErrConflict)),
					deps.states.EXPECT().FindByCardID(gomock.Any(), "c1").Return(&fresh, nil),
					deps.states.EXPECT().Update(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, s *srs.CardState) error {
							assert.Equal(t, int64(4), s.Version)
							s.Version++
							return nil
						}),
				)
				deps.events.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
			},
			want: srs.CardState{
				CardID:         "c1",
				EaseFactor:     1.7,
				Interval:       1,
				Repetitions:    1,
				DueDate:        testNow.Add(24 * time.Hour),
				LastReviewedAt: testNow,
				CreatedAt:      existing.CreatedAt,
				Version:        5,
			},
		},
		{
			name:   "conflicts that never resolve are returned",
			rating: srs.RatingGood,
			setup: func(deps testDeps) {
				deps.cards.EXPECT().FindByID(gomock.Any(), "c1").Return(&card.Card{ID: "c1", DeckID: "d1"}, nil)
				deps.states.EXPECT().FindByCardID(gomock.Any(), "c1").
					DoAndReturn(func(context.Context, string) (*srs.CardState, error) {
						state := existing
						return &state, nil
					}).Times(maxConflictAttempts)
				deps.states.EXPECT().Update(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("update > %w", schedule.ErrConflict)).Times(maxConflictAttempts)
			},
			wantErrIs: schedule.ErrConflict,
		},
		{
			name:   "storage errors are not retried",
			rating: srs.RatingHard,
			setup: func(deps testDeps) {
				deps.cards.EXPECT().FindByID(gomock.Any(), "c1").Return(&card.Card{ID: "c1", DeckID: "d1"}, nil)
				deps.states.EXPECT().FindByCardID(gomock.Any(), "c1").Return(nil, fmt.Errorf("connection refused")).Times(1)
			},
			wantErr: true,
		},
		{
			name:      "invalid rating touches nothing",
			rating:    "perfect",
			setup:     func(deps testDeps) {},
			wantErrIs: srs.ErrInvalidRating,
		},
		{
			name:   "unknown card",
			rating: srs.RatingGood,
			setup: func(deps testDeps) {
				deps.cards.EXPECT().FindByID(gomock.Any(), "c1").Return(nil, nil)
			},
			wantErrIs: ErrCardNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, deps := newTestService(t)
			tt.setup(deps)

			got, err := s.Rate(context.Background(), "c1", tt.rating, tt.responseTime)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.EaseFactor, got.EaseFactor, 1e-9)
			tt.want.EaseFactor = got.EaseFactor
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 0, s.locks.size())
		})
	}
}

func TestService_Rate_AppendFailureIsSurfaced(t *testing.T) {
	s, deps := newTestService(t)
	deps.cards.EXPECT().FindByID(gomock.Any(), "c1").Return(&card.Card{ID: "c1", DeckID: "d1"}, nil)
	deps.states.EXPECT().FindByCardID(gomock.Any(), "c1").Return(nil, nil)
	deps.states.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	deps.events.EXPECT().Append(gomock.Any(), gomock.Any()).Return(fmt.Errorf("connection refused"))

	got, err := s.Rate(context.Background(), "c1", srs.RatingGood, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "events.Append")
	assert.Equal(t, 1, got.Repetitions)
}

func TestService_StartSession(t *testing.T) {
	t.Run("introduces new cards within the daily limit", func(t *testing.T) {
		s, deps := newTestService(t)
		cards := []card.Card{{ID: "c1", DeckID: "d1"}, {ID: "c2", DeckID: "d1"}, {ID: "c3", DeckID: "d1"}}
		seen := srs.CardState{CardID: "c1", EaseFactor: 2.5, Repetitions: 1, Interval: 1, DueDate: testNow.Add(-time.Hour), Version: 2}

		deps.cards.EXPECT().FindDeck(gomock.Any(), "d1").Return(&card.Deck{ID: "d1", Name: "Verbs"}, nil)
		deps.states.EXPECT().CountCreatedBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(9, nil)
		deps.cards.EXPECT().FindByDeck(gomock.Any(), "d1").Return(cards, nil).Times(2)
		deps.states.EXPECT().FindByCardIDs(gomock.Any(), []string{"c1", "c2", "c3"}).Return([]srs.CardState{seen}, nil)
		var introduced *srs.CardState
		deps.states.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, state *srs.CardState) error {
				assert.Equal(t, "c2", state.CardID)
				introduced = state
				return nil
			})
		deps.states.EXPECT().FindByCardIDs(gomock.Any(), []string{"c1", "c2", "c3"}).
			DoAndReturn(func(context.Context, []string) ([]srs.CardState, error) {
				return []srs.CardState{seen, *introduced}, nil
			})
		deps.events.EXPECT().FindByDeck(gomock.Any(), "d1").Return(nil, nil)

		got, err := s.StartSession(context.Background(), "d1")
		require.NoError(t, err)
		assert.Equal(t, Session{
			DeckID:            "d1",
			CardIDs:           []string{"c1", "c2"},
			NewlyIntroduced:   1,
			RemainingNewCards: 0,
			EstimatedMinutes:  1,
			Workload:          workload.Assess(2, 1),
		}, got)
	})

	t.Run("unknown deck", func(t *testing.T) {
		s, deps := newTestService(t)
		deps.cards.EXPECT().FindDeck(gomock.Any(), "d1").Return(nil, nil)

		_, err := s.StartSession(context.Background(), "d1")
		assert.ErrorIs(t, err, ErrDeckNotFound)
	})
}

func TestCardLocks(t *testing.T) {
	locks := newCardLocks()
	var mu sync.Mutex
	active := 0
	maxActive := 0

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("c1")
			defer unlock()

			mu.Lock()
			active++
			maxActive = max(maxActive, active)
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxActive)
	assert.Equal(t, 0, locks.size())
}
