package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateEaseFactor(t *testing.T) {
	tests := []struct {
		name     string
		ef       float64
		quality  int
		expected float64
	}{
		{
			name:     "quality 5 increases EF",
			ef:       2.5,
			quality:  5,
			expected: 2.6,
		},
		{
			name:     "quality 4 maintains EF",
			ef:       2.5,
			quality:  4,
			expected: 2.5,
		},
		{
			name:     "quality 3 decreases EF slightly",
			ef:       2.5,
			quality:  3,
			expected: 2.36,
		},
		{
			name:     "quality 0 full penalty",
			ef:       2.5,
			quality:  0,
			expected: 1.7,
		},
		{
			name:     "never goes below MinEaseFactor",
			ef:       1.5,
			quality:  0,
			expected: MinEaseFactor,
		},
		{
			name:     "default EF when zero",
			ef:       0,
			quality:  5,
			expected: 2.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpdateEaseFactor(tt.ef, tt.quality)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestCalculateNextInterval(t *testing.T) {
	tests := []struct {
		name         string
		rating       Rating
		lastInterval int
		ef           float64
		repetitions  int
		expected     int
	}{
		{
			name:         "again always restarts at one day",
			rating:       RatingAgain,
			lastInterval: 120,
			ef:           2.5,
			repetitions:  0,
			expected:     1,
		},
		{
			name:         "first success",
			rating:       RatingGood,
			lastInterval: 0,
			ef:           2.5,
			repetitions:  1,
			expected:     1,
		},
		{
			name:         "second success",
			rating:       RatingGood,
			lastInterval: 1,
			ef:           2.5,
			repetitions:  2,
			expected:     6,
		},
		{
			name:         "third success multiplies by ease",
			rating:       RatingGood,
			lastInterval: 6,
			ef:           2.5,
			repetitions:  3,
			expected:     15,
		},
		{
			name:         "hard on first success stays at one day",
			rating:       RatingHard,
			lastInterval: 0,
			ef:           2.36,
			repetitions:  1,
			expected:     1,
		},
		{
			name:         "hard scales the second interval",
			rating:       RatingHard,
			lastInterval: 1,
			ef:           2.36,
			repetitions:  2,
			expected:     7, // round(6 * 1.2)
		},
		{
			name:         "easy does not scale early repetitions",
			rating:       RatingEasy,
			lastInterval: 1,
			ef:           2.7,
			repetitions:  2,
			expected:     6,
		},
		{
			name:         "easy scales mature repetitions",
			rating:       RatingEasy,
			lastInterval: 6,
			ef:           2.7,
			repetitions:  3,
			expected:     21, // round(round(6 * 2.7) * 1.3) = round(16 * 1.3)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateNextInterval(tt.rating, tt.lastInterval, tt.ef, tt.repetitions)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNext(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("good three times in succession", func(t *testing.T) {
		state := NewCardState("card-1", now)
		reviewedAt := now
		for i := 0; i < 3; i++ {
			var err error
			state, err = Next(state, RatingGood, reviewedAt)
			require.NoError(t, err)
			reviewedAt = state.DueDate
		}

		assert.Equal(t, 3, state.Repetitions)
		assert.Equal(t, 15, state.Interval)
		assert.InDelta(t, 2.5, state.EaseFactor, 1e-9)
		assert.False(t, state.IsNew)
	})

	t.Run("again on a new card", func(t *testing.T) {
		got, err := Next(NewCardState("card-1", now), RatingAgain, now)
		require.NoError(t, err)

		assert.Equal(t, 0, got.Repetitions)
		assert.Equal(t, 1, got.Interval)
		assert.InDelta(t, 1.7, got.EaseFactor, 1e-9)
		assert.Equal(t, now.Add(Day), got.DueDate)
		assert.Equal(t, now, got.LastReviewedAt)
	})

	t.Run("first two successes are fixed", func(t *testing.T) {
		first, err := Next(NewCardState("card-1", now), RatingGood, now)
		require.NoError(t, err)
		assert.Equal(t, 1, first.Interval)
		assert.Equal(t, 1, first.Repetitions)

		second, err := Next(first, RatingGood, first.DueDate)
		require.NoError(t, err)
		assert.Equal(t, 6, second.Interval)
		assert.Equal(t, 2, second.Repetitions)
		assert.Equal(t, first.DueDate.Add(6*Day), second.DueDate)
	})

	t.Run("failure resets a mature card", func(t *testing.T) {
		mature := CardState{CardID: "card-1", EaseFactor: 2.8, Interval: 40, Repetitions: 6, DueDate: now}
		got, err := Next(mature, RatingAgain, now)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Repetitions)
		assert.Equal(t, 1, got.Interval)
		assert.Equal(t, PhaseLearning, got.Phase())
	})

	t.Run("keeps identity fields", func(t *testing.T) {
		current := NewCardState("card-9", now)
		current.Version = 4
		got, err := Next(current, RatingEasy, now.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, "card-9", got.CardID)
		assert.Equal(t, int64(4), got.Version)
		assert.Equal(t, current.CreatedAt, got.CreatedAt)
	})

	t.Run("rejects unknown rating", func(t *testing.T) {
		_, err := Next(NewCardState("card-1", now), Rating("perfect"), now)
		assert.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("rejects state without card id", func(t *testing.T) {
		_, err := Next(CardState{EaseFactor: 2.5}, RatingGood, now)
		assert.Error(t, err)
	})
}

func TestNext_EaseFloor(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, ef := range []float64{1.3, 1.31, 1.5, 2.0, 2.5, 3.2} {
		for _, reps := range []int{0, 1, 2, 3, 8} {
			for _, rating := range Ratings {
				state := CardState{CardID: "c", EaseFactor: ef, Repetitions: reps, Interval: reps * 3}
				got, err := Next(state, rating, now)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, got.EaseFactor, MinEaseFactor)
				assert.GreaterOrEqual(t, got.Interval, 1)
			}
		}
	}
}

func TestNext_DueDateNonDecreasing(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	sequence := []Rating{RatingGood, RatingHard, RatingEasy, RatingAgain, RatingGood, RatingGood, RatingEasy}

	state := NewCardState("card-1", now)
	for _, rating := range sequence {
		next, err := Next(state, rating, state.DueDate)
		require.NoError(t, err)
		assert.False(t, next.DueDate.Before(state.DueDate), "rating %s moved due date backwards", rating)
		state = next
	}
}
