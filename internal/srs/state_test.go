package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewCardState(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 123456789, time.UTC)
	got := NewCardState("card-1", now)

	assert.Equal(t, CardState{
		CardID:      "card-1",
		EaseFactor:  DefaultEaseFactor,
		Interval:    0,
		Repetitions: 0,
		DueDate:     now.Truncate(time.Millisecond),
		IsNew:       true,
		CreatedAt:   now.Truncate(time.Millisecond),
	}, got)
	assert.True(t, got.IsDue(now))
}

func TestCardState_IsDue(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		due  time.Time
		want bool
	}{
		{name: "before due date", due: now.Add(time.Millisecond), want: false},
		{name: "on due date", due: now, want: true},
		{name: "after due date", due: now.Add(-48 * time.Hour), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CardState{DueDate: tt.due}.IsDue(now))
		})
	}
}

func TestCardState_Phase(t *testing.T) {
	tests := []struct {
		name  string
		state *CardState
		want  Phase
	}{
		{name: "no state", state: nil, want: PhaseUnseen},
		{name: "new", state: &CardState{IsNew: true}, want: PhaseNew},
		{name: "one repetition", state: &CardState{Repetitions: 1}, want: PhaseLearning},
		{name: "two repetitions", state: &CardState{Repetitions: 2}, want: PhaseLearning},
		{name: "lapsed", state: &CardState{Repetitions: 0}, want: PhaseLearning},
		{name: "three repetitions", state: &CardState{Repetitions: 3}, want: PhaseMature},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PhaseOf(tt.state))
		})
	}
}

func TestDueCards(t *testing.T) {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	states := []CardState{
		{CardID: "future", DueDate: now.Add(time.Hour)},
		{CardID: "b", DueDate: now.Add(-time.Hour)},
		{CardID: "a", DueDate: now.Add(-48 * time.Hour)},
		{CardID: "c", DueDate: now.Add(-time.Hour)},
		{CardID: "now", DueDate: now},
	}

	got := DueCards(states, now)

	ids := make([]string, len(got))
	for i, s := range got {
		ids[i] = s.CardID
	}
	assert.Equal(t, []string{"a", "b", "c", "now"}, ids)
	assert.Equal(t, got, DueCards(states, now))
	assert.Empty(t, DueCards(nil, now))
}

func TestEstimateStudyTime(t *testing.T) {
	tests := []struct {
		dueCount       int
		secondsPerCard float64
		want           int
	}{
		{dueCount: 12, secondsPerCard: 30, want: 6},
		{dueCount: 1, secondsPerCard: 30, want: 1},
		{dueCount: 5, secondsPerCard: 13, want: 2},
		{dueCount: 0, secondsPerCard: 30, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateStudyTime(tt.dueCount, tt.secondsPerCard), "EstimateStudyTime(%d, %v)", tt.dueCount, tt.secondsPerCard)
	}
}
