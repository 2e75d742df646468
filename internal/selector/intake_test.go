package selector

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_schedule "github.com/at-ishikawa/kioku/internal/mocks/schedule"
)

func TestIntake_RemainingNewCards(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2025-03-10 01:30 in Tokyo, still 2025-03-09 in UTC
	now := time.Date(2025, 3, 9, 16, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		introduced int
		countErr   error
		want       int
		wantErr    bool
	}{
		{name: "nothing introduced yet", introduced: 0, want: 10},
		{name: "some introduced", introduced: 4, want: 6},
		{name: "limit reached", introduced: 10, want: 0},
		{name: "over limit never goes negative", introduced: 13, want: 0},
		{name: "storage error", countErr: fmt.Errorf("connection refused"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			states := mock_schedule.NewMockRepository(ctrl)
			states.EXPECT().
				CountCreatedBetween(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, from, to time.Time) (int, error) {
					assert.True(t, from.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, tokyo)))
					assert.True(t, to.Equal(time.Date(2025, 3, 11, 0, 0, 0, 0, tokyo)))
					return tt.introduced, tt.countErr
				})

			got, err := NewIntake(states, 10, tokyo).RemainingNewCards(context.Background(), now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("PST", -8*60*60)
	got := StartOfDay(time.Date(2025, 3, 10, 5, 0, 0, 0, time.UTC), loc)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, loc), got)
}
