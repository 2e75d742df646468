package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRating(t *testing.T) {
	tests := []struct {
		input   string
		want    Rating
		wantErr bool
	}{
		{input: "again", want: RatingAgain},
		{input: "Hard", want: RatingHard},
		{input: " good ", want: RatingGood},
		{input: "EASY", want: RatingEasy},
		{input: "", wantErr: true},
		{input: "perfect", wantErr: true},
		{input: "4", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRating(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRating)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRating_Quality(t *testing.T) {
	want := map[Rating]int{RatingAgain: 0, RatingHard: 3, RatingGood: 4, RatingEasy: 5}
	for rating, quality := range want {
		got, err := rating.Quality()
		require.NoError(t, err)
		assert.Equal(t, quality, got, "quality of %s", rating)
	}

	_, err := Rating("unknown").Quality()
	assert.ErrorIs(t, err, ErrInvalidRating)
}
