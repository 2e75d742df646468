package srs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRating is returned for a rating outside again, hard, good and easy.
var ErrInvalidRating = errors.New("invalid rating")

// Rating is the learner's answer to a single card review.
type Rating string

const (
	RatingAgain Rating = "again"
	RatingHard  Rating = "hard"
	RatingGood  Rating = "good"
	RatingEasy  Rating = "easy"
)

// Ratings lists the valid ratings from worst to best.
var Ratings = []Rating{RatingAgain, RatingHard, RatingGood, RatingEasy}

// ParseRating converts user input like "Good" or " easy " into a Rating.
func ParseRating(s string) (Rating, error) {
	r := Rating(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRating, s)
	}
	return r, nil
}

// IsValid reports whether r is one of the four known ratings.
func (r Rating) IsValid() bool {
	switch r {
	case RatingAgain, RatingHard, RatingGood, RatingEasy:
		return true
	}
	return false
}

// Quality maps a rating to the SM-2 quality grade (0-5).
func (r Rating) Quality() (int, error) {
	switch r {
	case RatingAgain:
		return 0, nil
	case RatingHard:
		return 3, nil
	case RatingGood:
		return 4, nil
	case RatingEasy:
		return 5, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRating, string(r))
}

func (r Rating) String() string {
	return string(r)
}
