package srs

import (
	"errors"
	"math"
	"time"
)

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3

	// MatureRepetitions is the number of consecutive successful reviews
	// after which a card counts as mature.
	MatureRepetitions = 3

	hardIntervalScale = 1.2
	easyIntervalScale = 1.3
)

// Day is the length of one interval unit.
const Day = 24 * time.Hour

// UpdateEaseFactor applies the SM-2 ease delta for the quality grade.
// The delta is computed from the pre-update ease and applied on pass and fail alike.
func UpdateEaseFactor(ef float64, quality int) float64 {
	if ef == 0 {
		ef = DefaultEaseFactor
	}

	q := float64(quality)
	delta := 0.1 - (5-q)*(0.08+(5-q)*0.02)
	return math.Max(ef+delta, MinEaseFactor)
}

// CalculateNextInterval returns the interval in days after a rating.
// repetitions is the count after the current review has been applied.
func CalculateNextInterval(rating Rating, lastInterval int, ef float64, repetitions int) int {
	if rating == RatingAgain {
		return 1
	}

	var interval int
	switch repetitions {
	case 1:
		interval = 1
	case 2:
		interval = 6
	default:
		interval = int(math.Round(float64(lastInterval) * ef))
	}

	switch {
	case rating == RatingHard:
		interval = max(1, int(math.Round(float64(interval)*hardIntervalScale)))
	case rating == RatingEasy && repetitions > 2:
		interval = int(math.Round(float64(interval) * easyIntervalScale))
	}
	return interval
}

// Next computes the state that follows current after the learner rated it at now.
// The result is a new value; persisting it is the caller's job.
func Next(current CardState, rating Rating, now time.Time) (CardState, error) {
	quality, err := rating.Quality()
	if err != nil {
		return CardState{}, err
	}
	if current.CardID == "" {
		return CardState{}, errors.New("card state without card id")
	}

	next := current
	next.EaseFactor = UpdateEaseFactor(current.EaseFactor, quality)

	if rating == RatingAgain {
		next.Repetitions = 0
	} else {
		next.Repetitions = current.Repetitions + 1
	}
	next.Interval = CalculateNextInterval(rating, current.Interval, next.EaseFactor, next.Repetitions)

	now = now.Truncate(time.Millisecond)
	next.DueDate = now.Add(time.Duration(next.Interval) * Day)
	next.LastReviewedAt = now
	next.IsNew = false
	return next, nil
}
