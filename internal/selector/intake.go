package selector

import (
	"context"
	"fmt"
	"time"
)

// CreatedCounter counts the states introduced within a time range.
type CreatedCounter interface {
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
}

// Intake enforces the daily cap on newly introduced cards. The count of
// cards introduced today comes from storage, so the cap holds across
// processes and restarts.
type Intake struct {
	counter    CreatedCounter
	dailyLimit int
	location   *time.Location
}

// NewIntake creates an Intake. A nil location means time.Local.
func NewIntake(counter CreatedCounter, dailyLimit int, location *time.Location) *Intake {
	if location == nil {
		location = time.Local
	}
	return &Intake{
		counter:    counter,
		dailyLimit: dailyLimit,
		location:   location,
	}
}

// RemainingNewCards returns how many cards can still be introduced on the
// local day containing now.
func (i *Intake) RemainingNewCards(ctx context.Context, now time.Time) (int, error) {
	from := StartOfDay(now, i.location)
	to := from.AddDate(0, 0, 1)
	introduced, err := i.counter.CountCreatedBetween(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("counter.CountCreatedBetween(%s) > %w", from.Format(time.DateOnly), err)
	}
	return max(0, i.dailyLimit-introduced), nil
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time, location *time.Location) time.Time {
	local := t.In(location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location)
}
