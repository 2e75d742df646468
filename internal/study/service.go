// Package study drives the scheduler core against storage: it records
// ratings, opens sessions and builds overviews.
package study

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/kioku/internal/card"
	"github.com/at-ishikawa/kioku/internal/config"
	"github.com/at-ishikawa/kioku/internal/learning"
	"github.com/at-ishikawa/kioku/internal/schedule"
	"github.com/at-ishikawa/kioku/internal/selector"
	"github.com/at-ishikawa/kioku/internal/statistics"
)

var (
	ErrCardNotFound = errors.New("card not found")
	ErrDeckNotFound = errors.New("deck not found")
)

// Policy is the study policy applied by the Service.
type Policy struct {
	DefaultSecondsPerCard float64
	DailyNewCardLimit     int
	MasteryPercent        int
	ActivityWindowDays    int
	Location              *time.Location
}

// PolicyFromConfig converts the scheduler configuration into a Policy.
func PolicyFromConfig(cfg config.SchedulerConfig) (Policy, error) {
	loc, err := cfg.Location()
	if err != nil {
		return Policy{}, fmt.Errorf("cfg.Location() > %w", err)
	}
	return Policy{
		DefaultSecondsPerCard: cfg.DefaultSecondsPerCard,
		DailyNewCardLimit:     cfg.DailyNewCardLimit,
		MasteryPercent:        cfg.MasteryPercent,
		ActivityWindowDays:    cfg.ActivityWindowDays,
		Location:              loc,
	}, nil
}

// Service is safe for concurrent use.
type Service struct {
	cards    card.Repository
	states   schedule.Repository
	events   learning.Repository
	selector *selector.Selector
	intake   *selector.Intake
	policy   Policy
	locks    *cardLocks

	now   func() time.Time
	newID func() string

	conflictRetryDelay time.Duration
}

// NewService creates a Service.
func NewService(cards card.Repository, states schedule.Repository, events learning.Repository, policy Policy) *Service {
	if policy.Location == nil {
		policy.Location = time.Local
	}
	if policy.MasteryPercent <= 0 {
		policy.MasteryPercent = statistics.DefaultMasteryPercent
	}
	return &Service{
		cards:              cards,
		states:             states,
		events:             events,
		selector:           selector.New(cards, states),
		intake:             selector.NewIntake(states, policy.DailyNewCardLimit, policy.Location),
		policy:             policy,
		locks:              newCardLocks(),
		now:                time.Now,
		newID:              uuid.NewString,
		conflictRetryDelay: 20 * time.Millisecond,
	}
}
