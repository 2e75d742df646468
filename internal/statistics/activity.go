package statistics

import (
	"fmt"
	"sort"
	"time"

	"github.com/at-ishikawa/kioku/internal/learning"
	"github.com/at-ishikawa/kioku/internal/srs"
)

// StreakLookbackDays bounds how far back a streak is counted.
const StreakLookbackDays = 30

// DayActivity is the number of reviews on one local calendar date.
type DayActivity struct {
	Date  string // 2006-01-02
	Count int
}

// ActivityByDay counts events per local date within the trailing windowDays
// days ending today. Dates without events are omitted and the result is in
// ascending date order.
func ActivityByDay(events []learning.ReviewEvent, now time.Time, windowDays int, loc *time.Location) []DayActivity {
	if windowDays <= 0 {
		return []DayActivity{}
	}
	if loc == nil {
		loc = time.Local
	}
	today := startOfDay(now, loc)
	from := today.AddDate(0, 0, -(windowDays - 1))
	to := today.AddDate(0, 0, 1)

	counts := make(map[string]int)
	for _, event := range events {
		if event.ReviewedAt.Before(from) || !event.ReviewedAt.Before(to) {
			continue
		}
		counts[localDate(event.ReviewedAt, loc)]++
	}

	activity := make([]DayActivity, 0, len(counts))
	for date, count := range counts {
		activity = append(activity, DayActivity{Date: date, Count: count})
	}
	sort.Slice(activity, func(i, j int) bool {
		return activity[i].Date < activity[j].Date
	})
	return activity
}

// Streak counts consecutive active days walking back from today. Today
// always counts, reviewed or not. The walk stops at the first day without
// activity or after StreakLookbackDays days.
func Streak(activity []DayActivity, now time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	active := make(map[string]bool, len(activity))
	for _, day := range activity {
		if day.Count > 0 {
			active[day.Date] = true
		}
	}

	today := startOfDay(now, loc)
	streak := 1
	for i := 1; i < StreakLookbackDays; i++ {
		if !active[today.AddDate(0, 0, -i).Format(time.DateOnly)] {
			break
		}
		streak++
	}
	return streak
}

// PeriodActivity holds review counts for a month.
type PeriodActivity struct {
	Period      string // "2025-01"
	Reviews     int
	UniqueCards int
	FirstPasses int // first successful rating of a card
	Lapses      int // ratings of "again"
}

// ActivityReport holds per-month activity and totals over all months.
type ActivityReport struct {
	Periods     []PeriodActivity
	Reviews     int
	UniqueCards int
	FirstPasses int
	Lapses      int
}

type periodData struct {
	reviews     int
	firstPasses int
	lapses      int
	cards       map[string]struct{}
}

// ActivityByMonth groups events by local month, newest month first.
// It accepts optional year and month filters (0 means no filter). A card's
// first successful rating is still recognised when it falls outside the
// filter, so later ratings are never counted as first passes.
func ActivityByMonth(events []learning.ReviewEvent, loc *time.Location, year, month int) ActivityReport {
	if loc == nil {
		loc = time.Local
	}

	sorted := make([]learning.ReviewEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReviewedAt.Before(sorted[j].ReviewedAt)
	})

	periods := make(map[string]*periodData)
	passed := make(map[string]struct{})
	allCards := make(map[string]struct{})
	for _, event := range sorted {
		local := event.ReviewedAt.In(loc)
		_, passedBefore := passed[event.CardID]
		if event.Rating != srs.RatingAgain {
			passed[event.CardID] = struct{}{}
		}
		if !matchesFilter(local.Year(), int(local.Month()), year, month) {
			continue
		}

		key := fmt.Sprintf("%d-%02d", local.Year(), int(local.Month()))
		data, ok := periods[key]
		if !ok {
			data = &periodData{cards: make(map[string]struct{})}
			periods[key] = data
		}
		data.reviews++
		data.cards[event.CardID] = struct{}{}
		allCards[event.CardID] = struct{}{}
		switch {
		case event.Rating == srs.RatingAgain:
			data.lapses++
		case !passedBefore:
			data.firstPasses++
		}
	}

	report := ActivityReport{
		Periods:     make([]PeriodActivity, 0, len(periods)),
		UniqueCards: len(allCards),
	}
	for key, data := range periods {
		report.Periods = append(report.Periods, PeriodActivity{
			Period:      key,
			Reviews:     data.reviews,
			UniqueCards: len(data.cards),
			FirstPasses: data.firstPasses,
			Lapses:      data.lapses,
		})
		report.Reviews += data.reviews
		report.FirstPasses += data.firstPasses
		report.Lapses += data.lapses
	}

	// Newest first
	sort.Slice(report.Periods, func(i, j int) bool {
		return report.Periods[i].Period > report.Periods[j].Period
	})
	return report
}

func matchesFilter(eventYear, eventMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if eventYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return eventMonth == filterMonth
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

func localDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.DateOnly)
}
