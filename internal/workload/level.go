package workload

import "fmt"

// Level is a coarse classification of a study session's size.
type Level string

const (
	LevelLight        Level = "light"
	LevelModerate     Level = "moderate"
	LevelHeavy        Level = "heavy"
	LevelOverwhelming Level = "overwhelming"
)

// Assessment is a level with a message for the learner.
type Assessment struct {
	Level   Level
	Message string
}

var thresholds = []struct {
	level      Level
	maxDue     int
	maxMinutes int
}{
	{level: LevelLight, maxDue: 10, maxMinutes: 10},
	{level: LevelModerate, maxDue: 25, maxMinutes: 20},
	{level: LevelHeavy, maxDue: 50, maxMinutes: 40},
}

// Assess classifies a session of dueCount cards taking minutes.
func Assess(dueCount, minutes int) Assessment {
	if dueCount <= 0 {
		return Assessment{Level: LevelLight, Message: "All caught up, nothing is due"}
	}
	for _, t := range thresholds {
		if dueCount <= t.maxDue && minutes <= t.maxMinutes {
			return Assessment{Level: t.level, Message: message(t.level, dueCount, minutes)}
		}
	}
	return Assessment{Level: LevelOverwhelming, Message: message(LevelOverwhelming, dueCount, minutes)}
}

func message(level Level, dueCount, minutes int) string {
	switch level {
	case LevelLight:
		return fmt.Sprintf("A quick session: %d cards in about %d min", dueCount, minutes)
	case LevelModerate:
		return fmt.Sprintf("A steady session: %d cards in about %d min", dueCount, minutes)
	case LevelHeavy:
		return fmt.Sprintf("A long session: %d cards in about %d min", dueCount, minutes)
	default:
		return fmt.Sprintf("%d cards are due (about %d min), consider splitting the session", dueCount, minutes)
	}
}
