// Package streak implements the daily-visit evaluation that drives the
// frog's growth stage.
package streak

import "time"

// Classification describes the outcome of a visit evaluation
type Classification string

const (
	// FirstVisit is the very first visit; the stage is kept as-is
	FirstVisit Classification = "first-visit"
	// AlreadyVisitedToday means today's visit already counted
	AlreadyVisitedToday Classification = "already-visited-today"
	// Evolved means the frog advanced one stage
	Evolved Classification = "evolved"
	// MaxStageHeld means the streak continued at the final stage
	MaxStageHeld Classification = "max-stage-held"
	// Reset means at least one full day was missed; back to the egg
	Reset Classification = "reset"
)

// maxStage is the final growth stage
const maxStage = 4

// Evaluate maps (now, lastVisit, currentStage) to the new stage and its
// classification. It is pure; the caller persists (newStage, now) except
// on the AlreadyVisitedToday path, where no write must occur.
//
// The same-calendar-day check runs before the elapsed-day branch, so a
// cross-midnight visit evolves the frog even when less than 24 hours
// have passed.
func Evaluate(now time.Time, lastVisit *time.Time, currentStage int) (int, Classification) {
	if lastVisit == nil {
		return currentStage, FirstVisit
	}

	if sameCalendarDay(now, *lastVisit) {
		return currentStage, AlreadyVisitedToday
	}

	diffDays := int(now.Sub(*lastVisit).Abs().Hours() / 24)
	if diffDays <= 1 {
		if currentStage < maxStage {
			return currentStage + 1, Evolved
		}
		return maxStage, MaxStageHeld
	}

	return 0, Reset
}

// sameCalendarDay reports whether two instants fall on the same
// year/month/day in their own locations
func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
