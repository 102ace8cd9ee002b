package engine

import (
	"math"
	"time"

	"github.com/lunarfavor/habitkit/internal/database/models"
)

// MonthCompletion returns the percentage of scheduled days inside
// [monthStart, monthEnd] that are satisfied, evaluated over the entire
// window regardless of how much of it has elapsed. Dashboards and
// leaderboard scoring use this variant.
func MonthCompletion(habit *models.Habit, satisfied DateSet, monthStart, monthEnd time.Time) int {
	return windowCompletion(habit, satisfied, monthStart, monthEnd)
}

// ElapsedCompletion is MonthCompletion with the window clipped to asOf, for
// in-progress views where scoring the unfinished remainder of the month
// would be misleading.
func ElapsedCompletion(habit *models.Habit, satisfied DateSet, monthStart, asOf time.Time) int {
	_, monthEnd := MonthBounds(monthStart)
	end := Day(asOf)
	if monthEnd.Before(end) {
		end = monthEnd
	}
	return windowCompletion(habit, satisfied, monthStart, end)
}

func windowCompletion(habit *models.Habit, satisfied DateSet, start, end time.Time) int {
	start, end = Day(start), Day(end)

	// The numerator counts every satisfied day in the window, scheduled or
	// not; the denominator counts only scheduled days. Extra off-schedule
	// completions can push the raw ratio past 100, hence the clamp below.
	scheduled, done := 0, 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if satisfied.Contains(day) {
			done++
		}
		if IsScheduled(habit, day) {
			scheduled++
		}
	}
	if scheduled == 0 {
		return 0
	}

	pct := int(math.Round(100 * float64(done) / float64(scheduled)))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
