package engine

import (
	"time"

	"github.com/lunarfavor/habitkit/internal/database/models"
)

// CurrentStreak counts consecutive scheduled-and-satisfied days walking
// backward from asOf. Unscheduled days are transparent: they neither extend
// nor break the run. The walk never descends past the habit's start date.
func CurrentStreak(habit *models.Habit, satisfied DateSet, asOf time.Time) int {
	start := Day(habit.StartDate)
	day := Day(asOf)

	streak := 0
	for !day.Before(start) {
		if !IsScheduled(habit, day) {
			day = day.AddDate(0, 0, -1)
			continue
		}
		if !satisfied.Contains(day) {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak scans the satisfied set from its earliest to its latest day
// and returns the best run ever recorded. A scheduled day with no record
// resets the run; unscheduled days are skipped.
//
// For any snapshot, LongestStreak >= CurrentStreak.
func LongestStreak(habit *models.Habit, satisfied DateSet) int {
	earliest, latest, ok := satisfied.Bounds()
	if !ok {
		return 0
	}

	// Days before the habit existed never count.
	if start := Day(habit.StartDate); earliest.Before(start) {
		earliest = start
	}

	best, run := 0, 0
	for day := earliest; !day.After(latest); day = day.AddDate(0, 0, 1) {
		if !IsScheduled(habit, day) {
			continue
		}
		if satisfied.Contains(day) {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}
