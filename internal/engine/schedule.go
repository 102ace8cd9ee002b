package engine

import (
	"time"

	"github.com/lunarfavor/habitkit/internal/database/models"
)

// IsScheduled reports whether the habit's recurrence policy expects action on
// the given calendar day.
//
// Weekly and custom habits with an empty weekday set degrade to "every day"
// rather than erroring; a habit that can never be scheduled would make every
// derived stat meaningless.
func IsScheduled(habit *models.Habit, date time.Time) bool {
	switch habit.Schedule {
	case models.ScheduleWeekly, models.ScheduleCustom:
		if len(habit.Weekdays) == 0 {
			return true
		}
		wd := int(Day(date).Weekday())
		for _, d := range habit.Weekdays {
			if d == wd {
				return true
			}
		}
		return false
	default:
		// Daily, and any unrecognized kind, schedules every day.
		return true
	}
}
