package engine

import (
	"testing"

	"github.com/lunarfavor/habitkit/internal/database/models"
)

func TestMonthCompletion(t *testing.T) {
	tests := []struct {
		name       string
		habit      *models.Habit
		satisfied  []string
		start, end string
		want       int
	}{
		{
			name:      "half of a 30-day month",
			habit:     testHabit(models.ScheduleDaily, nil, "2024-01-01"),
			satisfied: dayRange("2024-04-01", 15),
			start:     "2024-04-01",
			end:       "2024-04-30",
			want:      50,
		},
		{
			name:      "full month",
			habit:     testHabit(models.ScheduleDaily, nil, "2024-01-01"),
			satisfied: dayRange("2024-04-01", 30),
			start:     "2024-04-01",
			end:       "2024-04-30",
			want:      100,
		},
		{
			name:      "no satisfied days",
			habit:     testHabit(models.ScheduleDaily, nil, "2024-01-01"),
			satisfied: nil,
			start:     "2024-04-01",
			end:       "2024-04-30",
			want:      0,
		},
		{
			name:      "weekly habit only counts scheduled denominator",
			habit:     testHabit(models.ScheduleWeekly, []int{1}, "2024-01-01"), // Mondays
			satisfied: []string{"2024-04-01", "2024-04-08", "2024-04-15", "2024-04-22", "2024-04-29"},
			start:     "2024-04-01",
			end:       "2024-04-30",
			want:      100,
		},
		{
			name:      "zero scheduled days yields zero",
			habit:     testHabit(models.ScheduleWeekly, []int{1}, "2024-01-01"),
			satisfied: nil,
			start:     "2024-04-02", // Tuesday
			end:       "2024-04-02",
			want:      0,
		},
		{
			name:  "off-schedule completions clamp at 100",
			habit: testHabit(models.ScheduleWeekly, []int{1}, "2024-01-01"),
			// One scheduled Monday plus extra completions on unscheduled days.
			satisfied: []string{"2024-04-01", "2024-04-02", "2024-04-03"},
			start:     "2024-04-01",
			end:       "2024-04-07",
			want:      100,
		},
		{
			name:      "rounding",
			habit:     testHabit(models.ScheduleDaily, nil, "2024-01-01"),
			satisfied: dayRange("2024-04-01", 1),
			start:     "2024-04-01",
			end:       "2024-04-03",
			want:      33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthCompletion(tt.habit, dateSet(t, tt.satisfied...), day(t, tt.start), day(t, tt.end))
			if got != tt.want {
				t.Errorf("MonthCompletion() = %d, want %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("MonthCompletion() = %d out of [0,100]", got)
			}
		})
	}
}

func TestElapsedCompletion(t *testing.T) {
	habit := testHabit(models.ScheduleDaily, nil, "2024-01-01")

	// Ten days into April, every elapsed day done: the elapsed view reads
	// 100 while the full-month view reads a third.
	satisfied := dateSet(t, dayRange("2024-04-01", 10)...)
	monthStart := day(t, "2024-04-01")
	asOf := day(t, "2024-04-10")

	if got := ElapsedCompletion(habit, satisfied, monthStart, asOf); got != 100 {
		t.Errorf("ElapsedCompletion() = %d, want 100", got)
	}
	if got := MonthCompletion(habit, satisfied, monthStart, day(t, "2024-04-30")); got != 33 {
		t.Errorf("MonthCompletion() = %d, want 33", got)
	}

	// asOf past the month end clips to the month end, making the two
	// variants agree.
	late := day(t, "2024-05-15")
	if got, want := ElapsedCompletion(habit, satisfied, monthStart, late), 33; got != want {
		t.Errorf("ElapsedCompletion(past month) = %d, want %d", got, want)
	}
}

// dayRange returns n consecutive day keys starting at start.
func dayRange(start string, n int) []string {
	first, err := ParseDay(start)
	if err != nil {
		panic(err)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, DayKey(first.AddDate(0, 0, i)))
	}
	return out
}
