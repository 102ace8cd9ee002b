package engine

import (
	"testing"

	"github.com/lunarfavor/habitkit/internal/database/models"
)

func dateSet(t *testing.T, days ...string) DateSet {
	t.Helper()
	s := make(DateSet, len(days))
	for _, d := range days {
		s.Add(day(t, d))
	}
	return s
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name      string
		habit     *models.Habit
		satisfied []string
		asOf      string
		want      int
	}{
		{
			name:      "consecutive daily run ending today",
			habit:     testHabit(models.ScheduleDaily, nil, "2024-01-01"),
			satisfied: []string{"2024-01-08", "2024-01-09", "2024-01-10"},
			asOf:      "2024-01-10",
			want:      3,
		},
		{
			name:      "miss today stops immediately",
			habit:     testHabit(models.ScheduleDaily, nil, "2024-01-01"),
			satisfied: []string{"2024-01-08", "2024-01-09"},
			asOf:      "2024-01-10",
			want:      0,
		},
		{
			name:      "gap earlier in the run",
			habit:     testHabit(models.ScheduleDaily, nil, "2024-01-01"),
			satisfied: []string{"2024-01-06", "2024-01-08", "2024-01-09", "2024-01-10"},
			asOf:      "2024-01-10",
			want:      3,
		},
		{
			name:  "unscheduled tuesday does not break mon-wed-fri habit",
			habit: testHabit(models.ScheduleWeekly, []int{1, 3, 5}, "2024-01-01"),
			// Mon 01-01, Wed 01-03, Fri 01-05; Tuesday 01-02 untouched.
			satisfied: []string{"2024-01-01", "2024-01-03", "2024-01-05"},
			asOf:      "2024-01-05",
			want:      3,
		},
		{
			name:      "asOf on unscheduled day continues from last scheduled",
			habit:     testHabit(models.ScheduleWeekly, []int{1, 3, 5}, "2024-01-01"),
			satisfied: []string{"2024-01-01", "2024-01-03", "2024-01-05"},
			asOf:      "2024-01-06", // Saturday
			want:      3,
		},
		{
			name:      "walk stops at habit start date",
			habit:     testHabit(models.ScheduleDaily, nil, "2024-01-08"),
			satisfied: []string{"2024-01-06", "2024-01-07", "2024-01-08", "2024-01-09"},
			asOf:      "2024-01-09",
			want:      2,
		},
		{
			name:      "empty satisfied set",
			habit:     testHabit(models.ScheduleDaily, nil, "2024-01-01"),
			satisfied: nil,
			asOf:      "2024-01-10",
			want:      0,
		},
		{
			name:  "freeze bridges a missed day",
			habit: testHabit(models.ScheduleDaily, nil, "2024-01-01"),
			// Completions 01..02 and 04..05, freeze applied on 01-03: the
			// merged satisfied set covers all five days.
			satisfied: []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"},
			asOf:      "2024-01-05",
			want:      5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentStreak(tt.habit, dateSet(t, tt.satisfied...), day(t, tt.asOf))
			if got != tt.want {
				t.Errorf("CurrentStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name      string
		habit     *models.Habit
		satisfied []string
		want      int
	}{
		{
			name:      "empty set",
			habit:     testHabit(models.ScheduleDaily, nil, "2024-01-01"),
			satisfied: nil,
			want:      0,
		},
		{
			name:      "single day",
			habit:     testHabit(models.ScheduleDaily, nil, "2024-01-01"),
			satisfied: []string{"2024-01-05"},
			want:      1,
		},
		{
			name:      "best run is in the past",
			habit:     testHabit(models.ScheduleDaily, nil, "2024-01-01"),
			satisfied: []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-07"},
			want:      4,
		},
		{
			name:      "scheduled miss resets the run",
			habit:     testHabit(models.ScheduleDaily, nil, "2024-01-01"),
			satisfied: []string{"2024-01-01", "2024-01-03", "2024-01-04"},
			want:      2,
		},
		{
			name:  "unscheduled days are transparent",
			habit: testHabit(models.ScheduleWeekly, []int{1, 3, 5}, "2024-01-01"),
			// Two full Mon/Wed/Fri weeks, weekend and Tue/Thu gaps ignored.
			satisfied: []string{"2024-01-01", "2024-01-03", "2024-01-05", "2024-01-08", "2024-01-10", "2024-01-12"},
			want:      6,
		},
		{
			name:      "freeze scenario from the ledger",
			habit:     testHabit(models.ScheduleDaily, nil, "2024-01-01"),
			satisfied: []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"},
			want:      5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LongestStreak(tt.habit, dateSet(t, tt.satisfied...))
			if got != tt.want {
				t.Errorf("LongestStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Longest can never report less than the live streak over the same snapshot.
func TestLongestAtLeastCurrent(t *testing.T) {
	habits := []*models.Habit{
		testHabit(models.ScheduleDaily, nil, "2024-01-01"),
		testHabit(models.ScheduleWeekly, []int{1, 3, 5}, "2024-01-01"),
		testHabit(models.ScheduleCustom, []int{0, 6}, "2024-01-01"),
	}
	sets := []DateSet{
		dateSet(t),
		dateSet(t, "2024-01-01"),
		dateSet(t, "2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05", "2024-01-06", "2024-01-07"),
		dateSet(t, "2024-01-03", "2024-01-05", "2024-01-08", "2024-01-10", "2024-01-12"),
	}

	asOf := day(t, "2024-01-12")
	for _, h := range habits {
		for _, s := range sets {
			current := CurrentStreak(h, s, asOf)
			longest := LongestStreak(h, s)
			if longest < current {
				t.Errorf("habit %s: longest %d < current %d for set %v", h.Schedule, longest, current, s)
			}
		}
	}
}
