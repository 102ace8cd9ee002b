package engine

import (
	"time"
)

// DayFormat is the canonical key for a calendar day. All engine computations
// operate on whole days; callers resolve "today" once and pass it in.
const DayFormat = "2006-01-02"

// Day truncates t to a calendar day in UTC. Every date entering the engine
// goes through this so that wall-clock components never influence results.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey returns the canonical string form of a calendar day.
func DayKey(t time.Time) string {
	return Day(t).Format(DayFormat)
}

// ParseDay parses a YYYY-MM-DD value into a calendar day.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, s, time.UTC)
}

// DaysBetween returns the whole-day distance from a to b (positive when b is
// after a). Both arguments are normalized first, so partial days never round.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// MonthBounds returns the first and last day of the calendar month containing t.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	d := Day(t)
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// DateSet is a set of calendar days keyed by DayKey. For streak and
// percentage purposes completions and freezes are merged into one set, so a
// day backed by both records still counts once.
type DateSet map[string]struct{}

func NewDateSet(dates ...time.Time) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s.Add(d)
	}
	return s
}

func (s DateSet) Add(t time.Time) {
	s[DayKey(t)] = struct{}{}
}

func (s DateSet) Contains(t time.Time) bool {
	_, ok := s[DayKey(t)]
	return ok
}

// Bounds returns the earliest and latest day in the set. ok is false for an
// empty set.
func (s DateSet) Bounds() (earliest, latest time.Time, ok bool) {
	for key := range s {
		d, err := ParseDay(key)
		if err != nil {
			continue
		}
		if !ok {
			earliest, latest = d, d
			ok = true
			continue
		}
		if d.Before(earliest) {
			earliest = d
		}
		if d.After(latest) {
			latest = d
		}
	}
	return earliest, latest, ok
}
