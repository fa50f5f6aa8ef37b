package schedule

import (
	"strings"
	"time"
)

// DayRule is one weekday's switch in the institutional loan policy.
type DayRule struct {
	Enabled bool
}

// DayRuleConfig is the loan policy consumed from the lending backend:
// which weekdays a rental may start on, which it must end on, and how
// long it may run. Read-only for this service.
type DayRuleConfig struct {
	Issue               map[time.Weekday]DayRule
	Return              map[time.Weekday]DayRule
	MaxLoanDurationDays int
}

// AllowedWeekdays returns the enabled weekdays in Sunday-first order.
func AllowedWeekdays(rules map[time.Weekday]DayRule) []time.Weekday {
	allowed := make([]time.Weekday, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if rules[wd].Enabled {
			allowed = append(allowed, wd)
		}
	}
	return allowed
}

// DisallowedWeekdays is the complement of AllowedWeekdays over the full
// 0..6 weekday domain.
func DisallowedWeekdays(rules map[time.Weekday]DayRule) []time.Weekday {
	disallowed := make([]time.Weekday, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if !rules[wd].Enabled {
			disallowed = append(disallowed, wd)
		}
	}
	return disallowed
}

// DisallowedReturnDates lists every date that would push the loan past
// maxLoanDurationDays: strictly after rangeStart+(maxDays-1), up to a
// one-year horizon from rangeStart.
func DisallowedReturnDates(rangeStart time.Time, maxLoanDurationDays int) []time.Time {
	start := midnight(rangeStart)
	lastAllowed := start.AddDate(0, 0, maxLoanDurationDays-1)
	horizon := start.AddDate(1, 0, 0)

	var dates []time.Time
	for d := lastAllowed.AddDate(0, 0, 1); !d.After(horizon); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// InclusiveDays counts both endpoints, so a Monday-to-Wednesday loan is
// three days.
func InclusiveDays(start, end time.Time) int {
	return int(midnight(end).Sub(midnight(start)).Hours()/24) + 1
}

func weekdayNames(days []time.Weekday) string {
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return strings.Join(names, ", ")
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
