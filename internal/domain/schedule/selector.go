package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrIssueDayNotAllowed  = errors.New("issue day not allowed")
	ErrReturnDayNotAllowed = errors.New("return day not allowed")
	ErrRangeNotIncreasing  = errors.New("return date must be after issue date")
	ErrLoanTooLong         = errors.New("maximum loan duration exceeded")
	ErrRangeLocked         = errors.New("date range already committed")
	ErrNoDatePicked        = errors.New("no date picked")
)

// Rejection is a recoverable validation failure. The selector stays in
// its current phase and no partial mutation is applied; Message is safe
// to surface to the user verbatim.
type Rejection struct {
	Reason  error
	Message string
}

func (r *Rejection) Error() string { return r.Message }
func (r *Rejection) Unwrap() error { return r.Reason }

func reject(reason error, format string, args ...any) error {
	return &Rejection{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

type Phase string

const (
	PhaseIssue   Phase = "issue"
	PhaseReturn  Phase = "return"
	PhaseDisplay Phase = "display"
)

// DateRange is a committed rental period. End is always strictly after
// Start.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Selector drives the two-phase date picking for one reservation draft.
//
// Issue: the next picked date is the candidate rental start.
// Return: the next picked date is the candidate rental end.
// Display: the range is committed and read-only until Reset.
//
// Every committed range gets a fresh sequence number so that the
// availability refresh for a superseded range can be told apart from
// the current one.
type Selector struct {
	config DayRuleConfig
	phase  Phase
	start  time.Time
	end    time.Time
	seq    uint64
}

func NewSelector(config DayRuleConfig) *Selector {
	return &Selector{
		config: config,
		phase:  PhaseIssue,
	}
}

func (s *Selector) Phase() Phase { return s.phase }

// Seq returns the sequence number of the most recently committed range.
// Zero means no range has ever been committed.
func (s *Selector) Seq() uint64 { return s.seq }

// Start returns the picked issue date, valid from the Return phase on.
func (s *Selector) Start() (time.Time, bool) {
	if s.phase == PhaseIssue {
		return time.Time{}, false
	}
	return s.start, true
}

// Committed returns the committed range while in the Display phase.
func (s *Selector) Committed() (DateRange, bool) {
	if s.phase != PhaseDisplay {
		return DateRange{}, false
	}
	return DateRange{Start: s.start, End: s.end}, true
}

// DisallowedPicks lists what the calendar should gray out for the
// current phase: weekdays the next pick may never land on and, while
// waiting for a return date, the concrete dates past the loan limit.
// In Display nothing is pickable, so both lists are empty.
func (s *Selector) DisallowedPicks() ([]time.Weekday, []time.Time) {
	switch s.phase {
	case PhaseIssue:
		return DisallowedWeekdays(s.config.Issue), nil
	case PhaseReturn:
		return DisallowedWeekdays(s.config.Return),
			DisallowedReturnDates(s.start, s.config.MaxLoanDurationDays)
	default:
		return nil, nil
	}
}

// PickLatest handles a range click: the latest of the picked dates is
// the one that counts.
func (s *Selector) PickLatest(dates ...time.Time) (bool, error) {
	if len(dates) == 0 {
		return false, reject(ErrNoDatePicked, "no date picked")
	}
	latest := dates[0]
	for _, d := range dates[1:] {
		if d.After(latest) {
			latest = d
		}
	}
	return s.PickDate(latest)
}

// PickDate feeds one clicked date into the machine. It reports whether
// the click committed a full range, which is the moment an availability
// refresh is due.
func (s *Selector) PickDate(date time.Time) (bool, error) {
	date = midnight(date)

	switch s.phase {
	case PhaseIssue:
		return false, s.pickIssueDate(date)
	case PhaseReturn:
		return s.pickReturnDate(date)
	default:
		return false, reject(ErrRangeLocked, "dates are locked; reset the draft to pick again")
	}
}

func (s *Selector) pickIssueDate(date time.Time) error {
	if !s.config.Issue[date.Weekday()].Enabled {
		return reject(ErrIssueDayNotAllowed,
			"rentals can only start on %s", weekdayNames(AllowedWeekdays(s.config.Issue)))
	}
	s.start = date
	s.end = time.Time{}
	s.phase = PhaseReturn
	return nil
}

func (s *Selector) pickReturnDate(date time.Time) (bool, error) {
	if !s.config.Return[date.Weekday()].Enabled {
		return false, reject(ErrReturnDayNotAllowed,
			"rentals can only end on %s", weekdayNames(AllowedWeekdays(s.config.Return)))
	}
	if !date.After(s.start) {
		return false, reject(ErrRangeNotIncreasing, "return date must be after the issue date")
	}
	if days := InclusiveDays(s.start, date); days > s.config.MaxLoanDurationDays {
		return false, reject(ErrLoanTooLong,
			"loans are limited to %d days", s.config.MaxLoanDurationDays)
	}
	s.end = date
	s.phase = PhaseDisplay
	s.seq++
	return true, nil
}

// Reset is the only way out of Display: both dates are cleared and the
// machine returns to Issue. Held set selections are not touched here;
// they are filtered separately by availability.
func (s *Selector) Reset() {
	s.start = time.Time{}
	s.end = time.Time{}
	s.phase = PhaseIssue
}
