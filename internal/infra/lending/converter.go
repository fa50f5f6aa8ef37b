package lending

import (
	"fmt"
	"strings"
	"time"

	"equiplend/internal/domain/pool"
	"equiplend/internal/domain/schedule"
	"equiplend/internal/domain/timeline"
	"equiplend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const dateFormat = "2006-01-02"

type instanceRow struct {
	ID           uuid.UUID `json:"id"`
	Manufacturer string    `json:"manufacturer"`
	Model        string    `json:"model"`
	Ordinal      int       `json:"ordinal"`
	Category     string    `json:"category"`
	State        string    `json:"state"`
}

type dayRow struct {
	Enabled bool `json:"enabled"`
}

type policyRow struct {
	Issue               map[string]dayRow `json:"issue"`
	Return              map[string]dayRow `json:"return"`
	MaxLoanDurationDays int               `json:"maxLoanDurationDays"`
}

type bookingRow struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	RentStart string    `json:"rentStart"`
	RentEnd   string    `json:"rentEnd"`
}

type submissionRow struct {
	Name            string      `json:"name"`
	RentStart       string      `json:"rentStart"`
	RentEnd         string      `json:"rentEnd"`
	Type            string      `json:"type"`
	AssignedTeacher string      `json:"assignedTeacher"`
	Location        string      `json:"location"`
	Phone           string      `json:"phone"`
	Sets            []uuid.UUID `json:"sets"`
	Notes           string      `json:"notes"`
}

func toInstances(rows []instanceRow) ([]pool.Instance, error) {
	instances := make([]pool.Instance, len(rows))
	for i, row := range rows {
		var inst pool.Instance
		if err := copier.Copy(&inst, &row); err != nil {
			return nil, err
		}
		inst.Key = pool.TypeKey{Manufacturer: row.Manufacturer, Model: row.Model}
		state, err := toLifecycle(row.State)
		if err != nil {
			return nil, err
		}
		inst.State = state
		instances[i] = inst
	}
	return instances, nil
}

func toLifecycle(state string) (pool.Lifecycle, error) {
	switch strings.ToLower(state) {
	case "in_service", "in service", "":
		return pool.StateInService, nil
	case "retired":
		return pool.StateRetired, nil
	default:
		return "", fmt.Errorf("unknown lifecycle state %q", state)
	}
}

func toDayRuleConfig(row policyRow) (schedule.DayRuleConfig, error) {
	issue, err := toDayRules(row.Issue)
	if err != nil {
		return schedule.DayRuleConfig{}, err
	}
	ret, err := toDayRules(row.Return)
	if err != nil {
		return schedule.DayRuleConfig{}, err
	}
	if row.MaxLoanDurationDays <= 0 {
		return schedule.DayRuleConfig{}, fmt.Errorf("invalid maxLoanDurationDays %d", row.MaxLoanDurationDays)
	}
	return schedule.DayRuleConfig{
		Issue:               issue,
		Return:              ret,
		MaxLoanDurationDays: row.MaxLoanDurationDays,
	}, nil
}

var weekdayByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func toDayRules(rows map[string]dayRow) (map[time.Weekday]schedule.DayRule, error) {
	rules := make(map[time.Weekday]schedule.DayRule, len(rows))
	for name, row := range rows {
		wd, ok := weekdayByName[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		rules[wd] = schedule.DayRule{Enabled: row.Enabled}
	}
	return rules, nil
}

func toBookings(rows []bookingRow) ([]timeline.Booking, error) {
	bookings := make([]timeline.Booking, len(rows))
	for i, row := range rows {
		start, err := time.ParseInLocation(dateFormat, row.RentStart, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("booking %s: bad rentStart: %w", row.ID, err)
		}
		end, err := time.ParseInLocation(dateFormat, row.RentEnd, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("booking %s: bad rentEnd: %w", row.ID, err)
		}
		bookings[i] = timeline.Booking{
			ID:    row.ID,
			Name:  row.Name,
			Start: start,
			End:   end,
		}
	}
	return bookings, nil
}

func toSubmissionRow(sub commands.BookingSubmission) submissionRow {
	var row submissionRow
	_ = copier.Copy(&row, &sub)
	row.RentStart = sub.RentStart.Format(dateFormat)
	row.RentEnd = sub.RentEnd.Format(dateFormat)
	return row
}
