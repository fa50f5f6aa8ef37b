package request

import (
	"strings"
	"time"
)

const dateFormat = "2006-01-02"

// PickDatesRequest is one calendar click. A range click arrives as
// several dates; only the latest one counts.
type PickDatesRequest struct {
	Dates []string `json:"dates" binding:"required,min=1"`
}

func (r PickDatesRequest) ToDates() ([]time.Time, error) {
	dates := make([]time.Time, len(r.Dates))
	for i, s := range r.Dates {
		d, err := time.ParseInLocation(dateFormat, s, time.UTC)
		if err != nil {
			return nil, err
		}
		dates[i] = d
	}
	return dates, nil
}

type ToggleTypeRequest struct {
	Manufacturer string `json:"manufacturer" binding:"required"`
	Model        string `json:"model" binding:"required"`
}

type SubmitDraftRequest struct {
	Name            string  `json:"name" binding:"required"`
	Type            string  `json:"type" binding:"required"`
	AssignedTeacher *string `json:"assignedTeacher,omitempty"`
	Location        *string `json:"location,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

func (r SubmitDraftRequest) TrimmedName() string {
	return strings.TrimSpace(r.Name)
}
