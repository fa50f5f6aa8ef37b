package response

import (
	"time"

	"equiplend/internal/usecase/queries"

	"github.com/google/uuid"
)

type DraftCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type DraftResponse struct {
	ID                 uuid.UUID      `json:"id"`
	Phase              string         `json:"phase"`
	RentStart          *time.Time     `json:"rentStart,omitempty"`
	RentEnd            *time.Time     `json:"rentEnd,omitempty"`
	Loading            bool           `json:"loading"`
	DisallowedWeekdays []string       `json:"disallowedWeekdays"`
	DisallowedDates    []string       `json:"disallowedDates"`
	Pools              []PoolResponse `json:"pools"`
	Selection          []uuid.UUID    `json:"selection"`
}

type PoolResponse struct {
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Category     string `json:"category"`
	Total        int    `json:"total"`
	Available    int    `json:"available"`
	Selected     int    `json:"selected"`
}

type SubmitResponse struct {
	Message string `json:"message"`
}

func FromDraftView(rm *queries.DraftView) *DraftResponse {
	pools := make([]PoolResponse, len(rm.Pools))
	for i, p := range rm.Pools {
		pools[i] = PoolResponse{
			Manufacturer: p.Manufacturer,
			Model:        p.Model,
			Category:     p.Category,
			Total:        p.Total,
			Available:    p.Available,
			Selected:     p.Selected,
		}
	}
	weekdays := make([]string, len(rm.DisallowedWeekdays))
	for i, wd := range rm.DisallowedWeekdays {
		weekdays[i] = wd.String()
	}
	dates := make([]string, len(rm.DisallowedDates))
	for i, d := range rm.DisallowedDates {
		dates[i] = d.Format("2006-01-02")
	}
	return &DraftResponse{
		ID:                 rm.ID,
		Phase:              rm.Phase,
		RentStart:          rm.RentStart,
		RentEnd:            rm.RentEnd,
		Loading:            rm.Loading,
		DisallowedWeekdays: weekdays,
		DisallowedDates:    dates,
		Pools:              pools,
		Selection:          rm.Selection,
	}
}
