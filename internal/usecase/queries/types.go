package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type DraftView struct {
	ID                 uuid.UUID      `json:"id"`
	Phase              string         `json:"phase"`
	RentStart          *time.Time     `json:"rent_start,omitempty"`
	RentEnd            *time.Time     `json:"rent_end,omitempty"`
	Loading            bool           `json:"loading"`
	DisallowedWeekdays []time.Weekday `json:"disallowed_weekdays"`
	DisallowedDates    []time.Time    `json:"disallowed_dates"`
	Pools              []PoolView     `json:"pools"`
	Selection          []uuid.UUID    `json:"selection"`
}

type PoolView struct {
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Category     string `json:"category"`
	Total        int    `json:"total"`
	Available    int    `json:"available"`
	Selected     int    `json:"selected"`
}

type SegmentView struct {
	BookingID  uuid.UUID `json:"booking_id"`
	Name       string    `json:"name"`
	StartDay   int       `json:"start_day"`
	EndDay     int       `json:"end_day"`
	RoundLeft  bool      `json:"round_left"`
	RoundRight bool      `json:"round_right"`
	ColorSeed  uint32    `json:"color_seed"`
}

type CellView struct {
	Row     int          `json:"row"`
	Segment *SegmentView `json:"segment,omitempty"`
}

type MonthView struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Cells []CellView `json:"cells"`
}
