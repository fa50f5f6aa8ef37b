package response

import (
	"equiplend/internal/usecase/queries"

	"github.com/google/uuid"
)

type SegmentResponse struct {
	BookingID  uuid.UUID `json:"bookingId"`
	Name       string    `json:"name"`
	StartDay   int       `json:"startDay"`
	EndDay     int       `json:"endDay"`
	RoundLeft  bool      `json:"roundLeft"`
	RoundRight bool      `json:"roundRight"`
	ColorSeed  uint32    `json:"colorSeed"`
}

type CellResponse struct {
	Row     int              `json:"row"`
	Segment *SegmentResponse `json:"segment,omitempty"`
}

type MonthResponse struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []CellResponse `json:"cells"`
}

func FromMonthViews(rms []queries.MonthView) []MonthResponse {
	months := make([]MonthResponse, len(rms))
	for i, rm := range rms {
		cells := make([]CellResponse, len(rm.Cells))
		for j, c := range rm.Cells {
			cell := CellResponse{Row: c.Row}
			if c.Segment != nil {
				cell.Segment = &SegmentResponse{
					BookingID:  c.Segment.BookingID,
					Name:       c.Segment.Name,
					StartDay:   c.Segment.StartDay,
					EndDay:     c.Segment.EndDay,
					RoundLeft:  c.Segment.RoundLeft,
					RoundRight: c.Segment.RoundRight,
					ColorSeed:  c.Segment.ColorSeed,
				}
			}
			cells[j] = cell
		}
		months[i] = MonthResponse{Year: rm.Year, Month: rm.Month, Cells: cells}
	}
	return months
}
