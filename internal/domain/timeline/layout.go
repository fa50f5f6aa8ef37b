package timeline

import (
	"hash/fnv"
	"time"

	"github.com/google/uuid"
)

// Booking is one confirmed rental as listed by the lending backend.
type Booking struct {
	ID    uuid.UUID
	Name  string
	Start time.Time
	End   time.Time
}

// Segment is the visible part of a booking inside one calendar month.
// StartDay and EndDay are zero-based day indices within the month.
// RoundLeft/RoundRight mark the booking's true start and end: a stripe
// that continues across a month boundary keeps square edges there.
type Segment struct {
	BookingID  uuid.UUID
	Name       string
	StartDay   int
	EndDay     int
	RoundLeft  bool
	RoundRight bool
	ColorSeed  uint32
}

// Cell is one lane of one month column: either a visible segment or an
// empty placeholder keeping the lane aligned across the month sequence.
type Cell struct {
	Row     int
	Segment *Segment
}

type MonthLayout struct {
	Year  int
	Month time.Month
	Cells []Cell
}

// Engine lays a year's bookings out as horizontal stripes. Rows are
// keyed by booking identity and allocated on first sight, so a booking
// keeps its lane in every month column and across render passes even
// when the upstream list is filtered or re-sorted.
type Engine struct {
	rows    map[uuid.UUID]int
	nextRow int
}

func NewEngine() *Engine {
	return &Engine{rows: make(map[uuid.UUID]int)}
}

// RowFor returns the booking's lane, allocating one on first sight.
func (e *Engine) RowFor(id uuid.UUID) int {
	if row, ok := e.rows[id]; ok {
		return row
	}
	row := e.nextRow
	e.rows[id] = row
	e.nextRow++
	return row
}

// LayoutYear produces the twelve month columns for one calendar year.
// Every booking in the pass occupies the same row in all twelve
// columns; months where it is invisible carry a placeholder cell.
func (e *Engine) LayoutYear(year int, bookings []Booking) []MonthLayout {
	type laned struct {
		booking Booking
		row     int
	}
	lanes := make([]laned, len(bookings))
	for i, b := range bookings {
		lanes[i] = laned{booking: b, row: e.RowFor(b.ID)}
	}

	months := make([]MonthLayout, 0, 12)
	for m := time.January; m <= time.December; m++ {
		layout := MonthLayout{Year: year, Month: m, Cells: make([]Cell, 0, len(lanes))}
		for _, l := range lanes {
			cell := Cell{Row: l.row}
			if seg, visible := clipToMonth(l.booking, year, m); visible {
				cell.Segment = seg
			}
			layout.Cells = append(layout.Cells, cell)
		}
		months = append(months, layout)
	}
	return months
}

func clipToMonth(b Booking, year int, month time.Month) (*Segment, bool) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	last := time.Date(year, month, daysInMonth, 0, 0, 0, 0, time.UTC)

	start := midnight(b.Start)
	end := midnight(b.End)
	if end.Before(first) || start.After(last) {
		return nil, false
	}

	startOffset := daysBetween(first, start)
	endOffset := daysBetween(first, end)

	seg := &Segment{
		BookingID:  b.ID,
		Name:       b.Name,
		StartDay:   max(0, startOffset),
		EndDay:     min(daysInMonth-1, endOffset),
		RoundLeft:  startOffset >= 0,
		RoundRight: endOffset <= daysInMonth-1,
		ColorSeed:  ColorSeed(b.ID),
	}
	return seg, true
}

// ColorSeed derives a stable per-booking hue seed from its identity.
func ColorSeed(id uuid.UUID) uint32 {
	h := fnv.New32a()
	_, _ = h.Write(id[:])
	return h.Sum32()
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
