package queries

import (
	"context"
	"sync"

	"equiplend/internal/domain/timeline"
	"equiplend/internal/pkg/errs"
)

var ErrTimelineUnavailable = errs.New("booking listing unavailable")

// BookingReader lists the bookings visible in one calendar year.
type BookingReader interface {
	ListYear(ctx context.Context, year int) ([]timeline.Booking, error)
}

type TimelineQueries interface {
	GetYear(ctx context.Context, year int) ([]MonthView, error)
}

type timelineQueriesImpl struct {
	bookings BookingReader

	// One engine per year, so a booking keeps its lane between renders
	// even when the upstream list order changes. Keying by year stops
	// row indices from one year leaking into another.
	mu      sync.Mutex
	engines map[int]*timeline.Engine
}

func NewTimelineQueries(bookings BookingReader) TimelineQueries {
	return &timelineQueriesImpl{
		bookings: bookings,
		engines:  make(map[int]*timeline.Engine),
	}
}

func (q *timelineQueriesImpl) GetYear(ctx context.Context, year int) ([]MonthView, error) {
	list, err := q.bookings.ListYear(ctx, year)
	if err != nil {
		return nil, errs.Mark(err, ErrTimelineUnavailable)
	}

	q.mu.Lock()
	engine, ok := q.engines[year]
	if !ok {
		engine = timeline.NewEngine()
		q.engines[year] = engine
	}
	months := engine.LayoutYear(year, list)
	q.mu.Unlock()

	views := make([]MonthView, len(months))
	for i, m := range months {
		views[i] = toMonthView(m)
	}
	return views, nil
}

func toMonthView(m timeline.MonthLayout) MonthView {
	view := MonthView{
		Year:  m.Year,
		Month: int(m.Month),
		Cells: make([]CellView, len(m.Cells)),
	}
	for i, c := range m.Cells {
		cell := CellView{Row: c.Row}
		if c.Segment != nil {
			cell.Segment = &SegmentView{
				BookingID:  c.Segment.BookingID,
				Name:       c.Segment.Name,
				StartDay:   c.Segment.StartDay,
				EndDay:     c.Segment.EndDay,
				RoundLeft:  c.Segment.RoundLeft,
				RoundRight: c.Segment.RoundRight,
				ColorSeed:  c.Segment.ColorSeed,
			}
		}
		view.Cells[i] = cell
	}
	return view
}
