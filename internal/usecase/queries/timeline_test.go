//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"equiplend/internal/domain/timeline"
	"equiplend/internal/pkg/errs"
	"equiplend/internal/usecase/queries"
	queriesmock "equiplend/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func booking(name string, start, end time.Time) timeline.Booking {
	return timeline.Booking{ID: uuid.New(), Name: name, Start: start, End: end}
}

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetYear(t *testing.T) {
	t.Run("renders twelve months", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockBookingReader(ctrl)
		q := queries.NewTimelineQueries(reader)

		b := booking("field trip", utcDate(2026, time.March, 5), utcDate(2026, time.March, 10))
		reader.EXPECT().ListYear(gomock.Any(), 2026).Return([]timeline.Booking{b}, nil)

		months, err := q.GetYear(context.Background(), 2026)
		require.NoError(t, err)
		require.Len(t, months, 12)

		march := months[2]
		assert.Equal(t, 2026, march.Year)
		assert.Equal(t, 3, march.Month)
		require.Len(t, march.Cells, 1)
		require.NotNil(t, march.Cells[0].Segment)
		assert.Equal(t, b.ID, march.Cells[0].Segment.BookingID)
		assert.Equal(t, 4, march.Cells[0].Segment.StartDay)
		assert.Equal(t, 9, march.Cells[0].Segment.EndDay)

		for _, i := range []int{0, 1, 3} {
			require.Len(t, months[i].Cells, 1, "month %d keeps a placeholder cell", i+1)
			assert.Nil(t, months[i].Cells[0].Segment)
		}
	})

	t.Run("rows persist across calls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockBookingReader(ctrl)
		q := queries.NewTimelineQueries(reader)

		a := booking("a", utcDate(2026, time.March, 2), utcDate(2026, time.March, 4))
		b := booking("b", utcDate(2026, time.March, 9), utcDate(2026, time.March, 11))

		reader.EXPECT().ListYear(gomock.Any(), 2026).Return([]timeline.Booking{a, b}, nil)
		first, err := q.GetYear(context.Background(), 2026)
		require.NoError(t, err)

		// Upstream order flips; each booking keeps its lane.
		reader.EXPECT().ListYear(gomock.Any(), 2026).Return([]timeline.Booking{b, a}, nil)
		second, err := q.GetYear(context.Background(), 2026)
		require.NoError(t, err)

		rowOf := func(months []queries.MonthView, id uuid.UUID) int {
			for _, c := range months[2].Cells {
				if c.Segment != nil && c.Segment.BookingID == id {
					return c.Row
				}
			}
			t.Fatalf("booking %s not rendered", id)
			return -1
		}
		assert.Equal(t, rowOf(first, a.ID), rowOf(second, a.ID))
		assert.Equal(t, rowOf(first, b.ID), rowOf(second, b.ID))
	})

	t.Run("each year lays out from row zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockBookingReader(ctrl)
		q := queries.NewTimelineQueries(reader)

		a := booking("a", utcDate(2026, time.March, 2), utcDate(2026, time.March, 4))
		b := booking("b", utcDate(2027, time.March, 2), utcDate(2027, time.March, 4))

		reader.EXPECT().ListYear(gomock.Any(), 2026).Return([]timeline.Booking{a}, nil)
		first, err := q.GetYear(context.Background(), 2026)
		require.NoError(t, err)

		reader.EXPECT().ListYear(gomock.Any(), 2027).Return([]timeline.Booking{b}, nil)
		second, err := q.GetYear(context.Background(), 2027)
		require.NoError(t, err)

		require.NotNil(t, first[2].Cells[0].Segment)
		require.NotNil(t, second[2].Cells[0].Segment)
		assert.Equal(t, 0, first[2].Cells[0].Row)
		assert.Equal(t, 0, second[2].Cells[0].Row, "rows do not carry over between years")
	})

	t.Run("reader failure is marked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockBookingReader(ctrl)
		q := queries.NewTimelineQueries(reader)

		reader.EXPECT().ListYear(gomock.Any(), 2026).Return(nil, errs.New("backend down"))

		_, err := q.GetYear(context.Background(), 2026)
		assert.ErrorIs(t, err, queries.ErrTimelineUnavailable)
	})
}
