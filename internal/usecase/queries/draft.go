package queries

import (
	"context"

	"equiplend/internal/domain/draft"
	"equiplend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDraftNotFound = errs.New("draft not found")

// DraftReader is the read-side slice of the session store.
type DraftReader interface {
	Get(id uuid.UUID) (*draft.Draft, bool)
}

type DraftQueries interface {
	GetDraft(ctx context.Context, id uuid.UUID) (*DraftView, error)
}

type draftQueriesImpl struct {
	drafts DraftReader
}

func NewDraftQueries(drafts DraftReader) DraftQueries {
	return &draftQueriesImpl{drafts: drafts}
}

func (q *draftQueriesImpl) GetDraft(_ context.Context, id uuid.UUID) (*DraftView, error) {
	d, ok := q.drafts.Get(id)
	if !ok {
		return nil, ErrDraftNotFound
	}
	return toDraftView(d.Snapshot()), nil
}

func toDraftView(v draft.View) *DraftView {
	view := &DraftView{
		ID:                 v.ID,
		Phase:              string(v.Phase),
		RentStart:          v.Start,
		RentEnd:            v.End,
		Loading:            v.Loading,
		DisallowedWeekdays: v.DisallowedWeekdays,
		DisallowedDates:    v.DisallowedDates,
		Pools:              make([]PoolView, len(v.Groups)),
		Selection:          v.Selection,
	}
	for i, g := range v.Groups {
		view.Pools[i] = PoolView{
			Manufacturer: g.Key.Manufacturer,
			Model:        g.Key.Model,
			Category:     g.Category,
			Total:        g.Total,
			Available:    g.Available,
			Selected:     g.Selected,
		}
	}
	return view
}
