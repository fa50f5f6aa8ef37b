package draft

import (
	"sync"
	"time"

	"equiplend/internal/domain/pool"
	"equiplend/internal/domain/schedule"

	"github.com/google/uuid"
)

// Draft is one in-progress reservation: the date-range selector state,
// the set selection, and the availability cache for the committed
// range. Each draft owns its state exclusively; all mutation goes
// through these methods under the draft lock.
type Draft struct {
	mu sync.Mutex

	id        uuid.UUID
	createdAt time.Time
	touchedAt time.Time

	selector  *schedule.Selector
	allocator *pool.Allocator

	// appliedSeq is the selector sequence whose availability result is
	// currently cached. A refresh carrying any other sequence is stale
	// and must be dropped.
	appliedSeq uint64
	loading    bool
}

func New(config schedule.DayRuleConfig, instances []pool.Instance, now time.Time) *Draft {
	return &Draft{
		id:        uuid.New(),
		createdAt: now,
		touchedAt: now,
		selector:  schedule.NewSelector(config),
		allocator: pool.NewAllocator(instances),
	}
}

func (d *Draft) ID() uuid.UUID { return d.id }

func (d *Draft) CreatedAt() time.Time { return d.createdAt }

func (d *Draft) TouchedAt() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.touchedAt
}

// PickDates feeds a date click (or range click) into the selector. When
// the click commits a full range it returns the range and its sequence
// number so the caller can fire the availability refresh.
func (d *Draft) PickDates(now time.Time, dates ...time.Time) (schedule.DateRange, uint64, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.touchedAt = now

	committed, err := d.selector.PickLatest(dates...)
	if err != nil {
		return schedule.DateRange{}, 0, false, err
	}
	if !committed {
		return schedule.DateRange{}, 0, false, nil
	}
	rng, _ := d.selector.Committed()
	d.loading = true
	return rng, d.selector.Seq(), true, nil
}

// ResetDates returns the selector to Issue with both dates cleared. The
// selection survives; availability filtering is what prunes it, not a
// reset.
func (d *Draft) ResetDates(now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.touchedAt = now
	d.selector.Reset()
	d.loading = false
}

// ApplyAvailability installs an oracle result, but only if it answers
// the currently committed range. Stale responses from superseded
// commits are dropped rather than overwriting fresher data.
func (d *Draft) ApplyAvailability(seq uint64, unavailableIDs []uuid.UUID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, committed := d.selector.Committed(); !committed || seq != d.selector.Seq() {
		return false
	}
	d.allocator.ApplyAvailability(unavailableIDs)
	d.appliedSeq = seq
	d.loading = false
	return true
}

func (d *Draft) ToggleType(now time.Time, key pool.TypeKey) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.touchedAt = now
	return d.allocator.ToggleType(key)
}

func (d *Draft) AddSet(now time.Time, id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.touchedAt = now
	return d.allocator.AddInstance(id)
}

func (d *Draft) RemoveSet(now time.Time, id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.touchedAt = now
	return d.allocator.RemoveInstance(id)
}

// View is a consistent read of the whole draft.
type View struct {
	ID                 uuid.UUID
	Phase              schedule.Phase
	Start              *time.Time
	End                *time.Time
	Loading            bool
	DisallowedWeekdays []time.Weekday
	DisallowedDates    []time.Time
	Groups             []pool.Group
	Selection          []uuid.UUID
}

func (d *Draft) Snapshot() View {
	d.mu.Lock()
	defer d.mu.Unlock()

	weekdays, dates := d.selector.DisallowedPicks()
	v := View{
		ID:                 d.id,
		Phase:              d.selector.Phase(),
		Loading:            d.loading,
		DisallowedWeekdays: weekdays,
		DisallowedDates:    dates,
		Groups:             d.allocator.Groups(),
		Selection:          d.allocator.Selection(),
	}
	if start, ok := d.selector.Start(); ok {
		v.Start = &start
	}
	if rng, ok := d.selector.Committed(); ok {
		v.Start = &rng.Start
		v.End = &rng.End
	}
	return v
}

// CommittedRange returns the committed range for submission.
func (d *Draft) CommittedRange() (schedule.DateRange, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selector.Committed()
}

// Selection returns the held set IDs in listing order.
func (d *Draft) Selection() []uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.allocator.Selection()
}
