//go:build unit

package draft_test

import (
	"testing"
	"time"

	"equiplend/internal/domain/draft"
	"equiplend/internal/domain/pool"
	"equiplend/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func allDays() map[time.Weekday]schedule.DayRule {
	m := make(map[time.Weekday]schedule.DayRule, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		m[wd] = schedule.DayRule{Enabled: true}
	}
	return m
}

func newDraft(instances []pool.Instance) *draft.Draft {
	cfg := schedule.DayRuleConfig{
		Issue:               allDays(),
		Return:              allDays(),
		MaxLoanDurationDays: 14,
	}
	return draft.New(cfg, instances, date(2026, time.March, 1))
}

func commit(t *testing.T, d *draft.Draft) uint64 {
	t.Helper()
	_, _, _, err := d.PickDates(date(2026, time.March, 1), date(2026, time.March, 2))
	require.NoError(t, err)
	_, seq, committed, err := d.PickDates(date(2026, time.March, 1), date(2026, time.March, 6))
	require.NoError(t, err)
	require.True(t, committed)
	return seq
}

func someInstances(n int) []pool.Instance {
	key := pool.TypeKey{Manufacturer: "BrandX", Model: "CamKit"}
	out := make([]pool.Instance, n)
	for i := range out {
		out[i] = pool.Instance{ID: uuid.New(), Key: key, Ordinal: i + 1, State: pool.StateInService}
	}
	return out
}

func TestAvailabilitySequencing(t *testing.T) {
	t.Run("matching sequence is applied", func(t *testing.T) {
		instances := someInstances(2)
		d := newDraft(instances)
		seq := commit(t, d)

		applied := d.ApplyAvailability(seq, []uuid.UUID{instances[0].ID})
		assert.True(t, applied)
		assert.False(t, d.Snapshot().Loading)
		assert.Equal(t, 1, d.Snapshot().Groups[0].Available)
	})

	t.Run("stale sequence is dropped", func(t *testing.T) {
		instances := someInstances(2)
		d := newDraft(instances)
		seq := commit(t, d)

		// A newer commit supersedes the in-flight refresh.
		d.ResetDates(date(2026, time.March, 1))
		newSeq := commit(t, d)
		require.NotEqual(t, seq, newSeq)

		applied := d.ApplyAvailability(seq, []uuid.UUID{instances[0].ID})
		assert.False(t, applied)
		assert.Equal(t, 2, d.Snapshot().Groups[0].Available, "stale result must not shrink the pool")
	})

	t.Run("result without a committed range is dropped", func(t *testing.T) {
		instances := someInstances(1)
		d := newDraft(instances)
		seq := commit(t, d)
		d.ResetDates(date(2026, time.March, 1))

		assert.False(t, d.ApplyAvailability(seq, []uuid.UUID{instances[0].ID}))
	})
}

func TestResetKeepsSelection(t *testing.T) {
	instances := someInstances(2)
	d := newDraft(instances)
	commit(t, d)

	require.NoError(t, d.ToggleType(date(2026, time.March, 1), instances[0].Key))
	require.Len(t, d.Selection(), 1)

	d.ResetDates(date(2026, time.March, 1))

	v := d.Snapshot()
	assert.Equal(t, schedule.PhaseIssue, v.Phase)
	assert.Nil(t, v.Start)
	assert.Nil(t, v.End)
	assert.Len(t, v.Selection, 1, "reset clears dates, not the pool selection")
}

func TestSnapshotExposesCommittedRange(t *testing.T) {
	d := newDraft(someInstances(1))
	commit(t, d)

	v := d.Snapshot()
	require.NotNil(t, v.Start)
	require.NotNil(t, v.End)
	assert.Equal(t, date(2026, time.March, 2), *v.Start)
	assert.Equal(t, date(2026, time.March, 6), *v.End)
	assert.Equal(t, schedule.PhaseDisplay, v.Phase)
	assert.True(t, v.Loading, "availability refresh still pending")
}
