//go:build unit

package session_test

import (
	"testing"
	"time"

	"equiplend/internal/domain/draft"
	"equiplend/internal/domain/schedule"
	"equiplend/internal/infra/session"
	"equiplend/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDraft(now time.Time) *draft.Draft {
	rules := make(map[time.Weekday]schedule.DayRule, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		rules[wd] = schedule.DayRule{Enabled: true}
	}
	cfg := schedule.DayRuleConfig{Issue: rules, Return: rules, MaxLoanDurationDays: 14}
	return draft.New(cfg, nil, now)
}

func TestStorePutGetDelete(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC))
	store := session.NewStore(clk, time.Hour)

	d := newTestDraft(clk.Now())
	store.Put(d)

	got, ok := store.Get(d.ID())
	require.True(t, ok)
	assert.Same(t, d, got)

	store.Delete(d.ID())
	_, ok = store.Get(d.ID())
	assert.False(t, ok)

	_, ok = store.Get(uuid.New())
	assert.False(t, ok)
}

func TestStoreSweep(t *testing.T) {
	start := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(start)
	store := session.NewStore(clk, time.Hour)

	stale := newTestDraft(clk.Now())
	store.Put(stale)

	clk.Add(45 * time.Minute)
	fresh := newTestDraft(clk.Now())
	store.Put(fresh)

	clk.Add(30 * time.Minute)
	removed := store.Sweep()

	assert.Equal(t, 1, removed)
	_, ok := store.Get(stale.ID())
	assert.False(t, ok, "draft past its TTL must be swept")
	_, ok = store.Get(fresh.ID())
	assert.True(t, ok, "recently touched draft survives")
}

func TestStoreSweepRefreshedByActivity(t *testing.T) {
	start := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(start)
	store := session.NewStore(clk, time.Hour)

	d := newTestDraft(clk.Now())
	store.Put(d)

	clk.Add(50 * time.Minute)
	d.ResetDates(clk.Now())

	clk.Add(30 * time.Minute)
	assert.Equal(t, 0, store.Sweep(), "activity resets the TTL window")
}
