package commands

import (
	"context"
	"log/slog"
	"time"

	"equiplend/internal/domain/draft"
	"equiplend/internal/domain/pool"
	"equiplend/internal/domain/schedule"
	"equiplend/internal/pkg/clock"
	"equiplend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDraftNotFound        = errs.New("draft not found")
	ErrRangeIncomplete      = errs.New("date range not committed")
	ErrEmptySelection       = errs.New("no sets selected")
	ErrPolicyUnavailable    = errs.New("loan policy unavailable")
	ErrInventoryUnavailable = errs.New("inventory listing unavailable")
	ErrBookingRejected      = errs.New("booking submission rejected")
)

// SubmitDraftParams carries the user-entered booking fields that ride
// along with the committed range and selection.
type SubmitDraftParams struct {
	Name            string
	Type            string
	AssignedTeacher string
	Location        string
	Phone           string
	Notes           string
}

type DraftCommands interface {
	StartDraft(ctx context.Context) (uuid.UUID, error)
	PickDates(ctx context.Context, draftID uuid.UUID, dates []time.Time) error
	ResetDates(ctx context.Context, draftID uuid.UUID) error
	ToggleType(ctx context.Context, draftID uuid.UUID, key pool.TypeKey) error
	AddSet(ctx context.Context, draftID, setID uuid.UUID) error
	RemoveSet(ctx context.Context, draftID, setID uuid.UUID) error
	SubmitDraft(ctx context.Context, draftID uuid.UUID, params SubmitDraftParams) (string, error)
	AbandonDraft(ctx context.Context, draftID uuid.UUID) error
}

type draftCommandsImpl struct {
	oracle    AvailabilityOracle
	inventory InventoryReader
	policy    PolicyReader
	submitter BookingSubmitter
	store     DraftStore
	clock     clock.Clock
	logger    *slog.Logger
}

func NewDraftCommands(
	oracle AvailabilityOracle,
	inventory InventoryReader,
	policy PolicyReader,
	submitter BookingSubmitter,
	store DraftStore,
	clk clock.Clock,
	logger *slog.Logger,
) DraftCommands {
	return &draftCommandsImpl{
		oracle:    oracle,
		inventory: inventory,
		policy:    policy,
		submitter: submitter,
		store:     store,
		clock:     clk,
		logger:    logger,
	}
}

func (c *draftCommandsImpl) StartDraft(ctx context.Context) (uuid.UUID, error) {
	policy, err := c.policy.LoanPolicy(ctx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrPolicyUnavailable)
	}

	instances, err := c.inventory.ListInstances(ctx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInventoryUnavailable)
	}

	d := draft.New(policy, instances, c.clock.Now())
	c.store.Put(d)
	return d.ID(), nil
}

func (c *draftCommandsImpl) PickDates(ctx context.Context, draftID uuid.UUID, dates []time.Time) error {
	d, ok := c.store.Get(draftID)
	if !ok {
		return ErrDraftNotFound
	}

	rng, seq, committed, err := d.PickDates(c.clock.Now(), dates...)
	if err != nil {
		return err
	}
	if committed {
		// The request's own context ends with the response; the refresh
		// keeps running and is applied only if its sequence still
		// matches the committed range.
		go c.refreshAvailability(context.WithoutCancel(ctx), d, rng, seq)
	}
	return nil
}

func (c *draftCommandsImpl) refreshAvailability(ctx context.Context, d *draft.Draft, rng schedule.DateRange, seq uint64) {
	rm, err := c.oracle.Check(ctx, rng)
	if err != nil {
		// Unknown availability blocks nothing: fall back to an empty
		// unavailable set instead of surfacing an error state.
		c.logger.Warn("availability check failed, assuming all sets available",
			"draft_id", d.ID(), "error", err)
		d.ApplyAvailability(seq, nil)
		return
	}

	if !d.ApplyAvailability(seq, rm.UnavailableIDs) {
		c.logger.Debug("dropped stale availability result", "draft_id", d.ID(), "seq", seq)
	}
}

func (c *draftCommandsImpl) ResetDates(_ context.Context, draftID uuid.UUID) error {
	d, ok := c.store.Get(draftID)
	if !ok {
		return ErrDraftNotFound
	}
	d.ResetDates(c.clock.Now())
	return nil
}

func (c *draftCommandsImpl) ToggleType(_ context.Context, draftID uuid.UUID, key pool.TypeKey) error {
	d, ok := c.store.Get(draftID)
	if !ok {
		return ErrDraftNotFound
	}
	return d.ToggleType(c.clock.Now(), key)
}

func (c *draftCommandsImpl) AddSet(_ context.Context, draftID, setID uuid.UUID) error {
	d, ok := c.store.Get(draftID)
	if !ok {
		return ErrDraftNotFound
	}
	return d.AddSet(c.clock.Now(), setID)
}

func (c *draftCommandsImpl) RemoveSet(_ context.Context, draftID, setID uuid.UUID) error {
	d, ok := c.store.Get(draftID)
	if !ok {
		return ErrDraftNotFound
	}
	return d.RemoveSet(c.clock.Now(), setID)
}

func (c *draftCommandsImpl) SubmitDraft(ctx context.Context, draftID uuid.UUID, params SubmitDraftParams) (string, error) {
	d, ok := c.store.Get(draftID)
	if !ok {
		return "", ErrDraftNotFound
	}

	rng, committed := d.CommittedRange()
	if !committed {
		return "", ErrRangeIncomplete
	}

	sets := d.Selection()
	if len(sets) == 0 {
		return "", ErrEmptySelection
	}

	msg, err := c.submitter.Submit(ctx, BookingSubmission{
		Name:            params.Name,
		RentStart:       rng.Start,
		RentEnd:         rng.End,
		Type:            params.Type,
		AssignedTeacher: params.AssignedTeacher,
		Location:        params.Location,
		Phone:           params.Phone,
		Sets:            sets,
		Notes:           params.Notes,
	})
	if err != nil {
		return msg, errs.Mark(err, ErrBookingRejected)
	}

	c.store.Delete(draftID)
	c.logger.Info("draft submitted", "draft_id", draftID, "sets", len(sets))
	return msg, nil
}

func (c *draftCommandsImpl) AbandonDraft(_ context.Context, draftID uuid.UUID) error {
	if _, ok := c.store.Get(draftID); !ok {
		return ErrDraftNotFound
	}
	c.store.Delete(draftID)
	return nil
}
