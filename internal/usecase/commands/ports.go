package commands

import (
	"context"
	"time"

	"equiplend/internal/domain/draft"
	"equiplend/internal/domain/pool"
	"equiplend/internal/domain/schedule"
	"equiplend/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// AvailabilityOracle is the external conflict oracle. Authoritative;
// its result is applied as-is and never retried.
type AvailabilityOracle interface {
	Check(ctx context.Context, rng schedule.DateRange) (*readmodel.AvailabilityRM, error)
}

// InventoryReader lists the rentable set instances. Read once per
// draft; the core never mutates inventory.
type InventoryReader interface {
	ListInstances(ctx context.Context) ([]pool.Instance, error)
}

// PolicyReader loads the institutional day-rule and loan-duration
// configuration.
type PolicyReader interface {
	LoanPolicy(ctx context.Context) (schedule.DayRuleConfig, error)
}

// BookingSubmitter hands a confirmed draft to the persistence
// collaborator and relays its message.
type BookingSubmitter interface {
	Submit(ctx context.Context, sub BookingSubmission) (string, error)
}

// DraftStore owns the live draft sessions.
type DraftStore interface {
	Put(d *draft.Draft)
	Get(id uuid.UUID) (*draft.Draft, bool)
	Delete(id uuid.UUID)
}

// BookingSubmission is the payload produced on confirmation.
type BookingSubmission struct {
	Name            string
	RentStart       time.Time
	RentEnd         time.Time
	Type            string
	AssignedTeacher string
	Location        string
	Phone           string
	Sets            []uuid.UUID
	Notes           string
}
