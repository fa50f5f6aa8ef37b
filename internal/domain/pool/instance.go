package pool

import (
	"fmt"

	"github.com/google/uuid"
)

// Lifecycle is the inventory-side state of a physical set. Retired sets
// stay in the listing for historical bookings but can no longer be
// picked.
type Lifecycle string

const (
	StateInService Lifecycle = "in_service"
	StateRetired   Lifecycle = "retired"
)

// TypeKey identifies a fungible class of equipment: every instance with
// the same manufacturer and model is interchangeable for allocation.
type TypeKey struct {
	Manufacturer string
	Model        string
}

func (k TypeKey) String() string {
	return fmt.Sprintf("%s %s", k.Manufacturer, k.Model)
}

// Instance is one physical, individually identified set. Owned by the
// inventory collaborator; this service only reads it.
type Instance struct {
	ID       uuid.UUID
	Key      TypeKey
	Ordinal  int
	Category string
	State    Lifecycle
}

func (i Instance) InService() bool {
	return i.State == StateInService
}
