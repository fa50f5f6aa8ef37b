package readmodel

import "github.com/google/uuid"

// AvailabilityDetail is the oracle's optional per-instance breakdown.
type AvailabilityDetail struct {
	Available      bool
	AvailableCount int
}

// AvailabilityRM is one oracle answer for one committed date range. It
// lives only until the range changes; it is never persisted.
type AvailabilityRM struct {
	UnavailableIDs []uuid.UUID
	PerIDDetail    map[uuid.UUID]AvailabilityDetail
}
