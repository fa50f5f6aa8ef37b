package pool

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUnknownSet     = errors.New("unknown set")
	ErrUnknownSetType = errors.New("unknown set type")
	ErrSetUnavailable = errors.New("set unavailable for the selected range")
)

// Group is the derived per-type view: counts are recomputed from the
// instance listing, the selection, and the current unavailable set on
// every read, never stored.
type Group struct {
	Key       TypeKey
	Category  string
	Total     int
	Available int
	Selected  int
}

// Allocator treats all instances of a type as one interchangeable pool.
// Users add or remove pool members without naming specific instances;
// the allocator picks concrete ones in natural listing order.
type Allocator struct {
	instances   []Instance
	selected    map[uuid.UUID]struct{}
	unavailable map[uuid.UUID]struct{}
}

func NewAllocator(instances []Instance) *Allocator {
	return &Allocator{
		instances:   instances,
		selected:    make(map[uuid.UUID]struct{}),
		unavailable: make(map[uuid.UUID]struct{}),
	}
}

// Groups lists the type pools in order of first appearance in the
// inventory listing.
func (a *Allocator) Groups() []Group {
	index := make(map[TypeKey]int)
	groups := make([]Group, 0)
	for _, inst := range a.instances {
		i, ok := index[inst.Key]
		if !ok {
			i = len(groups)
			index[inst.Key] = i
			groups = append(groups, Group{Key: inst.Key, Category: inst.Category})
		}
		groups[i].Total++
		if a.selectable(inst) {
			groups[i].Available++
		}
		if _, sel := a.selected[inst.ID]; sel {
			groups[i].Selected++
		}
	}
	return groups
}

// ToggleType cycles a pool through none, incrementing, all, none:
// with nothing selected it grabs the first available instance, with a
// partial selection it grabs the next one in listing order, and once
// every in-service member is held it releases them all. Retired
// instances never count toward the release threshold, so a pool with
// a retired member still cycles back to empty. When no available
// instance remains to grab it is a no-op, not an error.
func (a *Allocator) ToggleType(key TypeKey) error {
	var ofType, selectedOfType []Instance
	inService := 0
	for _, inst := range a.instances {
		if inst.Key != key {
			continue
		}
		ofType = append(ofType, inst)
		if inst.InService() {
			inService++
		}
		if _, sel := a.selected[inst.ID]; sel {
			selectedOfType = append(selectedOfType, inst)
		}
	}
	if len(ofType) == 0 {
		return ErrUnknownSetType
	}

	if len(selectedOfType) > 0 && len(selectedOfType) == inService {
		for _, inst := range selectedOfType {
			delete(a.selected, inst.ID)
		}
		return nil
	}

	for _, inst := range ofType {
		if _, sel := a.selected[inst.ID]; sel || !a.selectable(inst) {
			continue
		}
		a.selected[inst.ID] = struct{}{}
		return nil
	}
	// every remaining instance is unavailable: nothing to grab
	return nil
}

// AddInstance is the per-instance detail path: direct membership edit,
// no type-level bookkeeping.
func (a *Allocator) AddInstance(id uuid.UUID) error {
	inst, ok := a.find(id)
	if !ok {
		return ErrUnknownSet
	}
	if !a.selectable(inst) {
		return ErrSetUnavailable
	}
	a.selected[id] = struct{}{}
	return nil
}

func (a *Allocator) RemoveInstance(id uuid.UUID) error {
	if _, ok := a.find(id); !ok {
		return ErrUnknownSet
	}
	delete(a.selected, id)
	return nil
}

// ApplyAvailability replaces the unavailable set and immediately drops
// any held selection the oracle now reports as taken. This runs on
// every availability change, not on demand.
func (a *Allocator) ApplyAvailability(unavailableIDs []uuid.UUID) {
	a.unavailable = make(map[uuid.UUID]struct{}, len(unavailableIDs))
	for _, id := range unavailableIDs {
		a.unavailable[id] = struct{}{}
	}
	for id := range a.selected {
		if _, gone := a.unavailable[id]; gone {
			delete(a.selected, id)
		}
	}
}

// Selection returns the held instance IDs in listing order.
func (a *Allocator) Selection() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(a.selected))
	for _, inst := range a.instances {
		if _, sel := a.selected[inst.ID]; sel {
			ids = append(ids, inst.ID)
		}
	}
	return ids
}

func (a *Allocator) Instances() []Instance {
	return a.instances
}

func (a *Allocator) IsSelected(id uuid.UUID) bool {
	_, sel := a.selected[id]
	return sel
}

func (a *Allocator) selectable(inst Instance) bool {
	if !inst.InService() {
		return false
	}
	_, gone := a.unavailable[inst.ID]
	return !gone
}

func (a *Allocator) find(id uuid.UUID) (Instance, bool) {
	for _, inst := range a.instances {
		if inst.ID == id {
			return inst, true
		}
	}
	return Instance{}, false
}
