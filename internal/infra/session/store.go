package session

import (
	"sync"
	"time"

	"equiplend/internal/domain/draft"
	"equiplend/internal/pkg/clock"

	"github.com/google/uuid"
)

// Store holds in-progress reservation drafts in memory, one per user
// session. Drafts are never persisted; an abandoned draft is swept
// after its TTL.
type Store struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]*draft.Draft

	clock clock.Clock
	ttl   time.Duration
}

func NewStore(clk clock.Clock, ttl time.Duration) *Store {
	return &Store{
		drafts: make(map[uuid.UUID]*draft.Draft),
		clock:  clk,
		ttl:    ttl,
	}
}

func (s *Store) Put(d *draft.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[d.ID()] = d
}

func (s *Store) Get(id uuid.UUID) (*draft.Draft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drafts[id]
	return d, ok
}

func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
}

// Sweep drops drafts untouched for longer than the TTL and reports how
// many were removed.
func (s *Store) Sweep() int {
	deadline := s.clock.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, d := range s.drafts {
		if d.TouchedAt().Before(deadline) {
			delete(s.drafts, id)
			removed++
		}
	}
	return removed
}

// RunSweeper sweeps on the given interval until stop is closed.
func (s *Store) RunSweeper(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-stop:
			return
		}
	}
}
