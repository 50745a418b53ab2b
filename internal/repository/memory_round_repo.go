package repository

import (
	"context"
	"sync"
	"time"
)

// MemoryRoundRepository keeps pending rounds in process memory.
type MemoryRoundRepository struct {
	mu     sync.Mutex
	rounds map[string]*PendingRound
	now    func() time.Time
}

func NewMemoryRoundRepository() *MemoryRoundRepository {
	return &MemoryRoundRepository{
		rounds: make(map[string]*PendingRound),
		now:    time.Now,
	}
}

func (r *MemoryRoundRepository) Save(ctx context.Context, round *PendingRound, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *round
	cp.ExpiresAt = r.now().Add(ttl)
	r.rounds[round.ID] = &cp
	return nil
}

func (r *MemoryRoundRepository) Get(ctx context.Context, id string) (*PendingRound, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	round, ok := r.live(id)
	if !ok {
		return nil, ErrRoundNotFound
	}
	cp := *round
	return &cp, nil
}

func (r *MemoryRoundRepository) Take(ctx context.Context, id string) (*PendingRound, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	round, ok := r.live(id)
	if !ok {
		return nil, ErrRoundNotFound
	}
	delete(r.rounds, id)
	return round, nil
}

func (r *MemoryRoundRepository) Ping(ctx context.Context) error {
	return nil
}

// Cleanup drops expired rounds and returns how many were removed.
func (r *MemoryRoundRepository) Cleanup() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, round := range r.rounds {
		if now.After(round.ExpiresAt) {
			delete(r.rounds, id)
			removed++
		}
	}
	return removed
}

// StartCleanup runs Cleanup every interval until ctx is done.
func (r *MemoryRoundRepository) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Cleanup()
			}
		}
	}()
}

// live must be called with mu held.
func (r *MemoryRoundRepository) live(id string) (*PendingRound, bool) {
	round, ok := r.rounds[id]
	if !ok {
		return nil, false
	}
	if r.now().After(round.ExpiresAt) {
		delete(r.rounds, id)
		return nil, false
	}
	return round, true
}
