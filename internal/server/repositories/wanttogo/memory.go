package wanttogo

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepository keeps lists in process memory. Add holds the lock across
// the membership check and the append.
type MemoryRepository struct {
	mu    sync.RWMutex
	lists map[string][]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{lists: make(map[string][]string)}
}

func (r *MemoryRepository) List(ctx context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.lists[userID]))
	copy(out, r.lists[userID])
	return out, nil
}

func (r *MemoryRepository) Contains(ctx context.Context, userID, destination string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Contains(r.lists[userID], destination), nil
}

func (r *MemoryRepository) Add(ctx context.Context, userID, destination string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.Contains(r.lists[userID], destination) {
		return false, nil
	}
	r.lists[userID] = append(r.lists[userID], destination)
	return true, nil
}
