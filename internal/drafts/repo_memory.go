package drafts

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Draft
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Draft),
	}
}

// Create stores a new draft.
func (r *MemoryRepo) Create(ctx context.Context, draft Draft) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[draft.ID] = draft
	return nil
}

// Get returns a copy of the draft. ResumeData holds only strings, so the copy
// shares nothing with the stored value.
func (r *MemoryRepo) Get(ctx context.Context, id string) (Draft, error) {
	if err := ctx.Err(); err != nil {
		return Draft{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	draft, ok := r.data[id]
	if !ok {
		return Draft{}, ErrNotFound
	}
	return draft, nil
}

// Update mutates a working copy and stores it only when fn succeeds.
func (r *MemoryRepo) Update(ctx context.Context, id string, fn func(*Draft) error) (Draft, error) {
	if err := ctx.Err(); err != nil {
		return Draft{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	draft, ok := r.data[id]
	if !ok {
		return Draft{}, ErrNotFound
	}
	if err := fn(&draft); err != nil {
		return Draft{}, err
	}
	r.data[id] = draft
	return draft, nil
}

// Delete removes a draft.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

// DeleteIdleSince evicts drafts whose last update is before cutoff.
func (r *MemoryRepo) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, draft := range r.data {
		if draft.UpdatedAt.Before(cutoff) {
			delete(r.data, id)
			removed++
		}
	}
	return removed, nil
}

// Count returns the number of live drafts.
func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data), nil
}
