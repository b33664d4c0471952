package exports

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []Export
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends an export record.
func (r *MemoryRepo) Create(ctx context.Context, export Export) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, export)
	return nil
}

// GetByID returns an export record by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Export, error) {
	if err := ctx.Err(); err != nil {
		return Export{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, export := range r.data {
		if export.ID == id {
			return export, nil
		}
	}
	return Export{}, ErrNotFound
}

// ListRecent returns records newest first.
func (r *MemoryRepo) ListRecent(ctx context.Context, limit int) ([]Export, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit = clampLimit(limit)

	r.mu.RLock()
	out := make([]Export, len(r.data))
	copy(out, r.data)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
