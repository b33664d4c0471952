package drafts

import (
	"context"
	"time"
)

// Repo defines storage for drafts.
type Repo interface {
	Create(ctx context.Context, draft Draft) error
	Get(ctx context.Context, id string) (Draft, error)
	// Update applies fn to the stored draft under the write lock. A non-nil
	// error from fn leaves the draft unchanged.
	Update(ctx context.Context, id string, fn func(*Draft) error) (Draft, error)
	Delete(ctx context.Context, id string) error
	// DeleteIdleSince removes drafts last updated before cutoff and returns how many went.
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error)
	Count(ctx context.Context) (int, error)
}
