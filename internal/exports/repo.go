package exports

import "context"

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Repo defines persistence for export records.
type Repo interface {
	Create(ctx context.Context, export Export) error
	GetByID(ctx context.Context, id string) (Export, error)
	ListRecent(ctx context.Context, limit int) ([]Export, error)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
