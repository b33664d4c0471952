package exports

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts an export record.
func (r *PGRepo) Create(ctx context.Context, export Export) error {
	const query = `
INSERT INTO exports (
    id, draft_id, format, file_name, content_type, size_bytes, digest, storage_key, duration_ms, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.DB.ExecContext(ctx, query,
		export.ID,
		export.DraftID,
		export.Format,
		export.FileName,
		export.ContentType,
		export.SizeBytes,
		export.Digest,
		export.StorageKey,
		export.DurationMs,
		export.CreatedAt,
	)
	return err
}

// GetByID returns an export record by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Export, error) {
	const query = `
SELECT id, draft_id, format, file_name, content_type, size_bytes, digest, storage_key, duration_ms, created_at
FROM exports
WHERE id = $1
LIMIT 1`
	export, err := scanExport(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Export{}, ErrNotFound
		}
		return Export{}, err
	}
	return export, nil
}

// ListRecent lists export records ordered newest-first.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]Export, error) {
	const query = `
SELECT id, draft_id, format, file_name, content_type, size_bytes, digest, storage_key, duration_ms, created_at
FROM exports
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Export{}
	for rows.Next() {
		export, err := scanExport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, export)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExport(row rowScanner) (Export, error) {
	var export Export
	err := row.Scan(
		&export.ID,
		&export.DraftID,
		&export.Format,
		&export.FileName,
		&export.ContentType,
		&export.SizeBytes,
		&export.Digest,
		&export.StorageKey,
		&export.DurationMs,
		&export.CreatedAt,
	)
	return export, err
}

var _ Repo = (*PGRepo)(nil)
