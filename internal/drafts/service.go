package drafts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/model"
)

const (
	DefaultTTL           = 2 * time.Hour
	DefaultSweepInterval = time.Minute
)

// Service owns the draft lifecycle: create, mutate one field at a time, discard, evict.
type Service struct {
	Repo Repo
	TTL  time.Duration
	Now  func() time.Time
}

// NewService constructs a Service. A non-positive ttl falls back to DefaultTTL.
func NewService(repo Repo, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{Repo: repo, TTL: ttl, Now: time.Now}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// Create starts a draft with the all-empty form.
func (s *Service) Create(ctx context.Context) (Draft, error) {
	now := s.now()
	draft := Draft{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, draft); err != nil {
		return Draft{}, err
	}
	metrics.IncDraftCreated()
	return draft, nil
}

// Get returns a snapshot of the draft. Callers may render it without holding any lock.
func (s *Service) Get(ctx context.Context, id string) (Draft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Draft{}, ErrNotFound
	}
	return s.Repo.Get(ctx, id)
}

// Replace overwrites the whole form state.
func (s *Service) Replace(ctx context.Context, id string, data model.ResumeData) (Draft, error) {
	return s.update(ctx, id, func(d *Draft) error {
		d.Data = data
		return nil
	})
}

// UpdatePersonalInfo sets one header value verbatim.
func (s *Service) UpdatePersonalInfo(ctx context.Context, id, field, value string) (Draft, error) {
	return s.update(ctx, id, func(d *Draft) error {
		return d.Data.UpdatePersonalInfo(field, value)
	})
}

// UpdateField sets one free-text field verbatim.
func (s *Service) UpdateField(ctx context.Context, id, field, value string) (Draft, error) {
	return s.update(ctx, id, func(d *Draft) error {
		return d.Data.UpdateField(field, value)
	})
}

func (s *Service) update(ctx context.Context, id string, fn func(*Draft) error) (Draft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Draft{}, ErrNotFound
	}
	now := s.now()
	return s.Repo.Update(ctx, id, func(d *Draft) error {
		if err := fn(d); err != nil {
			return err
		}
		d.UpdatedAt = now
		return nil
	})
}

// Discard drops a draft, typically on page unload.
func (s *Service) Discard(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.DraftsRemoved(1, false)
	return nil
}

// Sweep evicts drafts idle for longer than the TTL as of now.
func (s *Service) Sweep(ctx context.Context, now time.Time) (int, error) {
	removed, err := s.Repo.DeleteIdleSince(ctx, now.Add(-s.TTL))
	if err != nil {
		return 0, fmt.Errorf("sweep drafts: %w", err)
	}
	if removed > 0 {
		metrics.DraftsRemoved(removed, true)
	}
	return removed, nil
}

// Count reports how many drafts are live.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.Repo.Count(ctx)
}

// RunSweeper evicts idle drafts every interval until ctx is done.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.Sweep(ctx, s.now())
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				telemetry.Warn("draft.sweep", map[string]any{"err": err})
				continue
			}
			if removed > 0 {
				telemetry.Info("draft.sweep", map[string]any{
					"evicted": removed,
					"ttl":     s.TTL.String(),
				})
			}
		}
	}
}
