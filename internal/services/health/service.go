package health

import (
	"context"
	"database/sql"
	"time"
)

const pingTimeout = 2 * time.Second

// DraftCounter reports the number of live drafts.
type DraftCounter interface {
	Count(ctx context.Context) (int, error)
}

// Service encapsulates health-related checks.
type Service struct {
	Drafts      DraftCounter
	DB          *sql.DB
	ObjectStore string
	Archive     bool
}

// Status is the health payload.
type Status struct {
	OK          bool   `json:"ok"`
	Drafts      int    `json:"drafts"`
	Database    string `json:"database"`
	ObjectStore string `json:"objectStore"`
	Archive     bool   `json:"archive"`
}

// NewService constructs a new health service.
func NewService(drafts DraftCounter, db *sql.DB, objectStore string, archive bool) *Service {
	return &Service{Drafts: drafts, DB: db, ObjectStore: objectStore, Archive: archive}
}

// Status reports liveness. A failed database ping marks the service unhealthy;
// running without a database is fine.
func (s *Service) Status(ctx context.Context) Status {
	status := Status{OK: true, Database: "memory", ObjectStore: s.ObjectStore, Archive: s.Archive}

	if s.Drafts != nil {
		if n, err := s.Drafts.Count(ctx); err == nil {
			status.Drafts = n
		}
	}

	if s.DB != nil {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := s.DB.PingContext(pingCtx); err != nil {
			status.OK = false
			status.Database = "unreachable"
		} else {
			status.Database = "ok"
		}
	}
	return status
}
