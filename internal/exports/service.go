package exports

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/layout"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

// adhocOwner namespaces archived exports that were not rendered from a draft.
const adhocOwner = "adhoc"

// Service renders downloads and keeps their metadata.
type Service struct {
	Repo       Repo
	Store      object.ObjectStore
	Archive    bool
	Predefined model.PredefinedData
	Now        func() time.Time
}

// Result is a rendered file plus its record.
type Result struct {
	Export Export
	Data   []byte
}

// ParseFormat normalizes a format path segment.
func ParseFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case render.FormatPDF:
		return render.FormatPDF, nil
	case render.FormatDOCX:
		return render.FormatDOCX, nil
	default:
		return "", fmt.Errorf("%q: %w", raw, ErrUnsupportedFormat)
	}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// Render builds the layout once and draws it in the requested format. data is a
// snapshot, so concurrent edits to the draft do not affect the output.
// Archiving and record keeping are best effort and never fail the download.
func (s *Service) Render(ctx context.Context, draftID string, data model.ResumeData, format string) (Result, error) {
	format, err := ParseFormat(format)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	created := s.now()
	doc := layout.Build(data, s.Predefined)

	payload, fileName, contentType, err := renderDocument(doc, format, created)
	if err != nil {
		metrics.IncExportFailed()
		telemetry.Error("export.failed", map[string]any{
			"draft_id": draftID,
			"format":   format,
			"err":      err,
		})
		return Result{}, err
	}

	durationMs := metrics.SinceMillis(start)
	metrics.IncExport(format)
	metrics.ObserveExportDurationMs(durationMs)

	export := Export{
		ID:          uuid.NewString(),
		DraftID:     draftID,
		Format:      format,
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   int64(len(payload)),
		Digest:      doc.Digest(),
		DurationMs:  int64(durationMs),
		CreatedAt:   created,
	}
	export.StorageKey = s.archive(ctx, export, payload)

	if s.Repo != nil {
		if err := s.Repo.Create(ctx, export); err != nil {
			telemetry.Warn("export.record_failed", map[string]any{
				"export_id": export.ID,
				"err":       err,
			})
		}
	}

	telemetry.Info("export.complete", map[string]any{
		"export_id":   export.ID,
		"draft_id":    draftID,
		"format":      format,
		"size_bytes":  export.SizeBytes,
		"digest":      export.Digest,
		"duration_ms": export.DurationMs,
		"archived":    export.Archived(),
	})
	return Result{Export: export, Data: payload}, nil
}

func (s *Service) archive(ctx context.Context, export Export, payload []byte) string {
	if !s.Archive || s.Store == nil {
		return ""
	}
	owner := export.DraftID
	if owner == "" {
		owner = adhocOwner
	}
	stored, err := s.Store.Put(ctx, object.Object{
		Owner:       owner,
		FileName:    export.FileName,
		ContentType: export.ContentType,
		Body:        bytes.NewReader(payload),
	})
	if err != nil {
		telemetry.Warn("export.archive_failed", map[string]any{
			"export_id": export.ID,
			"err":       err,
		})
		return ""
	}
	return stored.Key
}

// Get returns an export record.
func (s *Service) Get(ctx context.Context, id string) (Export, error) {
	if s.Repo == nil {
		return Export{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns recent export records, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]Export, error) {
	if s.Repo == nil {
		return []Export{}, nil
	}
	return s.Repo.ListRecent(ctx, limit)
}

// Open streams an archived export back.
func (s *Service) Open(ctx context.Context, id string) (Export, io.ReadCloser, error) {
	export, err := s.Get(ctx, id)
	if err != nil {
		return Export{}, nil, err
	}
	if !export.Archived() || s.Store == nil {
		return Export{}, nil, ErrNotArchived
	}
	body, err := s.Store.Open(ctx, export.StorageKey)
	if err != nil {
		return Export{}, nil, fmt.Errorf("open archived export %s: %w", id, err)
	}
	return export, body, nil
}

func renderDocument(doc layout.Document, format string, created time.Time) ([]byte, string, string, error) {
	switch format {
	case render.FormatPDF:
		data, err := render.PDFBytes(doc, render.PDFOptions{CreatedAt: created})
		return data, render.PDFFileName, render.PDFContentType, err
	case render.FormatDOCX:
		data, err := render.DOCX(doc, render.DOCXOptions{CreatedAt: created})
		return data, render.DOCXFileName, render.DOCXContentType, err
	default:
		return nil, "", "", fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
}
