package exports

import "time"

// ExportResponse is the outward-facing representation of an export record.
// Draft ids are bearer credentials for live drafts and never leave the service.
type ExportResponse struct {
	ExportID    string    `json:"exportId"`
	Format      string    `json:"format"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	Digest      string    `json:"digest"`
	Archived    bool      `json:"archived"`
	DurationMs  int64     `json:"durationMs"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toResponse(e Export) ExportResponse {
	return ExportResponse{
		ExportID:    e.ID,
		Format:      e.Format,
		FileName:    e.FileName,
		ContentType: e.ContentType,
		SizeBytes:   e.SizeBytes,
		Digest:      e.Digest,
		Archived:    e.Archived(),
		DurationMs:  e.DurationMs,
		CreatedAt:   e.CreatedAt,
	}
}
