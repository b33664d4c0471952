package exports

import "time"

// Export is the metadata of one rendered download. The file itself is only
// kept when archiving is enabled, in which case StorageKey is set.
type Export struct {
	ID          string
	DraftID     string
	Format      string
	FileName    string
	ContentType string
	SizeBytes   int64
	Digest      string
	StorageKey  string
	DurationMs  int64
	CreatedAt   time.Time
}

// Archived reports whether a copy of the file can be read back.
func (e Export) Archived() bool {
	return e.StorageKey != ""
}
