package exports

import "errors"

var (
	// ErrNotFound indicates an unknown export record.
	ErrNotFound = errors.New("export not found")

	// ErrUnsupportedFormat is returned for formats other than pdf and docx.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrNotArchived is returned when a record exists but its file was not kept.
	ErrNotArchived = errors.New("export not archived")
)
