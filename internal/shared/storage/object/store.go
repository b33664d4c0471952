package object

import (
	"context"
	"io"
)

// Object is a payload to archive. Owner namespaces the key; ContentType may be
// empty, in which case the store sniffs it.
type Object struct {
	Owner       string
	FileName    string
	ContentType string
	Body        io.Reader
}

// Stored describes an archived object.
type Stored struct {
	Key         string
	SizeBytes   int64
	ContentType string
}

// ObjectStore archives rendered files and reads them back by key.
type ObjectStore interface {
	Put(ctx context.Context, obj Object) (Stored, error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
