package drafts

import "errors"

// ErrNotFound is returned for unknown, discarded or evicted drafts.
var ErrNotFound = errors.New("draft not found")
