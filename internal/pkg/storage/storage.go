package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage is where rendered payslip documents and archives end up.
// Computed results themselves are never persisted; only the documents a
// caller asked for are written, and a run can be repeated from the source
// file at any time.
type FileStorage interface {
	// Upload writes a file and returns its storage path/key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a stored file.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a stored file.
	Delete(ctx context.Context, path string) error

	// GetURL generates a retrieval URL for a stored file.
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}
