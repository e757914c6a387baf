package attachment

import (
	"context"
	"time"
)

// ObjectStorageService abstracts the object store holding attachment
// binaries. Clients never stream file bodies through this API: uploads and
// downloads go directly against presigned URLs, so the backend only ever
// moves metadata.
type ObjectStorageService interface {
	// EnsureBucket makes sure the configured bucket exists. Called once at
	// startup.
	EnsureBucket(ctx context.Context) error

	// GenerateUploadURL returns a presigned PUT URL for the given key along
	// with its expiry. A non-positive expiresIn falls back to the configured
	// default.
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// GenerateDownloadURL returns a presigned GET URL for the given key.
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)

	// DeleteObject removes the object. Deleting a missing object is not an
	// error.
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists reports whether the object is present in the bucket.
	ObjectExists(ctx context.Context, storageKey string) (bool, error)

	// Upload writes data directly, bypassing the presigned flow. Used by
	// server-generated artifacts, not client uploads.
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
}
