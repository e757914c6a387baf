package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	attachmentapp "github.com/finvoice/backend/internal/application/attachment"
)

var _ attachmentapp.ObjectStorageService = (*StubObjectStorage)(nil)

// StubObjectStorage is an in-memory ObjectStorageService for development
// and tests. It fabricates URLs and tracks which keys were "uploaded" so
// the confirm flow behaves like the real backend.
type StubObjectStorage struct {
	// BaseURL prefixes the fabricated upload/download URLs.
	BaseURL string

	mu      sync.Mutex
	objects map[string]bool
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.example.com",
		objects: make(map[string]bool),
	}
}

// EnsureBucket is a no-op.
func (s *StubObjectStorage) EnsureBucket(ctx context.Context) error {
	return nil
}

// GenerateUploadURL fabricates an upload URL and records the key as
// uploaded, so a following ObjectExists check passes.
func (s *StubObjectStorage) GenerateUploadURL(
	ctx context.Context,
	storageKey, contentType string,
	expiresIn time.Duration,
) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	s.mu.Lock()
	s.objects[storageKey] = true
	s.mu.Unlock()

	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/upload/" + storageKey + "?expires=" + expiresAt.Format(time.RFC3339), expiresAt, nil
}

// GenerateDownloadURL fabricates a download URL.
func (s *StubObjectStorage) GenerateDownloadURL(
	ctx context.Context,
	storageKey string,
	expiresIn time.Duration,
) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/download/" + storageKey + "?expires=" + expiresAt.Format(time.RFC3339), expiresAt, nil
}

// DeleteObject forgets the key.
func (s *StubObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	delete(s.objects, storageKey)
	s.mu.Unlock()
	return nil
}

// ObjectExists reports whether the key was uploaded or put directly.
func (s *StubObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.objects[storageKey], nil
}

// Upload records the key without storing the data.
func (s *StubObjectStorage) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	s.objects[storageKey] = true
	s.mu.Unlock()
	return nil
}
