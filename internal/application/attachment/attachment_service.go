package attachment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/finvoice/backend/internal/domain/attachment"
	"github.com/finvoice/backend/internal/domain/shared"
)

func domainOrInternal(op string, err error) error {
	var de *shared.DomainError
	if errors.As(err, &de) {
		return de
	}
	return shared.NewInternalError(op, err)
}

// UploadRequest describes a file the client wants to attach to a document.
type UploadRequest struct {
	CompanyID   uuid.UUID
	OwnerType   attachment.OwnerType
	OwnerID     uuid.UUID
	FileName    string
	ContentType string
	SizeBytes   int64
}

// UploadIntent is what the client needs to perform the upload: the pending
// metadata record and a presigned PUT URL.
type UploadIntent struct {
	Attachment *attachment.Attachment `json:"attachment"`
	UploadURL  string                 `json:"upload_url"`
	ExpiresAt  time.Time              `json:"expires_at"`
}

// DownloadLink is a short-lived presigned GET URL for a confirmed attachment.
type DownloadLink struct {
	Attachment  *attachment.Attachment `json:"attachment"`
	DownloadURL string                 `json:"download_url"`
	ExpiresAt   time.Time              `json:"expires_at"`
}

// AttachmentService manages document attachments in three steps: register a
// pending record and hand out an upload URL, confirm the object landed, then
// serve download URLs. File bodies never pass through the backend.
type AttachmentService struct {
	attachments attachment.Repository
	store       ObjectStorageService
	logger      *zap.Logger
}

// NewAttachmentService creates a new AttachmentService.
func NewAttachmentService(attachments attachment.Repository, store ObjectStorageService, logger *zap.Logger) *AttachmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttachmentService{
		attachments: attachments,
		store:       store,
		logger:      logger,
	}
}

// RequestUpload registers a pending attachment and returns a presigned PUT
// URL. The record stays pending until ConfirmUpload verifies the object.
func (s *AttachmentService) RequestUpload(ctx context.Context, tenantID uuid.UUID, actor string, req UploadRequest) (*UploadIntent, error) {
	a, err := attachment.NewAttachment(tenantID, actor, req.CompanyID, req.OwnerType, req.OwnerID,
		req.FileName, req.ContentType, req.SizeBytes)
	if err != nil {
		return nil, err
	}
	if err := s.attachments.Create(ctx, a); err != nil {
		return nil, domainOrInternal("create attachment", err)
	}

	url, expiresAt, err := s.store.GenerateUploadURL(ctx, a.StorageKey, a.ContentType, 0)
	if err != nil {
		return nil, shared.NewInternalError("generate upload url", err)
	}
	return &UploadIntent{Attachment: a, UploadURL: url, ExpiresAt: expiresAt}, nil
}

// ConfirmUpload marks a pending attachment available after checking that the
// object actually exists in the store.
func (s *AttachmentService) ConfirmUpload(ctx context.Context, tenantID, id uuid.UUID, actor string) (*attachment.Attachment, error) {
	a, err := s.get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	exists, err := s.store.ObjectExists(ctx, a.StorageKey)
	if err != nil {
		return nil, shared.NewInternalError("check object", err)
	}
	if !exists {
		return nil, shared.NewValidationError("file has not been uploaded yet")
	}
	if err := a.MarkAvailable(actor); err != nil {
		return nil, err
	}
	if err := s.attachments.Update(ctx, a); err != nil {
		return nil, domainOrInternal("update attachment", err)
	}
	return a, nil
}

// GetDownloadLink issues a presigned GET URL for a confirmed attachment.
func (s *AttachmentService) GetDownloadLink(ctx context.Context, tenantID, id uuid.UUID) (*DownloadLink, error) {
	a, err := s.get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if !a.Downloadable() {
		return nil, shared.NewDomainError(shared.CodeInvalidState, "attachment upload has not been confirmed")
	}
	url, expiresAt, err := s.store.GenerateDownloadURL(ctx, a.StorageKey, 0)
	if err != nil {
		return nil, shared.NewInternalError("generate download url", err)
	}
	return &DownloadLink{Attachment: a, DownloadURL: url, ExpiresAt: expiresAt}, nil
}

// ListForDocument returns the attachments linked to one invoice or receipt.
func (s *AttachmentService) ListForDocument(ctx context.Context, tenantID uuid.UUID, ownerType attachment.OwnerType, ownerID uuid.UUID) ([]*attachment.Attachment, error) {
	items, err := s.attachments.FindByOwner(ctx, tenantID, ownerType, ownerID)
	if err != nil {
		return nil, shared.NewInternalError("list attachments", err)
	}
	return items, nil
}

// Delete removes the metadata record and then the stored object. A failed
// object delete is logged but does not resurrect the record; the key is
// unreachable once the row is gone.
func (s *AttachmentService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	a, err := s.get(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := s.attachments.Delete(ctx, tenantID, a.ID); err != nil {
		return domainOrInternal("delete attachment", err)
	}
	if err := s.store.DeleteObject(ctx, a.StorageKey); err != nil {
		s.logger.Warn("orphaned object left in storage",
			zap.String("storage_key", a.StorageKey),
			zap.Error(err))
	}
	return nil
}

func (s *AttachmentService) get(ctx context.Context, tenantID, id uuid.UUID) (*attachment.Attachment, error) {
	a, err := s.attachments.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, shared.NewInternalError("find attachment", err)
	}
	if a == nil {
		return nil, shared.NewNotFoundError("attachment")
	}
	return a, nil
}
