package attachment

import (
	"fmt"
	"path"
	"strings"

	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OwnerType names the kind of document an attachment belongs to.
type OwnerType string

const (
	OwnerTypeInvoice OwnerType = "invoice"
	OwnerTypeReceipt OwnerType = "receipt"
)

// Status tracks the upload lifecycle. A record is created before the client
// uploads through the presigned URL; it becomes available only after the
// object is confirmed present in the store.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAvailable Status = "available"
)

// MaxSizeBytes is the largest accepted upload (25 MiB).
const MaxSizeBytes = 25 << 20

// Attachment is a file linked to an invoice or receipt. The binary lives in
// object storage under StorageKey; this aggregate carries only the metadata.
type Attachment struct {
	shared.TenantAggregateRoot
	CompanyID   uuid.UUID `json:"company_id"`
	OwnerType   OwnerType `json:"owner_type"`
	OwnerID     uuid.UUID `json:"owner_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	StorageKey  string    `json:"storage_key"`
	Status      Status    `json:"status"`
}

// NewAttachment creates a pending attachment record and derives its storage
// key. The key namespaces objects by tenant, owner and attachment ID so two
// uploads of the same filename never collide.
func NewAttachment(tenantID uuid.UUID, actor string, companyID uuid.UUID, ownerType OwnerType, ownerID uuid.UUID, fileName, contentType string, sizeBytes int64) (*Attachment, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewValidationError("company is required")
	}
	if ownerType != OwnerTypeInvoice && ownerType != OwnerTypeReceipt {
		return nil, shared.NewValidationError("owner type must be invoice or receipt")
	}
	if ownerID == uuid.Nil {
		return nil, shared.NewValidationError("owner document is required")
	}
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, shared.NewValidationError("file name is required")
	}
	if strings.ContainsAny(fileName, `/\`) {
		return nil, shared.NewValidationError("file name must not contain path separators")
	}
	if contentType == "" {
		return nil, shared.NewValidationError("content type is required")
	}
	if sizeBytes <= 0 {
		return nil, shared.NewValidationError("file size must be positive")
	}
	if sizeBytes > MaxSizeBytes {
		return nil, shared.NewValidationError("file exceeds the %d byte limit", MaxSizeBytes)
	}

	a := &Attachment{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, actor),
		CompanyID:           companyID,
		OwnerType:           ownerType,
		OwnerID:             ownerID,
		FileName:            fileName,
		ContentType:         contentType,
		SizeBytes:           sizeBytes,
		Status:              StatusPending,
	}
	a.StorageKey = path.Join(
		tenantID.String(),
		string(ownerType),
		ownerID.String(),
		fmt.Sprintf("%s-%s", a.ID.String(), fileName),
	)
	return a, nil
}

// MarkAvailable transitions a pending attachment to available once the
// object has been confirmed in storage.
func (a *Attachment) MarkAvailable(actor string) error {
	if a.Status == StatusAvailable {
		return shared.NewDomainError(shared.CodeInvalidState, "attachment is already confirmed")
	}
	a.Status = StatusAvailable
	a.Touch(actor)
	return nil
}

// Downloadable reports whether a download URL may be issued.
func (a *Attachment) Downloadable() bool {
	return a.Status == StatusAvailable
}

// ParseOwnerType validates a caller-supplied owner type string.
func ParseOwnerType(s string) (OwnerType, error) {
	switch OwnerType(strings.ToLower(strings.TrimSpace(s))) {
	case OwnerTypeInvoice:
		return OwnerTypeInvoice, nil
	case OwnerTypeReceipt:
		return OwnerTypeReceipt, nil
	default:
		return "", shared.NewValidationError("owner type must be invoice or receipt")
	}
}
