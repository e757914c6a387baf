package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finvoice/backend/internal/domain/attachment"
	"github.com/finvoice/backend/internal/infrastructure/persistence/models"
)

// GormAttachmentRepository implements attachment.Repository using GORM
type GormAttachmentRepository struct {
	db *gorm.DB
}

// NewGormAttachmentRepository creates a new GormAttachmentRepository
func NewGormAttachmentRepository(db *gorm.DB) *GormAttachmentRepository {
	return &GormAttachmentRepository{db: db}
}

// Create persists a new attachment record
func (r *GormAttachmentRepository) Create(ctx context.Context, a *attachment.Attachment) error {
	model := models.AttachmentModelFromDomain(a)
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Create(model).Error, "attachment")
}

// Update persists changes to an attachment record
func (r *GormAttachmentRepository) Update(ctx context.Context, a *attachment.Attachment) error {
	model := models.AttachmentModelFromDomain(a)
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Save(model).Error, "attachment")
}

// FindByIDForTenant finds an attachment by ID for a specific tenant
func (r *GormAttachmentRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*attachment.Attachment, error) {
	var model models.AttachmentModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOwner lists the attachments linked to one document, oldest first
func (r *GormAttachmentRepository) FindByOwner(ctx context.Context, tenantID uuid.UUID, ownerType attachment.OwnerType, ownerID uuid.UUID) ([]*attachment.Attachment, error) {
	var attachmentModels []models.AttachmentModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("tenant_id = ? AND owner_type = ? AND owner_id = ?", tenantID, string(ownerType), ownerID).
		Order("created_at ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, err
	}
	attachments := make([]*attachment.Attachment, len(attachmentModels))
	for i, model := range attachmentModels {
		attachments[i] = model.ToDomain()
	}
	return attachments, nil
}

// Delete removes an attachment record
func (r *GormAttachmentRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).
			Delete(&models.AttachmentModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error, "attachment")
}

var _ attachment.Repository = (*GormAttachmentRepository)(nil)
