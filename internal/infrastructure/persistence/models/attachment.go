package models

import (
	"github.com/google/uuid"

	"github.com/finvoice/backend/internal/domain/attachment"
)

// AttachmentModel is the persistence model for document attachments. The
// storage key is globally unique because it embeds the attachment ID.
type AttachmentModel struct {
	TenantAggregateModel
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerType   string    `gorm:"type:varchar(20);not null;index:idx_attachment_owner,priority:1"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index:idx_attachment_owner,priority:2"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	ContentType string    `gorm:"type:varchar(100);not null"`
	SizeBytes   int64     `gorm:"not null"`
	StorageKey  string    `gorm:"type:varchar(500);not null;uniqueIndex"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (AttachmentModel) TableName() string { return "attachments" }

// ToDomain converts the persistence model to a domain Attachment.
func (m *AttachmentModel) ToDomain() *attachment.Attachment {
	return &attachment.Attachment{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		CompanyID:           m.CompanyID,
		OwnerType:           attachment.OwnerType(m.OwnerType),
		OwnerID:             m.OwnerID,
		FileName:            m.FileName,
		ContentType:         m.ContentType,
		SizeBytes:           m.SizeBytes,
		StorageKey:          m.StorageKey,
		Status:              attachment.Status(m.Status),
	}
}

// AttachmentModelFromDomain converts a domain Attachment to its persistence model.
func AttachmentModelFromDomain(a *attachment.Attachment) *AttachmentModel {
	m := &AttachmentModel{
		CompanyID:   a.CompanyID,
		OwnerType:   string(a.OwnerType),
		OwnerID:     a.OwnerID,
		FileName:    a.FileName,
		ContentType: a.ContentType,
		SizeBytes:   a.SizeBytes,
		StorageKey:  a.StorageKey,
		Status:      string(a.Status),
	}
	m.FromDomainTenantAggregateRoot(a.TenantAggregateRoot)
	return m
}
