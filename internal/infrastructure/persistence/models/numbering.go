package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentSequenceModel holds the last issued number of one document
// series. One row per (tenant, company, document type, fiscal year); the
// row is read under FOR UPDATE inside the document create transaction.
type DocumentSequenceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sequence_series,priority:1"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sequence_series,priority:2"`
	DocType    string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_sequence_series,priority:3"`
	FiscalYear string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_sequence_series,priority:4"`
	LastNumber int       `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DocumentSequenceModel) TableName() string { return "document_sequences" }
