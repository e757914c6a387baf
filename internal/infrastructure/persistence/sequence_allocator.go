package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finvoice/backend/internal/domain/numbering"
	"github.com/finvoice/backend/internal/infrastructure/persistence/models"
)

// GormSequenceAllocator implements numbering.Allocator against the
// document_sequences table. The read-and-increment happens under a row
// lock, so it must be called inside the document create transaction: the
// lock is held until that transaction commits, which is what keeps two
// concurrent creates from drawing the same number.
type GormSequenceAllocator struct {
	db *gorm.DB
}

// NewGormSequenceAllocator creates a new GormSequenceAllocator
func NewGormSequenceAllocator(db *gorm.DB) *GormSequenceAllocator {
	return &GormSequenceAllocator{db: db}
}

// NextNumber returns the next formatted number for the series the
// document date falls into. The series row is created on first use; the
// DO NOTHING insert makes first use race-free, the FOR UPDATE read
// serializes everything after it.
func (a *GormSequenceAllocator) NextNumber(ctx context.Context, tenantID, companyID uuid.UUID, docType numbering.DocumentType, docDate time.Time) (string, error) {
	db := dbFromContext(ctx, a.db).WithContext(ctx)
	fiscalYear := numbering.FiscalYearLabel(docDate)

	seed := models.DocumentSequenceModel{
		ID:         uuid.New(),
		TenantID:   tenantID,
		CompanyID:  companyID,
		DocType:    string(docType),
		FiscalYear: fiscalYear,
		LastNumber: a.maxExistingSequence(db, tenantID, companyID, docType, fiscalYear),
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return "", err
	}

	var row models.DocumentSequenceModel
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("tenant_id = ? AND company_id = ? AND doc_type = ? AND fiscal_year = ?",
			tenantID, companyID, string(docType), fiscalYear).
		First(&row).Error; err != nil {
		return "", err
	}

	row.LastNumber++
	if err := db.Model(&models.DocumentSequenceModel{}).
		Where("id = ?", row.ID).
		Update("last_number", row.LastNumber).Error; err != nil {
		return "", err
	}

	return numbering.Format(docType, fiscalYear, row.LastNumber), nil
}

// maxExistingSequence seeds a new series from documents numbered before
// the counter row existed, so the series resumes instead of restarting.
// Only consulted on first use; races between two first users are settled
// by the DO NOTHING insert.
func (a *GormSequenceAllocator) maxExistingSequence(db *gorm.DB, tenantID, companyID uuid.UUID, docType numbering.DocumentType, fiscalYear string) int {
	table := "invoices"
	if docType == numbering.DocumentTypeReceipt {
		table = "receipts"
	}

	var latest string
	err := db.Table(table).
		Select("number").
		Where("tenant_id = ? AND company_id = ? AND number LIKE ?",
			tenantID, companyID, string(docType)+"/"+fiscalYear+"-%").
		Order("number DESC").
		Limit(1).
		Scan(&latest).Error
	if err != nil || latest == "" {
		return 0
	}

	seq, err := numbering.ParseSequence(latest)
	if err != nil {
		return 0
	}
	return seq
}

var _ numbering.Allocator = (*GormSequenceAllocator)(nil)
