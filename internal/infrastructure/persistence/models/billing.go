package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finvoice/backend/internal/domain/billing"
)

// InvoiceModel is the persistence model for the Invoice aggregate root.
type InvoiceModel struct {
	TenantAggregateModel
	CompanyID       uuid.UUID          `gorm:"type:uuid;not null;index;uniqueIndex:idx_invoice_company_number,priority:1"`
	CompanyNo       string             `gorm:"type:varchar(20)"`
	Number          string             `gorm:"type:varchar(30);not null;uniqueIndex:idx_invoice_company_number,priority:2"`
	InvoiceDate     time.Time          `gorm:"not null;index"`
	CustomerID      uuid.UUID          `gorm:"type:uuid;not null;index"`
	ReferenceNo     string             `gorm:"type:varchar(50)"`
	ReferenceDate   *time.Time         ``
	CurrencyID      uuid.UUID          `gorm:"type:uuid;not null"`
	ExchangeRate    decimal.Decimal    `gorm:"type:decimal(18,6);not null"`
	SupplyType      string             `gorm:"type:varchar(10);not null"`
	Remarks         string             `gorm:"type:text"`
	GrossAmount     decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	CGSTAmount      decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	SGSTAmount      decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	IGSTAmount      decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	DiscountAmount  decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	AddedCharges    decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	DeductedCharges decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	RoundOff        decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	NetAmount       decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	ReceivedAmount  decimal.Decimal    `gorm:"type:decimal(18,2);not null;default:0"`
	Cancelled       bool               `gorm:"not null;default:false;index"`
	Lines           []InvoiceLineModel `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string { return "invoices" }

// InvoiceLineModel is one billed item row of an invoice.
type InvoiceLineModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	InvoiceID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	RowNo         int             `gorm:"not null"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null"`
	UOMID         uuid.UUID       `gorm:"type:uuid"`
	Quantity      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Rate          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	DiscountType  string          `gorm:"type:varchar(20)"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TaxHeaderID   uuid.UUID       `gorm:"type:uuid"`
	TaxRate       decimal.Decimal `gorm:"type:decimal(9,4);not null"`
	CGSTPercent   decimal.Decimal `gorm:"type:decimal(9,4);not null"`
	SGSTPercent   decimal.Decimal `gorm:"type:decimal(9,4);not null"`
	IGSTPercent   decimal.Decimal `gorm:"type:decimal(9,4);not null"`
	CGSTAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	SGSTAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	IGSTAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	NetAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (InvoiceLineModel) TableName() string { return "invoice_lines" }

// ToDomain converts the persistence model to a domain Invoice with lines.
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	inv := &billing.Invoice{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		CompanyID:           m.CompanyID,
		CompanyNo:           m.CompanyNo,
		Number:              m.Number,
		InvoiceDate:         m.InvoiceDate,
		CustomerID:          m.CustomerID,
		ReferenceNo:         m.ReferenceNo,
		ReferenceDate:       m.ReferenceDate,
		CurrencyID:          m.CurrencyID,
		ExchangeRate:        m.ExchangeRate,
		SupplyType:          billing.SupplyType(m.SupplyType),
		Remarks:             m.Remarks,
		GrossAmount:         m.GrossAmount,
		CGSTAmount:          m.CGSTAmount,
		SGSTAmount:          m.SGSTAmount,
		IGSTAmount:          m.IGSTAmount,
		DiscountAmount:      m.DiscountAmount,
		AddedCharges:        m.AddedCharges,
		DeductedCharges:     m.DeductedCharges,
		RoundOff:            m.RoundOff,
		NetAmount:           m.NetAmount,
		ReceivedAmount:      m.ReceivedAmount,
		Cancelled:           m.Cancelled,
	}
	inv.Lines = make([]billing.InvoiceLine, len(m.Lines))
	for i, l := range m.Lines {
		inv.Lines[i] = l.ToDomain()
	}
	return inv
}

// ToDomain converts one line row.
func (l InvoiceLineModel) ToDomain() billing.InvoiceLine {
	return billing.InvoiceLine{
		ID:            l.ID,
		InvoiceID:     l.InvoiceID,
		RowNo:         l.RowNo,
		ProductID:     l.ProductID,
		UOMID:         l.UOMID,
		Quantity:      l.Quantity,
		Rate:          l.Rate,
		Amount:        l.Amount,
		DiscountType:  l.DiscountType,
		DiscountValue: l.DiscountValue,
		TaxHeaderID:   l.TaxHeaderID,
		TaxRate:       l.TaxRate,
		CGSTPercent:   l.CGSTPercent,
		SGSTPercent:   l.SGSTPercent,
		IGSTPercent:   l.IGSTPercent,
		CGSTAmount:    l.CGSTAmount,
		SGSTAmount:    l.SGSTAmount,
		IGSTAmount:    l.IGSTAmount,
		TaxAmount:     l.TaxAmount,
		NetAmount:     l.NetAmount,
	}
}

// InvoiceModelFromDomain converts a domain Invoice to its persistence model.
func InvoiceModelFromDomain(inv *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{
		CompanyID:       inv.CompanyID,
		CompanyNo:       inv.CompanyNo,
		Number:          inv.Number,
		InvoiceDate:     inv.InvoiceDate,
		CustomerID:      inv.CustomerID,
		ReferenceNo:     inv.ReferenceNo,
		ReferenceDate:   inv.ReferenceDate,
		CurrencyID:      inv.CurrencyID,
		ExchangeRate:    inv.ExchangeRate,
		SupplyType:      string(inv.SupplyType),
		Remarks:         inv.Remarks,
		GrossAmount:     inv.GrossAmount,
		CGSTAmount:      inv.CGSTAmount,
		SGSTAmount:      inv.SGSTAmount,
		IGSTAmount:      inv.IGSTAmount,
		DiscountAmount:  inv.DiscountAmount,
		AddedCharges:    inv.AddedCharges,
		DeductedCharges: inv.DeductedCharges,
		RoundOff:        inv.RoundOff,
		NetAmount:       inv.NetAmount,
		ReceivedAmount:  inv.ReceivedAmount,
		Cancelled:       inv.Cancelled,
	}
	m.FromDomainTenantAggregateRoot(inv.TenantAggregateRoot)
	m.Lines = make([]InvoiceLineModel, len(inv.Lines))
	for i, l := range inv.Lines {
		m.Lines[i] = InvoiceLineModelFromDomain(l)
	}
	return m
}

// InvoiceLineModelFromDomain converts one domain line row.
func InvoiceLineModelFromDomain(l billing.InvoiceLine) InvoiceLineModel {
	return InvoiceLineModel{
		ID:            l.ID,
		InvoiceID:     l.InvoiceID,
		RowNo:         l.RowNo,
		ProductID:     l.ProductID,
		UOMID:         l.UOMID,
		Quantity:      l.Quantity,
		Rate:          l.Rate,
		Amount:        l.Amount,
		DiscountType:  l.DiscountType,
		DiscountValue: l.DiscountValue,
		TaxHeaderID:   l.TaxHeaderID,
		TaxRate:       l.TaxRate,
		CGSTPercent:   l.CGSTPercent,
		SGSTPercent:   l.SGSTPercent,
		IGSTPercent:   l.IGSTPercent,
		CGSTAmount:    l.CGSTAmount,
		SGSTAmount:    l.SGSTAmount,
		IGSTAmount:    l.IGSTAmount,
		TaxAmount:     l.TaxAmount,
		NetAmount:     l.NetAmount,
	}
}

// ReceiptModel is the persistence model for the Receipt aggregate root.
type ReceiptModel struct {
	TenantAggregateModel
	CompanyID       uuid.UUID                `gorm:"type:uuid;not null;index;uniqueIndex:idx_receipt_company_number,priority:1"`
	CompanyNo       string                   `gorm:"type:varchar(20)"`
	Number          string                   `gorm:"type:varchar(30);not null;uniqueIndex:idx_receipt_company_number,priority:2"`
	ReceiptDate     time.Time                `gorm:"not null;index"`
	ReceiptType     string                   `gorm:"type:varchar(50)"`
	CustomerID      uuid.UUID                `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal          `gorm:"type:decimal(18,2);not null"`
	PaymentMode     string                   `gorm:"type:varchar(20);not null"`
	CurrencyID      uuid.UUID                `gorm:"type:uuid;not null"`
	ExchangeRate    decimal.Decimal          `gorm:"type:decimal(18,6);not null"`
	TransactionNo   string                   `gorm:"type:varchar(50)"`
	TransactionDate *time.Time               ``
	ChequeNo        string                   `gorm:"type:varchar(50)"`
	ChequeDate      *time.Time               ``
	Remarks         string                   `gorm:"type:text"`
	TotalAmount     decimal.Decimal          `gorm:"type:decimal(18,2);not null"`
	Cancelled       bool                     `gorm:"not null;default:false;index"`
	Allocations     []ReceiptAllocationModel `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ReceiptModel) TableName() string { return "receipts" }

// ReceiptAllocationModel links a portion of a receipt to one invoice.
type ReceiptAllocationModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key"`
	ReceiptID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	RowNo            int             `gorm:"not null"`
	InvoiceID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	InvoiceDate      time.Time       `gorm:"not null"`
	InvoiceAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CurrencyID       uuid.UUID       `gorm:"type:uuid"`
	ExchangeRate     decimal.Decimal `gorm:"type:decimal(18,6);not null"`
	AllocatedAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CommissionAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TDSAmount        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	NetAmount        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (ReceiptAllocationModel) TableName() string { return "receipt_allocations" }

// ToDomain converts the persistence model to a domain Receipt with its
// allocation rows.
func (m *ReceiptModel) ToDomain() *billing.Receipt {
	r := &billing.Receipt{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		CompanyID:           m.CompanyID,
		CompanyNo:           m.CompanyNo,
		Number:              m.Number,
		ReceiptDate:         m.ReceiptDate,
		ReceiptType:         m.ReceiptType,
		CustomerID:          m.CustomerID,
		Amount:              m.Amount,
		PaymentMode:         billing.PaymentMode(m.PaymentMode),
		CurrencyID:          m.CurrencyID,
		ExchangeRate:        m.ExchangeRate,
		TransactionNo:       m.TransactionNo,
		TransactionDate:     m.TransactionDate,
		ChequeNo:            m.ChequeNo,
		ChequeDate:          m.ChequeDate,
		Remarks:             m.Remarks,
		TotalAmount:         m.TotalAmount,
		Cancelled:           m.Cancelled,
	}
	r.Allocations = make([]billing.Allocation, len(m.Allocations))
	for i, a := range m.Allocations {
		r.Allocations[i] = a.ToDomain()
	}
	return r
}

// ToDomain converts one allocation row.
func (a ReceiptAllocationModel) ToDomain() billing.Allocation {
	return billing.Allocation{
		ID:               a.ID,
		ReceiptID:        a.ReceiptID,
		RowNo:            a.RowNo,
		InvoiceID:        a.InvoiceID,
		InvoiceDate:      a.InvoiceDate,
		InvoiceAmount:    a.InvoiceAmount,
		CurrencyID:       a.CurrencyID,
		ExchangeRate:     a.ExchangeRate,
		AllocatedAmount:  a.AllocatedAmount,
		CommissionAmount: a.CommissionAmount,
		TDSAmount:        a.TDSAmount,
		NetAmount:        a.NetAmount,
	}
}

// ReceiptModelFromDomain converts a domain Receipt to its persistence model.
func ReceiptModelFromDomain(r *billing.Receipt) *ReceiptModel {
	m := &ReceiptModel{
		CompanyID:       r.CompanyID,
		CompanyNo:       r.CompanyNo,
		Number:          r.Number,
		ReceiptDate:     r.ReceiptDate,
		ReceiptType:     r.ReceiptType,
		CustomerID:      r.CustomerID,
		Amount:          r.Amount,
		PaymentMode:     string(r.PaymentMode),
		CurrencyID:      r.CurrencyID,
		ExchangeRate:    r.ExchangeRate,
		TransactionNo:   r.TransactionNo,
		TransactionDate: r.TransactionDate,
		ChequeNo:        r.ChequeNo,
		ChequeDate:      r.ChequeDate,
		Remarks:         r.Remarks,
		TotalAmount:     r.TotalAmount,
		Cancelled:       r.Cancelled,
	}
	m.FromDomainTenantAggregateRoot(r.TenantAggregateRoot)
	m.Allocations = make([]ReceiptAllocationModel, len(r.Allocations))
	for i, a := range r.Allocations {
		m.Allocations[i] = ReceiptAllocationModelFromDomain(a)
	}
	return m
}

// ReceiptAllocationModelFromDomain converts one domain allocation row.
func ReceiptAllocationModelFromDomain(a billing.Allocation) ReceiptAllocationModel {
	return ReceiptAllocationModel{
		ID:               a.ID,
		ReceiptID:        a.ReceiptID,
		RowNo:            a.RowNo,
		InvoiceID:        a.InvoiceID,
		InvoiceDate:      a.InvoiceDate,
		InvoiceAmount:    a.InvoiceAmount,
		CurrencyID:       a.CurrencyID,
		ExchangeRate:     a.ExchangeRate,
		AllocatedAmount:  a.AllocatedAmount,
		CommissionAmount: a.CommissionAmount,
		TDSAmount:        a.TDSAmount,
		NetAmount:        a.NetAmount,
	}
}
