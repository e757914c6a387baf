package billing

import (
	"time"

	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplyType classifies an invoice for GST purposes. Intra-state supply
// attracts CGST+SGST, inter-state supply attracts IGST.
type SupplyType string

const (
	SupplyTypeIntraState SupplyType = "Intra"
	SupplyTypeInterState SupplyType = "Inter"
)

// InvoiceLine is one billed item row. Caller-supplied amounts are stored
// as given; the service layer does not recompute quantity x rate.
type InvoiceLine struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceID     uuid.UUID       `json:"invoice_id"`
	RowNo         int             `json:"row_no"`
	ProductID     uuid.UUID       `json:"product_id"`
	UOMID         uuid.UUID       `json:"uom_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	Amount        decimal.Decimal `json:"amount"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	TaxHeaderID   uuid.UUID       `json:"tax_header_id"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	CGSTPercent   decimal.Decimal `json:"cgst_percent"`
	SGSTPercent   decimal.Decimal `json:"sgst_percent"`
	IGSTPercent   decimal.Decimal `json:"igst_percent"`
	CGSTAmount    decimal.Decimal `json:"cgst_amount"`
	SGSTAmount    decimal.Decimal `json:"sgst_amount"`
	IGSTAmount    decimal.Decimal `json:"igst_amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	NetAmount     decimal.Decimal `json:"net_amount"`
}

// Invoice is the aggregate root for a sales invoice and its item lines.
// ReceivedAmount is maintained exclusively by the receipt allocation
// recompute; nothing else writes it.
type Invoice struct {
	shared.TenantAggregateRoot
	CompanyID       uuid.UUID       `json:"company_id"`
	CompanyNo       string          `json:"company_no"`
	Number          string          `json:"number"`
	InvoiceDate     time.Time       `json:"invoice_date"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	ReferenceNo     string          `json:"reference_no"`
	ReferenceDate   *time.Time      `json:"reference_date,omitempty"`
	CurrencyID      uuid.UUID       `json:"currency_id"`
	ExchangeRate    decimal.Decimal `json:"exchange_rate"`
	SupplyType      SupplyType      `json:"supply_type"`
	Remarks         string          `json:"remarks"`
	GrossAmount     decimal.Decimal `json:"gross_amount"`
	CGSTAmount      decimal.Decimal `json:"cgst_amount"`
	SGSTAmount      decimal.Decimal `json:"sgst_amount"`
	IGSTAmount      decimal.Decimal `json:"igst_amount"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	AddedCharges    decimal.Decimal `json:"added_charges"`
	DeductedCharges decimal.Decimal `json:"deducted_charges"`
	RoundOff        decimal.Decimal `json:"round_off"`
	NetAmount       decimal.Decimal `json:"net_amount"`
	ReceivedAmount  decimal.Decimal `json:"received_amount"`
	Cancelled       bool            `json:"cancelled"`
	Lines           []InvoiceLine   `json:"lines"`
}

// InvoiceFields carries the caller-editable header fields of an invoice.
// The document number is never part of it; numbering is owned by the
// allocator at create time and immutable afterwards.
type InvoiceFields struct {
	CompanyID       uuid.UUID
	CompanyNo       string
	InvoiceDate     time.Time
	CustomerID      uuid.UUID
	ReferenceNo     string
	ReferenceDate   *time.Time
	CurrencyID      uuid.UUID
	ExchangeRate    decimal.Decimal
	SupplyType      SupplyType
	Remarks         string
	GrossAmount     decimal.Decimal
	CGSTAmount      decimal.Decimal
	SGSTAmount      decimal.Decimal
	IGSTAmount      decimal.Decimal
	DiscountAmount  decimal.Decimal
	AddedCharges    decimal.Decimal
	DeductedCharges decimal.Decimal
	RoundOff        decimal.Decimal
	NetAmount       decimal.Decimal
}

func (f InvoiceFields) validate() error {
	if f.CompanyID == uuid.Nil {
		return shared.NewValidationError("company is required")
	}
	if f.CustomerID == uuid.Nil {
		return shared.NewValidationError("customer is required")
	}
	if f.CurrencyID == uuid.Nil {
		return shared.NewValidationError("currency is required")
	}
	if f.InvoiceDate.IsZero() {
		return shared.NewValidationError("invoice date is required")
	}
	if f.SupplyType != SupplyTypeIntraState && f.SupplyType != SupplyTypeInterState {
		return shared.NewValidationError("supply type must be Intra or Inter")
	}
	if f.ExchangeRate.Sign() <= 0 {
		return shared.NewValidationError("exchange rate must be positive")
	}
	return nil
}

// NewInvoice creates an unnumbered invoice; the document number is
// assigned by the numbering allocator inside the create transaction.
func NewInvoice(tenantID uuid.UUID, actor string, fields InvoiceFields, lines []InvoiceLine) (*Invoice, error) {
	if err := fields.validate(); err != nil {
		return nil, err
	}

	inv := &Invoice{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, actor),
		ReceivedAmount:      decimal.Zero,
	}
	inv.applyFields(fields)
	for i, l := range lines {
		inv.Lines = append(inv.Lines, newLine(inv.ID, i+1, l))
	}
	return inv, nil
}

func newLine(invoiceID uuid.UUID, defaultRowNo int, l InvoiceLine) InvoiceLine {
	l.ID = uuid.New()
	l.InvoiceID = invoiceID
	if l.RowNo == 0 {
		l.RowNo = defaultRowNo
	}
	return l
}

func (inv *Invoice) applyFields(f InvoiceFields) {
	inv.CompanyID = f.CompanyID
	inv.CompanyNo = f.CompanyNo
	inv.InvoiceDate = f.InvoiceDate
	inv.CustomerID = f.CustomerID
	inv.ReferenceNo = f.ReferenceNo
	inv.ReferenceDate = f.ReferenceDate
	inv.CurrencyID = f.CurrencyID
	inv.ExchangeRate = f.ExchangeRate
	inv.SupplyType = f.SupplyType
	inv.Remarks = f.Remarks
	inv.GrossAmount = f.GrossAmount
	inv.CGSTAmount = f.CGSTAmount
	inv.SGSTAmount = f.SGSTAmount
	inv.IGSTAmount = f.IGSTAmount
	inv.DiscountAmount = f.DiscountAmount
	inv.AddedCharges = f.AddedCharges
	inv.DeductedCharges = f.DeductedCharges
	inv.RoundOff = f.RoundOff
	inv.NetAmount = f.NetAmount
}

// Update replaces the header fields and merges the given lines into the
// existing set: a line whose ID matches an existing one overwrites it, any
// other line is appended as new. Lines absent from the payload are kept.
// The company and the document number never change after creation.
func (inv *Invoice) Update(actor string, fields InvoiceFields, lines []InvoiceLine) error {
	fields.CompanyID = inv.CompanyID
	if err := fields.validate(); err != nil {
		return err
	}
	inv.applyFields(fields)
	inv.mergeLines(lines)
	inv.Touch(actor)
	return nil
}

func (inv *Invoice) mergeLines(incoming []InvoiceLine) {
	byID := make(map[uuid.UUID]int, len(inv.Lines))
	for i, l := range inv.Lines {
		byID[l.ID] = i
	}
	for _, l := range incoming {
		if idx, ok := byID[l.ID]; l.ID != uuid.Nil && ok {
			l.InvoiceID = inv.ID
			inv.Lines[idx] = l
			continue
		}
		inv.Lines = append(inv.Lines, newLine(inv.ID, len(inv.Lines)+1, l))
	}
}

// Cancel soft-cancels the invoice. Cancelled invoices stay readable and
// keep their number; the sequence never reuses it.
func (inv *Invoice) Cancel(actor string) error {
	if inv.Cancelled {
		return shared.NewConflictError("invoice %s is already cancelled", inv.Number)
	}
	inv.Cancelled = true
	inv.Touch(actor)
	return nil
}

// OutstandingAmount is the net amount still unpaid.
func (inv *Invoice) OutstandingAmount() decimal.Decimal {
	return inv.NetAmount.Sub(inv.ReceivedAmount)
}
