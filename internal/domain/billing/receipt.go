package billing

import (
	"time"

	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMode is how the money arrived.
type PaymentMode string

const (
	PaymentModeCash     PaymentMode = "Cash"
	PaymentModeCheque   PaymentMode = "Cheque"
	PaymentModeTransfer PaymentMode = "Transfer"
)

// Allocation links a portion of a receipt to one invoice. AllocatedAmount
// is what the received-amount recompute sums; commission and TDS reduce it
// to the net credited amount.
type Allocation struct {
	ID               uuid.UUID       `json:"id"`
	ReceiptID        uuid.UUID       `json:"receipt_id"`
	RowNo            int             `json:"row_no"`
	InvoiceID        uuid.UUID       `json:"invoice_id"`
	InvoiceDate      time.Time       `json:"invoice_date"`
	InvoiceAmount    decimal.Decimal `json:"invoice_amount"`
	CurrencyID       uuid.UUID       `json:"currency_id"`
	ExchangeRate     decimal.Decimal `json:"exchange_rate"`
	AllocatedAmount  decimal.Decimal `json:"allocated_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	TDSAmount        decimal.Decimal `json:"tds_amount"`
	NetAmount        decimal.Decimal `json:"net_amount"`
}

// Receipt is the aggregate root for a customer payment and its per-invoice
// allocations.
type Receipt struct {
	shared.TenantAggregateRoot
	CompanyID       uuid.UUID       `json:"company_id"`
	CompanyNo       string          `json:"company_no"`
	Number          string          `json:"number"`
	ReceiptDate     time.Time       `json:"receipt_date"`
	ReceiptType     string          `json:"receipt_type"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMode     PaymentMode     `json:"payment_mode"`
	CurrencyID      uuid.UUID       `json:"currency_id"`
	ExchangeRate    decimal.Decimal `json:"exchange_rate"`
	TransactionNo   string          `json:"transaction_no"`
	TransactionDate *time.Time      `json:"transaction_date,omitempty"`
	ChequeNo        string          `json:"cheque_no"`
	ChequeDate      *time.Time      `json:"cheque_date,omitempty"`
	Remarks         string          `json:"remarks"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Cancelled       bool            `json:"cancelled"`
	Allocations     []Allocation    `json:"allocations"`
}

// ReceiptFields carries the caller-editable header fields of a receipt.
type ReceiptFields struct {
	CompanyID       uuid.UUID
	CompanyNo       string
	ReceiptDate     time.Time
	ReceiptType     string
	CustomerID      uuid.UUID
	Amount          decimal.Decimal
	PaymentMode     PaymentMode
	CurrencyID      uuid.UUID
	ExchangeRate    decimal.Decimal
	TransactionNo   string
	TransactionDate *time.Time
	ChequeNo        string
	ChequeDate      *time.Time
	Remarks         string
	TotalAmount     decimal.Decimal
}

func (f ReceiptFields) validate() error {
	if f.CompanyID == uuid.Nil {
		return shared.NewValidationError("company is required")
	}
	if f.CustomerID == uuid.Nil {
		return shared.NewValidationError("customer is required")
	}
	if f.CurrencyID == uuid.Nil {
		return shared.NewValidationError("currency is required")
	}
	if f.ReceiptDate.IsZero() {
		return shared.NewValidationError("receipt date is required")
	}
	if f.Amount.Sign() < 0 {
		return shared.NewValidationError("receipt amount cannot be negative")
	}
	if f.ExchangeRate.Sign() <= 0 {
		return shared.NewValidationError("exchange rate must be positive")
	}
	return nil
}

func validateAllocations(allocs []Allocation) error {
	for i, a := range allocs {
		if a.InvoiceID == uuid.Nil {
			return shared.NewValidationError("allocation %d: invoice is required", i+1)
		}
		if a.AllocatedAmount.Sign() < 0 {
			return shared.NewValidationError("allocation %d: allocated amount cannot be negative", i+1)
		}
	}
	return nil
}

// NewReceipt creates an unnumbered receipt; the document number is
// assigned by the numbering allocator inside the create transaction.
func NewReceipt(tenantID uuid.UUID, actor string, fields ReceiptFields, allocs []Allocation) (*Receipt, error) {
	if err := fields.validate(); err != nil {
		return nil, err
	}
	if err := validateAllocations(allocs); err != nil {
		return nil, err
	}

	r := &Receipt{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, actor),
	}
	r.applyFields(fields)
	for i, a := range allocs {
		r.Allocations = append(r.Allocations, newAllocation(r.ID, i+1, a))
	}
	return r, nil
}

func newAllocation(receiptID uuid.UUID, defaultRowNo int, a Allocation) Allocation {
	a.ID = uuid.New()
	a.ReceiptID = receiptID
	if a.RowNo == 0 {
		a.RowNo = defaultRowNo
	}
	return a
}

func (r *Receipt) applyFields(f ReceiptFields) {
	r.CompanyID = f.CompanyID
	r.CompanyNo = f.CompanyNo
	r.ReceiptDate = f.ReceiptDate
	r.ReceiptType = f.ReceiptType
	r.CustomerID = f.CustomerID
	r.Amount = f.Amount
	r.PaymentMode = f.PaymentMode
	r.CurrencyID = f.CurrencyID
	r.ExchangeRate = f.ExchangeRate
	r.TransactionNo = f.TransactionNo
	r.TransactionDate = f.TransactionDate
	r.ChequeNo = f.ChequeNo
	r.ChequeDate = f.ChequeDate
	r.Remarks = f.Remarks
	r.TotalAmount = f.TotalAmount
}

// Update replaces the header fields and diff-syncs the allocation set:
// rows matched by ID are overwritten, unmatched payload rows are inserted,
// and stored rows missing from the payload are removed. It returns the IDs
// of the removed allocation rows so the persistence layer can delete them.
// Unlike invoice lines, omitting an allocation here means removing it.
func (r *Receipt) Update(actor string, fields ReceiptFields, allocs []Allocation) ([]uuid.UUID, error) {
	fields.CompanyID = r.CompanyID
	if err := fields.validate(); err != nil {
		return nil, err
	}
	if err := validateAllocations(allocs); err != nil {
		return nil, err
	}
	r.applyFields(fields)
	removed := r.syncAllocations(allocs)
	r.Touch(actor)
	return removed, nil
}

func (r *Receipt) syncAllocations(incoming []Allocation) []uuid.UUID {
	existing := make(map[uuid.UUID]Allocation, len(r.Allocations))
	for _, a := range r.Allocations {
		existing[a.ID] = a
	}

	next := make([]Allocation, 0, len(incoming))
	seen := make(map[uuid.UUID]bool, len(incoming))
	for i, a := range incoming {
		if _, ok := existing[a.ID]; a.ID != uuid.Nil && ok {
			a.ReceiptID = r.ID
			if a.RowNo == 0 {
				a.RowNo = i + 1
			}
			next = append(next, a)
			seen[a.ID] = true
			continue
		}
		next = append(next, newAllocation(r.ID, i+1, a))
	}

	var removed []uuid.UUID
	for _, a := range r.Allocations {
		if !seen[a.ID] {
			removed = append(removed, a.ID)
		}
	}
	r.Allocations = next
	return removed
}

// Cancel soft-cancels the receipt. Cancelled receipts drop out of the
// received-amount recompute, so callers must recompute every invoice in
// AffectedInvoiceIDs afterwards.
func (r *Receipt) Cancel(actor string) error {
	if r.Cancelled {
		return shared.NewConflictError("receipt %s is already cancelled", r.Number)
	}
	r.Cancelled = true
	r.Touch(actor)
	return nil
}

// AffectedInvoiceIDs returns the distinct invoice ids the current
// allocation set references, in first-seen order.
func (r *Receipt) AffectedInvoiceIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(r.Allocations))
	ids := make([]uuid.UUID, 0, len(r.Allocations))
	for _, a := range r.Allocations {
		if !seen[a.InvoiceID] {
			seen[a.InvoiceID] = true
			ids = append(ids, a.InvoiceID)
		}
	}
	return ids
}
