package billing

import (
	"context"
	"testing"
	"time"

	"github.com/finvoice/backend/internal/domain/billing"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type receiptFixture struct {
	svc      *ReceiptService
	receipts *MockReceiptRepository
	invoices *MockInvoiceRepository
	tenantID uuid.UUID
	company  uuid.UUID
	customer uuid.UUID
	currency uuid.UUID
}

func newReceiptFixture(t *testing.T) *receiptFixture {
	t.Helper()
	f := &receiptFixture{
		receipts: new(MockReceiptRepository),
		invoices: new(MockInvoiceRepository),
		tenantID: uuid.New(),
		company:  uuid.New(),
		customer: uuid.New(),
		currency: uuid.New(),
	}
	f.svc = NewReceiptService(f.receipts, f.invoices, NewMockAllocator(), passthroughTx{})
	return f
}

func (f *receiptFixture) receiptFields(day time.Time) billing.ReceiptFields {
	return billing.ReceiptFields{
		CompanyID:    f.company,
		CompanyNo:    "ACME",
		ReceiptDate:  day,
		ReceiptType:  "Against Invoice",
		CustomerID:   f.customer,
		Amount:       decimal.NewFromInt(100),
		PaymentMode:  billing.PaymentModeTransfer,
		CurrencyID:   f.currency,
		ExchangeRate: decimal.NewFromInt(1),
		TotalAmount:  decimal.NewFromInt(100),
	}
}

func (f *receiptFixture) stubInvoice(t *testing.T, day time.Time) *billing.Invoice {
	t.Helper()
	inv, err := billing.NewInvoice(f.tenantID, "admin", billing.InvoiceFields{
		CompanyID:    f.company,
		InvoiceDate:  day,
		CustomerID:   f.customer,
		CurrencyID:   f.currency,
		ExchangeRate: decimal.NewFromInt(1),
		SupplyType:   billing.SupplyTypeIntraState,
		NetAmount:    decimal.NewFromInt(100),
	}, nil)
	require.NoError(t, err)
	f.invoices.On("FindByIDForTenant", mock.Anything, f.tenantID, inv.ID).Return(inv, nil)
	return inv
}

func alloc(invoiceID uuid.UUID, currency uuid.UUID, amount int64) billing.Allocation {
	return billing.Allocation{
		InvoiceID:       invoiceID,
		InvoiceDate:     time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		InvoiceAmount:   decimal.NewFromInt(amount),
		CurrencyID:      currency,
		ExchangeRate:    decimal.NewFromInt(1),
		AllocatedAmount: decimal.NewFromInt(amount),
		NetAmount:       decimal.NewFromInt(amount),
	}
}

func TestCreateReceipt_NumbersAndRecomputes(t *testing.T) {
	f := newReceiptFixture(t)
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	inv := f.stubInvoice(t, day)

	f.receipts.On("Create", mock.Anything, mock.AnythingOfType("*billing.Receipt")).Return(nil)
	f.invoices.On("RecomputeReceived", mock.Anything, f.tenantID, inv.ID).Return(decimal.NewFromInt(100), nil)

	r, err := f.svc.CreateReceipt(context.Background(), f.tenantID, "admin", f.receiptFields(day),
		[]billing.Allocation{alloc(inv.ID, f.currency, 100)})
	require.NoError(t, err)

	assert.Equal(t, "REC/2025-26-0001", r.Number)
	f.invoices.AssertCalled(t, "RecomputeReceived", mock.Anything, f.tenantID, inv.ID)
}

func TestCreateReceipt_RecomputesEachInvoiceOnce(t *testing.T) {
	f := newReceiptFixture(t)
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	inv := f.stubInvoice(t, day)

	f.receipts.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.invoices.On("RecomputeReceived", mock.Anything, f.tenantID, inv.ID).Return(decimal.NewFromInt(100), nil)

	// Two allocations against the same invoice collapse to one recompute.
	_, err := f.svc.CreateReceipt(context.Background(), f.tenantID, "admin", f.receiptFields(day),
		[]billing.Allocation{alloc(inv.ID, f.currency, 60), alloc(inv.ID, f.currency, 40)})
	require.NoError(t, err)

	f.invoices.AssertNumberOfCalls(t, "RecomputeReceived", 1)
}

func TestCreateReceipt_UnknownInvoiceRejected(t *testing.T) {
	f := newReceiptFixture(t)
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	ghost := uuid.New()
	f.invoices.On("FindByIDForTenant", mock.Anything, f.tenantID, ghost).Return(nil, nil)

	_, err := f.svc.CreateReceipt(context.Background(), f.tenantID, "admin", f.receiptFields(day),
		[]billing.Allocation{alloc(ghost, f.currency, 100)})
	require.Error(t, err)
	assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
	f.receipts.AssertNotCalled(t, "Create")
}

func TestUpdateReceipt_RecomputesDroppedInvoiceToo(t *testing.T) {
	f := newReceiptFixture(t)
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	invA := f.stubInvoice(t, day)
	invB := f.stubInvoice(t, day)

	r, err := billing.NewReceipt(f.tenantID, "admin", f.receiptFields(day),
		[]billing.Allocation{alloc(invA.ID, f.currency, 100)})
	require.NoError(t, err)
	r.Number = "REC/2025-26-0004"

	f.receipts.On("FindByIDForTenant", mock.Anything, f.tenantID, r.ID).Return(r, nil)
	f.receipts.On("Update", mock.Anything, r, mock.Anything).Return(nil)
	f.invoices.On("RecomputeReceived", mock.Anything, f.tenantID, invA.ID).Return(decimal.Zero, nil)
	f.invoices.On("RecomputeReceived", mock.Anything, f.tenantID, invB.ID).Return(decimal.NewFromInt(100), nil)

	// Payload moves the whole allocation from invoice A to invoice B.
	_, err = f.svc.UpdateReceipt(context.Background(), f.tenantID, r.ID, "editor", f.receiptFields(day),
		[]billing.Allocation{alloc(invB.ID, f.currency, 100)})
	require.NoError(t, err)

	f.invoices.AssertCalled(t, "RecomputeReceived", mock.Anything, f.tenantID, invA.ID)
	f.invoices.AssertCalled(t, "RecomputeReceived", mock.Anything, f.tenantID, invB.ID)
}

func TestUpdateReceipt_PassesRemovedAllocationIDs(t *testing.T) {
	f := newReceiptFixture(t)
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	inv := f.stubInvoice(t, day)

	r, err := billing.NewReceipt(f.tenantID, "admin", f.receiptFields(day),
		[]billing.Allocation{alloc(inv.ID, f.currency, 100)})
	require.NoError(t, err)
	droppedID := r.Allocations[0].ID

	f.receipts.On("FindByIDForTenant", mock.Anything, f.tenantID, r.ID).Return(r, nil)
	f.receipts.On("Update", mock.Anything, r, []uuid.UUID{droppedID}).Return(nil)
	f.invoices.On("RecomputeReceived", mock.Anything, f.tenantID, inv.ID).Return(decimal.Zero, nil)

	_, err = f.svc.UpdateReceipt(context.Background(), f.tenantID, r.ID, "editor", f.receiptFields(day), nil)
	require.NoError(t, err)
	f.receipts.AssertExpectations(t)
}

func TestDeleteReceipt_RestoresInvoiceBalances(t *testing.T) {
	f := newReceiptFixture(t)
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	inv := f.stubInvoice(t, day)

	r, err := billing.NewReceipt(f.tenantID, "admin", f.receiptFields(day),
		[]billing.Allocation{alloc(inv.ID, f.currency, 100)})
	require.NoError(t, err)

	f.receipts.On("FindByIDForTenant", mock.Anything, f.tenantID, r.ID).Return(r, nil)
	f.receipts.On("Delete", mock.Anything, f.tenantID, r.ID).Return(nil)
	f.invoices.On("RecomputeReceived", mock.Anything, f.tenantID, inv.ID).Return(decimal.Zero, nil)

	require.NoError(t, f.svc.DeleteReceipt(context.Background(), f.tenantID, r.ID))
	f.invoices.AssertCalled(t, "RecomputeReceived", mock.Anything, f.tenantID, inv.ID)
}

func TestCancelReceipt_RecomputesAffectedInvoices(t *testing.T) {
	f := newReceiptFixture(t)
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	inv := f.stubInvoice(t, day)

	r, err := billing.NewReceipt(f.tenantID, "admin", f.receiptFields(day),
		[]billing.Allocation{alloc(inv.ID, f.currency, 100)})
	require.NoError(t, err)

	f.receipts.On("FindByIDForTenant", mock.Anything, f.tenantID, r.ID).Return(r, nil)
	f.receipts.On("Update", mock.Anything, r, mock.Anything).Return(nil)
	f.invoices.On("RecomputeReceived", mock.Anything, f.tenantID, inv.ID).Return(decimal.Zero, nil)

	cancelled, err := f.svc.CancelReceipt(context.Background(), f.tenantID, r.ID, "editor")
	require.NoError(t, err)
	assert.True(t, cancelled.Cancelled)
	f.invoices.AssertCalled(t, "RecomputeReceived", mock.Anything, f.tenantID, inv.ID)
}

func TestGetReceipt_NotFound(t *testing.T) {
	f := newReceiptFixture(t)
	id := uuid.New()
	f.receipts.On("FindByIDForTenant", mock.Anything, f.tenantID, id).Return(nil, nil)

	_, err := f.svc.GetReceipt(context.Background(), f.tenantID, id)
	require.Error(t, err)
	assert.Equal(t, shared.CodeNotFound, shared.ErrorCode(err))
}
