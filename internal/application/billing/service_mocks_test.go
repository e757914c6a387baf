package billing

import (
	"context"
	"time"

	"github.com/finvoice/backend/internal/domain/billing"
	"github.com/finvoice/backend/internal/domain/masterdata"
	"github.com/finvoice/backend/internal/domain/numbering"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]billing.Invoice, error) {
	args := m.Called(ctx, tenantID, companyID, filter)
	return args.Get(0).([]billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) CountForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) Create(ctx context.Context, inv *billing.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, inv *billing.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) RecomputeReceived(ctx context.Context, tenantID, invoiceID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, invoiceID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*billing.Receipt, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]billing.Receipt, error) {
	args := m.Called(ctx, tenantID, companyID, filter)
	return args.Get(0).([]billing.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) CountForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReceiptRepository) Create(ctx context.Context, r *billing.Receipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReceiptRepository) Update(ctx context.Context, r *billing.Receipt, removedAllocationIDs []uuid.UUID) error {
	args := m.Called(ctx, r, removedAllocationIDs)
	return args.Error(0)
}

func (m *MockReceiptRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

// MockAllocator hands out sequence numbers from an in-memory counter per
// document series.
type MockAllocator struct {
	next map[string]int
}

func NewMockAllocator() *MockAllocator {
	return &MockAllocator{next: make(map[string]int)}
}

func (m *MockAllocator) NextNumber(_ context.Context, _, _ uuid.UUID, docType numbering.DocumentType, docDate time.Time) (string, error) {
	key := string(docType) + numbering.FiscalYearLabel(docDate)
	m.next[key]++
	return numbering.Format(docType, numbering.FiscalYearLabel(docDate), m.next[key]), nil
}

// passthroughTx runs the unit directly on the caller's context.
type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Company, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*masterdata.Company, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Company, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]masterdata.Company), args.Error(1)
}

func (m *MockCompanyRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompanyRepository) Create(ctx context.Context, c *masterdata.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyRepository) Update(ctx context.Context, c *masterdata.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByCode(ctx context.Context, tenantID, companyID uuid.UUID, code string) (*masterdata.Customer, error) {
	args := m.Called(ctx, tenantID, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]masterdata.Customer, error) {
	args := m.Called(ctx, tenantID, companyID, filter)
	return args.Get(0).([]masterdata.Customer), args.Error(1)
}

func (m *MockCustomerRepository) CountForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *masterdata.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *masterdata.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Currency, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*masterdata.Currency, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Currency, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]masterdata.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) Create(ctx context.Context, c *masterdata.Currency) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCurrencyRepository) Update(ctx context.Context, c *masterdata.Currency) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCurrencyRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
