package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/finvoice/backend/internal/domain/billing"
	"github.com/finvoice/backend/internal/domain/masterdata"
	"github.com/finvoice/backend/internal/infrastructure/persistence"
)

const testActor = "integration-test"

// fixtures seeds the master data an invoice or receipt needs: one
// company, one customer, one currency, one UOM and one product.
type fixtures struct {
	TenantID uuid.UUID
	Company  *masterdata.Company
	Customer *masterdata.Customer
	Currency *masterdata.Currency
	UOM      *masterdata.UOM
	Product  *masterdata.Product
}

func seedFixtures(t *testing.T, tdb *TestDB, tenantID uuid.UUID) *fixtures {
	t.Helper()
	ctx := context.Background()

	currency, err := masterdata.NewCurrency(tenantID, testActor, "Indian Rupee", "INR", "₹")
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormCurrencyRepository(tdb.DB).Create(ctx, currency))

	company, err := masterdata.NewCompany(tenantID, testActor, masterdata.CompanyFields{
		Name:       "Acme Trading Pvt Ltd",
		Code:       "ACME",
		GSTIN:      "27AAPFU0939F1ZV",
		CurrencyID: currency.ID,
	})
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormCompanyRepository(tdb.DB).Create(ctx, company))

	customer, err := masterdata.NewCustomer(tenantID, testActor, company.ID, masterdata.CustomerFields{
		Code:  "CUST001",
		Name:  "Globex Industries",
		City:  "Mumbai",
		State: "Maharashtra",
		GSTIN: "27AABCG1234A1Z5",
	})
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormCustomerRepository(tdb.DB).Create(ctx, customer))

	uom, err := masterdata.NewUOM(tenantID, testActor, company.ID, "Pieces", "PCS")
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormUOMRepository(tdb.DB).Create(ctx, uom))

	product, err := masterdata.NewProduct(tenantID, testActor, company.ID, masterdata.ProductFields{
		Code:         "WIDGET",
		Name:         "Standard Widget",
		SellingUOMID: uom.ID,
		SellingPrice: decimal.NewFromInt(100),
		CostPrice:    decimal.NewFromInt(60),
		HSNCode:      "8481",
		TaxRate:      decimal.NewFromInt(18),
	})
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormProductRepository(tdb.DB).Create(ctx, product))

	return &fixtures{
		TenantID: tenantID,
		Company:  company,
		Customer: customer,
		Currency: currency,
		UOM:      uom,
		Product:  product,
	}
}

// invoiceFields returns a valid header for the seeded company dated in
// the 2025-26 fiscal year.
func (f *fixtures) invoiceFields() billing.InvoiceFields {
	return billing.InvoiceFields{
		CompanyID:    f.Company.ID,
		InvoiceDate:  time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		CustomerID:   f.Customer.ID,
		CurrencyID:   f.Currency.ID,
		ExchangeRate: decimal.NewFromInt(1),
		SupplyType:   billing.SupplyTypeIntraState,
		GrossAmount:  decimal.NewFromInt(1000),
		CGSTAmount:   decimal.NewFromInt(90),
		SGSTAmount:   decimal.NewFromInt(90),
		IGSTAmount:   decimal.Zero,
		NetAmount:    decimal.NewFromInt(1180),
	}
}

func (f *fixtures) invoiceLine() billing.InvoiceLine {
	return billing.InvoiceLine{
		ProductID:   f.Product.ID,
		UOMID:       f.UOM.ID,
		Quantity:    decimal.NewFromInt(10),
		Rate:        decimal.NewFromInt(100),
		Amount:      decimal.NewFromInt(1000),
		TaxRate:     decimal.NewFromInt(18),
		CGSTPercent: decimal.NewFromInt(9),
		SGSTPercent: decimal.NewFromInt(9),
		CGSTAmount:  decimal.NewFromInt(90),
		SGSTAmount:  decimal.NewFromInt(90),
		TaxAmount:   decimal.NewFromInt(180),
		NetAmount:   decimal.NewFromInt(1180),
	}
}

func (f *fixtures) receiptFields(amount decimal.Decimal) billing.ReceiptFields {
	return billing.ReceiptFields{
		CompanyID:    f.Company.ID,
		ReceiptDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		CustomerID:   f.Customer.ID,
		Amount:       amount,
		PaymentMode:  billing.PaymentModeTransfer,
		CurrencyID:   f.Currency.ID,
		ExchangeRate: decimal.NewFromInt(1),
		TotalAmount:  amount,
	}
}
