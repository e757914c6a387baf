// Package billing provides domain models for customer invoicing and payment
// receipts in a multi-tenant setting.
//
// This package implements the billing bounded context, which is responsible for:
//   - Issuing sequentially numbered invoices per company and fiscal year
//   - Tracking GST amounts (CGST/SGST for intra-state, IGST for inter-state supply)
//   - Recording payment receipts and allocating them against open invoices
//   - Keeping each invoice's received amount in sync with its live allocations
//
// Key Aggregates:
//   - Invoice: A numbered sales document with its item lines
//   - Receipt: A numbered payment document with its invoice allocations
//
// Invoice lines merge on update: payload rows matched by ID overwrite,
// unmatched rows append, and stored rows absent from the payload are kept.
// Receipt allocations diff-sync instead: stored rows absent from the
// payload are removed.
//
// The billing domain integrates with:
//   - Masterdata domain: Companies, customers, products and currencies
//   - Numbering domain: Fiscal-year document number series
package billing
