package numbering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiscalYearLabel(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"april starts new year", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), "2025-26"},
		{"march belongs to previous year", time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), "2024-25"},
		{"january belongs to previous year", time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), "2025-26"},
		{"december stays in its year", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), "2025-26"},
		{"century rollover pads end year", time.Date(2099, time.June, 1, 0, 0, 0, 0, time.UTC), "2099-00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FiscalYearLabel(tt.date))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "INV/2025-26-0001", Format(DocumentTypeInvoice, "2025-26", 1))
	assert.Equal(t, "REC/2024-25-0042", Format(DocumentTypeReceipt, "2024-25", 42))
	assert.Equal(t, "INV/2025-26-9999", Format(DocumentTypeInvoice, "2025-26", 9999))
}

func TestFormat_WellFormed(t *testing.T) {
	for seq := 1; seq <= 9999; seq += 1111 {
		n := Format(DocumentTypeInvoice, "2025-26", seq)
		assert.True(t, IsWellFormed(n), n)
	}
	n := Format(DocumentTypeReceipt, FiscalYearLabel(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)), 7)
	assert.True(t, IsWellFormed(n), n)
}

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence("INV/2025-26-0017")
	require.NoError(t, err)
	assert.Equal(t, 17, seq)

	seq, err = ParseSequence("REC/2024-25-0001")
	require.NoError(t, err)
	assert.Equal(t, 1, seq)

	_, err = ParseSequence("INVOICE")
	assert.Error(t, err)

	_, err = ParseSequence("INV/2025-26-")
	assert.Error(t, err)

	_, err = ParseSequence("INV/2025-26-00ab")
	assert.Error(t, err)
}

func TestParseSequence_RoundTrip(t *testing.T) {
	for _, seq := range []int{1, 9, 10, 999, 1000, 12345} {
		n := Format(DocumentTypeInvoice, "2025-26", seq)
		got, err := ParseSequence(n)
		require.NoError(t, err)
		assert.Equal(t, seq, got)
	}
}

func TestDocumentType_IsValid(t *testing.T) {
	assert.True(t, DocumentTypeInvoice.IsValid())
	assert.True(t, DocumentTypeReceipt.IsValid())
	assert.False(t, DocumentType("PAY").IsValid())
	assert.False(t, DocumentType("").IsValid())
}
