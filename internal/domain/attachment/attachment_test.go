package attachment

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finvoice/backend/internal/domain/shared"
)

func TestNewAttachment(t *testing.T) {
	tenantID := uuid.New()
	companyID := uuid.New()
	ownerID := uuid.New()

	t.Run("creates a pending record with a namespaced storage key", func(t *testing.T) {
		a, err := NewAttachment(tenantID, "priya", companyID, OwnerTypeInvoice, ownerID,
			"po-4711.pdf", "application/pdf", 2048)
		require.NoError(t, err)

		assert.Equal(t, StatusPending, a.Status)
		assert.False(t, a.Downloadable())
		assert.Equal(t, "priya", a.CreatedBy)
		assert.True(t, strings.HasPrefix(a.StorageKey, tenantID.String()+"/invoice/"+ownerID.String()+"/"))
		assert.True(t, strings.HasSuffix(a.StorageKey, "-po-4711.pdf"))
	})

	t.Run("rejects path separators in the file name", func(t *testing.T) {
		_, err := NewAttachment(tenantID, "priya", companyID, OwnerTypeReceipt, ownerID,
			"../escape.pdf", "application/pdf", 10)
		require.Error(t, err)
		assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
	})

	t.Run("rejects oversized uploads", func(t *testing.T) {
		_, err := NewAttachment(tenantID, "priya", companyID, OwnerTypeInvoice, ownerID,
			"dump.bin", "application/octet-stream", MaxSizeBytes+1)
		require.Error(t, err)
		assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
	})

	t.Run("rejects unknown owner types", func(t *testing.T) {
		_, err := NewAttachment(tenantID, "priya", companyID, OwnerType("ledger"), ownerID,
			"a.pdf", "application/pdf", 10)
		require.Error(t, err)
	})
}

func TestAttachment_MarkAvailable(t *testing.T) {
	a, err := NewAttachment(uuid.New(), "priya", uuid.New(), OwnerTypeInvoice, uuid.New(),
		"scan.png", "image/png", 512)
	require.NoError(t, err)

	require.NoError(t, a.MarkAvailable("ravi"))
	assert.True(t, a.Downloadable())
	assert.Equal(t, "ravi", a.UpdatedBy)

	err = a.MarkAvailable("ravi")
	require.Error(t, err)
	assert.Equal(t, shared.CodeInvalidState, shared.ErrorCode(err))
}

func TestParseOwnerType(t *testing.T) {
	ot, err := ParseOwnerType(" Invoice ")
	require.NoError(t, err)
	assert.Equal(t, OwnerTypeInvoice, ot)

	_, err = ParseOwnerType("journal")
	require.Error(t, err)
}
