package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormTransactionManager_CommitsOnSuccess(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	tm := NewGormTransactionManager(gormDB)

	mock.ExpectBegin()
	mock.ExpectCommit()

	var sawTx bool
	err := tm.WithinTransaction(context.Background(), func(ctx context.Context) error {
		_, sawTx = ctx.Value(txContextKey{}).(*gorm.DB)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, sawTx, "transaction handle travels in the context")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTransactionManager_RollsBackOnError(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	tm := NewGormTransactionManager(gormDB)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := tm.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTransactionManager_NestedCallsReuseTransaction(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	tm := NewGormTransactionManager(gormDB)

	// One BEGIN/COMMIT pair even with a nested unit of work.
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return tm.WithinTransaction(ctx, func(ctx context.Context) error {
			return nil
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
