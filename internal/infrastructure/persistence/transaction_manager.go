package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/finvoice/backend/internal/domain/shared"
)

type txContextKey struct{}

// GormTransactionManager runs units of work inside one database
// transaction. The transaction handle travels in the context, so any
// repository receiving that context joins the same transaction.
type GormTransactionManager struct {
	db *gorm.DB
}

// NewGormTransactionManager creates a new GormTransactionManager
func NewGormTransactionManager(db *gorm.DB) *GormTransactionManager {
	return &GormTransactionManager{db: db}
}

// WithinTransaction starts a transaction, stashes it in the context and
// runs fn. Any error from fn rolls the whole unit back. Nested calls
// reuse the transaction already in the context.
func (m *GormTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// dbFromContext returns the transaction stashed in the context, or the
// repository's own handle when the call is not transactional.
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return fallback
}

var _ shared.TransactionManager = (*GormTransactionManager)(nil)
