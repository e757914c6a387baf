package shared

import "context"

// TransactionManager runs a function inside one database transaction.
// Repository calls made with the context passed to fn join that
// transaction; any returned error rolls the whole unit back.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
