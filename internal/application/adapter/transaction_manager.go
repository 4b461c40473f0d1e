package adapter

import "context"

// TransactionManager runs a unit of work atomically. Repositories called with
// the context passed to fn take part in the same database transaction.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
