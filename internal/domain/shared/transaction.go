package shared

import "context"

// TxManager runs a unit of work atomically. Repositories called with the
// context passed to fn join the same transaction.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
