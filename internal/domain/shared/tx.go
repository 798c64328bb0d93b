package shared

import "context"

// TransactionManager executes a function atomically. Repository calls
// made with the context passed to fn join the same transaction.
type TransactionManager interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
