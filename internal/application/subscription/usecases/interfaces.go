package usecases

import "context"

// TransactionRunner commits the registry writes of one operation as a single
// unit; if the callback errors, nothing written inside it survives.
// shared/db.TransactionManager satisfies this.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
