package ports

import (
	"context"
	"errors"
)

// ErrDuplicateKey is returned by repository Add when the aggregate ID is already stored.
var ErrDuplicateKey = errors.New("duplicate key")

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from it after Begin
// share the transaction; before Begin they run directly against the store.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	JobRepository() JobRepository
	EmployeeRepository() EmployeeRepository
}
