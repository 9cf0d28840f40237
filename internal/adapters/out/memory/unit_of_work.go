package memory

import (
	"context"
	"errors"
	"sync"

	"yardwork/internal/core/ports"
)

var ErrNoActiveTransaction = errors.New("no active transaction")

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork records an undo step for every write made after Begin. Rollback replays them in
// reverse; Commit forgets them.
type UnitOfWork struct {
	store  *Store
	mu     sync.Mutex
	active bool
	undo   []func()
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.active = true
	u.undo = nil
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.active {
		return ErrNoActiveTransaction
	}
	u.active = false
	u.undo = nil
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	u.mu.Lock()
	if !u.active {
		u.mu.Unlock()
		return ErrNoActiveTransaction
	}
	undo := u.undo
	u.active = false
	u.undo = nil
	u.mu.Unlock()

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	for i := len(undo) - 1; i >= 0; i-- {
		undo[i]()
	}
	return nil
}

func (u *UnitOfWork) JobRepository() ports.JobRepository {
	return &JobRepository{store: u.store, tx: u}
}

func (u *UnitOfWork) EmployeeRepository() ports.EmployeeRepository {
	return &EmployeeRepository{store: u.store, tx: u}
}

// record registers an undo step. It must be called with store.mu held; the step runs with
// store.mu held too.
func (u *UnitOfWork) record(step func()) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.active {
		u.undo = append(u.undo, step)
	}
}
