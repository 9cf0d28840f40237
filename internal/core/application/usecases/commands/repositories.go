// Package commands contains the operations that change dispatch state: claiming jobs, moving them
// through their lifecycle, and the admin flows that create jobs, employees and coverage areas.
// Every handler validates its command, runs inside a unit of work and publishes events only after
// the commit succeeded.
package commands

import (
	"context"

	"yardwork/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	// JobUoW is used by commands that touch jobs only.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	JobUoWFactory interface {
		Create() JobUoW
	}

	// EmployeeUoW is used by commands that touch employees and their areas only.
	EmployeeUoW interface {
		TxManager
		EmployeeRepoFactory
	}

	EmployeeUoWFactory interface {
		Create() EmployeeUoW
	}

	// UoW spans jobs and employees. Claiming needs both: the job to update and the employee
	// to check eligibility in the same transaction.
	UoW interface {
		TxManager
		JobRepoFactory
		EmployeeRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
