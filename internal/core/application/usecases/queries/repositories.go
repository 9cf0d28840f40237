// Package queries contains the read operations: coverage checks, the job pool and single
// job lookups. Query handlers read through the repository ports outside of any transaction
// and never change state.
package queries

import (
	"yardwork/internal/core/ports"
)

// Repositories gives query handlers read access to the stores. A unit of work that was never
// begun satisfies it and reads committed state directly.
type Repositories interface {
	JobRepository() ports.JobRepository
	EmployeeRepository() ports.EmployeeRepository
}
