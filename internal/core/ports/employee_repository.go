package ports

import (
	"context"

	"yardwork/internal/core/domain/model/employee"
	"yardwork/internal/core/domain/model/kernel"
)

// EmployeeRepository is the persistence contract for employees and their coverage areas.
type EmployeeRepository interface {
	// Add persists a new employee together with any areas it already has.
	Add(ctx context.Context, aggregate *employee.Employee) error

	// Update persists the employee's status and upserts its coverage areas.
	Update(ctx context.Context, aggregate *employee.Employee) error

	// Get returns the employee with all areas, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error)

	// ListActiveAreas returns every active area owned by an active employee.
	// This is the candidate set for coverage checks.
	ListActiveAreas(ctx context.Context) ([]*employee.CoverageArea, error)
}
