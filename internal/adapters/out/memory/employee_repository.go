package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"yardwork/internal/core/domain/model/employee"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/errs"
)

type EmployeeRepository struct {
	store *Store
	tx    *UnitOfWork
}

func (r *EmployeeRepository) Add(ctx context.Context, aggregate *employee.Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := aggregate.ID()
	if _, exists := r.store.employees[id]; exists {
		return fmt.Errorf("employee %s: %w", id, ErrDuplicateKey)
	}

	r.store.employees[id] = employeeToRecord(aggregate)
	r.tx.record(func() { delete(r.store.employees, id) })
	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, aggregate *employee.Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := aggregate.ID()
	previous, exists := r.store.employees[id]
	if !exists {
		return errs.NewObjectNotFoundError("employee", id.String())
	}

	r.store.employees[id] = employeeToRecord(aggregate)
	r.tx.record(func() { r.store.employees[id] = previous })
	return nil
}

func (r *EmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	rec, ok := r.store.employees[id]
	r.store.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("employee", id.String())
	}
	return employeeFromRecord(rec)
}

func (r *EmployeeRepository) ListActiveAreas(ctx context.Context) ([]*employee.CoverageArea, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var areas []*employee.CoverageArea
	for _, rec := range r.store.employees {
		if rec.status != employee.Active {
			continue
		}
		for _, a := range rec.areas {
			if !a.active {
				continue
			}
			area, err := employee.RestoreCoverageArea(a.id, rec.id, a.zip, a.travelRadius, true)
			if err != nil {
				return nil, err
			}
			areas = append(areas, area)
		}
	}

	slices.SortFunc(areas, func(a, b *employee.CoverageArea) int {
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return areas, nil
}
