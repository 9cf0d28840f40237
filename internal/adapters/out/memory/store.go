// Package memory is an in-process store implementing the repository and unit-of-work ports.
// It backs local runs without a database and the concurrency tests. Conditional updates are
// arbitrated under a single mutex, which gives the same at-most-one-winner guarantee as the
// Postgres adapter.
package memory

import (
	"sync"

	"yardwork/internal/core/domain/model/employee"
	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/core/ports"
)

var ErrDuplicateKey = ports.ErrDuplicateKey

type areaRecord struct {
	id           kernel.UUID
	zip          kernel.ZipCode
	travelRadius kernel.Miles
	active       bool
}

type employeeRecord struct {
	id     kernel.UUID
	name   string
	status employee.Status
	areas  []areaRecord
}

// Store holds committed and in-flight state. Writes land immediately under the lock and are
// undone on rollback.
type Store struct {
	mu        sync.RWMutex
	jobs      map[kernel.UUID]job.Snapshot
	employees map[kernel.UUID]employeeRecord
}

func NewStore() *Store {
	return &Store{
		jobs:      make(map[kernel.UUID]job.Snapshot),
		employees: make(map[kernel.UUID]employeeRecord),
	}
}

func employeeToRecord(e *employee.Employee) employeeRecord {
	areas := e.Areas()
	rec := employeeRecord{
		id:     e.ID(),
		name:   e.Name(),
		status: e.Status(),
		areas:  make([]areaRecord, 0, len(areas)),
	}
	for _, a := range areas {
		rec.areas = append(rec.areas, areaRecord{
			id:           a.ID(),
			zip:          a.Zip(),
			travelRadius: a.TravelRadius(),
			active:       a.IsActive(),
		})
	}
	return rec
}

func employeeFromRecord(rec employeeRecord) (*employee.Employee, error) {
	areas := make([]*employee.CoverageArea, 0, len(rec.areas))
	for _, r := range rec.areas {
		a, err := employee.RestoreCoverageArea(r.id, rec.id, r.zip, r.travelRadius, r.active)
		if err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return employee.RestoreEmployee(rec.id, rec.name, rec.status, areas)
}
