// Package ports defines the contracts between the dispatch core and its infrastructure:
// persistence, ZIP reference data and event delivery.
package ports

import (
	"context"

	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/domain/model/kernel"
)

// JobRepository is the persistence contract for job aggregates.
type JobRepository interface {
	// Add persists a new job.
	Add(ctx context.Context, aggregate *job.Job) error

	// Get returns the job or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// UpdateIfStatus writes the job's full state only if the stored status still equals expected.
	// It is a single conditional update: of any number of concurrent callers passing the same
	// expected status, at most one sees true. False with a nil error means the stored row
	// changed in between (or vanished); the caller re-reads to find out which.
	UpdateIfStatus(ctx context.Context, aggregate *job.Job, expected job.Status) (bool, error)

	// ListByStatus returns jobs in any of the given statuses, ordered by scheduled date.
	ListByStatus(ctx context.Context, statuses ...job.Status) ([]*job.Job, error)
}
