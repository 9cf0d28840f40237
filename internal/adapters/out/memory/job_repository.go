package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/errs"
)

type JobRepository struct {
	store *Store
	tx    *UnitOfWork
}

func (r *JobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := aggregate.ID()
	if _, exists := r.store.jobs[id]; exists {
		return fmt.Errorf("job %s: %w", id, ErrDuplicateKey)
	}

	r.store.jobs[id] = aggregate.Snapshot()
	r.tx.record(func() { delete(r.store.jobs, id) })
	return nil
}

func (r *JobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	snap, ok := r.store.jobs[id]
	r.store.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("job", id.String())
	}
	return job.RestoreJob(snap)
}

func (r *JobRepository) UpdateIfStatus(ctx context.Context, aggregate *job.Job, expected job.Status) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := aggregate.ID()
	current, ok := r.store.jobs[id]
	if !ok || current.Status != expected {
		return false, nil
	}

	r.store.jobs[id] = aggregate.Snapshot()
	r.tx.record(func() { r.store.jobs[id] = current })
	return true, nil
}

func (r *JobRepository) ListByStatus(ctx context.Context, statuses ...job.Status) ([]*job.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	snaps := make([]job.Snapshot, 0, len(r.store.jobs))
	for _, s := range r.store.jobs {
		if len(statuses) == 0 || slices.Contains(statuses, s.Status) {
			snaps = append(snaps, s)
		}
	}
	r.store.mu.RUnlock()

	slices.SortFunc(snaps, func(a, b job.Snapshot) int {
		if c := a.Details.ScheduledDate.Compare(b.Details.ScheduledDate); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	jobs := make([]*job.Job, 0, len(snaps))
	for _, s := range snaps {
		j, err := job.RestoreJob(s)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}
