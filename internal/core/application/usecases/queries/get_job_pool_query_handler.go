package queries

import (
	"context"
	"time"

	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/core/domain/services"
)

// PoolItem is one job in an employee's pool.
type PoolItem struct {
	Job JobView

	// Distance from the reference ZIP, nil when either side is unknown.
	Distance *kernel.Miles

	// TravelDistance is how far the covering area's home ZIP is from the customer.
	TravelDistance kernel.Miles
}

// GetJobPoolQueryHandler filters available jobs down to the ones the employee is eligible
// for and orders them with services.JobPool. Results are recomputed on every call.
type GetJobPoolQueryHandler struct {
	repos    Repositories
	resolver services.CoverageResolver
	pool     services.JobPool
	now      func() time.Time
}

func NewGetJobPoolQueryHandler(repos Repositories, geo services.Locator) GetJobPoolQueryHandler {
	return GetJobPoolQueryHandler{
		repos:    repos,
		resolver: services.NewCoverageResolver(geo),
		pool:     services.NewJobPool(geo),
		now:      time.Now,
	}
}

// WithClock returns a copy of the handler that reads the current time from now.
func (h GetJobPoolQueryHandler) WithClock(now func() time.Time) GetJobPoolQueryHandler {
	h.now = now
	return h
}

// Handle returns errs.ObjectNotFoundError for an unknown employee and an empty pool for an
// inactive one.
func (h GetJobPoolQueryHandler) Handle(ctx context.Context, query GetJobPoolQuery) ([]PoolItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	e, err := h.repos.EmployeeRepository().Get(ctx, query.EmployeeID())
	if err != nil {
		return nil, err
	}

	items := make([]PoolItem, 0)
	areas := e.ActiveAreas()
	if len(areas) == 0 {
		return items, nil
	}

	jobs, err := h.repos.JobRepository().ListByStatus(ctx, job.Available)
	if err != nil {
		return nil, err
	}

	eligible := make([]*job.Job, 0, len(jobs))
	travel := make(map[kernel.UUID]kernel.Miles, len(jobs))
	for _, j := range jobs {
		result := h.resolver.Resolve(j.CustomerZip(), areas)
		if !result.Covered {
			continue
		}
		eligible = append(eligible, j)
		travel[j.ID()] = result.Distance
	}

	reference := query.ReferenceZip()
	if reference == nil {
		home := areas[0].Zip()
		reference = &home
	}

	entries := h.pool.Query(eligible, services.PoolQuery{
		ServiceType:  query.ServiceType(),
		Statuses:     []job.Status{job.Available},
		Search:       query.Search(),
		Sort:         query.Sort(),
		ReferenceZip: reference,
		Now:          h.now(),
	})

	for _, entry := range entries {
		items = append(items, PoolItem{
			Job:            newJobView(entry.Job),
			Distance:       entry.Distance,
			TravelDistance: travel[entry.Job.ID()],
		})
	}
	return items, nil
}
