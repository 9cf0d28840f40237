package jobrepo

import (
	"context"
	"errors"
	"fmt"

	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/core/ports"
	"yardwork/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("job %s: %w", aggregate.ID(), ports.ErrDuplicateKey)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateIfStatus writes the lifecycle columns in a single statement guarded by
// "status = expected". Zero affected rows means another writer moved the job first, or the
// job does not exist; the caller re-reads to tell which.
func (r *GormJobRepository) UpdateIfStatus(ctx context.Context, aggregate *job.Job, expected job.Status) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Updates(dto.lifecycleColumns())
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}

func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByStatus returns jobs ordered by scheduled date, then id.
func (r *GormJobRepository) ListByStatus(ctx context.Context, statuses ...job.Status) ([]*job.Job, error) {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}

	query := r.db.WithContext(ctx).Order("scheduled_date, id")
	if len(names) > 0 {
		query = query.Where("status IN ?", names)
	}

	var dtos []JobDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return jobs, nil
}
