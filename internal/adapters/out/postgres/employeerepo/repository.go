package employeerepo

import (
	"context"
	"errors"
	"fmt"

	"yardwork/internal/core/domain/model/employee"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/core/ports"
	"yardwork/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormEmployeeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormEmployeeRepository(db *gorm.DB, tracker aggregateTracker) *GormEmployeeRepository {
	return &GormEmployeeRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormEmployeeRepository) Add(ctx context.Context, aggregate *employee.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("employee %s: %w", aggregate.ID(), ports.ErrDuplicateKey)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the employee row and upserts every coverage area, including deactivated ones.
func (r *GormEmployeeRepository) Update(ctx context.Context, aggregate *employee.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	var exists int64
	if err := r.db.WithContext(ctx).Model(&EmployeeDTO{}).Where("id = ?", dto.ID).Count(&exists).Error; err != nil {
		return err
	}
	if exists == 0 {
		return errs.NewObjectNotFoundError("employee", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EmployeeDTO
	err := r.db.WithContext(ctx).
		Preload("CoverageAreas").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListActiveAreas returns the active areas of active employees ordered by area id.
func (r *GormEmployeeRepository) ListActiveAreas(ctx context.Context) ([]*employee.CoverageArea, error) {
	var dtos []CoverageAreaDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN employees ON employees.id = coverage_areas.employee_id").
		Where("coverage_areas.active = ? AND employees.status = ?", true, string(employee.Active)).
		Order("coverage_areas.id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	areas := make([]*employee.CoverageArea, 0, len(dtos))
	for _, dto := range dtos {
		area, areaErr := areaToDomain(dto)
		if areaErr != nil {
			return nil, areaErr
		}
		areas = append(areas, area)
	}

	return areas, nil
}
