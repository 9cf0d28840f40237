// Package jobrepo persists the job aggregate with GORM. Status is stored by name so the table
// stays readable from psql and the conditional claim update can match on it directly.
package jobrepo

import (
	"time"

	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO is the row layout of the jobs table.
type JobDTO struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerName           string     `gorm:"type:varchar(255);not null;default:''"`
	CustomerZip            string     `gorm:"type:char(5);not null;index"`
	City                   string     `gorm:"type:varchar(255);not null;default:''"`
	ServiceType            string     `gorm:"type:varchar(100);not null"`
	ScheduledDate          time.Time  `gorm:"not null;index"`
	PotentialEarningsCents int64      `gorm:"not null"`
	Status                 string     `gorm:"type:varchar(20);not null;index"`
	ClaimedBy              *uuid.UUID `gorm:"type:uuid;index"`
	ClaimedAt              *time.Time
	StartedAt              *time.Time
	CompletedAt            *time.Time
	CancelledAt            *time.Time
	CancelReason           string `gorm:"type:varchar(500);not null;default:''"`
}

func (JobDTO) TableName() string {
	return "jobs"
}

func fromDomain(j *job.Job) JobDTO {
	s := j.Snapshot()

	var claimedBy *uuid.UUID
	if s.ClaimedBy != nil {
		raw := s.ClaimedBy.Bytes()
		claimedBy = &raw
	}

	return JobDTO{
		ID:                     s.ID.Bytes(),
		CustomerName:           s.Details.CustomerName,
		CustomerZip:            s.Details.CustomerZip.String(),
		City:                   s.Details.City,
		ServiceType:            s.Details.ServiceType,
		ScheduledDate:          s.Details.ScheduledDate,
		PotentialEarningsCents: int64(s.Details.PotentialEarnings),
		Status:                 s.Status.String(),
		ClaimedBy:              claimedBy,
		ClaimedAt:              s.ClaimedAt,
		StartedAt:              s.StartedAt,
		CompletedAt:            s.CompletedAt,
		CancelledAt:            s.CancelledAt,
		CancelReason:           s.CancelReason,
	}
}

// lifecycleColumns are the only columns a status transition may change.
func (dto JobDTO) lifecycleColumns() map[string]any {
	return map[string]any{
		"status":        dto.Status,
		"claimed_by":    dto.ClaimedBy,
		"claimed_at":    dto.ClaimedAt,
		"started_at":    dto.StartedAt,
		"completed_at":  dto.CompletedAt,
		"cancelled_at":  dto.CancelledAt,
		"cancel_reason": dto.CancelReason,
	}
}

func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var claimedBy *kernel.UUID
	if dto.ClaimedBy != nil {
		cID, claimErr := kernel.UUIDFromBytes((*dto.ClaimedBy)[:])
		if claimErr != nil {
			return nil, claimErr
		}
		claimedBy = &cID
	}

	zip, err := kernel.NewZipCode(dto.CustomerZip)
	if err != nil {
		return nil, err
	}

	status, err := job.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(job.Snapshot{
		ID: id,
		Details: job.Details{
			CustomerName:      dto.CustomerName,
			CustomerZip:       zip,
			City:              dto.City,
			ServiceType:       dto.ServiceType,
			ScheduledDate:     dto.ScheduledDate,
			PotentialEarnings: job.Cents(dto.PotentialEarningsCents),
		},
		Status:       status,
		ClaimedBy:    claimedBy,
		ClaimedAt:    dto.ClaimedAt,
		StartedAt:    dto.StartedAt,
		CompletedAt:  dto.CompletedAt,
		CancelledAt:  dto.CancelledAt,
		CancelReason: dto.CancelReason,
	})
}
