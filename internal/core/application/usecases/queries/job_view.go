package queries

import (
	"time"

	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/domain/model/kernel"
)

// JobView is the read model of a job shared by the pool and single job queries.
type JobView struct {
	ID                kernel.UUID
	CustomerName      string
	CustomerZip       kernel.ZipCode
	City              string
	ServiceType       string
	ScheduledDate     time.Time
	PotentialEarnings job.Cents
	Status            job.Status
	ClaimedBy         *kernel.UUID
	ClaimedAt         *time.Time
	StartedAt         *time.Time
	CompletedAt       *time.Time
	CancelledAt       *time.Time
	CancelReason      string
}

func newJobView(j *job.Job) JobView {
	s := j.Snapshot()
	return JobView{
		ID:                s.ID,
		CustomerName:      s.Details.CustomerName,
		CustomerZip:       s.Details.CustomerZip,
		City:              s.Details.City,
		ServiceType:       s.Details.ServiceType,
		ScheduledDate:     s.Details.ScheduledDate,
		PotentialEarnings: s.Details.PotentialEarnings,
		Status:            s.Status,
		ClaimedBy:         s.ClaimedBy,
		ClaimedAt:         s.ClaimedAt,
		StartedAt:         s.StartedAt,
		CompletedAt:       s.CompletedAt,
		CancelledAt:       s.CancelledAt,
		CancelReason:      s.CancelReason,
	}
}
