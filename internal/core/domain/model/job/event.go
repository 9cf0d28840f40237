package job

import (
	"time"

	"yardwork/internal/core/domain/model/kernel"
)

// EventType names a lifecycle change. Values double as message routing keys.
type EventType string

const (
	EventCreated   EventType = "job.created"
	EventClaimed   EventType = "job.claimed"
	EventStarted   EventType = "job.started"
	EventCompleted EventType = "job.completed"
	EventCancelled EventType = "job.cancelled"
)

// Event records one lifecycle change after it has been committed.
type Event struct {
	Type        EventType
	JobID       kernel.UUID
	EmployeeID  *kernel.UUID
	Status      Status
	CustomerZip kernel.ZipCode
	Reason      string
	OccurredAt  time.Time
}

// NewEvent snapshots the job as it is right after a transition.
func NewEvent(t EventType, j *Job, at time.Time) Event {
	return Event{
		Type:        t,
		JobID:       j.ID(),
		EmployeeID:  j.ClaimedBy(),
		Status:      j.Status(),
		CustomerZip: j.CustomerZip(),
		Reason:      j.CancelReason(),
		OccurredAt:  at,
	}
}
