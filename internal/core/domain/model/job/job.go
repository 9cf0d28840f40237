package job

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/errs"
	"yardwork/internal/pkg/guard"
)

var (
	// ErrJobIsNotConstructed is returned when a Job was not built by NewJob or RestoreJob.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")

	// ErrNotClaimant is returned when someone other than the claiming worker tries to
	// start or complete a job.
	ErrNotClaimant = errors.New("employee is not the claimant of this job")
)

// Cents is an amount of money in US cents.
type Cents int64

// Dollars returns the amount as a float for display.
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

// Details are the externally supplied attributes of a scheduled service visit.
type Details struct {
	CustomerName      string
	CustomerZip       kernel.ZipCode
	City              string
	ServiceType       string
	ScheduledDate     time.Time
	PotentialEarnings Cents
}

// Snapshot is the full persisted state of a job. Adapters read it with Job.Snapshot and
// rebuild aggregates with RestoreJob.
type Snapshot struct {
	ID           kernel.UUID
	Details      Details
	Status       Status
	ClaimedBy    *kernel.UUID
	ClaimedAt    *time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
	CancelledAt  *time.Time
	CancelReason string
}

// Job is the aggregate root for one scheduled yard-cleaning visit.
//
// Invariants:
//   - status only moves forward along the lifecycle graph (see Status)
//   - claimedBy is set exactly once, by Claim, and never changes afterwards
//   - Claimed, InProgress and Completed jobs always have a claimant; Available jobs never do
//
// Job itself is not safe for concurrent mutation. Concurrent claims are arbitrated by the
// store through a conditional update on status, not by this type.
type Job struct {
	id           kernel.UUID
	details      Details
	status       Status
	claimedBy    *kernel.UUID
	claimedAt    *time.Time
	startedAt    *time.Time
	completedAt  *time.Time
	cancelledAt  *time.Time
	cancelReason string

	guard guard.ConstructorGuard
}

// NewJob creates an Available job.
func NewJob(id kernel.UUID, details Details) (*Job, error) {
	j := &Job{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(j.setID(id), j.setDetails(details)); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob rebuilds a job from persisted state, re-checking every invariant that can be
// checked on a single snapshot.
func RestoreJob(s Snapshot) (*Job, error) {
	j := &Job{
		guard:        guard.NewConstructorGuard(),
		claimedAt:    s.ClaimedAt,
		startedAt:    s.StartedAt,
		completedAt:  s.CompletedAt,
		cancelledAt:  s.CancelledAt,
		cancelReason: s.CancelReason,
	}

	if err := errors.Join(
		j.setID(s.ID),
		j.setDetails(s.Details),
		j.setStatus(s.Status, s.ClaimedBy, s.ClaimedAt),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// Validate ensures the job was properly constructed.
func (j *Job) Validate() error {
	if j == nil {
		return ErrJobIsNotConstructed
	}
	return j.guard.Validate(ErrJobIsNotConstructed)
}

func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

func (j *Job) ID() kernel.UUID { return j.id }
func (j *Job) CustomerName() string { return j.details.CustomerName }
func (j *Job) CustomerZip() kernel.ZipCode { return j.details.CustomerZip }
func (j *Job) City() string { return j.details.City }
func (j *Job) ServiceType() string { return j.details.ServiceType }
func (j *Job) ScheduledDate() time.Time { return j.details.ScheduledDate }
func (j *Job) PotentialEarnings() Cents { return j.details.PotentialEarnings }
func (j *Job) Status() Status { return j.status }
func (j *Job) ClaimedBy() *kernel.UUID { return j.claimedBy }
func (j *Job) ClaimedAt() *time.Time { return j.claimedAt }
func (j *Job) StartedAt() *time.Time { return j.startedAt }
func (j *Job) CompletedAt() *time.Time { return j.completedAt }
func (j *Job) CancelledAt() *time.Time { return j.cancelledAt }
func (j *Job) CancelReason() string { return j.cancelReason }
func (j *Job) IsClaimedBy(id kernel.UUID) bool { return j.claimedBy != nil && j.claimedBy.IsEqual(id) }

// Snapshot returns a copy of the job's full state.
func (j *Job) Snapshot() Snapshot {
	return Snapshot{
		ID:           j.id,
		Details:      j.details,
		Status:       j.status,
		ClaimedBy:    j.claimedBy,
		ClaimedAt:    j.claimedAt,
		StartedAt:    j.startedAt,
		CompletedAt:  j.completedAt,
		CancelledAt:  j.cancelledAt,
		CancelReason: j.cancelReason,
	}
}

// Claim moves an Available job to Claimed and records the claimant. It is the only place
// claimedBy is ever written.
func (j *Job) Claim(employeeID kernel.UUID, at time.Time) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	next, err := j.status.TransitionTo(Claimed)
	if err != nil {
		return err
	}

	j.status = next
	j.claimedBy = &employeeID
	j.claimedAt = &at
	return nil
}

// Start moves a Claimed job to InProgress. Only the claimant may start it.
func (j *Job) Start(employeeID kernel.UUID, at time.Time) error {
	next, err := j.status.TransitionTo(InProgress)
	if err != nil {
		return err
	}
	if !j.IsClaimedBy(employeeID) {
		return ErrNotClaimant
	}

	j.status = next
	j.startedAt = &at
	return nil
}

// Complete moves an InProgress job to Completed. Only the claimant may complete it.
func (j *Job) Complete(employeeID kernel.UUID, at time.Time) error {
	next, err := j.status.TransitionTo(Completed)
	if err != nil {
		return err
	}
	if !j.IsClaimedBy(employeeID) {
		return ErrNotClaimant
	}

	j.status = next
	j.completedAt = &at
	return nil
}

// Cancel moves an Available or Claimed job to Cancelled. It is requested by the customer or an
// operator, so no claimant check applies.
func (j *Job) Cancel(reason string, at time.Time) error {
	next, err := j.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	j.status = next
	j.cancelledAt = &at
	j.cancelReason = strings.TrimSpace(reason)
	return nil
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setDetails(d Details) error {
	var problems []error

	if err := d.CustomerZip.Validate(); err != nil {
		problems = append(problems, err)
	}
	if strings.TrimSpace(d.ServiceType) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("serviceType"))
	}
	if d.ScheduledDate.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("scheduledDate"))
	}
	if d.PotentialEarnings < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"potentialEarnings", fmt.Errorf("%d is negative", d.PotentialEarnings)))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	d.CustomerName = strings.TrimSpace(d.CustomerName)
	d.City = strings.TrimSpace(d.City)
	d.ServiceType = strings.TrimSpace(d.ServiceType)
	j.details = d
	return nil
}

// setStatus checks the status against the claimant fields, the same consistency rule the
// store's conditional update relies on.
func (j *Job) setStatus(status Status, claimedBy *kernel.UUID, claimedAt *time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	hasClaimant := claimedBy != nil
	if status.RequiresClaimant() && (!hasClaimant || claimedAt == nil) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s job must have a claimant", status))
	}
	if status == Available && hasClaimant {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s job must not have a claimant", status))
	}
	if hasClaimant {
		if err := claimedBy.Validate(); err != nil {
			return err
		}
	}

	j.status = status
	j.claimedBy = claimedBy
	return nil
}
