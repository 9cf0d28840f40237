package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/domain/services"
	"yardwork/internal/core/ports"
	"yardwork/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// ClaimOutcome is the business result of a claim. Every value is final; only a non-nil
// error from Handle is worth retrying.
type ClaimOutcome int

const (
	ClaimOutcomeUnknown ClaimOutcome = iota
	// Claimed means the requester holds the job, either from this call or an earlier one.
	Claimed
	// AlreadyClaimed means someone else holds the job, or it is past the claimable stage.
	AlreadyClaimed
	// NotEligible means none of the requester's own active areas covers the job.
	NotEligible
	JobNotFound
)

func (o ClaimOutcome) String() string {
	switch o {
	case Claimed:
		return "claimed"
	case AlreadyClaimed:
		return "already_claimed"
	case NotEligible:
		return "not_eligible"
	case JobNotFound:
		return "job_not_found"
	default:
		return "unknown"
	}
}

type claimResult struct {
	outcome ClaimOutcome
	// claimed is set when this attempt committed the claim.
	claimed *job.Job
	// held is set when the job was found already claimed by the requester.
	held *job.Job
}

// ClaimJobCommandHandler arbitrates concurrent claims.
//
// Preconditions are checked in order: the job exists, it is Available, and the requester is an
// active employee whose own coverage reaches the job. The Available -> Claimed write is a
// conditional update on status, so among any number of racing callers exactly one gets Claimed
// and the rest AlreadyClaimed. A losing or repeated call never changes the stored claimant.
type ClaimJobCommandHandler struct {
	uowFactory UoWFactory
	resolver   services.CoverageResolver
	publisher  ports.EventPublisher
	retry      RetryPolicy
	logger     *slog.Logger
	now        func() time.Time
}

func NewClaimJobCommandHandler(
	uowFactory UoWFactory,
	geo services.Locator,
	publisher ports.EventPublisher,
	retry RetryPolicy,
	logger *slog.Logger,
) ClaimJobCommandHandler {
	return ClaimJobCommandHandler{
		uowFactory: uowFactory,
		resolver:   services.NewCoverageResolver(geo),
		publisher:  publisher,
		retry:      retry,
		logger:     loggerOrDefault(logger).With("component", "claim_job"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle runs the claim, retrying store failures within the policy and the context deadline.
func (h ClaimJobCommandHandler) Handle(ctx context.Context, cmd ClaimJobCommand) (ClaimOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return ClaimOutcomeUnknown, err
	}

	attempt := 0
	result, err := backoff.RetryWithData(func() (claimResult, error) {
		attempt++
		res, attemptErr := h.attempt(ctx, cmd)
		if attemptErr != nil && isTransient(attemptErr) {
			h.logger.WarnContext(ctx, "claim attempt failed",
				"job_id", cmd.JobID().String(),
				"employee_id", cmd.EmployeeID().String(),
				"attempt", attempt,
				"error", attemptErr)
		}
		return res, retryable(attemptErr)
	}, h.retry.backOff(ctx))
	if err != nil {
		return ClaimOutcomeUnknown, err
	}

	h.logger.DebugContext(ctx, "claim resolved",
		"job_id", cmd.JobID().String(),
		"employee_id", cmd.EmployeeID().String(),
		"outcome", result.outcome.String())

	claimed := result.claimed
	if claimed == nil && attempt > 1 {
		// An earlier attempt in this call may have committed before its error surfaced.
		claimed = result.held
	}
	if claimed != nil {
		publishEvent(ctx, h.publisher, h.logger, job.NewEvent(job.EventClaimed, claimed, *claimed.ClaimedAt()))
	}

	return result.outcome, nil
}

func (h ClaimJobCommandHandler) attempt(ctx context.Context, cmd ClaimJobCommand) (claimResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return claimResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	employeeRepo := uow.EmployeeRepository()

	j, err := jobRepo.Get(ctx, cmd.JobID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return claimResult{outcome: JobNotFound}, nil
	}
	if err != nil {
		return claimResult{}, err
	}

	if j.Status() != job.Available {
		return h.settled(j, cmd), nil
	}

	worker, err := employeeRepo.Get(ctx, cmd.EmployeeID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return claimResult{outcome: NotEligible}, nil
	}
	if err != nil {
		return claimResult{}, err
	}

	if coverage := h.resolver.ResolveFor(j.CustomerZip(), worker); !coverage.Covered {
		return claimResult{outcome: NotEligible}, nil
	}

	if err = j.Claim(cmd.EmployeeID(), h.now()); err != nil {
		return claimResult{}, err
	}

	won, err := jobRepo.UpdateIfStatus(ctx, j, job.Available)
	if err != nil {
		return claimResult{}, err
	}
	if !won {
		current, getErr := jobRepo.Get(ctx, cmd.JobID())
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			return claimResult{outcome: JobNotFound}, nil
		}
		if getErr != nil {
			return claimResult{}, getErr
		}
		return h.settled(current, cmd), nil
	}

	if err = uow.Commit(ctx); err != nil {
		return claimResult{}, err
	}

	return claimResult{outcome: Claimed, claimed: j}, nil
}

// settled maps a job that is no longer Available to an outcome. A retry by the worker who
// already holds the claim is Claimed again; anything else is AlreadyClaimed.
func (h ClaimJobCommandHandler) settled(j *job.Job, cmd ClaimJobCommand) claimResult {
	if j.Status() == job.Claimed && j.IsClaimedBy(cmd.EmployeeID()) {
		return claimResult{outcome: Claimed, held: j}
	}
	return claimResult{outcome: AlreadyClaimed}
}
