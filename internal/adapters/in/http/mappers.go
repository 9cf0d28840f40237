package http

import (
	"fmt"

	"yardwork/internal/core/application/usecases/commands"
	"yardwork/internal/core/application/usecases/queries"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/core/domain/services"
	"yardwork/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	u, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%s: %w", name, err)
	}
	return u, nil
}

func toAPIUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	b := id.Bytes()
	return &b
}

func toCoverageResult(result services.CoverageResult) servers.CoverageResult {
	response := servers.CoverageResult{Covered: result.Covered}
	if !result.Covered {
		if result.Reason != "" {
			reason := result.Reason
			response.Reason = &reason
		}
		return response
	}

	response.EmployeeId = toAPIUUID(&result.EmployeeID)
	workerZip := result.WorkerZip.String()
	response.WorkerZip = &workerZip
	distance := float64(result.Distance)
	response.DistanceMiles = &distance
	return response
}

func toJob(view queries.JobView) servers.Job {
	response := servers.Job{
		Id:                     view.ID.Bytes(),
		CustomerName:           view.CustomerName,
		CustomerZip:            view.CustomerZip.String(),
		City:                   view.City,
		ServiceType:            view.ServiceType,
		ScheduledDate:          openapi_types.Date{Time: view.ScheduledDate},
		PotentialEarningsCents: int64(view.PotentialEarnings),
		Status:                 servers.JobStatus(view.Status.String()),
		ClaimedBy:              toAPIUUID(view.ClaimedBy),
		ClaimedAt:              view.ClaimedAt,
		StartedAt:              view.StartedAt,
		CompletedAt:            view.CompletedAt,
		CancelledAt:            view.CancelledAt,
	}
	if view.CancelReason != "" {
		reason := view.CancelReason
		response.CancelReason = &reason
	}
	return response
}

func toPoolJob(item queries.PoolItem) servers.PoolJob {
	response := servers.PoolJob{
		Job:                 toJob(item.Job),
		TravelDistanceMiles: float64(item.TravelDistance),
	}
	if item.Distance != nil {
		distance := float64(*item.Distance)
		response.DistanceMiles = &distance
	}
	return response
}

func toClaimOutcome(outcome commands.ClaimOutcome) servers.ClaimOutcome {
	return servers.ClaimOutcome(outcome.String())
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
