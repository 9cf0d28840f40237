package queries

import (
	"context"

	"yardwork/internal/core/domain/services"
)

// CheckCoverageQueryHandler resolves a customer ZIP against every active coverage area.
// An uncovered result is a normal answer, not an error; its Reason says why.
type CheckCoverageQueryHandler struct {
	repos    Repositories
	resolver services.CoverageResolver
}

func NewCheckCoverageQueryHandler(repos Repositories, geo services.Locator) CheckCoverageQueryHandler {
	return CheckCoverageQueryHandler{
		repos:    repos,
		resolver: services.NewCoverageResolver(geo),
	}
}

func (h CheckCoverageQueryHandler) Handle(ctx context.Context, query CheckCoverageQuery) (services.CoverageResult, error) {
	if err := query.Validate(); err != nil {
		return services.CoverageResult{}, err
	}

	areas, err := h.repos.EmployeeRepository().ListActiveAreas(ctx)
	if err != nil {
		return services.CoverageResult{}, err
	}

	return h.resolver.Resolve(query.Zip(), areas), nil
}
