package commands

import (
	"context"
	"fmt"

	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/core/domain/services"
	"yardwork/internal/pkg/errs"
)

// AddCoverageAreaCommandHandler adds an area to an employee. The home ZIP must be in the
// reference table, otherwise the area could never cover anyone.
type AddCoverageAreaCommandHandler struct {
	uowFactory EmployeeUoWFactory
	geo        services.Locator
}

func NewAddCoverageAreaCommandHandler(
	uowFactory EmployeeUoWFactory,
	geo services.Locator,
) AddCoverageAreaCommandHandler {
	return AddCoverageAreaCommandHandler{
		uowFactory: uowFactory,
		geo:        geo,
	}
}

// Handle returns the new area's ID.
func (h AddCoverageAreaCommandHandler) Handle(ctx context.Context, cmd AddCoverageAreaCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if _, known := h.geo.Lookup(cmd.Zip()); !known {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("zip",
			fmt.Errorf("%s is not in the zip reference table", cmd.Zip()))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.EmployeeRepository()

	e, err := repo.Get(ctx, cmd.EmployeeID())
	if err != nil {
		return kernel.UUID{}, err
	}

	area, err := e.AddCoverageArea(cmd.Zip(), cmd.Radius())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = repo.Update(ctx, e); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return area.ID(), nil
}
