package commands

import (
	"context"
)

type DeactivateCoverageAreaCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

func NewDeactivateCoverageAreaCommandHandler(uowFactory EmployeeUoWFactory) DeactivateCoverageAreaCommandHandler {
	return DeactivateCoverageAreaCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeactivateCoverageAreaCommandHandler) Handle(ctx context.Context, cmd DeactivateCoverageAreaCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.EmployeeRepository()

	e, err := repo.Get(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}

	if err = e.DeactivateCoverageArea(cmd.AreaID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
