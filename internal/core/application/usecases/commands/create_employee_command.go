package commands

import (
	"errors"
	"fmt"
	"strings"

	"yardwork/internal/core/domain/model/employee"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/guard"
)

var ErrCreateEmployeeCommandIsNotConstructed = errors.New(
	"CreateEmployeeCommand must be created via NewCreateEmployeeCommand constructor",
)

type CreateEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	name       string

	guard guard.ConstructorGuard
}

func NewCreateEmployeeCommand(employeeID kernel.UUID, name string) (CreateEmployeeCommand, error) {
	cmd := CreateEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmployeeID(employeeID),
		cmd.setName(name),
	); err != nil {
		return CreateEmployeeCommand{}, err
	}

	return cmd, nil
}

func (c CreateEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrCreateEmployeeCommandIsNotConstructed)
}

func (c CreateEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c CreateEmployeeCommand) Name() string {
	return c.name
}

func (c *CreateEmployeeCommand) setEmployeeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("employeeID: %w", err)
	}
	c.employeeID = id
	return nil
}

func (c *CreateEmployeeCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return employee.ErrNameIsRequired
	}
	c.name = name
	return nil
}
