package queries

import (
	"errors"
	"fmt"
	"strings"

	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/core/domain/services"
	"yardwork/internal/pkg/guard"
)

var ErrGetJobPoolQueryIsNotConstructed = errors.New(
	"GetJobPoolQuery must be created via NewGetJobPoolQuery constructor",
)

// GetJobPoolQuery lists the available jobs one employee is eligible to claim.
//
// Example:
//
//	sort, _ := services.ParseSortKey("urgency")
//	query, err := NewGetJobPoolQuery(employeeID, sort, "springs", "", nil)
//	if err != nil {
//	    return err
//	}
//	entries, err := handler.Handle(ctx, query)
//
// A nil reference ZIP makes distance sorting measure from the employee's first active area.
type GetJobPoolQuery struct {
	employeeID   kernel.UUID
	sort         services.SortKey
	search       string
	serviceType  string
	referenceZip *kernel.ZipCode

	guard guard.ConstructorGuard
}

func NewGetJobPoolQuery(
	employeeID kernel.UUID,
	sort services.SortKey,
	search string,
	serviceType string,
	referenceZip *kernel.ZipCode,
) (GetJobPoolQuery, error) {
	q := GetJobPoolQuery{
		search:      strings.TrimSpace(search),
		serviceType: strings.TrimSpace(serviceType),
		guard:       guard.NewConstructorGuard(),
	}

	var problems []error
	if err := employeeID.Validate(); err != nil {
		problems = append(problems, fmt.Errorf("employeeID: %w", err))
	}
	q.employeeID = employeeID

	sortKey, err := services.ParseSortKey(string(sort))
	if err != nil {
		problems = append(problems, err)
	}
	q.sort = sortKey

	if referenceZip != nil {
		if err := referenceZip.Validate(); err != nil {
			problems = append(problems, fmt.Errorf("referenceZip: %w", err))
		}
		zip := *referenceZip
		q.referenceZip = &zip
	}

	if err := errors.Join(problems...); err != nil {
		return GetJobPoolQuery{}, err
	}
	return q, nil
}

func (q GetJobPoolQuery) Validate() error {
	return q.guard.Validate(ErrGetJobPoolQueryIsNotConstructed)
}

func (q GetJobPoolQuery) EmployeeID() kernel.UUID {
	return q.employeeID
}

func (q GetJobPoolQuery) Sort() services.SortKey {
	return q.sort
}

func (q GetJobPoolQuery) Search() string {
	return q.search
}

func (q GetJobPoolQuery) ServiceType() string {
	return q.serviceType
}

func (q GetJobPoolQuery) ReferenceZip() *kernel.ZipCode {
	return q.referenceZip
}
