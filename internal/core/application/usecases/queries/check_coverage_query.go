package queries

import (
	"errors"

	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/guard"
)

var ErrCheckCoverageQueryIsNotConstructed = errors.New(
	"CheckCoverageQuery must be created via NewCheckCoverageQuery constructor",
)

// CheckCoverageQuery asks whether any active worker can serve a customer ZIP.
//
// Example:
//
//	zip, _ := kernel.NewZipCode("80927")
//	query, err := NewCheckCoverageQuery(zip)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, query)
type CheckCoverageQuery struct {
	zip kernel.ZipCode

	guard guard.ConstructorGuard
}

func NewCheckCoverageQuery(zip kernel.ZipCode) (CheckCoverageQuery, error) {
	if err := zip.Validate(); err != nil {
		return CheckCoverageQuery{}, err
	}
	return CheckCoverageQuery{zip: zip, guard: guard.NewConstructorGuard()}, nil
}

func (q CheckCoverageQuery) Validate() error {
	return q.guard.Validate(ErrCheckCoverageQueryIsNotConstructed)
}

func (q CheckCoverageQuery) Zip() kernel.ZipCode {
	return q.zip
}
