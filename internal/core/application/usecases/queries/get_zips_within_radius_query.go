package queries

import (
	"errors"

	"yardwork/internal/core/domain/model/employee"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/errs"
	"yardwork/internal/pkg/guard"
)

var ErrGetZipsWithinRadiusQueryIsNotConstructed = errors.New(
	"GetZipsWithinRadiusQuery must be created via NewGetZipsWithinRadiusQuery constructor",
)

// GetZipsWithinRadiusQuery previews the ZIPs a coverage area centred on zip would reach.
type GetZipsWithinRadiusQuery struct {
	zip    kernel.ZipCode
	radius kernel.Miles

	guard guard.ConstructorGuard
}

func NewGetZipsWithinRadiusQuery(zip kernel.ZipCode, radius kernel.Miles) (GetZipsWithinRadiusQuery, error) {
	var rangeErr error
	if radius <= 0 || radius > employee.MaxTravelRadius {
		rangeErr = errs.NewValueIsOutOfRangeError("radius", float64(radius), 0, float64(employee.MaxTravelRadius))
	}
	if err := errors.Join(zip.Validate(), rangeErr); err != nil {
		return GetZipsWithinRadiusQuery{}, err
	}

	return GetZipsWithinRadiusQuery{
		zip:    zip,
		radius: radius,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetZipsWithinRadiusQuery) Validate() error {
	return q.guard.Validate(ErrGetZipsWithinRadiusQueryIsNotConstructed)
}

func (q GetZipsWithinRadiusQuery) Zip() kernel.ZipCode {
	return q.zip
}

func (q GetZipsWithinRadiusQuery) Radius() kernel.Miles {
	return q.radius
}
