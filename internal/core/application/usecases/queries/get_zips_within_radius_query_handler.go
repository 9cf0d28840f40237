package queries

import (
	"context"

	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/core/domain/services"
	"yardwork/internal/pkg/errs"
)

// RadiusFinder is implemented by services.GeoIndex.
type RadiusFinder interface {
	WithinRadius(zip kernel.ZipCode, radius kernel.Miles) ([]services.ZipDistance, bool)
}

type GetZipsWithinRadiusQueryHandler struct {
	finder RadiusFinder
}

func NewGetZipsWithinRadiusQueryHandler(finder RadiusFinder) GetZipsWithinRadiusQueryHandler {
	return GetZipsWithinRadiusQueryHandler{finder: finder}
}

// Handle lists known ZIPs nearest first, the centre itself included. A centre missing from the
// reference table is reported as errs.ObjectNotFoundError.
func (h GetZipsWithinRadiusQueryHandler) Handle(
	ctx context.Context,
	query GetZipsWithinRadiusQuery,
) ([]services.ZipDistance, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	zips, ok := h.finder.WithinRadius(query.Zip(), query.Radius())
	if !ok {
		return nil, errs.NewObjectNotFoundError("zip", query.Zip().String())
	}
	return zips, nil
}
