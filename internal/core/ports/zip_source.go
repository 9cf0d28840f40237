package ports

import (
	"context"

	"yardwork/internal/core/domain/model/kernel"
)

// ZipSource supplies the ZIP reference table. Implementations may read an embedded file,
// a file on disk or a database table; the GeoIndex does not care which.
type ZipSource interface {
	Load(ctx context.Context) ([]kernel.ZipLocation, error)
}
