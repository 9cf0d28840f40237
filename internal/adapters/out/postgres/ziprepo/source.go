// Package ziprepo reads the ZIP reference table from Postgres with sqlx. It is kept apart from
// the GORM repositories because the table is bulk reference data loaded whole at startup and on
// every scheduled refresh.
package ziprepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"yardwork/internal/core/domain/model/kernel"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// ErrEmptyTable is returned by Load when zip_locations has no rows.
var ErrEmptyTable = errors.New("zip_locations table is empty")

const schema = `
	CREATE TABLE IF NOT EXISTS zip_locations (
		zip CHAR(5) PRIMARY KEY,
		lat DOUBLE PRECISION NOT NULL CHECK (lat BETWEEN -90 AND 90),
		lng DOUBLE PRECISION NOT NULL CHECK (lng BETWEEN -180 AND 180)
	)
`

type zipRow struct {
	Zip string  `db:"zip"`
	Lat float64 `db:"lat"`
	Lng float64 `db:"lng"`
}

// Connect opens a lib/pq connection pool and checks it with a ping.
func Connect(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	return db, nil
}

// Source implements ports.ZipSource over the zip_locations table.
type Source struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewSource(db *sqlx.DB, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{db: db, logger: logger.With("component", "zip_source", "source", "postgres")}
}

// EnsureSchema creates zip_locations if it does not exist.
func (s *Source) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create zip_locations: %w", err)
	}
	return nil
}

// Load reads every row. A single invalid row fails the whole load so a bad import never
// replaces a good index.
func (s *Source) Load(ctx context.Context) ([]kernel.ZipLocation, error) {
	var rows []zipRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT zip, lat, lng FROM zip_locations ORDER BY zip`); err != nil {
		return nil, fmt.Errorf("failed to select zip locations: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	locations := make([]kernel.ZipLocation, 0, len(rows))
	for _, row := range rows {
		loc, err := kernel.NewZipLocation(row.Zip, row.Lat, row.Lng)
		if err != nil {
			return nil, fmt.Errorf("zip_locations row %q: %w", row.Zip, err)
		}
		locations = append(locations, loc)
	}

	s.logger.DebugContext(ctx, "zip locations loaded", "count", len(locations))
	return locations, nil
}

// Seed upserts locations in one transaction. It is used to fill an empty table from the
// embedded data set.
func (s *Source) Seed(ctx context.Context, locations []kernel.ZipLocation) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareNamedContext(ctx, `
		INSERT INTO zip_locations (zip, lat, lng)
		VALUES (:zip, :lat, :lng)
		ON CONFLICT (zip) DO UPDATE SET lat = EXCLUDED.lat, lng = EXCLUDED.lng
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare zip upsert: %w", err)
	}
	defer stmt.Close()

	for _, loc := range locations {
		row := zipRow{Zip: loc.Zip.String(), Lat: loc.Coordinates.Lat(), Lng: loc.Coordinates.Lng()}
		if _, err = stmt.ExecContext(ctx, row); err != nil {
			return fmt.Errorf("failed to upsert zip %s: %w", row.Zip, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit zip seed: %w", err)
	}

	s.logger.InfoContext(ctx, "zip locations seeded", "count", len(locations))
	return nil
}

// Count returns the number of rows in zip_locations.
func (s *Source) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM zip_locations`); err != nil {
		return 0, fmt.Errorf("failed to count zip locations: %w", err)
	}
	return n, nil
}
