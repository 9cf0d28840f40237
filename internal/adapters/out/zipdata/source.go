// Package zipdata provides ZIP reference data from CSV: the data set compiled into the binary
// and an operator supplied file. Both implement ports.ZipSource.
//
// The CSV layout is a header row followed by one "zip,lat,lng" row per ZIP. Blank lines are
// skipped. Any malformed row fails the whole load.
package zipdata

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"yardwork/internal/core/domain/model/kernel"
)

//go:embed zips.csv
var embedded []byte

var ErrNoRows = errors.New("zip data has no rows")

// EmbeddedSource serves the data set compiled into the binary.
type EmbeddedSource struct{}

func NewEmbeddedSource() EmbeddedSource {
	return EmbeddedSource{}
}

func (EmbeddedSource) Load(ctx context.Context) ([]kernel.ZipLocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(embedded))
}

// FileSource reads a CSV file on every Load, so edits to the file are picked up by the next
// scheduled reload.
type FileSource struct {
	path string
}

func NewFileSource(path string) FileSource {
	return FileSource{path: path}
}

func (s FileSource) Load(ctx context.Context) ([]kernel.ZipLocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip data: %w", err)
	}
	defer f.Close()

	locations, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return locations, nil
}

// Parse reads CSV rows of zip, lat, lng. The first row is a header when its lat column does
// not parse as a number.
func Parse(r io.Reader) ([]kernel.ZipLocation, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	var locations []kernel.ZipLocation
	for first := true; ; first = false {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)

		lat, latErr := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		lng, lngErr := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if first && latErr != nil {
			continue
		}
		if err = errors.Join(latErr, lngErr); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		loc, err := kernel.NewZipLocation(record[0], lat, lng)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		locations = append(locations, loc)
	}

	if len(locations) == 0 {
		return nil, ErrNoRows
	}
	return locations, nil
}
