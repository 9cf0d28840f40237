// Package services holds the stateless domain services of job dispatch.
//
// The package includes:
//   - GeoIndex: ZIP lookups, great-circle distances and radius searches over a reloadable table
//   - CoverageResolver: picks the nearest active coverage area that reaches a customer ZIP
//   - JobPool: filters and orders jobs into a worker's view
//
// None of these mutate aggregates. GeoIndex is safe for concurrent use; the other two hold
// no state of their own.
package services
