// Package kernel holds the value objects shared by the yardwork domain model:
//   - UUID: identifiers for jobs, employees and coverage areas
//   - ZipCode: a normalised five-digit postal code
//   - Coordinates and Miles: points on the Earth and great-circle distances between them
//   - ZipLocation: one row of ZIP reference data
//
// All of them are immutable and their zero values fail Validate.
package kernel
