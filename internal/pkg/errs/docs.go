// Package errs provides the shared error types of the yardwork service.
//
// Each error type follows the same pattern:
//   - a sentinel variable (ErrObjectNotFound, ErrValueIsInvalid, ...) for errors.Is checks
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// Business outcomes of the dispatch core (AlreadyClaimed, NotEligible, ...) are not modelled
// here; they live next to the use case that produces them.
package errs
