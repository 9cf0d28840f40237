// Package job holds the Job aggregate and its lifecycle.
//
// A job is a single scheduled yard-cleaning visit at a customer ZIP code. It is created
// Available, claimed by exactly one worker, started and completed by that worker, or
// cancelled before work begins.
//
// Key business rules:
//   - Status follows Available -> Claimed -> InProgress -> Completed, with Cancelled
//     reachable only from Available and Claimed
//   - The claimant is written once, by Claim, and only the claimant may start or complete
//   - Earnings are kept in whole cents
package job
