// Package diagnostic provides structured errors, warnings and notes produced
// while checking a column constraint table.
//
// Key capabilities:
//   - Structural errors that make a table unusable (duplicate targets, unknown keys)
//   - Lint warnings for constraints that can never behave as written
//   - "did you mean" suggestions for misspelled field keys
package diagnostic
