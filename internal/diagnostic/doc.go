// Package diagnostic provides structured errors, warnings and notes for
// almanac validation.
//
// Key capabilities:
//   - Coded diagnostics tied to a map section and a rule or category
//   - "Did you mean" suggestions for misspelled categories
//   - A combined error for callers that only need pass/fail
package diagnostic
