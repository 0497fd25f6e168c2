// Package pipeline composes rangemap stages into a resolution chain.
//
// Resolution pipeline:
//  1. A starting identifier enters the first stage (e.g. seed-to-soil)
//  2. Each stage's output feeds the next stage's Translate
//  3. The last stage's output is the identifier in the final category
//
// Resolution never fails: every stage falls back to identity. The only
// failing query is a minimum over an empty set of identifiers.
//
// Stages are read-only once built, so a Pipeline may be queried from many
// goroutines; MinimumOverParallel fans a query out across workers.
package pipeline
