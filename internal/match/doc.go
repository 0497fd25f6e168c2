// Package match provides name normalization, Levenshtein distance and
// suggestion ranking for almanac category names.
//
// Key functions:
//   - NormalizeIdent: folds "Seed", "seed" and "SEED" to one form
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known categories against a misspelled one
package match
