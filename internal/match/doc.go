// Package match provides identifier normalization and edit-distance scoring
// used to suggest known option keys for misspelled ones.
//
// Key functions:
//   - NormalizeIdent: folds camelCase, snake_case and kebab-case to one form
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known keys by similarity to an unknown key
package match
