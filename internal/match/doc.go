// Package match provides identifier normalization and edit-distance scoring
// used to suggest the intended field key when a column table misspells one.
//
// Key functions:
//   - NormalizeIdent: folds case and separators ("dynamic_value" == "dynamicValue")
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names by similarity to an unknown one
package match
