// Package match provides name normalization, Levenshtein distance and
// "did you mean" suggestions for unresolved schema references.
//
// Key functions:
//   - NormalizeIdent: normalizes attribute and category names for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names by similarity to an unresolved reference
package match
