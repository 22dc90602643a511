// Package hierarchy computes ancestor orders and effective records for
// categories with multiple inheritance.
//
// A [Linearizer] is built over an immutable name-to-record map. For one
// category it produces a C3 linearization: the category first, then every
// transitive ancestor exactly once, so that each category precedes its
// parents and parents keep their declaration order. The effective record is
// obtained by folding that order root-first with [category.Merge].
//
// Failure modes, each a distinct error type:
//
//   - [CycleError]: a category is reachable from itself through parents
//   - [InconsistentLinearizationError]: no C3 order exists although the
//     graph is acyclic
//   - [ReferenceError]: a declared parent is not in the map (strict mode)
//
// Results are memoized per name for the lifetime of the Linearizer; build a
// new Linearizer for a new map.
package hierarchy
