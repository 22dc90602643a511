// Package compose combines several categories into one resolution result:
// the attributes an entity carries when it belongs to all of them at once.
//
// Each requested category contributes its effective record, as computed by
// a [hierarchy.Linearizer]. Attributes accumulate in first-seen order across
// categories, every declaring category is recorded as a source, and an
// attribute that is required anywhere ends up required only.
//
// No datatype conflict detection is done. Attribute names are global: a name
// means one shared definition wherever it appears.
package compose
