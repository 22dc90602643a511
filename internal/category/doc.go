// Package category provides the immutable Category and Subobject records and
// the merge rule used to fold an inheritance chain into one effective record.
//
// A record is built once from a source definition and never changes. The
// constructor normalizes its attribute buckets:
//
//   - duplicate names within a bucket collapse to their first occurrence
//   - a name listed as both required and optional is kept as required only
//
// The second rule ("required wins") never produces an error. It is applied
// again by [Merge] across inheritance boundaries: an attribute required by
// any ancestor stays required in the merged record, even when a more
// specific category lists it as optional.
//
// Attributes come in two kinds, plain properties and structured
// subobjects; both follow identical rules, evaluated independently.
package category
