package category

import (
	"slices"

	"github.com/samber/lo"

	"category-resolver/internal/common"
)

// Buckets holds the required and optional names of one attribute kind.
// Both lists are ordered and duplicate-free, and no name is in both.
type Buckets struct {
	required []string
	optional []string
}

// NewBuckets normalizes the given lists: duplicates collapse to their first
// occurrence and names present in both lists are kept as required only.
func NewBuckets(required, optional []string) Buckets {
	req := lo.Uniq(required)

	return Buckets{
		required: req,
		optional: lo.Without(lo.Uniq(optional), req...),
	}
}

// Overlap returns the names listed in both required and optional, in
// optional order, before any promotion. These are the names NewBuckets
// promotes to required.
func Overlap(required, optional []string) []string {
	return lo.Uniq(lo.Filter(optional, func(name string, _ int) bool {
		return slices.Contains(required, name)
	}))
}

// Required returns a copy of the required names.
func (b Buckets) Required() []string {
	return common.CloneOrEmpty(b.required)
}

// Optional returns a copy of the optional names.
func (b Buckets) Optional() []string {
	return common.CloneOrEmpty(b.optional)
}

// All returns required names followed by optional names.
func (b Buckets) All() []string {
	out := make([]string, 0, b.Len())
	out = append(out, b.required...)

	return append(out, b.optional...)
}

// IsRequired reports whether name is in the required bucket.
func (b Buckets) IsRequired(name string) bool {
	return slices.Contains(b.required, name)
}

// IsOptional reports whether name is in the optional bucket.
func (b Buckets) IsOptional(name string) bool {
	return slices.Contains(b.optional, name)
}

// Has reports whether name is in either bucket.
func (b Buckets) Has(name string) bool {
	return b.IsRequired(name) || b.IsOptional(name)
}

// Len returns the total number of names.
func (b Buckets) Len() int {
	return len(b.required) + len(b.optional)
}

// IsEmpty returns true if both buckets are empty.
func (b Buckets) IsEmpty() bool {
	return b.Len() == 0
}

// mergeBuckets applies the required-wins union: parent names first, then
// child names not already present; optional loses anything required.
func mergeBuckets(parent, child Buckets) Buckets {
	required := lo.Uniq(slices.Concat(parent.required, child.required))
	optional := lo.Uniq(slices.Concat(parent.optional, child.optional))

	return Buckets{
		required: required,
		optional: lo.Without(optional, required...),
	}
}
