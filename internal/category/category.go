package category

import (
	"errors"
	"fmt"
	"maps"

	"github.com/samber/lo"

	"category-resolver/internal/common"
)

// Metadata is display and form configuration carried through resolution
// untouched. The resolver never interprets it.
type Metadata struct {
	Label       string         `json:"label,omitempty"       yaml:"label,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Display     map[string]any `json:"display,omitempty"     yaml:"display,omitempty"`
	Forms       map[string]any `json:"forms,omitempty"       yaml:"forms,omitempty"`
}

func (m Metadata) clone() Metadata {
	m.Display = maps.Clone(m.Display)
	m.Forms = maps.Clone(m.Forms)

	return m
}

// IsZero reports whether no metadata is set.
func (m Metadata) IsZero() bool {
	return m.Label == "" && m.Description == "" && len(m.Display) == 0 && len(m.Forms) == 0
}

// CategorySpec is the raw input for NewCategory.
type CategorySpec struct {
	Name               string
	Parents            []string
	RequiredProperties []string
	OptionalProperties []string
	RequiredSubobjects []string
	OptionalSubobjects []string
	Metadata           Metadata
}

// Category is an immutable category record.
type Category struct {
	name       string
	parents    []string
	properties Buckets
	subobjects Buckets
	metadata   Metadata
}

// NewCategory validates spec and builds a normalized record. All validation
// failures are returned together. Required/optional overlap is never an
// error; overlapping names are promoted to required.
func NewCategory(spec CategorySpec) (*Category, error) {
	var errs []error

	if err := ValidateName(spec.Name); err != nil {
		errs = append(errs, err)
	}

	for _, parent := range spec.Parents {
		if parent == spec.Name {
			errs = append(errs, fmt.Errorf("%w: %q", ErrSelfParent, spec.Name))
			continue
		}

		if err := ValidateName(parent); err != nil {
			errs = append(errs, fmt.Errorf("parent: %w", err))
		}
	}

	errs = append(errs, validateAttributes(KindProperty, spec.RequiredProperties, spec.OptionalProperties)...)
	errs = append(errs, validateAttributes(KindSubobject, spec.RequiredSubobjects, spec.OptionalSubobjects)...)

	if len(errs) > 0 {
		return nil, fmt.Errorf("category %q: %w", spec.Name, errors.Join(errs...))
	}

	return &Category{
		name:       spec.Name,
		parents:    lo.Uniq(spec.Parents),
		properties: NewBuckets(spec.RequiredProperties, spec.OptionalProperties),
		subobjects: NewBuckets(spec.RequiredSubobjects, spec.OptionalSubobjects),
		metadata:   spec.Metadata.clone(),
	}, nil
}

// MustCategory is like NewCategory but panics on error. Intended for tests
// and static fixtures.
func MustCategory(spec CategorySpec) *Category {
	c, err := NewCategory(spec)
	if err != nil {
		panic(err)
	}

	return c
}

// Empty returns the record used for a name nothing defines: no parents, no
// attributes, no metadata.
func Empty(name string) *Category {
	return &Category{name: name}
}

// Skeleton returns an unvalidated record carrying only name and its distinct
// parents. Self-references are dropped. It lets hierarchy analysis cover
// definitions NewCategory rejects.
func Skeleton(name string, parents []string) *Category {
	return &Category{
		name:    name,
		parents: lo.Without(lo.Uniq(parents), name),
	}
}

func validateAttributes(kind Kind, lists ...[]string) []error {
	var errs []error

	for _, list := range lists {
		for _, name := range list {
			if err := ValidateName(name); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", kind, err))
			}
		}
	}

	return errs
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Parents returns a copy of the declared parents in declaration order.
func (c *Category) Parents() []string {
	return common.CloneOrEmpty(c.parents)
}

// HasParents reports whether the category declares any parent.
func (c *Category) HasParents() bool {
	return len(c.parents) > 0
}

// Properties returns the property buckets.
func (c *Category) Properties() Buckets {
	return c.properties
}

// Subobjects returns the subobject buckets.
func (c *Category) Subobjects() Buckets {
	return c.subobjects
}

// Attributes returns the buckets of the given kind.
func (c *Category) Attributes(kind Kind) Buckets {
	if kind == KindSubobject {
		return c.subobjects
	}

	return c.properties
}

// Metadata returns a copy of the pass-through metadata.
func (c *Category) Metadata() Metadata {
	return c.metadata.clone()
}

// IsEmpty reports whether the category declares no attributes of either kind.
func (c *Category) IsEmpty() bool {
	return c.properties.IsEmpty() && c.subobjects.IsEmpty()
}

// String returns the category name.
func (c *Category) String() string {
	return c.name
}

// SubobjectSpec is the raw input for NewSubobject.
type SubobjectSpec struct {
	Name               string
	RequiredProperties []string
	OptionalProperties []string
	Label              string
}

// Subobject is an immutable, non-inheriting group of properties.
type Subobject struct {
	name       string
	properties Buckets
	label      string
}

// NewSubobject validates spec and builds a normalized record using the same
// promotion rule as NewCategory.
func NewSubobject(spec SubobjectSpec) (*Subobject, error) {
	var errs []error

	if err := ValidateName(spec.Name); err != nil {
		errs = append(errs, err)
	}

	errs = append(errs, validateAttributes(KindProperty, spec.RequiredProperties, spec.OptionalProperties)...)

	if len(errs) > 0 {
		return nil, fmt.Errorf("subobject %q: %w", spec.Name, errors.Join(errs...))
	}

	return &Subobject{
		name:       spec.Name,
		properties: NewBuckets(spec.RequiredProperties, spec.OptionalProperties),
		label:      spec.Label,
	}, nil
}

// Name returns the subobject name.
func (s *Subobject) Name() string {
	return s.name
}

// Properties returns the property buckets.
func (s *Subobject) Properties() Buckets {
	return s.properties
}

// Label returns the display label.
func (s *Subobject) Label() string {
	return s.label
}
