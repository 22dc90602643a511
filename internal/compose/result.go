package compose

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/samber/lo"

	"category-resolver/internal/category"
	"category-resolver/internal/common"
)

// Result is the immutable outcome of one Resolve call. Every accessor
// returns a copy, so a Result can be shared freely between readers.
type Result struct {
	categoryNames []string
	properties    *accumulator
	subobjects    *accumulator
}

func (r *Result) kind(kind category.Kind) *accumulator {
	if kind == category.KindSubobject {
		return r.subobjects
	}

	return r.properties
}

// CategoryNames returns the requested names exactly as given.
func (r *Result) CategoryNames() []string {
	return common.CloneOrEmpty(r.categoryNames)
}

// Required returns the required names of kind in first-seen order.
func (r *Result) Required(kind category.Kind) []string {
	return common.CloneOrEmpty(r.kind(kind).required)
}

// Optional returns the optional names of kind in first-seen order. No name
// here is also required.
func (r *Result) Optional(kind category.Kind) []string {
	return common.CloneOrEmpty(r.kind(kind).optional)
}

// Sources returns the categories declaring name, in request order. Unknown
// names have no sources.
func (r *Result) Sources(kind category.Kind, name string) []string {
	return common.CloneOrEmpty(r.kind(kind).sources[name])
}

// IsShared reports whether more than one requested category declares name.
func (r *Result) IsShared(kind category.Kind, name string) bool {
	return common.IsMultiple(r.kind(kind).sources[name])
}

// Shared returns every shared name of kind, required names first.
func (r *Result) Shared(kind category.Kind) []string {
	acc := r.kind(kind)

	return lo.Filter(append(slices.Clone(acc.required), acc.optional...), func(name string, _ int) bool {
		return common.IsMultiple(acc.sources[name])
	})
}

// RequiredProperties returns the required property names.
func (r *Result) RequiredProperties() []string { return r.Required(category.KindProperty) }

// OptionalProperties returns the optional property names.
func (r *Result) OptionalProperties() []string { return r.Optional(category.KindProperty) }

// PropertySources returns the categories declaring property name.
func (r *Result) PropertySources(name string) []string {
	return r.Sources(category.KindProperty, name)
}

// IsSharedProperty reports whether property name comes from more than one category.
func (r *Result) IsSharedProperty(name string) bool {
	return r.IsShared(category.KindProperty, name)
}

// RequiredSubobjects returns the required subobject names.
func (r *Result) RequiredSubobjects() []string { return r.Required(category.KindSubobject) }

// OptionalSubobjects returns the optional subobject names.
func (r *Result) OptionalSubobjects() []string { return r.Optional(category.KindSubobject) }

// SubobjectSources returns the categories declaring subobject name.
func (r *Result) SubobjectSources(name string) []string {
	return r.Sources(category.KindSubobject, name)
}

// IsSharedSubobject reports whether subobject name comes from more than one category.
func (r *Result) IsSharedSubobject(name string) bool {
	return r.IsShared(category.KindSubobject, name)
}

// IsEmpty reports whether no attribute of either kind was collected.
func (r *Result) IsEmpty() bool {
	return len(r.properties.sources) == 0 && len(r.subobjects.sources) == 0
}

// View is the serializable form of a Result.
type View struct {
	Categories []string `json:"categories" yaml:"categories"`
	Properties KindView `json:"properties" yaml:"properties"`
	Subobjects KindView `json:"subobjects" yaml:"subobjects"`
}

// KindView is the serializable form of one attribute kind.
type KindView struct {
	Required []string            `json:"required"          yaml:"required"`
	Optional []string            `json:"optional"          yaml:"optional"`
	Sources  map[string][]string `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// View returns a detached serializable copy of the result.
func (r *Result) View() View {
	return View{
		Categories: r.CategoryNames(),
		Properties: r.kindView(category.KindProperty),
		Subobjects: r.kindView(category.KindSubobject),
	}
}

func (r *Result) kindView(kind category.Kind) KindView {
	acc := r.kind(kind)

	sources := make(map[string][]string, len(acc.sources))
	for name, src := range acc.sources {
		sources[name] = slices.Clone(src)
	}

	return KindView{
		Required: r.Required(kind),
		Optional: r.Optional(kind),
		Sources:  sources,
	}
}

// MarshalJSON renders the View. Map keys are sorted by encoding/json.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.View())
}

// MarshalYAML renders the View. Map keys are sorted by the encoder.
func (r *Result) MarshalYAML() (any, error) {
	return r.View(), nil
}

// SourceNames returns the attribute names of kind that have sources, sorted.
func (r *Result) SourceNames(kind category.Kind) []string {
	return slices.Sorted(maps.Keys(r.kind(kind).sources))
}
