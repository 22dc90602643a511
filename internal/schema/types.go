package schema

import (
	"category-resolver/internal/category"
)

// CurrentVersion is the only schema file version understood.
const CurrentVersion = "1"

// File represents one schema source file.
type File struct {
	// Version of the schema format. Defaults to "1".
	Version string `json:"version" yaml:"version"`
	// Properties declares the known property names.
	Properties []PropertyDef `json:"properties,omitempty" yaml:"properties,omitempty"`
	// Subobjects declares the structured attribute groups.
	Subobjects []SubobjectDef `json:"subobjects,omitempty" yaml:"subobjects,omitempty"`
	// Categories declares the categories.
	Categories []CategoryDef `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// PropertyDef declares a property. Property identity is global: a name means
// the same thing in every category that uses it.
type PropertyDef struct {
	Name     string `json:"name"               yaml:"name"`
	Datatype string `json:"datatype,omitempty" yaml:"datatype,omitempty"`
	Label    string `json:"label,omitempty"    yaml:"label,omitempty"`

	// Source is the file the definition was loaded from.
	Source string `json:"-" yaml:"-"`
}

// SubobjectDef declares a subobject.
type SubobjectDef struct {
	Name               string        `json:"name"                          yaml:"name"`
	Label              string        `json:"label,omitempty"               yaml:"label,omitempty"`
	RequiredProperties StringOrArray `json:"required_properties,omitempty" yaml:"required_properties,omitempty"`
	OptionalProperties StringOrArray `json:"optional_properties,omitempty" yaml:"optional_properties,omitempty"`

	// Source is the file the definition was loaded from.
	Source string `json:"-" yaml:"-"`
}

// Spec converts the definition into record constructor input.
func (d *SubobjectDef) Spec() category.SubobjectSpec {
	return category.SubobjectSpec{
		Name:               d.Name,
		RequiredProperties: d.RequiredProperties,
		OptionalProperties: d.OptionalProperties,
		Label:              d.Label,
	}
}

// CategoryDef declares a category.
type CategoryDef struct {
	Name               string         `json:"name"                          yaml:"name"`
	Label              string         `json:"label,omitempty"               yaml:"label,omitempty"`
	Description        string         `json:"description,omitempty"         yaml:"description,omitempty"`
	Parents            StringOrArray  `json:"parents,omitempty"             yaml:"parents,omitempty"`
	RequiredProperties StringOrArray  `json:"required_properties,omitempty" yaml:"required_properties,omitempty"`
	OptionalProperties StringOrArray  `json:"optional_properties,omitempty" yaml:"optional_properties,omitempty"`
	RequiredSubobjects StringOrArray  `json:"required_subobjects,omitempty" yaml:"required_subobjects,omitempty"`
	OptionalSubobjects StringOrArray  `json:"optional_subobjects,omitempty" yaml:"optional_subobjects,omitempty"`
	Display            map[string]any `json:"display,omitempty"             yaml:"display,omitempty"`
	Forms              map[string]any `json:"forms,omitempty"               yaml:"forms,omitempty"`

	// Source is the file the definition was loaded from.
	Source string `json:"-" yaml:"-"`
}

// Spec converts the definition into record constructor input.
func (d *CategoryDef) Spec() category.CategorySpec {
	return category.CategorySpec{
		Name:               d.Name,
		Parents:            d.Parents,
		RequiredProperties: d.RequiredProperties,
		OptionalProperties: d.OptionalProperties,
		RequiredSubobjects: d.RequiredSubobjects,
		OptionalSubobjects: d.OptionalSubobjects,
		Metadata: category.Metadata{
			Label:       d.Label,
			Description: d.Description,
			Display:     d.Display,
			Forms:       d.Forms,
		},
	}
}

// Lists returns the declared required and optional lists of the given kind.
func (d *CategoryDef) Lists(kind category.Kind) (required, optional []string) {
	if kind == category.KindSubobject {
		return d.RequiredSubobjects, d.OptionalSubobjects
	}

	return d.RequiredProperties, d.OptionalProperties
}

// FromCategory renders a record, typically an effective one, back into a
// definition. Parents are omitted when flatten is true since every inherited
// attribute is already present.
func FromCategory(c *category.Category, flatten bool) CategoryDef {
	md := c.Metadata()

	def := CategoryDef{
		Name:               c.Name(),
		Label:              md.Label,
		Description:        md.Description,
		RequiredProperties: c.Properties().Required(),
		OptionalProperties: c.Properties().Optional(),
		RequiredSubobjects: c.Subobjects().Required(),
		OptionalSubobjects: c.Subobjects().Optional(),
		Display:            md.Display,
		Forms:              md.Forms,
	}

	if !flatten {
		def.Parents = c.Parents()
	}

	return def
}
