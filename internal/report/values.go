package report

import (
	"category-resolver/internal/category"
	"category-resolver/internal/schema"
)

// Document wraps a rendered value with the schema it was computed from.
type Document struct {
	Digest  string   `json:"digest"  yaml:"digest"`
	Sources []string `json:"sources" yaml:"sources"`
	Data    any      `json:"data"    yaml:"data"`
}

// Linearization is the ancestor order of one category.
type Linearization struct {
	Category string   `json:"category" yaml:"category"`
	Order    []string `json:"order"    yaml:"order"`
}

// Effective is a category with every ancestor folded in. Metadata, when
// set, replaces the record's own metadata in output; it holds the
// ancestors' metadata folded most-specific-wins.
type Effective struct {
	Category *category.Category
	Metadata category.Metadata
}

func (e Effective) metadata() category.Metadata {
	if e.Metadata.IsZero() {
		return e.Category.Metadata()
	}

	return e.Metadata
}

func (e Effective) definition() schema.CategoryDef {
	def := schema.FromCategory(e.Category, true)

	md := e.metadata()
	def.Label, def.Description = md.Label, md.Description
	def.Display, def.Forms = md.Display, md.Forms

	return def
}

// Order is a parents-first ordering of every category.
type Order []string

// view maps a value to its serializable form.
func view(v any) any {
	switch v := v.(type) {
	case Effective:
		return v.definition()
	case []Effective:
		out := make([]schema.CategoryDef, len(v))
		for i, e := range v {
			out[i] = e.definition()
		}

		return out
	case Document:
		v.Data = view(v.Data)
		return v
	default:
		return v
	}
}
