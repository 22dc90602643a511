package check

import (
	"fmt"

	"github.com/samber/lo"

	"category-resolver/internal/category"
	"category-resolver/internal/common"
	"category-resolver/internal/diagnostic"
	"category-resolver/internal/match"
	"category-resolver/internal/schema"
)

func checkNames(s *schema.Schema, d *diagnostic.Diagnostics) {
	for _, p := range s.Properties {
		nameError(d, "property", p.Name, "", p.Name)
	}

	for _, so := range s.Subobjects {
		nameError(d, "subobject", so.Name, so.Name, "")

		for _, ref := range lo.Flatten([][]string{so.RequiredProperties, so.OptionalProperties}) {
			nameError(d, "property", ref, so.Name, ref)
		}
	}

	for i := range s.Categories {
		def := &s.Categories[i]
		nameError(d, "category", def.Name, def.Name, "")

		for _, parent := range def.Parents {
			if parent == def.Name {
				d.AddError(CodeSelfParent,
					fmt.Sprintf("category %q lists itself as a parent", def.Name), def.Name, parent)

				continue
			}

			nameError(d, "parent", parent, def.Name, parent)
		}

		for _, kind := range category.Kinds {
			required, optional := def.Lists(kind)
			for _, ref := range lo.Flatten([][]string{required, optional}) {
				nameError(d, kind.String(), ref, def.Name, ref)
			}
		}
	}
}

// nameError reports name when it breaks the record name rules.
func nameError(d *diagnostic.Diagnostics, what, name, owner, attribute string) {
	if err := category.ValidateName(name); err != nil {
		d.AddError(CodeInvalidName, fmt.Sprintf("%s: %v", what, err), owner, attribute)
	}
}

func checkDuplicates(s *schema.Schema, d *diagnostic.Diagnostics) {
	duplicates(d, CodeDuplicateProperty, "property", s.Properties,
		func(p schema.PropertyDef) (string, string) { return p.Name, p.Source })
	duplicates(d, CodeDuplicateSubobject, "subobject", s.Subobjects,
		func(so schema.SubobjectDef) (string, string) { return so.Name, so.Source })
	duplicates(d, CodeDuplicateCategory, "category", s.Categories,
		func(c schema.CategoryDef) (string, string) { return c.Name, c.Source })
}

func duplicates[T any](d *diagnostic.Diagnostics, code, what string, defs []T, key func(T) (string, string)) {
	sources := make(map[string][]string)

	var order []string

	for _, def := range defs {
		name, src := key(def)
		if _, seen := sources[name]; !seen {
			order = append(order, name)
		}

		sources[name] = append(sources[name], lo.Ternary(src == "", common.UnknownStr, src))
	}

	for _, name := range order {
		if common.IsMultiple(sources[name]) {
			d.AddError(code, fmt.Sprintf("%s %q is defined %d times (%s); the first definition is used",
				what, name, len(sources[name]), common.QuoteList(sources[name])), name, "")
		}
	}
}

func checkParents(s *schema.Schema, d *diagnostic.Diagnostics) {
	known := s.CategoryNames()

	for _, def := range firstDefinitions(s) {
		for _, parent := range lo.Uniq(def.Parents) {
			if parent == def.Name || lo.Contains(known, parent) {
				continue
			}

			d.AddErrorWithSuggestions(CodeMissingParent,
				fmt.Sprintf("parent category %q is not defined", parent),
				def.Name, parent, match.Suggest(parent, known, 0))
		}
	}
}

func checkReferences(s *schema.Schema, d *diagnostic.Diagnostics) {
	properties := s.PropertyNames()
	subobjects := s.SubobjectNames()
	enforceProperties := !common.IsEmpty(properties)

	unknown := func(owner, ref string, kind category.Kind, known []string) {
		code := lo.Ternary(kind == category.KindSubobject, CodeUnknownSubobject, CodeUnknownProperty)
		d.AddErrorWithSuggestions(code, fmt.Sprintf("%s %q is not defined", kind, ref),
			owner, ref, match.Suggest(ref, known, 0))
	}

	for _, def := range firstDefinitions(s) {
		for _, kind := range category.Kinds {
			if kind == category.KindProperty && !enforceProperties {
				continue
			}

			known := lo.Ternary(kind == category.KindSubobject, subobjects, properties)
			required, optional := def.Lists(kind)

			for _, ref := range lo.Uniq(lo.Flatten([][]string{required, optional})) {
				if !lo.Contains(known, ref) {
					unknown(def.Name, ref, kind, known)
				}
			}
		}
	}

	if !enforceProperties {
		return
	}

	for _, so := range lo.UniqBy(s.Subobjects, func(so schema.SubobjectDef) string { return so.Name }) {
		for _, ref := range lo.Uniq(lo.Flatten([][]string{so.RequiredProperties, so.OptionalProperties})) {
			if !lo.Contains(properties, ref) {
				unknown(so.Name, ref, category.KindProperty, properties)
			}
		}
	}
}

func checkUnused(s *schema.Schema, d *diagnostic.Diagnostics) {
	var usedProperties, usedSubobjects []string

	for i := range s.Categories {
		def := &s.Categories[i]
		usedProperties = append(usedProperties, def.RequiredProperties...)
		usedProperties = append(usedProperties, def.OptionalProperties...)
		usedSubobjects = append(usedSubobjects, def.RequiredSubobjects...)
		usedSubobjects = append(usedSubobjects, def.OptionalSubobjects...)
	}

	for _, so := range s.Subobjects {
		usedProperties = append(usedProperties, so.RequiredProperties...)
		usedProperties = append(usedProperties, so.OptionalProperties...)
	}

	for _, name := range lo.Without(s.PropertyNames(), usedProperties...) {
		d.AddWarning(CodeUnusedProperty,
			fmt.Sprintf("property %q is not used by any category or subobject", name), "", name)
	}

	for _, name := range lo.Without(s.SubobjectNames(), usedSubobjects...) {
		d.AddWarning(CodeUnusedSubobject,
			fmt.Sprintf("subobject %q is not used by any category", name), name, "")
	}
}

func checkLabels(s *schema.Schema, d *diagnostic.Diagnostics) {
	for _, def := range firstDefinitions(s) {
		if def.Label == "" {
			d.AddWarning(CodeMissingLabel, "category has no display label", def.Name, "")
		}
	}
}

func checkEmpty(s *schema.Schema, d *diagnostic.Diagnostics) {
	for _, def := range firstDefinitions(s) {
		empty := def.Parents.IsEmpty() &&
			def.RequiredProperties.IsEmpty() && def.OptionalProperties.IsEmpty() &&
			def.RequiredSubobjects.IsEmpty() && def.OptionalSubobjects.IsEmpty()

		if empty {
			d.AddInfo(CodeEmptyCategory, "category has no parents and no attributes", def.Name, "")
		}
	}
}

// firstDefinitions returns the category definitions that record construction
// would use: the first one of each name.
func firstDefinitions(s *schema.Schema) []schema.CategoryDef {
	return lo.UniqBy(s.Categories, func(def schema.CategoryDef) string { return def.Name })
}
