package check

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"category-resolver/internal/category"
	"category-resolver/internal/diagnostic"
	"category-resolver/internal/hierarchy"
	"category-resolver/internal/schema"
)

// linearizer builds a lenient Linearizer over the parent graph of every first
// definition, valid or not, so a cycle through a category NewCategory rejects
// is still found. The second result holds only the records that pass
// construction; invalid definitions are reported by checkNames.
func linearizer(s *schema.Schema) (*hierarchy.Linearizer, map[string]*category.Category) {
	records, _ := s.CategoryRecords()

	skeletons := lo.SliceToMap(firstDefinitions(s), func(def schema.CategoryDef) (string, *category.Category) {
		return def.Name, category.Skeleton(def.Name, def.Parents)
	})

	return hierarchy.New(skeletons, hierarchy.WithLenientReferences()), records
}

func checkHierarchy(s *schema.Schema, d *diagnostic.Diagnostics) {
	lin, _ := linearizer(s)

	seenCycles := make(map[string]bool)
	seenInconsistent := make(map[string]bool)

	for _, name := range lin.Names() {
		_, err := lin.Linearize(name)
		if err == nil {
			continue
		}

		var cycleErr *hierarchy.CycleError
		var inconsistentErr *hierarchy.InconsistentLinearizationError

		switch {
		case errors.As(err, &cycleErr):
			members := cycleErr.Members()

			key := strings.Join(members, "\x00")
			if seenCycles[key] {
				continue
			}

			seenCycles[key] = true
			path := canonicalCycle(cycleErr.Path, members[0])

			d.AddError(CodeInheritanceCycle,
				fmt.Sprintf("inheritance cycle %s", strings.Join(path, " -> ")), members[0], "")

		case errors.As(err, &inconsistentErr):
			if seenInconsistent[inconsistentErr.Category] {
				continue
			}

			seenInconsistent[inconsistentErr.Category] = true

			d.AddError(CodeInconsistentLinearization, inconsistentErr.Error(), inconsistentErr.Category, "")

		default:
			d.AddError(CodeInconsistentLinearization, err.Error(), name, "")
		}
	}
}

// canonicalCycle rotates a closed cycle path so it starts and ends at first.
func canonicalCycle(path []string, first string) []string {
	open := path[:len(path)-1]

	i := slices.Index(open, first)
	if i < 0 {
		return path
	}

	out := make([]string, 0, len(path))
	out = append(out, open[i:]...)
	out = append(out, open[:i]...)

	return append(out, first)
}

func checkPromotions(s *schema.Schema, d *diagnostic.Diagnostics) {
	for _, so := range s.Subobjects {
		for _, name := range category.Overlap(so.RequiredProperties, so.OptionalProperties) {
			d.AddWarning(CodePromotedToRequired,
				fmt.Sprintf("property %q is listed as both required and optional; promoted to required", name),
				so.Name, name)
		}
	}

	lin, records := linearizer(s)

	for _, def := range firstDefinitions(s) {
		for _, kind := range category.Kinds {
			required, optional := def.Lists(kind)

			overlap := category.Overlap(required, optional)
			for _, name := range overlap {
				d.AddWarning(CodePromotedToRequired,
					fmt.Sprintf("%s %q is listed as both required and optional; promoted to required", kind, name),
					def.Name, name)
			}

			ancestors, err := lin.Linearize(def.Name)
			if err != nil || len(ancestors) < 2 {
				continue
			}

			for _, name := range optional {
				if slices.Contains(overlap, name) {
					continue
				}

				owner := requiredBy(records, ancestors[1:], kind, name)
				if owner == "" {
					continue
				}

				d.AddWarning(CodePromotedToRequired,
					fmt.Sprintf("optional %s %q is required by ancestor %q; promoted to required", kind, name, owner),
					def.Name, name)
			}
		}
	}
}

// requiredBy returns the first of ancestors that requires name, or "".
func requiredBy(records map[string]*category.Category, ancestors []string, kind category.Kind, name string) string {
	for _, anc := range ancestors {
		if rec, ok := records[anc]; ok && rec.Attributes(kind).IsRequired(name) {
			return anc
		}
	}

	return ""
}
