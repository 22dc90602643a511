package check

import (
	"category-resolver/internal/diagnostic"
	"category-resolver/internal/schema"
)

// Rule inspects a schema and records findings.
type Rule func(s *schema.Schema, d *diagnostic.Diagnostics)

// Builtin returns the built-in rules in the order Check runs them.
func Builtin() []Rule {
	return []Rule{
		checkNames,
		checkDuplicates,
		checkParents,
		checkReferences,
		checkHierarchy,
		checkPromotions,
		checkUnused,
		checkLabels,
		checkEmpty,
	}
}

// Check runs the built-in rules followed by extra and returns the sorted
// findings. A nil schema is checked as an empty one.
func Check(s *schema.Schema, extra ...Rule) *diagnostic.Diagnostics {
	return Run(s, append(Builtin(), extra...)...)
}

// Run runs exactly the given rules.
func Run(s *schema.Schema, rules ...Rule) *diagnostic.Diagnostics {
	if s == nil {
		s = schema.New()
	}

	d := &diagnostic.Diagnostics{}
	for _, rule := range rules {
		rule(s, d)
	}

	d.Sort()

	return d
}
