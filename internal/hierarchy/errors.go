package hierarchy

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrCycle matches every CycleError.
	ErrCycle = errors.New("inheritance cycle")
	// ErrInconsistent matches every InconsistentLinearizationError.
	ErrInconsistent = errors.New("inconsistent linearization")
	// ErrMissingReference matches every ReferenceError.
	ErrMissingReference = errors.New("missing reference")
)

// CycleError reports a category that reaches a cycle through its parents.
type CycleError struct {
	// Category is the category being linearized.
	Category string
	// Path is the closed cycle, first element repeated at the end.
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("category %q: inheritance cycle %s", e.Category, strings.Join(e.Path, " -> "))
}

func (e *CycleError) Unwrap() error {
	return ErrCycle
}

// Members returns the distinct categories on the cycle, sorted. Two
// CycleErrors describe the same cycle iff their members are equal.
func (e *CycleError) Members() []string {
	members := slices.Clone(e.Path)
	slices.Sort(members)

	return slices.Compact(members)
}

// InconsistentLinearizationError reports a declaration for which the C3
// merge cannot pick a next element.
type InconsistentLinearizationError struct {
	Category string
	// Remaining holds the sequences left when the merge got stuck.
	Remaining [][]string
}

func (e *InconsistentLinearizationError) Error() string {
	parts := make([]string, len(e.Remaining))
	for i, seq := range e.Remaining {
		parts[i] = "[" + strings.Join(seq, " ") + "]"
	}

	return fmt.Sprintf("category %q: cannot linearize parents, conflicting orders %s",
		e.Category, strings.Join(parts, ", "))
}

func (e *InconsistentLinearizationError) Unwrap() error {
	return ErrInconsistent
}

// ReferenceError reports a reference to a name absent from the supplied maps.
type ReferenceError struct {
	Category string
	// Kind is what the reference is: "parent", "property" or "subobject".
	Kind string
	Name string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("category %q: %s %q not found", e.Category, e.Kind, e.Name)
}

func (e *ReferenceError) Unwrap() error {
	return ErrMissingReference
}
