package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// IsMultiple returns true if the slice has more than one element.
func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) > 1
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// CloneOrEmpty returns a copy of s, or an empty non-nil slice when s is empty.
// Callers that hand slices out of immutable values use it so the caller can
// never alias internal storage.
func CloneOrEmpty[S ~[]E, E any](s S) S {
	out := make(S, len(s))
	copy(out, s)

	return out
}
