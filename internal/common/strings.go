package common

import "strings"

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// QuoteList renders names as a comma-separated list of quoted strings,
// e.g. `"Has name", "Has age"`.
func QuoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = `"` + n + `"`
	}

	return strings.Join(quoted, ", ")
}
