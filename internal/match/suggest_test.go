package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	known := []string{"Entity", "Person", "Organization", "Has name", "Has email", "Student"}

	tests := []struct {
		name     string
		input    string
		limit    int
		expected []string
	}{
		{
			name:     "single typo",
			input:    "Entiti",
			expected: []string{"Entity"},
		},
		{
			name:     "separator and case differences",
			input:    "has_name",
			expected: []string{"Has name"},
		},
		{
			name:     "predicate prefix dropped",
			input:    "Email",
			expected: []string{"Has email"},
		},
		{
			name:     "british spelling",
			input:    "Organisation",
			expected: []string{"Organization"},
		},
		{
			name:     "nothing close",
			input:    "Vehicle",
			expected: []string{},
		},
		{
			name:     "exact name is not suggested",
			input:    "Person",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.input, known, tt.limit))
		})
	}
}

func TestSuggest_LimitAndOrder(t *testing.T) {
	known := []string{"Has nameb", "Has namea", "Has name"}

	// All three are one edit away; equal scores fall back to name order.
	got := Suggest("Has namex", known, 2)
	assert.Equal(t, []string{"Has name", "Has namea"}, got)
}
