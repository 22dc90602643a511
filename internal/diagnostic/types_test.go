package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndValidity(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("promoted_to_required", `"x" promoted to required`, "Person", "x")
	assert.True(t, d.IsValid())
	assert.True(t, d.HasWarnings())

	d.AddError("missing_parent", `parent "Entiti" not found`, "Person", "Entiti")
	assert.False(t, d.IsValid())
	assert.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[missing_parent]")
	assert.Contains(t, err.Error(), "[Person] Entiti")
}

func TestDiagnostic_StringWithSuggestions(t *testing.T) {
	var d Diagnostics
	d.AddErrorWithSuggestions("missing_parent", `parent "Entiti" not found`, "Person", "Entiti", []string{"Entity"})

	require.Len(t, d.Errors, 1)
	assert.Equal(t,
		`[Person] Entiti: [missing_parent] parent "Entiti" not found (did you mean "Entity"?)`,
		d.Errors[0].String())
}

func TestDiagnostics_MergeAndCodes(t *testing.T) {
	var a, b Diagnostics
	a.AddError("e1", "m", "", "")
	b.AddWarning("w1", "m", "", "")
	b.AddInfo("i1", "m", "", "")

	a.Merge(b)
	assert.Equal(t, []string{"e1", "w1", "i1"}, a.Codes())
}

func TestDiagnostics_Sort(t *testing.T) {
	var d Diagnostics
	d.AddWarning("b", "m", "Zeta", "")
	d.AddWarning("a", "m", "Alpha", "y")
	d.AddWarning("a", "m", "Alpha", "x")

	d.Sort()
	assert.Equal(t, "Alpha", d.Warnings[0].Category)
	assert.Equal(t, "x", d.Warnings[0].Attribute)
	assert.Equal(t, "Zeta", d.Warnings[2].Category)
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity DiagnosticSeverity
		expected string
	}{
		{DiagnosticInfo, "info"},
		{DiagnosticWarning, "warning"},
		{DiagnosticError, "error"},
		{DiagnosticSeverity(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.String())

			text, err := tt.severity.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(text))

			var back DiagnosticSeverity
			if tt.expected == "unknown" {
				require.Error(t, back.UnmarshalText(text))
				return
			}

			require.NoError(t, back.UnmarshalText(text))
			assert.Equal(t, tt.severity, back)
		})
	}
}
