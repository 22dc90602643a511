package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Has name", "hasname"},
		{"has_name", "hasname"},
		{"has-name", "hasname"},
		{"HasName", "hasname"},
		{"HAS NAME", "hasname"},
		{"TaxID", "taxid"},
		{"XMLSchema", "xmlschema"},
		{"Has  multiple   spaces", "hasmultiplespaces"},
		{"Foaf:name", "foafname"},
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestNormalizeIdentWithPrefixStrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Has name", "name"},
		{"HasName", "name"},
		{"Is active", "active"},
		{"Has", "has"},
		{"Hash value", "hashvalue"},
		{"Name", "name"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdentWithPrefixStrip(tt.input))
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"TaxID", []string{"Tax", "ID"}},
		{"customerName", []string{"customer", "Name"}},
		{"XMLSchema", []string{"XML", "Schema"}},
		{"Has name", []string{"Has", "name"}},
		{"has_birth_date", []string{"has", "birth", "date"}},
		{"ALLCAPS", []string{"ALLCAPS"}},
		{"", nil},
		{"a", []string{"a"}},
		{"AbC", []string{"Ab", "C"}},
		{"ABcD", []string{"A", "Bc", "D"}},
		{"parseURL", []string{"parse", "URL"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenizeCamelCase(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	assert.Equal(t, []string{"has", "tax", "id"}, TokenizeIdent("Has TaxID"))
	assert.Equal(t, []string{"organization"}, TokenizeIdent("Organization"))
}
