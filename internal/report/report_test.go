package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"category-resolver/internal/category"
	"category-resolver/internal/compose"
	"category-resolver/internal/diagnostic"
	"category-resolver/internal/hierarchy"
)

func fixture(t *testing.T) (*hierarchy.Linearizer, *compose.Result) {
	t.Helper()

	records := map[string]*category.Category{}
	for _, spec := range []category.CategorySpec{
		{Name: "Entity", RequiredProperties: []string{"ID"}},
		{Name: "Person", Parents: []string{"Entity"}, RequiredProperties: []string{"Name"}, Metadata: category.Metadata{Label: "Person"}},
		{Name: "Organization", Parents: []string{"Entity"}, RequiredProperties: []string{"TaxID"}},
	} {
		records[spec.Name] = category.MustCategory(spec)
	}

	lin := hierarchy.New(records)

	res, err := compose.New(lin).Resolve([]string{"Person", "Organization"})
	require.NoError(t, err)

	return lin, res
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "text", want: FormatText},
		{in: "JSON", want: FormatJSON},
		{in: " yaml ", want: FormatYAML},
		{in: "yml", want: FormatYAML},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "text, json, yaml")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderText_Result(t *testing.T) {
	_, res := fixture(t)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(FormatText).Render(&buf, res))

	want := `categories: Person, Organization
properties:
  required:
    ID     from Person, Organization (shared)
    Name   from Person
    TaxID  from Organization
  optional:
    -
subobjects:
  required:
    -
  optional:
    -
`
	assert.Equal(t, want, buf.String())
}

func TestRenderText_Diagnostics(t *testing.T) {
	d := &diagnostic.Diagnostics{}
	d.AddErrorWithSuggestions("missing_parent", `parent category "Entiti" is not defined`, "Person", "Entiti", []string{"Entity"})
	d.AddWarning("missing_label", "category has no display label", "Person", "")

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(FormatText).Render(&buf, d))

	want := `error   [Person] Entiti: [missing_parent] parent category "Entiti" is not defined (did you mean "Entity"?)
warning [Person]: [missing_label] category has no display label
1 error, 1 warning, 0 infos
`
	assert.Equal(t, want, buf.String())
}

func TestRenderText_Hierarchy(t *testing.T) {
	lin, _ := fixture(t)

	order, err := lin.Linearize("Person")
	require.NoError(t, err)

	eff, err := lin.Effective("Person")
	require.NoError(t, err)

	var buf bytes.Buffer
	r := NewRenderer(FormatText)

	doc := Document{Digest: "0123456789abcdef", Sources: []string{"a.yaml"}, Data: Linearization{Category: "Person", Order: order}}
	require.NoError(t, r.Render(&buf, doc))
	require.NoError(t, r.Render(&buf, Effective{Category: eff}))
	require.NoError(t, r.Render(&buf, Order{"Entity", "Person"}))

	want := `schema 0123456789ab (1 sources)
Person: Person -> Entity
Person (parents: Entity)
  required properties: ID, Name
  optional properties: -
  required subobjects: -
  optional subobjects: -
  label: Person
  1  Entity
  2  Person
`
	assert.Equal(t, want, buf.String())
}

func TestRenderText_Unsupported(t *testing.T) {
	err := NewRenderer(FormatText).Render(&bytes.Buffer{}, 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot render int")
}

func TestRender_JSON(t *testing.T) {
	lin, res := fixture(t)

	eff, err := lin.Effective("Person")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, Document{Digest: "d", Sources: []string{"a.yaml"}, Data: Effective{Category: eff}}))

	assert.JSONEq(t, `{
		"digest": "d",
		"sources": ["a.yaml"],
		"data": {"name": "Person", "label": "Person", "required_properties": ["ID", "Name"]}
	}`, buf.String())

	buf.Reset()
	require.NoError(t, Render(&buf, FormatJSON, res))

	var decoded compose.View
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []string{"ID", "Name", "TaxID"}, decoded.Properties.Required)
}

func TestRender_EffectiveMetadata(t *testing.T) {
	lin, _ := fixture(t)

	eff, err := lin.Effective("Person")
	require.NoError(t, err)

	folded := Effective{Category: eff, Metadata: category.Metadata{
		Label:       "Human",
		Description: "A person",
		Display:     map[string]any{"icon": "user"},
	}}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, folded))
	assert.JSONEq(t, `{
		"name": "Person",
		"label": "Human",
		"description": "A person",
		"required_properties": ["ID", "Name"],
		"display": {"icon": "user"}
	}`, buf.String())

	buf.Reset()
	require.NoError(t, NewRenderer(FormatText).Render(&buf, folded))
	assert.Contains(t, buf.String(), "  label: Human\n")
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, []Linearization{{Category: "Person", Order: []string{"Person", "Entity"}}}))

	var decoded []Linearization
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []Linearization{{Category: "Person", Order: []string{"Person", "Entity"}}}, decoded)
}

func TestRender_Color(t *testing.T) {
	d := &diagnostic.Diagnostics{}
	d.AddError("x", "boom", "", "")

	var plain, colored bytes.Buffer
	require.NoError(t, NewRenderer(FormatText, WithColor(false)).Render(&plain, d))
	require.NoError(t, NewRenderer(FormatText, WithColor(true)).Render(&colored, d))

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[")
	assert.False(t, ColorEnabled(&plain))
}

func TestRender_UnknownFormat(t *testing.T) {
	err := NewRenderer(Format("xml")).Render(&bytes.Buffer{}, Order{})
	require.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")
	require.NoError(t, WriteFile(path, []byte("{}")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
