package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"category-resolver/internal/compose"
	"category-resolver/internal/diagnostic"
	"category-resolver/internal/report"
	"category-resolver/internal/schema"
)

const validSchema = `
properties:
  - name: ID
  - name: Name
  - name: TaxID
categories:
  - name: Entity
    label: Entity
    required_properties: [ID]
  - name: Person
    label: Person
    parents: [Entity]
    required_properties: [Name]
  - name: Organization
    label: Organization
    parents: [Entity]
    required_properties: [TaxID]
`

const brokenSchema = `
categories:
  - name: A
    label: A
    parents: [B]
  - name: B
    label: B
    parents: [A]
`

// attributeSchema references an undefined subobject and an undeclared property.
const attributeSchema = `
properties:
  - name: Name
subobjects:
  - name: Address
categories:
  - name: A
    required_subobjects: [Adress]
  - name: B
    parents: [A]
  - name: C
    required_properties: [Nmae]
`

func schemaFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

// decode reads a JSON document and returns its data payload.
func decode[T any](t *testing.T, out string) T {
	t.Helper()

	var doc struct {
		Digest string `json:"digest"`
		Data   T      `json:"data"`
	}

	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Digest, 64)

	return doc.Data
}

func TestResolveCommand(t *testing.T) {
	path := schemaFile(t, validSchema)

	out, err := execute(t, "resolve", "Person", "Organization", "-s", path, "-o", "json")
	require.NoError(t, err)

	view := decode[compose.View](t, out)
	assert.Equal(t, []string{"Person", "Organization"}, view.Categories)
	assert.Equal(t, []string{"ID", "Name", "TaxID"}, view.Properties.Required)
	assert.Equal(t, []string{"Person", "Organization"}, view.Properties.Sources["ID"])
}

func TestLinearizeCommand(t *testing.T) {
	path := schemaFile(t, validSchema)

	out, err := execute(t, "linearize", "-s", path, "-o", "json")
	require.NoError(t, err)

	got := decode[[]report.Linearization](t, out)
	assert.Equal(t, []report.Linearization{
		{Category: "Entity", Order: []string{"Entity"}},
		{Category: "Organization", Order: []string{"Organization", "Entity"}},
		{Category: "Person", Order: []string{"Person", "Entity"}},
	}, got)
}

func TestEffectiveCommand(t *testing.T) {
	path := schemaFile(t, validSchema)

	out, err := execute(t, "effective", "Person", "-s", path, "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Person (parents: Entity)")
	assert.Contains(t, out, "required properties: ID, Name")
}

func TestEffectiveCommand_FoldsMetadata(t *testing.T) {
	path := schemaFile(t, `
categories:
  - name: Entity
    label: Entity
    description: Anything with an ID
    display: {icon: box, order: 1}
  - name: Person
    label: Person
    parents: [Entity]
    display: {icon: user}
`)

	out, err := execute(t, "effective", "Person", "-s", path, "-o", "json")
	require.NoError(t, err)

	got := decode[[]schema.CategoryDef](t, out)
	require.Len(t, got, 1)
	assert.Equal(t, "Person", got[0].Label)
	assert.Equal(t, "Anything with an ID", got[0].Description)
	assert.Equal(t, map[string]any{"icon": "user", "order": float64(1)}, got[0].Display)
}

func TestOrderCommand(t *testing.T) {
	path := schemaFile(t, validSchema)

	out, err := execute(t, "order", "-s", path, "-o", "yaml")
	require.NoError(t, err)

	var doc struct {
		Sources []string `yaml:"sources"`
		Data    []string `yaml:"data"`
	}

	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []string{path}, doc.Sources)
	assert.Equal(t, []string{"Entity", "Organization", "Person"}, doc.Data)
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check", "-s", schemaFile(t, validSchema), "-o", "json")
	require.NoError(t, err)

	d := decode[diagnostic.Diagnostics](t, out)
	assert.Empty(t, d.Errors)

	out, err = execute(t, "check", "-s", schemaFile(t, brokenSchema), "-o", "json")
	require.ErrorIs(t, err, errFindings)

	d = decode[diagnostic.Diagnostics](t, out)
	require.Len(t, d.Errors, 1)
	assert.Equal(t, "inheritance_cycle", d.Errors[0].Code)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no schema", args: []string{"order"}, want: "no schema sources"},
		{name: "bad format", args: []string{"order", "-s", "x", "-o", "xml"}, want: "unknown output format"},
		{name: "cycle", args: []string{"resolve", "A", "-s", "BROKEN"}, want: "inheritance cycle"},
		{name: "missing parent", args: []string{"linearize", "A", "-s", "DANGLING"}, want: `parent "Missing" not found`},
		{name: "missing subobject", args: []string{"effective", "B", "-s", "ATTRS"}, want: `category "A": subobject "Adress" not found`},
		{name: "undeclared property", args: []string{"resolve", "C", "-s", "ATTRS"}, want: `property "Nmae" not found`},
	}

	broken := schemaFile(t, brokenSchema)
	dangling := schemaFile(t, "categories:\n  - name: A\n    parents: [Missing]\n")
	attrs := schemaFile(t, attributeSchema)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, arg := range tt.args {
				switch arg {
				case "BROKEN":
					tt.args[i] = broken
				case "DANGLING":
					tt.args[i] = dangling
				case "ATTRS":
					tt.args[i] = attrs
				}
			}

			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLenientFlag(t *testing.T) {
	path := schemaFile(t, "categories:\n  - name: A\n    parents: [Missing]\n    required_properties: [x]\n")

	out, err := execute(t, "linearize", "A", "-s", path, "--lenient", "-o", "json")
	require.NoError(t, err)

	got := decode[[]report.Linearization](t, out)
	assert.Equal(t, []string{"A", "Missing"}, got[0].Order)
}

func TestLenientFlag_SkipsAttributeReferences(t *testing.T) {
	path := schemaFile(t, attributeSchema)

	out, err := execute(t, "resolve", "B", "C", "-s", path, "--lenient", "-o", "json")
	require.NoError(t, err)

	view := decode[compose.View](t, out)
	assert.Equal(t, []string{"Nmae"}, view.Properties.Required)
	assert.Equal(t, []string{"Adress"}, view.Subobjects.Required)
}

func TestOutFile(t *testing.T) {
	path := schemaFile(t, validSchema)
	target := filepath.Join(t.TempDir(), "out", "result.json")

	out, err := execute(t, "resolve", "Person", "-s", path, "-o", "json", "--out", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)

	view := decode[compose.View](t, string(data))
	assert.Equal(t, []string{"ID", "Name"}, view.Properties.Required)
}

func TestRunExitCodes(t *testing.T) {
	assert.Equal(t, exitFindings, run(context.Background(), []string{"check", "-s", schemaFile(t, brokenSchema), "-o", "json", "--out", filepath.Join(t.TempDir(), "r.json")}))
	assert.Equal(t, exitOK, run(context.Background(), []string{"order", "-s", schemaFile(t, validSchema), "--out", filepath.Join(t.TempDir(), "o.txt")}))
}
