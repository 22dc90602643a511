package report

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Format selects an output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat parses a format name case-insensitively. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "yml" {
		f = FormatYAML
	}

	if !lo.Contains(Formats, f) {
		return "", fmt.Errorf("unknown output format %q (expected one of %s)", s, strings.Join(
			lo.Map(Formats, func(f Format, _ int) string { return string(f) }), ", "))
	}

	return f, nil
}

func (f Format) String() string {
	return string(f)
}
