package diagnostic

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"category-resolver/internal/common"
)

// Diagnostics holds all diagnostic information from a schema check.
type Diagnostics struct {
	Errors   []Diagnostic `json:"errors"   yaml:"errors"`
	Warnings []Diagnostic `json:"warnings" yaml:"warnings"`
	Infos    []Diagnostic `json:"infos"    yaml:"infos"`
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity `json:"severity" yaml:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `json:"code" yaml:"code"`
	// Message is the human-readable description.
	Message string `json:"message" yaml:"message"`
	// Category identifies which category or subobject this relates to (if any).
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	// Attribute identifies which attribute or parent reference this relates to (if any).
	Attribute string `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	// Suggestions are potential fixes or alternatives.
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// MarshalText renders the severity by name in JSON and YAML output.
func (s DiagnosticSeverity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a severity name written by MarshalText.
func (s *DiagnosticSeverity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "info":
		*s = DiagnosticInfo
	case "warning":
		*s = DiagnosticWarning
	case "error":
		*s = DiagnosticError
	default:
		return fmt.Errorf("unknown severity %q", text)
	}

	return nil
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, category, attribute string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:  DiagnosticError,
		Code:      code,
		Message:   message,
		Category:  category,
		Attribute: attribute,
	})
}

// AddErrorWithSuggestions adds an error diagnostic carrying alternatives.
func (d *Diagnostics) AddErrorWithSuggestions(code, message, category, attribute string, suggestions []string) {
	d.AddError(code, message, category, attribute)
	if len(suggestions) > 0 {
		d.Errors[len(d.Errors)-1].Suggestions = suggestions
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, category, attribute string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:  DiagnosticWarning,
		Code:      code,
		Message:   message,
		Category:  category,
		Attribute: attribute,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, category, attribute string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:  DiagnosticInfo,
		Code:      code,
		Message:   message,
		Category:  category,
		Attribute: attribute,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasWarnings returns true if there are any warning diagnostics.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Codes returns the codes of every diagnostic, errors first.
func (d *Diagnostics) Codes() []string {
	var codes []string
	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range list {
			codes = append(codes, diag.Code)
		}
	}

	return codes
}

// Sort orders each severity list by category, attribute, then code so that
// reports are stable regardless of map iteration order.
func (d *Diagnostics) Sort() {
	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		slices.SortStableFunc(list, func(a, b Diagnostic) int {
			return cmp.Or(
				cmp.Compare(a.Category, b.Category),
				cmp.Compare(a.Attribute, b.Attribute),
				cmp.Compare(a.Code, b.Code),
			)
		})
	}
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Category != "" {
		prefix = append(prefix, "["+d.Category+"]")
	}

	if d.Attribute != "" {
		prefix = append(prefix, d.Attribute)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + common.QuoteList(d.Suggestions) + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
