package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"category-resolver/internal/category"
	"category-resolver/internal/compose"
	"category-resolver/internal/diagnostic"
)

const none = "-"

type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}

	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (r *Renderer) text(w io.Writer, v any) error {
	t := &textWriter{w: w}

	switch v := v.(type) {
	case Document:
		t.printf("%s %s (%d sources)\n", r.paint("schema", color.Faint), shortDigest(v.Digest), len(v.Sources))

		if t.err != nil {
			return t.err
		}

		return r.text(w, v.Data)
	case *compose.Result:
		r.result(t, v)
	case *diagnostic.Diagnostics:
		r.diagnostics(t, v)
	case Linearization:
		r.linearization(t, v)
	case []Linearization:
		for _, l := range v {
			r.linearization(t, l)
		}
	case Effective:
		r.effective(t, v)
	case []Effective:
		for i, e := range v {
			if i > 0 {
				t.printf("\n")
			}

			r.effective(t, e)
		}
	case Order:
		for i, name := range v {
			t.printf("%3d  %s\n", i+1, name)
		}
	default:
		return fmt.Errorf("cannot render %T as text", v)
	}

	return t.err
}

func (r *Renderer) result(t *textWriter, res *compose.Result) {
	t.printf("%s %s\n", r.paint("categories:", color.Bold), joinOrNone(res.CategoryNames()))

	for _, kind := range category.Kinds {
		t.printf("%s\n", r.paint(kind.Plural()+":", color.Bold))

		for _, bucket := range []struct {
			label string
			names []string
		}{
			{"required", res.Required(kind)},
			{"optional", res.Optional(kind)},
		} {
			t.printf("  %s:\n", bucket.label)

			if len(bucket.names) == 0 {
				t.printf("    %s\n", none)
				continue
			}

			width := 0
			for _, name := range bucket.names {
				width = max(width, len(name))
			}

			for _, name := range bucket.names {
				line := fmt.Sprintf("    %-*s  from %s", width, name, strings.Join(res.Sources(kind, name), ", "))
				if res.IsShared(kind, name) {
					line += " " + r.paint("(shared)", color.FgCyan)
				}

				t.printf("%s\n", line)
			}
		}
	}
}

func (r *Renderer) diagnostics(t *textWriter, d *diagnostic.Diagnostics) {
	for _, group := range []struct {
		label string
		attrs []color.Attribute
		list  []diagnostic.Diagnostic
	}{
		{"error", []color.Attribute{color.FgRed, color.Bold}, d.Errors},
		{"warning", []color.Attribute{color.FgYellow}, d.Warnings},
		{"info", []color.Attribute{color.FgBlue}, d.Infos},
	} {
		for _, diag := range group.list {
			t.printf("%s %s\n", r.paint(fmt.Sprintf("%-7s", group.label), group.attrs...), diag.String())
		}
	}

	summary := fmt.Sprintf("%s, %s, %s",
		plural(len(d.Errors), "error"), plural(len(d.Warnings), "warning"), plural(len(d.Infos), "info"))

	switch {
	case d.HasErrors():
		summary = r.paint(summary, color.FgRed)
	case d.HasWarnings():
		summary = r.paint(summary, color.FgYellow)
	default:
		summary = r.paint(summary, color.FgGreen)
	}

	t.printf("%s\n", summary)
}

func (r *Renderer) linearization(t *textWriter, l Linearization) {
	t.printf("%s: %s\n", r.paint(l.Category, color.Bold), strings.Join(l.Order, " -> "))
}

func (r *Renderer) effective(t *textWriter, e Effective) {
	c := e.Category

	header := r.paint(c.Name(), color.Bold)
	if c.HasParents() {
		header += " " + r.paint("(parents: "+strings.Join(c.Parents(), ", ")+")", color.Faint)
	}

	t.printf("%s\n", header)

	for _, kind := range category.Kinds {
		b := c.Attributes(kind)
		t.printf("  required %s: %s\n", kind.Plural(), joinOrNone(b.Required()))
		t.printf("  optional %s: %s\n", kind.Plural(), joinOrNone(b.Optional()))
	}

	if label := e.metadata().Label; label != "" {
		t.printf("  label: %s\n", label)
	}
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return none
	}

	return strings.Join(names, ", ")
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}

	return fmt.Sprintf("%d %ss", n, word)
}

func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}

	return digest
}
