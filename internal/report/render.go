package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor forces colour on or off.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		r.color = enabled
	}
}

// Renderer writes values in one format.
type Renderer struct {
	format Format
	color  bool
}

// NewRenderer creates a Renderer. Colour is off unless enabled with WithColor.
func NewRenderer(format Format, opts ...Option) *Renderer {
	r := &Renderer{format: format}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render writes v to w in the given format, with colour when w is a terminal.
func Render(w io.Writer, format Format, v any) error {
	return NewRenderer(format, WithColor(ColorEnabled(w))).Render(w, v)
}

// ColorEnabled reports whether w is a terminal and NO_COLOR is unset.
func ColorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render writes v to w.
func (r *Renderer) Render(w io.Writer, v any) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(view(v)); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}

		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(view(v)); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}

		return enc.Close()

	case FormatText, "":
		return r.text(w, v)

	default:
		return fmt.Errorf("unknown output format %q", r.format)
	}
}

// paint applies attrs to s when colour is enabled.
func (r *Renderer) paint(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if r.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c.Sprint(s)
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
