package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/tidwall/jsonc"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Extensions lists the file extensions picked up from directories.
var Extensions = []string{".yaml", ".yml", ".json", ".jsonc"}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	return finish(&f)
}

// ParseJSONC parses JSON data, optionally with comments and trailing commas, into a File.
func ParseJSONC(data []byte) (*File, error) {
	var f File

	err := json.Unmarshal(jsonc.ToJSON(data), &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	return finish(&f)
}

// ParseFile parses data using the format implied by the path extension.
// Unknown extensions are parsed as YAML.
func ParseFile(path string, data []byte) (*File, error) {
	var (
		f   *File
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		f, err = ParseJSONC(data)
	default:
		f, err = Parse(data)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	setSource(f, path)

	return f, nil
}

// LoadFile loads and parses a single schema file.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	f, err := ParseFile(path, data)
	if err != nil {
		return nil, err
	}

	s := New()
	s.add(path, data, f)

	return s, nil
}

// Load reads every given file and every supported file below every given
// directory, parses them concurrently and merges them in path order.
func Load(ctx context.Context, paths ...string) (*Schema, error) {
	files, err := Expand(paths...)
	if err != nil {
		return nil, err
	}

	type loaded struct {
		data []byte
		file *File
	}

	results := make([]loaded, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read schema file %s: %w", path, err)
			}

			f, err := ParseFile(path, data)
			if err != nil {
				return err
			}

			results[i] = loaded{data: data, file: f}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := New()
	for i, path := range files {
		s.add(path, results[i].data, results[i].file)
	}

	return s, nil
}

// Expand resolves files and directories into a sorted, deduplicated list of
// schema files. Explicitly named files are kept whatever their extension.
func Expand(paths ...string) ([]string, error) {
	var files []string

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("schema path %s: %w", p, err)
		}

		if !info.IsDir() {
			files = append(files, filepath.Clean(p))
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() || !isSchemaFile(path) {
				return nil
			}

			files = append(files, filepath.Clean(path))

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk schema directory %s: %w", p, err)
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path as YAML.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}

func isSchemaFile(path string) bool {
	return lo.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}

func finish(f *File) (*File, error) {
	applyDefaults(f)

	if f.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported schema version %q (expected %q)", f.Version, CurrentVersion)
	}

	return f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}
}

func setSource(f *File, path string) {
	for i := range f.Properties {
		f.Properties[i].Source = path
	}

	for i := range f.Subobjects {
		f.Subobjects[i].Source = path
	}

	for i := range f.Categories {
		f.Categories[i].Source = path
	}
}
