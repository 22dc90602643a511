package schema

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/zeebo/blake3"

	"category-resolver/internal/category"
)

// Schema is the union of one or more schema files, in load order.
type Schema struct {
	Properties []PropertyDef
	Subobjects []SubobjectDef
	Categories []CategoryDef

	sources []source
}

type source struct {
	path string
	data []byte
}

// New creates a schema from already parsed files.
func New(files ...*File) *Schema {
	s := &Schema{}
	for _, f := range files {
		s.add("", nil, f)
	}

	return s
}

func (s *Schema) add(path string, data []byte, f *File) {
	if path != "" {
		s.sources = append(s.sources, source{path: path, data: data})
	}

	if f == nil {
		return
	}

	s.Properties = append(s.Properties, f.Properties...)
	s.Subobjects = append(s.Subobjects, f.Subobjects...)
	s.Categories = append(s.Categories, f.Categories...)
}

// Sources returns the loaded file paths in load order.
func (s *Schema) Sources() []string {
	return lo.Map(s.sources, func(src source, _ int) string { return src.path })
}

// Digest returns the hex BLAKE3 digest over all sources in load order.
// A schema built with [New] digests to the hash of no input.
func (s *Schema) Digest() string {
	h := blake3.New()

	for _, src := range s.sources {
		_, _ = h.Write([]byte(src.path))
		_, _ = h.Write([]byte{0})
		_, _ = h.Write(src.data)
		_, _ = h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}

// PropertyNames returns the declared property names, deduplicated, in declaration order.
func (s *Schema) PropertyNames() []string {
	return lo.Uniq(lo.Map(s.Properties, func(p PropertyDef, _ int) string { return p.Name }))
}

// SubobjectNames returns the declared subobject names, deduplicated, in declaration order.
func (s *Schema) SubobjectNames() []string {
	return lo.Uniq(lo.Map(s.Subobjects, func(d SubobjectDef, _ int) string { return d.Name }))
}

// CategoryNames returns the declared category names, deduplicated, in declaration order.
func (s *Schema) CategoryNames() []string {
	return lo.Uniq(lo.Map(s.Categories, func(d CategoryDef, _ int) string { return d.Name }))
}

// Names returns the declared names of the given attribute kind.
func (s *Schema) Names(kind category.Kind) []string {
	if kind == category.KindSubobject {
		return s.SubobjectNames()
	}

	return s.PropertyNames()
}

// Category returns the first definition with the given name.
func (s *Schema) Category(name string) (CategoryDef, bool) {
	return lo.Find(s.Categories, func(d CategoryDef) bool { return d.Name == name })
}

// Property returns the first definition with the given name.
func (s *Schema) Property(name string) (PropertyDef, bool) {
	return lo.Find(s.Properties, func(d PropertyDef) bool { return d.Name == name })
}

// Subobject returns the first definition with the given name.
func (s *Schema) Subobject(name string) (SubobjectDef, bool) {
	return lo.Find(s.Subobjects, func(d SubobjectDef) bool { return d.Name == name })
}

// CategoryRecords builds a record for every category. The first definition
// of a name wins. Definitions that fail validation are skipped and their
// errors are joined into the returned error; the map still holds every valid
// record.
func (s *Schema) CategoryRecords() (map[string]*category.Category, error) {
	out := make(map[string]*category.Category, len(s.Categories))

	var errs []error

	for i := range s.Categories {
		def := &s.Categories[i]
		if _, dup := out[def.Name]; dup {
			continue
		}

		c, err := category.NewCategory(def.Spec())
		if err != nil {
			errs = append(errs, located(def.Source, err))
			continue
		}

		out[def.Name] = c
	}

	return out, errors.Join(errs...)
}

// SubobjectRecords builds a record for every subobject, following the same
// rules as [Schema.CategoryRecords].
func (s *Schema) SubobjectRecords() (map[string]*category.Subobject, error) {
	out := make(map[string]*category.Subobject, len(s.Subobjects))

	var errs []error

	for i := range s.Subobjects {
		def := &s.Subobjects[i]
		if _, dup := out[def.Name]; dup {
			continue
		}

		so, err := category.NewSubobject(def.Spec())
		if err != nil {
			errs = append(errs, located(def.Source, err))
			continue
		}

		out[def.Name] = so
	}

	return out, errors.Join(errs...)
}

func located(path string, err error) error {
	if path == "" {
		return err
	}

	return fmt.Errorf("%s: %w", path, err)
}
