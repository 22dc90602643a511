package compose

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/samber/lo"

	"category-resolver/internal/category"
	"category-resolver/internal/hierarchy"
)

// Option configures a Composer.
type Option func(*Composer)

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Composer resolves lists of category names against one Linearizer.
// It holds no state of its own and is safe for concurrent use.
type Composer struct {
	lin    *hierarchy.Linearizer
	logger *slog.Logger
}

// New creates a Composer reading effective records from lin.
func New(lin *hierarchy.Linearizer, opts ...Option) *Composer {
	c := &Composer{
		lin:    lin,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Resolve merges the effective records of names, in order, into a new
// Result. Unknown names appear in the result's category list but contribute
// nothing. The only failures are structural errors (cycle, inconsistent
// linearization, missing parent) of a requested category.
func (c *Composer) Resolve(names []string) (*Result, error) {
	res := &Result{
		categoryNames: slices.Clone(names),
		properties:    newAccumulator(),
		subobjects:    newAccumulator(),
	}

	if res.categoryNames == nil {
		res.categoryNames = []string{}
	}

	for _, name := range lo.Uniq(names) {
		eff, err := c.lin.Effective(name)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", name, err)
		}

		c.logger.Debug("composing category",
			slog.String("category", name),
			slog.Bool("known", c.lin.Known(name)),
			slog.Int("properties", eff.Properties().Len()),
			slog.Int("subobjects", eff.Subobjects().Len()))

		res.properties.add(name, eff.Properties())
		res.subobjects.add(name, eff.Subobjects())
	}

	res.properties.promote()
	res.subobjects.promote()

	return res, nil
}

// accumulator collects one attribute kind across categories.
type accumulator struct {
	required []string
	optional []string
	sources  map[string][]string
}

func newAccumulator() *accumulator {
	return &accumulator{
		required: []string{},
		optional: []string{},
		sources:  make(map[string][]string),
	}
}

func (a *accumulator) add(source string, b category.Buckets) {
	for _, name := range b.Required() {
		if !slices.Contains(a.required, name) {
			a.required = append(a.required, name)
		}

		a.attribute(name, source)
	}

	for _, name := range b.Optional() {
		if !slices.Contains(a.required, name) && !slices.Contains(a.optional, name) {
			a.optional = append(a.optional, name)
		}

		a.attribute(name, source)
	}
}

func (a *accumulator) attribute(name, source string) {
	if !slices.Contains(a.sources[name], source) {
		a.sources[name] = append(a.sources[name], source)
	}
}

// promote drops optional names that another category made required.
func (a *accumulator) promote() {
	a.optional = lo.Without(a.optional, a.required...)
}
