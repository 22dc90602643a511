package hierarchy

import (
	"log/slog"
	"maps"
	"slices"
	"sync"

	"category-resolver/internal/category"
)

// Option configures a Linearizer.
type Option func(*Linearizer)

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Linearizer) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithLenientReferences makes a missing parent behave like a declared
// category with no parents and no attributes instead of failing with a
// ReferenceError, and skips attribute reference checks. Useful while a schema
// is being assembled and parents may be forward references.
func WithLenientReferences() Option {
	return func(l *Linearizer) {
		l.lenient = true
	}
}

// WithSubobjects supplies the subobject map. Every subobject a category or
// one of its ancestors references must then be defined in it, unless
// references are lenient.
func WithSubobjects(subobjects map[string]*category.Subobject) Option {
	return func(l *Linearizer) {
		l.subobjects = subobjects
	}
}

// WithProperties supplies the declared property names. An empty list leaves
// property references unchecked.
func WithProperties(names []string) Option {
	return func(l *Linearizer) {
		if len(names) == 0 {
			l.properties = nil
			return
		}

		l.properties = make(map[string]bool, len(names))
		for _, name := range names {
			l.properties[name] = true
		}
	}
}

// Linearizer computes C3 linearizations and effective records over a fixed
// category map. It is safe for concurrent use; results are memoized per name
// and never invalidated.
type Linearizer struct {
	categories map[string]*category.Category
	subobjects map[string]*category.Subobject
	properties map[string]bool
	logger     *slog.Logger
	lenient    bool

	mu             sync.RWMutex
	linearizations map[string][]string
	effective      map[string]*category.Category
}

// New creates a Linearizer over categories. The map is read, never written,
// and must not be modified while the Linearizer is in use.
func New(categories map[string]*category.Category, opts ...Option) *Linearizer {
	l := &Linearizer{
		categories:     categories,
		logger:         slog.New(slog.DiscardHandler),
		linearizations: make(map[string][]string),
		effective:      make(map[string]*category.Category),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Known reports whether name is defined in the category map.
func (l *Linearizer) Known(name string) bool {
	_, ok := l.categories[name]
	return ok
}

// Names returns every defined category name, sorted.
func (l *Linearizer) Names() []string {
	return slices.Sorted(maps.Keys(l.categories))
}

// Linearize returns name followed by all of its transitive ancestors in C3
// order. An undefined name linearizes to itself alone. No partial order is
// ever returned with an error.
func (l *Linearizer) Linearize(name string) ([]string, error) {
	if cached, ok := l.cachedLinearization(name); ok {
		return slices.Clone(cached), nil
	}

	if !l.Known(name) {
		return []string{name}, nil
	}

	if path := l.findCycle(name); path != nil {
		l.logger.Debug("inheritance cycle detected", "category", name, "path", path)
		return nil, &CycleError{Category: name, Path: path}
	}

	lin, err := l.linearize(name)
	if err != nil {
		return nil, err
	}

	return slices.Clone(lin), nil
}

// Effective returns the category with every ancestor folded in, most
// distant ancestor first. An undefined name yields category.Empty(name).
func (l *Linearizer) Effective(name string) (*category.Category, error) {
	l.mu.RLock()
	cached, ok := l.effective[name]
	l.mu.RUnlock()

	if ok {
		return cached, nil
	}

	if !l.Known(name) {
		return category.Empty(name), nil
	}

	lin, err := l.Linearize(name)
	if err != nil {
		return nil, err
	}

	var acc *category.Category
	for i := len(lin) - 1; i >= 0; i-- {
		acc = category.Merge(acc, l.record(lin[i]))
	}

	l.mu.Lock()
	l.effective[name] = acc
	l.mu.Unlock()

	l.logger.Debug("effective record built", "category", name, "ancestors", len(lin)-1,
		"properties", acc.Properties().Len(), "subobjects", acc.Subobjects().Len())

	return acc, nil
}

// EffectiveMetadata folds the metadata of name and its ancestors with
// category.MergeMetadata, most distant ancestor first, so the most specific
// non-empty value wins. An undefined name yields zero metadata.
func (l *Linearizer) EffectiveMetadata(name string) (category.Metadata, error) {
	if !l.Known(name) {
		return category.Metadata{}, nil
	}

	lin, err := l.Linearize(name)
	if err != nil {
		return category.Metadata{}, err
	}

	var acc category.Metadata
	for i := len(lin) - 1; i >= 0; i-- {
		acc = category.MergeMetadata(acc, l.record(lin[i]).Metadata())
	}

	return acc, nil
}

// linearize assumes the graph reachable from name is acyclic.
func (l *Linearizer) linearize(name string) ([]string, error) {
	if cached, ok := l.cachedLinearization(name); ok {
		return cached, nil
	}

	c := l.record(name)
	if err := l.checkAttributes(c); err != nil {
		return nil, err
	}

	parents := c.Parents()

	lin := []string{name}

	if len(parents) > 0 {
		seqs := make([][]string, 0, len(parents)+1)

		for _, parent := range parents {
			if !l.Known(parent) {
				if !l.lenient {
					return nil, &ReferenceError{Category: name, Kind: "parent", Name: parent}
				}

				l.logger.Debug("missing parent treated as empty", "category", name, "parent", parent)
			}

			parentLin, err := l.linearize(parent)
			if err != nil {
				return nil, err
			}

			seqs = append(seqs, parentLin)
		}

		seqs = append(seqs, parents)

		merged, stuck := c3Merge(seqs)
		if stuck != nil {
			return nil, &InconsistentLinearizationError{Category: name, Remaining: stuck}
		}

		lin = append(lin, merged...)
	}

	l.mu.Lock()
	l.linearizations[name] = lin
	l.mu.Unlock()

	l.logger.Debug("linearized", "category", name, "order", lin)

	return lin, nil
}

// checkAttributes returns a ReferenceError for the first attribute c
// references that the supplied maps do not define. Lenient mode and kinds
// without a supplied map are not checked.
func (l *Linearizer) checkAttributes(c *category.Category) error {
	if l.lenient {
		return nil
	}

	for _, kind := range category.Kinds {
		for _, name := range c.Attributes(kind).All() {
			if !l.defined(kind, name) {
				return &ReferenceError{Category: c.Name(), Kind: kind.String(), Name: name}
			}
		}
	}

	return nil
}

func (l *Linearizer) defined(kind category.Kind, name string) bool {
	if kind == category.KindSubobject {
		if l.subobjects == nil {
			return true
		}

		_, ok := l.subobjects[name]

		return ok
	}

	return l.properties == nil || l.properties[name]
}

func (l *Linearizer) cachedLinearization(name string) ([]string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	lin, ok := l.linearizations[name]

	return lin, ok
}

// record returns the own record for name, or an empty one when undefined.
func (l *Linearizer) record(name string) *category.Category {
	if c, ok := l.categories[name]; ok {
		return c
	}

	return category.Empty(name)
}

// findCycle runs a path-tracking DFS over parents from start and returns the
// first cycle found as a closed path, or nil.
func (l *Linearizer) findCycle(start string) []string {
	var (
		path   []string
		onPath = make(map[string]bool)
		done   = make(map[string]bool)
		cycle  []string
	)

	var visit func(name string) bool

	visit = func(name string) bool {
		if onPath[name] {
			idx := slices.Index(path, name)
			cycle = append(slices.Clone(path[idx:]), name)

			return true
		}

		if done[name] {
			return false
		}

		c, ok := l.categories[name]
		if !ok {
			return false
		}

		onPath[name] = true
		path = append(path, name)

		for _, parent := range c.Parents() {
			if visit(parent) {
				return true
			}
		}

		path = path[:len(path)-1]
		onPath[name] = false
		done[name] = true

		return false
	}

	visit(start)

	return cycle
}
