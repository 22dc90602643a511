package hierarchy

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"category-resolver/internal/category"
)

// Order returns every category name with parents before children.
//
// The result is deterministic: when several categories are ready, the
// smallest name goes first. Parents missing from the map are ignored. If a
// cycle exists, an error wrapping ErrCycle names the categories left over.
func Order(categories map[string]*category.Category) ([]string, error) {
	if len(categories) == 0 {
		return nil, nil
	}

	names := slices.Sorted(maps.Keys(categories))

	indeg := make(map[string]int, len(names))
	children := make(map[string][]string, len(names))

	for _, name := range names {
		for _, parent := range categories[name].Parents() {
			if _, ok := categories[parent]; !ok {
				continue
			}

			indeg[name]++
			children[parent] = append(children[parent], name)
		}
	}

	var ready []string

	for _, name := range names {
		if indeg[name] == 0 {
			ready = append(ready, name)
		}
	}

	order := make([]string, 0, len(names))

	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]

		order = append(order, name)

		for _, child := range children[name] {
			indeg[child]--
			if indeg[child] == 0 {
				// Insert while keeping ready sorted.
				k, _ := slices.BinarySearch(ready, child)
				ready = slices.Insert(ready, k, child)
			}
		}
	}

	if len(order) != len(names) {
		var left []string

		for _, name := range names {
			if indeg[name] > 0 {
				left = append(left, name)
			}
		}

		return nil, fmt.Errorf("%w among %s", ErrCycle, strings.Join(left, ", "))
	}

	return order, nil
}
