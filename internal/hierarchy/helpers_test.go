package hierarchy

import (
	"category-resolver/internal/category"
)

// graph builds a category map from name -> parents, with no attributes.
func graph(edges map[string][]string) map[string]*category.Category {
	out := make(map[string]*category.Category, len(edges))
	for name, parents := range edges {
		out[name] = category.MustCategory(category.CategorySpec{Name: name, Parents: parents})
	}

	return out
}

func records(specs ...category.CategorySpec) map[string]*category.Category {
	out := make(map[string]*category.Category, len(specs))
	for _, spec := range specs {
		out[spec.Name] = category.MustCategory(spec)
	}

	return out
}
