package category

import "maps"

// Merge folds a child's own record over its parent's effective record and
// returns a new record. For properties and subobjects independently:
//
//   - required is the parent's required list followed by the child's
//     required names not already present
//   - optional is the union of both optional lists minus every required name
//
// Name, parents and metadata come from child. Neither input is modified.
// A nil parent returns child unchanged.
func Merge(parent, child *Category) *Category {
	if parent == nil {
		return child
	}

	return &Category{
		name:       child.name,
		parents:    child.parents,
		properties: mergeBuckets(parent.properties, child.properties),
		subobjects: mergeBuckets(parent.subobjects, child.subobjects),
		metadata:   child.metadata,
	}
}

// MergeMetadata folds child metadata over parent metadata: non-empty child
// strings replace the parent's and map keys merge with child values winning.
// Merge never calls it: a merged record keeps the child's own metadata.
func MergeMetadata(parent, child Metadata) Metadata {
	result := parent.clone()

	if child.Label != "" {
		result.Label = child.Label
	}

	if child.Description != "" {
		result.Description = child.Description
	}

	result.Display = mergeAnyMaps(parent.Display, child.Display)
	result.Forms = mergeAnyMaps(parent.Forms, child.Forms)

	return result
}

// mergeAnyMaps merges two map[string]any maps. Child values win on conflict.
// Returns nil if both inputs are empty.
func mergeAnyMaps(parent, child map[string]any) map[string]any {
	if len(parent) == 0 && len(child) == 0 {
		return nil
	}

	result := make(map[string]any, len(parent)+len(child))
	maps.Copy(result, parent)
	maps.Copy(result, child)

	return result
}
