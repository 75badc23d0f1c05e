package parser

import "slices"

// orderDescriptors returns descriptors in emission order: aliases,
// enumerations, containers without content, containers with attributes only,
// then containers with elements. Within the last group a container that
// another container lists as an assignable type is placed before it. Every
// tie keeps input order.
func orderDescriptors(descs []descriptor) []descriptor {
	ordered := slices.Clone(descs)
	slices.SortStableFunc(ordered, func(a, b descriptor) int {
		return rank(a) - rank(b)
	})

	first := slices.IndexFunc(ordered, func(d descriptor) bool {
		return rank(d) == rankWithElements
	})
	if first < 0 {
		return ordered
	}

	pending := make(map[string]descriptor)
	for _, d := range ordered[first:] {
		pending[d.descriptorName()] = d
	}

	out := ordered[:first:first]
	visiting := make(map[string]bool)
	var visit func(d descriptor)
	visit = func(d descriptor) {
		name := d.descriptorName()
		if _, ok := pending[name]; !ok || visiting[name] {
			return
		}
		visiting[name] = true
		for _, prop := range elementsOf(d) {
			for _, dep := range prop.AssignableTypeNames {
				if next, ok := pending[dep]; ok {
					visit(next)
				}
			}
		}
		delete(pending, name)
		out = append(out, d)
	}
	for _, d := range ordered[first:] {
		visit(d)
	}
	return out
}
