package schema

import (
	"fmt"
	"slices"
)

// Graph is an ordered, name-indexed collection of schema types. Order is the
// emission order decided at ingestion and extended by patches.
type Graph struct {
	types []Type
	index map[string]int
}

// NewGraph builds a graph from types in the given order.
// It returns an error if two types share a name.
func NewGraph(types ...Type) (*Graph, error) {
	g := &Graph{
		types: make([]Type, 0, len(types)),
		index: make(map[string]int, len(types)),
	}
	for _, t := range types {
		if err := g.add(t); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Graph) add(t Type) error {
	if t == nil {
		return fmt.Errorf("schema: nil type")
	}
	name := t.TypeName()
	if name == "" {
		return fmt.Errorf("schema: %s type without a name", t.Kind())
	}
	if _, exists := g.index[name]; exists {
		return fmt.Errorf("schema: duplicate type %q", name)
	}
	g.index[name] = len(g.types)
	g.types = append(g.types, t)
	return nil
}

// Lookup returns the type with the given name.
func (g *Graph) Lookup(name string) (Type, bool) {
	i, ok := g.index[name]
	if !ok {
		return nil, false
	}
	return g.types[i], true
}

// Has reports whether a type with the given name exists.
func (g *Graph) Has(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Len returns the number of types in the graph.
func (g *Graph) Len() int {
	return len(g.types)
}

// Types returns the types in emission order. The returned slice is a copy.
func (g *Graph) Types() []Type {
	return slices.Clone(g.types)
}

// Names returns the type names in emission order.
func (g *Graph) Names() []string {
	names := make([]string, len(g.types))
	for i, t := range g.types {
		names[i] = t.TypeName()
	}
	return names
}

// Enumerations returns the enumeration types in emission order.
func (g *Graph) Enumerations() []*EnumerationType {
	return filter[*EnumerationType](g.types)
}

// ComplexTypes returns the complex types in emission order.
func (g *Graph) ComplexTypes() []*ComplexType {
	return filter[*ComplexType](g.types)
}

// ElementTypes returns the element types in emission order.
func (g *Graph) ElementTypes() []*ElementType {
	return filter[*ElementType](g.types)
}

// Containers returns complex and element types in emission order.
func (g *Graph) Containers() []Container {
	return filter[Container](g.types)
}

// CountByKind returns the number of types of each kind.
func (g *Graph) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, t := range g.types {
		counts[t.Kind()]++
	}
	return counts
}

func filter[T any](types []Type) []T {
	var out []T
	for _, t := range types {
		if v, ok := t.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
