package model

import (
	"fmt"
	"slices"
	"strings"
)

// TypeSystem is an ordered set of uniquely named model entities.
type TypeSystem struct {
	types  []Type
	byName map[string]Type
}

// NewTypeSystem builds a type system from entities in emission order.
// Duplicate names are rejected.
func NewTypeSystem(types ...Type) (*TypeSystem, error) {
	ts := &TypeSystem{
		types:  make([]Type, 0, len(types)),
		byName: make(map[string]Type, len(types)),
	}
	for _, t := range types {
		if _, ok := ts.byName[t.TypeName()]; ok {
			return nil, fmt.Errorf("model: duplicate type %q", t.TypeName())
		}
		ts.byName[t.TypeName()] = t
		ts.types = append(ts.types, t)
	}
	return ts, nil
}

// Types returns every entity in emission order.
func (ts *TypeSystem) Types() []Type {
	return slices.Clone(ts.types)
}

// Len returns the number of entities.
func (ts *TypeSystem) Len() int {
	return len(ts.types)
}

// Find returns the entity with the given name.
func (ts *TypeSystem) Find(name string) (Type, bool) {
	t, ok := ts.byName[name]
	return t, ok
}

// Class returns the class with the given name.
func (ts *TypeSystem) Class(name string) (*Class, bool) {
	c, ok := ts.byName[name].(*Class)
	return c, ok
}

// Struct returns the struct with the given name.
func (ts *TypeSystem) Struct(name string) (*Struct, bool) {
	s, ok := ts.byName[name].(*Struct)
	return s, ok
}

// Enums returns the enumerations in emission order.
func (ts *TypeSystem) Enums() []*Enum { return filter[*Enum](ts.types) }

// Structs returns the structs in emission order.
func (ts *TypeSystem) Structs() []*Struct { return filter[*Struct](ts.types) }

// Interfaces returns the behavioral interfaces in emission order.
func (ts *TypeSystem) Interfaces() []*BehavioralInterface {
	return filter[*BehavioralInterface](ts.types)
}

// Classes returns the classes in emission order.
func (ts *TypeSystem) Classes() []*Class { return filter[*Class](ts.types) }

// Implementers returns the classes implementing the named interface, sorted by name.
func (ts *TypeSystem) Implementers(iface string) []*Class {
	var out []*Class
	for _, c := range ts.Classes() {
		if slices.Contains(c.Implements, iface) {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b *Class) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Import lists the names a file takes from one module.
type Import struct {
	Module string
	Names  []string
}

// Imports returns one entry per base-class module used by a class, sorted by
// module, with sorted and deduplicated names. Classes extending a class of
// the same type system need no import.
func (ts *TypeSystem) Imports() []Import {
	byModule := make(map[string][]string)
	for _, c := range ts.Classes() {
		if c.Extends == nil || c.Extends.Module == "" {
			continue
		}
		byModule[c.Extends.Module] = append(byModule[c.Extends.Module], c.Extends.Class)
	}

	modules := make([]string, 0, len(byModule))
	for m := range byModule {
		modules = append(modules, m)
	}
	slices.Sort(modules)

	out := make([]Import, 0, len(modules))
	for _, m := range modules {
		names := byModule[m]
		slices.Sort(names)
		out = append(out, Import{Module: m, Names: slices.Compact(names)})
	}
	return out
}

// CountByKind returns how many entities of each kind the type system holds.
func (ts *TypeSystem) CountByKind() map[Kind]int {
	counts := make(map[Kind]int, 4)
	for _, t := range ts.types {
		counts[t.Kind()]++
	}
	return counts
}

func filter[T Type](types []Type) []T {
	var out []T
	for _, t := range types {
		if v, ok := t.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
