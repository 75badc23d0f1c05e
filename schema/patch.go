package schema

import (
	"slices"

	"github.com/erraggy/xsdmodel/xsderrors"
)

// Patch is a mutation of a Graph. The set of implementations is closed:
// AddTypePatch and ExtendChoicePatch.
type Patch interface {
	// PatchKind returns the patch kind used in configuration and errors.
	PatchKind() string

	validate(g *Graph) *xsderrors.PatchError
	apply(g *Graph)
}

// AddTypePatch appends a type to the graph.
type AddTypePatch struct {
	Type Type
}

// PatchKind implements Patch.
func (AddTypePatch) PatchKind() string { return "addType" }

func (p AddTypePatch) validate(g *Graph) *xsderrors.PatchError {
	if p.Type == nil || p.Type.TypeName() == "" {
		return &xsderrors.PatchError{Patch: p.PatchKind(), Message: "type has no name"}
	}
	if g.Has(p.Type.TypeName()) {
		return &xsderrors.PatchError{
			Patch:      p.PatchKind(),
			TypeName:   p.Type.TypeName(),
			IsConflict: true,
			Message:    "type already exists",
		}
	}
	return nil
}

func (p AddTypePatch) apply(g *Graph) {
	g.index[p.Type.TypeName()] = len(g.types)
	g.types = append(g.types, p.Type)
}

// ExtendChoicePatch adds an assignable type to an existing element property,
// turning a single-type slot into a choice or widening an existing choice.
type ExtendChoicePatch struct {
	TypeName           string
	PropertyName       string
	AssignableTypeName string
}

// PatchKind implements Patch.
func (ExtendChoicePatch) PatchKind() string { return "extendChoice" }

func (p ExtendChoicePatch) validate(g *Graph) *xsderrors.PatchError {
	perr := &xsderrors.PatchError{Patch: p.PatchKind(), TypeName: p.TypeName, Property: p.PropertyName}
	t, ok := g.Lookup(p.TypeName)
	if !ok {
		perr.Message = "type not found"
		return perr
	}
	c, ok := t.(Container)
	if !ok {
		perr.Message = "type " + string(t.Kind()) + " has no element properties"
		return perr
	}
	prop := c.ContainerContent().Element(p.PropertyName)
	if prop == nil {
		perr.Message = "property not found"
		return perr
	}
	if p.AssignableTypeName == "" {
		perr.Message = "assignable type name is empty"
		return perr
	}
	if prop.CanAssign(p.AssignableTypeName) {
		perr.IsConflict = true
		perr.Message = p.AssignableTypeName + " is already assignable"
		return perr
	}
	return nil
}

func (p ExtendChoicePatch) apply(g *Graph) {
	t, _ := g.Lookup(p.TypeName)
	prop := t.(Container).ContainerContent().Element(p.PropertyName)
	// Clip so a slice shared with another property is never written through.
	prop.AssignableTypeNames = append(slices.Clip(prop.AssignableTypeNames), p.AssignableTypeName)
}

// Apply applies patches sequentially in the given order. Each patch is
// validated against the graph as left by its predecessors and either applies
// completely or not at all. The first failure stops processing and is returned
// as a *xsderrors.PatchError carrying the index of the failing patch.
func (g *Graph) Apply(patches ...Patch) error {
	for i, p := range patches {
		if p == nil {
			return &xsderrors.PatchError{Index: i, Message: "nil patch"}
		}
		if perr := p.validate(g); perr != nil {
			perr.Index = i
			return perr
		}
		p.apply(g)
	}
	return nil
}
