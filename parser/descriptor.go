package parser

import (
	"fmt"

	"github.com/erraggy/xsdmodel/schema"
)

// descriptor is a raw type definition gathered from the schema document,
// before ordering. The set of implementations is closed; every switch over
// descriptors handles all four kinds.
type descriptor interface {
	descriptorName() string
	isDescriptor()
}

// aliasDescriptor is a simpleType restricting a non-string base.
type aliasDescriptor struct {
	name string
	base string
}

// enumDescriptor is a simpleType restricting xs:string with enumeration facets.
type enumDescriptor struct {
	name   string
	values []string
}

// complexDescriptor is a named top-level complexType.
type complexDescriptor struct {
	name    string
	content schema.Content
}

// elementDescriptor is a top-level element or a hoisted anonymous one.
type elementDescriptor struct {
	name       string
	namespace  string
	instanceOf string
	content    schema.Content
}

func (d *aliasDescriptor) descriptorName() string   { return d.name }
func (d *enumDescriptor) descriptorName() string    { return d.name }
func (d *complexDescriptor) descriptorName() string { return d.name }
func (d *elementDescriptor) descriptorName() string { return d.name }

func (*aliasDescriptor) isDescriptor()   {}
func (*enumDescriptor) isDescriptor()    {}
func (*complexDescriptor) isDescriptor() {}
func (*elementDescriptor) isDescriptor() {}

// Emission ranks. Lower ranks are emitted first.
const (
	rankAlias = iota
	rankEnum
	rankNoContainer
	rankNoElements
	rankWithElements
)

func rank(d descriptor) int {
	switch d := d.(type) {
	case *aliasDescriptor:
		return rankAlias
	case *enumDescriptor:
		return rankEnum
	case *complexDescriptor:
		return contentRank(&d.content)
	case *elementDescriptor:
		return contentRank(&d.content)
	default:
		panic(fmt.Sprintf("parser: unknown descriptor %T", d))
	}
}

func contentRank(c *schema.Content) int {
	switch {
	case c.IsEmpty():
		return rankNoContainer
	case len(c.Elements) == 0:
		return rankNoElements
	default:
		return rankWithElements
	}
}

// elementsOf returns the element properties of container descriptors.
func elementsOf(d descriptor) []*schema.ElementProperty {
	switch d := d.(type) {
	case *complexDescriptor:
		return d.content.Elements
	case *elementDescriptor:
		return d.content.Elements
	}
	return nil
}

// materialize turns a descriptor into its graph entity.
func materialize(d descriptor) schema.Type {
	switch d := d.(type) {
	case *aliasDescriptor:
		return &schema.SimpleType{Name: d.name, BaseType: d.base}
	case *enumDescriptor:
		return &schema.EnumerationType{Name: d.name, BaseType: xsString, Values: d.values}
	case *complexDescriptor:
		return &schema.ComplexType{Name: d.name, Content: d.content}
	case *elementDescriptor:
		return &schema.ElementType{
			Name:       d.name,
			Namespace:  d.namespace,
			InstanceOf: d.instanceOf,
			Content:    d.content,
		}
	default:
		panic(fmt.Sprintf("parser: unknown descriptor %T", d))
	}
}

// sameDefinition reports whether two simple descriptors define the same type.
func sameDefinition(a, b descriptor) bool {
	switch a := a.(type) {
	case *aliasDescriptor:
		bb, ok := b.(*aliasDescriptor)
		return ok && a.base == bb.base
	case *enumDescriptor:
		bb, ok := b.(*enumDescriptor)
		if !ok || len(a.values) != len(bb.values) {
			return false
		}
		for i := range a.values {
			if a.values[i] != bb.values[i] {
				return false
			}
		}
		return true
	}
	return false
}
