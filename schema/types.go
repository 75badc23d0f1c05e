package schema

import "slices"

// Kind identifies the kind of a schema type.
type Kind string

const (
	KindValue       Kind = "value"
	KindSimple      Kind = "simple"
	KindEnumeration Kind = "enumeration"
	KindComplex     Kind = "complex"
	KindElement     Kind = "element"
)

// Type is a named node of the type graph. The set of implementations is closed.
type Type interface {
	// TypeName returns the normalized name of the type (e.g., "xs:string", "shipto").
	TypeName() string
	// Kind returns the kind of the type.
	Kind() Kind

	isType()
}

// Container is implemented by the types that own attribute and element properties.
type Container interface {
	Type
	ContainerContent() *Content
}

// ValueType is a primitive leaf type.
type ValueType struct {
	Name string
}

func (t *ValueType) TypeName() string { return t.Name }
func (t *ValueType) Kind() Kind       { return KindValue }
func (*ValueType) isType()            {}

// SimpleType aliases another simple or value type.
type SimpleType struct {
	Name     string
	BaseType string
}

func (t *SimpleType) TypeName() string { return t.Name }
func (t *SimpleType) Kind() Kind       { return KindSimple }
func (*SimpleType) isType()            {}

// EnumerationType is a string restriction permitting a closed, ordered set of
// literal values. Values keep their wire spelling.
type EnumerationType struct {
	Name     string
	BaseType string
	Values   []string
}

func (t *EnumerationType) TypeName() string { return t.Name }
func (t *EnumerationType) Kind() Kind       { return KindEnumeration }
func (*EnumerationType) isType()            {}

// Content holds the properties of a container type in declaration order.
type Content struct {
	Attributes []*AttributeProperty
	Elements   []*ElementProperty
}

// ContainerContent returns the content itself; it is promoted to the
// container types embedding Content.
func (c *Content) ContainerContent() *Content { return c }

// Element returns the element property with the given name, or nil.
func (c *Content) Element(name string) *ElementProperty {
	for _, e := range c.Elements {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Attribute returns the attribute property with the given name, or nil.
func (c *Content) Attribute(name string) *AttributeProperty {
	for _, a := range c.Attributes {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// IsEmpty reports whether the container has neither attributes nor elements.
func (c *Content) IsEmpty() bool {
	return len(c.Attributes) == 0 && len(c.Elements) == 0
}

// ComplexType is a named container without a tag of its own. It is reused by
// element declarations through their type attribute.
type ComplexType struct {
	Name string
	Content
}

func (t *ComplexType) TypeName() string { return t.Name }
func (t *ComplexType) Kind() Kind       { return KindComplex }
func (*ComplexType) isType()            {}

// ElementType is a container serialized under its own tag.
type ElementType struct {
	Name string
	// Namespace is the target namespace of a top-level declaration. Hoisted
	// anonymous elements have none.
	Namespace string
	// InstanceOf is the type named by the declaration's type attribute.
	InstanceOf string
	Content
}

func (t *ElementType) TypeName() string { return t.Name }
func (t *ElementType) Kind() Kind       { return KindElement }
func (*ElementType) isType()            {}

// AttributeUse is the use constraint of an attribute.
type AttributeUse string

const (
	UseOptional AttributeUse = "optional"
	UseRequired AttributeUse = "required"
)

// AttributeProperty is an XML attribute of a container.
type AttributeProperty struct {
	Name     string
	TypeName string
	Use      AttributeUse
}

// IsRequired reports whether the attribute must be present.
func (a *AttributeProperty) IsRequired() bool {
	return a.Use == UseRequired
}

// Unbounded is the MaxOccurs value of an element declared maxOccurs="unbounded".
const Unbounded = -1

// ElementProperty is a child element slot of a container.
type ElementProperty struct {
	Name      string
	MinOccurs int
	// MaxOccurs is the upper bound, or Unbounded.
	MaxOccurs int
	// AssignableTypeNames lists every type that may fill the slot. More than
	// one entry models a choice.
	AssignableTypeNames []string
}

// IsOptional reports whether the element may be absent.
func (e *ElementProperty) IsOptional() bool {
	return e.MinOccurs == 0
}

// IsRepeated reports whether the element may occur more than once.
func (e *ElementProperty) IsRepeated() bool {
	return e.MaxOccurs == Unbounded || e.MaxOccurs > 1
}

// IsChoice reports whether more than one type is assignable to the slot.
func (e *ElementProperty) IsChoice() bool {
	return len(e.AssignableTypeNames) > 1
}

// CanAssign reports whether name is already assignable to the slot.
func (e *ElementProperty) CanAssign(name string) bool {
	return slices.Contains(e.AssignableTypeNames, name)
}
