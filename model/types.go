package model

import (
	"strings"
)

// Kind identifies the kind of a model entity.
type Kind string

const (
	// KindEnum is an enumeration of string literals.
	KindEnum Kind = "enum"
	// KindStruct is a data-only structural interface.
	KindStruct Kind = "struct"
	// KindInterface is a member-less behavioral interface.
	KindInterface Kind = "interface"
	// KindClass is a constructible class.
	KindClass Kind = "class"
)

// Type is an entity of the target object model.
type Type interface {
	TypeName() string
	Kind() Kind
	// Definition renders the entity as TypeScript source.
	Definition() string
	isType()
}

// Property is a struct field or a constructor parameter.
type Property struct {
	Name       string
	TypeName   string
	IsArray    bool
	IsOptional bool
	// OriginalName is the schema name when Name was overridden.
	OriginalName string
}

// WireName is the name used in serialized XML.
func (p Property) WireName() string {
	if p.OriginalName != "" {
		return p.OriginalName
	}
	return p.Name
}

// Overridden reports whether the model name differs from the wire name.
func (p Property) Overridden() bool {
	return p.OriginalName != "" && p.OriginalName != p.Name
}

// Signature renders the property as "readonly name?: Type[]".
func (p Property) Signature() string {
	var sb strings.Builder
	sb.WriteString("readonly ")
	sb.WriteString(p.Name)
	if p.IsOptional {
		sb.WriteByte('?')
	}
	sb.WriteString(": ")
	sb.WriteString(p.TypeName)
	if p.IsArray {
		sb.WriteString("[]")
	}
	return sb.String()
}

// EnumMember is one symbolic key and its literal value.
type EnumMember struct {
	Key   string
	Value string
}

// Enum is a closed set of string literals.
type Enum struct {
	Name    string
	Members []EnumMember
}

func (e *Enum) TypeName() string { return e.Name }
func (e *Enum) Kind() Kind       { return KindEnum }
func (*Enum) isType()            {}

// Definition renders "export enum Name {" followed by one KEY = 'value' line per member.
func (e *Enum) Definition() string {
	lines := make([]string, 0, len(e.Members)+2)
	lines = append(lines, "export enum "+e.Name+" { ")
	for _, m := range e.Members {
		lines = append(lines, m.Key+" = "+quote(m.Value)+",")
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// Member returns the member with the given key.
func (e *Enum) Member(key string) (EnumMember, bool) {
	for _, m := range e.Members {
		if m.Key == key {
			return m, true
		}
	}
	return EnumMember{}, false
}

// Struct is a data-only aggregate of read-only fields.
type Struct struct {
	Name       string
	Properties []Property
}

func (s *Struct) TypeName() string { return s.Name }
func (s *Struct) Kind() Kind       { return KindStruct }
func (*Struct) isType()            {}

func (s *Struct) Definition() string {
	lines := make([]string, 0, len(s.Properties)+2)
	lines = append(lines, "export interface "+s.Name+" {")
	for _, p := range s.Properties {
		lines = append(lines, p.Signature()+";")
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// AllOptional reports whether every field may be omitted.
func (s *Struct) AllOptional() bool {
	for _, p := range s.Properties {
		if !p.IsOptional {
			return false
		}
	}
	return true
}

// Property returns the field with the given model name.
func (s *Struct) Property(name string) (Property, bool) {
	for _, p := range s.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// BehavioralInterface is a member-less contract marking membership in a choice.
type BehavioralInterface struct {
	Name string
}

func (i *BehavioralInterface) TypeName() string { return i.Name }
func (i *BehavioralInterface) Kind() Kind       { return KindInterface }
func (*BehavioralInterface) isType()            {}

func (i *BehavioralInterface) Definition() string {
	return "export interface " + i.Name + " { }"
}

// Parameter names a class constructor may declare.
const (
	ParamAttributes = "attributes"
	ParamElements   = "elements"
	ParamTagName    = "tagName"
	ParamNamespace  = "namespace"
)

// Extends is the base class of a Class and the arguments passed to its constructor.
type Extends struct {
	Class string
	// Module is the import path of Class, relative to the generated file.
	// Empty when Class is defined in the same file.
	Module    string
	SuperArgs []Expr
}

// Class is a constructible type.
type Class struct {
	Name string
	// Params is nil for a class without a constructor parameter list.
	Params     []Property
	Extends    *Extends
	Implements []string

	// TagName is the wire tag of element classes; empty for complex-type
	// classes, whose tag is supplied by the caller.
	TagName   string
	Namespace string
}

func (c *Class) TypeName() string { return c.Name }
func (c *Class) Kind() Kind       { return KindClass }
func (*Class) isType()            {}

// Param returns the constructor parameter with the given name.
func (c *Class) Param(name string) (Property, bool) {
	for _, p := range c.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// IsComplex reports whether the class models a complex type, which has no
// tag of its own.
func (c *Class) IsComplex() bool {
	_, ok := c.Param(ParamTagName)
	return ok
}

// Definition renders the class declaration with its constructor.
func (c *Class) Definition() string {
	var lines []string
	lines = append(lines, "export class "+c.Name)
	if c.Extends != nil {
		lines = append(lines, "extends "+c.Extends.Class)
	}
	if len(c.Implements) > 0 {
		lines = append(lines, "implements")
		lines = append(lines, strings.Join(c.Implements, ",\n"))
	}
	lines = append(lines, "{")

	switch {
	case c.Params != nil:
		lines = append(lines, "constructor(")
		for _, p := range c.Params {
			lines = append(lines, "public "+p.Signature()+",")
		}
		lines = append(lines, ") {")
		if c.Extends != nil {
			lines = append(lines, c.Extends.superCall())
		}
		lines = append(lines, "}")
	case c.Extends != nil:
		lines = append(lines, "constructor() {")
		lines = append(lines, c.Extends.superCall())
		lines = append(lines, "}")
	}

	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

func (e *Extends) superCall() string {
	args := make([]string, len(e.SuperArgs))
	for i, a := range e.SuperArgs {
		args[i] = a.render(0)
	}
	return "super(" + strings.Join(args, ", ") + ");"
}
