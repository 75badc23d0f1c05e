package converter

import (
	"github.com/erraggy/xsdmodel/schema"
	"github.com/erraggy/xsdmodel/xsderrors"
)

// TypeResolver maps a schema type name to the name of its target model type.
// It returns an *xsderrors.ReferenceError when the name is unknown.
type TypeResolver func(name string, g *schema.Graph) (string, error)

// Target primitive type names.
const (
	TargetString  = "string"
	TargetNumber  = "number"
	TargetBoolean = "boolean"
	TargetDate    = "Date"
)

var primitives = map[string]string{
	"xs:boolean": TargetBoolean,

	"xs:string":           TargetString,
	"xs:normalizedString": TargetString,
	"xs:token":            TargetString,
	"xs:language":         TargetString,
	"xs:Name":             TargetString,
	"xs:NCName":           TargetString,
	"xs:NMTOKEN":          TargetString,
	"xs:ID":               TargetString,
	"xs:IDREF":            TargetString,
	"xs:anyURI":           TargetString,
	"xs:QName":            TargetString,
	"xs:time":             TargetString,
	"xs:duration":         TargetString,

	"xs:byte":               TargetNumber,
	"xs:short":              TargetNumber,
	"xs:int":                TargetNumber,
	"xs:integer":            TargetNumber,
	"xs:long":               TargetNumber,
	"xs:float":              TargetNumber,
	"xs:double":             TargetNumber,
	"xs:decimal":            TargetNumber,
	"xs:positiveInteger":    TargetNumber,
	"xs:nonNegativeInteger": TargetNumber,
	"xs:negativeInteger":    TargetNumber,
	"xs:nonPositiveInteger": TargetNumber,
	"xs:unsignedByte":       TargetNumber,
	"xs:unsignedShort":      TargetNumber,
	"xs:unsignedInt":        TargetNumber,
	"xs:unsignedLong":       TargetNumber,

	"xs:date":     TargetDate,
	"xs:dateTime": TargetDate,
}

// PrimitiveType returns the target type of a built-in XSD type.
func PrimitiveType(name string) (string, bool) {
	t, ok := primitives[name]
	return t, ok
}

// maxAliasDepth bounds alias chains so a cyclic alias cannot recurse forever.
const maxAliasDepth = 32

// DefaultTypeResolver resolves primitives through the built-in table,
// enumerations and containers to their capitalized name, and aliases to
// whatever their base resolves to. Value types missing from the table
// resolve to string.
func DefaultTypeResolver(capitalize func(string) string) TypeResolver {
	var resolve func(name string, g *schema.Graph, depth int) (string, error)
	resolve = func(name string, g *schema.Graph, depth int) (string, error) {
		if t, ok := primitives[name]; ok {
			return t, nil
		}
		if depth > maxAliasDepth {
			return "", &xsderrors.ReferenceError{TypeName: name, Message: "alias chain too long"}
		}
		found, ok := g.Lookup(name)
		if !ok {
			return "", &xsderrors.ReferenceError{TypeName: name}
		}
		switch t := found.(type) {
		case *schema.SimpleType:
			return resolve(t.BaseType, g, depth+1)
		case *schema.ValueType:
			// Value types outside the table carry text.
			return TargetString, nil
		default:
			return capitalize(found.TypeName()), nil
		}
	}
	return func(name string, g *schema.Graph) (string, error) {
		return resolve(name, g, 0)
	}
}
