// Package parser ingests XML Schema (XSD) documents into a [schema.Graph].
//
// The supported subset is the one needed to describe configuration-style
// vocabularies: simpleType restrictions (aliases and string enumerations),
// complexType with a sequence or choice, top-level elements, and attributes
// with a use constraint.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("shiporder.xsd"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, t := range result.Graph.Types() {
//		fmt.Println(t.Kind(), t.TypeName())
//	}
//
// # Name Normalization
//
// The prefix bound to the XSD namespace is rewritten to "xs" in every type,
// base and ref attribute, so "xsd:string" and "xs:string" name the same type.
// Prefixes bound to the target namespace, and the conventional "tns", are
// stripped.
//
// # Emission Order
//
// Types are appended after the default value types in this order: aliases,
// enumerations, containers without content, containers with attributes
// only, and containers with elements. A container referenced by another
// container's element slot always precedes it. Ties keep document order.
//
// # Anonymous Types
//
// A child element declared with an anonymous complexType is hoisted into an
// element type named after the child. Only one level of such nesting is
// supported; deeper nesting fails with [xsderrors.ErrUnsupportedSchemaConstruct].
// A child whose anonymous type is a choice of element references becomes a
// single slot assignable from every referenced element.
//
// Non-fatal notices (skipped wildcards, defaulted types, prohibited
// attributes) are returned in [ParseResult.Issues].
package parser
