// Package converter turns a schema type graph into a target object model.
//
// # Overview
//
// The converter walks an ordered [schema.Graph] and emits [model] entities in
// four passes:
//
//  1. One Enum per enumeration simpleType. Keys are the upper-cased literals;
//     values are the literals unchanged.
//  2. For every complex type and then every element type: an attributes
//     Struct, an elements Struct, and a Class whose constructor takes
//     (attributes?, elements?) in that order.
//  3. For every element property with more than one assignable type: a
//     behavioral interface, recorded in a side table together with the
//     classes that must implement it.
//  4. Every class gets the interfaces whose side-table entry lists it,
//     sorted by name.
//
// Interfaces are declared while structs are built and attached only once
// every class exists, so a choice may name types emitted after its owner.
//
// # Quick Start
//
//	parsed, err := parser.ParseWithOptions(parser.WithFilePath("broker.xsd"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := converter.ConvertWithOptions(parsed.Graph,
//		converter.WithPropertyNameOverrides(map[string]string{"DLQ": "dlq"}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, c := range result.TypeSystem.Classes() {
//		fmt.Println(c.Definition())
//	}
//
// # Configuration
//
// A [Converter] is configured once through options and never changes
// afterwards; override maps are copied on construction. The same converter
// can convert any number of graphs.
//
// # Name Overrides
//
// Some schema names are not valid identifiers in the target language. A
// property name override replaces the model name while the original schema
// name is kept on the [model.Property] and forwarded to the runtime base
// class through the attrsNamesOverrides and elemsNamesOverrides arguments,
// so serialized XML still uses the schema name.
package converter
