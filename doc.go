// Package xsdmodel compiles XML Schema (XSD) documents into strongly typed
// object models whose instances serialize back to schema-conformant XML.
//
// # Overview
//
// The compiler is a pipeline of small packages:
//
//   - parser: ingest an XSD document into a schema type graph
//   - schema: the graph itself, plus patches that add types or widen choices
//   - converter: map the graph to a target object model of enumerations,
//     structs, behavioral interfaces and classes
//   - model: the target object model and its TypeScript definitions
//   - renderer: write the model as a TypeScript module, a Go file, or a
//     sample constructor expression
//   - xmlnode: the runtime generated Go classes serialize through
//
// # Quick Start
//
// Compile a schema into TypeScript:
//
//	parsed, err := parser.ParseWithOptions(parser.WithFilePath("shiporder.xsd"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := converter.ConvertWithOptions(parsed.Graph)
//	if err != nil {
//		log.Fatal(err)
//	}
//	src, err := renderer.RenderFile(result.TypeSystem)
//
// Patch the graph before converting to model extension points a schema
// leaves open, such as xs:any slots:
//
//	err = parsed.Graph.Apply(
//		schema.AddTypePatch{Type: &schema.ElementType{Name: "cachedLDAPAuthorizationMap"}},
//		schema.ExtendChoicePatch{TypeName: "authorizationPlugin", PropertyName: "map",
//			AssignableTypeName: "cachedLDAPAuthorizationMap"},
//	)
//
// # Errors
//
// Every failure is typed in package xsderrors and matches a sentinel with
// errors.Is. Non-fatal findings such as skipped constructs are reported as
// issues on the parse and convert results.
//
// # Command Line
//
// The xsdmodel command (cmd/xsdmodel) wraps the pipeline with generate,
// inspect, sample and mcp subcommands, and reads conversion settings from a
// YAML configuration file.
package xsdmodel
