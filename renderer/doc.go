// Package renderer turns a target object model into source code.
//
// Three renderings are available:
//
//   - [RenderFile] writes a TypeScript module: header, imports of the runtime
//     base class, then enumerations, structs, behavioral interfaces and
//     classes in emission order.
//   - [RenderGo] writes a Go file built on package xmlnode: typed string
//     constants for enumerations, structs, marker interfaces, and classes with
//     constructors and an XMLNode method. The output is formatted with
//     golang.org/x/tools/imports.
//   - [RenderSample] writes a constructor expression for one class filled
//     with deterministic fake values, useful for documentation and smoke
//     tests of generated code.
//
// Example:
//
//	result, _ := converter.ConvertWithOptions(graph)
//	src, err := renderer.RenderGo(result.TypeSystem, renderer.WithPackageName("broker"))
//
// All renderings are pure functions of the type system and options, so the
// same input always yields byte-identical output.
package renderer
