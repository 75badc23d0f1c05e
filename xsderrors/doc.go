// Package xsderrors provides structured error types for the xsdmodel library.
//
// Import path: github.com/erraggy/xsdmodel/xsderrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between the stages of a compilation that failed.
// Every error aborts the compilation; no partial output is produced.
//
// # Error Types
//
//   - [ParseError]: the schema document is not well-formed XML
//   - [SchemaError]: a schema construct cannot be turned into the type graph
//   - [PatchError]: a graph patch could not be applied
//   - [ReferenceError]: a type name could not be resolved during conversion
//   - [TemplateError]: a sample value could not be produced for a field
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrSchema]: Matches any [SchemaError]
//   - [ErrMalformedSchemaType], [ErrInvalidComplexTypeDependency],
//     [ErrEmptyComplexType], [ErrUnsupportedSchemaConstruct]: Match a
//     [SchemaError] of that kind
//   - [ErrPatch]: Matches any [PatchError]
//   - [ErrPatchTargetNotFound], [ErrPatchConflict]: Match a [PatchError] of that kind
//   - [ErrUnknownTypeReference]: Matches any [ReferenceError]
//   - [ErrUnresolvedTemplateValue]: Matches any [TemplateError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("shiporder.xsd"))
//	if errors.Is(err, xsderrors.ErrEmptyComplexType) {
//	    // Handle an empty complexType declaration
//	}
//
//	var schemaErr *xsderrors.SchemaError
//	if errors.As(err, &schemaErr) {
//	    fmt.Println("offending type:", schemaErr.TypeName)
//	}
package xsderrors
