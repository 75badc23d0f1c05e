package xsderrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates the schema document could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrSchema indicates a schema construct could not be ingested.
	ErrSchema = errors.New("schema error")

	// ErrMalformedSchemaType indicates a simpleType or occurrence constraint
	// that has no valid interpretation.
	ErrMalformedSchemaType = errors.New("malformed schema type")

	// ErrInvalidComplexTypeDependency indicates a complexType derived from
	// another complex type.
	ErrInvalidComplexTypeDependency = errors.New("complex type cannot depend directly on a complex type")

	// ErrEmptyComplexType indicates a complexType declaring no content at all.
	ErrEmptyComplexType = errors.New("empty complex type")

	// ErrUnsupportedSchemaConstruct indicates a construct outside the supported subset.
	ErrUnsupportedSchemaConstruct = errors.New("unsupported schema construct")

	// ErrPatch indicates a graph patch failed.
	ErrPatch = errors.New("patch error")

	// ErrPatchTargetNotFound indicates a patch referenced a missing type or property.
	ErrPatchTargetNotFound = errors.New("patch target not found")

	// ErrPatchConflict indicates a patch would introduce a duplicate.
	ErrPatchConflict = errors.New("patch conflict")

	// ErrUnknownTypeReference indicates a type name that resolves nowhere.
	ErrUnknownTypeReference = errors.New("unknown type reference")

	// ErrUnresolvedTemplateValue indicates a field type with no sample value rule.
	ErrUnresolvedTemplateValue = errors.New("unresolved template value")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to decode a schema document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// SchemaError represents a schema construct that cannot be ingested.
type SchemaError struct {
	// Kind is the specific sentinel describing the failure, such as
	// ErrEmptyComplexType. Nil means a generic schema error.
	Kind error
	// TypeName is the schema type being processed (may be empty)
	TypeName string
	// Property is the attribute or element name being processed (may be empty)
	Property string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SchemaError) Error() string {
	msg := "schema error"
	if e.Kind != nil {
		msg = e.Kind.Error()
	}
	if e.TypeName != "" {
		msg += " in " + e.TypeName
		if e.Property != "" {
			msg += "." + e.Property
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrSchema, and also the sentinel stored in Kind.
func (e *SchemaError) Is(target error) bool {
	if target == ErrSchema {
		return true
	}
	return e.Kind != nil && target == e.Kind
}

// PatchError represents a patch that could not be applied to a type graph.
type PatchError struct {
	// Index is the position of the failing patch in the applied list
	Index int
	// Patch is the patch kind (e.g., "addType", "extendChoice")
	Patch string
	// TypeName is the type the patch targets
	TypeName string
	// Property is the property the patch targets (may be empty)
	Property string
	// IsConflict is true when the patch would introduce a duplicate,
	// false when its target was not found
	IsConflict bool
	// Message describes the failure
	Message string
}

// Error returns a human-readable error message.
func (e *PatchError) Error() string {
	msg := "patch target not found"
	if e.IsConflict {
		msg = "patch conflict"
	}
	msg += fmt.Sprintf(" (patch %d", e.Index)
	if e.Patch != "" {
		msg += ", " + e.Patch
	}
	msg += ")"
	if e.TypeName != "" {
		msg += ": " + e.TypeName
		if e.Property != "" {
			msg += "." + e.Property
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as PatchError has no underlying cause.
func (e *PatchError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *PatchError) Is(target error) bool {
	switch target {
	case ErrPatch:
		return true
	case ErrPatchConflict:
		return e.IsConflict
	case ErrPatchTargetNotFound:
		return !e.IsConflict
	}
	return false
}

// ReferenceError represents a type name that could not be resolved during
// conversion.
type ReferenceError struct {
	// TypeName is the unresolved type name
	TypeName string
	// Owner is the type declaring the reference (may be empty)
	Owner string
	// Property is the property carrying the reference (may be empty)
	Property string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "unknown type reference"
	if e.TypeName != "" {
		msg += ": " + e.TypeName
	}
	if e.Owner != "" {
		msg += " (from " + e.Owner
		if e.Property != "" {
			msg += "." + e.Property
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ReferenceError has no underlying cause.
func (e *ReferenceError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrUnknownTypeReference
}

// TemplateError represents a field for which no sample value can be produced.
type TemplateError struct {
	// Class is the class being instantiated
	Class string
	// Field is the field whose value is missing
	Field string
	// TypeName is the field type without a value rule
	TypeName string
}

// Error returns a human-readable error message.
func (e *TemplateError) Error() string {
	msg := "unresolved template value"
	if e.Class != "" {
		msg += " in " + e.Class
		if e.Field != "" {
			msg += "." + e.Field
		}
	}
	if e.TypeName != "" {
		msg += ": unable to generate value for type " + e.TypeName
	}
	return msg
}

// Unwrap returns nil as TemplateError has no underlying cause.
func (e *TemplateError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *TemplateError) Is(target error) bool {
	return target == ErrUnresolvedTemplateValue
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
