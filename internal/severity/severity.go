// Package severity provides severity level constants for issues reported
// by the parser and converter packages.
//
// The levels, from least to most severe:
//   - SeverityInfo: a default was applied (e.g., an untyped attribute became xs:string)
//   - SeverityWarning: a construct was skipped or a duplicate definition was dropped
//   - SeverityError: a construct is invalid but processing could continue
//   - SeverityCritical: a construct was lost entirely
package severity

// Severity indicates the severity level of an issue.
type Severity int

const (
	// SeverityError indicates an invalid construct that did not abort processing.
	SeverityError Severity = iota

	// SeverityWarning indicates a construct that was skipped or altered.
	SeverityWarning

	// SeverityInfo indicates an informational notice about a processing choice.
	SeverityInfo

	// SeverityCritical indicates a construct that could not be represented at all.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
