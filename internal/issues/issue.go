// Package issues provides the non-fatal diagnostic type reported while
// ingesting and converting schemas.
package issues

import (
	"fmt"

	"github.com/erraggy/xsdmodel/internal/severity"
)

// Issue represents a single notice found during ingestion or conversion.
// Issues never abort a compilation; failures are returned as errors.
type Issue struct {
	// Path locates the construct in schema terms (e.g., "broker.persistenceAdapter")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Field is the specific attribute or element name involved
	Field string
	// Value is the problematic value (optional)
	Value any
	// Context provides additional information, such as the rule that was applied
	Context string
	// File is the schema source path (empty when not read from a file)
	File string
}

// New creates an issue with the given severity at path.
func New(sev severity.Severity, path, message string) Issue {
	return Issue{Path: path, Message: message, Severity: sev}
}

// Warning creates a warning issue at path.
func Warning(path, message string) Issue {
	return New(severity.SeverityWarning, path, message)
}

// Info creates an informational issue at path.
func Info(path, message string) Issue {
	return New(severity.SeverityInfo, path, message)
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, i.Location(), i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}

// Location returns "file: path" when the source file is known, or the path alone.
func (i Issue) Location() string {
	if i.File == "" {
		return i.Path
	}
	return i.File + ": " + i.Path
}

// Count returns the number of issues at each severity.
func Count(list []Issue) map[severity.Severity]int {
	counts := make(map[severity.Severity]int)
	for _, i := range list {
		counts[i.Severity]++
	}
	return counts
}
