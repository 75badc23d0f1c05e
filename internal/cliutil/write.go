// Package cliutil provides output helpers for the xsdmodel command.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/xsdmodel/internal/issues"
	"github.com/erraggy/xsdmodel/internal/severity"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteIssues writes one indented line per issue under a heading naming the
// stage that reported them. Informational issues are skipped unless verbose.
func WriteIssues(w io.Writer, stage string, list []issues.Issue, verbose bool) {
	shown := 0
	for _, iss := range list {
		if iss.Severity == severity.SeverityInfo && !verbose {
			continue
		}
		if shown == 0 {
			Writef(w, "%s issues:\n", stage)
		}
		Writef(w, "  %s\n", iss)
		shown++
	}
	if shown > 0 {
		Writef(w, "\n")
	}
}
