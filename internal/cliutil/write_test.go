package cliutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/erraggy/xsdmodel/internal/issues"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Hello, %s!", "World")
	if got := buf.String(); got != "Hello, World!" {
		t.Errorf("Writef() = %q, want %q", got, "Hello, World!")
	}
}

func TestWritef_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Simple message")
	if got := buf.String(); got != "Simple message" {
		t.Errorf("Writef() = %q, want %q", got, "Simple message")
	}
}

func TestWritef_MultipleArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d items, %v active", "Status", 42, true)
	want := "Status: 42 items, true active"
	if got := buf.String(); got != want {
		t.Errorf("Writef() = %q, want %q", got, want)
	}
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (e errorWriter) Write(p []byte) (n int, err error) {
	return 0, &writeError{}
}

type writeError struct{}

func (e *writeError) Error() string {
	return "simulated write error"
}

func TestWritef_WriteError(t *testing.T) {
	// This test verifies that Writef handles write errors gracefully
	// by logging to stderr rather than panicking
	var ew errorWriter
	// Should not panic
	Writef(ew, "This will fail")
}

func TestWriteIssues(t *testing.T) {
	list := []issues.Issue{
		issues.Warning("broker.destinations", "choice member queue is not a class"),
		issues.Info("shiporder.note", "defaulted to xs:string"),
	}

	var quiet bytes.Buffer
	WriteIssues(&quiet, "Conversion", list, false)
	want := "Conversion issues:\n  ⚠ broker.destinations: choice member queue is not a class\n\n"
	if got := quiet.String(); got != want {
		t.Errorf("WriteIssues() = %q, want %q", got, want)
	}

	var verbose bytes.Buffer
	WriteIssues(&verbose, "Conversion", list, true)
	if got := verbose.String(); !strings.Contains(got, "ℹ shiporder.note") {
		t.Errorf("WriteIssues(verbose) = %q, missing info issue", got)
	}

	var none bytes.Buffer
	WriteIssues(&none, "Conversion", list[1:], false)
	if none.Len() != 0 {
		t.Errorf("WriteIssues() with only info issues wrote %q", none.String())
	}
}
