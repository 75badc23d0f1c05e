package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/xsdmodel/internal/severity"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name        string
		issue       Issue
		contains    []string
		notContains []string
	}{
		{
			name:        "warning",
			issue:       Warning("broker.jmsBridgeConnectors", "choice has no element references"),
			contains:    []string{"⚠", "broker.jmsBridgeConnectors", "choice has no element references"},
			notContains: []string{"Context:"},
		},
		{
			name:     "info with context",
			issue:    Issue{Path: "shiporder.note", Message: "no type", Severity: severity.SeverityInfo, Context: "defaulted to xs:string"},
			contains: []string{"ℹ", "Context: defaulted to xs:string"},
		},
		{
			name:     "error with file",
			issue:    Issue{Path: "item", Message: "bad", Severity: severity.SeverityError, File: "shiporder.xsd"},
			contains: []string{"✗", "shiporder.xsd: item"},
		},
		{
			name:     "critical",
			issue:    New(severity.SeverityCritical, "x", "y"),
			contains: []string{"✗"},
		},
		{
			name:     "unknown severity",
			issue:    Issue{Path: "x", Message: "y", Severity: severity.Severity(99)},
			contains: []string{"?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.issue.String()
			for _, c := range tt.contains {
				assert.Contains(t, s, c)
			}
			for _, c := range tt.notContains {
				assert.NotContains(t, s, c)
			}
		})
	}
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "item.quantity", Info("item.quantity", "m").Location())
	assert.Equal(t, "a.xsd: item", Issue{Path: "item", File: "a.xsd"}.Location())
}

func TestCount(t *testing.T) {
	list := []Issue{Warning("a", "m"), Warning("b", "m"), Info("c", "m")}
	counts := Count(list)
	assert.Equal(t, 2, counts[severity.SeverityWarning])
	assert.Equal(t, 1, counts[severity.SeverityInfo])
	assert.Zero(t, counts[severity.SeverityError])
}
