package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "single lowercase letter", input: "a", want: "A"},
		{name: "camelCase", input: "journalDiskSyncStrategy", want: "JournalDiskSyncStrategy"},
		{name: "trailing acronym", input: "kahaDB", want: "KahaDB"},
		{name: "all caps", input: "DLQ", want: "DLQ"},
		{name: "snake_case", input: "user_profile", want: "UserProfile"},
		{name: "kebab-case", input: "get-user-by-id", want: "GetUserById"},
		{name: "dot separator", input: "com.example.api", want: "ComExampleApi"},
		{name: "qualified name", input: "xs:string", want: "XsString"},
		{name: "space separator", input: "ship to", want: "ShipTo"},
		{name: "unicode lowercase", input: "über_user", want: "ÜberUser"},
		{name: "leading number", input: "123_abc", want: "123Abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascalCase(tt.input))
		})
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"PurchaseOrder", "purchaseOrder"},
		{"purchase_order", "purchaseOrder"},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCamelCase(tt.input))
		})
	}
}

func TestToTitleCase(t *testing.T) {
	assert.Equal(t, "", ToTitleCase(""))
	assert.Equal(t, "Shipto", ToTitleCase("shipto"))
	assert.Equal(t, "KahaDB", ToTitleCase("kahaDB"))
	assert.Equal(t, "Journal_disk", ToTitleCase("journal_disk"), "separators are left alone")
	assert.Equal(t, "Éclair", ToTitleCase("éclair"))
}

func TestToEnumKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"zeros", "ZEROS"},
		{"sparse_file", "SPARSE_FILE"},
		{"periodic-sync", "PERIODIC_SYNC"},
		{"Always", "ALWAYS"},
		{"1.0", "_1_0"},
		{"v2", "V2"},
		{"", "_"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToEnumKey(tt.input))
		})
	}
}

func TestSingularize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"destinations", "destination"},
		{"entries", "entry"},
		{"policies", "policy"},
		{"plugins", "plugin"},
		{"persistenceAdapter", "persistenceAdapter"},
		{"s", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Singularize(tt.input))
		})
	}
}

func TestToGoIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"kahaDB", "KahaDB"},
		{"DLQ", "DLQ"},
		{"1st-choice", "X1stChoice"},
		{"journal.max", "JournalMax"},
		{"", "X"},
		{"---", "X"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToGoIdentifier(tt.input))
		})
	}
}
