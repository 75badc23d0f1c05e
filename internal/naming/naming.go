package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, slash, space) trigger capitalization of the next letter.
// Example: "journal_disk-sync" -> "JournalDiskSync"
// Example: "kahaDB" -> "KahaDB"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	// Casers are stateful and cannot be shared between goroutines.
	titleCaser := cases.Title(language.Und, cases.NoLower)

	var result strings.Builder
	result.Grow(len(s))
	capitalizeNext := true

	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == '/' || r == ' ' || r == ':' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteString(titleCaser.String(string(r)))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// ToCamelCase converts a string to camelCase.
// Like PascalCase but with the first letter lowercase.
// Example: "Purchase_order" -> "purchaseOrder"
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// ToTitleCase converts the first letter to uppercase and leaves the rest alone.
// Example: "shipto" -> "Shipto"
func ToTitleCase(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ToEnumKey turns an enumeration literal into a symbolic key: upper-cased,
// with characters that cannot appear in an identifier replaced by underscores.
// Example: "zeros" -> "ZEROS"
// Example: "periodic-sync" -> "PERIODIC_SYNC"
// Example: "1.0" -> "_1_0"
func ToEnumKey(value string) string {
	upper := cases.Upper(language.Und).String(value)
	var result strings.Builder
	result.Grow(len(upper) + 1)
	for i, r := range upper {
		switch {
		case unicode.IsLetter(r) || r == '_' || r == '$':
			result.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				result.WriteByte('_')
			}
			result.WriteRune(r)
		default:
			result.WriteByte('_')
		}
	}
	if result.Len() == 0 {
		return "_"
	}
	return result.String()
}

// singularRules are tried in order; the first matching suffix wins.
var singularRules = []struct {
	suffix, replacement string
}{
	{"ries", "ry"},
	{"cies", "cy"},
	{"s", ""},
}

// Singularize strips a plural suffix.
// Example: "destinations" -> "destination"
// Example: "policies" -> "policy"
// Example: "entries" -> "entry"
func Singularize(s string) string {
	for _, rule := range singularRules {
		if stem, ok := strings.CutSuffix(s, rule.suffix); ok {
			return stem + rule.replacement
		}
	}
	return s
}

// ToGoIdentifier converts a name into an exported Go identifier.
// Example: "kahaDB" -> "KahaDB"
// Example: "1st-choice" -> "X1stChoice"
func ToGoIdentifier(s string) string {
	var cleaned strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			cleaned.WriteRune(r)
		} else {
			cleaned.WriteByte('_')
		}
	}
	id := ToPascalCase(cleaned.String())
	if id == "" {
		return "X"
	}
	if r := []rune(id)[0]; !unicode.IsLetter(r) {
		id = "X" + id
	}
	return id
}
