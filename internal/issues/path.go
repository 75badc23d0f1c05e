package issues

import "strings"

// FormatPath joins schema path segments with dots, skipping empty segments.
// Example: FormatPath("broker", "", "persistenceAdapter") -> "broker.persistenceAdapter"
func FormatPath(segments ...string) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}
