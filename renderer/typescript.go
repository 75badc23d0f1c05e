package renderer

import (
	"strings"

	"github.com/erraggy/xsdmodel/model"
	"github.com/erraggy/xsdmodel/xsderrors"
)

// RenderFile renders ts as a TypeScript module.
func RenderFile(ts *model.TypeSystem, opts ...Option) ([]byte, error) {
	if ts == nil {
		return nil, &xsderrors.ConfigError{Option: "typeSystem", Message: "type system cannot be nil"}
	}
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	var sections []string
	if cfg.header != "" {
		sections = append(sections, blockComment(cfg.header))
	}

	if imports := ts.Imports(); len(imports) > 0 {
		lines := make([]string, len(imports))
		for i, imp := range imports {
			lines[i] = "import { " + strings.Join(imp.Names, ", ") + " } from '" + imp.Module + "';"
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	for _, e := range ts.Enums() {
		sections = append(sections, e.Definition())
	}
	for _, s := range ts.Structs() {
		sections = append(sections, s.Definition())
	}
	for _, i := range ts.Interfaces() {
		sections = append(sections, i.Definition())
	}
	for _, c := range ts.Classes() {
		sections = append(sections, c.Definition())
	}

	cfg.logger.Debug("rendered typescript module", "types", ts.Len())
	if len(sections) == 0 {
		return []byte{}, nil
	}
	return []byte(strings.Join(sections, "\n\n") + "\n"), nil
}

// blockComment wraps text in a /** */ comment.
func blockComment(text string) string {
	var sb strings.Builder
	sb.WriteString("/**\n")
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if line == "" {
			sb.WriteString(" *\n")
			continue
		}
		sb.WriteString(" * ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString(" */")
	return sb.String()
}

// lineComment prefixes each line of text with //.
func lineComment(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = "//"
		} else {
			lines[i] = "// " + line
		}
	}
	return strings.Join(lines, "\n")
}
