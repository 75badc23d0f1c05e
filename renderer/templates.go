package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates *template.Template

func init() {
	var err error
	templates, err = template.New("").
		Funcs(templateFuncs).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		panic(err)
	}
}

var templateFuncs = template.FuncMap{
	"quote": strconv.Quote,
	"join":  strings.Join,
}

// executeTemplate executes a template by name and formats the result,
// dropping imports the file does not use.
func executeTemplate(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("renderer: executing %s: %w", name, err)
	}
	formatted, err := formatAndFixImports("model.go", buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("renderer: formatting generated code: %w", err)
	}
	return formatted, nil
}

// formatAndFixImports runs goimports-equivalent processing over src.
func formatAndFixImports(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}
