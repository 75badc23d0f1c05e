package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/xsdmodel/converter"
	"github.com/erraggy/xsdmodel/internal/config"
	"github.com/erraggy/xsdmodel/internal/fileutil"
	"github.com/erraggy/xsdmodel/internal/issues"
	"github.com/erraggy/xsdmodel/parser"
	"github.com/erraggy/xsdmodel/renderer"
)

// configInput selects the optional compile configuration: a file path or
// inline YAML, never both.
type configInput struct {
	Config        string
	ConfigContent string
}

func (c configInput) load() (*config.Config, error) {
	switch {
	case c.Config != "" && c.ConfigContent != "":
		return nil, fmt.Errorf("at most one of config or config_content may be provided")
	case c.Config != "":
		return config.Load(c.Config)
	case c.ConfigContent != "":
		return config.Parse([]byte(c.ConfigContent))
	}
	return &config.Config{}, nil
}

// compiled bundles the output of the ingestion and conversion stages.
type compiled struct {
	parsed    *parser.ParseResult
	converted *converter.ConvertResult
}

// compileSchema ingests the schema and converts it with the configuration.
func compileSchema(ctx context.Context, in schemaInput, ci configInput) (*compiled, error) {
	c, err := ci.load()
	if err != nil {
		return nil, err
	}
	parsed, err := in.resolve(ctx, len(c.Patches) > 0, c.ParserOptions()...)
	if err != nil {
		return nil, err
	}
	logger := parser.NewSlogAdapter(nil).With("source", parsed.SourcePath)
	converted, err := c.Convert(parsed.Graph, converter.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &compiled{parsed: parsed, converted: converted}, nil
}

type issueOutput struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
	Context  string `json:"context,omitempty"`
}

func makeIssueOutputs(list ...[]issues.Issue) []issueOutput {
	n := 0
	for _, l := range list {
		n += len(l)
	}
	out := makeSlice[issueOutput](n)
	for _, l := range list {
		for _, iss := range l {
			out = append(out, issueOutput{
				Severity: iss.Severity.String(),
				Path:     iss.Location(),
				Message:  iss.Message,
				Context:  iss.Context,
			})
		}
	}
	return out
}

type compileInput struct {
	Schema        schemaInput `json:"schema"                   jsonschema:"The XSD document to compile"`
	Config        string      `json:"config,omitempty"         jsonschema:"Path to a YAML compile configuration"`
	ConfigContent string      `json:"config_content,omitempty" jsonschema:"Inline YAML compile configuration"`
	Lang          string      `json:"lang,omitempty"           jsonschema:"Target language: ts (default) or go"`
	Package       string      `json:"package,omitempty"        jsonschema:"Go package name (lang=go only, default model)"`
	Header        string      `json:"header,omitempty"         jsonschema:"Comment placed at the top of the rendered source"`
	Output        string      `json:"output,omitempty"         jsonschema:"File path to write the rendered source to instead of returning it inline"`
}

type compileOutput struct {
	Lang            string        `json:"lang"`
	TargetNamespace string        `json:"target_namespace,omitempty"`
	SchemaTypeCount int           `json:"schema_type_count"`
	EnumCount       int           `json:"enum_count"`
	StructCount     int           `json:"struct_count"`
	InterfaceCount  int           `json:"interface_count"`
	ClassCount      int           `json:"class_count"`
	WarningCount    int           `json:"warning_count"`
	Issues          []issueOutput `json:"issues,omitempty"`
	WrittenTo       string        `json:"written_to,omitempty"`
	Code            string        `json:"code,omitempty"`
}

func handleCompile(ctx context.Context, _ *mcp.CallToolRequest, input compileInput) (*mcp.CallToolResult, compileOutput, error) {
	lang := input.Lang
	if lang == "" {
		lang = cfg.Language
	}
	if lang != langTypeScript && lang != langGo {
		return errResult(fmt.Errorf("invalid lang %q; valid values: %s, %s", lang, langTypeScript, langGo)), compileOutput{}, nil
	}

	res, err := compileSchema(ctx, input.Schema, configInput{input.Config, input.ConfigContent})
	if err != nil {
		return errResult(err), compileOutput{}, nil
	}

	var opts []renderer.Option
	if input.Header != "" {
		opts = append(opts, renderer.WithHeader(input.Header))
	}
	var code []byte
	if lang == langGo {
		if input.Package != "" {
			opts = append(opts, renderer.WithPackageName(input.Package))
		}
		code, err = renderer.RenderGo(res.converted.TypeSystem, opts...)
	} else {
		code, err = renderer.RenderFile(res.converted.TypeSystem, opts...)
	}
	if err != nil {
		return errResult(err), compileOutput{}, nil
	}

	cr := res.converted
	output := compileOutput{
		Lang:            lang,
		TargetNamespace: res.parsed.TargetNamespace,
		SchemaTypeCount: res.parsed.Graph.Len(),
		EnumCount:       cr.EnumCount,
		StructCount:     cr.StructCount,
		InterfaceCount:  cr.InterfaceCount,
		ClassCount:      cr.ClassCount,
		WarningCount:    cr.WarningCount,
		Issues:          makeIssueOutputs(res.parsed.Issues, cr.Issues),
	}

	if input.Output != "" {
		if err := fileutil.WriteGenerated(input.Output, code); err != nil {
			return errResult(err), compileOutput{}, nil
		}
		output.WrittenTo = input.Output
		return nil, output, nil
	}
	output.Code = string(code)
	return nil, output, nil
}
