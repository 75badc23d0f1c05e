package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/xsdmodel/renderer"
)

type sampleInput struct {
	Schema        schemaInput `json:"schema"                   jsonschema:"The XSD document to compile"`
	Config        string      `json:"config,omitempty"         jsonschema:"Path to a YAML compile configuration"`
	ConfigContent string      `json:"config_content,omitempty" jsonschema:"Inline YAML compile configuration"`
	Class         string      `json:"class"                    jsonschema:"Name of the compiled class to instantiate"`
	Seed          *int64      `json:"seed,omitempty"           jsonschema:"Seed for the fake value generator (default 1)"`
	Depth         int         `json:"depth,omitempty"          jsonschema:"Nesting depth down to which optional fields are filled (default 4)"`
}

type sampleOutput struct {
	Class      string `json:"class"`
	Seed       int64  `json:"seed"`
	Depth      int    `json:"depth"`
	Expression string `json:"expression"`
}

func handleSample(ctx context.Context, _ *mcp.CallToolRequest, input sampleInput) (*mcp.CallToolResult, sampleOutput, error) {
	if input.Class == "" {
		return errResult(fmt.Errorf("class is required")), sampleOutput{}, nil
	}
	seed := cfg.SampleSeed
	if input.Seed != nil {
		seed = *input.Seed
	}
	depth := cfg.SampleDepth
	if input.Depth > 0 {
		depth = input.Depth
	}

	res, err := compileSchema(ctx, input.Schema, configInput{input.Config, input.ConfigContent})
	if err != nil {
		return errResult(err), sampleOutput{}, nil
	}
	expr, err := renderer.RenderSample(res.converted.TypeSystem, input.Class,
		renderer.WithSeed(seed),
		renderer.WithMaxDepth(depth),
	)
	if err != nil {
		return errResult(err), sampleOutput{}, nil
	}
	return nil, sampleOutput{Class: input.Class, Seed: seed, Depth: depth, Expression: expr}, nil
}
