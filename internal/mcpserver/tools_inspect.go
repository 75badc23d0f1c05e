package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/xsdmodel/model"
	"github.com/erraggy/xsdmodel/schema"
)

const (
	stageSchema = "schema"
	stageModel  = "model"
)

type inspectInput struct {
	Schema        schemaInput `json:"schema"                   jsonschema:"The XSD document to inspect"`
	Config        string      `json:"config,omitempty"         jsonschema:"Path to a YAML compile configuration"`
	ConfigContent string      `json:"config_content,omitempty" jsonschema:"Inline YAML compile configuration"`
	Stage         string      `json:"stage,omitempty"          jsonschema:"schema (ingested type graph) or model (compiled entities, default)"`
	Name          string      `json:"name,omitempty"           jsonschema:"Filter by type name (case-insensitive exact match, or glob with * and ?)"`
	Kind          string      `json:"kind,omitempty"           jsonschema:"Filter by kind (schema: value, simple, enumeration, complex, element; model: enum, struct, interface, class)"`
	Detail        bool        `json:"detail,omitempty"         jsonschema:"Include properties (schema stage) or definitions (model stage)"`
	GroupBy       string      `json:"group_by,omitempty"       jsonschema:"Group results and return counts instead of individual items. Values: kind"`
	Offset        int         `json:"offset,omitempty"         jsonschema:"Skip the first N results (for pagination)"`
	Limit         int         `json:"limit,omitempty"          jsonschema:"Maximum number of results to return (default 100)"`
}

type schemaPropertySummary struct {
	Name     string   `json:"name"`
	Types    []string `json:"types"`
	Required bool     `json:"required,omitempty"`
	Repeated bool     `json:"repeated,omitempty"`
}

type inspectItem struct {
	Name       string                  `json:"name"`
	Kind       string                  `json:"kind"`
	BaseType   string                  `json:"base_type,omitempty"`
	Namespace  string                  `json:"namespace,omitempty"`
	InstanceOf string                  `json:"instance_of,omitempty"`
	Values     []string                `json:"values,omitempty"`
	Attributes []schemaPropertySummary `json:"attributes,omitempty"`
	Elements   []schemaPropertySummary `json:"elements,omitempty"`
	Definition string                  `json:"definition,omitempty"`
}

type inspectOutput struct {
	Stage    string        `json:"stage"`
	Total    int           `json:"total"`
	Matched  int           `json:"matched"`
	Returned int           `json:"returned"`
	Items    []inspectItem `json:"items,omitempty"`
	Groups   []groupCount  `json:"groups,omitempty"`
}

func handleInspect(ctx context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	stage := strings.ToLower(input.Stage)
	if stage == "" {
		stage = stageModel
	}
	if stage != stageSchema && stage != stageModel {
		return errResult(fmt.Errorf("invalid stage %q; valid values: %s, %s", input.Stage, stageSchema, stageModel)), inspectOutput{}, nil
	}
	if err := validateGroupBy(input.GroupBy, input.Detail, []string{"kind"}); err != nil {
		return errResult(err), inspectOutput{}, nil
	}
	if err := validateGlobPattern(input.Name); err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	var all []inspectItem
	if stage == stageSchema {
		c, err := configInput{input.Config, input.ConfigContent}.load()
		if err != nil {
			return errResult(err), inspectOutput{}, nil
		}
		parsed, err := input.Schema.resolve(ctx, len(c.Patches) > 0, c.ParserOptions()...)
		if err != nil {
			return errResult(err), inspectOutput{}, nil
		}
		if err := parsed.Graph.Apply(c.SchemaPatches()...); err != nil {
			return errResult(err), inspectOutput{}, nil
		}
		all = schemaItems(parsed.Graph, input.Detail)
	} else {
		res, err := compileSchema(ctx, input.Schema, configInput{input.Config, input.ConfigContent})
		if err != nil {
			return errResult(err), inspectOutput{}, nil
		}
		all = modelItems(res.converted.TypeSystem, input.Detail)
	}

	matched := makeSlice[inspectItem](len(all))
	for _, item := range all {
		if input.Kind != "" && !strings.EqualFold(item.Kind, input.Kind) {
			continue
		}
		if !matchGlobName(item.Name, input.Name) {
			continue
		}
		matched = append(matched, item)
	}

	output := inspectOutput{Stage: stage, Total: len(all), Matched: len(matched)}
	if input.GroupBy != "" {
		output.Groups = groupAndSort(matched, func(item inspectItem) string { return item.Kind })
		return nil, output, nil
	}

	limit := input.Limit
	if input.Detail {
		limit = detailLimit(limit)
	}
	output.Items = paginate(matched, input.Offset, limit)
	output.Returned = len(output.Items)
	return nil, output, nil
}

func schemaItems(g *schema.Graph, detail bool) []inspectItem {
	items := makeSlice[inspectItem](g.Len())
	for _, t := range g.Types() {
		item := inspectItem{Name: t.TypeName(), Kind: string(t.Kind())}
		switch t := t.(type) {
		case *schema.SimpleType:
			item.BaseType = t.BaseType
		case *schema.EnumerationType:
			item.BaseType = t.BaseType
			if detail {
				item.Values = t.Values
			}
		case *schema.ElementType:
			item.Namespace = t.Namespace
			item.InstanceOf = t.InstanceOf
		}
		if c, ok := t.(schema.Container); ok && detail {
			item.Attributes, item.Elements = contentSummary(c.ContainerContent())
		}
		items = append(items, item)
	}
	return items
}

func contentSummary(c *schema.Content) (attrs, elems []schemaPropertySummary) {
	attrs = makeSlice[schemaPropertySummary](len(c.Attributes))
	for _, a := range c.Attributes {
		attrs = append(attrs, schemaPropertySummary{Name: a.Name, Types: []string{a.TypeName}, Required: a.IsRequired()})
	}
	elems = makeSlice[schemaPropertySummary](len(c.Elements))
	for _, e := range c.Elements {
		elems = append(elems, schemaPropertySummary{
			Name:     e.Name,
			Types:    e.AssignableTypeNames,
			Required: !e.IsOptional(),
			Repeated: e.IsRepeated(),
		})
	}
	return attrs, elems
}

func modelItems(ts *model.TypeSystem, detail bool) []inspectItem {
	items := makeSlice[inspectItem](ts.Len())
	for _, t := range ts.Types() {
		item := inspectItem{Name: t.TypeName(), Kind: string(t.Kind())}
		if detail {
			item.Definition = t.Definition()
		}
		items = append(items, item)
	}
	return items
}
