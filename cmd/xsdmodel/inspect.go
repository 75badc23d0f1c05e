package main

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/xsdmodel/internal/cliutil"
	"github.com/erraggy/xsdmodel/schema"
)

// Output formats of the inspect command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func (a *app) inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "summarize the ingested type graph and the compiled model",
		ArgsUsage: "<schema.xsd>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: text, json or yaml",
				Value: FormatText,
				Validator: func(v string) error {
					if v != FormatText && v != FormatJSON && v != FormatYAML {
						return fmt.Errorf("invalid format %q; valid formats: %s, %s, %s", v, FormatText, FormatJSON, FormatYAML)
					}
					return nil
				},
			},
		},
		Action: a.runInspect,
	}
}

type typeSummary struct {
	Name string `json:"name" yaml:"name"`
	Kind string `json:"kind" yaml:"kind"`
}

type inspectReport struct {
	Schema          string         `json:"schema"                    yaml:"schema"`
	TargetNamespace string         `json:"targetNamespace,omitempty" yaml:"targetNamespace,omitempty"`
	SchemaTypes     []typeSummary  `json:"schemaTypes"               yaml:"schemaTypes"`
	SchemaKinds     map[string]int `json:"schemaKinds"               yaml:"schemaKinds"`
	ModelTypes      []typeSummary  `json:"modelTypes"                yaml:"modelTypes"`
	ModelKinds      map[string]int `json:"modelKinds"                yaml:"modelKinds"`
	HoistedElements int            `json:"hoistedElements"           yaml:"hoistedElements"`
	Choices         int            `json:"choices"                   yaml:"choices"`
}

func (a *app) runInspect(_ context.Context, cmd *cli.Command) error {
	res, err := a.compile(cmd)
	if err != nil {
		return err
	}

	g := res.parsed.Graph
	report := inspectReport{
		Schema:          res.parsed.SourcePath,
		TargetNamespace: res.parsed.TargetNamespace,
		SchemaKinds:     make(map[string]int),
		ModelKinds:      make(map[string]int),
		HoistedElements: res.parsed.Stats.HoistedElementCount,
		Choices:         schemaChoiceCount(g),
	}
	for _, t := range g.Types() {
		report.SchemaTypes = append(report.SchemaTypes, typeSummary{Name: t.TypeName(), Kind: string(t.Kind())})
		report.SchemaKinds[string(t.Kind())]++
	}
	for _, t := range res.converted.TypeSystem.Types() {
		report.ModelTypes = append(report.ModelTypes, typeSummary{Name: t.TypeName(), Kind: string(t.Kind())})
		report.ModelKinds[string(t.Kind())]++
	}

	switch cmd.String("format") {
	case FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling to json: %w", err)
		}
		cliutil.Writef(a.stdout, "%s\n", data)
	case FormatYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshaling to yaml: %w", err)
		}
		cliutil.Writef(a.stdout, "%s", data)
	default:
		a.writeInspectText(report)
	}
	return nil
}

// schemaChoiceCount counts element properties with more than one assignable type
// after patches were applied.
func schemaChoiceCount(g *schema.Graph) int {
	n := 0
	for _, c := range g.Containers() {
		for _, e := range c.ContainerContent().Elements {
			if e.IsChoice() {
				n++
			}
		}
	}
	return n
}

func (a *app) writeInspectText(r inspectReport) {
	w := a.stdout
	cliutil.Writef(w, "Schema: %s\n", r.Schema)
	if r.TargetNamespace != "" {
		cliutil.Writef(w, "Target Namespace: %s\n", r.TargetNamespace)
	}
	cliutil.Writef(w, "Hoisted Elements: %d\n", r.HoistedElements)
	cliutil.Writef(w, "Choices: %d\n\n", r.Choices)

	cliutil.Writef(w, "Schema Types (%d): %s\n", len(r.SchemaTypes), formatKinds(r.SchemaKinds))
	for _, t := range r.SchemaTypes {
		cliutil.Writef(w, "  %-12s %s\n", t.Kind, t.Name)
	}
	cliutil.Writef(w, "\nModel Types (%d): %s\n", len(r.ModelTypes), formatKinds(r.ModelKinds))
	for _, t := range r.ModelTypes {
		cliutil.Writef(w, "  %-12s %s\n", t.Kind, t.Name)
	}
}

// formatKinds renders counts as "a 1, b 2" sorted by kind.
func formatKinds(counts map[string]int) string {
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%s %d", k, counts[k]))
	}
	return strings.Join(parts, ", ")
}
