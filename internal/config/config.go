// Package config loads the YAML configuration file of the xsdmodel compiler
// and turns it into parser options, converter options and graph patches.
//
// Example file:
//
//	xsdNamespace: http://www.w3.org/2001/XMLSchema
//	nodeModulePath: src/generated
//	baseClass:
//	  name: XmlNode
//	  module: ./xml-node
//	propertyNameOverrides:
//	  map: authorizationMap
//	injectedProperties:
//	  Broker:
//	    - name: schedulerSupport
//	      type: boolean
//	      optional: true
//	patches:
//	  - addType:
//	      name: cachedLDAPAuthorizationMap
//	      namespace: http://activemq.apache.org/schema/core
//	      attributes:
//	        - name: queueSearchBase
//	          type: xs:string
//	  - extendChoice:
//	      type: authorizationPlugin
//	      property: map
//	      assignableType: cachedLDAPAuthorizationMap
//
// Unknown keys are rejected so typos surface instead of being ignored.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/xsdmodel/converter"
	"github.com/erraggy/xsdmodel/model"
	"github.com/erraggy/xsdmodel/parser"
	"github.com/erraggy/xsdmodel/schema"
	"github.com/erraggy/xsdmodel/xsderrors"
)

// Config is the content of a configuration file.
type Config struct {
	XSDNamespace          string                `yaml:"xsdNamespace,omitempty"`
	NodeModulePath        string                `yaml:"nodeModulePath,omitempty"`
	BaseClass             *BaseClass            `yaml:"baseClass,omitempty"`
	PropertyNameOverrides map[string]string     `yaml:"propertyNameOverrides,omitempty"`
	InjectedProperties    map[string][]Property `yaml:"injectedProperties,omitempty"`
	Patches               []Patch               `yaml:"patches,omitempty"`
}

// BaseClass names the runtime class generated classes derive from.
type BaseClass struct {
	Name   string `yaml:"name"`
	Module string `yaml:"module"`
}

// Property is an injected attributes field.
type Property struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional,omitempty"`
	Array    bool   `yaml:"array,omitempty"`
}

// Patch holds exactly one graph patch.
type Patch struct {
	AddType      *TypeSpec     `yaml:"addType,omitempty"`
	ExtendChoice *ExtendChoice `yaml:"extendChoice,omitempty"`
}

// Type kinds accepted by addType.
const (
	KindElement     = "element"
	KindComplexType = "complexType"
)

// TypeSpec declares a container type added to the graph.
type TypeSpec struct {
	Name string `yaml:"name"`
	// Kind is "element" (default) or "complexType".
	Kind       string          `yaml:"kind,omitempty"`
	Namespace  string          `yaml:"namespace,omitempty"`
	Attributes []AttributeSpec `yaml:"attributes,omitempty"`
	Elements   []ElementSpec   `yaml:"elements,omitempty"`
}

// AttributeSpec is an attribute of an added type.
type AttributeSpec struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Required bool   `yaml:"required,omitempty"`
}

// ElementSpec is a child element slot of an added type. Type names a single
// assignable type; Types lists the members of a choice.
type ElementSpec struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type,omitempty"`
	Types     []string `yaml:"types,omitempty"`
	MinOccurs *int     `yaml:"minOccurs,omitempty"`
	// MaxOccurs is a number or "unbounded". Default: 1
	MaxOccurs string `yaml:"maxOccurs,omitempty"`
}

// ExtendChoice adds an assignable type to an existing element slot.
type ExtendChoice struct {
	Type           string `yaml:"type"`
	Property       string `yaml:"property"`
	AssignableType string `yaml:"assignableType"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &xsderrors.ConfigError{Option: "config", Value: path, Message: "cannot read file", Cause: err}
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document. An empty document
// yields an empty configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, &xsderrors.ConfigError{Option: "config", Message: "invalid YAML", Cause: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for missing or contradictory values.
func (c *Config) Validate() error {
	if c.BaseClass != nil && (c.BaseClass.Name == "" || c.BaseClass.Module == "") {
		return &xsderrors.ConfigError{Option: "baseClass", Message: "name and module are required"}
	}
	for owner, props := range c.InjectedProperties {
		for i, p := range props {
			if p.Name == "" || p.Type == "" {
				return &xsderrors.ConfigError{
					Option:  "injectedProperties",
					Value:   owner + "[" + strconv.Itoa(i) + "]",
					Message: "name and type are required",
				}
			}
		}
	}
	for i, p := range c.Patches {
		if err := p.validate(); err != nil {
			return &xsderrors.ConfigError{Option: "patches", Value: i, Message: err.Error()}
		}
	}
	return nil
}

func (p Patch) validate() error {
	switch {
	case p.AddType != nil && p.ExtendChoice != nil:
		return errors.New("a patch holds either addType or extendChoice, not both")
	case p.AddType != nil:
		return p.AddType.validate()
	case p.ExtendChoice != nil:
		ec := p.ExtendChoice
		if ec.Type == "" || ec.Property == "" || ec.AssignableType == "" {
			return errors.New("extendChoice requires type, property and assignableType")
		}
		return nil
	}
	return errors.New("empty patch")
}

func (t *TypeSpec) validate() error {
	if t.Name == "" {
		return errors.New("addType requires a name")
	}
	switch t.Kind {
	case "", KindElement, KindComplexType:
	default:
		return fmt.Errorf("addType %s: unknown kind %q", t.Name, t.Kind)
	}
	for _, a := range t.Attributes {
		if a.Name == "" || a.Type == "" {
			return fmt.Errorf("addType %s: attributes need a name and a type", t.Name)
		}
	}
	for _, e := range t.Elements {
		if e.Name == "" {
			return fmt.Errorf("addType %s: elements need a name", t.Name)
		}
		if e.Type == "" && len(e.Types) == 0 {
			return fmt.Errorf("addType %s: element %s needs a type", t.Name, e.Name)
		}
		if _, err := e.bounds(); err != nil {
			return fmt.Errorf("addType %s: element %s: %w", t.Name, e.Name, err)
		}
	}
	return nil
}

// bounds returns the element property described by e, without types.
func (e ElementSpec) bounds() (schema.ElementProperty, error) {
	prop := schema.ElementProperty{Name: e.Name, MinOccurs: 1, MaxOccurs: 1}
	if e.MinOccurs != nil {
		if *e.MinOccurs < 0 {
			return prop, fmt.Errorf("minOccurs %d is negative", *e.MinOccurs)
		}
		prop.MinOccurs = *e.MinOccurs
	}
	switch e.MaxOccurs {
	case "":
	case "unbounded":
		prop.MaxOccurs = schema.Unbounded
	default:
		n, err := strconv.Atoi(e.MaxOccurs)
		if err != nil || n < 1 {
			return prop, fmt.Errorf("invalid maxOccurs %q", e.MaxOccurs)
		}
		prop.MaxOccurs = n
	}
	if prop.MaxOccurs != schema.Unbounded && prop.MinOccurs > prop.MaxOccurs {
		return prop, fmt.Errorf("minOccurs %d exceeds maxOccurs %d", prop.MinOccurs, prop.MaxOccurs)
	}
	return prop, nil
}

// ParserOptions returns the parser options the configuration sets.
func (c *Config) ParserOptions() []parser.Option {
	var opts []parser.Option
	if c.XSDNamespace != "" {
		opts = append(opts, parser.WithXSDNamespace(c.XSDNamespace))
	}
	return opts
}

// ConverterOptions returns the converter options the configuration sets.
func (c *Config) ConverterOptions() []converter.Option {
	var opts []converter.Option
	if c.NodeModulePath != "" {
		opts = append(opts, converter.WithNodeModulePath(c.NodeModulePath))
	}
	if c.BaseClass != nil {
		opts = append(opts, converter.WithBaseClass(c.BaseClass.Name, c.BaseClass.Module))
	}
	if len(c.PropertyNameOverrides) > 0 {
		opts = append(opts, converter.WithPropertyNameOverrides(c.PropertyNameOverrides))
	}
	if len(c.InjectedProperties) > 0 {
		injected := make(map[string][]model.Property, len(c.InjectedProperties))
		for owner, props := range c.InjectedProperties {
			for _, p := range props {
				injected[owner] = append(injected[owner], model.Property{
					Name:       p.Name,
					TypeName:   p.Type,
					IsOptional: p.Optional,
					IsArray:    p.Array,
				})
			}
		}
		opts = append(opts, converter.WithInjectedProperties(injected))
	}
	return opts
}

// SchemaPatches returns the configured patches in declaration order.
func (c *Config) SchemaPatches() []schema.Patch {
	patches := make([]schema.Patch, 0, len(c.Patches))
	for _, p := range c.Patches {
		switch {
		case p.AddType != nil:
			patches = append(patches, schema.AddTypePatch{Type: p.AddType.schemaType()})
		case p.ExtendChoice != nil:
			patches = append(patches, schema.ExtendChoicePatch{
				TypeName:           p.ExtendChoice.Type,
				PropertyName:       p.ExtendChoice.Property,
				AssignableTypeName: p.ExtendChoice.AssignableType,
			})
		}
	}
	return patches
}

// schemaType builds the graph type of a validated spec.
func (t *TypeSpec) schemaType() schema.Type {
	var content schema.Content
	for _, a := range t.Attributes {
		use := schema.UseOptional
		if a.Required {
			use = schema.UseRequired
		}
		content.Attributes = append(content.Attributes, &schema.AttributeProperty{Name: a.Name, TypeName: a.Type, Use: use})
	}
	for _, e := range t.Elements {
		prop, _ := e.bounds()
		if e.Type != "" {
			prop.AssignableTypeNames = append(prop.AssignableTypeNames, e.Type)
		}
		prop.AssignableTypeNames = append(prop.AssignableTypeNames, e.Types...)
		content.Elements = append(content.Elements, &prop)
	}

	if t.Kind == KindComplexType {
		return &schema.ComplexType{Name: t.Name, Content: content}
	}
	return &schema.ElementType{Name: t.Name, Namespace: t.Namespace, Content: content}
}

// Convert applies the configured patches to g and converts it with the
// configured options followed by extra. g is modified in place.
func (c *Config) Convert(g *schema.Graph, extra ...converter.Option) (*converter.ConvertResult, error) {
	if err := g.Apply(c.SchemaPatches()...); err != nil {
		return nil, fmt.Errorf("config: applying patches: %w", err)
	}
	return converter.ConvertWithOptions(g, append(c.ConverterOptions(), extra...)...)
}
