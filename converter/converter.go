package converter

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/erraggy/xsdmodel/internal/issues"
	"github.com/erraggy/xsdmodel/internal/naming"
	"github.com/erraggy/xsdmodel/internal/severity"
	"github.com/erraggy/xsdmodel/model"
	"github.com/erraggy/xsdmodel/schema"
	"github.com/erraggy/xsdmodel/xsderrors"
)

// ConvertResult contains the target object model and conversion statistics.
type ConvertResult struct {
	// TypeSystem holds the emitted entities in emission order
	TypeSystem *model.TypeSystem
	// EnumCount is the number of emitted enumerations
	EnumCount int
	// StructCount is the number of emitted attribute and element structs
	StructCount int
	// InterfaceCount is the number of synthesized behavioral interfaces
	InterfaceCount int
	// ClassCount is the number of emitted classes
	ClassCount int
	// Issues contains non-fatal conversion notices
	Issues []issues.Issue
	// WarningCount is the number of warning issues
	WarningCount int
	// InfoCount is the number of informational issues
	InfoCount int
	// ConvertTime is how long the conversion took
	ConvertTime time.Duration
}

// HasWarnings returns true if there are any warnings
func (r *ConvertResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter converts schema graphs into object models. It is immutable and
// safe for concurrent use as long as the configured functions are.
type Converter struct {
	cfg *convertConfig
}

// New creates a Converter from options.
func New(opts ...Option) (*Converter, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Converter{cfg: cfg}, nil
}

// ConvertWithOptions converts a graph with a one-off Converter.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(graph,
//		converter.WithNodeModulePath("src/generated"),
//	)
func ConvertWithOptions(g *schema.Graph, opts ...Option) (*ConvertResult, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.Convert(g)
}

// Convert runs the four conversion passes over g. The graph is not modified.
// Any error aborts the conversion and no partial model is returned.
func (c *Converter) Convert(g *schema.Graph) (*ConvertResult, error) {
	if g == nil {
		return nil, &xsderrors.ConfigError{Option: "graph", Message: "graph cannot be nil"}
	}
	start := time.Now()
	r := &run{
		cfg:          c.cfg,
		g:            g,
		baseImport:   c.cfg.baseImportPath(),
		implementers: make(map[string][]string),
		complexes:    make(map[string]*model.Class),
	}

	r.enums()
	c.cfg.logger.Debug("converted enumerations", "count", r.counts.enums)

	for _, ct := range g.ComplexTypes() {
		if err := r.container(ct, &ct.Content); err != nil {
			return nil, err
		}
	}
	for _, et := range g.ElementTypes() {
		if err := r.container(et, &et.Content); err != nil {
			return nil, err
		}
	}
	c.cfg.logger.Debug("converted containers",
		"classes", r.counts.classes, "structs", r.counts.structs, "interfaces", r.counts.interfaces)

	r.attachInterfaces()

	ts, err := model.NewTypeSystem(r.types...)
	if err != nil {
		return nil, fmt.Errorf("converter: %w", err)
	}

	counts := issues.Count(r.issues)
	return &ConvertResult{
		TypeSystem:     ts,
		EnumCount:      r.counts.enums,
		StructCount:    r.counts.structs,
		InterfaceCount: r.counts.interfaces,
		ClassCount:     r.counts.classes,
		Issues:         r.issues,
		WarningCount:   counts[severity.SeverityWarning],
		InfoCount:      counts[severity.SeverityInfo],
		ConvertTime:    time.Since(start),
	}, nil
}

// run holds the state of one conversion.
type run struct {
	cfg        *convertConfig
	g          *schema.Graph
	baseImport string

	types []model.Type

	// implementers is the side table from interface name to the model
	// names of the types assignable to the choice it stands for.
	implementers map[string][]string
	// complexes maps complex type names to their classes.
	complexes map[string]*model.Class

	issues []issues.Issue
	counts struct {
		enums, structs, interfaces, classes int
	}
}

func (r *run) emit(t model.Type) {
	r.types = append(r.types, t)
	switch t.Kind() {
	case model.KindEnum:
		r.counts.enums++
	case model.KindStruct:
		r.counts.structs++
	case model.KindInterface:
		r.counts.interfaces++
	case model.KindClass:
		r.counts.classes++
	}
}

func (r *run) warn(path, msg string) {
	r.cfg.logger.Warn(msg, "path", path)
	r.issues = append(r.issues, issues.Warning(path, msg))
}

func (r *run) info(path, msg string) {
	r.cfg.logger.Debug(msg, "path", path)
	r.issues = append(r.issues, issues.Info(path, msg))
}

// resolve maps a schema type name, attributing failures to owner.property.
func (r *run) resolve(name, owner, property string) (string, error) {
	resolved, err := r.cfg.resolver(name, r.g)
	if err == nil {
		return resolved, nil
	}
	var refErr *xsderrors.ReferenceError
	if errors.As(err, &refErr) && refErr.Owner == "" {
		attributed := *refErr
		attributed.Owner = owner
		attributed.Property = property
		return "", &attributed
	}
	return "", err
}

// enums emits one Enum per enumeration type.
func (r *run) enums() {
	for _, et := range r.g.Enumerations() {
		e := &model.Enum{Name: r.cfg.capitalize(et.Name)}
		seen := make(map[string]bool, len(et.Values))
		for _, v := range et.Values {
			key := naming.ToEnumKey(v)
			if seen[key] {
				unique := key
				for n := 2; seen[unique]; n++ {
					unique = key + "_" + strconv.Itoa(n)
				}
				r.warn(issues.FormatPath(et.Name, v), fmt.Sprintf("symbol %s already used; renamed to %s", key, unique))
				key = unique
			}
			seen[key] = true
			e.Members = append(e.Members, model.EnumMember{Key: key, Value: v})
		}
		r.emit(e)
	}
}

func (r *run) propertyName(schemaName string) (name, original string) {
	if override, ok := r.cfg.propertyNameOverrides[schemaName]; ok && override != schemaName {
		return override, schemaName
	}
	return schemaName, ""
}

// attributesStruct builds the attributes struct of a container, or returns
// nil when the container has neither attributes nor injected properties.
func (r *run) attributesStruct(owner string, c *schema.Content) (*model.Struct, error) {
	injected := r.cfg.injectedProperties[r.cfg.capitalize(owner)]
	if len(c.Attributes) == 0 && len(injected) == 0 {
		return nil, nil
	}

	s := &model.Struct{Name: r.cfg.attributesTypeName(owner)}
	for _, attr := range c.Attributes {
		typeName, err := r.resolve(attr.TypeName, owner, attr.Name)
		if err != nil {
			return nil, err
		}
		name, original := r.propertyName(attr.Name)
		s.Properties = append(s.Properties, model.Property{
			Name:         name,
			TypeName:     typeName,
			IsOptional:   !attr.IsRequired(),
			OriginalName: original,
		})
	}
	for _, p := range injected {
		if _, exists := s.Property(p.Name); exists {
			r.warn(issues.FormatPath(owner, p.Name), "injected property shadows a schema attribute; skipped")
			continue
		}
		s.Properties = append(s.Properties, p)
	}
	r.emit(s)
	return s, nil
}

// elementsStruct builds the elements struct of a container and declares the
// behavioral interfaces of its choice properties.
func (r *run) elementsStruct(owner string, c *schema.Content) (*model.Struct, error) {
	if len(c.Elements) == 0 {
		return nil, nil
	}

	s := &model.Struct{Name: r.cfg.elementsTypeName(owner)}
	for _, el := range c.Elements {
		var typeName string
		if el.IsChoice() {
			typeName = r.cfg.assignableTypeName(owner, el.Name)
			members := make([]string, 0, len(el.AssignableTypeNames))
			for _, atn := range el.AssignableTypeNames {
				resolved, err := r.resolve(atn, owner, el.Name)
				if err != nil {
					return nil, err
				}
				members = append(members, resolved)
			}
			r.implementers[typeName] = members
			r.emit(&model.BehavioralInterface{Name: typeName})
		} else {
			resolved, err := r.resolve(el.AssignableTypeNames[0], owner, el.Name)
			if err != nil {
				return nil, err
			}
			typeName = resolved
		}

		name, original := r.propertyName(el.Name)
		s.Properties = append(s.Properties, model.Property{
			Name:         name,
			TypeName:     typeName,
			IsArray:      el.IsRepeated(),
			IsOptional:   el.IsOptional(),
			OriginalName: original,
		})
	}
	r.emit(s)
	return s, nil
}

// params lists the attributes and elements constructor parameters. The
// attributes parameter is optional only when the elements parameter after
// it is optional too.
func params(attrs, elems *model.Struct) []model.Property {
	var out []model.Property
	if attrs != nil {
		out = append(out, model.Property{
			Name:       model.ParamAttributes,
			TypeName:   attrs.Name,
			IsOptional: attrs.AllOptional() && (elems == nil || elems.AllOptional()),
		})
	}
	if elems != nil {
		out = append(out, model.Property{
			Name:       model.ParamElements,
			TypeName:   elems.Name,
			IsOptional: elems.AllOptional(),
		})
	}
	return out
}

// overrides maps model names to wire names for the overridden fields of s.
func overrides(s *model.Struct) model.Object {
	if s == nil {
		return nil
	}
	var obj model.Object
	for _, p := range s.Properties {
		if p.Overridden() {
			obj = append(obj, model.ObjectProp{Key: p.Name, Value: model.StringLit(p.OriginalName)})
		}
	}
	return obj
}

func (r *run) container(t schema.Type, content *schema.Content) error {
	owner := t.TypeName()
	if el, ok := t.(*schema.ElementType); ok && el.InstanceOf != "" {
		return r.instanceClass(el)
	}

	attrs, err := r.attributesStruct(owner, content)
	if err != nil {
		return err
	}
	elems, err := r.elementsStruct(owner, content)
	if err != nil {
		return err
	}

	class := &model.Class{Name: r.cfg.capitalize(owner)}
	ps := params(attrs, elems)
	var superProps model.Object

	switch t := t.(type) {
	case *schema.ComplexType:
		ps = append(ps,
			model.Property{Name: model.ParamTagName, TypeName: TargetString, IsOptional: true},
			model.Property{Name: model.ParamNamespace, TypeName: TargetString, IsOptional: true},
		)
		superProps = model.Object{
			{Key: model.ParamTagName, Value: model.Ident(model.ParamTagName)},
			{Key: model.ParamNamespace, Value: model.Ident(model.ParamNamespace)},
		}
		r.complexes[t.Name] = class
	case *schema.ElementType:
		class.TagName = t.Name
		class.Namespace = t.Namespace
		superProps = model.Object{{Key: model.ParamTagName, Value: model.StringLit(t.Name)}}
		if t.Namespace != "" {
			superProps = append(superProps, model.ObjectProp{Key: model.ParamNamespace, Value: model.StringLit(t.Namespace)})
		}
	}
	if o := overrides(elems); len(o) > 0 {
		superProps = append(superProps, model.ObjectProp{Key: "elemsNamesOverrides", Value: o})
	}
	if o := overrides(attrs); len(o) > 0 {
		superProps = append(superProps, model.ObjectProp{Key: "attrsNamesOverrides", Value: o})
	}

	if len(ps) > 0 {
		class.Params = ps
	}
	class.Extends = &model.Extends{
		Class:     r.cfg.baseClass,
		Module:    r.baseImport,
		SuperArgs: []model.Expr{superProps},
	}
	r.emit(class)
	return nil
}

// instanceClass emits the class of an element declared with a type
// attribute. An element typed by a complex type extends that type's class
// and passes its own tag and namespace positionally; any other type yields a
// plain tagged class.
func (r *run) instanceClass(el *schema.ElementType) error {
	if base, ok := r.complexes[el.InstanceOf]; ok {
		class := &model.Class{
			Name:      r.cfg.capitalize(el.Name),
			TagName:   el.Name,
			Namespace: el.Namespace,
		}
		var args []model.Expr
		for _, p := range base.Params {
			switch p.Name {
			case model.ParamTagName:
				args = append(args, model.StringLit(el.Name))
			case model.ParamNamespace:
				if el.Namespace != "" {
					args = append(args, model.StringLit(el.Namespace))
				} else {
					args = append(args, model.Ident("undefined"))
				}
			default:
				class.Params = append(class.Params, p)
				args = append(args, model.Ident(p.Name))
			}
		}
		class.Extends = &model.Extends{Class: base.Name, SuperArgs: args}
		r.emit(class)
		return nil
	}

	resolved, err := r.resolve(el.InstanceOf, el.Name, "")
	if err != nil {
		return err
	}
	r.info(el.Name, fmt.Sprintf("element type %s is not a complex type; the class carries no content", resolved))

	superProps := model.Object{{Key: model.ParamTagName, Value: model.StringLit(el.Name)}}
	if el.Namespace != "" {
		superProps = append(superProps, model.ObjectProp{Key: model.ParamNamespace, Value: model.StringLit(el.Namespace)})
	}
	r.emit(&model.Class{
		Name:      r.cfg.capitalize(el.Name),
		TagName:   el.Name,
		Namespace: el.Namespace,
		Extends: &model.Extends{
			Class:     r.cfg.baseClass,
			Module:    r.baseImport,
			SuperArgs: []model.Expr{superProps},
		},
	})
	return nil
}

// attachInterfaces fills the implements list of every class from the side
// table, sorted by name.
func (r *run) attachInterfaces() {
	classes := make(map[string]*model.Class)
	for _, t := range r.types {
		if c, ok := t.(*model.Class); ok {
			classes[c.Name] = c
		}
	}

	ifaces := make([]string, 0, len(r.implementers))
	for iface := range r.implementers {
		ifaces = append(ifaces, iface)
	}
	slices.Sort(ifaces)

	for _, iface := range ifaces {
		for _, member := range r.implementers[iface] {
			c, ok := classes[member]
			if !ok {
				r.warn(iface, fmt.Sprintf("choice member %s is not a class and cannot implement the interface", member))
				continue
			}
			if !slices.Contains(c.Implements, iface) {
				c.Implements = append(c.Implements, iface)
			}
		}
	}
	for _, c := range classes {
		slices.Sort(c.Implements)
	}
}
