package renderer

import (
	"strconv"
	"strings"

	"github.com/erraggy/xsdmodel/converter"
	"github.com/erraggy/xsdmodel/internal/naming"
	"github.com/erraggy/xsdmodel/model"
	"github.com/erraggy/xsdmodel/xsderrors"
)

// Template data for go_model.tmpl.
type (
	goFile struct {
		Header     string
		Package    string
		NodeImport string
		Enums      []goEnum
		Structs    []goStruct
		Interfaces []goInterface
		Classes    []goClass
	}

	goEnum struct {
		Name   string
		Values []goConst
	}

	goConst struct {
		Name  string
		Value string
	}

	goStruct struct {
		Name   string
		Doc    string
		Fields []goField
	}

	goField struct {
		Name    string
		Type    string
		Comment string
	}

	goInterface struct {
		Name   string
		Doc    string
		Marker string
	}

	goClass struct {
		Name string
		Doc  string
		// Embeds names the base class of an element declared with a complex type.
		Embeds    string
		SuperArgs []string
		Params    []goParam
		Fields    []goParam

		TagExpr       string
		NamespaceExpr string
		AttrOverrides []goOverride
		ElemOverrides []goOverride
		Attrs         []goAccess
		Elems         []goAccess
		Markers       []string
	}

	goParam struct {
		Name  string
		Field string
		Type  string
	}

	goOverride struct {
		From string
		To   string
	}

	goAccess struct {
		Name string
		Expr string
	}
)

// RenderGo renders ts as a Go source file built on package xmlnode.
func RenderGo(ts *model.TypeSystem, opts ...Option) ([]byte, error) {
	if ts == nil {
		return nil, &xsderrors.ConfigError{Option: "typeSystem", Message: "type system cannot be nil"}
	}
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	b := &goBuilder{ts: ts, roles: structRoles(ts)}
	file := goFile{
		Package:    cfg.packageName,
		NodeImport: cfg.nodeImport,
	}
	if cfg.header != "" {
		file.Header = lineComment(cfg.header)
	}
	for _, e := range ts.Enums() {
		file.Enums = append(file.Enums, b.enum(e))
	}
	for _, s := range ts.Structs() {
		file.Structs = append(file.Structs, b.strct(s))
	}
	for _, i := range ts.Interfaces() {
		file.Interfaces = append(file.Interfaces, b.iface(i))
	}
	for _, c := range ts.Classes() {
		file.Classes = append(file.Classes, b.class(c))
	}

	src, err := executeTemplate("go_model.tmpl", file)
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("rendered go file", "package", cfg.packageName, "types", ts.Len(), "bytes", len(src))
	return src, nil
}

type goBuilder struct {
	ts *model.TypeSystem
	// roles maps struct names to a phrase naming the class they belong to.
	roles map[string]string
}

func goName(name string) string {
	return naming.ToGoIdentifier(name)
}

func markerName(iface string) string {
	return "is" + goName(iface)
}

// structRoles describes each attributes or elements struct by its class.
func structRoles(ts *model.TypeSystem) map[string]string {
	roles := make(map[string]string)
	for _, c := range ts.Classes() {
		for _, p := range c.Params {
			switch p.Name {
			case model.ParamAttributes:
				roles[p.TypeName] = "holds the attributes of " + goName(c.Name) + "."
			case model.ParamElements:
				roles[p.TypeName] = "holds the child elements of " + goName(c.Name) + "."
			}
		}
	}
	return roles
}

func (b *goBuilder) enum(e *model.Enum) goEnum {
	out := goEnum{Name: goName(e.Name)}
	used := make(map[string]bool, len(e.Members))
	for _, m := range e.Members {
		suffix := naming.ToPascalCase(strings.ToLower(m.Key))
		if v := goName(m.Value); m.Value != "" && v != "X" {
			suffix = v
		}
		name := uniqueName(out.Name+goName(suffix), used)
		out.Values = append(out.Values, goConst{Name: name, Value: m.Value})
	}
	return out
}

// uniqueName returns name, or name with the lowest numeric suffix not yet
// used, and records the result.
func uniqueName(name string, used map[string]bool) string {
	unique := name
	for n := 2; used[unique]; n++ {
		unique = name + strconv.Itoa(n)
	}
	used[unique] = true
	return unique
}

// fieldNames returns the Go field names of s in declaration order.
func fieldNames(s *model.Struct) []string {
	used := make(map[string]bool, len(s.Properties))
	names := make([]string, len(s.Properties))
	for i, p := range s.Properties {
		names[i] = uniqueName(goName(p.Name), used)
	}
	return names
}

func (b *goBuilder) strct(s *model.Struct) goStruct {
	doc, ok := b.roles[s.Name]
	if !ok {
		doc = "is a data type."
	}
	out := goStruct{Name: goName(s.Name), Doc: doc}
	names := fieldNames(s)
	for i, p := range s.Properties {
		f := goField{Name: names[i], Type: b.fieldType(p)}
		if p.Overridden() {
			f.Comment = "<" + p.WireName() + ">"
		}
		out.Fields = append(out.Fields, f)
	}
	return out
}

// baseType maps a model type name to Go and reports whether the Go type can
// already hold nil.
func (b *goBuilder) baseType(name string) (string, bool) {
	switch name {
	case converter.TargetString:
		return "string", false
	case converter.TargetNumber:
		return "float64", false
	case converter.TargetBoolean:
		return "bool", false
	case converter.TargetDate:
		return "time.Time", false
	}
	t, ok := b.ts.Find(name)
	if !ok {
		return "any", true
	}
	switch t.(type) {
	case *model.Class:
		return "*" + goName(name), true
	case *model.BehavioralInterface:
		return goName(name), true
	}
	return goName(name), false
}

func (b *goBuilder) fieldType(p model.Property) string {
	base, nilable := b.baseType(p.TypeName)
	switch {
	case p.IsArray:
		return "[]" + base
	case p.IsOptional && !nilable:
		return "*" + base
	}
	return base
}

func (b *goBuilder) iface(i *model.BehavioralInterface) goInterface {
	impls := b.ts.Implementers(i.Name)
	doc := "has no implementations."
	if len(impls) > 0 {
		names := make([]string, len(impls))
		for n, c := range impls {
			names[n] = goName(c.Name)
		}
		doc = "is implemented by " + strings.Join(names, ", ") + "."
	}
	return goInterface{Name: goName(i.Name), Doc: doc, Marker: markerName(i.Name)}
}

func (b *goBuilder) class(c *model.Class) goClass {
	out := goClass{Name: goName(c.Name)}
	for _, iface := range c.Implements {
		out.Markers = append(out.Markers, markerName(iface))
	}

	for _, p := range c.Params {
		gp := goParam{Name: p.Name, Field: goName(p.Name)}
		switch p.Name {
		case model.ParamTagName, model.ParamNamespace:
			gp.Type = "string"
		default:
			gp.Type = goName(p.TypeName)
		}
		out.Params = append(out.Params, gp)
	}

	if c.Extends != nil && c.Extends.Module == "" {
		if base, ok := b.ts.Class(c.Extends.Class); ok {
			out.Embeds = goName(base.Name)
			out.Doc = "is the <" + c.TagName + "> element of type " + out.Embeds + "."
			for _, arg := range c.Extends.SuperArgs {
				out.SuperArgs = append(out.SuperArgs, goExpr(arg))
			}
			return out
		}
	}

	out.Fields = out.Params
	if c.IsComplex() {
		out.Doc = "is a complex type; its tag is chosen by the element holding it."
		out.TagExpr = "c.TagName"
		out.NamespaceExpr = "c.Namespace"
	} else {
		out.Doc = "is the <" + c.TagName + "> element."
		out.TagExpr = strconv.Quote(c.TagName)
		if c.Namespace != "" {
			out.NamespaceExpr = strconv.Quote(c.Namespace)
		}
	}

	for _, p := range c.Params {
		s, ok := b.ts.Struct(p.TypeName)
		if !ok {
			continue
		}
		names := fieldNames(s)
		for i, prop := range s.Properties {
			access := goAccess{Name: prop.Name, Expr: goName(p.Name) + "." + names[i]}
			var override *goOverride
			if prop.Overridden() {
				override = &goOverride{From: prop.Name, To: prop.OriginalName}
			}
			switch p.Name {
			case model.ParamAttributes:
				out.Attrs = append(out.Attrs, access)
				if override != nil {
					out.AttrOverrides = append(out.AttrOverrides, *override)
				}
			case model.ParamElements:
				out.Elems = append(out.Elems, access)
				if override != nil {
					out.ElemOverrides = append(out.ElemOverrides, *override)
				}
			}
		}
	}
	return out
}

// goExpr translates a super call argument into Go.
func goExpr(e model.Expr) string {
	switch v := e.(type) {
	case model.StringLit:
		return strconv.Quote(string(v))
	case model.Ident:
		if v == "undefined" {
			return `""`
		}
		return string(v)
	case model.Raw:
		return string(v)
	}
	return "nil"
}
