package renderer

import (
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/erraggy/xsdmodel/converter"
	"github.com/erraggy/xsdmodel/model"
	"github.com/erraggy/xsdmodel/xmlnode"
	"github.com/erraggy/xsdmodel/xsderrors"
)

// Sample dates fall in a fixed window so output does not depend on the clock.
var (
	sampleDateStart = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	sampleDateEnd   = time.Date(2030, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// RenderSample renders a constructor call of the named class with fake
// values for its fields. Required fields are always filled; optional ones
// are filled down to the configured depth when a value can be produced.
//
// A required field whose type has no value rule fails with a
// *xsderrors.TemplateError.
func RenderSample(ts *model.TypeSystem, className string, opts ...Option) (string, error) {
	if ts == nil {
		return "", &xsderrors.ConfigError{Option: "typeSystem", Message: "type system cannot be nil"}
	}
	cfg, err := applyOptions(opts...)
	if err != nil {
		return "", err
	}
	class, ok := ts.Class(className)
	if !ok {
		return "", &xsderrors.ReferenceError{TypeName: className, Message: "no such class"}
	}

	s := &sampler{
		ts:       ts,
		faker:    gofakeit.New(cfg.seed),
		maxDepth: cfg.maxDepth,
	}
	expr, err := s.instance(class, 0)
	if err != nil {
		return "", err
	}
	cfg.logger.Debug("rendered sample", "class", className, "seed", cfg.seed)
	return model.Render(expr), nil
}

type sampler struct {
	ts       *model.TypeSystem
	faker    *gofakeit.Faker
	maxDepth int
}

// instance builds "new Class({...})" with one object per attributes or
// elements parameter. Tag and namespace parameters keep their defaults.
func (s *sampler) instance(c *model.Class, depth int) (model.Expr, error) {
	if depth > 2*s.maxDepth {
		return nil, &xsderrors.TemplateError{Class: c.Name, TypeName: c.Name}
	}
	call := model.New{Class: c.Name}
	for _, p := range c.Params {
		if p.Name == model.ParamTagName || p.Name == model.ParamNamespace {
			continue
		}
		st, ok := s.ts.Struct(p.TypeName)
		if !ok {
			return nil, &xsderrors.TemplateError{Class: c.Name, Field: p.Name, TypeName: p.TypeName}
		}
		obj, err := s.object(c, st, depth)
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, obj)
	}
	return call, nil
}

func (s *sampler) object(c *model.Class, st *model.Struct, depth int) (model.Object, error) {
	obj := model.Object{}
	for _, p := range st.Properties {
		if p.IsOptional && depth >= s.maxDepth {
			continue
		}
		v, err := s.value(p, depth)
		if err != nil {
			return nil, err
		}
		if v == nil {
			if p.IsOptional {
				continue
			}
			return nil, &xsderrors.TemplateError{Class: c.Name, Field: p.Name, TypeName: p.TypeName}
		}
		obj = append(obj, model.ObjectProp{Key: p.Name, Value: v})
	}
	return obj, nil
}

// value returns a literal for p, or nil when its type has no value rule.
func (s *sampler) value(p model.Property, depth int) (model.Expr, error) {
	v, err := s.scalar(p.Name, p.TypeName, depth)
	if err != nil || v == nil {
		return nil, err
	}
	if p.IsArray {
		return model.Array{v}, nil
	}
	return v, nil
}

func (s *sampler) scalar(field, typeName string, depth int) (model.Expr, error) {
	switch typeName {
	case converter.TargetString:
		return model.StringLit(s.text(field)), nil
	case converter.TargetNumber:
		return model.Raw(strconv.Itoa(s.faker.Number(1, 1000))), nil
	case converter.TargetBoolean:
		return model.Raw(strconv.FormatBool(s.faker.Bool())), nil
	case converter.TargetDate:
		d := s.faker.DateRange(sampleDateStart, sampleDateEnd)
		return model.Raw("new Date('" + xmlnode.FormatTime(d) + "')"), nil
	}

	t, ok := s.ts.Find(typeName)
	if !ok {
		return nil, nil
	}
	switch t := t.(type) {
	case *model.Enum:
		if len(t.Members) == 0 {
			return nil, nil
		}
		m := t.Members[s.faker.Number(0, len(t.Members)-1)]
		return model.Raw(t.Name + "." + m.Key), nil
	case *model.Class:
		return s.instance(t, depth+1)
	case *model.BehavioralInterface:
		impls := s.ts.Implementers(t.Name)
		if len(impls) == 0 {
			return nil, nil
		}
		return s.instance(impls[0], depth+1)
	}
	return nil, nil
}

// text picks a fake string matching the field name where one is obvious.
func (s *sampler) text(field string) string {
	lower := strings.ToLower(field)
	switch {
	case strings.Contains(lower, "email"):
		return s.faker.Email()
	case strings.Contains(lower, "name"):
		return s.faker.Name()
	case strings.Contains(lower, "city"):
		return s.faker.City()
	case strings.Contains(lower, "country"):
		return s.faker.Country()
	case strings.Contains(lower, "street") || strings.Contains(lower, "address"):
		return s.faker.Street()
	case strings.Contains(lower, "zip"):
		return s.faker.Zip()
	case strings.Contains(lower, "url") || strings.Contains(lower, "uri"):
		return s.faker.URL()
	case strings.Contains(lower, "phone"):
		return s.faker.Phone()
	}
	return s.faker.Word()
}
