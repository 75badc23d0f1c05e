package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/xsdmodel/internal/issues"
	"github.com/erraggy/xsdmodel/internal/severity"
	"github.com/erraggy/xsdmodel/schema"
	"github.com/erraggy/xsdmodel/xsderrors"
)

const (
	xsString = "xs:string"

	unboundedLiteral = "unbounded"

	// maxHoistDepth is how many levels of anonymous element nesting are
	// hoisted into named element types.
	maxHoistDepth = 1
)

// builder collects descriptors from a decoded schema document.
type builder struct {
	ns              namespaces
	targetNamespace string
	logger          Logger
	file            string

	descs  []descriptor
	byName map[string]descriptor
	issues []issues.Issue

	hoisted int
}

func newBuilder(ns namespaces, targetNamespace, file string, logger Logger) *builder {
	return &builder{
		ns:              ns,
		targetNamespace: targetNamespace,
		logger:          logger,
		file:            file,
		byName:          make(map[string]descriptor),
	}
}

func (b *builder) build(doc *xsdSchema) error {
	b.reportSkipped(doc)

	for i := range doc.SimpleTypes {
		st := &doc.SimpleTypes[i]
		if st.Name == "" {
			return &xsderrors.SchemaError{Kind: xsderrors.ErrMalformedSchemaType, Message: "top-level simpleType without a name"}
		}
		d, err := b.simpleType(st.Name, st)
		if err != nil {
			return err
		}
		if err := b.push(d); err != nil {
			return err
		}
	}

	for i := range doc.Elements {
		d, err := b.topLevelElement(&doc.Elements[i])
		if err != nil {
			return err
		}
		if err := b.push(d); err != nil {
			return err
		}
	}

	for i := range doc.ComplexTypes {
		d, err := b.topLevelComplexType(&doc.ComplexTypes[i])
		if err != nil {
			return err
		}
		if err := b.push(d); err != nil {
			return err
		}
	}

	b.retypeSimpleElementRefs()
	return nil
}

func (b *builder) reportSkipped(doc *xsdSchema) {
	for _, a := range doc.Attributes {
		b.warn(a.Name, "top-level attribute declarations are not supported; skipped")
	}
	for _, g := range doc.Groups {
		b.warn(g.Name, "top-level model groups are not supported; skipped")
	}
	for _, g := range doc.AttributeGroups {
		b.warn(g.Name, "top-level attribute groups are not supported; skipped")
	}
	for _, imp := range doc.Imports {
		b.warn("import", "schema imports are not followed: "+imp.Namespace)
	}
	for _, inc := range doc.Includes {
		b.warn("include", "schema includes are not followed: "+inc.SchemaLocation)
	}
}

// push registers a named descriptor. Names share one space across kinds.
func (b *builder) push(d descriptor) error {
	name := d.descriptorName()
	if existing, ok := b.byName[name]; ok {
		return &xsderrors.SchemaError{
			Kind:     xsderrors.ErrUnsupportedSchemaConstruct,
			TypeName: name,
			Message:  fmt.Sprintf("name is declared by both %s and %s", kindOf(existing), kindOf(d)),
		}
	}
	b.byName[name] = d
	b.descs = append(b.descs, d)
	return nil
}

// pushInline registers an anonymous simple type named after its owner
// attribute or element. Identical redefinitions are merged; a conflicting one
// keeps the first definition and is reported.
func (b *builder) pushInline(d descriptor, path string) error {
	existing, ok := b.byName[d.descriptorName()]
	if !ok {
		return b.push(d)
	}
	switch existing.(type) {
	case *aliasDescriptor, *enumDescriptor:
		if !sameDefinition(existing, d) {
			b.issues = append(b.issues, issues.Issue{
				Path:     path,
				Message:  fmt.Sprintf("conflicting anonymous simpleType %q; keeping the first definition", d.descriptorName()),
				Severity: severity.SeverityWarning,
				File:     b.file,
			})
		}
		return nil
	}
	return b.push(d)
}

func kindOf(d descriptor) string {
	switch d.(type) {
	case *aliasDescriptor, *enumDescriptor:
		return "simpleType"
	case *complexDescriptor:
		return "complexType"
	case *elementDescriptor:
		return "element"
	}
	return "unknown"
}

// simpleType reads a named simpleType.
func (b *builder) simpleType(name string, st *xsdSimpleType) (descriptor, error) {
	if st.Restriction == nil {
		return nil, &xsderrors.SchemaError{
			Kind:     xsderrors.ErrMalformedSchemaType,
			TypeName: name,
			Message:  "only restriction simpleTypes are supported",
		}
	}
	base := b.ns.qname(st.Restriction.Base)
	if base == "" {
		return nil, &xsderrors.SchemaError{
			Kind:     xsderrors.ErrMalformedSchemaType,
			TypeName: name,
			Message:  "restriction has no base",
		}
	}
	if base != xsString {
		return &aliasDescriptor{name: name, base: base}, nil
	}

	seen := make(map[string]bool, len(st.Restriction.Enumerations))
	values := make([]string, 0, len(st.Restriction.Enumerations))
	for _, f := range st.Restriction.Enumerations {
		key := strings.ToUpper(f.Value)
		if seen[key] {
			b.warn(issues.FormatPath(name, f.Value), "duplicate enumeration value dropped")
			continue
		}
		seen[key] = true
		values = append(values, f.Value)
	}
	if len(values) == 0 {
		return nil, &xsderrors.SchemaError{
			Kind:     xsderrors.ErrMalformedSchemaType,
			TypeName: name,
			Message:  "string restriction without enumeration facets",
		}
	}
	return &enumDescriptor{name: name, values: values}, nil
}

// inlineSimpleType resolves an anonymous simpleType declared on an attribute
// or child element. Aliases collapse to their base; enumerations are
// registered under the owner's name.
func (b *builder) inlineSimpleType(name string, st *xsdSimpleType, path string) (string, error) {
	d, err := b.simpleType(name, st)
	if err != nil {
		return "", err
	}
	if alias, ok := d.(*aliasDescriptor); ok {
		return alias.base, nil
	}
	if err := b.pushInline(d, path); err != nil {
		return "", err
	}
	return name, nil
}

func (b *builder) topLevelElement(el *xsdElement) (descriptor, error) {
	if el.Name == "" {
		return nil, &xsderrors.SchemaError{Kind: xsderrors.ErrMalformedSchemaType, Message: "top-level element without a name"}
	}
	d := &elementDescriptor{name: el.Name, namespace: b.targetNamespace}

	switch {
	case el.Type != "":
		d.instanceOf = b.ns.qname(el.Type)
		return d, nil
	case el.SimpleType != nil:
		return nil, &xsderrors.SchemaError{
			Kind:     xsderrors.ErrUnsupportedSchemaConstruct,
			TypeName: el.Name,
			Message:  "top-level element with an anonymous simpleType",
		}
	case el.ComplexType == nil:
		b.info(el.Name, "element has no type; using "+xsString)
		d.instanceOf = xsString
		return d, nil
	}

	content, err := b.content(el.Name, el.ComplexType, 0)
	if err != nil {
		return nil, err
	}
	d.content = content
	return d, nil
}

func (b *builder) topLevelComplexType(ct *xsdComplexType) (descriptor, error) {
	if ct.Name == "" {
		return nil, &xsderrors.SchemaError{Kind: xsderrors.ErrMalformedSchemaType, Message: "top-level complexType without a name"}
	}
	if ct.Type != "" {
		return nil, &xsderrors.SchemaError{
			Kind:     xsderrors.ErrInvalidComplexTypeDependency,
			TypeName: ct.Name,
			Message:  "depends on " + b.ns.qname(ct.Type),
		}
	}
	if ct.ComplexContent == nil && ct.SimpleContent == nil && !ct.hasModel() {
		return nil, &xsderrors.SchemaError{
			Kind:     xsderrors.ErrEmptyComplexType,
			TypeName: ct.Name,
			Message:  "declares no attributes, sequence or choice",
		}
	}
	content, err := b.content(ct.Name, ct, 0)
	if err != nil {
		return nil, err
	}
	if content.IsEmpty() {
		return nil, &xsderrors.SchemaError{
			Kind:     xsderrors.ErrEmptyComplexType,
			TypeName: ct.Name,
			Message:  "content model declares no elements",
		}
	}
	return &complexDescriptor{name: ct.Name, content: content}, nil
}

// content reads the attributes and element slots of a complex type. depth is
// the anonymous nesting level of the owner: 0 for top-level declarations.
func (b *builder) content(owner string, ct *xsdComplexType, depth int) (schema.Content, error) {
	var c schema.Content

	for _, deriv := range []*xsdDerivation{ct.ComplexContent, ct.SimpleContent} {
		if deriv != nil {
			return c, &xsderrors.SchemaError{
				Kind:     xsderrors.ErrInvalidComplexTypeDependency,
				TypeName: owner,
				Message:  "derives from " + b.ns.qname(deriv.base()),
			}
		}
	}
	if ct.Group != nil || len(ct.AttributeGroups) > 0 {
		return c, &xsderrors.SchemaError{
			Kind:     xsderrors.ErrUnsupportedSchemaConstruct,
			TypeName: owner,
			Message:  "group references are not supported",
		}
	}

	for i := range ct.Attributes {
		attr, err := b.attribute(owner, &ct.Attributes[i])
		if err != nil {
			return c, err
		}
		if attr != nil {
			c.Attributes = append(c.Attributes, attr)
		}
	}

	compositors := 0
	for _, g := range []*xsdGroup{ct.Sequence, ct.Choice, ct.All} {
		if g != nil {
			compositors++
		}
	}
	if compositors > 1 {
		return c, &xsderrors.SchemaError{
			Kind:     xsderrors.ErrUnsupportedSchemaConstruct,
			TypeName: owner,
			Message:  "more than one compositor",
		}
	}

	var err error
	switch {
	case ct.Sequence != nil:
		c.Elements, err = b.sequence(owner, ct.Sequence, depth)
	case ct.All != nil:
		c.Elements, err = b.sequence(owner, ct.All, depth)
	case ct.Choice != nil:
		c.Elements, err = b.choice(owner, ct.Choice, depth)
	}
	return c, err
}

func (b *builder) sequence(owner string, g *xsdGroup, depth int) ([]*schema.ElementProperty, error) {
	if len(g.Choices) > 0 || len(g.Sequences) > 0 || len(g.Groups) > 0 {
		return nil, &xsderrors.SchemaError{
			Kind:     xsderrors.ErrUnsupportedSchemaConstruct,
			TypeName: owner,
			Message:  "nested compositors inside a sequence",
		}
	}
	b.reportWildcards(owner, g)
	return b.childElements(owner, g.Elements, depth, false)
}

// choice reads a choice compositor. Elements of one nested choice level are
// flattened into the owner. Every branch becomes optional.
func (b *builder) choice(owner string, g *xsdGroup, depth int) ([]*schema.ElementProperty, error) {
	if len(g.Sequences) > 0 || len(g.Groups) > 0 {
		return nil, &xsderrors.SchemaError{
			Kind:     xsderrors.ErrUnsupportedSchemaConstruct,
			TypeName: owner,
			Message:  "sequence inside a choice",
		}
	}
	b.reportWildcards(owner, g)
	elements := g.Elements
	for _, nested := range g.Choices {
		if len(nested.Choices) > 0 || len(nested.Sequences) > 0 || len(nested.Groups) > 0 {
			return nil, &xsderrors.SchemaError{
				Kind:     xsderrors.ErrUnsupportedSchemaConstruct,
				TypeName: owner,
				Message:  "choice nested more than one level",
			}
		}
		b.reportWildcards(owner, &nested)
		elements = append(elements[:len(elements):len(elements)], nested.Elements...)
	}
	return b.childElements(owner, elements, depth, true)
}

func (b *builder) reportWildcards(owner string, g *xsdGroup) {
	if len(g.Any) > 0 {
		b.info(owner, "element wildcards (xs:any) are ignored")
	}
}

func (b *builder) childElements(owner string, els []xsdElement, depth int, inChoice bool) ([]*schema.ElementProperty, error) {
	props := make([]*schema.ElementProperty, 0, len(els))
	for i := range els {
		prop, err := b.childElement(owner, &els[i], depth)
		if err != nil {
			return nil, err
		}
		if prop == nil {
			continue
		}
		if inChoice {
			prop.MinOccurs = 0
		}
		props = append(props, prop)
	}
	return props, nil
}

// childElement reads one element slot of a container.
func (b *builder) childElement(owner string, el *xsdElement, depth int) (*schema.ElementProperty, error) {
	name := el.Name
	if el.Ref != "" {
		name = localName(b.ns.qname(el.Ref))
	}
	if name == "" {
		return nil, &xsderrors.SchemaError{
			Kind:     xsderrors.ErrMalformedSchemaType,
			TypeName: owner,
			Message:  "child element without a name or ref",
		}
	}
	path := issues.FormatPath(owner, name)

	minOccurs, maxOccurs, err := parseOccurs(el.MinOccurs, el.MaxOccurs)
	if err != nil {
		return nil, &xsderrors.SchemaError{
			Kind:     xsderrors.ErrMalformedSchemaType,
			TypeName: owner,
			Property: name,
			Cause:    err,
		}
	}
	prop := &schema.ElementProperty{Name: name, MinOccurs: minOccurs, MaxOccurs: maxOccurs}

	switch {
	case el.Ref != "":
		prop.AssignableTypeNames = []string{b.ns.qname(el.Ref)}
	case el.Type != "":
		prop.AssignableTypeNames = []string{b.ns.qname(el.Type)}
	case el.SimpleType != nil:
		typeName, err := b.inlineSimpleType(name, el.SimpleType, path)
		if err != nil {
			return nil, err
		}
		prop.AssignableTypeNames = []string{typeName}
	case el.ComplexType != nil:
		if refs, repeated, ok := choiceRefs(el.ComplexType); ok {
			if len(refs) == 0 {
				b.warn(path, "choice has no element references; property skipped")
				return nil, nil
			}
			for _, r := range refs {
				prop.AssignableTypeNames = append(prop.AssignableTypeNames, b.ns.qname(r))
			}
			if repeated {
				prop.MaxOccurs = schema.Unbounded
			}
			return prop, nil
		}
		if err := b.hoist(owner, el, depth); err != nil {
			return nil, err
		}
		prop.AssignableTypeNames = []string{name}
	default:
		b.info(path, "element has no type; using "+xsString)
		prop.AssignableTypeNames = []string{xsString}
	}
	return prop, nil
}

// choiceRefs returns the element references of an anonymous complex type
// whose only content is a flat choice of references, optionally wrapped in a
// sequence holding nothing else. repeated is true when either compositor may
// occur more than once. ok is false for any other shape.
func choiceRefs(ct *xsdComplexType) (refs []string, repeated, ok bool) {
	if len(ct.Attributes) > 0 || ct.All != nil || ct.Group != nil ||
		ct.ComplexContent != nil || ct.SimpleContent != nil {
		return nil, false, false
	}
	g := ct.Choice
	if seq := ct.Sequence; seq != nil {
		if g != nil || len(seq.Elements) > 0 || len(seq.Sequences) > 0 || len(seq.Groups) > 0 || len(seq.Choices) != 1 {
			return nil, false, false
		}
		repeated = isRepeated(seq.MaxOccurs)
		g = &seq.Choices[0]
	}
	if g == nil || len(g.Choices) > 0 || len(g.Sequences) > 0 || len(g.Groups) > 0 {
		return nil, false, false
	}
	for _, el := range g.Elements {
		if el.Ref == "" {
			return nil, false, false
		}
		refs = append(refs, el.Ref)
	}
	return refs, repeated || isRepeated(g.MaxOccurs), true
}

func isRepeated(maxOccurs string) bool {
	_, maxN, err := parseOccurs("0", maxOccurs)
	return err == nil && (maxN == schema.Unbounded || maxN > 1)
}

// hoist turns an anonymous complex child element into a named element type.
func (b *builder) hoist(owner string, el *xsdElement, depth int) error {
	if depth >= maxHoistDepth {
		return &xsderrors.SchemaError{
			Kind:     xsderrors.ErrUnsupportedSchemaConstruct,
			TypeName: owner,
			Property: el.Name,
			Message:  "anonymous element types nested more than one level",
		}
	}
	content, err := b.content(el.Name, el.ComplexType, depth+1)
	if err != nil {
		return err
	}
	b.logger.Debug("hoisted anonymous element", "owner", owner, "name", el.Name)
	b.hoisted++
	return b.push(&elementDescriptor{name: el.Name, content: content})
}

func (b *builder) attribute(owner string, a *xsdAttribute) (*schema.AttributeProperty, error) {
	if a.Ref != "" {
		b.warn(issues.FormatPath(owner, a.Ref), "attribute references are not supported; skipped")
		return nil, nil
	}
	if a.Name == "" {
		return nil, &xsderrors.SchemaError{
			Kind:     xsderrors.ErrMalformedSchemaType,
			TypeName: owner,
			Message:  "attribute without a name",
		}
	}
	path := issues.FormatPath(owner, a.Name)

	attr := &schema.AttributeProperty{Name: a.Name}
	switch a.Use {
	case "", string(schema.UseOptional):
		attr.Use = schema.UseOptional
	case string(schema.UseRequired):
		attr.Use = schema.UseRequired
	case "prohibited":
		b.warn(path, "prohibited attribute skipped")
		return nil, nil
	default:
		return nil, &xsderrors.SchemaError{
			Kind:     xsderrors.ErrMalformedSchemaType,
			TypeName: owner,
			Property: a.Name,
			Message:  fmt.Sprintf("invalid use %q", a.Use),
		}
	}

	switch {
	case a.Type != "":
		attr.TypeName = b.ns.qname(a.Type)
	case a.SimpleType != nil:
		typeName, err := b.inlineSimpleType(a.Name, a.SimpleType, path)
		if err != nil {
			return nil, err
		}
		attr.TypeName = typeName
	default:
		b.info(path, "attribute has no type; using "+xsString)
		attr.TypeName = xsString
	}
	return attr, nil
}

// retypeSimpleElementRefs points single-type slots that reference a
// simple-typed top-level element straight at that element's simple type, so
// the slot carries a value instead of an empty node.
func (b *builder) retypeSimpleElementRefs() {
	for _, d := range b.descs {
		for _, prop := range elementsOf(d) {
			if len(prop.AssignableTypeNames) != 1 {
				continue
			}
			target, ok := b.byName[prop.AssignableTypeNames[0]].(*elementDescriptor)
			if !ok || target.instanceOf == "" {
				continue
			}
			switch b.byName[target.instanceOf].(type) {
			case *complexDescriptor, *elementDescriptor:
				continue
			}
			prop.AssignableTypeNames = []string{target.instanceOf}
		}
	}
}

func (b *builder) warn(path, msg string) {
	b.logger.Warn(msg, "path", path)
	b.issues = append(b.issues, issues.Issue{Path: path, Message: msg, Severity: severity.SeverityWarning, File: b.file})
}

func (b *builder) info(path, msg string) {
	b.logger.Debug(msg, "path", path)
	b.issues = append(b.issues, issues.Issue{Path: path, Message: msg, Severity: severity.SeverityInfo, File: b.file})
}

// parseOccurs parses minOccurs and maxOccurs. Both default to 1.
func parseOccurs(minStr, maxStr string) (minOccurs, maxOccurs int, err error) {
	minOccurs, maxOccurs = 1, 1
	if minStr = strings.TrimSpace(minStr); minStr != "" {
		minOccurs, err = strconv.Atoi(minStr)
		if err != nil || minOccurs < 0 {
			return 0, 0, fmt.Errorf("invalid minOccurs %q", minStr)
		}
	}
	switch maxStr = strings.TrimSpace(maxStr); maxStr {
	case "":
	case unboundedLiteral:
		return minOccurs, schema.Unbounded, nil
	default:
		maxOccurs, err = strconv.Atoi(maxStr)
		if err != nil || maxOccurs < 0 {
			return 0, 0, fmt.Errorf("invalid maxOccurs %q", maxStr)
		}
	}
	if minOccurs > maxOccurs {
		return 0, 0, fmt.Errorf("minOccurs %d exceeds maxOccurs %d", minOccurs, maxOccurs)
	}
	return minOccurs, maxOccurs, nil
}
