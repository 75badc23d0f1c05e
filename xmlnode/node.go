package xmlnode

import (
	"encoding/xml"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Declaration is the XML declaration written before a document.
const Declaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

// TimeFormat is the layout of time.Time values.
const TimeFormat = "2006-01-02T15:04:05.000Z"

// Marshaler is implemented by generated classes.
type Marshaler interface {
	XMLNode() *Node
}

// Props are the fixed properties of a node.
type Props struct {
	TagName   string
	Namespace string
	// AttrOverrides maps attribute names to the names written on the wire.
	AttrOverrides map[string]string
	// ElemOverrides maps element names to the names written on the wire.
	ElemOverrides map[string]string
}

type field struct {
	name  string
	value any
}

// Node is one XML element with its attributes and children, in insertion order.
type Node struct {
	props Props
	attrs []field
	elems []field
}

// New creates a node.
func New(props Props) *Node {
	return &Node{props: props}
}

// XMLNode makes a Node a Marshaler of itself.
func (n *Node) XMLNode() *Node { return n }

// TagName returns the tag of the node, or "" for nodes of complex types
// rendered under the tag of their parent slot.
func (n *Node) TagName() string { return n.props.TagName }

// Attr adds an attribute. Nil values are skipped.
func (n *Node) Attr(name string, value any) *Node {
	if !isNil(value) {
		n.attrs = append(n.attrs, field{name: name, value: value})
	}
	return n
}

// Elem adds a child element. Nil values and empty slices are skipped.
func (n *Node) Elem(name string, value any) *Node {
	if !isNil(value) && !isEmptySlice(value) {
		n.elems = append(n.elems, field{name: name, value: value})
	}
	return n
}

// ToXMLString renders a complete document with the namespace declared on the root.
func (n *Node) ToXMLString() string {
	var sb strings.Builder
	sb.WriteString(Declaration)
	n.render(&sb, n.props.TagName, true)
	return sb.String()
}

// Fragment renders the node without declaration or namespace.
func (n *Node) Fragment() string {
	var sb strings.Builder
	n.render(&sb, n.props.TagName, false)
	return sb.String()
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return n.Fragment()
}

// render writes the node under tag. A node without a tag writes its element
// children only.
func (n *Node) render(sb *strings.Builder, tag string, root bool) {
	if tag == "" {
		n.renderChildren(sb)
		return
	}

	sb.WriteByte('<')
	sb.WriteString(tag)
	if root && n.props.Namespace != "" {
		writeAttr(sb, "xmlns", n.props.Namespace)
	}
	for _, a := range n.attrs {
		writeAttr(sb, wireName(a.name, n.props.AttrOverrides), attrText(a.value))
	}
	if len(n.elems) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	n.renderChildren(sb)
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteByte('>')
}

func (n *Node) renderChildren(sb *strings.Builder) {
	for _, e := range n.elems {
		renderElem(sb, wireName(e.name, n.props.ElemOverrides), e.value)
	}
}

func renderElem(sb *strings.Builder, wire string, value any) {
	if m, ok := value.(Marshaler); ok {
		if c := m.XMLNode(); c != nil {
			renderNodes(sb, wire, []*Node{c})
		}
		return
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		renderElem(sb, wire, rv.Elem().Interface())
		return
	}
	if isSlice(rv) {
		var nodes []*Node
		for i := range rv.Len() {
			item := rv.Index(i).Interface()
			if isNil(item) {
				continue
			}
			if m, ok := item.(Marshaler); ok {
				if c := m.XMLNode(); c != nil {
					nodes = append(nodes, c)
				}
				continue
			}
			writeTextElem(sb, wire, textOf(item))
		}
		if len(nodes) > 0 {
			renderNodes(sb, wire, nodes)
		}
		return
	}
	writeTextElem(sb, wire, textOf(value))
}

// renderNodes writes nested nodes under wire, wrapping them when their own
// tags differ from it.
func renderNodes(sb *strings.Builder, wire string, nodes []*Node) {
	direct := true
	for _, c := range nodes {
		if c.props.TagName != "" && c.props.TagName != wire {
			direct = false
			break
		}
	}
	if direct {
		for _, c := range nodes {
			c.render(sb, wire, false)
		}
		return
	}

	sb.WriteByte('<')
	sb.WriteString(wire)
	sb.WriteByte('>')
	for _, c := range nodes {
		tag := c.props.TagName
		if tag == "" {
			tag = wire
		}
		c.render(sb, tag, false)
	}
	sb.WriteString("</")
	sb.WriteString(wire)
	sb.WriteByte('>')
}

func writeTextElem(sb *strings.Builder, wire, text string) {
	sb.WriteByte('<')
	sb.WriteString(wire)
	sb.WriteByte('>')
	escape(sb, text)
	sb.WriteString("</")
	sb.WriteString(wire)
	sb.WriteByte('>')
}

func writeAttr(sb *strings.Builder, name, value string) {
	sb.WriteByte(' ')
	sb.WriteString(name)
	sb.WriteString(`="`)
	escape(sb, value)
	sb.WriteByte('"')
}

func escape(sb *strings.Builder, s string) {
	// strings.Builder writes never fail.
	_ = xml.EscapeText(sb, []byte(s))
}

func wireName(name string, overrides map[string]string) string {
	if alt, ok := overrides[name]; ok && alt != "" {
		return alt
	}
	return name
}

// attrText stringifies an attribute value. Slices become space-separated
// lists.
func attrText(value any) string {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		return attrText(rv.Elem().Interface())
	}
	if isSlice(rv) {
		parts := make([]string, 0, rv.Len())
		for i := range rv.Len() {
			if item := rv.Index(i).Interface(); !isNil(item) {
				parts = append(parts, attrText(item))
			}
		}
		return strings.Join(parts, " ")
	}
	return textOf(value)
}

// textOf stringifies a primitive value.
func textOf(value any) string {
	switch v := value.(type) {
	case time.Time:
		return FormatTime(v)
	case *time.Time:
		return FormatTime(*v)
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer:
		return textOf(rv.Elem().Interface())
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	}
	return fmt.Sprint(value)
}

// FormatTime formats t in ISO-8601 UTC with millisecond precision.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func isSlice(rv reflect.Value) bool {
	return (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8
}

func isEmptySlice(v any) bool {
	rv := reflect.ValueOf(v)
	return isSlice(rv) && rv.Len() == 0
}

// Slice converts a typed slice of marshalers for use as an element value.
func Slice[T Marshaler](items []T) []Marshaler {
	out := make([]Marshaler, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
