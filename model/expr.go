package model

import (
	"strings"
	"unicode"
)

// Expr is an argument expression in a super call.
type Expr interface {
	render(depth int) string
}

// StringLit is a single-quoted string literal.
type StringLit string

// Ident is a reference to a name in scope, such as a constructor parameter.
type Ident string

// ObjectProp is one key of an object literal.
type ObjectProp struct {
	Key   string
	Value Expr
}

// Object is an object literal with keys in declaration order.
type Object []ObjectProp

// Raw is source text emitted verbatim, such as a number literal.
type Raw string

// Array is an array literal.
type Array []Expr

// New is a constructor call.
type New struct {
	Class string
	Args  []Expr
}

// Render renders e as TypeScript source at the top indentation level.
func Render(e Expr) string {
	return e.render(0)
}

func (s StringLit) render(int) string { return quote(string(s)) }

func (i Ident) render(int) string { return string(i) }

func (r Raw) render(int) string { return string(r) }

func (a Array) render(depth int) string {
	items := make([]string, len(a))
	for i, e := range a {
		items[i] = e.render(depth)
	}
	return "[" + strings.Join(items, ", ") + "]"
}

func (n New) render(depth int) string {
	args := make([]string, len(n.Args))
	for i, e := range n.Args {
		args[i] = e.render(depth)
	}
	return "new " + n.Class + "(" + strings.Join(args, ", ") + ")"
}

// render lays the object out one key per line, indented one space per level,
// with a trailing comma after the last key.
func (o Object) render(depth int) string {
	if len(o) == 0 {
		return "{}"
	}
	indent := strings.Repeat(" ", depth+1)
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, p := range o {
		sb.WriteString(indent)
		sb.WriteString(objectKey(p.Key))
		sb.WriteString(": ")
		sb.WriteString(p.Value.render(depth + 1))
		sb.WriteString(",\n")
	}
	sb.WriteString(strings.Repeat(" ", depth))
	sb.WriteByte('}')
	return sb.String()
}

// Lookup returns the value stored under key.
func (o Object) Lookup(key string) (Expr, bool) {
	for _, p := range o {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// quote renders s as a single-quoted literal.
func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			sb.WriteString(`\'`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}

// objectKey leaves identifier keys bare and quotes everything else.
func objectKey(k string) string {
	if k == "" {
		return quote(k)
	}
	for i, r := range k {
		if r == '_' || r == '$' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return quote(k)
	}
	return k
}
