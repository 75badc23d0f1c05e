package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/xsdmodel/internal/naming"
	"github.com/erraggy/xsdmodel/schema"
	"github.com/erraggy/xsdmodel/xsderrors"
)

func TestDefaultTypeResolver(t *testing.T) {
	g, err := schema.NewGraph(
		&schema.ValueType{Name: "xs:string"},
		&schema.ValueType{Name: "xs:anySimpleType"},
		&schema.SimpleType{Name: "longOrString", BaseType: "xs:long"},
		&schema.SimpleType{Name: "size", BaseType: "longOrString"},
		&schema.SimpleType{Name: "loop", BaseType: "loop"},
		&schema.EnumerationType{Name: "protocol", BaseType: "xs:string", Values: []string{"openwire"}},
		&schema.ElementType{Name: "queue"},
		&schema.ComplexType{Name: "USAddress"},
	)
	require.NoError(t, err)
	resolve := DefaultTypeResolver(naming.ToTitleCase)

	tests := []struct {
		name string
		want string
	}{
		{"xs:boolean", "boolean"},
		{"xs:string", "string"},
		{"xs:NMTOKEN", "string"},
		{"xs:short", "number"},
		{"xs:positiveInteger", "number"},
		{"xs:decimal", "number"},
		{"xs:date", "Date"},
		{"xs:dateTime", "Date"},
		{"xs:anySimpleType", "string"},
		{"longOrString", "number"},
		{"size", "number"},
		{"protocol", "Protocol"},
		{"queue", "Queue"},
		{"USAddress", "USAddress"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolve(tt.name, g)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := resolve("missing", g)
		assert.ErrorIs(t, err, xsderrors.ErrUnknownTypeReference)
	})
	t.Run("alias cycle", func(t *testing.T) {
		_, err := resolve("loop", g)
		require.ErrorIs(t, err, xsderrors.ErrUnknownTypeReference)
		assert.Contains(t, err.Error(), "alias chain too long")
	})
}

func TestPrimitiveType(t *testing.T) {
	got, ok := PrimitiveType("xs:double")
	assert.True(t, ok)
	assert.Equal(t, TargetNumber, got)

	_, ok = PrimitiveType("queue")
	assert.False(t, ok)
}

func TestCustomResolver(t *testing.T) {
	g, err := schema.NewGraph(
		&schema.ValueType{Name: "xs:string"},
		&schema.ElementType{Name: "note", Content: schema.Content{
			Attributes: []*schema.AttributeProperty{{Name: "lang", TypeName: "xs:language", Use: schema.UseOptional}},
		}},
	)
	require.NoError(t, err)

	fallback := DefaultTypeResolver(naming.ToTitleCase)
	result, err := ConvertWithOptions(g, WithTypeResolver(func(name string, g *schema.Graph) (string, error) {
		if name == "xs:language" {
			return "LanguageTag", nil
		}
		return fallback(name, g)
	}))
	require.NoError(t, err)

	attrs, ok := result.TypeSystem.Struct("NoteAttributes")
	require.True(t, ok)
	lang, _ := attrs.Property("lang")
	assert.Equal(t, "LanguageTag", lang.TypeName)
}
