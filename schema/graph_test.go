package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shiporderGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := NewGraph(
		&ValueType{Name: "xs:string"},
		&ValueType{Name: "xs:decimal"},
		&ElementType{
			Name: "shipto",
			Content: Content{Elements: []*ElementProperty{
				{Name: "name", MinOccurs: 1, MaxOccurs: 1, AssignableTypeNames: []string{"xs:string"}},
				{Name: "address", MinOccurs: 1, MaxOccurs: 1, AssignableTypeNames: []string{"xs:string"}},
			}},
		},
		&ElementType{
			Name: "shiporder",
			Content: Content{
				Attributes: []*AttributeProperty{{Name: "orderid", TypeName: "xs:string", Use: UseRequired}},
				Elements: []*ElementProperty{
					{Name: "shipto", MinOccurs: 1, MaxOccurs: 1, AssignableTypeNames: []string{"shipto"}},
				},
			},
		},
	)
	require.NoError(t, err)
	return g
}

func TestNewGraph(t *testing.T) {
	g := shiporderGraph(t)

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, []string{"xs:string", "xs:decimal", "shipto", "shiporder"}, g.Names())
	assert.Len(t, g.ElementTypes(), 2)
	assert.Len(t, g.Containers(), 2)
	assert.Empty(t, g.ComplexTypes())
	assert.Equal(t, map[Kind]int{KindValue: 2, KindElement: 2}, g.CountByKind())

	st, ok := g.Lookup("shipto")
	require.True(t, ok)
	assert.Equal(t, KindElement, st.Kind())

	_, ok = g.Lookup("orderperson")
	assert.False(t, ok)
}

func TestNewGraphRejectsDuplicates(t *testing.T) {
	_, err := NewGraph(&ValueType{Name: "xs:string"}, &SimpleType{Name: "xs:string", BaseType: "xs:string"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate type "xs:string"`)
}

func TestTypesReturnsCopy(t *testing.T) {
	g := shiporderGraph(t)
	types := g.Types()
	types[0] = &ValueType{Name: "mutated"}
	assert.Equal(t, "xs:string", g.Types()[0].TypeName())
}

func TestElementPropertyPredicates(t *testing.T) {
	tests := []struct {
		name     string
		prop     ElementProperty
		optional bool
		repeated bool
		choice   bool
	}{
		{"required single", ElementProperty{MinOccurs: 1, MaxOccurs: 1, AssignableTypeNames: []string{"a"}}, false, false, false},
		{"optional unbounded", ElementProperty{MinOccurs: 0, MaxOccurs: Unbounded, AssignableTypeNames: []string{"a"}}, true, true, false},
		{"bounded repeat", ElementProperty{MinOccurs: 1, MaxOccurs: 3, AssignableTypeNames: []string{"a", "b"}}, false, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.optional, tt.prop.IsOptional())
			assert.Equal(t, tt.repeated, tt.prop.IsRepeated())
			assert.Equal(t, tt.choice, tt.prop.IsChoice())
		})
	}
}

func TestContentLookup(t *testing.T) {
	g := shiporderGraph(t)
	so, _ := g.Lookup("shiporder")
	c := so.(Container).ContainerContent()

	assert.NotNil(t, c.Attribute("orderid"))
	assert.Nil(t, c.Attribute("missing"))
	assert.NotNil(t, c.Element("shipto"))
	assert.Nil(t, c.Element("item"))
	assert.False(t, c.IsEmpty())
	assert.True(t, (&Content{}).IsEmpty())
}
