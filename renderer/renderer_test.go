package renderer

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erraggy/xsdmodel/converter"
	"github.com/erraggy/xsdmodel/model"
	"github.com/erraggy/xsdmodel/parser"
)

func convertTestdata(t *testing.T, name string, opts ...converter.Option) *model.TypeSystem {
	t.Helper()
	parsed, err := parser.New().Parse("../testdata/" + name)
	require.NoError(t, err)
	result, err := converter.ConvertWithOptions(parsed.Graph, opts...)
	require.NoError(t, err)
	return result.TypeSystem
}

var whitespace = regexp.MustCompile(`\s+`)

// squash collapses whitespace runs so assertions do not depend on gofmt alignment.
func squash(s string) string {
	return whitespace.ReplaceAllString(s, " ")
}

// noteSystem is a small hand-built model touching every entity kind.
func noteSystem(t *testing.T) *model.TypeSystem {
	t.Helper()
	ts, err := model.NewTypeSystem(
		&model.Enum{Name: "Level", Members: []model.EnumMember{{Key: "HIGH", Value: "high"}}},
		&model.Struct{Name: "NoteAttributes", Properties: []model.Property{
			{Name: "level", TypeName: "Level", IsOptional: true},
			{Name: "xmlLang", TypeName: "string", IsOptional: true, OriginalName: "xml-lang"},
		}},
		&model.Struct{Name: "NoteElements", Properties: []model.Property{
			{Name: "body", TypeName: "string"},
			{Name: "sent", TypeName: "Date", IsOptional: true},
		}},
		&model.BehavioralInterface{Name: "IFolderEntry"},
		&model.Class{
			Name: "Note",
			Params: []model.Property{
				{Name: model.ParamAttributes, TypeName: "NoteAttributes"},
				{Name: model.ParamElements, TypeName: "NoteElements"},
			},
			Implements: []string{"IFolderEntry"},
			TagName:    "note",
			Namespace:  "urn:notes",
			Extends: &model.Extends{Class: "XmlNode", Module: "./xml-node", SuperArgs: []model.Expr{model.Object{
				{Key: "tagName", Value: model.StringLit("note")},
				{Key: "namespace", Value: model.StringLit("urn:notes")},
				{Key: "attrsNamesOverrides", Value: model.Object{{Key: "xmlLang", Value: model.StringLit("xml-lang")}}},
			}}},
		},
	)
	require.NoError(t, err)
	return ts
}
