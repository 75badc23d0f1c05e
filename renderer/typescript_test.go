package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/xsdmodel/converter"
	"github.com/erraggy/xsdmodel/model"
	"github.com/erraggy/xsdmodel/xsderrors"
)

func TestRenderFile(t *testing.T) {
	src, err := RenderFile(noteSystem(t), WithHeader("Copyright Example Corp.\n\nGenerated from notes.xsd."))
	require.NoError(t, err)

	want := `/**
 * Copyright Example Corp.
 *
 * Generated from notes.xsd.
 */

import { XmlNode } from './xml-node';

export enum Level { 
HIGH = 'high',
}

export interface NoteAttributes {
readonly level?: Level;
readonly xmlLang?: string;
}

export interface NoteElements {
readonly body: string;
readonly sent?: Date;
}

export interface IFolderEntry { }

export class Note
extends XmlNode
implements
IFolderEntry
{
constructor(
public readonly attributes: NoteAttributes,
public readonly elements: NoteElements,
) {
super({
 tagName: 'note',
 namespace: 'urn:notes',
 attrsNamesOverrides: {
  xmlLang: 'xml-lang',
 },
});
}
}
`
	assert.Equal(t, want, string(src))
}

func TestRenderFileOrdersByKind(t *testing.T) {
	ts, err := model.NewTypeSystem(
		&model.Struct{Name: "AElements"},
		&model.BehavioralInterface{Name: "IA"},
		&model.Enum{Name: "Color"},
	)
	require.NoError(t, err)

	src, err := RenderFile(ts)
	require.NoError(t, err)
	out := string(src)
	assert.Less(t, strings.Index(out, "enum Color"), strings.Index(out, "interface AElements"))
	assert.Less(t, strings.Index(out, "interface AElements"), strings.Index(out, "interface IA"))
	assert.NotContains(t, out, "import")
}

func TestRenderFileShiporder(t *testing.T) {
	src, err := RenderFile(convertTestdata(t, "shiporder.xsd"))
	require.NoError(t, err)
	out := string(src)

	assert.True(t, strings.HasPrefix(out, "import { XmlNode } from './xml-node';\n\n"))
	assert.Equal(t, 3, strings.Count(out, "export class "))
	assert.Equal(t, 4, strings.Count(out, "export interface "))
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestRenderFileCustomBase(t *testing.T) {
	ts := convertTestdata(t, "shiporder.xsd",
		converter.WithNodeModulePath("src/generated"),
		converter.WithBaseClass("Node", "./src/runtime/node"),
	)
	src, err := RenderFile(ts)
	require.NoError(t, err)
	assert.Contains(t, string(src), "import { Node } from '../runtime/node';")
	assert.Contains(t, string(src), "extends Node\n")
}

func TestRenderFileEmpty(t *testing.T) {
	ts, err := model.NewTypeSystem()
	require.NoError(t, err)
	src, err := RenderFile(ts)
	require.NoError(t, err)
	assert.Empty(t, src)
}

func TestRenderFileNil(t *testing.T) {
	_, err := RenderFile(nil)
	assert.ErrorIs(t, err, xsderrors.ErrConfig)
}

func TestComments(t *testing.T) {
	assert.Equal(t, "/**\n * a\n *\n * b\n */", blockComment("a\n\nb\n"))
	assert.Equal(t, "// a\n//\n// b", lineComment("a\n\nb"))
}
