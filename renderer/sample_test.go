package renderer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/xsdmodel/model"
	"github.com/erraggy/xsdmodel/xsderrors"
)

func TestRenderSampleShiporder(t *testing.T) {
	ts := convertTestdata(t, "shiporder.xsd")

	out, err := RenderSample(ts, "Shiporder")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "new Shiporder({\n orderid: '"), out)
	assert.Contains(t, out, "\n shipto: new Shipto({\n  name: '")
	assert.Contains(t, out, "\n item: [new Item({\n")
	assert.Contains(t, out, "  quantity: ")
	assert.True(t, strings.HasSuffix(out, "})"))
}

func TestRenderSampleDeterministic(t *testing.T) {
	ts := convertTestdata(t, "broker.xsd")

	first, err := RenderSample(ts, "Broker", WithSeed(7))
	require.NoError(t, err)
	second, err := RenderSample(ts, "Broker", WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := RenderSample(ts, "Broker", WithSeed(8))
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestRenderSampleChoosesFirstImplementer(t *testing.T) {
	out, err := RenderSample(convertTestdata(t, "broker.xsd"), "Broker")
	require.NoError(t, err)
	assert.Contains(t, out, "destinations: [new Queue(")
}

func TestRenderSampleValues(t *testing.T) {
	out, err := RenderSample(noteSystem(t), "Note")
	require.NoError(t, err)

	assert.Contains(t, out, "level: Level.HIGH,")
	assert.Contains(t, out, "sent: new Date('")
	assert.Contains(t, out, "Z'),")
}

func TestRenderSampleDepth(t *testing.T) {
	out, err := RenderSample(noteSystem(t), "Note", WithMaxDepth(1))
	require.NoError(t, err)
	assert.Contains(t, out, "level:", "depth 0 keeps optional fields")

	ts, err := model.NewTypeSystem(
		&model.Struct{Name: "FolderElements", Properties: []model.Property{
			{Name: "folder", TypeName: "Folder", IsOptional: true},
			{Name: "title", TypeName: "string"},
		}},
		&model.Class{Name: "Folder", TagName: "folder", Params: []model.Property{
			{Name: model.ParamElements, TypeName: "FolderElements"},
		}},
	)
	require.NoError(t, err)

	out, err = RenderSample(ts, "Folder", WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "new Folder("), "optional recursion stops at the depth limit")
}

func TestRenderSampleErrors(t *testing.T) {
	ts, err := model.NewTypeSystem(
		&model.Struct{Name: "WidgetElements", Properties: []model.Property{
			{Name: "payload", TypeName: "any"},
			{Name: "extra", TypeName: "any", IsOptional: true},
		}},
		&model.Class{Name: "Widget", TagName: "widget", Params: []model.Property{
			{Name: model.ParamElements, TypeName: "WidgetElements"},
		}},
		&model.Struct{Name: "GadgetElements", Properties: []model.Property{
			{Name: "extra", TypeName: "any", IsOptional: true},
		}},
		&model.Class{Name: "Gadget", TagName: "gadget", Params: []model.Property{
			{Name: model.ParamElements, TypeName: "GadgetElements", IsOptional: true},
		}},
		&model.Struct{Name: "LoopElements", Properties: []model.Property{
			{Name: "next", TypeName: "Loop"},
		}},
		&model.Class{Name: "Loop", TagName: "loop", Params: []model.Property{
			{Name: model.ParamElements, TypeName: "LoopElements"},
		}},
	)
	require.NoError(t, err)

	t.Run("required field without a value rule", func(t *testing.T) {
		_, err := RenderSample(ts, "Widget")
		require.ErrorIs(t, err, xsderrors.ErrUnresolvedTemplateValue)
		var tmplErr *xsderrors.TemplateError
		require.True(t, errors.As(err, &tmplErr))
		assert.Equal(t, "Widget", tmplErr.Class)
		assert.Equal(t, "payload", tmplErr.Field)
		assert.Equal(t, "any", tmplErr.TypeName)
	})

	t.Run("optional field without a value rule", func(t *testing.T) {
		out, err := RenderSample(ts, "Gadget")
		require.NoError(t, err)
		assert.Equal(t, "new Gadget({})", out)
	})

	t.Run("required cycle", func(t *testing.T) {
		_, err := RenderSample(ts, "Loop")
		assert.ErrorIs(t, err, xsderrors.ErrUnresolvedTemplateValue)
	})

	t.Run("unknown class", func(t *testing.T) {
		_, err := RenderSample(ts, "WidgetElements")
		assert.ErrorIs(t, err, xsderrors.ErrUnknownTypeReference)
	})

	t.Run("bad options", func(t *testing.T) {
		_, err := RenderSample(ts, "Gadget", WithMaxDepth(0))
		assert.ErrorIs(t, err, xsderrors.ErrConfig)
	})
}
