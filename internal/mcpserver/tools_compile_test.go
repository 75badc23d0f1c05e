package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	brokerPath       = "../../testdata/broker.xsd"
	brokerConfigPath = "../config/testdata/broker.yaml"
)

func TestCompileTool_TypeScript(t *testing.T) {
	schemaCache.reset()
	_, output, err := handleCompile(context.Background(), &mcp.CallToolRequest{}, compileInput{
		Schema: schemaInput{File: shiporderPath},
	})
	require.NoError(t, err)

	assert.Equal(t, "ts", output.Lang)
	assert.Equal(t, 9, output.SchemaTypeCount)
	assert.Equal(t, 3, output.ClassCount)
	assert.Equal(t, 4, output.StructCount)
	assert.Zero(t, output.EnumCount)
	assert.Zero(t, output.InterfaceCount)
	assert.True(t, strings.HasPrefix(output.Code, "import { XmlNode } from './xml-node';\n"))
	assert.Contains(t, output.Code, "export class Shiporder\n")
	assert.Empty(t, output.WrittenTo)
}

func TestCompileTool_Go(t *testing.T) {
	schemaCache.reset()
	_, output, err := handleCompile(context.Background(), &mcp.CallToolRequest{}, compileInput{
		Schema:  schemaInput{Content: noteXSD},
		Lang:    "go",
		Package: "notes",
		Header:  "Notes model.",
	})
	require.NoError(t, err)

	assert.Equal(t, "go", output.Lang)
	assert.Equal(t, "urn:notes", output.TargetNamespace)
	assert.Equal(t, 1, output.EnumCount)
	assert.True(t, strings.HasPrefix(output.Code, "// Notes model.\n"), output.Code)
	assert.Contains(t, output.Code, "package notes")
	assert.Contains(t, output.Code, "type Note struct")
	assert.Contains(t, output.Code, `"urn:notes"`)
}

func TestCompileTool_WithConfig(t *testing.T) {
	schemaCache.reset()
	input := compileInput{
		Schema: schemaInput{File: brokerPath},
		Config: brokerConfigPath,
	}

	// The configuration carries patches, so each call needs a fresh graph.
	for range 2 {
		result, output, err := handleCompile(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		require.Nil(t, result, "unexpected error result")
		assert.Contains(t, output.Code, "import { XmlNode } from '../../xml-node';")
		assert.Contains(t, output.Code, "export class CachedLDAPAuthorizationMap")
		assert.Contains(t, output.Code, "schedulerSupport")
	}
	assert.Zero(t, schemaCache.size())
}

func TestCompileTool_InlineConfig(t *testing.T) {
	schemaCache.reset()
	_, output, err := handleCompile(context.Background(), &mcp.CallToolRequest{}, compileInput{
		Schema:        schemaInput{File: shiporderPath},
		ConfigContent: "baseClass:\n  name: Node\n  module: '@acme/xml'\n",
	})
	require.NoError(t, err)
	assert.Contains(t, output.Code, "import { Node } from '@acme/xml';")
}

func TestCompileTool_Output(t *testing.T) {
	schemaCache.reset()
	path := filepath.Join(t.TempDir(), "generated", "shiporder.ts")
	result, output, err := handleCompile(context.Background(), &mcp.CallToolRequest{}, compileInput{
		Schema: schemaInput{File: shiporderPath},
		Output: path,
	})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, path, output.WrittenTo)
	assert.Empty(t, output.Code)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "export class Shiporder")
}

func TestCompileTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input compileInput
		want  string
	}{
		{
			name:  "invalid lang",
			input: compileInput{Schema: schemaInput{File: shiporderPath}, Lang: "java"},
			want:  "invalid lang",
		},
		{
			name:  "no schema",
			input: compileInput{},
			want:  "exactly one of file, url, or content",
		},
		{
			name:  "malformed schema",
			input: compileInput{Schema: schemaInput{Content: "<xs:schema"}},
			want:  "ParseReader.xsd",
		},
		{
			name: "both configs",
			input: compileInput{
				Schema:        schemaInput{File: shiporderPath},
				Config:        brokerConfigPath,
				ConfigContent: "{}",
			},
			want: "at most one of config or config_content",
		},
		{
			name: "unknown config field",
			input: compileInput{
				Schema:        schemaInput{File: shiporderPath},
				ConfigContent: "baseClas: {}\n",
			},
			want: "invalid YAML",
		},
		{
			name: "patch target missing",
			input: compileInput{
				Schema:        schemaInput{File: shiporderPath},
				ConfigContent: "patches:\n  - extendChoice: {type: nowhere, property: x, assignableType: y}\n",
			},
			want: "nowhere",
		},
		{
			name: "invalid package",
			input: compileInput{
				Schema:  schemaInput{File: shiporderPath},
				Lang:    "go",
				Package: "not-valid",
			},
			want: "not-valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schemaCache.reset()
			result, output, err := handleCompile(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			assert.Empty(t, output.Code)
			text := result.Content[0].(*mcp.TextContent).Text
			assert.Contains(t, text, tt.want)
		})
	}
}
