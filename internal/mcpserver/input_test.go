package mcpserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/xsdmodel/parser"
)

const shiporderPath = "../../testdata/shiporder.xsd"

const noteXSD = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:notes">
  <xs:simpleType name="level">
    <xs:restriction base="xs:string">
      <xs:enumeration value="low"/>
      <xs:enumeration value="high"/>
    </xs:restriction>
  </xs:simpleType>
  <xs:element name="note">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="to" type="xs:string"/>
        <xs:element name="body" type="xs:string" minOccurs="0"/>
      </xs:sequence>
      <xs:attribute name="level" type="level"/>
    </xs:complexType>
  </xs:element>
</xs:schema>
`

// withServerConfig swaps a copy of the active configuration for the test.
func withServerConfig(t *testing.T, mutate func(*serverConfig)) {
	t.Helper()
	saved := *cfg
	mutate(cfg)
	t.Cleanup(func() { *cfg = saved })
}

func TestSchemaInput_ResolveFile(t *testing.T) {
	schemaCache.reset()
	input := schemaInput{File: shiporderPath}
	result, err := input.resolve(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 9, result.Graph.Len())
	assert.Equal(t, shiporderPath, result.SourcePath)
}

func TestSchemaInput_ResolveContent(t *testing.T) {
	schemaCache.reset()
	input := schemaInput{Content: noteXSD}
	result, err := input.resolve(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "urn:notes", result.TargetNamespace)
	assert.True(t, result.Graph.Has("note"))
}

func TestSchemaInput_ResolveNoneProvided(t *testing.T) {
	_, err := schemaInput{}.resolve(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file, url, or content must be provided")
}

func TestSchemaInput_ResolveMultipleProvided(t *testing.T) {
	_, err := schemaInput{File: "foo.xsd", Content: "bar"}.resolve(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(got 2)")
}

func TestSchemaInput_ResolveFileNotFound(t *testing.T) {
	schemaCache.reset()
	_, err := schemaInput{File: "/nonexistent/path.xsd"}.resolve(context.Background(), false)
	assert.Error(t, err)
}

func TestSchemaInput_InlineSizeLimit(t *testing.T) {
	withServerConfig(t, func(c *serverConfig) { c.MaxInlineSize = 16 })
	_, err := schemaInput{Content: noteXSD}.resolve(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "XSDMODEL_MAX_INLINE_SIZE")
}

func TestSchemaCache_HitOnSameFile(t *testing.T) {
	schemaCache.reset()
	input := schemaInput{File: shiporderPath}

	result1, err := input.resolve(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, schemaCache.size())

	result2, err := input.resolve(context.Background(), false)
	require.NoError(t, err)
	assert.Same(t, result1, result2, "expected same pointer from cache hit")
}

func TestSchemaCache_MutableBypassesCache(t *testing.T) {
	schemaCache.reset()
	input := schemaInput{Content: noteXSD}

	result1, err := input.resolve(context.Background(), true)
	require.NoError(t, err)
	result2, err := input.resolve(context.Background(), true)
	require.NoError(t, err)

	assert.NotSame(t, result1, result2)
	assert.Zero(t, schemaCache.size())
}

func TestSchemaCache_ExtraOptionsBypassCache(t *testing.T) {
	schemaCache.reset()
	_, err := schemaInput{Content: noteXSD}.resolve(context.Background(), false,
		parser.WithXSDNamespace("http://www.w3.org/2001/XMLSchema"))
	require.NoError(t, err)
	assert.Zero(t, schemaCache.size())
}

func TestSchemaCache_MissOnModifiedFile(t *testing.T) {
	schemaCache.reset()

	path := filepath.Join(t.TempDir(), "note.xsd")
	require.NoError(t, os.WriteFile(path, []byte(noteXSD), 0o644))

	input := schemaInput{File: path}
	result1, err := input.resolve(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, result1.Graph.Has("note"))

	renamed := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:element name="memo"><xs:complexType/></xs:element></xs:schema>`
	require.NoError(t, os.WriteFile(path, []byte(renamed), 0o644))

	// Ensure mtime differs from the first write on coarse-grained filesystems.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	result2, err := input.resolve(context.Background(), false)
	require.NoError(t, err)
	assert.NotSame(t, result1, result2)
	assert.True(t, result2.Graph.Has("memo"))
}

func TestSchemaCache_LRUEviction(t *testing.T) {
	schemaCache.reset()

	var firstKey string
	for i := range 11 {
		content := fmt.Sprintf(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:element name="e%d"><xs:complexType/></xs:element></xs:schema>`, i)
		if i == 0 {
			firstKey = makeCacheKey(schemaInput{Content: content}, nil)
		}
		_, err := schemaInput{Content: content}.resolve(context.Background(), false)
		require.NoError(t, err)
	}

	assert.Equal(t, 10, schemaCache.size())
	assert.Nil(t, schemaCache.get(firstKey), "expected oldest entry to be evicted")
}

func TestSchemaCache_Expiry(t *testing.T) {
	c := newSchemaCacheStore(4, time.Minute, time.Minute, 10*time.Millisecond)
	res := &parser.ParseResult{}
	c.put("file:/schemas/a.xsd:1", res)
	c.put("content:abc", res)

	assert.Eventually(t, func() bool { return c.get("content:abc") == nil }, time.Second, 5*time.Millisecond)
	assert.Same(t, res, c.get("file:/schemas/a.xsd:1"))
}

func TestSchemaCache_KindsAreSeparate(t *testing.T) {
	c := newSchemaCacheStore(1, time.Minute, time.Minute, time.Minute)
	res := &parser.ParseResult{}
	c.put("file:/a.xsd:1", res)
	c.put("url:https://example.com/a.xsd", res)
	c.put("content:abc", res)
	assert.Equal(t, 3, c.size())

	c.put("content:def", res)
	assert.Equal(t, 3, c.size())
	assert.Nil(t, c.get("content:abc"))
	assert.Same(t, res, c.get("file:/a.xsd:1"))

	c.reset()
	assert.Zero(t, c.size())
}

func TestMakeCacheKey(t *testing.T) {
	assert.Empty(t, makeCacheKey(schemaInput{}, nil))
	assert.Empty(t, makeCacheKey(schemaInput{File: "/nonexistent/path.xsd"}, nil))
	assert.Equal(t, "url:https://example.com/a.xsd", makeCacheKey(schemaInput{URL: "https://example.com/a.xsd"}, nil))
	assert.Contains(t, makeCacheKey(schemaInput{File: shiporderPath}, nil), "shiporder.xsd:")
	assert.Empty(t, makeCacheKey(schemaInput{Content: noteXSD}, []parser.Option{parser.WithSourceName("x")}))
}

func TestSchemaInput_ResolveURL(t *testing.T) {
	var userAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		if r.URL.Path != "/note.xsd" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(noteXSD))
	}))
	t.Cleanup(srv.Close)

	t.Run("loopback blocked by default", func(t *testing.T) {
		withServerConfig(t, func(c *serverConfig) { c.AllowPrivateIPs = false })
		_, err := schemaInput{URL: srv.URL + "/note.xsd"}.resolve(context.Background(), true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "blocked")
	})

	t.Run("allowed private", func(t *testing.T) {
		withServerConfig(t, func(c *serverConfig) { c.AllowPrivateIPs = true })
		result, err := schemaInput{URL: srv.URL + "/note.xsd"}.resolve(context.Background(), true)
		require.NoError(t, err)
		assert.Equal(t, srv.URL+"/note.xsd", result.SourcePath)
		assert.True(t, result.Graph.Has("note"))
		assert.Contains(t, userAgent, "xsdmodel/")
	})

	t.Run("not found", func(t *testing.T) {
		withServerConfig(t, func(c *serverConfig) { c.AllowPrivateIPs = true })
		_, err := schemaInput{URL: srv.URL + "/missing.xsd"}.resolve(context.Background(), true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("too large", func(t *testing.T) {
		withServerConfig(t, func(c *serverConfig) {
			c.AllowPrivateIPs = true
			c.MaxInlineSize = 32
		})
		_, err := schemaInput{URL: srv.URL + "/note.xsd"}.resolve(context.Background(), true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds maximum")
	})
}
