package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/erraggy/xsdmodel"
	"github.com/erraggy/xsdmodel/parser"
)

// schemaInput represents the three ways an XSD document can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type schemaInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an XSD file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch an XSD document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline XSD document content"`
}

// schemaCacheStore caches ingested schemas for the session, one expiring LRU
// per input kind so each kind keeps its own TTL. File inputs are keyed by
// absolute path and mtime, content by its SHA-256, URLs by the URL itself.
type schemaCacheStore struct {
	files    *expirable.LRU[string, *parser.ParseResult]
	urls     *expirable.LRU[string, *parser.ParseResult]
	contents *expirable.LRU[string, *parser.ParseResult]
}

func newSchemaCacheStore(size int, fileTTL, urlTTL, contentTTL time.Duration) *schemaCacheStore {
	return &schemaCacheStore{
		files:    expirable.NewLRU[string, *parser.ParseResult](size, nil, fileTTL),
		urls:     expirable.NewLRU[string, *parser.ParseResult](size, nil, urlTTL),
		contents: expirable.NewLRU[string, *parser.ParseResult](size, nil, contentTTL),
	}
}

var schemaCache = newSchemaCacheStore(cfg.CacheMaxSize, cfg.CacheFileTTL, cfg.CacheURLTTL, cfg.CacheContentTTL)

func (c *schemaCacheStore) lru(key string) *expirable.LRU[string, *parser.ParseResult] {
	switch {
	case strings.HasPrefix(key, "file:"):
		return c.files
	case strings.HasPrefix(key, "url:"):
		return c.urls
	}
	return c.contents
}

// get returns a live cached result or nil.
func (c *schemaCacheStore) get(key string) *parser.ParseResult {
	res, _ := c.lru(key).Get(key)
	return res
}

func (c *schemaCacheStore) put(key string, res *parser.ParseResult) {
	c.lru(key).Add(key, res)
}

// reset clears every entry. Used in tests.
func (c *schemaCacheStore) reset() {
	c.files.Purge()
	c.urls.Purge()
	c.contents.Purge()
}

func (c *schemaCacheStore) size() int {
	return c.files.Len() + c.urls.Len() + c.contents.Len()
}

// makeCacheKey returns the cache key of s, or "" when s must not be cached.
// Parser options are not part of the key, so any extra option disables caching.
func makeCacheKey(s schemaInput, extraOpts []parser.Option) string {
	if len(extraOpts) > 0 {
		return ""
	}

	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(h[:])
	case s.URL != "":
		return "url:" + s.URL
	default:
		return ""
	}
}

// resolve ingests the schema from whichever input was provided.
//
// Results are shared through the cache unless mutable is set. Callers that
// apply patches to the graph must set it, since patches modify the graph in
// place.
func (s schemaInput) resolve(ctx context.Context, mutable bool, extraOpts ...parser.Option) (*parser.ParseResult, error) {
	count := 0
	for _, v := range []string{s.File, s.URL, s.Content} {
		if v != "" {
			count++
		}
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}

	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set XSDMODEL_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	var key string
	if cfg.CacheEnabled && !mutable {
		key = makeCacheKey(s, extraOpts)
	}

	if key != "" {
		if cached := schemaCache.get(key); cached != nil {
			return cached, nil
		}
	}

	var opts []parser.Option
	switch {
	case s.File != "":
		opts = append(opts, parser.WithFilePath(s.File))
	case s.URL != "":
		data, err := fetchSchema(ctx, s.URL)
		if err != nil {
			return nil, err
		}
		opts = append(opts, parser.WithBytes(data), parser.WithSourceName(s.URL))
	case s.Content != "":
		opts = append(opts, parser.WithReader(strings.NewReader(s.Content)))
	}
	opts = append(opts, extraOpts...)

	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}

	if key != "" {
		schemaCache.put(key, result)
	}
	return result, nil
}

// fetchSchema downloads a schema document. Private and loopback hosts are
// refused unless XSDMODEL_ALLOW_PRIVATE_IPS is set.
func fetchSchema(ctx context.Context, url string) ([]byte, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	if !cfg.AllowPrivateIPs {
		client = newSafeHTTPClient()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid schema URL: %w", err)
	}
	req.Header.Set("User-Agent", xsdmodel.UserAgent())
	req.Header.Set("Accept", "application/xml, text/xml, */*")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching schema: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching schema: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, cfg.MaxInlineSize+1))
	if err != nil {
		return nil, fmt.Errorf("fetching schema: %w", err)
	}
	if int64(len(data)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("fetched schema exceeds maximum %d bytes", cfg.MaxInlineSize)
	}
	return data, nil
}
