// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes xsdmodel capabilities as MCP tools over stdio.
package mcpserver

import (
	"cmp"
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/xsdmodel"
)

const serverInstructions = `xsdmodel MCP server: compiles XML Schema (XSD) documents into typed object models, inspects schema graphs and renders sample instances.

Configuration: All defaults are configurable via XSDMODEL_* environment variables set in your MCP client config.

Key settings:
- XSDMODEL_CACHE_FILE_TTL (default: 15m): cache TTL for local file schemas
- XSDMODEL_CACHE_URL_TTL (default: 5m): cache TTL for URL-fetched schemas
- XSDMODEL_CACHE_ENABLED (default: true): disable schema caching entirely
- XSDMODEL_INSPECT_LIMIT (default: 100): default result limit for inspect
- XSDMODEL_LANGUAGE (default: ts): default compile target (ts or go)
- XSDMODEL_SAMPLE_SEED (default: 1) and XSDMODEL_SAMPLE_DEPTH (default: 4): sample defaults
- XSDMODEL_ALLOW_PRIVATE_IPS (default: false): allow fetching schemas from private hosts

Caching: Ingested schemas are cached per session. File entries use path+mtime as key. Schemas compiled with a configuration that declares patches are never cached, since patches modify the graph.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "xsdmodel", Version: xsdmodel.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "compile",
		Description: "Compile an XSD document into a typed object model. Returns entity counts, conversion issues and the rendered source (TypeScript by default, or Go with lang=go). A YAML configuration (config file path or config_content) can set the base class, property renames, injected properties and graph patches. Use output to write the source to a file instead of returning it inline.",
	}, handleCompile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Inspect an XSD document. stage=schema lists the ingested type graph (value, simple, enumeration, complex and element types); stage=model (default) lists the compiled enums, structs, interfaces and classes. Filter by name glob (* and ?) or kind. Use detail=true to include definitions. Use group_by=kind to get distribution counts instead of individual items. Default limit is configurable via XSDMODEL_INSPECT_LIMIT.",
	}, handleInspect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "sample",
		Description: "Render a sample constructor call for one compiled class, filled with deterministic fake values. Required fields are always filled; optional fields are filled down to depth. Choice properties use the first implementing class. Defaults are configurable via XSDMODEL_SAMPLE_SEED and XSDMODEL_SAMPLE_DEPTH.",
	}, handleSample)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.InspectLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.InspectLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	return items[offset:min(offset+limit, len(items))]
}

// detailLimit returns the default limit for detail mode output when the
// caller did not set one.
func detailLimit(limit int) int {
	if limit <= 0 {
		return cfg.InspectDetailLimit
	}
	return limit
}

// makeSlice returns nil for n == 0 so empty lists are omitted from JSON.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths in error messages so they
// are not leaked to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount represents a single group in group_by results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort counts items per key, largest group first, ties by key.
func groupAndSort[T any](items []T, keyFn func(T) string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		counts[keyFn(item)]++
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	slices.SortFunc(groups, func(a, b groupCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return strings.Compare(a.Key, b.Key)
	})
	return groups
}

// validateGroupBy checks that group_by is a valid value and is not combined with detail.
func validateGroupBy(groupBy string, detail bool, allowed []string) error {
	if groupBy == "" {
		return nil
	}
	if detail {
		return fmt.Errorf("cannot use both group_by and detail")
	}
	for _, a := range allowed {
		if strings.EqualFold(groupBy, a) {
			return nil
		}
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}

// validateGlobPattern checks whether a glob pattern is syntactically valid.
// Call this once before a filter loop so matchGlobName never encounters an
// invalid pattern at match time.
func validateGlobPattern(pattern string) error {
	if pattern == "" || !strings.ContainsAny(pattern, "*?[") {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}

// matchGlobName reports whether name matches pattern. Patterns without glob
// characters match case-insensitively as exact names.
func matchGlobName(name, pattern string) bool {
	if pattern == "" {
		return true
	}
	if !strings.ContainsAny(pattern, "*?[") {
		return strings.EqualFold(name, pattern)
	}
	ok, _ := filepath.Match(pattern, name)
	return ok
}
