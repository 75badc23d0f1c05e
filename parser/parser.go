package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/xsdmodel/internal/issues"
	"github.com/erraggy/xsdmodel/schema"
	"github.com/erraggy/xsdmodel/xsderrors"
)

// Parser ingests XSD documents into schema type graphs.
type Parser struct {
	// XSDNamespace is the namespace URI whose prefix is normalized to "xs".
	// Default: DefaultXSDNamespace
	XSDNamespace string
	// DefaultTypes are the value types placed at the front of every graph.
	// Default: DefaultValueTypes()
	DefaultTypes []schema.Type
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		XSDNamespace: DefaultXSDNamespace,
	}
}

// DefaultValueTypes returns the primitive types every graph starts with.
func DefaultValueTypes() []schema.Type {
	return []schema.Type{
		&schema.ValueType{Name: "xs:boolean"},
		&schema.ValueType{Name: "xs:string"},
		&schema.ValueType{Name: "xs:short"},
		&schema.ValueType{Name: "xs:integer"},
		&schema.ValueType{Name: "xs:long"},
		&schema.ValueType{Name: "xs:double"},
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// ParseResult contains the ingested type graph and metadata.
type ParseResult struct {
	// SourcePath is the document's input source path. For readers and byte
	// slices it is "ParseReader.xsd" or "ParseBytes.xsd" unless overridden.
	SourcePath string
	// TargetNamespace is the schema's targetNamespace attribute
	TargetNamespace string
	// XSDPrefix is the prefix the document binds to the XSD namespace
	// (empty when it is the default namespace)
	XSDPrefix string
	// Graph is the ordered schema type graph
	Graph *schema.Graph
	// Issues contains non-fatal notices such as skipped constructs
	Issues []issues.Issue
	// Stats contains counts of the ingested constructs
	Stats SchemaStats
	// LoadTime is the time taken to read the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// Parse reads and ingests the schema at path.
func (p *Parser) Parse(path string) (*ParseResult, error) {
	start := time.Now()
	data, err := os.ReadFile(path)
	loadTime := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	res, err := p.parse(data, path)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseReader ingests a schema read from r.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	start := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.parse(data, "ParseReader.xsd")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes ingests a schema held in memory.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	return p.parse(data, "ParseBytes.xsd")
}

func (p *Parser) parse(data []byte, sourcePath string) (*ParseResult, error) {
	logger := p.log().With("source", sourcePath)

	var doc xsdSchema
	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		perr := &xsderrors.ParseError{Path: sourcePath, Cause: err}
		var syntaxErr *xml.SyntaxError
		if errors.As(err, &syntaxErr) {
			perr.Line = syntaxErr.Line
			perr.Cause = errors.New(syntaxErr.Msg)
		}
		return nil, perr
	}
	if doc.XMLName.Local != "schema" {
		return nil, &xsderrors.ParseError{
			Path:    sourcePath,
			Message: fmt.Sprintf("root element is <%s>, expected <schema>", doc.XMLName.Local),
		}
	}

	xsdNamespace := p.XSDNamespace
	if xsdNamespace == "" {
		xsdNamespace = DefaultXSDNamespace
	}
	ns := detectNamespaces(doc.Attrs, xsdNamespace, doc.TargetNamespace)

	b := newBuilder(ns, doc.TargetNamespace, sourcePath, logger)
	if doc.XMLName.Space != xsdNamespace {
		b.warn("schema", fmt.Sprintf("root element namespace %q is not %q", doc.XMLName.Space, xsdNamespace))
	}
	if err := b.build(&doc); err != nil {
		return nil, fmt.Errorf("parser: %s: %w", sourcePath, err)
	}

	defaults := p.DefaultTypes
	if defaults == nil {
		defaults = DefaultValueTypes()
	}
	ordered := orderDescriptors(b.descs)
	types := make([]schema.Type, 0, len(defaults)+len(ordered))
	types = append(types, defaults...)
	for _, d := range ordered {
		types = append(types, materialize(d))
	}
	graph, err := schema.NewGraph(types...)
	if err != nil {
		return nil, fmt.Errorf("parser: %s: %w", sourcePath, &xsderrors.SchemaError{
			Kind:  xsderrors.ErrUnsupportedSchemaConstruct,
			Cause: err,
		})
	}

	stats := GetSchemaStats(graph)
	stats.HoistedElementCount = b.hoisted
	logger.Debug("ingested schema", "types", graph.Len(), "issues", len(b.issues))

	return &ParseResult{
		SourcePath:      sourcePath,
		TargetNamespace: doc.TargetNamespace,
		XSDPrefix:       ns.xsdPrefix,
		Graph:           graph,
		Issues:          b.issues,
		Stats:           stats,
		SourceSize:      int64(len(data)),
	}, nil
}
