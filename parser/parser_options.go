package parser

import (
	"fmt"
	"io"

	"github.com/erraggy/xsdmodel/internal/options"
	"github.com/erraggy/xsdmodel/schema"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	xsdNamespace string
	defaultTypes []schema.Type
	logger       Logger

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// ParseWithOptions ingests an XSD document using functional options.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("shiporder.xsd"),
//	    parser.WithLogger(parser.NewSlogAdapter(nil)),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &Parser{
		XSDNamespace: cfg.xsdNamespace,
		DefaultTypes: cfg.defaultTypes,
		Logger:       cfg.logger,
	}

	var result *ParseResult
	var parseErr error
	switch {
	case cfg.filePath != nil:
		result, parseErr = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		result, parseErr = p.ParseReader(cfg.reader)
	case cfg.bytes != nil:
		result, parseErr = p.ParseBytes(cfg.bytes)
	default:
		return nil, fmt.Errorf("parser: no input source specified")
	}
	if parseErr != nil {
		return nil, parseErr
	}

	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
		for i := range result.Issues {
			result.Issues[i].File = *cfg.sourceName
		}
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{
		xsdNamespace: DefaultXSDNamespace,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"parser: must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"parser: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return fmt.Errorf("parser: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return fmt.Errorf("parser: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithXSDNamespace sets the namespace URI treated as XML Schema.
// Default: DefaultXSDNamespace
func WithXSDNamespace(uri string) Option {
	return func(cfg *parseConfig) error {
		if uri == "" {
			return fmt.Errorf("parser: XSD namespace cannot be empty")
		}
		cfg.xsdNamespace = uri
		return nil
	}
}

// WithDefaultTypes replaces the value types placed at the front of the graph.
// Default: DefaultValueTypes()
func WithDefaultTypes(types ...schema.Type) Option {
	return func(cfg *parseConfig) error {
		cfg.defaultTypes = append([]schema.Type{}, types...)
		return nil
	}
}

// WithLogger sets a structured logger for debug output.
// By default, logging is disabled (NopLogger).
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithSourceName sets SourcePath in the result, which is useful when
// parsing from a reader or bytes.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
