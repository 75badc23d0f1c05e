package renderer

import (
	"go/token"

	"github.com/erraggy/xsdmodel/parser"
	"github.com/erraggy/xsdmodel/xsderrors"
)

const (
	// DefaultPackageName is the package clause of Go output.
	DefaultPackageName = "model"
	// DefaultNodeImport is the import path of the Go serialization runtime.
	DefaultNodeImport = "github.com/erraggy/xsdmodel/xmlnode"
	// DefaultSeed seeds sample value generation.
	DefaultSeed int64 = 1
	// DefaultMaxDepth bounds the nesting of sample values. Optional fields
	// are left out below it.
	DefaultMaxDepth = 4
)

// Option configures a rendering.
type Option func(*renderConfig) error

type renderConfig struct {
	header      string
	packageName string
	nodeImport  string
	seed        int64
	maxDepth    int
	logger      parser.Logger
}

func applyOptions(opts ...Option) (*renderConfig, error) {
	cfg := &renderConfig{
		packageName: DefaultPackageName,
		nodeImport:  DefaultNodeImport,
		seed:        DefaultSeed,
		maxDepth:    DefaultMaxDepth,
		logger:      parser.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithHeader sets a comment, such as a license notice, written at the top of
// the output. Each line of text becomes one comment line.
func WithHeader(text string) Option {
	return func(cfg *renderConfig) error {
		cfg.header = text
		return nil
	}
}

// WithPackageName sets the package clause of Go output.
func WithPackageName(name string) Option {
	return func(cfg *renderConfig) error {
		if !token.IsIdentifier(name) {
			return &xsderrors.ConfigError{Option: "WithPackageName", Value: name, Message: "not a valid package name"}
		}
		cfg.packageName = name
		return nil
	}
}

// WithNodeImport sets the import path of package xmlnode in Go output.
func WithNodeImport(path string) Option {
	return func(cfg *renderConfig) error {
		if path == "" {
			return &xsderrors.ConfigError{Option: "WithNodeImport", Message: "import path cannot be empty"}
		}
		cfg.nodeImport = path
		return nil
	}
}

// WithSeed seeds sample value generation.
func WithSeed(seed int64) Option {
	return func(cfg *renderConfig) error {
		cfg.seed = seed
		return nil
	}
}

// WithMaxDepth bounds how deep samples fill optional fields.
func WithMaxDepth(depth int) Option {
	return func(cfg *renderConfig) error {
		if depth < 1 {
			return &xsderrors.ConfigError{Option: "WithMaxDepth", Message: "depth must be at least 1"}
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithLogger sets the logger. Default: parser.NopLogger.
func WithLogger(l parser.Logger) Option {
	return func(cfg *renderConfig) error {
		if l == nil {
			l = parser.NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}
