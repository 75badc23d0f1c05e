package converter

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/erraggy/xsdmodel/internal/naming"
	"github.com/erraggy/xsdmodel/model"
	"github.com/erraggy/xsdmodel/parser"
	"github.com/erraggy/xsdmodel/xsderrors"
)

const (
	// DefaultBaseClass is the runtime class every generated class derives from.
	DefaultBaseClass = "XmlNode"
	// DefaultBaseModule is the module defining DefaultBaseClass, relative to
	// the directory the runtime lives in.
	DefaultBaseModule = "./xml-node"
)

// Option configures a Converter.
type Option func(*convertConfig) error

type convertConfig struct {
	capitalize         func(string) string
	singularize        func(string) string
	resolver           TypeResolver
	attributesTypeName func(string) string
	elementsTypeName   func(string) string
	assignableTypeName func(owner, property string) string

	propertyNameOverrides map[string]string
	injectedProperties    map[string][]model.Property

	nodeModulePath string
	baseClass      string
	baseModule     string

	logger parser.Logger
}

func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		capitalize:     naming.ToTitleCase,
		singularize:    naming.Singularize,
		nodeModulePath: ".",
		baseClass:      DefaultBaseClass,
		baseModule:     DefaultBaseModule,
		logger:         parser.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Defaults that depend on the configured capitalization.
	if cfg.resolver == nil {
		cfg.resolver = DefaultTypeResolver(cfg.capitalize)
	}
	if cfg.attributesTypeName == nil {
		cfg.attributesTypeName = func(name string) string { return cfg.capitalize(name) + "Attributes" }
	}
	if cfg.elementsTypeName == nil {
		cfg.elementsTypeName = func(name string) string { return cfg.capitalize(name) + "Elements" }
	}
	if cfg.assignableTypeName == nil {
		cfg.assignableTypeName = func(owner, property string) string {
			return "I" + cfg.capitalize(owner) + cfg.capitalize(cfg.singularize(property))
		}
	}
	return cfg, nil
}

// baseImportPath returns the import path of the base module as seen from the
// generated file. Relative results not starting with a dot get a "./"
// prefix; bare module specifiers are used as is.
func (cfg *convertConfig) baseImportPath() string {
	if !strings.HasPrefix(cfg.baseModule, ".") {
		return cfg.baseModule
	}
	rel, err := filepath.Rel(filepath.FromSlash(cfg.nodeModulePath), filepath.FromSlash(cfg.baseModule))
	if err != nil {
		return cfg.baseModule
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}
	return rel
}

// WithCapitalize sets the function turning schema names into model type names.
// Default: upper-case the first letter.
func WithCapitalize(fn func(string) string) Option {
	return func(cfg *convertConfig) error {
		if fn == nil {
			return &xsderrors.ConfigError{Option: "WithCapitalize", Message: "function cannot be nil"}
		}
		cfg.capitalize = fn
		return nil
	}
}

// WithSingularize sets the function deriving a singular noun from a plural
// property name when naming choice interfaces.
// Default: "ries" -> "ry", "cies" -> "cy", trailing "s" dropped.
func WithSingularize(fn func(string) string) Option {
	return func(cfg *convertConfig) error {
		if fn == nil {
			return &xsderrors.ConfigError{Option: "WithSingularize", Message: "function cannot be nil"}
		}
		cfg.singularize = fn
		return nil
	}
}

// WithTypeResolver replaces the schema-to-model type name resolver.
func WithTypeResolver(r TypeResolver) Option {
	return func(cfg *convertConfig) error {
		if r == nil {
			return &xsderrors.ConfigError{Option: "WithTypeResolver", Message: "resolver cannot be nil"}
		}
		cfg.resolver = r
		return nil
	}
}

// WithAttributesTypeName sets how the attributes struct of a container is named.
func WithAttributesTypeName(fn func(typeName string) string) Option {
	return func(cfg *convertConfig) error {
		if fn == nil {
			return &xsderrors.ConfigError{Option: "WithAttributesTypeName", Message: "function cannot be nil"}
		}
		cfg.attributesTypeName = fn
		return nil
	}
}

// WithElementsTypeName sets how the elements struct of a container is named.
func WithElementsTypeName(fn func(typeName string) string) Option {
	return func(cfg *convertConfig) error {
		if fn == nil {
			return &xsderrors.ConfigError{Option: "WithElementsTypeName", Message: "function cannot be nil"}
		}
		cfg.elementsTypeName = fn
		return nil
	}
}

// WithAssignableTypeName sets how the behavioral interface of a choice
// property is named.
func WithAssignableTypeName(fn func(owner, property string) string) Option {
	return func(cfg *convertConfig) error {
		if fn == nil {
			return &xsderrors.ConfigError{Option: "WithAssignableTypeName", Message: "function cannot be nil"}
		}
		cfg.assignableTypeName = fn
		return nil
	}
}

// WithPropertyNameOverrides maps schema property names to model property
// names. The map is copied.
func WithPropertyNameOverrides(overrides map[string]string) Option {
	return func(cfg *convertConfig) error {
		for from, to := range overrides {
			if from == "" || to == "" {
				return &xsderrors.ConfigError{
					Option:  "WithPropertyNameOverrides",
					Value:   from + " -> " + to,
					Message: "override names cannot be empty",
				}
			}
		}
		cfg.propertyNameOverrides = maps.Clone(overrides)
		return nil
	}
}

// WithInjectedProperties appends properties to the attributes struct of the
// named types. Keys are capitalized model type names. The map is copied.
func WithInjectedProperties(props map[string][]model.Property) Option {
	return func(cfg *convertConfig) error {
		injected := make(map[string][]model.Property, len(props))
		for typeName, list := range props {
			for _, p := range list {
				if p.Name == "" || p.TypeName == "" {
					return &xsderrors.ConfigError{
						Option:  "WithInjectedProperties",
						Value:   typeName,
						Message: "injected properties need a name and a type",
					}
				}
			}
			injected[typeName] = slices.Clone(list)
		}
		cfg.injectedProperties = injected
		return nil
	}
}

// WithNodeModulePath sets the directory of the generated code relative to
// the directory holding the runtime base module. Default: ".".
func WithNodeModulePath(path string) Option {
	return func(cfg *convertConfig) error {
		if path == "" {
			return &xsderrors.ConfigError{Option: "WithNodeModulePath", Message: "path cannot be empty"}
		}
		cfg.nodeModulePath = path
		return nil
	}
}

// WithBaseClass renames the runtime base class and the module defining it.
func WithBaseClass(name, module string) Option {
	return func(cfg *convertConfig) error {
		if name == "" || module == "" {
			return &xsderrors.ConfigError{Option: "WithBaseClass", Value: name, Message: "class and module are required"}
		}
		cfg.baseClass = name
		cfg.baseModule = module
		return nil
	}
}

// WithLogger sets the logger. Default: parser.NopLogger.
func WithLogger(l parser.Logger) Option {
	return func(cfg *convertConfig) error {
		if l == nil {
			l = parser.NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}
