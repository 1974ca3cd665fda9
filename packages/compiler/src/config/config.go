package config

import (
	compiler "hbsc-go/packages/compiler/src"
)

// OutputFormat selects the serialized form of compiled templates
type OutputFormat string

const (
	// OutputFormatJSON - the TemplateJSON text
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatCBOR - the TemplateJSON object in canonical CBOR
	OutputFormatCBOR OutputFormat = "cbor"
)

// CompilerConfig represents the compiler configuration
type CompilerConfig struct {
	Strict       bool
	ModuleName   string
	LexicalScope []string
	OutputFormat OutputFormat
}

// NewCompilerConfig creates a new CompilerConfig with optional parameters
func NewCompilerConfig(opts ...CompilerConfigOption) *CompilerConfig {
	config := &CompilerConfig{
		OutputFormat: OutputFormatJSON,
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// CompilerConfigOption is a function that modifies CompilerConfig
type CompilerConfigOption func(*CompilerConfig)

// WithStrictMode sets whether free variables resolve strictly
func WithStrictMode(strict bool) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.Strict = strict
	}
}

// WithModuleName sets the module name echoed in the output
func WithModuleName(name string) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.ModuleName = name
	}
}

// WithLexicalScope sets the names a strict template may reference
func WithLexicalScope(names ...string) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.LexicalScope = append([]string(nil), names...)
	}
}

// WithOutputFormat sets the output format
func WithOutputFormat(format OutputFormat) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.OutputFormat = format
	}
}

// Options converts the configuration to compile options
func (c *CompilerConfig) Options() *compiler.Options {
	return &compiler.Options{
		Meta:         compiler.Meta{ModuleName: c.ModuleName},
		Strict:       c.Strict,
		LexicalScope: c.LexicalScope,
	}
}
