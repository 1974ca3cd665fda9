package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the configuration file
const FileName = "hbsc.toml"

type file struct {
	Compiler struct {
		Strict       bool     `toml:"strict"`
		ModuleName   string   `toml:"module-name"`
		LexicalScope []string `toml:"lexical-scope"`
	} `toml:"compiler"`
	Output struct {
		Format string `toml:"format"`
	} `toml:"output"`
}

// Parse reads a configuration from TOML. Options are applied after the file.
func Parse(data []byte, opts ...CompilerConfigOption) (*CompilerConfig, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	config := NewCompilerConfig(
		WithStrictMode(f.Compiler.Strict),
		WithModuleName(f.Compiler.ModuleName),
		WithLexicalScope(f.Compiler.LexicalScope...),
	)
	switch format := OutputFormat(f.Output.Format); format {
	case "":
	case OutputFormatJSON, OutputFormatCBOR:
		config.OutputFormat = format
	default:
		return nil, fmt.Errorf("unknown output format %q", f.Output.Format)
	}
	for _, opt := range opts {
		opt(config)
	}
	return config, nil
}

// Load parses the hbsc.toml file in dir
func Load(dir string, opts ...CompilerConfigOption) (*CompilerConfig, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	config, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// FindAndLoad walks up from startDir to the first hbsc.toml and loads it.
// Without a file the default configuration is returned.
func FindAndLoad(startDir string, opts ...CompilerConfigOption) (*CompilerConfig, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", startDir, err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return Load(dir, opts...)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return NewCompilerConfig(opts...), nil
		}
		dir = parent
	}
}
