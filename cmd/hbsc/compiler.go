package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	compiler "hbsc-go/packages/compiler/src"
	"hbsc-go/packages/compiler/src/config"
	"hbsc-go/packages/compiler/src/syntax"
)

// astSuffix marks a syntax tree produced by the external parser. The template
// text it was parsed from, if present, sits next to it without the .json.
const astSuffix = ".hbs.json"

// templateFile is one template to compile
type templateFile struct {
	ASTPath    string
	SourcePath string
	ModuleName string
}

func compile(root string) error {
	cfg, err := config.FindAndLoad(root)
	if err != nil {
		return err
	}
	files, err := discoverFiles(root)
	if err != nil {
		return fmt.Errorf("failed to discover files: %w", err)
	}
	fmt.Printf("Found %d template(s)\n", len(files))

	var failed int
	for _, file := range files {
		if err := compileFile(cfg, file); err != nil {
			fmt.Fprintf(os.Stderr, "Error compiling %s: %v\n", file.ASTPath, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d template(s) failed", failed, len(files))
	}
	return nil
}

// discoverFiles finds every syntax tree under root
func discoverFiles(root string) ([]templateFile, error) {
	var files []templateFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, astSuffix) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		files = append(files, templateFile{
			ASTPath:    path,
			SourcePath: strings.TrimSuffix(path, ".json"),
			ModuleName: filepath.ToSlash(strings.TrimSuffix(rel, astSuffix)),
		})
		return nil
	})
	return files, err
}

// compileFile compiles one syntax tree and writes the result next to it
func compileFile(cfg *config.CompilerConfig, file templateFile) error {
	ast, err := os.ReadFile(file.ASTPath)
	if err != nil {
		return fmt.Errorf("failed to read syntax tree: %w", err)
	}
	source, err := os.ReadFile(file.SourcePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read template: %w", err)
	}

	options := cfg.Options()
	if options.Meta.ModuleName == "" {
		options.Meta.ModuleName = file.ModuleName
	}

	// Error locations name the module, whatever the output format.
	template, err := syntax.DecodeJSON(ast, string(source), options.Meta.ModuleName)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(file.ASTPath, astSuffix)
	var out []byte
	var outPath string
	switch cfg.OutputFormat {
	case config.OutputFormatCBOR:
		if out, err = compiler.PrecompileCBOR(template, options); err != nil {
			return err
		}
		outPath = base + ".wire.cbor"
	default:
		text, err := compiler.Precompile(template, options)
		if err != nil {
			return err
		}
		out = []byte(text)
		outPath = base + ".wire.json"
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	fmt.Printf("  - %s -> %s\n", file.ASTPath, outPath)
	return nil
}
