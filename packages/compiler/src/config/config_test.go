package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"hbsc-go/packages/compiler/src/config"
)

func TestNewCompilerConfig(t *testing.T) {
	t.Run("should default to json output", func(t *testing.T) {
		got := config.NewCompilerConfig()
		want := &config.CompilerConfig{OutputFormat: config.OutputFormatJSON}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("NewCompilerConfig() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should convert to compile options", func(t *testing.T) {
		got := config.NewCompilerConfig(
			config.WithStrictMode(true),
			config.WithModuleName("app/card.hbs"),
			config.WithLexicalScope("Card"),
		).Options()
		if !got.Strict || got.Meta.ModuleName != "app/card.hbs" {
			t.Errorf("Options() = %+v", got)
		}
		if diff := cmp.Diff([]string{"Card"}, got.LexicalScope); diff != "" {
			t.Errorf("LexicalScope mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("should read compiler and output sections", func(t *testing.T) {
		data := `
[compiler]
strict = true
module-name = "app/card.hbs"
lexical-scope = ["Button", "t"]

[output]
format = "cbor"
`
		got, err := config.Parse([]byte(data))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		want := &config.CompilerConfig{
			Strict:       true,
			ModuleName:   "app/card.hbs",
			LexicalScope: []string{"Button", "t"},
			OutputFormat: config.OutputFormatCBOR,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should apply options after the file", func(t *testing.T) {
		got, err := config.Parse([]byte("[compiler]\nstrict = true\n"), config.WithStrictMode(false))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if got.Strict {
			t.Errorf("Parse() Strict = true, want the option to win")
		}
		if got.OutputFormat != config.OutputFormatJSON {
			t.Errorf("Parse() OutputFormat = %q, want json", got.OutputFormat)
		}
	})

	t.Run("should reject unknown output formats", func(t *testing.T) {
		_, err := config.Parse([]byte("[output]\nformat = \"yaml\"\n"))
		if err == nil || !strings.Contains(err.Error(), `unknown output format "yaml"`) {
			t.Errorf("Parse() error = %v, want an unknown format error", err)
		}
	})

	t.Run("should report invalid toml", func(t *testing.T) {
		if _, err := config.Parse([]byte("[compiler")); err == nil {
			t.Errorf("Parse() error = nil, want a parse error")
		}
	})
}

func TestFindAndLoad(t *testing.T) {
	t.Run("should find the file in a parent directory", func(t *testing.T) {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, config.FileName), []byte("[compiler]\nmodule-name = \"m\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		nested := filepath.Join(root, "a", "b")
		if err := os.MkdirAll(nested, 0o755); err != nil {
			t.Fatal(err)
		}
		got, err := config.FindAndLoad(nested)
		if err != nil {
			t.Fatalf("FindAndLoad() error = %v", err)
		}
		if got.ModuleName != "m" {
			t.Errorf("FindAndLoad() ModuleName = %q, want m", got.ModuleName)
		}
	})

	t.Run("should return the defaults without a file", func(t *testing.T) {
		got, err := config.FindAndLoad(t.TempDir(), config.WithModuleName("x"))
		if err != nil {
			t.Fatalf("FindAndLoad() error = %v", err)
		}
		want := config.NewCompilerConfig(config.WithModuleName("x"))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("FindAndLoad() mismatch (-want +got):\n%s", diff)
		}
	})
}
