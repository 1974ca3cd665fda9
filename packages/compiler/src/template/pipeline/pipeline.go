package pipeline

import (
	"hbsc-go/packages/compiler/src/syntax"
	"hbsc-go/packages/compiler/src/template/pipeline/wire"
)

// Options controls one compile
type Options struct {
	// Strict resolves every free variable in the strict context
	Strict bool
	// LexicalScope lists the names a strict template may reference freely.
	// Empty means no check.
	LexicalScope []string
	// CustomizeComponentName rewrites free component tags in loose mode
	CustomizeComponentName func(tag string) string
	// Keywords replaces the built-in keyword tables
	Keywords *KeywordSet
}

// Compile normalizes template and encodes it to its wire form
func Compile(template *syntax.Template, options *Options) (*wire.SerializedTemplateBlock, error) {
	program, err := Normalize(template, options).Unwrap()
	if err != nil {
		return nil, err
	}
	return Encode(program), nil
}
