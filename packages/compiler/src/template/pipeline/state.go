package pipeline

import (
	"fmt"

	"hbsc-go/packages/compiler/src/syntax"
	"hbsc-go/packages/compiler/src/util"
)

// NormalizationState is owned by one compile of one template. It holds the
// current scope and the cursor counter used by `in-element`.
type NormalizationState struct {
	table   *syntax.SymbolTable
	scope   syntax.Scope
	options *Options
	cursors int
}

// NewNormalizationState creates the state for one compile
func NewNormalizationState(table *syntax.SymbolTable, options *Options) *NormalizationState {
	if options == nil {
		options = &Options{}
	}
	return &NormalizationState{
		table:   table,
		scope:   table.Program(),
		options: options,
	}
}

// Scope returns the current scope
func (s *NormalizationState) Scope() syntax.Scope {
	return s.scope
}

// Table returns the symbol table of the template
func (s *NormalizationState) Table() *syntax.SymbolTable {
	return s.table
}

// IsStrict reports whether free variables resolve in strict mode
func (s *NormalizationState) IsStrict() bool {
	return s.options.Strict
}

// GenerateUniqueCursor returns the next `%cursor:N%` identifier. Cursors are
// numbered in visitation order.
func (s *NormalizationState) GenerateUniqueCursor() string {
	cursor := fmt.Sprintf("%%cursor:%d%%", s.cursors)
	s.cursors++
	return cursor
}

// withBlock runs f in a child scope introducing locals, restoring the current
// scope afterwards.
func withBlock[T any](s *NormalizationState, locals []string, f func(scope syntax.Scope) util.Result[T]) util.Result[T] {
	parent := s.scope
	s.scope = parent.Child(locals)
	defer func() { s.scope = parent }()
	return f(s.scope)
}

func (s *NormalizationState) inLexicalScope(name string) bool {
	for _, known := range s.options.LexicalScope {
		if known == name {
			return true
		}
	}
	return false
}

func (s *NormalizationState) keywords() *KeywordSet {
	if s.options.Keywords != nil {
		return s.options.Keywords
	}
	return DefaultKeywords
}
