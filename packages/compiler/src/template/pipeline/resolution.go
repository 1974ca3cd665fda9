package pipeline

import (
	"strings"

	"hbsc-go/packages/compiler/src/syntax"
	"hbsc-go/packages/compiler/src/template/pipeline/ir"
	"hbsc-go/packages/compiler/src/util"
)

// Position is the syntactic position a variable reference occurs in
type Position int

const (
	// PositionAppend - the head of a `{{...}}` content mustache
	PositionAppend Position = iota
	// PositionAttr - the head of a mustache in an attribute value
	PositionAttr
	// PositionSubExpressionHead - the head of `(...)`
	PositionSubExpressionHead
	// PositionComponentHead - an angle-bracket tag or the head of `{{#...}}`
	PositionComponentHead
	// PositionModifierHead - the head of `<div {{...}}>`
	PositionModifierHead
	// PositionArgument - a positional or named argument value
	PositionArgument
)

// ResolutionContextFor selects the resolution context of a free variable.
// Every combination of position, tail and invocation maps to exactly one context.
func ResolutionContextFor(strict bool, position Position, hasTail, invoked bool) ir.ResolutionContext {
	if strict {
		return ir.ResolutionContextStrict
	}
	if hasTail {
		return ir.ResolutionContextLooseFreeVariable
	}
	switch position {
	case PositionAppend:
		if invoked {
			return ir.ResolutionContextAppendInvoke
		}
		return ir.ResolutionContextAppendBare
	case PositionAttr:
		if invoked {
			return ir.ResolutionContextAttrInvoke
		}
		return ir.ResolutionContextAttrBare
	case PositionSubExpressionHead:
		return ir.ResolutionContextSubExpressionHead
	case PositionComponentHead:
		return ir.ResolutionContextComponentHead
	case PositionModifierHead:
		return ir.ResolutionContextModifierHead
	}
	return ir.ResolutionContextLooseFreeVariable
}

// ClassifyHead returns the kind of a path head in scope
func ClassifyHead(scope syntax.Scope, head syntax.PathHead) ir.VariableKind {
	switch h := head.(type) {
	case syntax.ThisHead:
		return ir.VariableKindThis
	case syntax.AtHead:
		return ir.VariableKindArg
	case syntax.VarHead:
		if scope.Has(h.Name) {
			return ir.VariableKindLocal
		}
		if strings.HasPrefix(h.Name, "&") {
			return ir.VariableKindBlock
		}
		return ir.VariableKindFree
	}
	panic("Unsupported path head")
}

// variable lowers a path head to a variable reference, allocating its slot.
// Free variables get their resolution context from position.
func (s *NormalizationState) variable(head syntax.PathHead, position Position, hasTail, invoked bool, span *util.ParseSourceSpan) util.Result[ir.VariableReference] {
	switch ClassifyHead(s.scope, head) {
	case ir.VariableKindThis:
		return util.Ok[ir.VariableReference](ir.NewThisVar(span))
	case ir.VariableKindArg:
		name := head.HeadName()
		return util.Ok[ir.VariableReference](ir.NewArgVar(name, s.scope.AllocateNamed(name), span))
	case ir.VariableKindLocal:
		name := head.HeadName()
		return util.Ok[ir.VariableReference](ir.NewLocalVar(name, s.scope.Local(name), span))
	case ir.VariableKindBlock:
		name := strings.TrimPrefix(head.HeadName(), "&")
		return util.Ok[ir.VariableReference](ir.NewBlockVar(name, s.scope.AllocateBlock(name), span))
	}
	return s.freeVariable(head.HeadName(), ResolutionContextFor(s.IsStrict(), position, hasTail, invoked), span)
}

func (s *NormalizationState) freeVariable(name string, context ir.ResolutionContext, span *util.ParseSourceSpan) util.Result[ir.VariableReference] {
	if context == ir.ResolutionContextStrict && len(s.options.LexicalScope) > 0 && !s.inLexicalScope(name) {
		return util.Err[ir.VariableReference](util.NewParseErrorf(span,
			"Attempted to resolve `%s`, which was expected to be in lexical scope, but it was not%s",
			name, util.DidYouMean(name, s.options.LexicalScope)))
	}
	index := s.scope.AllocateFree(name)
	return util.Ok[ir.VariableReference](ir.NewFreeVar(name, index, context, span))
}

// path lowers a path expression. A path without tail lowers to its head.
func (s *NormalizationState) path(path *syntax.PathExpression, position Position, invoked bool) util.Result[ir.Expression] {
	hasTail := len(path.Tail) > 0
	return util.MapOk(s.variable(path.Head, position, hasTail, invoked, path.Loc), func(head ir.VariableReference) ir.Expression {
		if !hasTail {
			return head
		}
		return ir.NewPathExpression(head, path.Tail, path.Loc)
	})
}
