package pipeline

import (
	"fmt"

	"hbsc-go/packages/compiler/src/syntax"
	"hbsc-go/packages/compiler/src/template/pipeline/ir"
	"hbsc-go/packages/compiler/src/util"
)

// expression lowers a value expression occurring in position
func (s *NormalizationState) expression(expr syntax.Expression, position Position) util.Result[ir.Expression] {
	switch e := expr.(type) {
	case *syntax.PathExpression:
		return s.path(e, position, false)
	case *syntax.SubExpression:
		return s.call(e)
	case *syntax.UndefinedLiteral:
		return util.Ok[ir.Expression](ir.NewUndefined(e.Loc))
	case syntax.Literal:
		return util.Ok[ir.Expression](ir.NewLiteral(e.LiteralValue(), e.SourceSpan()))
	default:
		panic(fmt.Sprintf("Unsupported template expression: %T", expr))
	}
}

// call lowers a call-shaped node that produces a value: a sub-expression, or
// an invoked mustache in attribute position. Expression keywords apply first.
func (s *NormalizationState) call(node syntax.CallNode) util.Result[ir.Expression] {
	if result, ok := s.keywords().Call.Translate(node, s); ok {
		return result
	}
	position := PositionSubExpressionHead
	if _, isMustache := node.(*syntax.MustacheStatement); isMustache {
		position = PositionAttr
	}
	callee := s.callee(node.CalleeExpr(), position, "helper", true)
	args := s.args(node.ParamList(), node.HashArgs(), node.SourceSpan())
	return util.MapOk(util.All2(callee, args), func(p util.Pair[ir.Expression, *ir.Args]) ir.Expression {
		return ir.NewCallExpression(p.First, p.Second, node.SourceSpan())
	})
}

// callee lowers the callee of an invocation. Only paths are valid callees.
func (s *NormalizationState) callee(expr syntax.Expression, position Position, kind string, invoked bool) util.Result[ir.Expression] {
	path, ok := expr.(*syntax.PathExpression)
	if !ok {
		return util.Err[ir.Expression](util.NewParseErrorf(expr.SourceSpan(),
			"`%s` is not a valid name for a %s", describe(expr), kind))
	}
	return s.path(path, position, invoked)
}

// args lowers positional and named arguments. Every argument is lowered
// before the first error is reported.
func (s *NormalizationState) args(params []syntax.Expression, hash *syntax.Hash, span *util.ParseSourceSpan) util.Result[*ir.Args] {
	return s.argsFrom(params, hash, span, 0)
}

// argsFrom lowers args, skipping the first skip positional parameters
func (s *NormalizationState) argsFrom(params []syntax.Expression, hash *syntax.Hash, span *util.ParseSourceSpan, skip int) util.Result[*ir.Args] {
	if skip > len(params) {
		skip = len(params)
	}
	positional := s.positional(params[skip:], span)
	named := s.named(hash, span)
	return util.MapOk(util.All2(positional, named), func(p util.Pair[*ir.Positional, *ir.NamedArguments]) *ir.Args {
		return ir.NewArgs(p.First, p.Second, span)
	})
}

func (s *NormalizationState) positional(params []syntax.Expression, span *util.ParseSourceSpan) util.Result[*ir.Positional] {
	var list util.ResultArray[ir.Expression]
	for _, param := range params {
		list.Add(s.expression(param, PositionArgument))
	}
	return util.MapOk(list.ToArray(), func(exprs []ir.Expression) *ir.Positional {
		return ir.NewPositional(exprs, span)
	})
}

func (s *NormalizationState) named(hash *syntax.Hash, span *util.ParseSourceSpan) util.Result[*ir.NamedArguments] {
	if hash.IsEmpty() {
		return util.Ok(ir.EmptyNamedArguments(span))
	}
	if err := checkDuplicateKeys(hash); err != nil {
		return util.Err[*ir.NamedArguments](err)
	}
	var entries util.ResultArray[*ir.NamedArgument]
	for _, pair := range hash.Pairs {
		pair := pair
		entries.Add(util.MapOk(s.expression(pair.Value, PositionArgument), func(value ir.Expression) *ir.NamedArgument {
			return ir.NewNamedArgument(pair.Key, value, pair.Loc)
		}))
	}
	return util.MapOk(entries.ToArray(), func(list []*ir.NamedArgument) *ir.NamedArguments {
		return ir.NewNamedArguments(list, hash.Loc)
	})
}

func checkDuplicateKeys(hash *syntax.Hash) error {
	seen := make(map[string]bool, len(hash.Pairs))
	for _, pair := range hash.Pairs {
		if seen[pair.Key] {
			return util.NewParseErrorf(pair.Loc, "Duplicate named argument `%s`", pair.Key)
		}
		seen[pair.Key] = true
	}
	return nil
}

// interpolate lowers the parts of a quoted attribute value. A single part
// lowers to that part alone.
func (s *NormalizationState) interpolate(concat *syntax.ConcatStatement) util.Result[ir.Expression] {
	var parts util.ResultArray[ir.Expression]
	for _, part := range concat.Parts {
		switch p := part.(type) {
		case *syntax.TextNode:
			parts.Add(util.Ok[ir.Expression](ir.NewLiteral(p.Chars, p.Loc)))
		case *syntax.MustacheStatement:
			parts.Add(s.attrMustache(p))
		default:
			panic(fmt.Sprintf("Unsupported concat part: %T", part))
		}
	}
	return util.MapOk(parts.ToArray(), func(list []ir.Expression) ir.Expression {
		if len(list) == 1 {
			return list[0]
		}
		return ir.NewInterpolateExpression(list, concat.Loc)
	})
}

// attrMustache lowers a mustache found in an attribute value
func (s *NormalizationState) attrMustache(m *syntax.MustacheStatement) util.Result[ir.Expression] {
	if m.IsInvoked() {
		return s.call(m)
	}
	if result, ok := s.keywords().Call.Translate(m, s); ok {
		return result
	}
	if path, ok := m.Path.(*syntax.PathExpression); ok {
		return s.path(path, PositionAttr, false)
	}
	return s.expression(m.Path, PositionArgument)
}

// describe renders an expression for error messages
func describe(expr syntax.Expression) string {
	switch e := expr.(type) {
	case *syntax.PathExpression:
		return e.Original
	case *syntax.SubExpression:
		return fmt.Sprintf("(%s ...)", describe(e.Path))
	case *syntax.StringLiteral:
		return fmt.Sprintf("%q", e.Value)
	case *syntax.BooleanLiteral:
		return fmt.Sprintf("%t", e.Value)
	case *syntax.NumberLiteral:
		return fmt.Sprintf("%v", e.Value)
	case *syntax.UndefinedLiteral:
		return "undefined"
	case *syntax.NullLiteral:
		return "null"
	}
	return fmt.Sprintf("%T", expr)
}
