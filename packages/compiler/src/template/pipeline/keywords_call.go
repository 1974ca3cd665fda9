package pipeline

import (
	"fmt"

	"hbsc-go/packages/compiler/src/syntax"
	"hbsc-go/packages/compiler/src/template/pipeline/ir"
	"hbsc-go/packages/compiler/src/util"
)

// expressionKeyword is a keyword producing a value. It can be registered as an
// expression keyword or, wrapped in an append, as an append keyword.
type expressionKeyword interface {
	call() Keyword[syntax.CallNode, ir.Expression]
	toAppend() Keyword[*syntax.MustacheStatement, ir.Statement]
}

type exprKeyword[V any] struct {
	name      string
	assert    func(node syntax.CallNode, state *NormalizationState) util.Result[V]
	translate func(node syntax.CallNode, state *NormalizationState, validated V) util.Result[ir.Expression]
}

func (k exprKeyword[V]) call() Keyword[syntax.CallNode, ir.Expression] {
	return DefineKeyword(k.name, k.assert, k.translate)
}

// toAppend lowers the keyword's value to an append of that value
func (k exprKeyword[V]) toAppend() Keyword[*syntax.MustacheStatement, ir.Statement] {
	return DefineKeyword(k.name,
		func(node *syntax.MustacheStatement, state *NormalizationState) util.Result[V] {
			return k.assert(node, state)
		},
		func(node *syntax.MustacheStatement, state *NormalizationState, validated V) util.Result[ir.Statement] {
			return util.MapOk(k.translate(node, state, validated), func(value ir.Expression) ir.Statement {
				if node.Trusting {
					return ir.NewAppendTrustedHTML(value, node.Loc)
				}
				return ir.NewAppendTextNode(value, node.Loc)
			})
		})
}

// valueKeywords are usable both as expressions and as appends
func valueKeywords() []expressionKeyword {
	return []expressionKeyword{
		hasBlockKeyword("has-block", false),
		hasBlockKeyword("has-block-params", true),
		getDynamicVarKeyword(),
		logKeyword(),
		ifInlineKeyword("if", false),
		ifInlineKeyword("unless", true),
	}
}

func callKeywords() *Keywords[syntax.CallNode, ir.Expression] {
	keywords := NewKeywords[syntax.CallNode, ir.Expression](KeywordCategoryCall)
	for _, kw := range valueKeywords() {
		keywords.Kw(kw.call())
	}
	return keywords.
		Kw(curryKeyword("component", ir.CurriedTypeComponent).call()).
		Kw(curryKeyword("helper", ir.CurriedTypeHelper).call()).
		Kw(curryKeyword("modifier", ir.CurriedTypeModifier).call())
}

func hasBlockKeyword(name string, params bool) exprKeyword[string] {
	return exprKeyword[string]{
		name: name,
		assert: func(node syntax.CallNode, state *NormalizationState) util.Result[string] {
			if err := noNamed(node, fmt.Sprintf("`%s` keyword does not take any named arguments", name)); err != nil {
				return util.Err[string](err)
			}
			positional := node.ParamList()
			switch {
			case len(positional) == 0:
				return util.Ok("default")
			case len(positional) > 1:
				return util.Err[string](util.NewParseErrorf(positional[1].SourceSpan(),
					"`%s` only takes a single positional argument", name))
			}
			target, ok := positional[0].(*syntax.StringLiteral)
			if !ok {
				return util.Err[string](util.NewParseErrorf(positional[0].SourceSpan(),
					"`%s` can only receive a string literal as its first argument", name))
			}
			return util.Ok(target.Value)
		},
		translate: func(node syntax.CallNode, state *NormalizationState, target string) util.Result[ir.Expression] {
			block := ir.NewBlockVar(target, state.scope.AllocateBlock(target), node.SourceSpan())
			if params {
				return util.Ok[ir.Expression](ir.NewHasBlockParams(block, node.SourceSpan()))
			}
			return util.Ok[ir.Expression](ir.NewHasBlock(block, node.SourceSpan()))
		},
	}
}

func getDynamicVarKeyword() exprKeyword[syntax.Expression] {
	return exprKeyword[syntax.Expression]{
		name: "-get-dynamic-var",
		assert: func(node syntax.CallNode, state *NormalizationState) util.Result[syntax.Expression] {
			if err := noNamed(node, "`-get-dynamic-var` does not take any named arguments"); err != nil {
				return util.Err[syntax.Expression](err)
			}
			positional := node.ParamList()
			if len(positional) != 1 {
				return util.Err[syntax.Expression](util.NewParseError(node.SourceSpan(),
					"`-get-dynamic-var` requires a single positional argument"))
			}
			return util.Ok(positional[0])
		},
		translate: func(node syntax.CallNode, state *NormalizationState, name syntax.Expression) util.Result[ir.Expression] {
			return util.MapOk(state.expression(name, PositionArgument), func(value ir.Expression) ir.Expression {
				return ir.NewGetDynamicVar(value, node.SourceSpan())
			})
		},
	}
}

func logKeyword() exprKeyword[struct{}] {
	return exprKeyword[struct{}]{
		name: "log",
		assert: func(node syntax.CallNode, state *NormalizationState) util.Result[struct{}] {
			if err := noNamed(node, "`log` does not take any named arguments"); err != nil {
				return util.Err[struct{}](err)
			}
			return util.Ok(struct{}{})
		},
		translate: func(node syntax.CallNode, state *NormalizationState, _ struct{}) util.Result[ir.Expression] {
			return util.MapOk(state.positional(node.ParamList(), node.SourceSpan()), func(positional *ir.Positional) ir.Expression {
				return ir.NewLog(positional, node.SourceSpan())
			})
		},
	}
}

type ifInlineShape struct {
	condition syntax.Expression
	truthy    syntax.Expression
	falsy     syntax.Expression
}

func ifInlineKeyword(name string, inverted bool) exprKeyword[ifInlineShape] {
	truthy := "true"
	falsy := "false"
	if inverted {
		truthy, falsy = falsy, truthy
	}
	return exprKeyword[ifInlineShape]{
		name: name,
		assert: func(node syntax.CallNode, state *NormalizationState) util.Result[ifInlineShape] {
			if err := noNamed(node, fmt.Sprintf("(%s) does not take any named arguments", name)); err != nil {
				return util.Err[ifInlineShape](err)
			}
			positional := node.ParamList()
			switch len(positional) {
			case 0, 1:
				received := "Did not receive any parameters"
				if len(positional) == 1 {
					received = "Received only one parameter, the condition"
				}
				return util.Err[ifInlineShape](util.NewParseErrorf(node.SourceSpan(),
					"When used inline, (%s) requires at least two parameters 1. the condition that determines the state of the (%s), and 2. the value to return if the condition is %s. %s",
					name, name, truthy, received))
			case 2, 3:
			default:
				return util.Err[ifInlineShape](util.NewParseErrorf(node.SourceSpan(),
					"When used inline, (%s) can receive a maximum of three positional parameters 1. the condition that determines the state of the (%s), 2. the value to return if the condition is %s, and 3. the value to return if the condition is %s. Received %d parameters",
					name, name, truthy, falsy, len(positional)))
			}
			shape := ifInlineShape{condition: positional[0], truthy: positional[1]}
			if len(positional) == 3 {
				shape.falsy = positional[2]
			}
			return util.Ok(shape)
		},
		translate: func(node syntax.CallNode, state *NormalizationState, shape ifInlineShape) util.Result[ir.Expression] {
			condition := state.expression(shape.condition, PositionArgument)
			truthyValue := state.expression(shape.truthy, PositionArgument)
			falsyValue := util.Ok[ir.Expression](nil)
			if shape.falsy != nil {
				falsyValue = state.expression(shape.falsy, PositionArgument)
			}
			return util.MapOk(util.All3(condition, truthyValue, falsyValue), func(t util.Triple[ir.Expression, ir.Expression, ir.Expression]) ir.Expression {
				cond := t.First
				if inverted {
					cond = ir.NewNot(cond, cond.GetSourceSpan())
				}
				return ir.NewIfInline(cond, t.Second, t.Third, node.SourceSpan())
			})
		},
	}
}

// assertDefinition checks the definition argument shared by the curry and
// component keywords
func assertDefinition(node syntax.CallNode, state *NormalizationState, display string, kind string) util.Result[syntax.Expression] {
	positional := node.ParamList()
	if len(positional) == 0 {
		return util.Err[syntax.Expression](util.NewParseErrorf(node.SourceSpan(),
			"%s requires a %s definition or identifier as its first positional parameter, did not receive any parameters.",
			display, kind))
	}
	if _, ok := positional[0].(*syntax.StringLiteral); ok && state.IsStrict() {
		return util.Err[syntax.Expression](util.NewParseErrorf(positional[0].SourceSpan(),
			"%s cannot resolve string values in strict mode, you must pass a %s definition directly",
			display, kind))
	}
	return util.Ok(positional[0])
}

func curryKeyword(name string, curriedType ir.CurriedType) exprKeyword[syntax.Expression] {
	return exprKeyword[syntax.Expression]{
		name: name,
		assert: func(node syntax.CallNode, state *NormalizationState) util.Result[syntax.Expression] {
			return assertDefinition(node, state, fmt.Sprintf("(%s)", name), name)
		},
		translate: func(node syntax.CallNode, state *NormalizationState, definition syntax.Expression) util.Result[ir.Expression] {
			def := state.expression(definition, PositionArgument)
			args := state.argsFrom(node.ParamList(), node.HashArgs(), node.SourceSpan(), 1)
			return util.MapOk(util.All2(def, args), func(p util.Pair[ir.Expression, *ir.Args]) ir.Expression {
				return ir.NewCurry(p.First, curriedType, p.Second, node.SourceSpan())
			})
		},
	}
}
