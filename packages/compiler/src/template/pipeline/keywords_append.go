package pipeline

import (
	"hbsc-go/packages/compiler/src/syntax"
	"hbsc-go/packages/compiler/src/template/pipeline/ir"
	"hbsc-go/packages/compiler/src/util"
)

func appendKeywords() *Keywords[*syntax.MustacheStatement, ir.Statement] {
	keywords := NewKeywords[*syntax.MustacheStatement, ir.Statement](KeywordCategoryAppend)
	for _, kw := range valueKeywords() {
		keywords.Kw(kw.toAppend())
	}
	return keywords.
		Kw(DefineKeyword("yield", assertYield, translateYield)).
		Kw(DefineKeyword("debugger", assertDebugger, translateDebugger)).
		Kw(DefineKeyword("component", assertAppendComponent, translateAppendComponent)).
		Kw(DefineKeyword("helper", assertAppendHelper, translateAppendHelper)).
		Kw(DefineKeyword("in-element", assertAppendInElement, translateAppendInElement))
}

var yieldArguments = []string{"to"}

func assertYield(node *syntax.MustacheStatement, state *NormalizationState) util.Result[string] {
	if node.Hash.IsEmpty() {
		return util.Ok("default")
	}
	to := node.Hash.Get("to")
	if len(node.Hash.Pairs) > 1 || to == nil {
		hint := ""
		if to == nil {
			hint = util.DidYouMean(node.Hash.Pairs[0].Key, yieldArguments)
		}
		return util.Err[string](util.NewParseError(node.Hash.Loc, "yield only takes a single named argument: 'to'"+hint))
	}
	target, ok := to.Value.(*syntax.StringLiteral)
	if !ok {
		return util.Err[string](util.NewParseError(to.Value.SourceSpan(), "you can only yield to a literal string value"))
	}
	return util.Ok(target.Value)
}

func translateYield(node *syntax.MustacheStatement, state *NormalizationState, target string) util.Result[ir.Statement] {
	return util.MapOk(state.positional(node.Params, node.Loc), func(positional *ir.Positional) ir.Statement {
		return ir.NewYield(state.scope.AllocateBlock(target), positional, node.Loc)
	})
}

func assertDebugger(node *syntax.MustacheStatement, state *NormalizationState) util.Result[struct{}] {
	if node.IsInvoked() {
		return util.Err[struct{}](util.NewParseError(node.Loc, "debugger does not take any arguments"))
	}
	return util.Ok(struct{}{})
}

func translateDebugger(node *syntax.MustacheStatement, state *NormalizationState, _ struct{}) util.Result[ir.Statement] {
	state.scope.SetHasEval()
	return util.Ok[ir.Statement](ir.NewDebugger(state.scope.EvalInfo(), node.Loc))
}

func assertAppendComponent(node *syntax.MustacheStatement, state *NormalizationState) util.Result[syntax.Expression] {
	return assertDefinition(node, state, "{{component}}", "component")
}

func translateAppendComponent(node *syntax.MustacheStatement, state *NormalizationState, definition syntax.Expression) util.Result[ir.Statement] {
	def := state.expression(definition, PositionArgument)
	args := state.argsFrom(node.Params, node.Hash, node.Loc, 1)
	return util.MapOk(util.All2(def, args), func(p util.Pair[ir.Expression, *ir.Args]) ir.Statement {
		return ir.NewInvokeComponent(p.First, p.Second, nil, node.Loc)
	})
}

func assertAppendHelper(node *syntax.MustacheStatement, state *NormalizationState) util.Result[syntax.Expression] {
	return assertDefinition(node, state, "{{helper}}", "helper")
}

// translateAppendHelper appends the result of calling the curried helper
func translateAppendHelper(node *syntax.MustacheStatement, state *NormalizationState, definition syntax.Expression) util.Result[ir.Statement] {
	def := state.expression(definition, PositionArgument)
	args := state.argsFrom(node.Params, node.Hash, node.Loc, 1)
	return util.MapOk(util.All2(def, args), func(p util.Pair[ir.Expression, *ir.Args]) ir.Statement {
		curried := ir.NewCurry(p.First, ir.CurriedTypeHelper, p.Second, node.Loc)
		value := ir.NewCallExpression(curried, ir.EmptyArgs(node.Loc), node.Loc)
		if node.Trusting {
			return ir.NewAppendTrustedHTML(value, node.Loc)
		}
		return ir.NewAppendTextNode(value, node.Loc)
	})
}
