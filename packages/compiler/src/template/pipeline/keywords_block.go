package pipeline

import (
	"strings"

	"hbsc-go/packages/compiler/src/syntax"
	"hbsc-go/packages/compiler/src/template/pipeline/ir"
	"hbsc-go/packages/compiler/src/util"
)

func blockKeywords() *Keywords[*syntax.BlockStatement, ir.Statement] {
	return NewKeywords[*syntax.BlockStatement, ir.Statement](KeywordCategoryBlock).
		Kw(DefineKeyword("in-element", assertBlockInElement, translateInElement)).
		Kw(DefineKeyword("if", assertConditional("if"), translateConditional(false))).
		Kw(DefineKeyword("unless", assertConditional("unless"), translateConditional(true))).
		Kw(DefineKeyword("each", assertEach, translateEach)).
		Kw(DefineKeyword("let", assertLet, translateLet)).
		Kw(DefineKeyword("-with-dynamic-vars", assertWithDynamicVars, translateWithDynamicVars)).
		Kw(DefineKeyword("component", assertBlockComponent, translateBlockComponent))
}

func namedKeys(hash *syntax.Hash) string {
	return strings.Join(hash.Keys(), ", ")
}

type inElementShape struct {
	destination  syntax.Expression
	insertBefore syntax.Expression
}

var inElementArguments = []string{"insertBefore"}

func assertInElement(node syntax.CallNode, state *NormalizationState) util.Result[inElementShape] {
	var shape inElementShape
	if hash := node.HashArgs(); !hash.IsEmpty() {
		for _, pair := range hash.Pairs {
			switch pair.Key {
			case "guid":
				return util.Err[inElementShape](util.NewParseError(pair.Loc, "Cannot pass `guid` to `{{#in-element}}`"))
			case "insertBefore":
				shape.insertBefore = pair.Value
			default:
				return util.Err[inElementShape](util.NewParseErrorf(pair.Loc,
					"Invalid argument `%s` to `{{#in-element}}`%s", pair.Key, util.DidYouMean(pair.Key, inElementArguments)))
			}
		}
	}
	positional := node.ParamList()
	switch {
	case len(positional) == 0:
		return util.Err[inElementShape](util.NewParseError(node.SourceSpan(),
			"`{{#in-element}}` requires a target element as its first positional parameter"))
	case len(positional) > 1:
		return util.Err[inElementShape](util.NewParseErrorf(positional[1].SourceSpan(),
			"`{{#in-element}}` only takes a single positional parameter, the target element. Received %d parameters", len(positional)))
	}
	shape.destination = positional[0]
	return util.Ok(shape)
}

func assertBlockInElement(node *syntax.BlockStatement, state *NormalizationState) util.Result[inElementShape] {
	if node.Inverse != nil {
		return util.Err[inElementShape](util.NewParseError(node.Inverse.Loc, "`{{#in-element}}` does not take an `{{else}}` block"))
	}
	return assertInElement(node, state)
}

// The body is lowered before the destination and the cursor is taken last,
// so cursors follow visitation order.
func translateInElement(node *syntax.BlockStatement, state *NormalizationState, shape inElementShape) util.Result[ir.Statement] {
	block := state.namedBlock("default", node.Program)
	destination := state.expression(shape.destination, PositionArgument)
	insertBefore := util.Ok[ir.Expression](nil)
	if shape.insertBefore != nil {
		insertBefore = state.expression(shape.insertBefore, PositionArgument)
	}
	return util.AndThen(util.All3(block, destination, insertBefore), func(t util.Triple[*ir.NamedBlock, ir.Expression, ir.Expression]) util.Result[ir.Statement] {
		guid := state.GenerateUniqueCursor()
		return util.Ok[ir.Statement](ir.NewInElement(guid, t.Third, t.Second, t.First, node.Loc))
	})
}

// in-element used as `{{in-element}}` is validated and then rejected
func assertAppendInElement(node *syntax.MustacheStatement, state *NormalizationState) util.Result[inElementShape] {
	return assertInElement(node, state)
}

func translateAppendInElement(node *syntax.MustacheStatement, state *NormalizationState, _ inElementShape) util.Result[ir.Statement] {
	return util.Err[ir.Statement](util.NewParseError(node.Loc,
		"The `in-element` keyword can only be used in block form: `{{#in-element}}`"))
}

func assertConditional(name string) func(*syntax.BlockStatement, *NormalizationState) util.Result[syntax.Expression] {
	return func(node *syntax.BlockStatement, state *NormalizationState) util.Result[syntax.Expression] {
		if !node.Hash.IsEmpty() {
			return util.Err[syntax.Expression](util.NewParseErrorf(node.Hash.Loc,
				"{{#%s}} cannot receive named parameters, received %s", name, namedKeys(node.Hash)))
		}
		switch {
		case len(node.Params) == 0:
			return util.Err[syntax.Expression](util.NewParseErrorf(node.Loc,
				"{{#%s}} requires a condition as its first positional parameter, did not find one", name))
		case len(node.Params) > 1:
			return util.Err[syntax.Expression](util.NewParseErrorf(node.Params[1].SourceSpan(),
				"{{#%s}} can only receive one positional parameter in block form, the conditional value. Received %d parameters",
				name, len(node.Params)))
		}
		return util.Ok(node.Params[0])
	}
}

func translateConditional(inverted bool) func(*syntax.BlockStatement, *NormalizationState, syntax.Expression) util.Result[ir.Statement] {
	return func(node *syntax.BlockStatement, state *NormalizationState, condition syntax.Expression) util.Result[ir.Statement] {
		cond := state.expression(condition, PositionArgument)
		block := state.namedBlock("default", node.Program)
		inverse := state.optionalNamedBlock("else", node.Inverse)
		return util.MapOk(util.All3(cond, block, inverse), func(t util.Triple[ir.Expression, *ir.NamedBlock, *ir.NamedBlock]) ir.Statement {
			value := t.First
			if inverted {
				value = ir.NewNot(value, value.GetSourceSpan())
			}
			return ir.NewIf(value, t.Second, t.Third, node.Loc)
		})
	}
}

var eachArguments = []string{"key"}

func assertEach(node *syntax.BlockStatement, state *NormalizationState) util.Result[syntax.Expression] {
	if err := namedExcept(node, eachArguments, "{{#each}} can only receive the 'key' named parameter, received %s"); err != nil {
		return util.Err[syntax.Expression](err)
	}
	switch {
	case len(node.Params) == 0:
		return util.Err[syntax.Expression](util.NewParseError(node.Loc,
			"{{#each}} requires an iterable value to be passed as its first positional parameter, did not find one"))
	case len(node.Params) > 1:
		return util.Err[syntax.Expression](util.NewParseErrorf(node.Params[1].SourceSpan(),
			"{{#each}} can only receive one positional parameter, the iterable value. Received %d parameters", len(node.Params)))
	}
	return util.Ok(node.Params[0])
}

func translateEach(node *syntax.BlockStatement, state *NormalizationState, iterable syntax.Expression) util.Result[ir.Statement] {
	value := state.expression(iterable, PositionArgument)
	key := util.Ok[ir.Expression](nil)
	if pair := node.Hash.Get("key"); pair != nil {
		key = state.expression(pair.Value, PositionArgument)
	}
	block := state.namedBlock("default", node.Program)
	inverse := state.optionalNamedBlock("else", node.Inverse)
	return util.MapOk(util.All4(value, key, block, inverse), func(q util.Quad[ir.Expression, ir.Expression, *ir.NamedBlock, *ir.NamedBlock]) ir.Statement {
		return ir.NewEach(q.First, q.Second, q.Third, q.Fourth, node.Loc)
	})
}

func assertLet(node *syntax.BlockStatement, state *NormalizationState) util.Result[struct{}] {
	if !node.Hash.IsEmpty() {
		return util.Err[struct{}](util.NewParseErrorf(node.Hash.Loc,
			"{{#let}} cannot receive named parameters, received %s", namedKeys(node.Hash)))
	}
	if len(node.Params) == 0 {
		return util.Err[struct{}](util.NewParseError(node.Loc,
			"{{#let}} requires at least one value as its first positional parameter, did not find one"))
	}
	if node.Inverse != nil {
		return util.Err[struct{}](util.NewParseError(node.Inverse.Loc, "{{#let}} does not take an {{else}} block"))
	}
	return util.Ok(struct{}{})
}

func translateLet(node *syntax.BlockStatement, state *NormalizationState, _ struct{}) util.Result[ir.Statement] {
	positional := state.positional(node.Params, node.Loc)
	block := state.namedBlock("default", node.Program)
	return util.MapOk(util.All2(positional, block), func(p util.Pair[*ir.Positional, *ir.NamedBlock]) ir.Statement {
		return ir.NewLet(p.First, p.Second, node.Loc)
	})
}

func assertWithDynamicVars(node *syntax.BlockStatement, state *NormalizationState) util.Result[struct{}] {
	if len(node.Params) > 0 {
		return util.Err[struct{}](util.NewParseError(node.Params[0].SourceSpan(),
			"{{#-with-dynamic-vars}} does not take any positional arguments"))
	}
	if node.Hash.IsEmpty() {
		return util.Err[struct{}](util.NewParseError(node.Loc,
			"{{#-with-dynamic-vars}} requires at least one named argument"))
	}
	if node.Inverse != nil {
		return util.Err[struct{}](util.NewParseError(node.Inverse.Loc,
			"{{#-with-dynamic-vars}} does not take an {{else}} block"))
	}
	return util.Ok(struct{}{})
}

func translateWithDynamicVars(node *syntax.BlockStatement, state *NormalizationState, _ struct{}) util.Result[ir.Statement] {
	named := state.named(node.Hash, node.Loc)
	block := state.namedBlock("default", node.Program)
	return util.MapOk(util.All2(named, block), func(p util.Pair[*ir.NamedArguments, *ir.NamedBlock]) ir.Statement {
		return ir.NewWithDynamicVars(p.First, p.Second, node.Loc)
	})
}

func assertBlockComponent(node *syntax.BlockStatement, state *NormalizationState) util.Result[syntax.Expression] {
	return assertDefinition(node, state, "{{#component}}", "component")
}

func translateBlockComponent(node *syntax.BlockStatement, state *NormalizationState, definition syntax.Expression) util.Result[ir.Statement] {
	def := state.expression(definition, PositionArgument)
	args := state.argsFrom(node.Params, node.Hash, node.Loc, 1)
	blocks := state.blocks(node)
	return util.MapOk(util.All3(def, args, blocks), func(t util.Triple[ir.Expression, *ir.Args, *ir.NamedBlocks]) ir.Statement {
		return ir.NewInvokeComponent(t.First, t.Second, t.Third, node.Loc)
	})
}
