package pipeline

import (
	"fmt"

	"hbsc-go/packages/compiler/src/template/pipeline/ir"
	"hbsc-go/packages/compiler/src/template/pipeline/wire"
)

// Encode lowers a normalized program to its wire form. The program is
// assumed valid; an impossible shape panics.
func Encode(program *Program) *wire.SerializedTemplateBlock {
	enc := &encoder{}
	statements := enc.statements(program.Body)
	log.Debugf("encoded %d statements, %d symbols, %d upvars",
		len(statements), len(program.Table.Symbols()), len(program.Table.Upvars()))
	return &wire.SerializedTemplateBlock{
		Statements: statements,
		Symbols:    program.Table.Symbols(),
		HasEval:    program.Table.HasEval(),
		Upvars:     program.Table.Upvars(),
	}
}

// encoder implements the statement, expression and element parameter
// visitors. Statements encode to []wire.Tuple since an element opens, flushes
// and closes in separate tuples.
type encoder struct{}

var (
	_ ir.StatementVisitor        = (*encoder)(nil)
	_ ir.ExpressionVisitor       = (*encoder)(nil)
	_ ir.ElementParameterVisitor = (*encoder)(nil)
)

func (e *encoder) statements(body []ir.Statement) []wire.Tuple {
	out := []wire.Tuple{}
	for _, stmt := range body {
		out = append(out, stmt.VisitStatement(e, nil).([]wire.Tuple)...)
	}
	return out
}

func (e *encoder) expr(expr ir.Expression) interface{} {
	return expr.VisitExpression(e, nil)
}

func (e *encoder) optionalExpr(expr ir.Expression) interface{} {
	if expr == nil {
		return nil
	}
	return e.expr(expr)
}

func one(t wire.Tuple) []wire.Tuple {
	return []wire.Tuple{t}
}

// Statements

func (e *encoder) VisitAppendTextNode(stmt *ir.AppendTextNode, _ interface{}) interface{} {
	return one(wire.Tuple{wire.OpAppend, e.expr(stmt.Text)})
}

func (e *encoder) VisitAppendTrustedHTML(stmt *ir.AppendTrustedHTML, _ interface{}) interface{} {
	return one(wire.Tuple{wire.OpTrustingAppend, e.expr(stmt.HTML)})
}

func (e *encoder) VisitAppendComment(stmt *ir.AppendComment, _ interface{}) interface{} {
	return one(wire.Tuple{wire.OpComment, stmt.Value})
}

func (e *encoder) VisitComponent(stmt *ir.Component, _ interface{}) interface{} {
	return one(wire.Tuple{
		wire.OpComponent,
		e.expr(stmt.Tag),
		e.elementParameters(stmt.Params),
		e.hash(stmt.Args),
		e.namedBlocks(stmt.Blocks),
	})
}

func (e *encoder) VisitSimpleElement(stmt *ir.SimpleElement, _ interface{}) interface{} {
	open := wire.OpOpenElement
	if stmt.DynamicFeatures {
		open = wire.OpOpenElementWithSplat
	}
	out := []wire.Tuple{{open, stmt.Tag}}
	if stmt.Params != nil {
		for _, param := range stmt.Params.Body.Items() {
			out = append(out, param.VisitElementParameter(e, nil).(wire.Tuple))
		}
	}
	out = append(out, wire.Tuple{wire.OpFlushElement})
	out = append(out, e.statements(stmt.Body)...)
	return append(out, wire.Tuple{wire.OpCloseElement})
}

func (e *encoder) VisitInvokeBlock(stmt *ir.InvokeBlock, _ interface{}) interface{} {
	return one(wire.Tuple{
		wire.OpBlock,
		e.expr(stmt.Head),
		e.params(stmt.Args.Positional),
		e.hash(stmt.Args.Named),
		e.namedBlocks(stmt.Blocks),
	})
}

func (e *encoder) VisitYield(stmt *ir.Yield, _ interface{}) interface{} {
	return one(wire.Tuple{wire.OpYield, stmt.To, e.params(stmt.Positional)})
}

func (e *encoder) VisitPartial(stmt *ir.Partial, _ interface{}) interface{} {
	return one(wire.Tuple{wire.OpPartial, e.expr(stmt.Target), intList(stmt.EvalInfo)})
}

func (e *encoder) VisitDebugger(stmt *ir.Debugger, _ interface{}) interface{} {
	return one(wire.Tuple{wire.OpDebugger, intList(stmt.EvalInfo)})
}

func (e *encoder) VisitInElement(stmt *ir.InElement, _ interface{}) interface{} {
	t := wire.Tuple{wire.OpInElement, e.inlineBlock(stmt.Block), stmt.GUID, e.expr(stmt.Destination)}
	if stmt.InsertBefore != nil {
		t = append(t, e.expr(stmt.InsertBefore))
	}
	return one(t)
}

func (e *encoder) VisitIf(stmt *ir.If, _ interface{}) interface{} {
	return one(wire.Tuple{wire.OpIf, e.expr(stmt.Condition), e.inlineBlock(stmt.Block), e.optionalInlineBlock(stmt.Inverse)})
}

func (e *encoder) VisitEach(stmt *ir.Each, _ interface{}) interface{} {
	return one(wire.Tuple{
		wire.OpEach,
		e.expr(stmt.Value),
		e.optionalExpr(stmt.Key),
		e.inlineBlock(stmt.Block),
		e.optionalInlineBlock(stmt.Inverse),
	})
}

func (e *encoder) VisitLet(stmt *ir.Let, _ interface{}) interface{} {
	return one(wire.Tuple{wire.OpLet, e.params(stmt.Positional), e.inlineBlock(stmt.Block)})
}

func (e *encoder) VisitWithDynamicVars(stmt *ir.WithDynamicVars, _ interface{}) interface{} {
	return one(wire.Tuple{wire.OpWithDynamicVars, e.hash(stmt.Named), e.inlineBlock(stmt.Block)})
}

func (e *encoder) VisitInvokeComponent(stmt *ir.InvokeComponent, _ interface{}) interface{} {
	return one(wire.Tuple{
		wire.OpInvokeComponent,
		e.expr(stmt.Definition),
		e.params(stmt.Args.Positional),
		e.hash(stmt.Args.Named),
		e.namedBlocks(stmt.Blocks),
	})
}

// Expressions

func (e *encoder) VisitLiteral(expr *ir.Literal, _ interface{}) interface{} {
	return expr.Value
}

func (e *encoder) VisitUndefined(expr *ir.Undefined, _ interface{}) interface{} {
	return wire.Tuple{wire.OpUndefined}
}

func (e *encoder) VisitPath(expr *ir.PathExpression, _ interface{}) interface{} {
	head := e.expr(expr.Head).(wire.Tuple)
	return append(head, expr.Tail.Items())
}

func (e *encoder) VisitLocalVar(expr *ir.LocalVar, _ interface{}) interface{} {
	return wire.Tuple{wire.OpGetSymbol, expr.Slot}
}

func (e *encoder) VisitArgVar(expr *ir.ArgVar, _ interface{}) interface{} {
	return wire.Tuple{wire.OpGetSymbol, expr.Slot}
}

func (e *encoder) VisitBlockVar(expr *ir.BlockVar, _ interface{}) interface{} {
	return wire.Tuple{wire.OpGetSymbol, expr.Slot}
}

func (e *encoder) VisitThisVar(expr *ir.ThisVar, _ interface{}) interface{} {
	return wire.Tuple{wire.OpGetSymbol, 0}
}

func (e *encoder) VisitFreeVar(expr *ir.FreeVar, _ interface{}) interface{} {
	return wire.Tuple{FreeVariableOpcode(expr.Context), expr.Index}
}

func (e *encoder) VisitCall(expr *ir.CallExpression, _ interface{}) interface{} {
	return wire.Tuple{wire.OpCall, e.expr(expr.Callee), e.params(expr.Args.Positional), e.hash(expr.Args.Named)}
}

func (e *encoder) VisitInterpolate(expr *ir.InterpolateExpression, _ interface{}) interface{} {
	parts := make([]interface{}, len(expr.Parts))
	for i, part := range expr.Parts {
		parts[i] = e.expr(part)
	}
	return wire.Tuple{wire.OpConcat, parts}
}

func (e *encoder) VisitHasBlock(expr *ir.HasBlock, _ interface{}) interface{} {
	return wire.Tuple{wire.OpHasBlock, e.expr(expr.Target)}
}

func (e *encoder) VisitHasBlockParams(expr *ir.HasBlockParams, _ interface{}) interface{} {
	return wire.Tuple{wire.OpHasBlockParams, e.expr(expr.Target)}
}

func (e *encoder) VisitCurry(expr *ir.Curry, _ interface{}) interface{} {
	return wire.Tuple{
		wire.OpCurry,
		e.expr(expr.Definition),
		int(expr.CurriedType),
		e.params(expr.Args.Positional),
		e.hash(expr.Args.Named),
	}
}

func (e *encoder) VisitNot(expr *ir.Not, _ interface{}) interface{} {
	return wire.Tuple{wire.OpNot, e.expr(expr.Value)}
}

func (e *encoder) VisitIfInline(expr *ir.IfInline, _ interface{}) interface{} {
	t := wire.Tuple{wire.OpIfInline, e.expr(expr.Condition), e.expr(expr.Truthy)}
	if expr.Falsy != nil {
		t = append(t, e.expr(expr.Falsy))
	}
	return t
}

func (e *encoder) VisitGetDynamicVar(expr *ir.GetDynamicVar, _ interface{}) interface{} {
	return wire.Tuple{wire.OpGetDynamicVar, e.expr(expr.Name)}
}

func (e *encoder) VisitLog(expr *ir.Log, _ interface{}) interface{} {
	return wire.Tuple{wire.OpLog, e.params(expr.Positional)}
}

// Element parameters

func (e *encoder) VisitStaticAttr(param *ir.StaticAttr, _ interface{}) interface{} {
	op := wire.OpStaticAttr
	if param.AttrKind.Component {
		op = wire.OpStaticComponentAttr
	}
	return attrTuple(op, param.Name, param.Value, param.Namespace)
}

func (e *encoder) VisitDynamicAttr(param *ir.DynamicAttr, _ interface{}) interface{} {
	var op wire.Opcode
	switch kind := param.AttrKind; {
	case kind.Trusting && kind.Component:
		op = wire.OpTrustingComponentAttr
	case kind.Trusting:
		op = wire.OpTrustingDynamicAttr
	case kind.Component:
		op = wire.OpComponentAttr
	default:
		op = wire.OpDynamicAttr
	}
	return attrTuple(op, param.Name, e.expr(param.Value), param.Namespace)
}

func attrTuple(op wire.Opcode, name string, value interface{}, namespace string) wire.Tuple {
	t := wire.Tuple{op, name, value}
	if namespace != "" {
		t = append(t, namespace)
	}
	return t
}

func (e *encoder) VisitModifier(param *ir.Modifier, _ interface{}) interface{} {
	return wire.Tuple{wire.OpModifier, e.expr(param.Callee), e.params(param.Args.Positional), e.hash(param.Args.Named)}
}

func (e *encoder) VisitSplatAttr(param *ir.SplatAttr, _ interface{}) interface{} {
	return wire.Tuple{wire.OpAttrSplat, param.Symbol}
}

// Argument lists

// params encodes positional arguments, or null when there are none
func (e *encoder) params(positional *ir.Positional) interface{} {
	if positional.IsEmpty() {
		return nil
	}
	items := positional.List.Items()
	out := make([]interface{}, len(items))
	for i, item := range items {
		out[i] = e.expr(item)
	}
	return out
}

// hash encodes named arguments as `[keys, values]`, or null when there are none
func (e *encoder) hash(named *ir.NamedArguments) interface{} {
	if named.IsEmpty() {
		return nil
	}
	entries := named.Entries.Items()
	keys := make([]string, len(entries))
	values := make([]interface{}, len(entries))
	for i, entry := range entries {
		keys[i] = entry.Key
		values[i] = e.expr(entry.Value)
	}
	return []interface{}{keys, values}
}

func (e *encoder) elementParameters(params *ir.ElementParameters) interface{} {
	if params == nil || params.Body.IsEmpty() {
		return nil
	}
	out := make([]interface{}, 0, params.Body.Len())
	for _, param := range params.Body.Items() {
		out = append(out, param.VisitElementParameter(e, nil))
	}
	return out
}

func (e *encoder) inlineBlock(block *ir.NamedBlock) interface{} {
	inline := &wire.SerializedInlineBlock{
		Statements: e.statements(block.Body),
		Parameters: block.Parameters,
	}
	return inline.Tuple()
}

func (e *encoder) optionalInlineBlock(block *ir.NamedBlock) interface{} {
	if block == nil {
		return nil
	}
	return e.inlineBlock(block)
}

// namedBlocks encodes blocks as `[names, blocks]`, or null when there are none
func (e *encoder) namedBlocks(blocks *ir.NamedBlocks) interface{} {
	if blocks == nil || blocks.Blocks.IsEmpty() {
		return nil
	}
	items := blocks.Blocks.Items()
	names := make([]string, len(items))
	bodies := make([]interface{}, len(items))
	for i, block := range items {
		names[i] = block.Name
		bodies[i] = e.inlineBlock(block)
	}
	return []interface{}{names, bodies}
}

func intList(items []int) []int {
	if items == nil {
		return []int{}
	}
	return items
}

// FreeVariableOpcode returns the lookup opcode of a free variable resolved in
// context
func FreeVariableOpcode(context ir.ResolutionContext) wire.Opcode {
	switch context {
	case ir.ResolutionContextStrict:
		return wire.OpGetStrictFree
	case ir.ResolutionContextLooseFreeVariable:
		return wire.OpGetFreeAsFallback
	case ir.ResolutionContextAppendBare:
		return wire.OpGetFreeAsComponentOrHelperHeadOrThisFallback
	case ir.ResolutionContextAppendInvoke:
		return wire.OpGetFreeAsComponentOrHelperHead
	case ir.ResolutionContextAttrBare:
		return wire.OpGetFreeAsHelperHeadOrThisFallback
	case ir.ResolutionContextAttrInvoke, ir.ResolutionContextSubExpressionHead:
		return wire.OpGetFreeAsHelperHead
	case ir.ResolutionContextModifierHead:
		return wire.OpGetFreeAsModifierHead
	case ir.ResolutionContextComponentHead:
		return wire.OpGetFreeAsComponentHead
	}
	panic(fmt.Sprintf("Unsupported resolution context: %v", context))
}
