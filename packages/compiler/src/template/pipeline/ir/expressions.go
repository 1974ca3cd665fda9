package ir

import (
	"hbsc-go/packages/compiler/src/util"
)

// Expression is an IR expression. Every implementation dispatches to exactly
// one ExpressionVisitor method.
type Expression interface {
	GetSourceSpan() *util.ParseSourceSpan
	GetKind() ExpressionKind
	VisitExpression(visitor ExpressionVisitor, context interface{}) interface{}
}

// VariableReference is the head of a path: a Local, Arg, Block, This or Free variable
type VariableReference interface {
	Expression
	VariableKind() VariableKind
}

// ExpressionBase is the base type used for all IR expressions
type ExpressionBase struct {
	SourceSpan *util.ParseSourceSpan
	Kind       ExpressionKind
}

// NewExpressionBase creates a new ExpressionBase
func NewExpressionBase(kind ExpressionKind, sourceSpan *util.ParseSourceSpan) *ExpressionBase {
	return &ExpressionBase{SourceSpan: sourceSpan, Kind: kind}
}

// GetSourceSpan returns the source span
func (e *ExpressionBase) GetSourceSpan() *util.ParseSourceSpan {
	return e.SourceSpan
}

// GetKind returns the expression kind
func (e *ExpressionBase) GetKind() ExpressionKind {
	return e.Kind
}

// Literal is a string, float64, bool or nil (null) value
type Literal struct {
	*ExpressionBase
	Value interface{}
}

// NewLiteral creates a new Literal
func NewLiteral(value interface{}, sourceSpan *util.ParseSourceSpan) *Literal {
	return &Literal{ExpressionBase: NewExpressionBase(ExpressionKindLiteral, sourceSpan), Value: value}
}

// VisitExpression implements Expression
func (e *Literal) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitLiteral(e, context)
}

// Undefined is the `undefined` literal
type Undefined struct {
	*ExpressionBase
}

// NewUndefined creates a new Undefined
func NewUndefined(sourceSpan *util.ParseSourceSpan) *Undefined {
	return &Undefined{ExpressionBase: NewExpressionBase(ExpressionKindUndefined, sourceSpan)}
}

// VisitExpression implements Expression
func (e *Undefined) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitUndefined(e, context)
}

// PathExpression is a variable reference followed by a non-empty tail
type PathExpression struct {
	*ExpressionBase
	Head VariableReference
	Tail util.OptionalList[string]
}

// NewPathExpression creates a new PathExpression
func NewPathExpression(head VariableReference, tail []string, sourceSpan *util.ParseSourceSpan) *PathExpression {
	return &PathExpression{
		ExpressionBase: NewExpressionBase(ExpressionKindPath, sourceSpan),
		Head:           head,
		Tail:           util.NewOptionalList(tail),
	}
}

// VisitExpression implements Expression
func (e *PathExpression) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitPath(e, context)
}

// LocalVar is a block param or template local
type LocalVar struct {
	*ExpressionBase
	Name string
	Slot int
}

// NewLocalVar creates a new LocalVar
func NewLocalVar(name string, slot int, sourceSpan *util.ParseSourceSpan) *LocalVar {
	return &LocalVar{ExpressionBase: NewExpressionBase(ExpressionKindLocalVar, sourceSpan), Name: name, Slot: slot}
}

// VariableKind implements VariableReference
func (*LocalVar) VariableKind() VariableKind { return VariableKindLocal }

// VisitExpression implements Expression
func (e *LocalVar) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitLocalVar(e, context)
}

// ArgVar is a named argument reference; Name includes the `@`
type ArgVar struct {
	*ExpressionBase
	Name string
	Slot int
}

// NewArgVar creates a new ArgVar
func NewArgVar(name string, slot int, sourceSpan *util.ParseSourceSpan) *ArgVar {
	return &ArgVar{ExpressionBase: NewExpressionBase(ExpressionKindArgVar, sourceSpan), Name: name, Slot: slot}
}

// VariableKind implements VariableReference
func (*ArgVar) VariableKind() VariableKind { return VariableKindArg }

// VisitExpression implements Expression
func (e *ArgVar) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitArgVar(e, context)
}

// BlockVar is a named block reference; Name excludes the `&`
type BlockVar struct {
	*ExpressionBase
	Name string
	Slot int
}

// NewBlockVar creates a new BlockVar
func NewBlockVar(name string, slot int, sourceSpan *util.ParseSourceSpan) *BlockVar {
	return &BlockVar{ExpressionBase: NewExpressionBase(ExpressionKindBlockVar, sourceSpan), Name: name, Slot: slot}
}

// VariableKind implements VariableReference
func (*BlockVar) VariableKind() VariableKind { return VariableKindBlock }

// VisitExpression implements Expression
func (e *BlockVar) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitBlockVar(e, context)
}

// ThisVar is `this`
type ThisVar struct {
	*ExpressionBase
}

// NewThisVar creates a new ThisVar
func NewThisVar(sourceSpan *util.ParseSourceSpan) *ThisVar {
	return &ThisVar{ExpressionBase: NewExpressionBase(ExpressionKindThisVar, sourceSpan)}
}

// VariableKind implements VariableReference
func (*ThisVar) VariableKind() VariableKind { return VariableKindThis }

// VisitExpression implements Expression
func (e *ThisVar) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitThisVar(e, context)
}

// FreeVar is a name that is not in lexical scope, resolved at runtime
type FreeVar struct {
	*ExpressionBase
	Name    string
	Index   int
	Context ResolutionContext
}

// NewFreeVar creates a new FreeVar
func NewFreeVar(name string, index int, resolution ResolutionContext, sourceSpan *util.ParseSourceSpan) *FreeVar {
	return &FreeVar{
		ExpressionBase: NewExpressionBase(ExpressionKindFreeVar, sourceSpan),
		Name:           name,
		Index:          index,
		Context:        resolution,
	}
}

// VariableKind implements VariableReference
func (*FreeVar) VariableKind() VariableKind { return VariableKindFree }

// VisitExpression implements Expression
func (e *FreeVar) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitFreeVar(e, context)
}

// CallExpression calls a helper
type CallExpression struct {
	*ExpressionBase
	Callee Expression
	Args   *Args
}

// NewCallExpression creates a new CallExpression
func NewCallExpression(callee Expression, args *Args, sourceSpan *util.ParseSourceSpan) *CallExpression {
	return &CallExpression{ExpressionBase: NewExpressionBase(ExpressionKindCall, sourceSpan), Callee: callee, Args: args}
}

// VisitExpression implements Expression
func (e *CallExpression) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitCall(e, context)
}

// InterpolateExpression concatenates two or more parts into a string
type InterpolateExpression struct {
	*ExpressionBase
	Parts []Expression
}

// NewInterpolateExpression creates a new InterpolateExpression
func NewInterpolateExpression(parts []Expression, sourceSpan *util.ParseSourceSpan) *InterpolateExpression {
	return &InterpolateExpression{ExpressionBase: NewExpressionBase(ExpressionKindInterpolate, sourceSpan), Parts: parts}
}

// VisitExpression implements Expression
func (e *InterpolateExpression) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitInterpolate(e, context)
}

// HasBlock reports whether a named block was passed
type HasBlock struct {
	*ExpressionBase
	Target *BlockVar
}

// NewHasBlock creates a new HasBlock
func NewHasBlock(target *BlockVar, sourceSpan *util.ParseSourceSpan) *HasBlock {
	return &HasBlock{ExpressionBase: NewExpressionBase(ExpressionKindHasBlock, sourceSpan), Target: target}
}

// VisitExpression implements Expression
func (e *HasBlock) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitHasBlock(e, context)
}

// HasBlockParams reports whether a named block was passed with block params
type HasBlockParams struct {
	*ExpressionBase
	Target *BlockVar
}

// NewHasBlockParams creates a new HasBlockParams
func NewHasBlockParams(target *BlockVar, sourceSpan *util.ParseSourceSpan) *HasBlockParams {
	return &HasBlockParams{ExpressionBase: NewExpressionBase(ExpressionKindHasBlockParams, sourceSpan), Target: target}
}

// VisitExpression implements Expression
func (e *HasBlockParams) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitHasBlockParams(e, context)
}

// Curry binds arguments to a component, helper or modifier definition
type Curry struct {
	*ExpressionBase
	Definition  Expression
	CurriedType CurriedType
	Args        *Args
}

// NewCurry creates a new Curry
func NewCurry(definition Expression, curriedType CurriedType, args *Args, sourceSpan *util.ParseSourceSpan) *Curry {
	return &Curry{
		ExpressionBase: NewExpressionBase(ExpressionKindCurry, sourceSpan),
		Definition:     definition,
		CurriedType:    curriedType,
		Args:           args,
	}
}

// VisitExpression implements Expression
func (e *Curry) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitCurry(e, context)
}

// Not negates a value
type Not struct {
	*ExpressionBase
	Value Expression
}

// NewNot creates a new Not
func NewNot(value Expression, sourceSpan *util.ParseSourceSpan) *Not {
	return &Not{ExpressionBase: NewExpressionBase(ExpressionKindNot, sourceSpan), Value: value}
}

// VisitExpression implements Expression
func (e *Not) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitNot(e, context)
}

// IfInline selects Truthy or Falsy by Condition. Falsy may be nil.
type IfInline struct {
	*ExpressionBase
	Condition Expression
	Truthy    Expression
	Falsy     Expression
}

// NewIfInline creates a new IfInline
func NewIfInline(condition, truthy, falsy Expression, sourceSpan *util.ParseSourceSpan) *IfInline {
	return &IfInline{
		ExpressionBase: NewExpressionBase(ExpressionKindIfInline, sourceSpan),
		Condition:      condition,
		Truthy:         truthy,
		Falsy:          falsy,
	}
}

// VisitExpression implements Expression
func (e *IfInline) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitIfInline(e, context)
}

// GetDynamicVar reads a dynamic variable by name
type GetDynamicVar struct {
	*ExpressionBase
	Name Expression
}

// NewGetDynamicVar creates a new GetDynamicVar
func NewGetDynamicVar(name Expression, sourceSpan *util.ParseSourceSpan) *GetDynamicVar {
	return &GetDynamicVar{ExpressionBase: NewExpressionBase(ExpressionKindGetDynamicVar, sourceSpan), Name: name}
}

// VisitExpression implements Expression
func (e *GetDynamicVar) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitGetDynamicVar(e, context)
}

// Log logs its positional arguments at render time
type Log struct {
	*ExpressionBase
	Positional *Positional
}

// NewLog creates a new Log
func NewLog(positional *Positional, sourceSpan *util.ParseSourceSpan) *Log {
	return &Log{ExpressionBase: NewExpressionBase(ExpressionKindLog, sourceSpan), Positional: positional}
}

// VisitExpression implements Expression
func (e *Log) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitLog(e, context)
}
