package ir

import (
	"hbsc-go/packages/compiler/src/util"
)

// Statement is an IR statement. Every implementation dispatches to exactly one
// StatementVisitor method.
type Statement interface {
	GetSourceSpan() *util.ParseSourceSpan
	GetKind() StatementKind
	VisitStatement(visitor StatementVisitor, context interface{}) interface{}
}

// StatementBase is the base type used for all IR statements
type StatementBase struct {
	SourceSpan *util.ParseSourceSpan
	Kind       StatementKind
}

// NewStatementBase creates a new StatementBase
func NewStatementBase(kind StatementKind, sourceSpan *util.ParseSourceSpan) *StatementBase {
	return &StatementBase{SourceSpan: sourceSpan, Kind: kind}
}

// GetSourceSpan returns the source span
func (s *StatementBase) GetSourceSpan() *util.ParseSourceSpan {
	return s.SourceSpan
}

// GetKind returns the statement kind
func (s *StatementBase) GetKind() StatementKind {
	return s.Kind
}

// AppendTextNode appends the value of Text, escaped
type AppendTextNode struct {
	*StatementBase
	Text Expression
}

// NewAppendTextNode creates a new AppendTextNode
func NewAppendTextNode(text Expression, sourceSpan *util.ParseSourceSpan) *AppendTextNode {
	return &AppendTextNode{StatementBase: NewStatementBase(StatementKindAppendTextNode, sourceSpan), Text: text}
}

// VisitStatement implements Statement
func (s *AppendTextNode) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitAppendTextNode(s, context)
}

// AppendTrustedHTML appends the value of HTML without escaping
type AppendTrustedHTML struct {
	*StatementBase
	HTML Expression
}

// NewAppendTrustedHTML creates a new AppendTrustedHTML
func NewAppendTrustedHTML(html Expression, sourceSpan *util.ParseSourceSpan) *AppendTrustedHTML {
	return &AppendTrustedHTML{StatementBase: NewStatementBase(StatementKindAppendTrustedHTML, sourceSpan), HTML: html}
}

// VisitStatement implements Statement
func (s *AppendTrustedHTML) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitAppendTrustedHTML(s, context)
}

// AppendComment appends an HTML comment
type AppendComment struct {
	*StatementBase
	Value string
}

// NewAppendComment creates a new AppendComment
func NewAppendComment(value string, sourceSpan *util.ParseSourceSpan) *AppendComment {
	return &AppendComment{StatementBase: NewStatementBase(StatementKindAppendComment, sourceSpan), Value: value}
}

// VisitStatement implements Statement
func (s *AppendComment) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitAppendComment(s, context)
}

// Component invokes an angle-bracket component
type Component struct {
	*StatementBase
	Tag    Expression
	Params *ElementParameters
	Args   *NamedArguments
	Blocks *NamedBlocks
}

// NewComponent creates a new Component
func NewComponent(tag Expression, params *ElementParameters, args *NamedArguments, blocks *NamedBlocks, sourceSpan *util.ParseSourceSpan) *Component {
	return &Component{
		StatementBase: NewStatementBase(StatementKindComponent, sourceSpan),
		Tag:           tag,
		Params:        params,
		Args:          args,
		Blocks:        blocks,
	}
}

// VisitStatement implements Statement
func (s *Component) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitComponent(s, context)
}

// SimpleElement renders a plain HTML element
type SimpleElement struct {
	*StatementBase
	Tag    string
	Params *ElementParameters
	Body   []Statement
	// DynamicFeatures is set when the element has modifiers or `...attributes`
	DynamicFeatures bool
}

// NewSimpleElement creates a new SimpleElement
func NewSimpleElement(tag string, params *ElementParameters, body []Statement, dynamicFeatures bool, sourceSpan *util.ParseSourceSpan) *SimpleElement {
	return &SimpleElement{
		StatementBase:   NewStatementBase(StatementKindSimpleElement, sourceSpan),
		Tag:             tag,
		Params:          params,
		Body:            body,
		DynamicFeatures: dynamicFeatures,
	}
}

// VisitStatement implements Statement
func (s *SimpleElement) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitSimpleElement(s, context)
}

// InvokeBlock invokes a curly block
type InvokeBlock struct {
	*StatementBase
	Head   Expression
	Args   *Args
	Blocks *NamedBlocks
}

// NewInvokeBlock creates a new InvokeBlock
func NewInvokeBlock(head Expression, args *Args, blocks *NamedBlocks, sourceSpan *util.ParseSourceSpan) *InvokeBlock {
	return &InvokeBlock{StatementBase: NewStatementBase(StatementKindInvokeBlock, sourceSpan), Head: head, Args: args, Blocks: blocks}
}

// VisitStatement implements Statement
func (s *InvokeBlock) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitInvokeBlock(s, context)
}

// Yield yields positional values to the block in slot To
type Yield struct {
	*StatementBase
	To         int
	Positional *Positional
}

// NewYield creates a new Yield
func NewYield(to int, positional *Positional, sourceSpan *util.ParseSourceSpan) *Yield {
	return &Yield{StatementBase: NewStatementBase(StatementKindYield, sourceSpan), To: to, Positional: positional}
}

// VisitStatement implements Statement
func (s *Yield) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitYield(s, context)
}

// Partial renders the partial named by Target
type Partial struct {
	*StatementBase
	Target   Expression
	EvalInfo []int
}

// NewPartial creates a new Partial
func NewPartial(target Expression, evalInfo []int, sourceSpan *util.ParseSourceSpan) *Partial {
	return &Partial{StatementBase: NewStatementBase(StatementKindPartial, sourceSpan), Target: target, EvalInfo: evalInfo}
}

// VisitStatement implements Statement
func (s *Partial) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitPartial(s, context)
}

// Debugger pauses rendering with the visible locals
type Debugger struct {
	*StatementBase
	EvalInfo []int
}

// NewDebugger creates a new Debugger
func NewDebugger(evalInfo []int, sourceSpan *util.ParseSourceSpan) *Debugger {
	return &Debugger{StatementBase: NewStatementBase(StatementKindDebugger, sourceSpan), EvalInfo: evalInfo}
}

// VisitStatement implements Statement
func (s *Debugger) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitDebugger(s, context)
}

// InElement renders Block into Destination. InsertBefore may be nil.
type InElement struct {
	*StatementBase
	GUID         string
	InsertBefore Expression
	Destination  Expression
	Block        *NamedBlock
}

// NewInElement creates a new InElement
func NewInElement(guid string, insertBefore, destination Expression, block *NamedBlock, sourceSpan *util.ParseSourceSpan) *InElement {
	return &InElement{
		StatementBase: NewStatementBase(StatementKindInElement, sourceSpan),
		GUID:          guid,
		InsertBefore:  insertBefore,
		Destination:   destination,
		Block:         block,
	}
}

// VisitStatement implements Statement
func (s *InElement) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitInElement(s, context)
}

// If renders Block or Inverse by Condition. Inverse may be nil.
type If struct {
	*StatementBase
	Condition Expression
	Block     *NamedBlock
	Inverse   *NamedBlock
}

// NewIf creates a new If
func NewIf(condition Expression, block, inverse *NamedBlock, sourceSpan *util.ParseSourceSpan) *If {
	return &If{StatementBase: NewStatementBase(StatementKindIf, sourceSpan), Condition: condition, Block: block, Inverse: inverse}
}

// VisitStatement implements Statement
func (s *If) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitIf(s, context)
}

// Each iterates Value. Key and Inverse may be nil.
type Each struct {
	*StatementBase
	Value   Expression
	Key     Expression
	Block   *NamedBlock
	Inverse *NamedBlock
}

// NewEach creates a new Each
func NewEach(value, key Expression, block, inverse *NamedBlock, sourceSpan *util.ParseSourceSpan) *Each {
	return &Each{StatementBase: NewStatementBase(StatementKindEach, sourceSpan), Value: value, Key: key, Block: block, Inverse: inverse}
}

// VisitStatement implements Statement
func (s *Each) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitEach(s, context)
}

// Let binds Positional to the block params of Block
type Let struct {
	*StatementBase
	Positional *Positional
	Block      *NamedBlock
}

// NewLet creates a new Let
func NewLet(positional *Positional, block *NamedBlock, sourceSpan *util.ParseSourceSpan) *Let {
	return &Let{StatementBase: NewStatementBase(StatementKindLet, sourceSpan), Positional: positional, Block: block}
}

// VisitStatement implements Statement
func (s *Let) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitLet(s, context)
}

// WithDynamicVars sets the dynamic variables in Named while rendering Block
type WithDynamicVars struct {
	*StatementBase
	Named *NamedArguments
	Block *NamedBlock
}

// NewWithDynamicVars creates a new WithDynamicVars
func NewWithDynamicVars(named *NamedArguments, block *NamedBlock, sourceSpan *util.ParseSourceSpan) *WithDynamicVars {
	return &WithDynamicVars{StatementBase: NewStatementBase(StatementKindWithDynamicVars, sourceSpan), Named: named, Block: block}
}

// VisitStatement implements Statement
func (s *WithDynamicVars) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitWithDynamicVars(s, context)
}

// InvokeComponent invokes a dynamic component definition. Blocks may be nil.
type InvokeComponent struct {
	*StatementBase
	Definition Expression
	Args       *Args
	Blocks     *NamedBlocks
}

// NewInvokeComponent creates a new InvokeComponent
func NewInvokeComponent(definition Expression, args *Args, blocks *NamedBlocks, sourceSpan *util.ParseSourceSpan) *InvokeComponent {
	return &InvokeComponent{
		StatementBase: NewStatementBase(StatementKindInvokeComponent, sourceSpan),
		Definition:    definition,
		Args:          args,
		Blocks:        blocks,
	}
}

// VisitStatement implements Statement
func (s *InvokeComponent) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitInvokeComponent(s, context)
}
