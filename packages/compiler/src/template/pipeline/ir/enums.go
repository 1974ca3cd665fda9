package ir

// StatementKind distinguishes different kinds of IR statements
type StatementKind int

const (
	// StatementKindAppendTextNode - Appends the value of an expression as escaped text
	StatementKindAppendTextNode StatementKind = iota
	// StatementKindAppendTrustedHTML - Appends the value of an expression as raw HTML
	StatementKindAppendTrustedHTML
	// StatementKindAppendComment - Appends an HTML comment
	StatementKindAppendComment
	// StatementKindComponent - Invokes an angle-bracket component
	StatementKindComponent
	// StatementKindSimpleElement - Renders a plain HTML element
	StatementKindSimpleElement
	// StatementKindInvokeBlock - Invokes a curly block (`{{#foo}}`)
	StatementKindInvokeBlock
	// StatementKindYield - Yields to a named block of the enclosing component
	StatementKindYield
	// StatementKindPartial - Renders a partial with the current eval scope
	StatementKindPartial
	// StatementKindDebugger - A `{{debugger}}` breakpoint with the current eval scope
	StatementKindDebugger
	// StatementKindInElement - Renders a block into a remote destination element
	StatementKindInElement
	// StatementKindIf - A conditional block (`{{#if}}` / `{{#unless}}`)
	StatementKindIf
	// StatementKindEach - An iteration block
	StatementKindEach
	// StatementKindLet - Binds positional values to block params
	StatementKindLet
	// StatementKindWithDynamicVars - Sets dynamic variables for a block
	StatementKindWithDynamicVars
	// StatementKindInvokeComponent - Invokes a dynamic component definition from curly syntax
	StatementKindInvokeComponent
)

var statementKindNames = [...]string{
	"AppendTextNode",
	"AppendTrustedHTML",
	"AppendComment",
	"Component",
	"SimpleElement",
	"InvokeBlock",
	"Yield",
	"Partial",
	"Debugger",
	"InElement",
	"If",
	"Each",
	"Let",
	"WithDynamicVars",
	"InvokeComponent",
}

// String returns the statement kind name
func (k StatementKind) String() string {
	if k < 0 || int(k) >= len(statementKindNames) {
		return "Unknown"
	}
	return statementKindNames[k]
}

// ExpressionKind distinguishes different kinds of IR expressions
type ExpressionKind int

const (
	// ExpressionKindLiteral - A string, number, boolean or null literal
	ExpressionKindLiteral ExpressionKind = iota
	// ExpressionKindUndefined - The `undefined` literal
	ExpressionKindUndefined
	// ExpressionKindPath - A variable reference followed by a non-empty dotted tail
	ExpressionKindPath
	// ExpressionKindLocalVar - A block param or template local
	ExpressionKindLocalVar
	// ExpressionKindArgVar - A named argument (`@name`)
	ExpressionKindArgVar
	// ExpressionKindBlockVar - A named block reference (`&name`)
	ExpressionKindBlockVar
	// ExpressionKindThisVar - `this`
	ExpressionKindThisVar
	// ExpressionKindFreeVar - An unresolved name with its resolution context
	ExpressionKindFreeVar
	// ExpressionKindCall - A helper call
	ExpressionKindCall
	// ExpressionKindInterpolate - A concatenation of two or more parts
	ExpressionKindInterpolate
	// ExpressionKindHasBlock - `(has-block)`
	ExpressionKindHasBlock
	// ExpressionKindHasBlockParams - `(has-block-params)`
	ExpressionKindHasBlockParams
	// ExpressionKindCurry - `(component)`, `(helper)` or `(modifier)` with bound arguments
	ExpressionKindCurry
	// ExpressionKindNot - Logical negation
	ExpressionKindNot
	// ExpressionKindIfInline - `(if cond a b)`
	ExpressionKindIfInline
	// ExpressionKindGetDynamicVar - `(-get-dynamic-var name)`
	ExpressionKindGetDynamicVar
	// ExpressionKindLog - `(log ...)`
	ExpressionKindLog
)

// ElementParameterKind distinguishes the parameters of an element
type ElementParameterKind int

const (
	// ElementParameterKindStaticAttr - An attribute with a literal value
	ElementParameterKindStaticAttr ElementParameterKind = iota
	// ElementParameterKindDynamicAttr - An attribute with a computed value
	ElementParameterKindDynamicAttr
	// ElementParameterKindModifier - An element modifier
	ElementParameterKindModifier
	// ElementParameterKindSplatAttr - `...attributes`
	ElementParameterKindSplatAttr
)

// VariableKind classifies a variable head
type VariableKind int

const (
	// VariableKindLocal - Found in the lexical chain of block params
	VariableKindLocal VariableKind = iota
	// VariableKindArg - `@`-prefixed
	VariableKindArg
	// VariableKindBlock - `&`-prefixed yield target
	VariableKindBlock
	// VariableKindThis - Literally `this`
	VariableKindThis
	// VariableKindFree - Anything else
	VariableKindFree
)

// String returns the variable kind name
func (k VariableKind) String() string {
	switch k {
	case VariableKindLocal:
		return "Local"
	case VariableKindArg:
		return "Arg"
	case VariableKindBlock:
		return "Block"
	case VariableKindThis:
		return "This"
	case VariableKindFree:
		return "Free"
	}
	return "Unknown"
}

// ResolutionContext tells the runtime how to look up a free variable. It is
// chosen from the syntactic position the variable occurs in.
type ResolutionContext int

const (
	// ResolutionContextStrict - Strict mode: the name must come from lexical scope
	ResolutionContextStrict ResolutionContext = iota
	// ResolutionContextAppendBare - `{{foo}}`: component, helper or `this.foo`
	ResolutionContextAppendBare
	// ResolutionContextAppendInvoke - `{{foo bar}}`: component or helper, no fallback
	ResolutionContextAppendInvoke
	// ResolutionContextAttrBare - `<div class={{foo}}>`: helper or `this.foo`
	ResolutionContextAttrBare
	// ResolutionContextAttrInvoke - `<div class={{foo bar}}>`: helper only
	ResolutionContextAttrInvoke
	// ResolutionContextSubExpressionHead - `(foo)`: helper only
	ResolutionContextSubExpressionHead
	// ResolutionContextComponentHead - `<Foo>` or `{{#foo}}`: component only
	ResolutionContextComponentHead
	// ResolutionContextModifierHead - `<div {{foo}}>`: modifier only
	ResolutionContextModifierHead
	// ResolutionContextLooseFreeVariable - a value position: `this.foo` fallback only
	ResolutionContextLooseFreeVariable
)

var resolutionContextNames = [...]string{
	"Strict",
	"AppendBare",
	"AppendInvoke",
	"AttrBare",
	"AttrInvoke",
	"SubExpressionHead",
	"ComponentHead",
	"ModifierHead",
	"LooseFreeVariable",
}

// String returns the resolution context name
func (c ResolutionContext) String() string {
	if c < 0 || int(c) >= len(resolutionContextNames) {
		return "Unknown"
	}
	return resolutionContextNames[c]
}

// AllowsThisFallback reports whether the runtime may fall back to `this.name`
func (c ResolutionContext) AllowsThisFallback() bool {
	switch c {
	case ResolutionContextAppendBare, ResolutionContextAttrBare, ResolutionContextLooseFreeVariable:
		return true
	}
	return false
}

// CurriedType is the kind of definition a Curry expression binds arguments to
type CurriedType int

const (
	// CurriedTypeComponent - `(component)`
	CurriedTypeComponent CurriedType = iota
	// CurriedTypeHelper - `(helper)`
	CurriedTypeHelper
	// CurriedTypeModifier - `(modifier)`
	CurriedTypeModifier
)

// String returns the keyword that produces the curried type
func (t CurriedType) String() string {
	switch t {
	case CurriedTypeComponent:
		return "component"
	case CurriedTypeHelper:
		return "helper"
	case CurriedTypeModifier:
		return "modifier"
	}
	return "unknown"
}
