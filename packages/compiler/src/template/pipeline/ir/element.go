package ir

import (
	"hbsc-go/packages/compiler/src/util"
)

// ElementParameter is one entry of an element's parameter list
type ElementParameter interface {
	GetSourceSpan() *util.ParseSourceSpan
	GetKind() ElementParameterKind
	VisitElementParameter(visitor ElementParameterVisitor, context interface{}) interface{}
}

// AttrKind selects the attribute opcode flavour
type AttrKind struct {
	// Trusting is set for `{{{value}}}` attribute values
	Trusting bool
	// Component is set when the attribute is on a component invocation
	Component bool
}

// ElementParameterBase is the base type used for all element parameters
type ElementParameterBase struct {
	SourceSpan *util.ParseSourceSpan
	Kind       ElementParameterKind
}

// GetSourceSpan returns the source span
func (p *ElementParameterBase) GetSourceSpan() *util.ParseSourceSpan {
	return p.SourceSpan
}

// GetKind returns the parameter kind
func (p *ElementParameterBase) GetKind() ElementParameterKind {
	return p.Kind
}

// StaticAttr is an attribute with a literal value, a string or a boolean.
// Namespace is "" for the null namespace.
type StaticAttr struct {
	*ElementParameterBase
	AttrKind  AttrKind
	Name      string
	Value     interface{}
	Namespace string
}

// NewStaticAttr creates a new StaticAttr
func NewStaticAttr(kind AttrKind, name string, value interface{}, namespace string, sourceSpan *util.ParseSourceSpan) *StaticAttr {
	return &StaticAttr{
		ElementParameterBase: &ElementParameterBase{SourceSpan: sourceSpan, Kind: ElementParameterKindStaticAttr},
		AttrKind:             kind,
		Name:                 name,
		Value:                value,
		Namespace:            namespace,
	}
}

// VisitElementParameter implements ElementParameter
func (p *StaticAttr) VisitElementParameter(visitor ElementParameterVisitor, context interface{}) interface{} {
	return visitor.VisitStaticAttr(p, context)
}

// DynamicAttr is an attribute with a computed value
type DynamicAttr struct {
	*ElementParameterBase
	AttrKind  AttrKind
	Name      string
	Value     Expression
	Namespace string
}

// NewDynamicAttr creates a new DynamicAttr
func NewDynamicAttr(kind AttrKind, name string, value Expression, namespace string, sourceSpan *util.ParseSourceSpan) *DynamicAttr {
	return &DynamicAttr{
		ElementParameterBase: &ElementParameterBase{SourceSpan: sourceSpan, Kind: ElementParameterKindDynamicAttr},
		AttrKind:             kind,
		Name:                 name,
		Value:                value,
		Namespace:            namespace,
	}
}

// VisitElementParameter implements ElementParameter
func (p *DynamicAttr) VisitElementParameter(visitor ElementParameterVisitor, context interface{}) interface{} {
	return visitor.VisitDynamicAttr(p, context)
}

// Modifier installs an element modifier
type Modifier struct {
	*ElementParameterBase
	Callee Expression
	Args   *Args
}

// NewModifier creates a new Modifier
func NewModifier(callee Expression, args *Args, sourceSpan *util.ParseSourceSpan) *Modifier {
	return &Modifier{
		ElementParameterBase: &ElementParameterBase{SourceSpan: sourceSpan, Kind: ElementParameterKindModifier},
		Callee:               callee,
		Args:                 args,
	}
}

// VisitElementParameter implements ElementParameter
func (p *Modifier) VisitElementParameter(visitor ElementParameterVisitor, context interface{}) interface{} {
	return visitor.VisitModifier(p, context)
}

// SplatAttr marks where the caller's `...attributes` are applied
type SplatAttr struct {
	*ElementParameterBase
	Symbol int
}

// NewSplatAttr creates a new SplatAttr
func NewSplatAttr(symbol int, sourceSpan *util.ParseSourceSpan) *SplatAttr {
	return &SplatAttr{
		ElementParameterBase: &ElementParameterBase{SourceSpan: sourceSpan, Kind: ElementParameterKindSplatAttr},
		Symbol:               symbol,
	}
}

// VisitElementParameter implements ElementParameter
func (p *SplatAttr) VisitElementParameter(visitor ElementParameterVisitor, context interface{}) interface{} {
	return visitor.VisitSplatAttr(p, context)
}
