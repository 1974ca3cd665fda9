// Package syntax holds the template syntax tree produced by the external
// parser, along with the symbol tables the compiler allocates into while it
// walks that tree.
package syntax

import (
	"strings"

	"hbsc-go/packages/compiler/src/util"
)

// Node represents a node in the template syntax tree
type Node interface {
	SourceSpan() *util.ParseSourceSpan
}

// Statement is a node that may appear in a template or block body
type Statement interface {
	Node
	isStatement()
}

// Expression is a node that produces a value
type Expression interface {
	Node
	isExpression()
}

// AttrValue is the value of an attribute: *TextNode, *MustacheStatement or *ConcatStatement
type AttrValue interface {
	Node
	isAttrValue()
}

// ConcatPart is one part of a quoted attribute value: *TextNode or *MustacheStatement
type ConcatPart interface {
	Node
	isConcatPart()
}

// CallNode is implemented by every node that invokes a callee with arguments
type CallNode interface {
	Node
	CalleeExpr() Expression
	ParamList() []Expression
	HashArgs() *Hash
}

// Literal is implemented by the literal expressions
type Literal interface {
	Expression
	LiteralValue() interface{}
}

// Template is the root of a parsed template
type Template struct {
	Body        []Statement
	BlockParams []string
	Source      *util.ParseSourceFile
	Loc         *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (t *Template) SourceSpan() *util.ParseSourceSpan { return t.Loc }

// Block is the body of a block statement (`{{#x as |a|}}...{{/x}}`)
type Block struct {
	Body        []Statement
	BlockParams []string
	Loc         *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (b *Block) SourceSpan() *util.ParseSourceSpan { return b.Loc }

// MustacheStatement represents `{{path params hash}}` or `{{{path params hash}}}`
type MustacheStatement struct {
	Path     Expression
	Params   []Expression
	Hash     *Hash
	Trusting bool
	Loc      *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (m *MustacheStatement) SourceSpan() *util.ParseSourceSpan { return m.Loc }

// CalleeExpr returns the callee
func (m *MustacheStatement) CalleeExpr() Expression { return m.Path }

// ParamList returns the positional arguments
func (m *MustacheStatement) ParamList() []Expression { return m.Params }

// HashArgs returns the named arguments
func (m *MustacheStatement) HashArgs() *Hash { return m.Hash }

// IsInvoked reports whether the mustache passes any arguments
func (m *MustacheStatement) IsInvoked() bool {
	return len(m.Params) > 0 || !m.Hash.IsEmpty()
}

func (*MustacheStatement) isStatement()  {}
func (*MustacheStatement) isAttrValue()  {}
func (*MustacheStatement) isConcatPart() {}

// BlockStatement represents `{{#path params hash as |x|}}program{{else}}inverse{{/path}}`
type BlockStatement struct {
	Path    Expression
	Params  []Expression
	Hash    *Hash
	Program *Block
	Inverse *Block
	Loc     *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (b *BlockStatement) SourceSpan() *util.ParseSourceSpan { return b.Loc }

// CalleeExpr returns the callee
func (b *BlockStatement) CalleeExpr() Expression { return b.Path }

// ParamList returns the positional arguments
func (b *BlockStatement) ParamList() []Expression { return b.Params }

// HashArgs returns the named arguments
func (b *BlockStatement) HashArgs() *Hash { return b.Hash }

func (*BlockStatement) isStatement() {}

// PartialStatement represents `{{> name}}`
type PartialStatement struct {
	Name   Expression
	Params []Expression
	Hash   *Hash
	Loc    *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (p *PartialStatement) SourceSpan() *util.ParseSourceSpan { return p.Loc }

func (*PartialStatement) isStatement() {}

// MustacheCommentStatement represents `{{!-- comment --}}`
type MustacheCommentStatement struct {
	Value string
	Loc   *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (c *MustacheCommentStatement) SourceSpan() *util.ParseSourceSpan { return c.Loc }

func (*MustacheCommentStatement) isStatement() {}

// CommentStatement represents an HTML comment `<!-- comment -->`
type CommentStatement struct {
	Value string
	Loc   *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (c *CommentStatement) SourceSpan() *util.ParseSourceSpan { return c.Loc }

func (*CommentStatement) isStatement() {}

// TextNode represents static text
type TextNode struct {
	Chars string
	Loc   *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (t *TextNode) SourceSpan() *util.ParseSourceSpan { return t.Loc }

func (*TextNode) isStatement()  {}
func (*TextNode) isAttrValue()  {}
func (*TextNode) isConcatPart() {}

// ElementNode represents an HTML element or an angle-bracket component invocation
type ElementNode struct {
	Tag         string
	SelfClosing bool
	Attributes  []*AttrNode
	BlockParams []string
	Modifiers   []*ElementModifierStatement
	Comments    []*MustacheCommentStatement
	Children    []Statement
	Loc         *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (e *ElementNode) SourceSpan() *util.ParseSourceSpan { return e.Loc }

func (*ElementNode) isStatement() {}

// AttrNode represents `name=value` on an element
type AttrNode struct {
	Name  string
	Value AttrValue
	Loc   *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (a *AttrNode) SourceSpan() *util.ParseSourceSpan { return a.Loc }

// IsSplattributes reports whether the attribute is `...attributes`
func (a *AttrNode) IsSplattributes() bool { return a.Name == "...attributes" }

// IsArgument reports whether the attribute is a component argument (`@name`)
func (a *AttrNode) IsArgument() bool { return strings.HasPrefix(a.Name, "@") }

// ConcatStatement represents a quoted attribute value mixing text and mustaches
type ConcatStatement struct {
	Parts []ConcatPart
	Loc   *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (c *ConcatStatement) SourceSpan() *util.ParseSourceSpan { return c.Loc }

func (*ConcatStatement) isAttrValue() {}

// ElementModifierStatement represents `<div {{modifier params}}>`
type ElementModifierStatement struct {
	Path   Expression
	Params []Expression
	Hash   *Hash
	Loc    *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (m *ElementModifierStatement) SourceSpan() *util.ParseSourceSpan { return m.Loc }

// CalleeExpr returns the callee
func (m *ElementModifierStatement) CalleeExpr() Expression { return m.Path }

// ParamList returns the positional arguments
func (m *ElementModifierStatement) ParamList() []Expression { return m.Params }

// HashArgs returns the named arguments
func (m *ElementModifierStatement) HashArgs() *Hash { return m.Hash }

// PathHead is the first segment of a path: ThisHead, AtHead or VarHead
type PathHead interface {
	HeadName() string
	isPathHead()
}

// ThisHead is `this`
type ThisHead struct{}

// HeadName returns "this"
func (ThisHead) HeadName() string { return "this" }
func (ThisHead) isPathHead()      {}

// AtHead is an argument reference `@name`; Name excludes the `@`
type AtHead struct {
	Name string
}

// HeadName returns the name with its `@` prefix
func (h AtHead) HeadName() string { return "@" + h.Name }
func (AtHead) isPathHead()        {}

// VarHead is a bare identifier
type VarHead struct {
	Name string
}

// HeadName returns the identifier
func (h VarHead) HeadName() string { return h.Name }
func (VarHead) isPathHead()        {}

// PathExpression represents `head.tail.parts`
type PathExpression struct {
	Original string
	Head     PathHead
	Tail     []string
	Loc      *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (p *PathExpression) SourceSpan() *util.ParseSourceSpan { return p.Loc }

func (*PathExpression) isExpression() {}

// SubExpression represents `(path params hash)`
type SubExpression struct {
	Path   Expression
	Params []Expression
	Hash   *Hash
	Loc    *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (s *SubExpression) SourceSpan() *util.ParseSourceSpan { return s.Loc }

// CalleeExpr returns the callee
func (s *SubExpression) CalleeExpr() Expression { return s.Path }

// ParamList returns the positional arguments
func (s *SubExpression) ParamList() []Expression { return s.Params }

// HashArgs returns the named arguments
func (s *SubExpression) HashArgs() *Hash { return s.Hash }

func (*SubExpression) isExpression() {}

// StringLiteral represents `"value"`
type StringLiteral struct {
	Value string
	Loc   *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (l *StringLiteral) SourceSpan() *util.ParseSourceSpan { return l.Loc }

// LiteralValue returns the string
func (l *StringLiteral) LiteralValue() interface{} { return l.Value }

func (*StringLiteral) isExpression() {}

// BooleanLiteral represents `true` or `false`
type BooleanLiteral struct {
	Value bool
	Loc   *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (l *BooleanLiteral) SourceSpan() *util.ParseSourceSpan { return l.Loc }

// LiteralValue returns the boolean
func (l *BooleanLiteral) LiteralValue() interface{} { return l.Value }

func (*BooleanLiteral) isExpression() {}

// NumberLiteral represents a numeric literal
type NumberLiteral struct {
	Value float64
	Loc   *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (l *NumberLiteral) SourceSpan() *util.ParseSourceSpan { return l.Loc }

// LiteralValue returns the number
func (l *NumberLiteral) LiteralValue() interface{} { return l.Value }

func (*NumberLiteral) isExpression() {}

// UndefinedLiteral represents `undefined`
type UndefinedLiteral struct {
	Loc *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (l *UndefinedLiteral) SourceSpan() *util.ParseSourceSpan { return l.Loc }

// LiteralValue returns nil
func (l *UndefinedLiteral) LiteralValue() interface{} { return nil }

func (*UndefinedLiteral) isExpression() {}

// NullLiteral represents `null`
type NullLiteral struct {
	Loc *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (l *NullLiteral) SourceSpan() *util.ParseSourceSpan { return l.Loc }

// LiteralValue returns nil
func (l *NullLiteral) LiteralValue() interface{} { return nil }

func (*NullLiteral) isExpression() {}

// Hash holds the named arguments of a call
type Hash struct {
	Pairs []*HashPair
	Loc   *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (h *Hash) SourceSpan() *util.ParseSourceSpan {
	if h == nil {
		return nil
	}
	return h.Loc
}

// IsEmpty reports whether the hash has no pairs. A nil hash is empty.
func (h *Hash) IsEmpty() bool {
	return h == nil || len(h.Pairs) == 0
}

// Get returns the pair with the given key
func (h *Hash) Get(key string) *HashPair {
	if h == nil {
		return nil
	}
	for _, pair := range h.Pairs {
		if pair.Key == key {
			return pair
		}
	}
	return nil
}

// Keys returns the keys in source order
func (h *Hash) Keys() []string {
	if h == nil {
		return nil
	}
	keys := make([]string, len(h.Pairs))
	for i, pair := range h.Pairs {
		keys[i] = pair.Key
	}
	return keys
}

// HashPair is one `key=value` named argument
type HashPair struct {
	Key   string
	Value Expression
	Loc   *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (p *HashPair) SourceSpan() *util.ParseSourceSpan { return p.Loc }

// SimplePathName returns the head name of a path with no tail, such as `yield`.
// It returns false for anything else.
func SimplePathName(expr Expression) (string, bool) {
	path, ok := expr.(*PathExpression)
	if !ok || len(path.Tail) > 0 {
		return "", false
	}
	head, ok := path.Head.(VarHead)
	if !ok {
		return "", false
	}
	return head.Name, true
}
