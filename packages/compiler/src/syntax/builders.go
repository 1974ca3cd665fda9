package syntax

import (
	"strings"
)

// Builders construct syntax trees without spans. They are the Go-side
// equivalent of a parser adapter and are used heavily by tests.

// NewTemplate builds a Template
func NewTemplate(body ...Statement) *Template {
	return &Template{Body: body}
}

// Text builds a TextNode
func Text(chars string) *TextNode {
	return &TextNode{Chars: chars}
}

// Comment builds an HTML comment
func Comment(value string) *CommentStatement {
	return &CommentStatement{Value: value}
}

// MustacheComment builds a mustache comment
func MustacheComment(value string) *MustacheCommentStatement {
	return &MustacheCommentStatement{Value: value}
}

// Path parses a dotted path like `this.foo`, `@bar.baz` or `item.name`
func Path(original string) *PathExpression {
	parts := strings.Split(original, ".")
	var head PathHead
	switch {
	case parts[0] == "this":
		head = ThisHead{}
	case strings.HasPrefix(parts[0], "@"):
		head = AtHead{Name: parts[0][1:]}
	default:
		head = VarHead{Name: parts[0]}
	}
	var tail []string
	if len(parts) > 1 {
		tail = parts[1:]
	}
	return &PathExpression{Original: original, Head: head, Tail: tail}
}

// Str builds a StringLiteral
func Str(value string) *StringLiteral {
	return &StringLiteral{Value: value}
}

// Bool builds a BooleanLiteral
func Bool(value bool) *BooleanLiteral {
	return &BooleanLiteral{Value: value}
}

// Num builds a NumberLiteral
func Num(value float64) *NumberLiteral {
	return &NumberLiteral{Value: value}
}

// Undefined builds an UndefinedLiteral
func Undefined() *UndefinedLiteral {
	return &UndefinedLiteral{}
}

// Null builds a NullLiteral
func Null() *NullLiteral {
	return &NullLiteral{}
}

// Pair builds a HashPair
func Pair(key string, value Expression) *HashPair {
	return &HashPair{Key: key, Value: value}
}

// NewHash builds a Hash
func NewHash(pairs ...*HashPair) *Hash {
	return &Hash{Pairs: pairs}
}

// Mustache builds `{{path params}}`
func Mustache(path Expression, params ...Expression) *MustacheStatement {
	return &MustacheStatement{Path: path, Params: params}
}

// TrustingMustache builds `{{{path params}}}`
func TrustingMustache(path Expression, params ...Expression) *MustacheStatement {
	return &MustacheStatement{Path: path, Params: params, Trusting: true}
}

// WithHash sets the named arguments
func (m *MustacheStatement) WithHash(pairs ...*HashPair) *MustacheStatement {
	m.Hash = NewHash(pairs...)
	return m
}

// Sexpr builds `(path params)`
func Sexpr(path Expression, params ...Expression) *SubExpression {
	return &SubExpression{Path: path, Params: params}
}

// WithHash sets the named arguments
func (s *SubExpression) WithHash(pairs ...*HashPair) *SubExpression {
	s.Hash = NewHash(pairs...)
	return s
}

// Program builds a Block body with block params
func Program(blockParams []string, body ...Statement) *Block {
	return &Block{BlockParams: blockParams, Body: body}
}

// BlockStmt builds `{{#path params}}program{{/path}}`
func BlockStmt(path Expression, params []Expression, program *Block) *BlockStatement {
	return &BlockStatement{Path: path, Params: params, Program: program}
}

// WithHash sets the named arguments
func (b *BlockStatement) WithHash(pairs ...*HashPair) *BlockStatement {
	b.Hash = NewHash(pairs...)
	return b
}

// WithInverse sets the `{{else}}` block
func (b *BlockStatement) WithInverse(inverse *Block) *BlockStatement {
	b.Inverse = inverse
	return b
}

// Partial builds `{{> name}}`
func Partial(name Expression) *PartialStatement {
	return &PartialStatement{Name: name}
}

// Element builds an element with children
func Element(tag string, children ...Statement) *ElementNode {
	return &ElementNode{Tag: tag, Children: children}
}

// WithAttrs appends attributes
func (e *ElementNode) WithAttrs(attrs ...*AttrNode) *ElementNode {
	e.Attributes = append(e.Attributes, attrs...)
	return e
}

// WithModifiers appends element modifiers
func (e *ElementNode) WithModifiers(modifiers ...*ElementModifierStatement) *ElementNode {
	e.Modifiers = append(e.Modifiers, modifiers...)
	return e
}

// WithBlockParams sets `as |x y|`
func (e *ElementNode) WithBlockParams(params ...string) *ElementNode {
	e.BlockParams = params
	return e
}

// Attr builds an attribute
func Attr(name string, value AttrValue) *AttrNode {
	return &AttrNode{Name: name, Value: value}
}

// Splattributes builds `...attributes`
func Splattributes() *AttrNode {
	return &AttrNode{Name: "...attributes", Value: Text("")}
}

// Concat builds a quoted attribute value
func Concat(parts ...ConcatPart) *ConcatStatement {
	return &ConcatStatement{Parts: parts}
}

// Modifier builds `{{path params}}` in element position
func Modifier(path Expression, params ...Expression) *ElementModifierStatement {
	return &ElementModifierStatement{Path: path, Params: params}
}

// WithHash sets the named arguments
func (m *ElementModifierStatement) WithHash(pairs ...*HashPair) *ElementModifierStatement {
	m.Hash = NewHash(pairs...)
	return m
}
