package syntax

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"hbsc-go/packages/compiler/src/util"
)

// DecodeJSON reads a template syntax tree in the Handlebars/HTML AST JSON
// shape (`{"type":"Template","body":[...]}`). Locations use one-based lines
// and zero-based columns; they are resolved against source to build spans.
func DecodeJSON(data []byte, source, url string) (*Template, error) {
	d := &decoder{file: util.NewParseSourceFile(source, url)}
	var root rawNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse template AST: %w", err)
	}
	if root.Type != "Template" {
		return nil, fmt.Errorf("expected a Template node, got %q", root.Type)
	}
	body, err := d.statements(root.Body)
	if err != nil {
		return nil, err
	}
	return &Template{
		Body:        body,
		BlockParams: root.BlockParams,
		Source:      d.file,
		Loc:         d.span(root.Loc),
	}, nil
}

type rawPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type rawLoc struct {
	Start rawPosition `json:"start"`
	End   rawPosition `json:"end"`
}

type rawNode struct {
	Type        string            `json:"type"`
	Loc         *rawLoc           `json:"loc"`
	Body        []json.RawMessage `json:"body"`
	BlockParams []string          `json:"blockParams"`
	Chars       string            `json:"chars"`
	Value       json.RawMessage   `json:"value"`
	Path        json.RawMessage   `json:"path"`
	Params      []json.RawMessage `json:"params"`
	Hash        json.RawMessage   `json:"hash"`
	Trusting    *bool             `json:"trusting"`
	Escaped     *bool             `json:"escaped"`
	Program     json.RawMessage   `json:"program"`
	Inverse     json.RawMessage   `json:"inverse"`
	Name        json.RawMessage   `json:"name"`
	Tag         string            `json:"tag"`
	SelfClosing bool              `json:"selfClosing"`
	Attributes  []json.RawMessage `json:"attributes"`
	Modifiers   []json.RawMessage `json:"modifiers"`
	Comments    []json.RawMessage `json:"comments"`
	Children    []json.RawMessage `json:"children"`
	Parts       []json.RawMessage `json:"parts"`
	Original    json.RawMessage   `json:"original"`
	Head        json.RawMessage   `json:"head"`
	Tail        []string          `json:"tail"`
	This        bool              `json:"this"`
	Data        bool              `json:"data"`
	Pairs       []json.RawMessage `json:"pairs"`
	Key         string            `json:"key"`
}

type decoder struct {
	file *util.ParseSourceFile
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func (d *decoder) span(loc *rawLoc) *util.ParseSourceSpan {
	if loc == nil {
		return nil
	}
	start := util.NewParseLocationAt(d.file, loc.Start.Line-1, loc.Start.Column)
	end := util.NewParseLocationAt(d.file, loc.End.Line-1, loc.End.Column)
	return util.NewParseSourceSpan(start, end)
}

func (d *decoder) node(raw json.RawMessage) (*rawNode, error) {
	var n rawNode
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("failed to parse template AST node: %w", err)
	}
	return &n, nil
}

func (d *decoder) statements(raws []json.RawMessage) ([]Statement, error) {
	out := make([]Statement, 0, len(raws))
	for _, raw := range raws {
		stmt, err := d.statement(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, stmt)
	}
	return out, nil
}

func (d *decoder) statement(raw json.RawMessage) (Statement, error) {
	n, err := d.node(raw)
	if err != nil {
		return nil, err
	}
	switch n.Type {
	case "TextNode":
		return &TextNode{Chars: n.Chars, Loc: d.span(n.Loc)}, nil
	case "CommentStatement":
		value, err := d.stringValue(n.Value)
		if err != nil {
			return nil, err
		}
		return &CommentStatement{Value: value, Loc: d.span(n.Loc)}, nil
	case "MustacheCommentStatement":
		value, err := d.stringValue(n.Value)
		if err != nil {
			return nil, err
		}
		return &MustacheCommentStatement{Value: value, Loc: d.span(n.Loc)}, nil
	case "MustacheStatement":
		return d.mustache(n)
	case "BlockStatement":
		return d.blockStatement(n)
	case "PartialStatement":
		return d.partial(n)
	case "ElementNode":
		return d.element(n)
	default:
		return nil, fmt.Errorf("unsupported statement node type %q", n.Type)
	}
}

func (d *decoder) stringValue(raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("expected a string value: %w", err)
	}
	return s, nil
}

func (d *decoder) call(n *rawNode) (Expression, []Expression, *Hash, error) {
	path, err := d.expression(n.Path)
	if err != nil {
		return nil, nil, nil, err
	}
	params, err := d.expressions(n.Params)
	if err != nil {
		return nil, nil, nil, err
	}
	hash, err := d.hash(n.Hash)
	if err != nil {
		return nil, nil, nil, err
	}
	return path, params, hash, nil
}

func (d *decoder) mustache(n *rawNode) (*MustacheStatement, error) {
	path, params, hash, err := d.call(n)
	if err != nil {
		return nil, err
	}
	trusting := false
	if n.Trusting != nil {
		trusting = *n.Trusting
	} else if n.Escaped != nil {
		trusting = !*n.Escaped
	}
	return &MustacheStatement{Path: path, Params: params, Hash: hash, Trusting: trusting, Loc: d.span(n.Loc)}, nil
}

func (d *decoder) blockStatement(n *rawNode) (*BlockStatement, error) {
	path, params, hash, err := d.call(n)
	if err != nil {
		return nil, err
	}
	program, err := d.block(n.Program)
	if err != nil {
		return nil, err
	}
	inverse, err := d.block(n.Inverse)
	if err != nil {
		return nil, err
	}
	return &BlockStatement{Path: path, Params: params, Hash: hash, Program: program, Inverse: inverse, Loc: d.span(n.Loc)}, nil
}

func (d *decoder) block(raw json.RawMessage) (*Block, error) {
	if isNull(raw) {
		return nil, nil
	}
	n, err := d.node(raw)
	if err != nil {
		return nil, err
	}
	body, err := d.statements(n.Body)
	if err != nil {
		return nil, err
	}
	return &Block{Body: body, BlockParams: n.BlockParams, Loc: d.span(n.Loc)}, nil
}

func (d *decoder) partial(n *rawNode) (*PartialStatement, error) {
	name, err := d.expression(n.Name)
	if err != nil {
		return nil, err
	}
	params, err := d.expressions(n.Params)
	if err != nil {
		return nil, err
	}
	hash, err := d.hash(n.Hash)
	if err != nil {
		return nil, err
	}
	return &PartialStatement{Name: name, Params: params, Hash: hash, Loc: d.span(n.Loc)}, nil
}

func (d *decoder) element(n *rawNode) (*ElementNode, error) {
	el := &ElementNode{
		Tag:         n.Tag,
		SelfClosing: n.SelfClosing,
		BlockParams: n.BlockParams,
		Loc:         d.span(n.Loc),
	}
	for _, raw := range n.Attributes {
		attr, err := d.attribute(raw)
		if err != nil {
			return nil, err
		}
		el.Attributes = append(el.Attributes, attr)
	}
	for _, raw := range n.Modifiers {
		m, err := d.node(raw)
		if err != nil {
			return nil, err
		}
		path, params, hash, err := d.call(m)
		if err != nil {
			return nil, err
		}
		el.Modifiers = append(el.Modifiers, &ElementModifierStatement{Path: path, Params: params, Hash: hash, Loc: d.span(m.Loc)})
	}
	for _, raw := range n.Comments {
		c, err := d.node(raw)
		if err != nil {
			return nil, err
		}
		value, err := d.stringValue(c.Value)
		if err != nil {
			return nil, err
		}
		el.Comments = append(el.Comments, &MustacheCommentStatement{Value: value, Loc: d.span(c.Loc)})
	}
	children, err := d.statements(n.Children)
	if err != nil {
		return nil, err
	}
	el.Children = children
	return el, nil
}

func (d *decoder) attribute(raw json.RawMessage) (*AttrNode, error) {
	n, err := d.node(raw)
	if err != nil {
		return nil, err
	}
	if n.Type != "AttrNode" {
		return nil, fmt.Errorf("expected an AttrNode, got %q", n.Type)
	}
	name, err := d.stringValue(n.Name)
	if err != nil {
		return nil, err
	}
	value, err := d.attrValue(n.Value)
	if err != nil {
		return nil, err
	}
	return &AttrNode{Name: name, Value: value, Loc: d.span(n.Loc)}, nil
}

func (d *decoder) attrValue(raw json.RawMessage) (AttrValue, error) {
	n, err := d.node(raw)
	if err != nil {
		return nil, err
	}
	switch n.Type {
	case "TextNode":
		return &TextNode{Chars: n.Chars, Loc: d.span(n.Loc)}, nil
	case "MustacheStatement":
		return d.mustache(n)
	case "ConcatStatement":
		concat := &ConcatStatement{Loc: d.span(n.Loc)}
		for _, rawPart := range n.Parts {
			p, err := d.node(rawPart)
			if err != nil {
				return nil, err
			}
			switch p.Type {
			case "TextNode":
				concat.Parts = append(concat.Parts, &TextNode{Chars: p.Chars, Loc: d.span(p.Loc)})
			case "MustacheStatement":
				m, err := d.mustache(p)
				if err != nil {
					return nil, err
				}
				concat.Parts = append(concat.Parts, m)
			default:
				return nil, fmt.Errorf("unsupported concat part type %q", p.Type)
			}
		}
		return concat, nil
	default:
		return nil, fmt.Errorf("unsupported attribute value type %q", n.Type)
	}
}

func (d *decoder) expressions(raws []json.RawMessage) ([]Expression, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	out := make([]Expression, 0, len(raws))
	for _, raw := range raws {
		expr, err := d.expression(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, expr)
	}
	return out, nil
}

func (d *decoder) hash(raw json.RawMessage) (*Hash, error) {
	if isNull(raw) {
		return nil, nil
	}
	n, err := d.node(raw)
	if err != nil {
		return nil, err
	}
	hash := &Hash{Loc: d.span(n.Loc)}
	for _, rawPair := range n.Pairs {
		p, err := d.node(rawPair)
		if err != nil {
			return nil, err
		}
		value, err := d.expression(p.Value)
		if err != nil {
			return nil, err
		}
		hash.Pairs = append(hash.Pairs, &HashPair{Key: p.Key, Value: value, Loc: d.span(p.Loc)})
	}
	return hash, nil
}

func (d *decoder) expression(raw json.RawMessage) (Expression, error) {
	n, err := d.node(raw)
	if err != nil {
		return nil, err
	}
	loc := d.span(n.Loc)
	switch n.Type {
	case "PathExpression":
		return d.path(n)
	case "SubExpression":
		path, params, hash, err := d.call(n)
		if err != nil {
			return nil, err
		}
		return &SubExpression{Path: path, Params: params, Hash: hash, Loc: loc}, nil
	case "StringLiteral":
		value, err := d.stringValue(n.Value)
		if err != nil {
			return nil, err
		}
		return &StringLiteral{Value: value, Loc: loc}, nil
	case "BooleanLiteral":
		var value bool
		if err := json.Unmarshal(n.Value, &value); err != nil {
			return nil, fmt.Errorf("expected a boolean literal value: %w", err)
		}
		return &BooleanLiteral{Value: value, Loc: loc}, nil
	case "NumberLiteral":
		var value float64
		if err := json.Unmarshal(n.Value, &value); err != nil {
			return nil, fmt.Errorf("expected a number literal value: %w", err)
		}
		return &NumberLiteral{Value: value, Loc: loc}, nil
	case "UndefinedLiteral":
		return &UndefinedLiteral{Loc: loc}, nil
	case "NullLiteral":
		return &NullLiteral{Loc: loc}, nil
	default:
		return nil, fmt.Errorf("unsupported expression node type %q", n.Type)
	}
}

type rawHead struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

func (d *decoder) path(n *rawNode) (*PathExpression, error) {
	original, err := d.stringValue(n.Original)
	if err != nil {
		return nil, err
	}
	loc := d.span(n.Loc)
	if !isNull(n.Head) {
		var head rawHead
		if err := json.Unmarshal(n.Head, &head); err != nil {
			return nil, fmt.Errorf("failed to parse path head: %w", err)
		}
		var h PathHead
		switch head.Type {
		case "ThisHead":
			h = ThisHead{}
		case "AtHead":
			h = AtHead{Name: strings.TrimPrefix(head.Name, "@")}
		case "VarHead":
			h = VarHead{Name: head.Name}
		default:
			return nil, fmt.Errorf("unsupported path head type %q", head.Type)
		}
		return &PathExpression{Original: original, Head: h, Tail: n.Tail, Loc: loc}, nil
	}

	// Older trees encode heads with `this`/`data` flags and a parts list.
	parts := make([]string, 0, len(n.Parts))
	for _, rawPart := range n.Parts {
		var part string
		if err := json.Unmarshal(rawPart, &part); err != nil {
			return nil, fmt.Errorf("expected a string path part: %w", err)
		}
		parts = append(parts, part)
	}
	switch {
	case n.This:
		return &PathExpression{Original: original, Head: ThisHead{}, Tail: nonEmpty(parts), Loc: loc}, nil
	case len(parts) == 0:
		return nil, fmt.Errorf("path %q has no parts", original)
	case n.Data:
		return &PathExpression{Original: original, Head: AtHead{Name: parts[0]}, Tail: nonEmpty(parts[1:]), Loc: loc}, nil
	default:
		return &PathExpression{Original: original, Head: VarHead{Name: parts[0]}, Tail: nonEmpty(parts[1:]), Loc: loc}, nil
	}
}

func nonEmpty(parts []string) []string {
	if len(parts) == 0 {
		return nil
	}
	return parts
}
