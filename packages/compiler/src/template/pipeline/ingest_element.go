package pipeline

import (
	"fmt"
	"strings"

	"hbsc-go/packages/compiler/src/core"
	"hbsc-go/packages/compiler/src/ml_parser"
	"hbsc-go/packages/compiler/src/syntax"
	"hbsc-go/packages/compiler/src/template/pipeline/ir"
	"hbsc-go/packages/compiler/src/util"
)

// element lowers an element node to a simple element or a component
// invocation
func (s *NormalizationState) element(e *syntax.ElementNode) util.Result[ir.Statement] {
	if ml_parser.IsNamedBlockTag(e.Tag) {
		return util.Err[ir.Statement](util.NewParseErrorf(e.Loc,
			"Unexpected named block <%s> outside of a component invocation", e.Tag))
	}
	if s.isComponent(e.Tag) {
		return s.component(e)
	}
	return s.simpleElement(e)
}

// isComponent classifies a tag. A tag invokes a component when it starts
// uppercase, is a path, starts with `@` or `this`, or names a local.
func (s *NormalizationState) isComponent(tag string) bool {
	head, tail := ml_parser.SplitTagPath(tag)
	switch {
	case strings.HasPrefix(head, "@"), head == "this":
		return true
	case s.scope.Has(head):
		return true
	case core.StartsWithUpper(tag), len(tail) > 0:
		return true
	}
	return false
}

// componentTag lowers the tag of a component to its head expression
func (s *NormalizationState) componentTag(e *syntax.ElementNode) util.Result[ir.Expression] {
	tag := e.Tag
	head, tail := ml_parser.SplitTagPath(tag)
	free := !strings.HasPrefix(head, "@") && head != "this" && !s.scope.Has(head)
	if free && len(tail) > 0 {
		return util.Err[ir.Expression](util.NewParseErrorf(e.Loc,
			"You used %s as a tag name, but %s is not in scope", tag, head))
	}
	if free && !s.IsStrict() && s.options.CustomizeComponentName != nil {
		tag = s.options.CustomizeComponentName(tag)
	}
	path := syntax.Path(tag)
	path.Loc = e.Loc
	return s.path(path, PositionComponentHead, false)
}

func (s *NormalizationState) simpleElement(e *syntax.ElementNode) util.Result[ir.Statement] {
	if len(e.BlockParams) > 0 {
		return util.Err[ir.Statement](util.NewParseErrorf(e.Loc,
			"Unexpected block params in <%s>: simple elements cannot have block params", e.Tag))
	}
	for _, attr := range e.Attributes {
		if attr.IsArgument() {
			return util.Err[ir.Statement](util.NewParseErrorf(attr.Loc,
				"%s is not a valid attribute name. @arguments are only allowed on components, but the tag for this element (`%s`) is a regular, non-component HTML element.",
				attr.Name, e.Tag))
		}
	}
	dynamicFeatures := len(e.Modifiers) > 0
	for _, attr := range e.Attributes {
		if attr.IsSplattributes() {
			dynamicFeatures = true
		}
	}
	params := s.elementParameters(e, dynamicFeatures)
	body := s.statements(e.Children)
	return util.MapOk(util.All2(params, body), func(p util.Pair[*ir.ElementParameters, []ir.Statement]) ir.Statement {
		return ir.NewSimpleElement(e.Tag, p.First, p.Second, dynamicFeatures, e.Loc)
	})
}

func (s *NormalizationState) component(e *syntax.ElementNode) util.Result[ir.Statement] {
	tag := s.componentTag(e)
	params := s.elementParameters(e, true)
	args := s.componentArgs(e)
	blocks := s.componentBlocks(e)
	return util.MapOk(util.All4(tag, params, args, blocks), func(q util.Quad[ir.Expression, *ir.ElementParameters, *ir.NamedArguments, *ir.NamedBlocks]) ir.Statement {
		return ir.NewComponent(q.First, q.Second, q.Third, q.Fourth, e.Loc)
	})
}

// elementParameters lowers attributes, splats and modifiers. Attributes and
// splats keep source order, modifiers follow them and a `type` attribute
// always comes last, after the modifiers. Glimmer itself places `type` after
// the other attributes but before the modifiers.
func (s *NormalizationState) elementParameters(e *syntax.ElementNode, component bool) util.Result[*ir.ElementParameters] {
	var list util.ResultArray[ir.ElementParameter]
	var typeAttr *syntax.AttrNode
	for _, attr := range e.Attributes {
		switch {
		case attr.IsArgument():
			continue
		case attr.Name == "type":
			typeAttr = attr
			continue
		}
		list.Add(s.attribute(attr, component))
	}
	for _, mod := range e.Modifiers {
		list.Add(s.modifier(mod))
	}
	if typeAttr != nil {
		list.Add(s.attribute(typeAttr, component))
	}
	return util.MapOk(list.ToArray(), func(body []ir.ElementParameter) *ir.ElementParameters {
		return ir.NewElementParameters(body, e.Loc)
	})
}

func (s *NormalizationState) attribute(attr *syntax.AttrNode, component bool) util.Result[ir.ElementParameter] {
	if attr.IsSplattributes() {
		return util.Ok[ir.ElementParameter](ir.NewSplatAttr(s.scope.AllocateBlock("attrs"), attr.Loc))
	}
	namespace := ml_parser.GetAttrNamespace(attr.Name)
	if value, ok := staticAttrValue(attr.Value); ok {
		kind := ir.AttrKind{Component: component}
		return util.Ok[ir.ElementParameter](ir.NewStaticAttr(kind, attr.Name, value, namespace, attr.Loc))
	}
	kind := ir.AttrKind{Component: component}
	if m, ok := attr.Value.(*syntax.MustacheStatement); ok {
		kind.Trusting = m.Trusting
	}
	return util.MapOk(s.attrValue(attr.Value), func(value ir.Expression) ir.ElementParameter {
		return ir.NewDynamicAttr(kind, attr.Name, value, namespace, attr.Loc)
	})
}

// staticAttrValue returns the value of an attribute known at compile time:
// plain text, or a mustache holding only a string or boolean literal
func staticAttrValue(value syntax.AttrValue) (interface{}, bool) {
	switch v := value.(type) {
	case *syntax.TextNode:
		return v.Chars, true
	case *syntax.MustacheStatement:
		if v.IsInvoked() {
			return nil, false
		}
		switch lit := v.Path.(type) {
		case *syntax.StringLiteral:
			return lit.Value, true
		case *syntax.BooleanLiteral:
			return lit.Value, true
		}
	}
	return nil, false
}

// attrValue lowers an attribute or argument value to an expression
func (s *NormalizationState) attrValue(value syntax.AttrValue) util.Result[ir.Expression] {
	switch v := value.(type) {
	case *syntax.TextNode:
		return util.Ok[ir.Expression](ir.NewLiteral(v.Chars, v.Loc))
	case *syntax.MustacheStatement:
		return s.attrMustache(v)
	case *syntax.ConcatStatement:
		return s.interpolate(v)
	default:
		panic(fmt.Sprintf("Unsupported attribute value: %T", value))
	}
}

func (s *NormalizationState) modifier(m *syntax.ElementModifierStatement) util.Result[ir.ElementParameter] {
	if result, ok := s.keywords().Modifier.Translate(m, s); ok {
		return result
	}
	callee := s.callee(m.Path, PositionModifierHead, "modifier", true)
	args := s.args(m.Params, m.Hash, m.Loc)
	return util.MapOk(util.All2(callee, args), func(p util.Pair[ir.Expression, *ir.Args]) ir.ElementParameter {
		return ir.NewModifier(p.First, p.Second, m.Loc)
	})
}

// componentArgs lowers the `@name=value` attributes of a component. Keys keep
// their `@` prefix.
func (s *NormalizationState) componentArgs(e *syntax.ElementNode) util.Result[*ir.NamedArguments] {
	var entries util.ResultArray[*ir.NamedArgument]
	seen := make(map[string]bool)
	for _, attr := range e.Attributes {
		if !attr.IsArgument() {
			continue
		}
		if seen[attr.Name] {
			return util.Err[*ir.NamedArguments](util.NewParseErrorf(attr.Loc, "Duplicate named argument `%s`", attr.Name))
		}
		seen[attr.Name] = true
		attr := attr
		entries.Add(util.MapOk(s.attrValue(attr.Value), func(value ir.Expression) *ir.NamedArgument {
			return ir.NewNamedArgument(attr.Name, value, attr.Loc)
		}))
	}
	return util.MapOk(entries.ToArray(), func(list []*ir.NamedArgument) *ir.NamedArguments {
		return ir.NewNamedArguments(list, e.Loc)
	})
}

// componentBlocks lowers the children of a component. A self-closing
// component has no blocks; children made of `<:name>` elements become named
// blocks, anything else becomes the default block.
func (s *NormalizationState) componentBlocks(e *syntax.ElementNode) util.Result[*ir.NamedBlocks] {
	if e.SelfClosing {
		return util.Ok[*ir.NamedBlocks](nil)
	}
	if !hasNamedBlocks(e) {
		block := &syntax.Block{Body: e.Children, BlockParams: e.BlockParams, Loc: e.Loc}
		return util.MapOk(s.namedBlock("default", block), func(b *ir.NamedBlock) *ir.NamedBlocks {
			return ir.NewNamedBlocks([]*ir.NamedBlock{b}, e.Loc)
		})
	}
	if len(e.BlockParams) > 0 {
		return util.Err[*ir.NamedBlocks](util.NewParseErrorf(e.Loc,
			"Unexpected block params list on <%s> component invocation: when passing named blocks, the invocation tag cannot take block params", e.Tag))
	}
	var blocks util.ResultArray[*ir.NamedBlock]
	seen := make(map[string]bool)
	for _, child := range e.Children {
		switch c := child.(type) {
		case *syntax.TextNode:
			if core.IsBlank(c.Chars) {
				continue
			}
		case *syntax.CommentStatement, *syntax.MustacheCommentStatement:
			continue
		case *syntax.ElementNode:
			if ml_parser.IsNamedBlockTag(c.Tag) {
				name := ml_parser.NamedBlockName(c.Tag)
				if seen[name] {
					return util.Err[*ir.NamedBlocks](util.NewParseErrorf(c.Loc, "Component had two blocks named `%s`", name))
				}
				seen[name] = true
				if len(c.Attributes) > 0 || len(c.Modifiers) > 0 {
					return util.Err[*ir.NamedBlocks](util.NewParseErrorf(c.Loc,
						"named block <%s> cannot have attributes, arguments, or modifiers", c.Tag))
				}
				body := &syntax.Block{Body: c.Children, BlockParams: c.BlockParams, Loc: c.Loc}
				blocks.Add(s.namedBlock(name, body))
				continue
			}
		}
		return util.Err[*ir.NamedBlocks](util.NewParseErrorf(child.SourceSpan(),
			"Unexpected content inside <%s> component invocation: when using named blocks, the tag cannot contain other content", e.Tag))
	}
	return util.MapOk(blocks.ToArray(), func(list []*ir.NamedBlock) *ir.NamedBlocks {
		return ir.NewNamedBlocks(list, e.Loc)
	})
}

func hasNamedBlocks(e *syntax.ElementNode) bool {
	for _, child := range e.Children {
		if el, ok := child.(*syntax.ElementNode); ok && ml_parser.IsNamedBlockTag(el.Tag) {
			return true
		}
	}
	return false
}
