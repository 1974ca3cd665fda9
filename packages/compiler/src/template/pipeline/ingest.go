package pipeline

import (
	"fmt"

	"hbsc-go/packages/compiler/src/syntax"
	"hbsc-go/packages/compiler/src/template/pipeline/ir"
	"hbsc-go/packages/compiler/src/util"
)

// Program is a normalized template: its statements and the symbol table
// they were allocated against
type Program struct {
	Body  []ir.Statement
	Table *syntax.SymbolTable
	Loc   *util.ParseSourceSpan
}

// Normalize lowers a template syntax tree into the intermediate tree. The
// first error in traversal order aborts the compile.
func Normalize(template *syntax.Template, options *Options) util.Result[*Program] {
	table := syntax.NewProgramSymbolTable()
	for _, param := range template.BlockParams {
		table.Program().AllocateLocal(param)
	}
	state := NewNormalizationState(table, options)
	return util.MapOk(state.statements(template.Body), func(body []ir.Statement) *Program {
		return &Program{Body: body, Table: table, Loc: template.Loc}
	})
}

// statements lowers a statement list. Statements that produce no output,
// like mustache comments, are dropped.
func (s *NormalizationState) statements(body []syntax.Statement) util.Result[[]ir.Statement] {
	var list util.ResultArray[ir.Statement]
	for _, stmt := range body {
		if _, ok := stmt.(*syntax.MustacheCommentStatement); ok {
			continue
		}
		list.Add(s.statement(stmt))
	}
	return list.ToArray()
}

func (s *NormalizationState) statement(stmt syntax.Statement) util.Result[ir.Statement] {
	switch n := stmt.(type) {
	case *syntax.TextNode:
		return util.Ok[ir.Statement](ir.NewAppendTextNode(ir.NewLiteral(n.Chars, n.Loc), n.Loc))
	case *syntax.CommentStatement:
		return util.Ok[ir.Statement](ir.NewAppendComment(n.Value, n.Loc))
	case *syntax.MustacheStatement:
		return s.appendMustache(n)
	case *syntax.BlockStatement:
		return s.block(n)
	case *syntax.PartialStatement:
		return s.partial(n)
	case *syntax.ElementNode:
		return s.element(n)
	default:
		panic(fmt.Sprintf("Unsupported template node: %T", stmt))
	}
}

// appendMustache lowers a content mustache. Append keywords apply first.
func (s *NormalizationState) appendMustache(m *syntax.MustacheStatement) util.Result[ir.Statement] {
	if result, ok := s.keywords().Append.Translate(m, s); ok {
		return result
	}
	var value util.Result[ir.Expression]
	if m.IsInvoked() {
		callee := s.callee(m.Path, PositionAppend, "helper", true)
		args := s.args(m.Params, m.Hash, m.Loc)
		value = util.MapOk(util.All2(callee, args), func(p util.Pair[ir.Expression, *ir.Args]) ir.Expression {
			return ir.NewCallExpression(p.First, p.Second, m.Loc)
		})
	} else if path, ok := m.Path.(*syntax.PathExpression); ok {
		value = s.path(path, PositionAppend, false)
	} else {
		value = s.expression(m.Path, PositionArgument)
	}
	return util.MapOk(value, func(expr ir.Expression) ir.Statement {
		if m.Trusting {
			return ir.NewAppendTrustedHTML(expr, m.Loc)
		}
		return ir.NewAppendTextNode(expr, m.Loc)
	})
}

// block lowers `{{#head ...}}`. Block keywords apply first; any other head
// is invoked as a component with default and else blocks.
func (s *NormalizationState) block(b *syntax.BlockStatement) util.Result[ir.Statement] {
	if result, ok := s.keywords().Block.Translate(b, s); ok {
		return result
	}
	head := s.callee(b.Path, PositionComponentHead, "component", true)
	args := s.args(b.Params, b.Hash, b.Loc)
	blocks := s.blocks(b)
	return util.MapOk(util.All3(head, args, blocks), func(t util.Triple[ir.Expression, *ir.Args, *ir.NamedBlocks]) ir.Statement {
		return ir.NewInvokeBlock(t.First, t.Second, t.Third, b.Loc)
	})
}

// blocks lowers the program and inverse of a block statement into `default`
// and `else`
func (s *NormalizationState) blocks(b *syntax.BlockStatement) util.Result[*ir.NamedBlocks] {
	program := s.namedBlock("default", b.Program)
	inverse := s.optionalNamedBlock("else", b.Inverse)
	return util.MapOk(util.All2(program, inverse), func(p util.Pair[*ir.NamedBlock, *ir.NamedBlock]) *ir.NamedBlocks {
		list := []*ir.NamedBlock{p.First}
		if p.Second != nil {
			list = append(list, p.Second)
		}
		return ir.NewNamedBlocks(list, b.Loc)
	})
}

// namedBlock lowers a block body in a child scope holding its block params
func (s *NormalizationState) namedBlock(name string, block *syntax.Block) util.Result[*ir.NamedBlock] {
	if block == nil {
		return util.Ok(ir.NewNamedBlock(name, nil, nil, nil))
	}
	return withBlock(s, block.BlockParams, func(scope syntax.Scope) util.Result[*ir.NamedBlock] {
		return util.MapOk(s.statements(block.Body), func(body []ir.Statement) *ir.NamedBlock {
			return ir.NewNamedBlock(name, body, scope.Slots(), block.Loc)
		})
	})
}

func (s *NormalizationState) optionalNamedBlock(name string, block *syntax.Block) util.Result[*ir.NamedBlock] {
	if block == nil {
		return util.Ok[*ir.NamedBlock](nil)
	}
	return s.namedBlock(name, block)
}

// partial lowers `{{> name}}`. Partials need the eval info of every visible
// local and are not available in strict mode.
func (s *NormalizationState) partial(p *syntax.PartialStatement) util.Result[ir.Statement] {
	if s.IsStrict() {
		return util.Err[ir.Statement](util.NewParseError(p.Loc, "Partials are not supported in strict mode"))
	}
	if len(p.Params) > 0 || !p.Hash.IsEmpty() {
		return util.Err[ir.Statement](util.NewParseError(p.Loc, "Partials do not take any arguments"))
	}
	var target util.Result[ir.Expression]
	if path, ok := p.Name.(*syntax.PathExpression); ok {
		target = util.Ok[ir.Expression](ir.NewLiteral(path.Original, path.Loc))
	} else {
		target = s.expression(p.Name, PositionArgument)
	}
	return util.MapOk(target, func(name ir.Expression) ir.Statement {
		s.scope.SetHasEval()
		return ir.NewPartial(name, s.scope.EvalInfo(), p.Loc)
	})
}
