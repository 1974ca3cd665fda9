package pipeline_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"hbsc-go/packages/compiler/src/syntax"
	"hbsc-go/packages/compiler/src/template/pipeline"
	"hbsc-go/packages/compiler/src/template/pipeline/ir"
	"hbsc-go/packages/compiler/src/template/pipeline/wire"
	"hbsc-go/packages/compiler/src/util"
)

func greeting(name, text string, bareOnly bool) pipeline.Keyword[*syntax.MustacheStatement, ir.Statement] {
	return pipeline.DefineKeyword(name,
		func(node *syntax.MustacheStatement, state *pipeline.NormalizationState) util.Result[struct{}] {
			if bareOnly && node.IsInvoked() {
				return pipeline.NotApplicable[struct{}]()
			}
			return util.Ok(struct{}{})
		},
		func(node *syntax.MustacheStatement, state *pipeline.NormalizationState, _ struct{}) util.Result[ir.Statement] {
			return util.Ok[ir.Statement](ir.NewAppendTextNode(ir.NewLiteral(text, node.Loc), node.Loc))
		})
}

func TestKeywords(t *testing.T) {
	keywords := &pipeline.KeywordSet{
		Append: pipeline.NewKeywords[*syntax.MustacheStatement, ir.Statement](pipeline.KeywordCategoryAppend).
			Kw(greeting("greet", "bare", true)).
			Kw(greeting("greet", "invoked", false)).
			Kw(greeting("greet", "unreachable", false)),
	}

	t.Run("should list names in registration order", func(t *testing.T) {
		want := []string{"greet", "greet", "greet"}
		if diff := cmp.Diff(want, keywords.Append.Names()); diff != "" {
			t.Errorf("Names() mismatch (-want +got):\n%s", diff)
		}
		if got := keywords.Append.Category(); got != pipeline.KeywordCategoryAppend {
			t.Errorf("Category() = %v, want Append", got)
		}
	})

	t.Run("should use the first keyword that accepts the node", func(t *testing.T) {
		template := syntax.NewTemplate(
			syntax.Mustache(syntax.Path("greet")),
			syntax.Mustache(syntax.Path("greet"), syntax.Num(1)),
		)
		got := compileJSON(t, template, &pipeline.Options{Keywords: keywords})
		want := `[[[1,"bare"],[1,"invoked"]],[],false,[]]`
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Compile() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should fall back to plain helpers for tables without the keyword", func(t *testing.T) {
		template := syntax.NewTemplate(syntax.Mustache(syntax.Path("yield")))
		got := compileJSON(t, template, &pipeline.Options{Keywords: keywords})
		want := `[[[1,[34,0]]],[],false,["yield"]]`
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Compile() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should register the built-in append keywords", func(t *testing.T) {
		want := []string{
			"has-block", "has-block-params", "-get-dynamic-var", "log", "if", "unless",
			"yield", "debugger", "component", "helper", "in-element",
		}
		if diff := cmp.Diff(want, pipeline.AppendKeywords.Names()); diff != "" {
			t.Errorf("Names() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should register the built-in block keywords", func(t *testing.T) {
		want := []string{"in-element", "if", "unless", "each", "let", "-with-dynamic-vars", "component"}
		if diff := cmp.Diff(want, pipeline.BlockKeywords.Names()); diff != "" {
			t.Errorf("Names() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestResolutionContextFor(t *testing.T) {
	tests := []struct {
		name     string
		strict   bool
		position pipeline.Position
		hasTail  bool
		invoked  bool
		want     ir.ResolutionContext
		opcode   wire.Opcode
	}{
		{"should resolve everything strictly in strict mode", true, pipeline.PositionAppend, false, false, ir.ResolutionContextStrict, wire.OpGetStrictFree},
		{"should resolve paths with a tail as loose free variables", false, pipeline.PositionComponentHead, true, false, ir.ResolutionContextLooseFreeVariable, wire.OpGetFreeAsFallback},
		{"should resolve bare appends", false, pipeline.PositionAppend, false, false, ir.ResolutionContextAppendBare, wire.OpGetFreeAsComponentOrHelperHeadOrThisFallback},
		{"should resolve invoked appends", false, pipeline.PositionAppend, false, true, ir.ResolutionContextAppendInvoke, wire.OpGetFreeAsComponentOrHelperHead},
		{"should resolve bare attribute values", false, pipeline.PositionAttr, false, false, ir.ResolutionContextAttrBare, wire.OpGetFreeAsHelperHeadOrThisFallback},
		{"should resolve invoked attribute values", false, pipeline.PositionAttr, false, true, ir.ResolutionContextAttrInvoke, wire.OpGetFreeAsHelperHead},
		{"should resolve sub-expression heads", false, pipeline.PositionSubExpressionHead, false, true, ir.ResolutionContextSubExpressionHead, wire.OpGetFreeAsHelperHead},
		{"should resolve component heads", false, pipeline.PositionComponentHead, false, false, ir.ResolutionContextComponentHead, wire.OpGetFreeAsComponentHead},
		{"should resolve modifier heads", false, pipeline.PositionModifierHead, false, true, ir.ResolutionContextModifierHead, wire.OpGetFreeAsModifierHead},
		{"should resolve arguments as loose free variables", false, pipeline.PositionArgument, false, false, ir.ResolutionContextLooseFreeVariable, wire.OpGetFreeAsFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pipeline.ResolutionContextFor(tt.strict, tt.position, tt.hasTail, tt.invoked)
			if got != tt.want {
				t.Errorf("ResolutionContextFor() = %v, want %v", got, tt.want)
			}
			if op := pipeline.FreeVariableOpcode(got); op != tt.opcode {
				t.Errorf("FreeVariableOpcode() = %v, want %v", op, tt.opcode)
			}
		})
	}
}

func TestClassifyHead(t *testing.T) {
	table := syntax.NewProgramSymbolTable()
	scope := table.Program().Child([]string{"item"})

	tests := []struct {
		name string
		head syntax.PathHead
		want ir.VariableKind
	}{
		{"should classify this", syntax.ThisHead{}, ir.VariableKindThis},
		{"should classify named arguments", syntax.AtHead{Name: "title"}, ir.VariableKindArg},
		{"should classify locals", syntax.VarHead{Name: "item"}, ir.VariableKindLocal},
		{"should classify block references", syntax.VarHead{Name: "&default"}, ir.VariableKindBlock},
		{"should classify everything else as free", syntax.VarHead{Name: "other"}, ir.VariableKindFree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pipeline.ClassifyHead(scope, tt.head); got != tt.want {
				t.Errorf("ClassifyHead() = %v, want %v", got, tt.want)
			}
		})
	}
}
