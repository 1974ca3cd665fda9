package pipeline_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"hbsc-go/packages/compiler/src/syntax"
	"hbsc-go/packages/compiler/src/template/pipeline"
	"hbsc-go/packages/compiler/src/template/pipeline/wire"
)

func compileJSON(t *testing.T, template *syntax.Template, options *pipeline.Options) string {
	t.Helper()
	block, err := pipeline.Compile(template, options)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	out, err := wire.Marshal(block)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	return string(out)
}

func compileError(t *testing.T, template *syntax.Template, options *pipeline.Options) string {
	t.Helper()
	_, err := pipeline.Compile(template, options)
	if err == nil {
		t.Fatalf("Compile() error = nil, want an error")
	}
	return err.Error()
}

func expressions(exprs ...syntax.Expression) []syntax.Expression {
	return exprs
}

func TestCompileContent(t *testing.T) {
	tests := []struct {
		name     string
		template *syntax.Template
		want     string
	}{
		{
			name:     "should append static text and a bare free variable",
			template: syntax.NewTemplate(syntax.Text("Hello "), syntax.Mustache(syntax.Path("name"))),
			want:     `[[[1,"Hello "],[1,[34,0]]],[],false,["name"]]`,
		},
		{
			name:     "should append trusted html",
			template: syntax.NewTemplate(syntax.TrustingMustache(syntax.Path("html"))),
			want:     `[[[2,[34,0]]],[],false,["html"]]`,
		},
		{
			name:     "should keep html comments and drop mustache comments",
			template: syntax.NewTemplate(syntax.Comment(" note "), syntax.MustacheComment("gone")),
			want:     `[[[3," note "]],[],false,[]]`,
		},
		{
			name:     "should resolve this paths",
			template: syntax.NewTemplate(syntax.Mustache(syntax.Path("this.foo"))),
			want:     `[[[1,[30,0,["foo"]]]],[],false,[]]`,
		},
		{
			name:     "should allocate a symbol for named arguments",
			template: syntax.NewTemplate(syntax.Mustache(syntax.Path("@user.name"))),
			want:     `[[[1,[30,1,["name"]]]],["@user"],false,[]]`,
		},
		{
			name:     "should resolve free paths with a tail as loose free variables",
			template: syntax.NewTemplate(syntax.Mustache(syntax.Path("foo.bar"))),
			want:     `[[[1,[33,0,["bar"]]]],[],false,["foo"]]`,
		},
		{
			name: "should call helpers with sub-expression arguments",
			template: syntax.NewTemplate(
				syntax.Mustache(syntax.Path("concat"), syntax.Sexpr(syntax.Path("upper"), syntax.Path("name"))),
			),
			want: `[[[1,[28,[35,0],[[28,[37,1],[[33,2]],null]],null]]],[],false,["concat","upper","name"]]`,
		},
		{
			name: "should encode named arguments as keys and values",
			template: syntax.NewTemplate(
				syntax.Mustache(syntax.Path("t")).WithHash(syntax.Pair("count", syntax.Num(2)), syntax.Pair("x", syntax.Undefined())),
			),
			want: `[[[1,[28,[35,0],null,[["count","x"],[2,[27]]]]]],[],false,["t"]]`,
		},
		{
			name:     "should yield to a named block with no positional arguments",
			template: syntax.NewTemplate(syntax.Mustache(syntax.Path("yield")).WithHash(syntax.Pair("to", syntax.Str("body")))),
			want:     `[[[18,1,null]],["&body"],false,[]]`,
		},
		{
			name:     "should yield to the default block",
			template: syntax.NewTemplate(syntax.Mustache(syntax.Path("yield"), syntax.Path("item"))),
			want:     `[[[18,1,[[33,0]]]],["&default"],false,["item"]]`,
		},
		{
			name:     "should lower has-block to the default block slot",
			template: syntax.NewTemplate(syntax.Mustache(syntax.Path("has-block"))),
			want:     `[[[1,[48,[30,1]]]],["&default"],false,[]]`,
		},
		{
			name: "should lower inline if with an optional falsy value",
			template: syntax.NewTemplate(
				syntax.Mustache(syntax.Path("if"), syntax.Path("ok"), syntax.Str("yes")),
				syntax.Mustache(syntax.Path("unless"), syntax.Path("ok"), syntax.Str("no"), syntax.Str("yes")),
			),
			want: `[[[1,[52,[33,0],"yes"]],[1,[52,[51,[33,0]],"no","yes"]]],[],false,["ok"]]`,
		},
		{
			name: "should lower log and -get-dynamic-var",
			template: syntax.NewTemplate(
				syntax.Mustache(syntax.Path("log"), syntax.Str("a")),
				syntax.Mustache(syntax.Path("-get-dynamic-var"), syntax.Str("theme")),
			),
			want: `[[[1,[54,["a"]]],[1,[53,"theme"]]],[],false,[]]`,
		},
		{
			name: "should curry components passed as arguments",
			template: syntax.NewTemplate(
				syntax.Mustache(syntax.Path("wrap"), syntax.Sexpr(syntax.Path("component"), syntax.Path("card"), syntax.Num(1))),
			),
			want: `[[[1,[28,[35,0],[[50,[33,1],0,[1],null]],null]]],[],false,["wrap","card"]]`,
		},
		{
			name:     "should invoke the component keyword in append position",
			template: syntax.NewTemplate(syntax.Mustache(syntax.Path("component"), syntax.Path("card"))),
			want:     `[[[46,[33,0],null,null,null]],[],false,["card"]]`,
		},
		{
			name:     "should append the result of the helper keyword",
			template: syntax.NewTemplate(syntax.Mustache(syntax.Path("helper"), syntax.Path("fmt"), syntax.Str("x"))),
			want:     `[[[1,[28,[50,[33,0],1,["x"],null],null,null]]],[],false,["fmt"]]`,
		},
		{
			name:     "should record eval info for debugger",
			template: syntax.NewTemplate(syntax.Mustache(syntax.Path("debugger"))),
			want:     `[[[26,[]]],[],true,[]]`,
		},
		{
			name:     "should lower partials to their name in loose mode",
			template: syntax.NewTemplate(syntax.Partial(syntax.Path("sidebar"))),
			want:     `[[[19,"sidebar",[]]],[],true,[]]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compileJSON(t, tt.template, nil)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compile() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileBlocks(t *testing.T) {
	tests := []struct {
		name     string
		template *syntax.Template
		want     string
	}{
		{
			name: "should lower each with key, block params and else",
			template: syntax.NewTemplate(
				syntax.BlockStmt(syntax.Path("each"), expressions(syntax.Path("items")),
					syntax.Program([]string{"item"}, syntax.Mustache(syntax.Path("item")))).
					WithHash(syntax.Pair("key", syntax.Str("id"))).
					WithInverse(syntax.Program(nil, syntax.Text("none"))),
			),
			want: `[[[42,[33,0],"id",[[[1,[30,1]]],[1]],[[[1,"none"]],[]]]],["item"],false,["items"]]`,
		},
		{
			name: "should negate the condition of unless",
			template: syntax.NewTemplate(
				syntax.BlockStmt(syntax.Path("unless"), expressions(syntax.Path("cond")), syntax.Program(nil, syntax.Text("a"))),
			),
			want: `[[[41,[51,[33,0]],[[[1,"a"]],[]],null]],[],false,["cond"]]`,
		},
		{
			name: "should lower let with its block params",
			template: syntax.NewTemplate(
				syntax.BlockStmt(syntax.Path("let"), expressions(syntax.Str("a"), syntax.Path("b")),
					syntax.Program([]string{"x", "y"}, syntax.Mustache(syntax.Path("y")))),
			),
			want: `[[[44,["a",[33,0]],[[[1,[30,2]]],[1,2]]]],["x","y"],false,["b"]]`,
		},
		{
			name: "should lower -with-dynamic-vars",
			template: syntax.NewTemplate(
				syntax.BlockStmt(syntax.Path("-with-dynamic-vars"), nil, syntax.Program(nil, syntax.Text("a"))).
					WithHash(syntax.Pair("theme", syntax.Str("dark"))),
			),
			want: `[[[45,[["theme"],["dark"]],[[[1,"a"]],[]]]],[],false,[]]`,
		},
		{
			name: "should lower in-element with a generated cursor",
			template: syntax.NewTemplate(
				syntax.BlockStmt(syntax.Path("in-element"), expressions(syntax.Path("dest")), syntax.Program(nil, syntax.Text("hi"))),
				syntax.BlockStmt(syntax.Path("in-element"), expressions(syntax.Path("dest")), syntax.Program(nil, syntax.Text("yo"))).
					WithHash(syntax.Pair("insertBefore", syntax.Null())),
			),
			want: `[[[40,[[[1,"hi"]],[]],"%cursor:0%",[33,0]],[40,[[[1,"yo"]],[]],"%cursor:1%",[33,0],null]],[],false,["dest"]]`,
		},
		{
			name: "should invoke unknown blocks as component heads with default and else",
			template: syntax.NewTemplate(
				syntax.BlockStmt(syntax.Path("my-list"), expressions(syntax.Path("rows")),
					syntax.Program([]string{"row"}, syntax.Mustache(syntax.Path("row")))).
					WithInverse(syntax.Program(nil, syntax.Text("empty"))),
			),
			want: `[[[6,[39,0],[[33,1]],null,[["default","else"],[[[[1,[30,1]]],[1]],[[[1,"empty"]],[]]]]]],["row"],false,["my-list","rows"]]`,
		},
		{
			name: "should record the slots of visible locals for debugger",
			template: syntax.NewTemplate(
				syntax.BlockStmt(syntax.Path("each"), expressions(syntax.Path("items")),
					syntax.Program([]string{"item"}, syntax.Mustache(syntax.Path("debugger")))),
			),
			want: `[[[42,[33,0],null,[[[26,[1]]],[1]],null]],["item"],true,["items"]]`,
		},
		{
			name: "should let a local shadow a keyword",
			template: syntax.NewTemplate(
				syntax.BlockStmt(syntax.Path("let"), expressions(syntax.Path("fmt")),
					syntax.Program([]string{"log"}, syntax.Mustache(syntax.Path("log")))),
			),
			want: `[[[44,[[33,0]],[[[1,[30,1]]],[1]]]],["log"],false,["fmt"]]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compileJSON(t, tt.template, nil)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compile() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileElements(t *testing.T) {
	selfClosing := func(e *syntax.ElementNode) *syntax.ElementNode {
		e.SelfClosing = true
		return e
	}

	tests := []struct {
		name     string
		template *syntax.Template
		options  *pipeline.Options
		want     string
	}{
		{
			name: "should emit a simple element with modifiers and type last",
			template: syntax.NewTemplate(
				syntax.Element("input").
					WithAttrs(syntax.Attr("type", syntax.Text("text")), syntax.Attr("class", syntax.Mustache(syntax.Path("cls")))).
					WithModifiers(syntax.Modifier(syntax.Path("on"), syntax.Str("click"), syntax.Path("go"))),
			),
			want: `[[[11,"input"],[16,"class",[36,0]],[4,[38,1],["click",[33,2]],null],[24,"type","text"],[12],[13]],[],false,["cls","on","go"]]`,
		},
		{
			name: "should emit static and interpolated attributes on plain elements",
			template: syntax.NewTemplate(
				syntax.Element("p", syntax.Text("x")).
					WithAttrs(
						syntax.Attr("id", syntax.Mustache(syntax.Str("main"))),
						syntax.Attr("title", syntax.Concat(syntax.Text("a "), syntax.Mustache(syntax.Path("b")))),
						syntax.Attr("data-raw", syntax.TrustingMustache(syntax.Path("raw"))),
					),
			),
			want: `[[[10,"p"],[14,"id","main"],[15,"title",[29,["a ",[36,0]]]],[22,"data-raw",[36,1]],[12],[1,"x"],[13]],[],false,["b","raw"]]`,
		},
		{
			name: "should keep boolean literal attributes static",
			template: syntax.NewTemplate(
				syntax.Element("input").WithAttrs(
					syntax.Attr("disabled", syntax.Mustache(syntax.Bool(true))),
					syntax.Attr("hidden", syntax.Mustache(syntax.Bool(false))),
				),
			),
			want: `[[[10,"input"],[14,"disabled",true],[14,"hidden",false],[12],[13]],[],false,[]]`,
		},
		{
			name: "should apply splattributes with the attrs block",
			template: syntax.NewTemplate(
				syntax.Element("div").WithAttrs(syntax.Splattributes(), syntax.Attr("id", syntax.Text("x"))),
			),
			want: `[[[11,"div"],[17,1],[24,"id","x"],[12],[13]],["&attrs"],false,[]]`,
		},
		{
			name: "should write the namespace of namespaced attributes",
			template: syntax.NewTemplate(
				syntax.Element("use").WithAttrs(syntax.Attr("xlink:href", syntax.Text("#a"))),
			),
			want: `[[[10,"use"],[14,"xlink:href","#a","http://www.w3.org/1999/xlink"],[12],[13]],[],false,[]]`,
		},
		{
			name: "should invoke components with arguments and named blocks",
			template: syntax.NewTemplate(
				syntax.Element("Card",
					syntax.Text("\n  "),
					syntax.Element(":header", syntax.Text("Hi")),
					syntax.Comment("between"),
					syntax.Element(":body", syntax.Mustache(syntax.Path("x"))),
				).WithAttrs(syntax.Attr("@title", syntax.Text("T")), syntax.Attr("class", syntax.Text("c"))),
			),
			want: `[[[8,[39,0],[[24,"class","c"]],[["@title"],["T"]],[["header","body"],[[[[1,"Hi"]],[]],[[[1,[34,1]]],[]]]]]],[],false,["Card","x"]]`,
		},
		{
			name: "should give a self-closing component no blocks",
			template: syntax.NewTemplate(
				selfClosing(syntax.Element("Icon").WithAttrs(syntax.Attr("@name", syntax.Mustache(syntax.Path("kind"))))),
			),
			want: `[[[8,[39,0],null,[["@name"],[[36,1]]],null]],[],false,["Icon","kind"]]`,
		},
		{
			name: "should pass the default block with block params",
			template: syntax.NewTemplate(
				syntax.Element("List", syntax.Mustache(syntax.Path("item"))).WithBlockParams("item"),
			),
			want: `[[[8,[39,0],null,null,[["default"],[[[[1,[30,1]]],[1]]]]]],["item"],false,["List"]]`,
		},
		{
			name: "should treat paths on locals as components",
			template: &syntax.Template{
				BlockParams: []string{"ui"},
				Body:        []syntax.Statement{syntax.Element("ui.button")},
			},
			want: `[[[8,[30,1,["button"]],null,null,[["default"],[[[],[]]]]]],["ui"],false,[]]`,
		},
		{
			name: "should customize free component names",
			template: syntax.NewTemplate(
				selfClosing(syntax.Element("FooBar")),
			),
			options: &pipeline.Options{CustomizeComponentName: strings.ToLower},
			want:    `[[[8,[39,0],null,null,null]],[],false,["foobar"]]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compileJSON(t, tt.template, tt.options)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compile() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name     string
		template *syntax.Template
		options  *pipeline.Options
		want     string
	}{
		{
			name:     "should reject named arguments on plain elements",
			template: syntax.NewTemplate(syntax.Element("div").WithAttrs(syntax.Attr("@foo", syntax.Text("bar")))),
			want:     "@foo is not a valid attribute name. @arguments are only allowed on components, but the tag for this element (`div`) is a regular, non-component HTML element.",
		},
		{
			name:     "should require a condition and a value for inline if",
			template: syntax.NewTemplate(syntax.Mustache(syntax.Path("if"))),
			want:     "When used inline, (if) requires at least two parameters 1. the condition that determines the state of the (if), and 2. the value to return if the condition is true. Did not receive any parameters",
		},
		{
			name: "should cap inline if at three parameters",
			template: syntax.NewTemplate(
				syntax.Mustache(syntax.Path("if"), syntax.Path("a"), syntax.Path("b"), syntax.Path("c"), syntax.Path("d")),
			),
			want: "When used inline, (if) can receive a maximum of three positional parameters 1. the condition that determines the state of the (if), 2. the value to return if the condition is true, and 3. the value to return if the condition is false. Received 4 parameters",
		},
		{
			name: "should reserve the guid argument of in-element",
			template: syntax.NewTemplate(
				syntax.Mustache(syntax.Path("in-element"), syntax.Path("dest")).WithHash(syntax.Pair("guid", syntax.Str("x"))),
			),
			want: "Cannot pass `guid` to `{{#in-element}}`",
		},
		{
			name: "should reserve the guid argument of block in-element",
			template: syntax.NewTemplate(
				syntax.BlockStmt(syntax.Path("in-element"), expressions(syntax.Path("dest")), syntax.Program(nil)).
					WithHash(syntax.Pair("guid", syntax.Str("x"))),
			),
			want: "Cannot pass `guid` to `{{#in-element}}`",
		},
		{
			name: "should suggest the closest in-element argument",
			template: syntax.NewTemplate(
				syntax.BlockStmt(syntax.Path("in-element"), expressions(syntax.Path("dest")), syntax.Program(nil)).
					WithHash(syntax.Pair("insrtBefore", syntax.Null())),
			),
			want: "Invalid argument `insrtBefore` to `{{#in-element}}` (did you mean 'insertBefore'?)",
		},
		{
			name: "should only yield to a single named argument",
			template: syntax.NewTemplate(
				syntax.Mustache(syntax.Path("yield")).WithHash(syntax.Pair("from", syntax.Str("x"))),
			),
			want: "yield only takes a single named argument: 'to'",
		},
		{
			name: "should only yield to a string literal",
			template: syntax.NewTemplate(
				syntax.Mustache(syntax.Path("yield")).WithHash(syntax.Pair("to", syntax.Path("name"))),
			),
			want: "you can only yield to a literal string value",
		},
		{
			name:     "should reject duplicate named arguments",
			template: syntax.NewTemplate(syntax.Mustache(syntax.Path("t")).WithHash(syntax.Pair("a", syntax.Num(1)), syntax.Pair("a", syntax.Num(2)))),
			want:     "Duplicate named argument `a`",
		},
		{
			name: "should require a value for let",
			template: syntax.NewTemplate(
				syntax.BlockStmt(syntax.Path("let"), nil, syntax.Program(nil)),
			),
			want: "{{#let}} requires at least one value as its first positional parameter, did not find one",
		},
		{
			name: "should reject else blocks on let",
			template: syntax.NewTemplate(
				syntax.BlockStmt(syntax.Path("let"), expressions(syntax.Path("a")), syntax.Program(nil)).WithInverse(syntax.Program(nil)),
			),
			want: "{{#let}} does not take an {{else}} block",
		},
		{
			name: "should only accept key on each",
			template: syntax.NewTemplate(
				syntax.BlockStmt(syntax.Path("each"), expressions(syntax.Path("a")), syntax.Program(nil)).WithHash(syntax.Pair("index", syntax.Num(1))),
			),
			want: "{{#each}} can only receive the 'key' named parameter, received index",
		},
		{
			name: "should suggest key for a misspelled each argument",
			template: syntax.NewTemplate(
				syntax.BlockStmt(syntax.Path("each"), expressions(syntax.Path("a")), syntax.Program(nil)).WithHash(syntax.Pair("kye", syntax.Str("id"))),
			),
			want: "{{#each}} can only receive the 'key' named parameter, received kye (did you mean 'key'?)",
		},
		{
			name:     "should reject free dotted tags",
			template: syntax.NewTemplate(syntax.Element("foo.bar")),
			want:     "You used foo.bar as a tag name, but foo is not in scope",
		},
		{
			name:     "should reject block params on plain elements",
			template: syntax.NewTemplate(syntax.Element("div").WithBlockParams("x")),
			want:     "Unexpected block params in <div>: simple elements cannot have block params",
		},
		{
			name: "should reject content next to named blocks",
			template: syntax.NewTemplate(
				syntax.Element("Card", syntax.Element(":header"), syntax.Text("oops")),
			),
			want: "Unexpected content inside <Card> component invocation: when using named blocks, the tag cannot contain other content",
		},
		{
			name: "should reject duplicate named blocks",
			template: syntax.NewTemplate(
				syntax.Element("Card", syntax.Element(":header"), syntax.Element(":header")),
			),
			want: "Component had two blocks named `header`",
		},
		{
			name:     "should reject named blocks outside of components",
			template: syntax.NewTemplate(syntax.Element("div", syntax.Element(":header"))),
			want:     "Unexpected named block <:header> outside of a component invocation",
		},
		{
			name:     "should reject non-path helper names",
			template: syntax.NewTemplate(syntax.Mustache(syntax.Str("x"), syntax.Num(1))),
			want:     "`\"x\"` is not a valid name for a helper",
		},
		{
			name:     "should reject partials in strict mode",
			template: syntax.NewTemplate(syntax.Partial(syntax.Path("sidebar"))),
			options:  &pipeline.Options{Strict: true},
			want:     "Partials are not supported in strict mode",
		},
		{
			name:     "should reject names outside the lexical scope in strict mode",
			template: syntax.NewTemplate(syntax.Mustache(syntax.Path("Buton"))),
			options:  &pipeline.Options{Strict: true, LexicalScope: []string{"Button", "t"}},
			want:     "Attempted to resolve `Buton`, which was expected to be in lexical scope, but it was not (did you mean 'Button'?)",
		},
		{
			name:     "should suggest a lexical name for an extra typed letter",
			template: syntax.NewTemplate(syntax.Mustache(syntax.Path("fooo"))),
			options:  &pipeline.Options{Strict: true, LexicalScope: []string{"foo"}},
			want:     "Attempted to resolve `fooo`, which was expected to be in lexical scope, but it was not (did you mean 'foo'?)",
		},
		{
			name:     "should reject keywords with a tail in strict mode",
			template: syntax.NewTemplate(syntax.Mustache(syntax.Path("yield.x"))),
			options:  &pipeline.Options{Strict: true},
			want:     "The `yield` keyword was used incorrectly. It was used as `yield.x`, but it cannot be used with additional path segments.",
		},
		{
			name: "should report the first error in traversal order",
			template: syntax.NewTemplate(
				syntax.Mustache(syntax.Path("yield")).WithHash(syntax.Pair("to", syntax.Path("name"))),
				syntax.Mustache(syntax.Path("if")),
			),
			want: "you can only yield to a literal string value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compileError(t, tt.template, tt.options)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compile() error mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileStrict(t *testing.T) {
	t.Run("should resolve every free variable strictly", func(t *testing.T) {
		template := syntax.NewTemplate(
			syntax.Mustache(syntax.Path("t"), syntax.Str("greeting")),
			syntax.Element("Button"),
		)
		options := &pipeline.Options{Strict: true, LexicalScope: []string{"Button", "t"}}
		want := `[[[1,[28,[31,0],["greeting"],null]],[8,[31,1],null,null,[["default"],[[[],[]]]]]],[],false,["t","Button"]]`
		if diff := cmp.Diff(want, compileJSON(t, template, options)); diff != "" {
			t.Errorf("Compile() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should treat keyword tails as free paths in loose mode", func(t *testing.T) {
		template := syntax.NewTemplate(syntax.Mustache(syntax.Path("yield.x")))
		want := `[[[1,[33,0,["x"]]]],[],false,["yield"]]`
		if diff := cmp.Diff(want, compileJSON(t, template, nil)); diff != "" {
			t.Errorf("Compile() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestCompileDeterminism(t *testing.T) {
	build := func() *syntax.Template {
		return syntax.NewTemplate(
			syntax.BlockStmt(syntax.Path("in-element"), expressions(syntax.Path("a")), syntax.Program(nil, syntax.Mustache(syntax.Path("x")))),
			syntax.Element("Card", syntax.Mustache(syntax.Path("yield"))).WithAttrs(syntax.Splattributes()),
			syntax.BlockStmt(syntax.Path("in-element"), expressions(syntax.Path("b")), syntax.Program(nil)),
		)
	}

	t.Run("should produce identical output for identical input", func(t *testing.T) {
		first := compileJSON(t, build(), nil)
		second := compileJSON(t, build(), nil)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Compile() not deterministic (-first +second):\n%s", diff)
		}
		if !strings.Contains(first, `"%cursor:0%"`) || !strings.Contains(first, `"%cursor:1%"`) {
			t.Errorf("Compile() = %s, want cursors 0 and 1", first)
		}
	})
}
