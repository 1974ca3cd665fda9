package pipeline

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"

	"hbsc-go/packages/compiler/src/syntax"
	"hbsc-go/packages/compiler/src/template/pipeline/ir"
	"hbsc-go/packages/compiler/src/util"
)

var log = commonlog.GetLogger("hbsc.pipeline")

// KeywordCategory is the syntactic category a keyword table applies to
type KeywordCategory int

const (
	// KeywordCategoryCall - sub-expressions and attribute mustaches
	KeywordCategoryCall KeywordCategory = iota
	// KeywordCategoryAppend - content mustaches
	KeywordCategoryAppend
	// KeywordCategoryBlock - block invocations
	KeywordCategoryBlock
	// KeywordCategoryModifier - element modifiers
	KeywordCategoryModifier
)

// String returns the category name
func (c KeywordCategory) String() string {
	switch c {
	case KeywordCategoryCall:
		return "Call"
	case KeywordCategoryAppend:
		return "Append"
	case KeywordCategoryBlock:
		return "Block"
	case KeywordCategoryModifier:
		return "Modifier"
	}
	return "Unknown"
}

// errNotApplicable is returned by an assert step to pass the node on to the
// next keyword of the table.
var errNotApplicable = errors.New("keyword not applicable")

// NotApplicable is the assert result that skips to the next keyword
func NotApplicable[V any]() util.Result[V] {
	return util.Err[V](errNotApplicable)
}

// Keyword recognizes one reserved form of node type N and lowers it to Out
type Keyword[N syntax.CallNode, Out any] interface {
	Name() string
	// Translate returns false when the node is not this keyword
	Translate(node N, state *NormalizationState) (util.Result[Out], bool)
}

type keyword[N syntax.CallNode, V any, Out any] struct {
	name      string
	assert    func(node N, state *NormalizationState) util.Result[V]
	translate func(node N, state *NormalizationState, validated V) util.Result[Out]
}

// DefineKeyword builds a keyword from its assert and translate steps. assert
// validates the shape of the node; translate lowers the validated shape.
func DefineKeyword[N syntax.CallNode, V any, Out any](
	name string,
	assert func(node N, state *NormalizationState) util.Result[V],
	translate func(node N, state *NormalizationState, validated V) util.Result[Out],
) Keyword[N, Out] {
	return &keyword[N, V, Out]{name: name, assert: assert, translate: translate}
}

func (k *keyword[N, V, Out]) Name() string {
	return k.name
}

func (k *keyword[N, V, Out]) Translate(node N, state *NormalizationState) (util.Result[Out], bool) {
	matched, err := matchesKeyword(node.CalleeExpr(), k.name, state)
	if err != nil {
		return util.Err[Out](err), true
	}
	if !matched {
		return util.Result[Out]{}, false
	}
	validated := k.assert(node, state)
	if errors.Is(validated.Error(), errNotApplicable) {
		return util.Result[Out]{}, false
	}
	log.Debugf("matched keyword %q", k.name)
	return util.AndThen(validated, func(v V) util.Result[Out] {
		return k.translate(node, state, v)
	}), true
}

// matchesKeyword reports whether callee names the keyword: a free variable
// path without tail. A local of the same name shadows the keyword.
func matchesKeyword(callee syntax.Expression, name string, state *NormalizationState) (bool, error) {
	path, ok := callee.(*syntax.PathExpression)
	if !ok {
		return false, nil
	}
	head, ok := path.Head.(syntax.VarHead)
	if !ok || head.Name != name || state.scope.Has(name) {
		return false, nil
	}
	if len(path.Tail) > 0 {
		if state.IsStrict() {
			return false, util.NewParseErrorf(path.Loc,
				"The `%s` keyword was used incorrectly. It was used as `%s`, but it cannot be used with additional path segments.",
				name, path.Original)
		}
		return false, nil
	}
	return true, nil
}

// Keywords is an ordered table of keywords for one category. The first
// keyword that accepts a node wins.
type Keywords[N syntax.CallNode, Out any] struct {
	category KeywordCategory
	list     []Keyword[N, Out]
}

// NewKeywords creates an empty table
func NewKeywords[N syntax.CallNode, Out any](category KeywordCategory) *Keywords[N, Out] {
	return &Keywords[N, Out]{category: category}
}

// Kw registers a keyword after the existing ones
func (k *Keywords[N, Out]) Kw(kw Keyword[N, Out]) *Keywords[N, Out] {
	k.list = append(k.list, kw)
	return k
}

// Category returns the table's category
func (k *Keywords[N, Out]) Category() KeywordCategory {
	return k.category
}

// Names returns the registered names in registration order
func (k *Keywords[N, Out]) Names() []string {
	names := make([]string, len(k.list))
	for i, kw := range k.list {
		names[i] = kw.Name()
	}
	return names
}

// Translate runs the first keyword that accepts node
func (k *Keywords[N, Out]) Translate(node N, state *NormalizationState) (util.Result[Out], bool) {
	if k == nil {
		return util.Result[Out]{}, false
	}
	for _, kw := range k.list {
		if result, ok := kw.Translate(node, state); ok {
			return result, true
		}
	}
	return util.Result[Out]{}, false
}

// KeywordSet holds one table per category
type KeywordSet struct {
	Call     *Keywords[syntax.CallNode, ir.Expression]
	Append   *Keywords[*syntax.MustacheStatement, ir.Statement]
	Block    *Keywords[*syntax.BlockStatement, ir.Statement]
	Modifier *Keywords[*syntax.ElementModifierStatement, ir.ElementParameter]
}

// Built-in keyword tables, in registration order
var (
	CallKeywords     *Keywords[syntax.CallNode, ir.Expression]
	AppendKeywords   *Keywords[*syntax.MustacheStatement, ir.Statement]
	BlockKeywords    *Keywords[*syntax.BlockStatement, ir.Statement]
	ModifierKeywords *Keywords[*syntax.ElementModifierStatement, ir.ElementParameter]
)

// DefaultKeywords is the built-in keyword set
var DefaultKeywords *KeywordSet

// Translate steps reach DefaultKeywords through normalization, so the tables
// are assigned in init.
func init() {
	CallKeywords = callKeywords()
	AppendKeywords = appendKeywords()
	BlockKeywords = blockKeywords()
	ModifierKeywords = NewKeywords[*syntax.ElementModifierStatement, ir.ElementParameter](KeywordCategoryModifier)
	DefaultKeywords = &KeywordSet{
		Call:     CallKeywords,
		Append:   AppendKeywords,
		Block:    BlockKeywords,
		Modifier: ModifierKeywords,
	}
}

// Shared assert helpers

func noNamed(node syntax.CallNode, message string) error {
	if hash := node.HashArgs(); !hash.IsEmpty() {
		return util.NewParseError(hash.SourceSpan(), message)
	}
	return nil
}

func namedExcept(node syntax.CallNode, allowed []string, format string) error {
	hash := node.HashArgs()
	if hash.IsEmpty() {
		return nil
	}
	for _, pair := range hash.Pairs {
		if !contains(allowed, pair.Key) {
			return util.NewParseError(pair.Loc, fmt.Sprintf(format, pair.Key)+util.DidYouMean(pair.Key, allowed))
		}
	}
	return nil
}

func contains(list []string, item string) bool {
	for _, entry := range list {
		if entry == item {
			return true
		}
	}
	return false
}
