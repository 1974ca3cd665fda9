package ir

import (
	"hbsc-go/packages/compiler/src/util"
)

// Positional is the ordered list of positional arguments of a call
type Positional struct {
	SourceSpan *util.ParseSourceSpan
	List       util.OptionalList[Expression]
}

// NewPositional creates a Positional from a slice of expressions
func NewPositional(list []Expression, sourceSpan *util.ParseSourceSpan) *Positional {
	return &Positional{SourceSpan: sourceSpan, List: util.NewOptionalList(list)}
}

// EmptyPositional creates a Positional with no arguments
func EmptyPositional(sourceSpan *util.ParseSourceSpan) *Positional {
	return &Positional{SourceSpan: sourceSpan, List: util.EmptyList[Expression]()}
}

// IsEmpty reports whether there are no positional arguments
func (p *Positional) IsEmpty() bool {
	return p == nil || p.List.IsEmpty()
}

// NamedArgument is one `key=value` pair. Keys of component arguments keep their `@`.
type NamedArgument struct {
	SourceSpan *util.ParseSourceSpan
	Key        string
	Value      Expression
}

// NewNamedArgument creates a NamedArgument
func NewNamedArgument(key string, value Expression, sourceSpan *util.ParseSourceSpan) *NamedArgument {
	return &NamedArgument{SourceSpan: sourceSpan, Key: key, Value: value}
}

// NamedArguments is the ordered list of named arguments of a call. Keys are unique.
type NamedArguments struct {
	SourceSpan *util.ParseSourceSpan
	Entries    util.OptionalList[*NamedArgument]
}

// NewNamedArguments creates NamedArguments from a slice of entries
func NewNamedArguments(entries []*NamedArgument, sourceSpan *util.ParseSourceSpan) *NamedArguments {
	return &NamedArguments{SourceSpan: sourceSpan, Entries: util.NewOptionalList(entries)}
}

// EmptyNamedArguments creates NamedArguments with no entries
func EmptyNamedArguments(sourceSpan *util.ParseSourceSpan) *NamedArguments {
	return &NamedArguments{SourceSpan: sourceSpan, Entries: util.EmptyList[*NamedArgument]()}
}

// IsEmpty reports whether there are no named arguments
func (n *NamedArguments) IsEmpty() bool {
	return n == nil || n.Entries.IsEmpty()
}

// Get returns the entry with the given key
func (n *NamedArguments) Get(key string) (*NamedArgument, bool) {
	if n == nil {
		return nil, false
	}
	for _, entry := range n.Entries.Items() {
		if entry.Key == key {
			return entry, true
		}
	}
	return nil, false
}

// Args holds both kinds of arguments of a call
type Args struct {
	SourceSpan *util.ParseSourceSpan
	Positional *Positional
	Named      *NamedArguments
}

// NewArgs creates Args
func NewArgs(positional *Positional, named *NamedArguments, sourceSpan *util.ParseSourceSpan) *Args {
	return &Args{SourceSpan: sourceSpan, Positional: positional, Named: named}
}

// EmptyArgs creates Args with no arguments
func EmptyArgs(sourceSpan *util.ParseSourceSpan) *Args {
	return NewArgs(EmptyPositional(sourceSpan), EmptyNamedArguments(sourceSpan), sourceSpan)
}

// IsEmpty reports whether there are no arguments at all
func (a *Args) IsEmpty() bool {
	return a == nil || (a.Positional.IsEmpty() && a.Named.IsEmpty())
}

// NamedBlock is the body of a block passed to an invocation under a name
type NamedBlock struct {
	SourceSpan *util.ParseSourceSpan
	Name       string
	Body       []Statement
	// Parameters are the slots of the block params, in declaration order
	Parameters []int
}

// NewNamedBlock creates a NamedBlock
func NewNamedBlock(name string, body []Statement, parameters []int, sourceSpan *util.ParseSourceSpan) *NamedBlock {
	return &NamedBlock{SourceSpan: sourceSpan, Name: name, Body: body, Parameters: parameters}
}

// NamedBlocks is the set of blocks passed to an invocation. Names are unique.
type NamedBlocks struct {
	SourceSpan *util.ParseSourceSpan
	Blocks     util.OptionalList[*NamedBlock]
}

// NewNamedBlocks creates NamedBlocks
func NewNamedBlocks(blocks []*NamedBlock, sourceSpan *util.ParseSourceSpan) *NamedBlocks {
	return &NamedBlocks{SourceSpan: sourceSpan, Blocks: util.NewOptionalList(blocks)}
}

// Get returns the block with the given name
func (n *NamedBlocks) Get(name string) (*NamedBlock, bool) {
	if n == nil {
		return nil, false
	}
	for _, block := range n.Blocks.Items() {
		if block.Name == name {
			return block, true
		}
	}
	return nil, false
}

// ElementParameters is the ordered list of attributes, modifiers and splats of an element
type ElementParameters struct {
	SourceSpan *util.ParseSourceSpan
	Body       util.OptionalList[ElementParameter]
}

// NewElementParameters creates ElementParameters
func NewElementParameters(body []ElementParameter, sourceSpan *util.ParseSourceSpan) *ElementParameters {
	return &ElementParameters{SourceSpan: sourceSpan, Body: util.NewOptionalList(body)}
}
