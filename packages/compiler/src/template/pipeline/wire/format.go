package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Tuple is one wire statement or expression: an Opcode followed by operands.
// Operands are nested Tuples, []interface{} lists, slot numbers or literal
// scalars. A nil operand is written as null.
type Tuple []interface{}

// Op returns the opcode of the tuple
func (t Tuple) Op() Opcode {
	if len(t) == 0 {
		return 0
	}
	op, _ := t[0].(Opcode)
	return op
}

// SerializedInlineBlock is a block body together with its block param slots
type SerializedInlineBlock struct {
	Statements []Tuple
	Parameters []int
}

// Tuple returns the `[statements, parameters]` form
func (b *SerializedInlineBlock) Tuple() []interface{} {
	return []interface{}{statementList(b.Statements), intList(b.Parameters)}
}

// MarshalJSON implements json.Marshaler
func (b *SerializedInlineBlock) MarshalJSON() ([]byte, error) {
	return Marshal(b.Tuple())
}

// SerializedTemplateBlock is the compiled unit of one template
type SerializedTemplateBlock struct {
	Statements []Tuple
	Symbols    []string
	HasEval    bool
	Upvars     []string
}

// Tuple returns the `[statements, symbols, hasEval, upvars]` form. Empty lists
// are written as [] rather than null.
func (b *SerializedTemplateBlock) Tuple() []interface{} {
	return []interface{}{statementList(b.Statements), stringList(b.Symbols), b.HasEval, stringList(b.Upvars)}
}

// MarshalJSON implements json.Marshaler
func (b *SerializedTemplateBlock) MarshalJSON() ([]byte, error) {
	return Marshal(b.Tuple())
}

// UnmarshalJSON implements json.Unmarshaler. Statements are decoded as
// generic JSON values; numbers in them become float64.
func (b *SerializedTemplateBlock) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("wire: template block: %w", err)
	}
	if len(raw) != 4 {
		return fmt.Errorf("wire: template block: expected 4 elements, got %d", len(raw))
	}
	var statements [][]interface{}
	if err := json.Unmarshal(raw[0], &statements); err != nil {
		return fmt.Errorf("wire: template block statements: %w", err)
	}
	var out SerializedTemplateBlock
	for _, stmt := range statements {
		out.Statements = append(out.Statements, Tuple(stmt))
	}
	if err := json.Unmarshal(raw[1], &out.Symbols); err != nil {
		return fmt.Errorf("wire: template block symbols: %w", err)
	}
	if err := json.Unmarshal(raw[2], &out.HasEval); err != nil {
		return fmt.Errorf("wire: template block hasEval: %w", err)
	}
	if err := json.Unmarshal(raw[3], &out.Upvars); err != nil {
		return fmt.Errorf("wire: template block upvars: %w", err)
	}
	*b = out
	return nil
}

// Marshal writes v as compact JSON without HTML escaping, so template markup
// survives unchanged.
func Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func statementList(statements []Tuple) []Tuple {
	if statements == nil {
		return []Tuple{}
	}
	return statements
}

func stringList(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func intList(items []int) []int {
	if items == nil {
		return []int{}
	}
	return items
}
