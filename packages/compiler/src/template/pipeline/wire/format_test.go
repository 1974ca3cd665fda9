package wire_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"hbsc-go/packages/compiler/src/template/pipeline/wire"
)

func sampleBlock() *wire.SerializedTemplateBlock {
	return &wire.SerializedTemplateBlock{
		Statements: []wire.Tuple{
			{wire.OpAppend, "<b>"},
			{wire.OpAppend, wire.Tuple{wire.OpGetSymbol, 1}},
		},
		Symbols: []string{"@title"},
		Upvars:  []string{"t"},
	}
}

func TestMarshal(t *testing.T) {
	t.Run("should write empty lists as arrays", func(t *testing.T) {
		got, err := wire.Marshal(&wire.SerializedTemplateBlock{})
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if diff := cmp.Diff(`[[],[],false,[]]`, string(got)); diff != "" {
			t.Errorf("Marshal() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should keep markup unescaped", func(t *testing.T) {
		got, err := wire.Marshal(sampleBlock())
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		want := `[[[1,"<b>"],[1,[30,1]]],["@title"],false,["t"]]`
		if diff := cmp.Diff(want, string(got)); diff != "" {
			t.Errorf("Marshal() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should write inline blocks as statements and parameters", func(t *testing.T) {
		got, err := wire.Marshal(&wire.SerializedInlineBlock{})
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if diff := cmp.Diff(`[[],[]]`, string(got)); diff != "" {
			t.Errorf("Marshal() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestUnmarshalJSON(t *testing.T) {
	t.Run("should read back symbols, eval flag and upvars", func(t *testing.T) {
		var got wire.SerializedTemplateBlock
		if err := got.UnmarshalJSON([]byte(`[[[1,"hi"]],["&default"],true,["x"]]`)); err != nil {
			t.Fatalf("UnmarshalJSON() error = %v", err)
		}
		want := wire.SerializedTemplateBlock{
			Statements: []wire.Tuple{{float64(1), "hi"}},
			Symbols:    []string{"&default"},
			HasEval:    true,
			Upvars:     []string{"x"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("UnmarshalJSON() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should reject blocks of the wrong arity", func(t *testing.T) {
		var got wire.SerializedTemplateBlock
		if err := got.UnmarshalJSON([]byte(`[[],[]]`)); err == nil {
			t.Errorf("UnmarshalJSON() error = nil, want an error")
		}
	})
}

func TestCBOR(t *testing.T) {
	t.Run("should encode equal blocks to equal bytes", func(t *testing.T) {
		first, err := wire.MarshalCanonicalCBOR(sampleBlock())
		if err != nil {
			t.Fatalf("MarshalCanonicalCBOR() error = %v", err)
		}
		second, err := wire.MarshalCanonicalCBOR(sampleBlock())
		if err != nil {
			t.Fatalf("MarshalCanonicalCBOR() error = %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("MarshalCanonicalCBOR() not deterministic: %x != %x", first, second)
		}
	})

	t.Run("should decode to the tuple form", func(t *testing.T) {
		data, err := wire.MarshalCanonicalCBOR(&wire.SerializedTemplateBlock{Symbols: []string{"a"}})
		if err != nil {
			t.Fatalf("MarshalCanonicalCBOR() error = %v", err)
		}
		got, err := wire.UnmarshalCBOR(data)
		if err != nil {
			t.Fatalf("UnmarshalCBOR() error = %v", err)
		}
		want := []interface{}{[]interface{}{}, []interface{}{"a"}, false, []interface{}{}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("UnmarshalCBOR() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestOpcode(t *testing.T) {
	t.Run("should name opcodes", func(t *testing.T) {
		if got := wire.OpInElement.String(); got != "InElement" {
			t.Errorf("String() = %q, want InElement", got)
		}
		if got := wire.Opcode(99).String(); got != "Unknown" {
			t.Errorf("String() = %q, want Unknown", got)
		}
	})

	t.Run("should classify free lookups", func(t *testing.T) {
		for _, op := range []wire.Opcode{wire.OpGetStrictFree, wire.OpGetFreeAsFallback, wire.OpGetFreeAsComponentHead} {
			if !op.IsFreeLookup() {
				t.Errorf("%v.IsFreeLookup() = false, want true", op)
			}
		}
		for _, op := range []wire.Opcode{wire.OpGetSymbol, wire.OpInElement} {
			if op.IsFreeLookup() {
				t.Errorf("%v.IsFreeLookup() = true, want false", op)
			}
		}
	})
}
