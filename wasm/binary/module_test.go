package binary

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmforge/wasmforge/leb128"
	"github.com/wasmforge/wasmforge/wasm"
)

func TestEncodeEmptyModule(t *testing.T) {
	got := Encode(&wasm.Module{})
	require.Equal(t, []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}, got)
}

func TestEncodeAdderModule(t *testing.T) {
	m := &wasm.Module{
		Types: []wasm.FunctionType{{
			Params:  []wasm.ValueType{wasm.ValueTypeF32, wasm.ValueTypeF32},
			Results: []wasm.ValueType{wasm.ValueTypeF32},
		}},
		Functions: []wasm.TypeIdx{0},
		Exports:   []wasm.Export{{Name: "add", Kind: wasm.ExternKindFunc, Index: 0}},
		Codes: []wasm.Code{{
			Body: wasm.Expr{wasm.LocalGet(0), wasm.LocalGet(1), wasm.F32Add()},
		}},
	}

	expected := []byte{
		0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
		0x01, 0x07, 0x01, 0x60, 0x02, 0x7d, 0x7d, 0x01, 0x7d,
		0x03, 0x02, 0x01, 0x00,
		0x07, 0x07, 0x01, 0x03, 0x61, 0x64, 0x64, 0x00, 0x00,
		0x0a, 0x09, 0x01, 0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x92, 0x0b,
	}
	require.Equal(t, expected, Encode(m))
}

func TestEncodeMemorySection(t *testing.T) {
	max := uint32(1)
	m := &wasm.Module{Memories: []wasm.MemoryType{{Limits: wasm.Limits{Min: 0, Max: &max}}}}
	got := Encode(m)
	require.Equal(t, []byte{
		0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
		0x05, 0x04, 0x01, 0x01, 0x00, 0x01,
	}, got)
}

func TestEncodeGlobalSection(t *testing.T) {
	m := &wasm.Module{Globals: []wasm.Global{{
		Type: wasm.GlobalType{ValType: wasm.ValueTypeI32, Mutable: false},
		Init: wasm.Expr{wasm.I32Const(42)},
	}}}
	got := Encode(m)
	require.Equal(t, []byte{
		0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
		0x06, 0x06, 0x01, 0x7f, 0x00, 0x41, 0x2a, 0x0b,
	}, got)
}

func TestEncodeEmptySectionsOmitted(t *testing.T) {
	m := &wasm.Module{Types: []wasm.FunctionType{{}}}
	got := Encode(m)
	// Only the (non-empty) type section should appear; every other
	// section id must be absent from the section headers. Payload bytes
	// can equal a section id, so walk the frames rather than scan bytes.
	var ids []wasm.SectionID
	for rest := got[8:]; len(rest) > 0; {
		size, n, err := leb128.LoadUint32(rest[1:])
		require.NoError(t, err)
		ids = append(ids, rest[0])
		rest = rest[1+int(n)+int(size):]
	}
	for _, id := range []wasm.SectionID{
		wasm.SectionImport, wasm.SectionFunction, wasm.SectionTable,
		wasm.SectionMemory, wasm.SectionGlobal, wasm.SectionExport,
		wasm.SectionStart, wasm.SectionElement, wasm.SectionCode, wasm.SectionData,
	} {
		require.NotContains(t, ids, id, "section %d must be omitted when empty", id)
	}
}

func TestEncodeStartSectionUsesID8(t *testing.T) {
	idx := wasm.FuncIdx(0)
	m := &wasm.Module{
		Types:     []wasm.FunctionType{{}},
		Functions: []wasm.TypeIdx{0},
		Codes:     []wasm.Code{{Body: wasm.Expr{}}},
		Start:     &idx,
	}
	got := Encode(m)
	// Locate the start section: it must carry id 8, not the export
	// section's id 7 — the Open-Question bug in the Rust original.
	require.Contains(t, string(got), string([]byte{wasm.SectionStart, 0x01, 0x00}))
}

func TestWritePropagatesSinkError(t *testing.T) {
	err := Write(&wasm.Module{}, failingWriter{})
	require.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, bytes.ErrTooLarge }
