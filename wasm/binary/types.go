package binary

import (
	"github.com/wasmforge/wasmforge/leb128"
	"github.com/wasmforge/wasmforge/wasm"
)

const (
	funcTypeTag byte = 0x60
	tableTag    byte = 0x70

	limitsNoMax byte = 0x00
	limitsMax   byte = 0x01

	globalImmutable byte = 0x00
	globalMutable   byte = 0x01
)

func encodeValueType(v wasm.ValueType) []byte { return []byte{v} }

func encodeLimits(l wasm.Limits) []byte {
	if l.Max == nil {
		out := []byte{limitsNoMax}
		return append(out, leb128.EncodeUint32(l.Min)...)
	}
	out := []byte{limitsMax}
	out = append(out, leb128.EncodeUint32(l.Min)...)
	out = append(out, leb128.EncodeUint32(*l.Max)...)
	return out
}

func encodeResultType(types []wasm.ValueType) []byte {
	out := leb128.EncodeUint32(uint32(len(types)))
	for _, t := range types {
		out = append(out, t)
	}
	return out
}

func encodeFunctionType(ft wasm.FunctionType) []byte {
	out := []byte{funcTypeTag}
	out = append(out, encodeResultType(ft.Params)...)
	out = append(out, encodeResultType(ft.Results)...)
	return out
}

func encodeTableType(t wasm.TableType) []byte {
	out := []byte{tableTag}
	return append(out, encodeLimits(t.Limits)...)
}

func encodeMemoryType(m wasm.MemoryType) []byte {
	return encodeLimits(m.Limits)
}

// encodeGlobalType is one of the three Open-Question fixes relative to the
// Rust original, which swapped these two bytes: immutable is 0x00 and
// mutable is 0x01, matching the Wasm core spec.
func encodeGlobalType(g wasm.GlobalType) []byte {
	out := []byte{g.ValType}
	if g.Mutable {
		out = append(out, globalMutable)
	} else {
		out = append(out, globalImmutable)
	}
	return out
}
