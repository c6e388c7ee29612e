package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmforge/wasmforge/wasm"
)

func TestEncodeLimits(t *testing.T) {
	require.Equal(t, []byte{0x00, 0x00}, encodeLimits(wasm.Limits{Min: 0}))
	max := uint32(1)
	require.Equal(t, []byte{0x01, 0x00, 0x01}, encodeLimits(wasm.Limits{Min: 0, Max: &max}))
}

func TestEncodeFunctionType(t *testing.T) {
	ft := wasm.FunctionType{
		Params:  []wasm.ValueType{wasm.ValueTypeF32, wasm.ValueTypeF32},
		Results: []wasm.ValueType{wasm.ValueTypeF32},
	}
	require.Equal(t, []byte{0x60, 0x02, 0x7d, 0x7d, 0x01, 0x7d}, encodeFunctionType(ft))
}

func TestEncodeTableType(t *testing.T) {
	max := uint32(10)
	tt := wasm.TableType{Limits: wasm.Limits{Min: 1, Max: &max}}
	require.Equal(t, []byte{0x70, 0x01, 0x01, 0x0a}, encodeTableType(tt))
}

func TestEncodeGlobalTypeMutabilityByte(t *testing.T) {
	// Open-Question fix: immutable is 0x00, mutable is 0x01 — the Rust
	// original had these two swapped.
	require.Equal(t, []byte{wasm.ValueTypeI32, 0x00},
		encodeGlobalType(wasm.GlobalType{ValType: wasm.ValueTypeI32, Mutable: false}))
	require.Equal(t, []byte{wasm.ValueTypeI32, 0x01},
		encodeGlobalType(wasm.GlobalType{ValType: wasm.ValueTypeI32, Mutable: true}))
}
