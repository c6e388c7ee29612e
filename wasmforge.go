// Package wasmforge builds WebAssembly binary modules programmatically.
// A caller constructs a *wasm.Module by direct field assignment — there
// is no builder or functional-options layer — and calls Encode or Write
// once to produce the standard Wasm MVP binary format.
package wasmforge

import (
	"io"

	"github.com/wasmforge/wasmforge/wasm"
	"github.com/wasmforge/wasmforge/wasm/binary"
)

// NewModule returns an empty module. Encoding it immediately produces
// the 8-byte preamble with no sections: a minimal, if useless, valid
// Wasm binary.
func NewModule() *wasm.Module {
	return &wasm.Module{}
}

// Encode serializes m to the Wasm MVP binary format.
func Encode(m *wasm.Module) []byte {
	return binary.Encode(m)
}

// Write encodes m and writes it to w, propagating any I/O failure from
// the sink.
func Write(m *wasm.Module, w io.Writer) error {
	return binary.Write(m, w)
}
