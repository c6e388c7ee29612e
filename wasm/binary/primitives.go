// Package binary serializes an in-memory wasm.Module to the standard
// WebAssembly MVP binary format: the section framing, the per-element
// encoders, and the magic/version prologue. The wasm package is pure
// data; this package is the one place that turns that data into bytes.
package binary

import "github.com/wasmforge/wasmforge/leb128"

// byteVector returns the length-prefixed encoding of b: an unsigned
// LEB128 byte count followed by the raw bytes.
func byteVector(b []byte) []byte {
	out := leb128.EncodeUint32(uint32(len(b)))
	return append(out, b...)
}

// name encodes a name as a byte vector of its UTF-8 representation. The
// length prefix is the number of bytes, not the number of runes — a
// three-byte UTF-8 sequence contributes 3 to the count, not 1.
func name(s string) []byte {
	return byteVector([]byte(s))
}
