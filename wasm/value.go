package wasm

// ValueType describes a numeric type used in WebAssembly 1.0 (MVP).
// Function parameters, function results, globals, and locals are all
// definable only as a value type.
//
// See https://webassembly.github.io/spec/core/binary/types.html#value-types
type ValueType = byte

const (
	// ValueTypeI32 is a 32-bit integer.
	ValueTypeI32 ValueType = 0x7f
	// ValueTypeI64 is a 64-bit integer.
	ValueTypeI64 ValueType = 0x7e
	// ValueTypeF32 is a 32-bit floating point number.
	ValueTypeF32 ValueType = 0x7d
	// ValueTypeF64 is a 64-bit floating point number.
	ValueTypeF64 ValueType = 0x7c
)

// ValueTypeName returns the Wasm text-format name of t, or "unknown" for an
// undefined value.
func ValueTypeName(t ValueType) string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	default:
		return "unknown"
	}
}

// ElemTypeFuncref is the sole MVP table element type: an opaque reference
// to a function.
const ElemTypeFuncref = 0x70
