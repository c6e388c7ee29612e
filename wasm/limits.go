package wasm

// Limits bounds a table's or memory's size. Max, when present, must be
// greater than or equal to Min; the encoder does not check this.
//
// See https://webassembly.github.io/spec/core/binary/types.html#limits
type Limits struct {
	Min uint32
	Max *uint32
}

// TableType is the type of a table: an array of funcref, sized by Limits.
// The MVP allows at most one table per module.
type TableType struct {
	Limits Limits
}

// MemoryType is the type of a linear memory, sized by Limits in units of
// 64KiB pages. The MVP allows at most one memory per module.
type MemoryType struct {
	Limits Limits
}

// FunctionType is a function signature: an ordered list of parameter
// types and an ordered list of result types. Multiple result types
// require the multi-value extension; this encoder emits them
// unconditionally regardless of which extensions the consuming engine
// supports.
type FunctionType struct {
	Params  []ValueType
	Results []ValueType
}

// GlobalType is the type of a global variable: its value type plus
// whether it can be mutated after initialization.
type GlobalType struct {
	ValType ValueType
	Mutable bool
}
