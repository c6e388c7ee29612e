package wasm

// Local declares N consecutive locals of type Type. The code section's
// run-length encoding relies on the caller grouping adjacent locals of
// the same type into one Local; the encoder emits exactly the groups it
// is given and does not coalesce them itself.
type Local struct {
	N    uint32
	Type ValueType
}

// Code is a function body: its additional locals (beyond its
// parameters, which are already implied by the function's type) and its
// instruction sequence.
type Code struct {
	Locals []Local
	Body   Expr
}
