package wasm

// Index is a zero-based reference into one of a module's index spaces
// (functions, tables, memories, globals, types, or locals). All of these
// are the same underlying 32-bit value on the wire; the named aliases
// below exist only to document which index space a field refers to.
type Index = uint32

type (
	// FuncIdx indexes the function index space (imported functions first,
	// then module-defined functions).
	FuncIdx = Index
	// TypeIdx indexes the type section.
	TypeIdx = Index
	// TableIdx indexes the table index space. The MVP allows at most one.
	TableIdx = Index
	// MemoryIdx indexes the memory index space. The MVP allows at most one.
	MemoryIdx = Index
	// GlobalIdx indexes the global index space.
	GlobalIdx = Index
	// LocalIdx indexes a function's own locals, including its parameters.
	LocalIdx = Index
	// LabelIdx indexes a branch target, counted outward from the
	// innermost enclosing block.
	LabelIdx = Index
)
