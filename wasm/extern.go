package wasm

// ExternKind classifies an entry of the import or export section.
//
// See https://webassembly.github.io/spec/core/binary/modules.html#import-section
type ExternKind = byte

const (
	ExternKindFunc   ExternKind = 0x00
	ExternKindTable  ExternKind = 0x01
	ExternKindMemory ExternKind = 0x02
	ExternKindGlobal ExternKind = 0x03
)

// Import declares a single entity a module expects its host to supply,
// named by Module.Name (two-level namespace). Exactly one of the Desc*
// fields is meaningful, selected by Kind: a function import carries only
// the index of its signature in the type section, while table, memory,
// and global imports carry the full type being imported.
type Import struct {
	Module string
	Name   string
	Kind   ExternKind

	DescFunc   TypeIdx
	DescTable  TableType
	DescMemory MemoryType
	DescGlobal GlobalType
}

// Export makes a module-defined entity visible to the host under Name.
// Unlike Import, an export never carries a type: Index always refers to
// an entity the module itself already declared in the index space
// selected by Kind.
type Export struct {
	Name  string
	Kind  ExternKind
	Index Index
}
