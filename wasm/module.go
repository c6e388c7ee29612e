package wasm

// SectionID identifies one of the twelve sections of a Wasm binary
// module, in their fixed canonical order.
//
// See https://webassembly.github.io/spec/core/binary/modules.html#sections
type SectionID = byte

const (
	SectionCustom   SectionID = 0
	SectionType     SectionID = 1
	SectionImport   SectionID = 2
	SectionFunction SectionID = 3
	SectionTable    SectionID = 4
	SectionMemory   SectionID = 5
	SectionGlobal   SectionID = 6
	SectionExport   SectionID = 7
	SectionStart    SectionID = 8
	SectionElement  SectionID = 9
	SectionCode     SectionID = 10
	SectionData     SectionID = 11
)

// CustomSection is a named, opaque byte payload. Engines that don't
// recognize Name are required to skip it; it carries no executable
// semantics of its own (debug info, name sections, and similar
// producer metadata all ride in here).
type CustomSection struct {
	Name    string
	Payload []byte
}

// Module is the in-memory form of a complete Wasm binary module: one
// slice per section, assembled in the order the binary format always
// encodes them in regardless of the order a caller populates this
// struct's fields in. A Module with every slice empty and Start nil
// still encodes to a valid (if useless) module: the 8-byte preamble
// with no sections at all.
type Module struct {
	Types     []FunctionType
	Imports   []Import
	Functions []TypeIdx // one per defined (non-imported) function, indexing Types
	Tables    []TableType
	Memories  []MemoryType
	Globals   []Global
	Exports   []Export
	Start     *FuncIdx
	Elements  []ElementSegment
	Codes     []Code // parallel to Functions: Codes[i] is the body of Functions[i]
	Data      []DataSegment

	// Customs are custom sections, emitted after every standard section
	// in the order given. The binary format allows custom sections
	// anywhere in the stream, but this encoder never inserts one on its
	// own, so a fixed trailing position is all a caller needs.
	Customs []CustomSection
}
