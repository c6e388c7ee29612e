package wasm

import "github.com/wasmforge/wasmforge/leb128"

// BlockType is the result signature of a block, loop, or if instruction.
// The binary format packs three unrelated shapes into the same LEB128
// slot: the empty marker, a single value type, or a signed type index
// naming a function type in the type section (the multi-value case).
// Rather than ask callers to reason about that overlap, BlockType is
// opaque and built through the three constructors below.
type BlockType struct {
	kind blockTypeKind
	val  ValueType
	idx  TypeIdx
}

type blockTypeKind int

const (
	blockTypeKindEmpty blockTypeKind = iota
	blockTypeKindValue
	blockTypeKindIndex
)

// EmptyBlockType is a block that produces no result.
func EmptyBlockType() BlockType {
	return BlockType{kind: blockTypeKindEmpty}
}

// ValueBlockType is a block that produces a single result of type v.
func ValueBlockType(v ValueType) BlockType {
	return BlockType{kind: blockTypeKindValue, val: v}
}

// FuncBlockType is a block whose parameters and results are those of the
// function type at idx. This is the multi-value form and requires the
// referenced type to already exist in the module's type section.
func FuncBlockType(idx TypeIdx) BlockType {
	return BlockType{kind: blockTypeKindIndex, idx: idx}
}

// Bytes returns the binary encoding of bt: 0x40 for the empty case, the
// bare value-type tag for a single result, or the signed LEB128 encoding
// of the referenced type index for the multi-value case.
func (bt BlockType) Bytes() []byte {
	switch bt.kind {
	case blockTypeKindValue:
		return []byte{bt.val}
	case blockTypeKindIndex:
		// The core spec encodes a block's multi-value type as a signed
		// LEB128 s33; every type index we produce fits comfortably in
		// an int64, so EncodeInt64 is the shortest legal form here too.
		return leb128.EncodeInt64(int64(bt.idx))
	default:
		return []byte{BlockTypeEmptyTag}
	}
}

// MemArg is the alignment hint and byte offset attached to every memory
// load and store instruction. Align is expressed as the exponent of a
// power of two (so 2 means "aligned to 4 bytes"), matching the binary
// encoding directly; it affects only performance hints an engine may use
// and never the semantics of the access.
type MemArg struct {
	Align  uint32
	Offset uint32
}
