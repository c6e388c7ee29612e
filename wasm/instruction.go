package wasm

import "github.com/wasmforge/wasmforge/leb128"

// Instruction is one element of an instruction sequence. Most
// instructions are a bare opcode or an opcode plus a single pre-encoded
// immediate (an index, a memarg, a constant); those are represented
// directly by the Opcode/Immediate pair. The structured control
// instructions (block, loop, if) additionally carry nested instruction
// sequences and are represented by a non-nil Block.
type Instruction struct {
	Opcode byte

	// Prefixed is true for the 0xFC-prefixed saturating truncation
	// family: Opcode is always OpcodeTruncSatPrefix and SubOpcode holds
	// the trailing unsigned LEB128 sub-opcode.
	Prefixed  bool
	SubOpcode byte

	// Immediate is the already-encoded trailing operand bytes, if any
	// (a LEB128 index or constant, a memarg, a br_table vector). It is
	// empty for opcodes that take no immediate.
	Immediate []byte

	// Block is non-nil only for block, loop, and if; it carries the
	// block's result type and nested body, which the top-level Expr
	// sequence does not otherwise express.
	Block *BlockBody
}

// BlockBody is the nested structure of a block, loop, or if instruction.
// Else is nil unless the instruction is an if with an else arm.
type BlockBody struct {
	Type BlockType
	Then Expr
	Else Expr
}

// Expr is a sequence of instructions, always implicitly terminated by an
// end opcode when encoded. It is used both for function bodies and for
// the constant initializer expressions of globals, element segments, and
// data segments.
type Expr []Instruction

func simple(op byte) Instruction { return Instruction{Opcode: op} }

func withImm(op byte, imm []byte) Instruction {
	return Instruction{Opcode: op, Immediate: imm}
}

// Control instructions.

// Unreachable traps unconditionally when executed.
func Unreachable() Instruction { return simple(OpcodeUnreachable) }

// Nop does nothing.
func Nop() Instruction { return simple(OpcodeNop) }

// Block executes body as a branch target labeled by its own end.
func Block(bt BlockType, body Expr) Instruction {
	return Instruction{Opcode: OpcodeBlock, Block: &BlockBody{Type: bt, Then: body}}
}

// Loop executes body as a branch target labeled by its own start.
func Loop(bt BlockType, body Expr) Instruction {
	return Instruction{Opcode: OpcodeLoop, Block: &BlockBody{Type: bt, Then: body}}
}

// If executes then if the top-of-stack i32 is non-zero, otherwise els
// (which may be nil for an if with no else arm).
func If(bt BlockType, then, els Expr) Instruction {
	return Instruction{Opcode: OpcodeIf, Block: &BlockBody{Type: bt, Then: then, Else: els}}
}

// Br branches unconditionally to the enclosing block labeled by label,
// counting outward from 0 at the innermost enclosing block.
func Br(label LabelIdx) Instruction {
	return withImm(OpcodeBr, leb128.EncodeUint32(label))
}

// BrIf branches to label if the top-of-stack i32 is non-zero.
func BrIf(label LabelIdx) Instruction {
	return withImm(OpcodeBrIf, leb128.EncodeUint32(label))
}

// BrTable pops an i32 index and branches to labels[index], or to
// otherwise if the index is out of range for labels.
func BrTable(labels []LabelIdx, otherwise LabelIdx) Instruction {
	imm := leb128.EncodeUint32(uint32(len(labels)))
	for _, l := range labels {
		imm = append(imm, leb128.EncodeUint32(l)...)
	}
	imm = append(imm, leb128.EncodeUint32(otherwise)...)
	return withImm(OpcodeBrTable, imm)
}

// Return exits the current function, as if branching to its outermost block.
func Return() Instruction { return simple(OpcodeReturn) }

// Call invokes the function at idx directly.
func Call(idx FuncIdx) Instruction {
	return withImm(OpcodeCall, leb128.EncodeUint32(idx))
}

// CallIndirect invokes a function pulled from table 0 at a
// dynamically-computed index, checking it against the signature typeIdx
// before calling.
func CallIndirect(typeIdx TypeIdx) Instruction {
	imm := leb128.EncodeUint32(typeIdx)
	imm = append(imm, 0x00) // table index, always 0 until multi-table support exists
	return withImm(OpcodeCallIndirect, imm)
}

// Parametric instructions.

// Drop discards the top-of-stack value.
func Drop() Instruction { return simple(OpcodeDrop) }

// Select pops a condition and two values of the same type, keeping the
// first if the condition is non-zero, the second otherwise.
func Select() Instruction { return simple(OpcodeSelect) }

// Variable instructions.

// LocalGet pushes the current value of local idx.
func LocalGet(idx LocalIdx) Instruction {
	return withImm(OpcodeLocalGet, leb128.EncodeUint32(idx))
}

// LocalSet pops a value into local idx.
func LocalSet(idx LocalIdx) Instruction {
	return withImm(OpcodeLocalSet, leb128.EncodeUint32(idx))
}

// LocalTee pops a value into local idx and pushes it back.
func LocalTee(idx LocalIdx) Instruction {
	return withImm(OpcodeLocalTee, leb128.EncodeUint32(idx))
}

// GlobalGet pushes the current value of global idx.
func GlobalGet(idx GlobalIdx) Instruction {
	return withImm(OpcodeGlobalGet, leb128.EncodeUint32(idx))
}

// GlobalSet pops a value into global idx, which must be mutable.
func GlobalSet(idx GlobalIdx) Instruction {
	return withImm(OpcodeGlobalSet, leb128.EncodeUint32(idx))
}
