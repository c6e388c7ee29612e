package binary

import "github.com/wasmforge/wasmforge/wasm"

// encodeExpr writes out, in order, every instruction in e followed by
// the implicit end opcode every Expr carries on the wire but never
// stores explicitly in memory.
func encodeExpr(e wasm.Expr) []byte {
	var out []byte
	for _, instr := range e {
		out = append(out, encodeInstruction(instr)...)
	}
	out = append(out, wasm.OpcodeEnd)
	return out
}

func encodeInstruction(instr wasm.Instruction) []byte {
	if instr.Block != nil {
		return encodeBlockInstruction(instr)
	}
	out := []byte{instr.Opcode}
	if instr.Prefixed {
		out = append(out, instr.SubOpcode)
	}
	out = append(out, instr.Immediate...)
	return out
}

// encodeBlockInstruction handles block, loop, and if: each carries a
// BlockType immediate and one or two nested instruction sequences, none
// of which terminate with their own end opcode in memory — the
// recursive encodeExpr call below supplies the single end that closes
// the instruction.
func encodeBlockInstruction(instr wasm.Instruction) []byte {
	b := instr.Block
	out := []byte{instr.Opcode}
	out = append(out, b.Type.Bytes()...)

	switch instr.Opcode {
	case wasm.OpcodeIf:
		// An if/else pair shares a single end; when an else follows,
		// the "then" arm is written without one.
		if b.Else != nil {
			out = append(out, encodeExprWithoutEnd(b.Then)...)
			out = append(out, wasm.OpcodeElse)
			out = append(out, encodeExpr(b.Else)...)
		} else {
			out = append(out, encodeExpr(b.Then)...)
		}
	default: // block, loop
		out = append(out, encodeExpr(b.Then)...)
	}
	return out
}

func encodeExprWithoutEnd(e wasm.Expr) []byte {
	var out []byte
	for _, instr := range e {
		out = append(out, encodeInstruction(instr)...)
	}
	return out
}
