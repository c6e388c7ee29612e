package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmforge/wasmforge/wasm"
)

func TestEncodeExprTerminatesWithEnd(t *testing.T) {
	got := encodeExpr(wasm.Expr{wasm.LocalGet(0), wasm.LocalGet(1), wasm.I32Add()})
	require.Equal(t, []byte{0x20, 0x00, 0x20, 0x01, 0x6a, 0x0b}, got)
}

func TestEncodeBlockNoResult(t *testing.T) {
	instr := wasm.Block(wasm.EmptyBlockType(), wasm.Expr{wasm.Nop()})
	got := encodeInstruction(instr)
	require.Equal(t, []byte{0x02, 0x40, 0x01, 0x0b}, got)
}

func TestEncodeIfWithElse(t *testing.T) {
	instr := wasm.If(wasm.EmptyBlockType(), wasm.Expr{wasm.I32Const(1)}, wasm.Expr{wasm.I32Const(2)})
	got := encodeInstruction(instr)
	require.Equal(t, []byte{
		0x04, 0x40, // if, empty block type
		0x41, 0x01, // i32.const 1
		0x05,       // else
		0x41, 0x02, // i32.const 2
		0x0b, // end
	}, got)
}

func TestEncodeIfWithoutElse(t *testing.T) {
	instr := wasm.If(wasm.EmptyBlockType(), wasm.Expr{wasm.Nop()}, nil)
	got := encodeInstruction(instr)
	require.Equal(t, []byte{0x04, 0x40, 0x01, 0x0b}, got)
}

func TestEncodeNestedBlocks(t *testing.T) {
	inner := wasm.Loop(wasm.EmptyBlockType(), wasm.Expr{wasm.Br(0)})
	outer := wasm.Block(wasm.EmptyBlockType(), wasm.Expr{inner})
	got := encodeInstruction(outer)
	require.Equal(t, []byte{
		0x02, 0x40, // block, empty
		0x03, 0x40, // loop, empty
		0x0c, 0x00, // br 0
		0x0b, // end loop
		0x0b, // end block
	}, got)
}

func TestEncodeBrTableInstruction(t *testing.T) {
	got := encodeInstruction(wasm.BrTable([]wasm.LabelIdx{1, 2}, 0))
	require.Equal(t, []byte{0x0e, 0x02, 0x01, 0x02, 0x00}, got)
}

func TestEncodeI64ConstNegativeOne(t *testing.T) {
	got := encodeInstruction(wasm.I64Const(-1))
	require.Equal(t, []byte{0x42, 0x7f}, got)
}

func TestEncodeTruncSatPrefix(t *testing.T) {
	got := encodeInstruction(wasm.I32TruncSatF32S())
	require.Equal(t, []byte{0xfc, 0x00}, got)
}
