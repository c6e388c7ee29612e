package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadStoreOpcodes(t *testing.T) {
	m := MemArg{Align: 2, Offset: 0}

	for _, c := range []struct {
		name   string
		instr  Instruction
		opcode byte
	}{
		{"i32.load", I32Load(m), OpcodeI32Load},
		{"i64.load", I64Load(m), OpcodeI64Load},
		{"f32.load", F32Load(m), OpcodeF32Load},
		{"f64.load", F64Load(m), OpcodeF64Load},
		{"i32.load8_s", I32Load8S(m), OpcodeI32Load8S},
		{"i32.load8_u", I32Load8U(m), OpcodeI32Load8U},
		{"i32.load16_s", I32Load16S(m), OpcodeI32Load16S},
		{"i32.load16_u", I32Load16U(m), OpcodeI32Load16U},
		{"i64.load8_s", I64Load8S(m), OpcodeI64Load8S},
		{"i64.load8_u", I64Load8U(m), OpcodeI64Load8U},
		{"i64.load16_s", I64Load16S(m), OpcodeI64Load16S},
		{"i64.load16_u", I64Load16U(m), OpcodeI64Load16U},
		{"i64.load32_s", I64Load32S(m), OpcodeI64Load32S},
		{"i64.load32_u", I64Load32U(m), OpcodeI64Load32U},
		{"i32.store", I32Store(m), OpcodeI32Store},
		{"i64.store", I64Store(m), OpcodeI64Store},
		{"f32.store", F32Store(m), OpcodeF32Store},
		{"f64.store", F64Store(m), OpcodeF64Store},
		{"i32.store8", I32Store8(m), OpcodeI32Store8},
		{"i32.store16", I32Store16(m), OpcodeI32Store16},
		{"i64.store8", I64Store8(m), OpcodeI64Store8},
		{"i64.store16", I64Store16(m), OpcodeI64Store16},
		{"i64.store32", I64Store32(m), OpcodeI64Store32},
	} {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.opcode, c.instr.Opcode)
			require.Equal(t, []byte{0x02, 0x00}, c.instr.Immediate)
		})
	}
}

func TestMemorySizeGrow(t *testing.T) {
	require.Equal(t, Instruction{Opcode: OpcodeMemorySize, Immediate: []byte{0x00}}, MemorySize())
	require.Equal(t, Instruction{Opcode: OpcodeMemoryGrow, Immediate: []byte{0x00}}, MemoryGrow())
}

func TestLoadStoreImpossibleCombinationsPanic(t *testing.T) {
	m := MemArg{}
	w8 := storageWidthPtr(StorageWidth8)

	require.Panics(t, func() { Load(ValueTypeF32, w8, false, m) })
	require.Panics(t, func() { Load(ValueTypeF64, w8, true, m) })
	require.Panics(t, func() { Store(ValueTypeF32, w8, m) })

	w32 := storageWidthPtr(StorageWidth32)
	require.Panics(t, func() { Load(ValueTypeI32, w32, false, m) }, "i32 has no 32-bit sub-storage")
	require.Panics(t, func() { Store(ValueTypeI32, w32, m) }, "i32 has no 32-bit sub-storage")
}
