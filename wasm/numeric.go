package wasm

import (
	"encoding/binary"
	"math"

	"github.com/wasmforge/wasmforge/leb128"
)

// Numeric constants.

// I32Const pushes a constant i32.
func I32Const(v int32) Instruction { return withImm(OpcodeI32Const, leb128.EncodeInt32(v)) }

// I64Const pushes a constant i64.
func I64Const(v int64) Instruction { return withImm(OpcodeI64Const, leb128.EncodeInt64(v)) }

// F32Const pushes a constant f32, encoded as its raw IEEE-754 bits so
// that every bit pattern — including the signalling and quiet NaN
// payloads the Go float32 type can represent but float32 arithmetic
// does not reliably preserve — round-trips exactly.
func F32Const(bits uint32) Instruction {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, bits)
	return withImm(OpcodeF32Const, buf)
}

// F64Const pushes a constant f64, encoded as its raw IEEE-754 bits; see F32Const.
func F64Const(bits uint64) Instruction {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, bits)
	return withImm(OpcodeF64Const, buf)
}

// F32ConstValue is a convenience wrapper over F32Const for callers who
// have an ordinary float32 and don't need to control its exact bit
// pattern (e.g. a specific NaN payload).
func F32ConstValue(v float32) Instruction { return F32Const(math.Float32bits(v)) }

// F64ConstValue is the float64 counterpart of F32ConstValue.
func F64ConstValue(v float64) Instruction { return F64Const(math.Float64bits(v)) }

// i32 comparisons.
func I32Eqz() Instruction { return simple(OpcodeI32Eqz) }
func I32Eq() Instruction  { return simple(OpcodeI32Eq) }
func I32Ne() Instruction  { return simple(OpcodeI32Ne) }
func I32LtS() Instruction { return simple(OpcodeI32LtS) }
func I32LtU() Instruction { return simple(OpcodeI32LtU) }
func I32GtS() Instruction { return simple(OpcodeI32GtS) }
func I32GtU() Instruction { return simple(OpcodeI32GtU) }
func I32LeS() Instruction { return simple(OpcodeI32LeS) }
func I32LeU() Instruction { return simple(OpcodeI32LeU) }
func I32GeS() Instruction { return simple(OpcodeI32GeS) }
func I32GeU() Instruction { return simple(OpcodeI32GeU) }

// i64 comparisons.
func I64Eqz() Instruction { return simple(OpcodeI64Eqz) }
func I64Eq() Instruction  { return simple(OpcodeI64Eq) }
func I64Ne() Instruction  { return simple(OpcodeI64Ne) }
func I64LtS() Instruction { return simple(OpcodeI64LtS) }
func I64LtU() Instruction { return simple(OpcodeI64LtU) }
func I64GtS() Instruction { return simple(OpcodeI64GtS) }
func I64GtU() Instruction { return simple(OpcodeI64GtU) }
func I64LeS() Instruction { return simple(OpcodeI64LeS) }
func I64LeU() Instruction { return simple(OpcodeI64LeU) }
func I64GeS() Instruction { return simple(OpcodeI64GeS) }
func I64GeU() Instruction { return simple(OpcodeI64GeU) }

// f32 comparisons.
func F32Eq() Instruction { return simple(OpcodeF32Eq) }
func F32Ne() Instruction { return simple(OpcodeF32Ne) }
func F32Lt() Instruction { return simple(OpcodeF32Lt) }
func F32Gt() Instruction { return simple(OpcodeF32Gt) }
func F32Le() Instruction { return simple(OpcodeF32Le) }
func F32Ge() Instruction { return simple(OpcodeF32Ge) }

// f64 comparisons.
func F64Eq() Instruction { return simple(OpcodeF64Eq) }
func F64Ne() Instruction { return simple(OpcodeF64Ne) }
func F64Lt() Instruction { return simple(OpcodeF64Lt) }
func F64Gt() Instruction { return simple(OpcodeF64Gt) }
func F64Le() Instruction { return simple(OpcodeF64Le) }
func F64Ge() Instruction { return simple(OpcodeF64Ge) }

// i32 arithmetic.
func I32Clz() Instruction    { return simple(OpcodeI32Clz) }
func I32Ctz() Instruction    { return simple(OpcodeI32Ctz) }
func I32Popcnt() Instruction { return simple(OpcodeI32Popcnt) }
func I32Add() Instruction    { return simple(OpcodeI32Add) }
func I32Sub() Instruction    { return simple(OpcodeI32Sub) }
func I32Mul() Instruction    { return simple(OpcodeI32Mul) }
func I32DivS() Instruction   { return simple(OpcodeI32DivS) }
func I32DivU() Instruction   { return simple(OpcodeI32DivU) }
func I32RemS() Instruction   { return simple(OpcodeI32RemS) }
func I32RemU() Instruction   { return simple(OpcodeI32RemU) }
func I32And() Instruction    { return simple(OpcodeI32And) }
func I32Or() Instruction     { return simple(OpcodeI32Or) }
func I32Xor() Instruction    { return simple(OpcodeI32Xor) }
func I32Shl() Instruction    { return simple(OpcodeI32Shl) }
func I32ShrS() Instruction   { return simple(OpcodeI32ShrS) }
func I32ShrU() Instruction   { return simple(OpcodeI32ShrU) }
func I32Rotl() Instruction   { return simple(OpcodeI32Rotl) }
func I32Rotr() Instruction   { return simple(OpcodeI32Rotr) }

// i64 arithmetic.
func I64Clz() Instruction    { return simple(OpcodeI64Clz) }
func I64Ctz() Instruction    { return simple(OpcodeI64Ctz) }
func I64Popcnt() Instruction { return simple(OpcodeI64Popcnt) }
func I64Add() Instruction    { return simple(OpcodeI64Add) }
func I64Sub() Instruction    { return simple(OpcodeI64Sub) }
func I64Mul() Instruction    { return simple(OpcodeI64Mul) }
func I64DivS() Instruction   { return simple(OpcodeI64DivS) }
func I64DivU() Instruction   { return simple(OpcodeI64DivU) }
func I64RemS() Instruction   { return simple(OpcodeI64RemS) }
func I64RemU() Instruction   { return simple(OpcodeI64RemU) }
func I64And() Instruction    { return simple(OpcodeI64And) }
func I64Or() Instruction     { return simple(OpcodeI64Or) }
func I64Xor() Instruction    { return simple(OpcodeI64Xor) }
func I64Shl() Instruction    { return simple(OpcodeI64Shl) }
func I64ShrS() Instruction   { return simple(OpcodeI64ShrS) }
func I64ShrU() Instruction   { return simple(OpcodeI64ShrU) }
func I64Rotl() Instruction   { return simple(OpcodeI64Rotl) }
func I64Rotr() Instruction   { return simple(OpcodeI64Rotr) }

// f32 arithmetic.
func F32Abs() Instruction      { return simple(OpcodeF32Abs) }
func F32Neg() Instruction      { return simple(OpcodeF32Neg) }
func F32Ceil() Instruction     { return simple(OpcodeF32Ceil) }
func F32Floor() Instruction    { return simple(OpcodeF32Floor) }
func F32Trunc() Instruction    { return simple(OpcodeF32Trunc) }
func F32Nearest() Instruction  { return simple(OpcodeF32Nearest) }
func F32Sqrt() Instruction     { return simple(OpcodeF32Sqrt) }
func F32Add() Instruction      { return simple(OpcodeF32Add) }
func F32Sub() Instruction      { return simple(OpcodeF32Sub) }
func F32Mul() Instruction      { return simple(OpcodeF32Mul) }
func F32Div() Instruction      { return simple(OpcodeF32Div) }
func F32Min() Instruction      { return simple(OpcodeF32Min) }
func F32Max() Instruction      { return simple(OpcodeF32Max) }
func F32Copysign() Instruction { return simple(OpcodeF32Copysign) }

// f64 arithmetic.
func F64Abs() Instruction      { return simple(OpcodeF64Abs) }
func F64Neg() Instruction      { return simple(OpcodeF64Neg) }
func F64Ceil() Instruction     { return simple(OpcodeF64Ceil) }
func F64Floor() Instruction    { return simple(OpcodeF64Floor) }
func F64Trunc() Instruction    { return simple(OpcodeF64Trunc) }
func F64Nearest() Instruction  { return simple(OpcodeF64Nearest) }
func F64Sqrt() Instruction     { return simple(OpcodeF64Sqrt) }
func F64Add() Instruction      { return simple(OpcodeF64Add) }
func F64Sub() Instruction      { return simple(OpcodeF64Sub) }
func F64Mul() Instruction      { return simple(OpcodeF64Mul) }
func F64Div() Instruction      { return simple(OpcodeF64Div) }
func F64Min() Instruction      { return simple(OpcodeF64Min) }
func F64Max() Instruction      { return simple(OpcodeF64Max) }
func F64Copysign() Instruction { return simple(OpcodeF64Copysign) }

// Conversions.
func I32WrapI64() Instruction     { return simple(OpcodeI32WrapI64) }
func I32TruncF32S() Instruction   { return simple(OpcodeI32TruncF32S) }
func I32TruncF32U() Instruction   { return simple(OpcodeI32TruncF32U) }
func I32TruncF64S() Instruction   { return simple(OpcodeI32TruncF64S) }
func I32TruncF64U() Instruction   { return simple(OpcodeI32TruncF64U) }
func I64ExtendI32S() Instruction  { return simple(OpcodeI64ExtendI32S) }
func I64ExtendI32U() Instruction  { return simple(OpcodeI64ExtendI32U) }
func I64TruncF32S() Instruction   { return simple(OpcodeI64TruncF32S) }
func I64TruncF32U() Instruction   { return simple(OpcodeI64TruncF32U) }
func I64TruncF64S() Instruction   { return simple(OpcodeI64TruncF64S) }
func I64TruncF64U() Instruction   { return simple(OpcodeI64TruncF64U) }
func F32ConvertI32S() Instruction { return simple(OpcodeF32ConvertI32S) }
func F32ConvertI32U() Instruction { return simple(OpcodeF32ConvertI32U) }
func F32ConvertI64S() Instruction { return simple(OpcodeF32ConvertI64S) }
func F32ConvertI64U() Instruction { return simple(OpcodeF32ConvertI64U) }
func F32DemoteF64() Instruction   { return simple(OpcodeF32DemoteF64) }
func F64ConvertI32S() Instruction { return simple(OpcodeF64ConvertI32S) }
func F64ConvertI32U() Instruction { return simple(OpcodeF64ConvertI32U) }
func F64ConvertI64S() Instruction { return simple(OpcodeF64ConvertI64S) }
func F64ConvertI64U() Instruction { return simple(OpcodeF64ConvertI64U) }
func F64PromoteF32() Instruction  { return simple(OpcodeF64PromoteF32) }

// Reinterprets: reuse the bits of one type as another with no conversion.
func I32ReinterpretF32() Instruction { return simple(OpcodeI32ReinterpretF32) }
func I64ReinterpretF64() Instruction { return simple(OpcodeI64ReinterpretF64) }
func F32ReinterpretI32() Instruction { return simple(OpcodeF32ReinterpretI32) }
func F64ReinterpretI64() Instruction { return simple(OpcodeF64ReinterpretI64) }

// Sign extension: widen a narrower two's-complement value already held
// in an i32/i64, sign-extending from the given bit width.
func I32Extend8S() Instruction  { return simple(OpcodeI32Extend8S) }
func I32Extend16S() Instruction { return simple(OpcodeI32Extend16S) }
func I64Extend8S() Instruction  { return simple(OpcodeI64Extend8S) }
func I64Extend16S() Instruction { return simple(OpcodeI64Extend16S) }
func I64Extend32S() Instruction { return simple(OpcodeI64Extend32S) }

func truncSat(sub byte) Instruction {
	return Instruction{Opcode: OpcodeTruncSatPrefix, Prefixed: true, SubOpcode: sub}
}

// Saturating truncation: like the plain trunc conversions but clamp to
// the target range instead of trapping on overflow or NaN.
func I32TruncSatF32S() Instruction { return truncSat(TruncSatI32TruncF32S) }
func I32TruncSatF32U() Instruction { return truncSat(TruncSatI32TruncF32U) }
func I32TruncSatF64S() Instruction { return truncSat(TruncSatI32TruncF64S) }
func I32TruncSatF64U() Instruction { return truncSat(TruncSatI32TruncF64U) }
func I64TruncSatF32S() Instruction { return truncSat(TruncSatI64TruncF32S) }
func I64TruncSatF32U() Instruction { return truncSat(TruncSatI64TruncF32U) }
func I64TruncSatF64S() Instruction { return truncSat(TruncSatI64TruncF64S) }
func I64TruncSatF64U() Instruction { return truncSat(TruncSatI64TruncF64U) }
