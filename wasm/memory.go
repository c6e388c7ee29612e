package wasm

import (
	"fmt"

	"github.com/wasmforge/wasmforge/leb128"
)

// StorageWidth is the width a memory access narrows to, for the sub-word
// load and store variants (i32.load8_u, i64.store32, and so on). A plain
// i32/i64/f32/f64 load or store has no StorageWidth at all, which is why
// Load and Store take *StorageWidth rather than StorageWidth.
type StorageWidth int

const (
	StorageWidth8 StorageWidth = iota
	StorageWidth16
	StorageWidth32
)

func memArgImm(m MemArg) []byte {
	imm := leb128.EncodeUint32(m.Align)
	return append(imm, leb128.EncodeUint32(m.Offset)...)
}

// Load builds a memory load of a value of type ty. storage is nil for a
// full-width load (i32.load, i64.load, f32.load, f64.load); non-nil it
// selects a narrower in-memory representation sign- or zero-extended
// (per signed) up to ty, which is only meaningful for the integer types
// and only for a width strictly narrower than ty itself. Combinations
// the binary format has no opcode for — a sub-word load of a float, or
// an i32 load narrowed to 32 bits — are precondition violations and
// panic rather than silently falling back to the full-width opcode.
func Load(ty ValueType, storage *StorageWidth, signed bool, m MemArg) Instruction {
	op, ok := loadOpcode(ty, storage, signed)
	if !ok {
		panic(fmt.Sprintf("wasm: no load opcode for type %s storage %s signed=%v", ValueTypeName(ty), describeStorage(storage), signed))
	}
	return withImm(op, memArgImm(m))
}

func loadOpcode(ty ValueType, storage *StorageWidth, signed bool) (byte, bool) {
	switch ty {
	case ValueTypeI32:
		if storage == nil {
			return OpcodeI32Load, true
		}
		switch *storage {
		case StorageWidth8:
			if signed {
				return OpcodeI32Load8S, true
			}
			return OpcodeI32Load8U, true
		case StorageWidth16:
			if signed {
				return OpcodeI32Load16S, true
			}
			return OpcodeI32Load16U, true
		}
		return 0, false
	case ValueTypeI64:
		if storage == nil {
			return OpcodeI64Load, true
		}
		switch *storage {
		case StorageWidth8:
			if signed {
				return OpcodeI64Load8S, true
			}
			return OpcodeI64Load8U, true
		case StorageWidth16:
			if signed {
				return OpcodeI64Load16S, true
			}
			return OpcodeI64Load16U, true
		case StorageWidth32:
			if signed {
				return OpcodeI64Load32S, true
			}
			return OpcodeI64Load32U, true
		}
		return 0, false
	case ValueTypeF32:
		if storage == nil {
			return OpcodeF32Load, true
		}
		return 0, false
	case ValueTypeF64:
		if storage == nil {
			return OpcodeF64Load, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// Store builds a memory store of a value of type ty, narrowing it to
// storage bytes first when storage is non-nil. The same restrictions as
// Load apply: float types and full-width integer stores never take a
// storage width.
func Store(ty ValueType, storage *StorageWidth, m MemArg) Instruction {
	op, ok := storeOpcode(ty, storage)
	if !ok {
		panic(fmt.Sprintf("wasm: no store opcode for type %s storage %s", ValueTypeName(ty), describeStorage(storage)))
	}
	return withImm(op, memArgImm(m))
}

func storeOpcode(ty ValueType, storage *StorageWidth) (byte, bool) {
	switch ty {
	case ValueTypeI32:
		if storage == nil {
			return OpcodeI32Store, true
		}
		switch *storage {
		case StorageWidth8:
			return OpcodeI32Store8, true
		case StorageWidth16:
			return OpcodeI32Store16, true
		}
		return 0, false
	case ValueTypeI64:
		if storage == nil {
			return OpcodeI64Store, true
		}
		switch *storage {
		case StorageWidth8:
			return OpcodeI64Store8, true
		case StorageWidth16:
			return OpcodeI64Store16, true
		case StorageWidth32:
			return OpcodeI64Store32, true
		}
		return 0, false
	case ValueTypeF32:
		if storage == nil {
			return OpcodeF32Store, true
		}
		return 0, false
	case ValueTypeF64:
		if storage == nil {
			return OpcodeF64Store, true
		}
		return 0, false
	default:
		return 0, false
	}
}

func storageWidthPtr(w StorageWidth) *StorageWidth { return &w }

func describeStorage(storage *StorageWidth) string {
	if storage == nil {
		return "full-width"
	}
	switch *storage {
	case StorageWidth8:
		return "8"
	case StorageWidth16:
		return "16"
	case StorageWidth32:
		return "32"
	default:
		return "unknown"
	}
}

// I32Load, I64Load, F32Load, and F64Load are the full-width loads.
func I32Load(m MemArg) Instruction { return Load(ValueTypeI32, nil, false, m) }
func I64Load(m MemArg) Instruction { return Load(ValueTypeI64, nil, false, m) }
func F32Load(m MemArg) Instruction { return Load(ValueTypeF32, nil, false, m) }
func F64Load(m MemArg) Instruction { return Load(ValueTypeF64, nil, false, m) }

func I32Load8S(m MemArg) Instruction  { return Load(ValueTypeI32, storageWidthPtr(StorageWidth8), true, m) }
func I32Load8U(m MemArg) Instruction  { return Load(ValueTypeI32, storageWidthPtr(StorageWidth8), false, m) }
func I32Load16S(m MemArg) Instruction { return Load(ValueTypeI32, storageWidthPtr(StorageWidth16), true, m) }
func I32Load16U(m MemArg) Instruction { return Load(ValueTypeI32, storageWidthPtr(StorageWidth16), false, m) }

func I64Load8S(m MemArg) Instruction  { return Load(ValueTypeI64, storageWidthPtr(StorageWidth8), true, m) }
func I64Load8U(m MemArg) Instruction  { return Load(ValueTypeI64, storageWidthPtr(StorageWidth8), false, m) }
func I64Load16S(m MemArg) Instruction { return Load(ValueTypeI64, storageWidthPtr(StorageWidth16), true, m) }
func I64Load16U(m MemArg) Instruction { return Load(ValueTypeI64, storageWidthPtr(StorageWidth16), false, m) }
func I64Load32S(m MemArg) Instruction { return Load(ValueTypeI64, storageWidthPtr(StorageWidth32), true, m) }
func I64Load32U(m MemArg) Instruction { return Load(ValueTypeI64, storageWidthPtr(StorageWidth32), false, m) }

// I32Store, I64Store, F32Store, and F64Store are the full-width stores.
func I32Store(m MemArg) Instruction { return Store(ValueTypeI32, nil, m) }
func I64Store(m MemArg) Instruction { return Store(ValueTypeI64, nil, m) }
func F32Store(m MemArg) Instruction { return Store(ValueTypeF32, nil, m) }
func F64Store(m MemArg) Instruction { return Store(ValueTypeF64, nil, m) }

func I32Store8(m MemArg) Instruction  { return Store(ValueTypeI32, storageWidthPtr(StorageWidth8), m) }
func I32Store16(m MemArg) Instruction { return Store(ValueTypeI32, storageWidthPtr(StorageWidth16), m) }
func I64Store8(m MemArg) Instruction  { return Store(ValueTypeI64, storageWidthPtr(StorageWidth8), m) }
func I64Store16(m MemArg) Instruction { return Store(ValueTypeI64, storageWidthPtr(StorageWidth16), m) }
func I64Store32(m MemArg) Instruction { return Store(ValueTypeI64, storageWidthPtr(StorageWidth32), m) }

// MemorySize pushes the current size of memory 0, in page units.
func MemorySize() Instruction { return withImm(OpcodeMemorySize, []byte{0x00}) }

// MemoryGrow grows memory 0 by the popped page count, pushing the
// previous size on success or -1 on failure.
func MemoryGrow() Instruction { return withImm(OpcodeMemoryGrow, []byte{0x00}) }
