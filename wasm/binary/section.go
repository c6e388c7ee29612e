package binary

import (
	"github.com/wasmforge/wasmforge/leb128"
	"github.com/wasmforge/wasmforge/wasm"
)

// sectionFrame wraps payload in the universal section header: a one-byte
// id, the payload's own byte count as unsigned LEB128, then the payload
// itself.
func sectionFrame(id wasm.SectionID, payload []byte) []byte {
	out := []byte{id}
	out = append(out, leb128.EncodeUint32(uint32(len(payload)))...)
	return append(out, payload...)
}

// vector frames a slice of already-encoded elements as LEB128(count) ‖
// concat(elements), the shape every standard section payload except
// start's shares.
func vector(elements [][]byte) []byte {
	out := leb128.EncodeUint32(uint32(len(elements)))
	for _, e := range elements {
		out = append(out, e...)
	}
	return out
}

func encodeImport(im wasm.Import) []byte {
	out := name(im.Module)
	out = append(out, name(im.Name)...)
	out = append(out, im.Kind)
	switch im.Kind {
	case wasm.ExternKindFunc:
		out = append(out, leb128.EncodeUint32(im.DescFunc)...)
	case wasm.ExternKindTable:
		out = append(out, encodeTableType(im.DescTable)...)
	case wasm.ExternKindMemory:
		out = append(out, encodeMemoryType(im.DescMemory)...)
	case wasm.ExternKindGlobal:
		out = append(out, encodeGlobalType(im.DescGlobal)...)
	}
	return out
}

// encodeExport writes an export entry as (name, kind, index): real Wasm
// export entries always reference an already-declared entity by index,
// they never redeclare its type the way an import does.
func encodeExport(ex wasm.Export) []byte {
	out := name(ex.Name)
	out = append(out, ex.Kind)
	return append(out, leb128.EncodeUint32(ex.Index)...)
}

func encodeGlobal(g wasm.Global) []byte {
	out := encodeGlobalType(g.Type)
	return append(out, encodeExpr(g.Init)...)
}

func encodeElementSegment(e wasm.ElementSegment) []byte {
	out := leb128.EncodeUint32(e.Table)
	out = append(out, encodeExpr(e.Offset)...)
	funcs := make([][]byte, len(e.Init))
	for i, f := range e.Init {
		funcs[i] = leb128.EncodeUint32(f)
	}
	return append(out, vector(funcs)...)
}

func encodeDataSegment(d wasm.DataSegment) []byte {
	out := leb128.EncodeUint32(d.Memory)
	out = append(out, encodeExpr(d.Offset)...)
	return append(out, byteVector(d.Init)...)
}

func encodeLocal(l wasm.Local) []byte {
	out := leb128.EncodeUint32(l.N)
	return append(out, l.Type)
}

// encodeCode writes a code entry: the byte length of everything that
// follows (the locals vector plus the body, including its terminating
// end opcode), then that payload itself.
func encodeCode(c wasm.Code) []byte {
	locals := make([][]byte, len(c.Locals))
	for i, l := range c.Locals {
		locals[i] = encodeLocal(l)
	}
	payload := vector(locals)
	payload = append(payload, encodeExpr(c.Body)...)
	out := leb128.EncodeUint32(uint32(len(payload)))
	return append(out, payload...)
}

func encodeCustomSection(c wasm.CustomSection) []byte {
	out := name(c.Name)
	return append(out, c.Payload...)
}
