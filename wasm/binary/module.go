package binary

import (
	"fmt"
	"io"

	"github.com/wasmforge/wasmforge/leb128"
	"github.com/wasmforge/wasmforge/wasm"
)

// magic is the four-byte "\0asm" preamble every Wasm binary module opens with.
var magic = []byte{0x00, 0x61, 0x73, 0x6D}

// version is the MVP binary format version, encoded little-endian.
var version = []byte{0x01, 0x00, 0x00, 0x00}

// Encode serializes m to the Wasm MVP binary format and returns the
// resulting bytes. It never fails on its own; encoding is a pure
// function of m once any "impossible encoding" precondition panics (see
// the wasm package's Load/Store constructors) have already been ruled
// out by the caller building a valid Instruction in the first place.
func Encode(m *wasm.Module) []byte {
	out := make([]byte, 0, 256)
	out = append(out, magic...)
	out = append(out, version...)

	out = appendSection(out, wasm.SectionType, encodeTypeSection(m))
	out = appendSection(out, wasm.SectionImport, encodeImportSection(m))
	out = appendSection(out, wasm.SectionFunction, encodeFunctionSection(m))
	out = appendSection(out, wasm.SectionTable, encodeTableSection(m))
	out = appendSection(out, wasm.SectionMemory, encodeMemorySection(m))
	out = appendSection(out, wasm.SectionGlobal, encodeGlobalSection(m))
	out = appendSection(out, wasm.SectionExport, encodeExportSection(m))
	if m.Start != nil {
		out = append(out, sectionFrame(wasm.SectionStart, leb128.EncodeUint32(*m.Start))...)
	}
	out = appendSection(out, wasm.SectionElement, encodeElementSection(m))
	out = appendSection(out, wasm.SectionCode, encodeCodeSection(m))
	out = appendSection(out, wasm.SectionData, encodeDataSection(m))

	for _, c := range m.Customs {
		out = append(out, sectionFrame(wasm.SectionCustom, encodeCustomSection(c))...)
	}
	return out
}

// Write encodes m and writes it to w, wrapping and propagating any
// short write or other I/O failure from the sink.
func Write(m *wasm.Module, w io.Writer) error {
	if _, err := w.Write(Encode(m)); err != nil {
		return fmt.Errorf("wasm: write module: %w", err)
	}
	return nil
}

// appendSection frames elements as a vector payload and appends the
// resulting section to out, unless elements is empty, in which case the
// section id never appears in the output at all.
func appendSection(out []byte, id wasm.SectionID, elements [][]byte) []byte {
	if len(elements) == 0 {
		return out
	}
	return append(out, sectionFrame(id, vector(elements))...)
}

func encodeTypeSection(m *wasm.Module) [][]byte {
	out := make([][]byte, len(m.Types))
	for i, t := range m.Types {
		out[i] = encodeFunctionType(t)
	}
	return out
}

func encodeImportSection(m *wasm.Module) [][]byte {
	out := make([][]byte, len(m.Imports))
	for i, im := range m.Imports {
		out[i] = encodeImport(im)
	}
	return out
}

func encodeFunctionSection(m *wasm.Module) [][]byte {
	out := make([][]byte, len(m.Functions))
	for i, t := range m.Functions {
		out[i] = leb128.EncodeUint32(t)
	}
	return out
}

func encodeTableSection(m *wasm.Module) [][]byte {
	out := make([][]byte, len(m.Tables))
	for i, t := range m.Tables {
		out[i] = encodeTableType(t)
	}
	return out
}

func encodeMemorySection(m *wasm.Module) [][]byte {
	out := make([][]byte, len(m.Memories))
	for i, mt := range m.Memories {
		out[i] = encodeMemoryType(mt)
	}
	return out
}

func encodeGlobalSection(m *wasm.Module) [][]byte {
	out := make([][]byte, len(m.Globals))
	for i, g := range m.Globals {
		out[i] = encodeGlobal(g)
	}
	return out
}

func encodeExportSection(m *wasm.Module) [][]byte {
	out := make([][]byte, len(m.Exports))
	for i, ex := range m.Exports {
		out[i] = encodeExport(ex)
	}
	return out
}

func encodeElementSection(m *wasm.Module) [][]byte {
	out := make([][]byte, len(m.Elements))
	for i, e := range m.Elements {
		out[i] = encodeElementSegment(e)
	}
	return out
}

func encodeCodeSection(m *wasm.Module) [][]byte {
	out := make([][]byte, len(m.Codes))
	for i, c := range m.Codes {
		out[i] = encodeCode(c)
	}
	return out
}

func encodeDataSection(m *wasm.Module) [][]byte {
	out := make([][]byte, len(m.Data))
	for i, d := range m.Data {
		out[i] = encodeDataSegment(d)
	}
	return out
}
