package wasmforge_test

import (
	"fmt"

	"github.com/wasmforge/wasmforge"
	"github.com/wasmforge/wasmforge/wasm"
)

// This builds the module from the Wasm text-format equivalent of:
//
//	(module
//	  (func (export "add") (param f32 f32) (result f32)
//	    local.get 0
//	    local.get 1
//	    f32.add))
func Example() {
	m := wasmforge.NewModule()
	m.Types = append(m.Types, wasm.FunctionType{
		Params:  []wasm.ValueType{wasm.ValueTypeF32, wasm.ValueTypeF32},
		Results: []wasm.ValueType{wasm.ValueTypeF32},
	})
	m.Functions = append(m.Functions, 0)
	m.Exports = append(m.Exports, wasm.Export{Name: "add", Kind: wasm.ExternKindFunc, Index: 0})
	m.Codes = append(m.Codes, wasm.Code{
		Body: wasm.Expr{wasm.LocalGet(0), wasm.LocalGet(1), wasm.F32Add()},
	})

	fmt.Println(len(wasmforge.Encode(m)))
	// Output: 41
}
