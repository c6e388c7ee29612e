package wasm

// Global declares a module-defined global variable: its type and its
// initializer, which per the Wasm core spec must be a constant
// expression (a single const/global.get/ref instruction followed by
// end). This encoder does not check that Init satisfies that
// restriction; a caller that supplies something else produces a module
// a conforming engine will reject at validation time, not at encode
// time.
type Global struct {
	Type GlobalType
	Init Expr
}
