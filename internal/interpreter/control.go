package interpreter

// returnSignal and breakSignal are the concrete control-flow signals
// produced by ast.StmtVisitor methods, per the Go mapping spec.md §9
// recommends for the source's sentinel-exception-based return/break:
// "result sum types propagated from execute: Normal | Return(value) |
// Break." ast.Stmt.Accept returns these as an opaque interface{}; only
// this package knows their concrete shape.
type returnSignal struct {
	value interface{}
}

type breakSignal struct{}
