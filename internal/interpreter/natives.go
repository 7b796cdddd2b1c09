package interpreter

import "time"

// defineNatives populates globals with the interpreter's minimal
// standard library: clock (spec.md §4.4) plus str/type
// (SPEC_FULL.md, Supplemented Features). Adapted from the teacher's
// GlobalFunctionClock, which returned a Unix() int64 cast awkwardly
// through an interface{} (and was never actually registered as a
// Callable the interpreter's VisitCall could dispatch to, since it
// didn't satisfy LoxCaller's in-by-value Call signature). Here clock
// returns a float64 seconds-since-epoch, matching the Number value
// domain from spec.md §3.
func (in *Interpreter) defineNatives() {
	in.arena.Define(in.globals, "clock", &NativeFunction{
		name:  "clock",
		arity: 0,
		fn: func(_ *Interpreter, _ []interface{}) (interface{}, error) {
			return float64(time.Now().UnixNano()) / 1e9, nil
		},
	})

	in.arena.Define(in.globals, "str", &NativeFunction{
		name:  "str",
		arity: 1,
		fn: func(_ *Interpreter, args []interface{}) (interface{}, error) {
			return stringify(args[0]), nil
		},
	})

	in.arena.Define(in.globals, "type", &NativeFunction{
		name:  "type",
		arity: 1,
		fn: func(_ *Interpreter, args []interface{}) (interface{}, error) {
			return typeName(args[0]), nil
		},
	})
}
