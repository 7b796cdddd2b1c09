package interpreter

import (
	"fmt"
	"strconv"
)

// Callable is the uniform call interface from spec.md §4.5: any value
// answering Arity and Call is callable. The native clock/str/type
// functions and user Function values both implement it.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []interface{}) (interface{}, error)
	String() string
}

// isTruthy implements spec.md §3's truthiness invariant: Nil and
// Boolean(false) are falsey, everything else (including 0 and "") is
// truthy.
func isTruthy(val interface{}) bool {
	if val == nil {
		return false
	}
	if b, ok := val.(bool); ok {
		return b
	}
	return true
}

// isEqual implements spec.md §3's equality invariant: structural
// equality within a kind, false across distinct kinds, Nil == Nil.
// Callables compare by identity (pointer equality for *Function,
// identity of the native wrapper for natives).
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case Callable:
		bv, ok := b.(Callable)
		return ok && sameCallable(av, bv)
	default:
		return false
	}
}

func sameCallable(a, b Callable) bool {
	af, aok := a.(*Function)
	bf, bok := b.(*Function)
	if aok && bok {
		return af == bf
	}
	an, anok := a.(*NativeFunction)
	bn, bnok := b.(*NativeFunction)
	if anok && bnok {
		return an == bn
	}
	return false
}

// stringify converts a runtime value into its printed form, per
// spec.md §4.4. Integral-valued numbers print without a fractional
// part.
func stringify(val interface{}) string {
	if val == nil {
		return "nil"
	}
	switch v := val.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(v)
	case string:
		return v
	case Callable:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatNumber renders n the way spec.md §4.4 requires: integral
// values print without a fractional part (e.g. "3" not "3.0").
// strconv's shortest round-tripping representation already omits the
// decimal point for integral floats.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// typeName returns the runtime tag name used by the supplemented
// type() native (SPEC_FULL.md, Supplemented Features).
func typeName(val interface{}) string {
	switch val.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case Callable:
		return "function"
	default:
		return "unknown"
	}
}
