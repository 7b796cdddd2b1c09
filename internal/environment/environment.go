// Package environment implements the lexically-chained name->value
// maps the interpreter uses for variable scoping.
//
// spec.md §9 ("Closures and cyclic reference") recommends, for a
// systems language, storing environments in a monotonically-growing
// arena owned by the interpreter and referring to them by stable
// integer handles, rather than relying on a tracing GC the way the
// teacher's Go implementation (archevan-glox) does with bare
// *Environment pointers. Go does have a tracing GC, but we follow the
// recommended design anyway: it is the one spec.md actually names,
// it makes closure lifetime explicit and inspectable (useful for the
// -debug trace log in cmd/oxente), and it matches how the teacher
// already threads an explicit *Environment chain rather than any
// hidden resolution table.
package environment

import (
	"github.com/Marllon-Freitas/oxente/internal/diagnostics"
	"github.com/Marllon-Freitas/oxente/internal/token"
)

// Handle is a stable reference to an environment stored in an Arena.
// The zero Handle is never valid; Arena.Global always starts at 1.
type Handle int

const invalidHandle Handle = 0

// environment is a single scope: bindings plus a link to its
// enclosing scope (Handle(0) for the global scope).
type environment struct {
	enclosing Handle
	bindings  map[string]interface{}
}

// Arena owns every environment created during an interpreter session.
// Environments are never freed individually; the whole arena is
// dropped when the interpreter that owns it is discarded (spec.md §9:
// "the arena is freed wholesale at interpreter shutdown").
type Arena struct {
	scopes []environment
	Global Handle
}

// NewArena creates an arena pre-populated with the global scope.
func NewArena() *Arena {
	a := &Arena{}
	a.Global = a.new(invalidHandle)
	return a
}

func (a *Arena) new(enclosing Handle) Handle {
	a.scopes = append(a.scopes, environment{
		enclosing: enclosing,
		bindings:  make(map[string]interface{}),
	})
	return Handle(len(a.scopes))
}

// New creates a fresh child scope of enclosing and returns its
// handle. Called on entry to each Block and to each user function
// call, per spec.md §3 ("Lifetime").
func (a *Arena) New(enclosing Handle) Handle {
	return a.new(enclosing)
}

func (a *Arena) at(h Handle) *environment {
	return &a.scopes[int(h)-1]
}

// Define unconditionally binds name to val in scope h. Redefinition
// is permitted, matching spec.md §4.3.
func (a *Arena) Define(h Handle, name string, val interface{}) {
	a.at(h).bindings[name] = val
}

// Get resolves name starting at scope h and walking outward through
// enclosing scopes, per spec.md §3 ("Invariants").
func (a *Arena) Get(h Handle, name token.Token) (interface{}, error) {
	cur := h
	for cur != invalidHandle {
		scope := a.at(cur)
		if val, ok := scope.bindings[name.Lexeme]; ok {
			return val, nil
		}
		cur = scope.enclosing
	}
	return nil, &diagnostics.RuntimeError{
		Tok: name,
		Msg: "Undefined variable '" + name.Lexeme + "'.",
	}
}

// Assign mutates the nearest existing binding for name starting at
// scope h, walking outward. It never creates a new binding; a miss at
// the global scope is a runtime error.
func (a *Arena) Assign(h Handle, name token.Token, val interface{}) error {
	cur := h
	for cur != invalidHandle {
		scope := a.at(cur)
		if _, ok := scope.bindings[name.Lexeme]; ok {
			scope.bindings[name.Lexeme] = val
			return nil
		}
		cur = scope.enclosing
	}
	return &diagnostics.RuntimeError{
		Tok: name,
		Msg: "Undefined variable '" + name.Lexeme + "'.",
	}
}
