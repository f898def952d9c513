// Package externals builds the host-registered native binding scope
// consulted by the resolver after every lexical scope (spec.md §3, §6:
// the "externals" virtual scope). A host embedding the resolver
// registers its built-in functions and globals here before a run, the
// same way the original resolver's caller populated its own native
// table ahead of resolve_program.
package externals

import "github.com/dorichev/lit/internal/symbols"

// Builder accumulates native bindings before they're frozen into a
// symbols.Scope for a resolver run.
type Builder struct {
	scope symbols.Scope
}

// New returns an empty externals builder.
func New() *Builder {
	return &Builder{scope: make(symbols.Scope)}
}

// Func registers a native function under name with the given
// already-encoded function<...> signature (see types.BuildFunctionSignature).
func (b *Builder) Func(name, signature string) *Builder {
	b.scope[name] = &symbols.Letal{Type: signature, Defined: true}
	return b
}

// Value registers a native global of the given type.
func (b *Builder) Value(name, typ string) *Builder {
	b.scope[name] = &symbols.Letal{Type: typ, Defined: true}
	return b
}

// Build freezes the accumulated bindings into the scope the resolver
// consumes. The Builder remains usable afterward; Build may be called
// again to get a fresh snapshot.
func (b *Builder) Build() symbols.Scope {
	out := make(symbols.Scope, len(b.scope))
	for k, v := range b.scope {
		out[k] = &symbols.Letal{Type: v.Type, Defined: v.Defined, Field: v.Field}
	}
	return out
}

// Standard returns the externals scope every litresolve invocation
// registers by default: the handful of built-ins spec.md §3 names as
// always available (print/println take "any" so every literal and
// expression type is accepted without triggering E-TYPE).
func Standard() symbols.Scope {
	return New().
		Func("print", "function<any, void>").
		Func("println", "function<any, void>").
		Func("typeof", "function<any, String>").
		Func("require", "function<String, any>").
		Build()
}
