package symbols

import (
	"github.com/dorichev/lit/internal/diagnostics"
	"github.com/dorichev/lit/internal/token"
	"github.com/dorichev/lit/internal/types"
)

// TypeRegistry is the set of valid type names (spec.md §4.3). Class
// declarations insert their bare name as they are resolved.
type TypeRegistry struct {
	names map[string]bool
}

// NewTypeRegistry returns a registry seeded with the primitive and
// structural type names every Lit program can use unqualified.
func NewTypeRegistry() *TypeRegistry {
	r := &TypeRegistry{names: make(map[string]bool)}
	for _, n := range []string{
		types.Int, types.Bool, types.Error, types.Void, types.Any,
		types.Double, types.Char, "function", "Class", types.String,
	} {
		r.Define(n)
	}
	return r
}

// Define registers name as a valid type.
func (r *TypeRegistry) Define(name string) {
	r.names[name] = true
}

// Resolve reports E-UNDEFINED if name (truncated at its first '<', so
// function<...> resolves via the bare key "function") is not a known
// type.
func (r *TypeRegistry) Resolve(sink *diagnostics.Sink, name string, tok token.Token) {
	if !r.names[types.HeadOf(name)] {
		sink.Errorf(diagnostics.ErrUndefinedName, tok, "Type %s is not defined", name)
	}
}

// Known reports whether name is registered, without emitting a diagnostic.
func (r *TypeRegistry) Known(name string) bool {
	return r.names[types.HeadOf(name)]
}
