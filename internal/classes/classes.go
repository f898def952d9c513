// Package classes implements the class table from spec.md §3–4.6:
// per-class field/method metadata, inheritance-aware initialization,
// and the registry the resolver's class pass populates.
package classes

import "github.com/dorichev/lit/internal/ast"

// Resource is field metadata attached to a class.
type Resource struct {
	Type     string
	Access   ast.AccessLevel
	IsStatic bool
	IsFinal  bool
}

// Rem is method metadata attached to a class.
type Rem struct {
	Signature  string
	Access     ast.AccessLevel
	IsStatic   bool
	IsOverriden bool
}

// Class is a class descriptor: fields, methods, and static methods,
// plus an optional link to its superclass.
type Class struct {
	Name          string
	Super         *Class
	Fields        map[string]*Resource
	Methods       map[string]*Rem
	StaticMethods map[string]*Rem
}

// New allocates a class descriptor. When super is non-nil, Fields and
// Methods are seeded as a shallow copy of the superclass's tables per
// spec.md's inheritance invariant — the subclass then overwrites
// entries it redefines. StaticMethods is never inherited.
func New(name string, super *Class) *Class {
	c := &Class{
		Name:          name,
		Super:         super,
		Fields:        make(map[string]*Resource),
		Methods:       make(map[string]*Rem),
		StaticMethods: make(map[string]*Rem),
	}
	if super != nil {
		for k, v := range super.Fields {
			c.Fields[k] = v
		}
		for k, v := range super.Methods {
			c.Methods[k] = v
		}
	}
	return c
}

// Registry maps class name to descriptor.
type Registry struct {
	classes map[string]*Class
}

// NewRegistry returns an empty class registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*Class)}
}

// Register stores c under its name.
func (r *Registry) Register(c *Class) {
	r.classes[c.Name] = c
}

// Lookup returns the class registered under name, or nil.
func (r *Registry) Lookup(name string) *Class {
	return r.classes[name]
}
