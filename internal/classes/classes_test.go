package classes_test

import (
	"testing"

	"github.com/dorichev/lit/internal/ast"
	"github.com/dorichev/lit/internal/classes"
)

func TestNewWithoutSuperHasEmptyTables(t *testing.T) {
	c := classes.New("A", nil)
	if len(c.Fields) != 0 || len(c.Methods) != 0 || len(c.StaticMethods) != 0 {
		t.Fatalf("expected empty tables for a class without a super, got %+v", c)
	}
}

func TestNewInheritsFieldsAndMethodsNotStatic(t *testing.T) {
	super := classes.New("A", nil)
	super.Fields["x"] = &classes.Resource{Type: "int"}
	super.Methods["m"] = &classes.Rem{Signature: "function<void>"}
	super.StaticMethods["s"] = &classes.Rem{Signature: "function<void>", IsStatic: true}

	child := classes.New("B", super)

	if _, ok := child.Fields["x"]; !ok {
		t.Fatalf("expected child to inherit field x")
	}
	if _, ok := child.Methods["m"]; !ok {
		t.Fatalf("expected child to inherit method m")
	}
	if _, ok := child.StaticMethods["s"]; ok {
		t.Fatalf("static methods must not be inherited")
	}
}

func TestNewShallowCopyDoesNotShareOverwrittenEntries(t *testing.T) {
	super := classes.New("A", nil)
	super.Fields["x"] = &classes.Resource{Type: "int"}

	child := classes.New("B", super)
	child.Fields["x"] = &classes.Resource{Type: "double", Access: ast.Public}

	if super.Fields["x"].Type != "int" {
		t.Fatalf("overwriting a child field must not mutate the super's table")
	}
}

func TestRegistryLookup(t *testing.T) {
	r := classes.NewRegistry()
	if got := r.Lookup("Missing"); got != nil {
		t.Fatalf("Lookup on an empty registry returned %+v, want nil", got)
	}
	c := classes.New("A", nil)
	r.Register(c)
	if got := r.Lookup("A"); got != c {
		t.Fatalf("Lookup(A) = %+v, want %+v", got, c)
	}
}
