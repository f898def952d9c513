package resolver_test

import (
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/dorichev/lit/internal/diagnostics"
)

// fixture is a scenario loaded from a txtar archive: a `source.lit` file
// and an `expect` file listing the diagnostic codes the run must produce,
// one per line, in any order. Empty `expect` means the run must be clean.
type fixture struct {
	source string
	expect []string
}

func parseFixture(t *testing.T, archive string) fixture {
	t.Helper()
	ar := txtar.Parse([]byte(archive))
	var f fixture
	for _, file := range ar.Files {
		switch file.Name {
		case "source.lit":
			f.source = string(file.Data)
		case "expect":
			for _, line := range strings.Split(strings.TrimSpace(string(file.Data)), "\n") {
				line = strings.TrimSpace(line)
				if line != "" {
					f.expect = append(f.expect, line)
				}
			}
		default:
			t.Fatalf("unexpected file %q in fixture", file.Name)
		}
	}
	if f.source == "" {
		t.Fatalf("fixture archive missing source.lit section")
	}
	return f
}

// TestFixtures drives the same run()/hasCode() helpers from scenarios_test.go
// against scenarios packaged as txtar archives, the format SPEC_FULL.md
// names for bundling a source file with its expected diagnostics.
func TestFixtures(t *testing.T) {
	tests := []struct {
		name    string
		archive string
	}{
		{
			name: "clean_widening_assignment",
			archive: `
-- source.lit --
var x = 1;
var y: double = x;
-- expect --
`,
		},
		{
			name: "type_mismatch_on_call",
			archive: `
-- source.lit --
fun f(int a) > void {}
f(true);
-- expect --
E-TYPE
`,
		},
		{
			name: "class_cannot_inherit_self",
			archive: `
-- source.lit --
class A {}
class A : A {}
-- expect --
E-INHERIT
E-REDECL
`,
		},
		{
			name: "field_use_requires_this",
			archive: `
-- source.lit --
class A { int x; fun m() > int { return x; } }
-- expect --
E-QUALIFY
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := parseFixture(t, tc.archive)
			sink := run(t, f.source)

			got := sink.Errors()
			if len(f.expect) == 0 {
				if len(got) != 0 {
					t.Fatalf("expected a clean run, got %d diagnostics: %v", len(got), got)
				}
				return
			}
			for _, code := range f.expect {
				if !hasCode(sink, diagnostics.ErrorCode(code)) {
					t.Fatalf("expected diagnostic %s, got %v", code, got)
				}
			}
		})
	}
}
