// Package config carries Lit's fixed constants (seeded type names,
// built-in function names) the way the teacher's internal/config does,
// plus a YAML-loaded Options struct for per-project settings.
package config

import "strings"

// Version is the current litresolve version.
var Version = "0.1.0"

const SourceFileExt = ".lit"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".lit", ".lt"}

// TrimSourceExt removes any recognized source extension from a filename.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if strings.HasSuffix(name, ext) {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if path ends with any recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// SeededTypes are the primitives every type registry starts with,
// before any class adds its own (spec.md §4.3).
var SeededTypes = []string{
	"void", "any", "error", "int", "double", "bool", "char", "String",
}

// Built-in function names the Standard externals scope registers.
const (
	PrintFuncName   = "print"
	PrintlnFuncName = "println"
	TypeOfFuncName  = "typeof"
	RequireFuncName = "require"
)

// DefaultConfigFile is the project options file litresolve looks for in
// the working directory when --config is not given.
const DefaultConfigFile = ".litresolve.yml"
