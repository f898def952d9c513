// Package types implements Lit's textual type signatures: the encoding
// of function<...> and Class<...> strings, comparison rules (any /
// int-double widening), and the call-site tokenizer.
package types

import "strings"

// Sentinel type names.
const (
	Void   = "void"
	Any    = "any"
	Error  = "error"
	Int    = "int"
	Double = "double"
	Bool   = "bool"
	Char   = "char"
	String = "String"
)

const (
	functionPrefix = "function<"
	classPrefix    = "Class<"
)

// IsFunction reports whether t is a function<...> signature.
func IsFunction(t string) bool {
	return strings.HasPrefix(t, functionPrefix)
}

// IsClassMeta reports whether t is a Class<...> metatype.
func IsClassMeta(t string) bool {
	return strings.HasPrefix(t, classPrefix)
}

// ClassMeta builds the metatype string for a class named name.
func ClassMeta(name string) string {
	return classPrefix + name + ">"
}

// ClassNameFromMeta extracts Name from Class<Name>. The caller must have
// already verified IsClassMeta(t).
func ClassNameFromMeta(t string) string {
	return strings.TrimSuffix(strings.TrimPrefix(t, classPrefix), ">")
}

// HeadOf truncates t at its first '<', so function<int, int> compares
// by the bare head "function" and Class<Foo> by "Class". Plain type
// names are returned unchanged.
func HeadOf(t string) string {
	if i := strings.IndexByte(t, '<'); i >= 0 {
		return t[:i]
	}
	return t
}

// BuildFunctionSignature encodes a parameter list and return type as
// function<P1, P2, ..., Ret>. An empty parameter list yields
// function<Ret>.
func BuildFunctionSignature(paramTypes []string, returnType string) string {
	var b strings.Builder
	b.WriteString(functionPrefix)
	for _, p := range paramTypes {
		b.WriteString(p)
		b.WriteString(", ")
	}
	b.WriteString(returnType)
	b.WriteByte('>')
	return b.String()
}

// Compatible implements the comparison rule shared by assignment,
// return, and argument checking: exact match, or "any" on either side,
// or numeric widening between int and double. error is accepted
// everywhere to suppress cascading diagnostics once one side has
// already failed to resolve.
func Compatible(needed, given string) bool {
	if needed == given || needed == Any || given == Any {
		return true
	}
	if needed == Error || given == Error {
		return true
	}
	if isNumeric(needed) && isNumeric(given) {
		return true
	}
	return false
}

func isNumeric(t string) bool {
	return t == Int || t == Double
}
