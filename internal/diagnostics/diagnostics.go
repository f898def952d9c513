// Package diagnostics collects resolver findings. It mirrors the
// teacher's errorSet/getErrors() shape: callers add errors as they are
// found (duplicates with the same position and code collapse), and pull a sorted
// slice once traversal finishes.
package diagnostics

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/dorichev/lit/internal/token"
)

// ErrorCode identifies one of the error categories from spec §7. It is
// not a per-message identifier — many distinct messages share a code.
type ErrorCode string

const (
	ErrUndefinedName          ErrorCode = "E-UNDEFINED"   // undeclared variable, type, class, member
	ErrRedeclaration          ErrorCode = "E-REDECL"       // name already bound in this scope
	ErrTypeMismatch           ErrorCode = "E-TYPE"         // assignment / return / argument / binary operand
	ErrArityMismatch          ErrorCode = "E-ARITY"        // too few / too many call arguments
	ErrIllegalContext         ErrorCode = "E-CONTEXT"      // return/this/super outside function/class
	ErrAccessViolation        ErrorCode = "E-ACCESS"       // private/protected visibility
	ErrInheritanceViolation   ErrorCode = "E-INHERIT"      // self-inherit, unknown super, bad override
	ErrInitializationViolation ErrorCode = "E-INIT"        // self-referential init, final w/o value, void var
	ErrQualification          ErrorCode = "E-QUALIFY"      // field used without `this`
)

// DiagnosticError is one finding. File is filled in by the Sink when the
// caller didn't set it explicitly (single-file compilation units leave
// it to the Sink).
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	File    string
	Message string
}

func (e *DiagnosticError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.File, e.Token.Line, e.Token.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", e.Token.Line, e.Token.Column, e.Code, e.Message)
}

// New builds a DiagnosticError with a formatted message, matching the
// original resolver's printf-style `error(resolver, format, ...)`.
func New(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: fmt.Sprintf(format, args...)}
}

// Sink accumulates diagnostics for one resolver run. It never aborts
// traversal — spec §7 requires every error to set a flag and continue,
// failing the whole compilation only after the pass completes.
type Sink struct {
	RunID string

	file    string
	had     bool
	errSet  map[string]*DiagnosticError
}

// NewSink creates a diagnostic sink for a single compilation unit.
func NewSink(file string) *Sink {
	return &Sink{
		RunID:  uuid.NewString(),
		file:   file,
		errSet: make(map[string]*DiagnosticError),
	}
}

// Add records a diagnostic, deduplicating by position+code.
func (s *Sink) Add(err *DiagnosticError) {
	if err.File == "" {
		err.File = s.file
	}
	s.had = true
	key := fmt.Sprintf("%d:%d:%s", err.Token.Line, err.Token.Column, err.Code)
	s.errSet[key] = err
}

// Errorf is the convenience form used throughout the resolver.
func (s *Sink) Errorf(code ErrorCode, tok token.Token, format string, args ...interface{}) {
	s.Add(New(code, tok, format, args...))
}

// HadError reports whether any diagnostic has been recorded.
func (s *Sink) HadError() bool {
	return s.had
}

// Errors returns all recorded diagnostics, sorted by source position.
func (s *Sink) Errors() []*DiagnosticError {
	result := make([]*DiagnosticError, 0, len(s.errSet))
	for _, e := range s.errSet {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Token.Line != result[j].Token.Line {
			return result[i].Token.Line < result[j].Token.Line
		}
		return result[i].Token.Column < result[j].Token.Column
	})
	return result
}
