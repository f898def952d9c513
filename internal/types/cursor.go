package types

import "strings"

// Cursor walks the comma-separated argument list of a function<...>
// signature one token at a time. The original resolver kept this state
// (last_string/had_template) as file-scope globals; spec.md §9 flags
// that as a re-architecture candidate ("so multiple concurrent
// signature walks do not collide") — this type is the fix: every call
// site owns its own Cursor.
//
// Nesting depth is tracked across embedded <...> so an argument that is
// itself a function<...> or Class<...> signature is treated as one
// atomic token rather than being split on its internal commas.
type Cursor struct {
	rest string
	// AtReturn is set once Next has produced the signature's final
	// token (the return type); callers stop consuming parameters then.
	AtReturn bool
}

// NewSignatureCursor starts walking sig, a full function<...> string.
// Callers Next() through it to get each parameter type, then the
// return type last (Cursor.AtReturn flags that final token).
func NewSignatureCursor(sig string) *Cursor {
	return &Cursor{rest: strings.TrimPrefix(sig, functionPrefix)}
}

// Next returns the next top-level token, or ("", false) once the
// closing '>' has been consumed.
func (c *Cursor) Next() (string, bool) {
	s := c.rest
	if s == "" || strings.HasPrefix(s, ">") {
		return "", false
	}
	s = strings.TrimPrefix(s, " ")

	depth := 0
	i := 0
	for i < len(s) {
		ch := s[i]
		if ch == '<' {
			depth++
		} else if ch == '>' {
			if depth == 0 {
				break
			}
			depth--
		} else if ch == ',' && depth == 0 {
			break
		}
		i++
	}

	token := s[:i]
	c.AtReturn = i < len(s) && s[i] == '>'

	if i < len(s) && s[i] == ',' {
		i++ // skip the comma
	}
	if i < len(s) && s[i] == '>' {
		i++ // skip the closing '>' of the outer signature
	}
	c.rest = s[i:]
	return token, true
}

// TokenizeSignature splits a function<...> signature into its parameter
// types followed by its return type (the final element). It is the
// inverse of BuildFunctionSignature — round-tripping a signature
// through Build then Tokenize reproduces the original argument/return
// sequence (spec.md §8, "Round-trip").
func TokenizeSignature(sig string) []string {
	if !IsFunction(sig) {
		return nil
	}
	cur := NewSignatureCursor(sig)
	var parts []string
	for {
		tok, ok := cur.Next()
		if !ok {
			break
		}
		parts = append(parts, tok)
		if cur.AtReturn {
			break
		}
	}
	return parts
}
