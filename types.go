package ilex

import (
	"errors"

	"github.com/I-Language-Development/ilex/diag"
	"github.com/I-Language-Development/ilex/token"
)

// Sentinel errors.
var (
	// ErrLex is returned when source text cannot be lexed. It wraps one
	// [*diag.Diagnostic], or several joined diagnostics in recovery mode.
	ErrLex = errors.New("ilex: lex error")
	// ErrDecode is returned when a persisted token stream cannot be decoded.
	ErrDecode = errors.New("ilex: decode error")
)

// Aliases for the token and diagnostic model, so that simple callers only
// need to import this package.
type (
	Token      = token.Token
	Location   = token.Location
	Type       = token.Type
	Diagnostic = diag.Diagnostic
)

// Diagnostics returns every diagnostic wrapped in err, in order.
func Diagnostics(err error) []*Diagnostic {
	var out []*Diagnostic
	var walk func(error)
	walk = func(err error) {
		switch e := err.(type) {
		case nil:
		case *Diagnostic:
			out = append(out, e)
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(e.Unwrap())
		}
	}
	walk(err)
	return out
}
