// Package ilex is the lexical front end of the I language toolchain. It turns
// source text into an ordered sequence of typed tokens for a syntax
// analyzer.
//
// Lexing is a pure function of the source text and a file identifier:
//
//	tokens, err := ilex.Lex("1 + 1", "main.il")
//
// On failure the error wraps [ErrLex] and a [*diag.Diagnostic] whose
// Rendered field shows the failing line with a caret and a hint. Printing it
// is up to the caller.
package ilex

// Lex turns src into tokens using the default configuration: the first
// diagnostic stops lexing. An empty file is recorded as "<stdin>".
func Lex(src, file string) ([]Token, error) {
	return NewLexer().Lex(src, file)
}

// MustLex is like Lex but panics on failure.
func MustLex(src, file string) []Token {
	return NewLexer().MustLex(src, file)
}

// Valid reports whether src lexes without diagnostics.
func Valid(src string) bool {
	_, err := Lex(src, "")
	return err == nil
}
