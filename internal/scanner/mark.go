package scanner

import (
	"strings"

	"github.com/I-Language-Development/ilex/diag"
	"github.com/I-Language-Development/ilex/token"
)

// scanMark scans an operator or punctuation mark, or a comment introduced by
// "//" or "/*". Lookahead is bounded: one extension character, or a shift
// character optionally followed by '='. Consumed characters are never given
// back, so a buffer with no table entry is an invalid mark.
func (s *Scanner) scanMark(loc token.Location) *diag.Diagnostic {
	var buf strings.Builder
	buf.WriteRune(s.cur.Next())

	switch next := s.cur.Peek(); {
	case token.IsMarkExtension(next):
		buf.WriteRune(s.cur.Next())
	case token.IsShift(next):
		buf.WriteRune(s.cur.Next())
		if s.cur.Peek() == '=' {
			buf.WriteRune(s.cur.Next())
		}
	}

	lexeme := buf.String()
	switch lexeme {
	case "/*":
		return s.scanBlockComment(loc)
	case "//":
		s.scanLineComment(loc)
		return nil
	}

	m, ok := token.LookupMark(lexeme)
	if !ok {
		return s.newDiagnostic(diag.InvalidMark, loc, runeLen(lexeme),
			"invalid mark `"+lexeme+"`",
			"not a known operator",
			"separate the characters with a space", 0)
	}
	s.emit(loc, m, lexeme)
	return nil
}
