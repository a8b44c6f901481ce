package scanner

import (
	"strings"

	"github.com/I-Language-Development/ilex/diag"
	"github.com/I-Language-Development/ilex/token"
)

// scanLineComment consumes the rest of the line after "//". The newline is
// left for the whitespace skip.
func (s *Scanner) scanLineComment(loc token.Location) {
	body := s.cur.PeekUntil(func(r rune) bool { return r == '\n' })
	s.emit(loc, token.Comment, strings.TrimSpace(body))
}

// scanBlockComment consumes everything after "/*" up to and including the
// first "*/", across lines. Block comments do not nest.
func (s *Scanner) scanBlockComment(loc token.Location) *diag.Diagnostic {
	var prev rune
	body := s.cur.PeekUntil(func(r rune) bool {
		end := prev == '*' && r == '/'
		prev = r
		return end
	})
	if s.cur.Done() {
		return s.newDiagnostic(diag.UnterminatedComment, loc, 2,
			"unterminated block comment",
			"comment starts here",
			"add `*/` to close the comment", 0)
	}
	s.cur.Next() // closing '/'

	body = strings.TrimSuffix(body, "*")
	s.emit(loc, token.BlockComment, strings.TrimSpace(body))
	return nil
}
