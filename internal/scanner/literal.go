package scanner

import (
	"strings"

	"github.com/I-Language-Development/ilex/diag"
	"github.com/I-Language-Development/ilex/token"
)

// scanString scans a quoted literal opened by ' or ". A quote closes the
// literal only when it follows an even number of consecutive backslashes.
// Literals do not span lines.
func (s *Scanner) scanString(loc token.Location) *diag.Diagnostic {
	quote := s.cur.Next()

	backslashes := 0
	body := s.cur.PeekWhile(func(r rune) bool {
		if r == '\n' || (r == quote && backslashes%2 == 0) {
			return false
		}
		if r == '\\' {
			backslashes++
		} else {
			backslashes = 0
		}
		return true
	})

	if s.cur.Peek() != quote {
		return s.unterminatedString(loc, quote, body)
	}
	s.cur.Next()

	s.emit(loc, token.LiteralString, unescape(body))
	return nil
}

// unterminatedString points at the opening quote and suggests where the
// closing quote belongs. When the run ends in an escaped quote, the fix is
// more likely to drop the backslash.
func (s *Scanner) unterminatedString(loc token.Location, quote rune, body string) *diag.Diagnostic {
	q := string(quote)
	end := columnAfter(loc.Column+1, body)
	hint := "add a `" + q + "` here"
	if strings.HasSuffix(body, `\`+q) && escapedSuffix(body) {
		end -= 2
		hint = "remove the `\\` here"
	}
	return s.newDiagnostic(diag.UnterminatedString, loc, 1,
		"unterminated string literal",
		"string starts here",
		hint, end)
}

// escapedSuffix reports whether the last character of body is escaped, that
// is, preceded by an odd number of backslashes.
func escapedSuffix(body string) bool {
	n := 0
	rs := []rune(body)
	for i := len(rs) - 2; i >= 0 && rs[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// unescape resolves the escape sequences of a literal body. Unknown escapes
// are kept as written.
func unescape(body string) string {
	if !strings.ContainsRune(body, '\\') {
		return body
	}
	var b strings.Builder
	b.Grow(len(body))
	escaped := false
	for _, r := range body {
		if !escaped {
			if r == '\\' {
				escaped = true
			} else {
				b.WriteRune(r)
			}
			continue
		}
		escaped = false
		switch r {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		case '\\', '"', '\'':
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	if escaped {
		b.WriteByte('\\')
	}
	return b.String()
}

// scanNumber scans an integer or float literal. The run may contain digits,
// '.' and '_'; at most one '.' is allowed and every '_' must sit between two
// digits. Content keeps the separators as written.
func (s *Scanner) scanNumber(loc token.Location) *diag.Diagnostic {
	run := s.cur.PeekWhile(func(r rune) bool {
		return isDigit(r) || r == '.' || r == '_'
	})

	if strings.Count(run, ".") > 1 {
		return s.newDiagnostic(diag.InvalidNumber, loc, len(run),
			"invalid number literal `"+run+"`",
			"too many decimal points",
			"a number may contain at most one `.`", 0)
	}
	for i := 0; i < len(run); i++ {
		if run[i] != '_' {
			continue
		}
		if i+1 >= len(run) || !isDigit(rune(run[i-1])) || !isDigit(rune(run[i+1])) {
			return s.newDiagnostic(diag.InvalidNumber, loc, len(run),
				"invalid number literal `"+run+"`",
				"misplaced digit separator",
				"`_` may only appear between two digits", 0)
		}
	}

	typ := token.LiteralInteger
	if strings.Contains(run, ".") {
		typ = token.LiteralFloat
	}
	s.emit(loc, typ, run)
	return nil
}

// scanWord scans a run of letters and underscores and classifies it as a
// keyword, type name, literal keyword or identifier.
func (s *Scanner) scanWord(loc token.Location) {
	word := s.cur.PeekWhile(isWordStart)
	typ, content := token.ClassifyWord(word)
	s.emit(loc, typ, content)
}
