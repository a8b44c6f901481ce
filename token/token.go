// Package token defines the vocabulary produced by the ilex scanner: source
// locations, tokens, and the closed set of token types together with their
// fixed lookup tables.
//
// A [Type] is one of [TypeName], [Literal], [Keyword], [Mark] or [Simple].
// The interface is sealed; no other package can add a variant.
package token

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultFile is the file identifier used for input that did not come from a
// named file.
const DefaultFile = "<stdin>"

// Location identifies the first character of a lexeme. Line and Column are
// 1-based; Column counts Unicode code points within the line.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location formatted as file:line:column.
func (l Location) String() string {
	return l.File + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
}

// IsValid reports whether l carries line and column information.
func (l Location) IsValid() bool {
	return l.Line > 0 && l.Column > 0
}

// Token is a single lexeme discovered by the scanner. Content is the exact
// matched source text, except for quoted literals, where it is the decoded
// body without quotes, and for type names and literal keywords, where it is
// the canonical spelling.
type Token struct {
	Location Location
	Content  string
	Type     Type
}

// String returns a compact debugging form, e.g. Mark(Add,"+")@1:3.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", typeLabel(t.Type), t.Content, t.Location.Line, t.Location.Column)
}

func typeLabel(typ Type) string {
	switch v := typ.(type) {
	case nil:
		return "Invalid"
	case Mark:
		return "Mark(" + v.String() + ")"
	case Keyword:
		return "Keyword(" + v.String() + ")"
	case TypeName:
		return "TypeName(" + v.String() + ")"
	case Literal:
		return "Literal(" + v.String() + ")"
	case Simple:
		return strings.ReplaceAll(v.String(), " ", "_")
	}
	return typ.String()
}

// Is reports whether t has type typ.
func (t Token) Is(typ Type) bool { return t.Type == typ }

// Int returns the value of an integer literal. Digit separators are ignored.
func (t Token) Int() (int64, error) {
	if t.Type != LiteralInteger {
		return 0, fmt.Errorf("token: %s is not an integer literal", Describe(t.Type))
	}
	return strconv.ParseInt(stripSeparators(t.Content), 10, 64)
}

// Float returns the value of a float or integer literal. Digit separators
// are ignored.
func (t Token) Float() (float64, error) {
	if t.Type != LiteralFloat && t.Type != LiteralInteger {
		return 0, fmt.Errorf("token: %s is not a numeric literal", Describe(t.Type))
	}
	return strconv.ParseFloat(stripSeparators(t.Content), 64)
}

func stripSeparators(s string) string {
	return strings.ReplaceAll(s, "_", "")
}

// Pattern matches tokens by type and, for identifiers, optionally by name.
// It is intended for grammar code that cares about the kind of token rather
// than its location.
type Pattern struct {
	Type    Type
	Content string
}

// Match reports whether tok fits p. Content is compared only when p is an
// identifier pattern with non-empty Content.
func (p Pattern) Match(tok Token) bool {
	if p.Type != tok.Type {
		return false
	}
	if p.Type == Identifier && p.Content != "" {
		return p.Content == tok.Content
	}
	return true
}

// PatternOf returns the location-free pattern of tok.
func PatternOf(tok Token) Pattern {
	return Pattern{Type: tok.Type, Content: tok.Content}
}
