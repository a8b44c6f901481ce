package token

import "fmt"

// Mark identifies an operator or punctuation token.
type Mark uint8

const (
	Add              Mark = iota // +
	AddAssign                    // +=
	And                          // &&
	Arrow                        // ->
	Assign                       // =
	At                           // @
	Bang                         // !
	BitAnd                       // &
	BitAndAssign                 // &=
	BitOr                        // |
	BitOrAssign                  // |=
	BitXor                       // ^
	BitXorAssign                 // ^=
	BraceOpen                    // {
	BraceClose                   // }
	BracketOpen                  // [
	BracketClose                 // ]
	Colon                        // :
	Comma                        // ,
	Decrease                     // --
	Divide                       // /
	DivideAssign                 // /=
	Dot                          // .
	Equal                        // ==
	Exponentiation               // **
	Greater                      // >
	GreaterEqual                 // >=
	Increase                     // ++
	Less                         // <
	LessEqual                    // <=
	Modulo                       // %
	ModuloAssign                 // %=
	Multiply                     // *
	MultiplyAssign               // *=
	NotEqual                     // !=
	Or                           // ||
	ParenthesisOpen              // (
	ParenthesisClose             // )
	QuestionMark                 // ?
	Range                        // ..
	Semicolon                    // ;
	ShiftLeft                    // <<
	ShiftLeftAssign              // <<=
	ShiftRight                   // >>
	ShiftRightAssign             // >>=
	Subtract                     // -
	SubtractAssign               // -=
)

var markLexemes = [...]string{
	Add:              "+",
	AddAssign:        "+=",
	And:              "&&",
	Arrow:            "->",
	Assign:           "=",
	At:               "@",
	Bang:             "!",
	BitAnd:           "&",
	BitAndAssign:     "&=",
	BitOr:            "|",
	BitOrAssign:      "|=",
	BitXor:           "^",
	BitXorAssign:     "^=",
	BraceOpen:        "{",
	BraceClose:       "}",
	BracketOpen:      "[",
	BracketClose:     "]",
	Colon:            ":",
	Comma:            ",",
	Decrease:         "--",
	Divide:           "/",
	DivideAssign:     "/=",
	Dot:              ".",
	Equal:            "==",
	Exponentiation:   "**",
	Greater:          ">",
	GreaterEqual:     ">=",
	Increase:         "++",
	Less:             "<",
	LessEqual:        "<=",
	Modulo:           "%",
	ModuloAssign:     "%=",
	Multiply:         "*",
	MultiplyAssign:   "*=",
	NotEqual:         "!=",
	Or:               "||",
	ParenthesisOpen:  "(",
	ParenthesisClose: ")",
	QuestionMark:     "?",
	Range:            "..",
	Semicolon:        ";",
	ShiftLeft:        "<<",
	ShiftLeftAssign:  "<<=",
	ShiftRight:       ">>",
	ShiftRightAssign: ">>=",
	Subtract:         "-",
	SubtractAssign:   "-=",
}

var markNames = [...]string{
	Add:              "Add",
	AddAssign:        "AddAssign",
	And:              "And",
	Arrow:            "Arrow",
	Assign:           "Assign",
	At:               "At",
	Bang:             "Bang",
	BitAnd:           "BitAnd",
	BitAndAssign:     "BitAndAssign",
	BitOr:            "BitOr",
	BitOrAssign:      "BitOrAssign",
	BitXor:           "BitXor",
	BitXorAssign:     "BitXorAssign",
	BraceOpen:        "BraceOpen",
	BraceClose:       "BraceClose",
	BracketOpen:      "BracketOpen",
	BracketClose:     "BracketClose",
	Colon:            "Colon",
	Comma:            "Comma",
	Decrease:         "Decrease",
	Divide:           "Divide",
	DivideAssign:     "DivideAssign",
	Dot:              "Dot",
	Equal:            "Equal",
	Exponentiation:   "Exponentiation",
	Greater:          "Greater",
	GreaterEqual:     "GreaterEqual",
	Increase:         "Increase",
	Less:             "Less",
	LessEqual:        "LessEqual",
	Modulo:           "Modulo",
	ModuloAssign:     "ModuloAssign",
	Multiply:         "Multiply",
	MultiplyAssign:   "MultiplyAssign",
	NotEqual:         "NotEqual",
	Or:               "Or",
	ParenthesisOpen:  "ParenthesisOpen",
	ParenthesisClose: "ParenthesisClose",
	QuestionMark:     "QuestionMark",
	Range:            "Range",
	Semicolon:        "Semicolon",
	ShiftLeft:        "ShiftLeft",
	ShiftLeftAssign:  "ShiftLeftAssign",
	ShiftRight:       "ShiftRight",
	ShiftRightAssign: "ShiftRightAssign",
	Subtract:         "Subtract",
	SubtractAssign:   "SubtractAssign",
}

var (
	markTable  = invert(markLexemes[:], func(i int) Mark { return Mark(i) })
	markByName = invert(markNames[:], func(i int) Mark { return Mark(i) })
)

func (Mark) tokenType()         {}
func (Mark) Category() Category { return CategoryMark }

// String returns the name of m, e.g. "ShiftLeftAssign".
func (m Mark) String() string {
	if int(m) < len(markNames) {
		return markNames[m]
	}
	return fmt.Sprintf("Mark(%d)", m)
}

// Lexeme returns the source spelling of m, e.g. "<<=".
func (m Mark) Lexeme() string {
	if int(m) < len(markLexemes) {
		return markLexemes[m]
	}
	return ""
}

// Marks returns every mark in declaration order.
func Marks() []Mark {
	out := make([]Mark, len(markLexemes))
	for i := range out {
		out[i] = Mark(i)
	}
	return out
}

// LookupMark returns the mark spelled exactly by lexeme.
func LookupMark(lexeme string) (Mark, bool) {
	m, ok := markTable[lexeme]
	return m, ok
}

// IsMarkStart reports whether r can begin a mark.
func IsMarkStart(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '^', '%', '@', '<', '>', '!', '=', '&', '|',
		':', '.', ',', ';', '?', '(', ')', '{', '}', '[', ']':
		return true
	}
	return false
}

// IsMarkExtension reports whether r may follow the first character of a
// mark to form a two-character mark.
func IsMarkExtension(r rune) bool {
	switch r {
	case '+', '-', '/', '*', '=', '&', '|', '.':
		return true
	}
	return false
}

// IsShift reports whether r starts a shift or arrow suffix, which may be
// followed by a trailing '='.
func IsShift(r rune) bool {
	return r == '<' || r == '>'
}
