package token

import (
	"fmt"
)

// Category names the variant a [Type] belongs to.
type Category uint8

const (
	CategoryTypeName     Category = iota // str, int, bool and their aliases
	CategoryLiteral                      // integer, float, string, boolean, none
	CategoryKeyword                      // reserved words
	CategoryMark                         // operators and punctuation
	CategoryIdentifier                   // names
	CategoryComment                      // // line comment
	CategoryBlockComment                 // /* block comment */
)

var categoryNames = [...]string{
	CategoryTypeName:     "type",
	CategoryLiteral:      "literal",
	CategoryKeyword:      "keyword",
	CategoryMark:         "mark",
	CategoryIdentifier:   "identifier",
	CategoryComment:      "comment",
	CategoryBlockComment: "block_comment",
}

// String returns the stable name of c.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", c)
}

// Type is the closed set of token types. Implemented by [TypeName],
// [Literal], [Keyword], [Mark] and [Simple].
type Type interface {
	tokenType()
	// Category returns the variant of the type.
	Category() Category
	// String returns the stable name of the type within its category.
	String() string
}

// Simple covers the token types that carry no sub-kind.
type Simple uint8

const (
	Identifier Simple = iota
	Comment
	BlockComment
)

var simpleNames = [...]string{
	Identifier:   "identifier",
	Comment:      "comment",
	BlockComment: "block comment",
}

func (Simple) tokenType() {}

func (s Simple) Category() Category {
	switch s {
	case Comment:
		return CategoryComment
	case BlockComment:
		return CategoryBlockComment
	default:
		return CategoryIdentifier
	}
}

func (s Simple) String() string {
	if int(s) < len(simpleNames) {
		return simpleNames[s]
	}
	return fmt.Sprintf("Simple(%d)", s)
}

// TypeName is a built-in type spelling.
type TypeName uint8

const (
	TypeString TypeName = iota
	TypeInteger
	TypeBoolean
)

// typeNames holds the canonical spelling of each type name; it is also the
// token content emitted for every alias.
var typeNames = [...]string{
	TypeString:  "string",
	TypeInteger: "integer",
	TypeBoolean: "boolean",
}

var typeNameTable = map[string]TypeName{
	"str":     TypeString,
	"string":  TypeString,
	"int":     TypeInteger,
	"integer": TypeInteger,
	"bool":    TypeBoolean,
	"boolean": TypeBoolean,
}

func (TypeName) tokenType()         {}
func (TypeName) Category() Category { return CategoryTypeName }
func (t TypeName) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("TypeName(%d)", t)
}

// LookupTypeName returns the type name spelled by word, accepting aliases.
func LookupTypeName(word string) (TypeName, bool) {
	t, ok := typeNameTable[word]
	return t, ok
}

// Literal is the kind of a literal value.
type Literal uint8

const (
	LiteralInteger Literal = iota
	LiteralFloat
	LiteralString
	LiteralBoolean
	LiteralNone
)

var literalNames = [...]string{
	LiteralInteger: "integer",
	LiteralFloat:   "float",
	LiteralString:  "string",
	LiteralBoolean: "boolean",
	LiteralNone:    "none",
}

// literalKeywords maps literal keyword spellings to their kind and canonical
// content.
var literalKeywords = map[string]struct {
	kind    Literal
	content string
}{
	"true":  {LiteralBoolean, "true"},
	"false": {LiteralBoolean, "false"},
	"none":  {LiteralNone, "none"},
	"None":  {LiteralNone, "none"},
}

func (Literal) tokenType()         {}
func (Literal) Category() Category { return CategoryLiteral }
func (l Literal) String() string {
	if int(l) < len(literalNames) {
		return literalNames[l]
	}
	return fmt.Sprintf("Literal(%d)", l)
}

// LookupLiteral returns the literal kind and canonical content of a literal
// keyword such as true or None.
func LookupLiteral(word string) (Literal, string, bool) {
	v, ok := literalKeywords[word]
	return v.kind, v.content, ok
}

// Keyword is a reserved word.
type Keyword uint8

const (
	Break Keyword = iota
	Case
	Catch
	Class
	Continue
	Default
	Delete
	Else
	Finally
	For
	Function
	If
	Import
	Match
	Pub
	Return
	Throw
	Try
	Use
	While
)

var keywordNames = [...]string{
	Break:    "break",
	Case:     "case",
	Catch:    "catch",
	Class:    "class",
	Continue: "continue",
	Default:  "default",
	Delete:   "delete",
	Else:     "else",
	Finally:  "finally",
	For:      "for",
	Function: "function",
	If:       "if",
	Import:   "import",
	Match:    "match",
	Pub:      "pub",
	Return:   "return",
	Throw:    "throw",
	Try:      "try",
	Use:      "use",
	While:    "while",
}

var keywordTable = invert(keywordNames[:], func(i int) Keyword { return Keyword(i) })

func (Keyword) tokenType()         {}
func (Keyword) Category() Category { return CategoryKeyword }

// String returns the spelling of k.
func (k Keyword) String() string {
	if int(k) < len(keywordNames) {
		return keywordNames[k]
	}
	return fmt.Sprintf("Keyword(%d)", k)
}

// Keywords returns every keyword in declaration order.
func Keywords() []Keyword {
	out := make([]Keyword, len(keywordNames))
	for i := range out {
		out[i] = Keyword(i)
	}
	return out
}

// LookupKeyword returns the keyword spelled by word.
func LookupKeyword(word string) (Keyword, bool) {
	k, ok := keywordTable[word]
	return k, ok
}

// invert builds a reverse lookup for a names table.
func invert[T any](names []string, conv func(int) T) map[string]T {
	m := make(map[string]T, len(names))
	for i, name := range names {
		m[name] = conv(i)
	}
	return m
}

// Describe returns the human-readable description of typ used in messages,
// for example "string literal", "`true`" or "`+=`".
func Describe(typ Type) string {
	switch v := typ.(type) {
	case nil:
		return "invalid token"
	case Literal:
		switch v {
		case LiteralBoolean:
			return "boolean literal"
		case LiteralNone:
			return "`none`"
		}
		return v.String() + " literal"
	case Mark:
		return "`" + v.Lexeme() + "`"
	case Keyword:
		return "keyword `" + v.String() + "`"
	case TypeName:
		return "type `" + v.String() + "`"
	}
	return typ.String()
}

// ParseType is the inverse of a type's Category and String. It is used when
// reading persisted token streams.
func ParseType(category, name string) (Type, error) {
	switch category {
	case CategoryIdentifier.String():
		return Identifier, nil
	case CategoryComment.String():
		return Comment, nil
	case CategoryBlockComment.String():
		return BlockComment, nil
	case CategoryTypeName.String():
		for i, n := range typeNames {
			if n == name {
				return TypeName(i), nil
			}
		}
	case CategoryLiteral.String():
		for i, n := range literalNames {
			if n == name {
				return Literal(i), nil
			}
		}
	case CategoryKeyword.String():
		if k, ok := keywordTable[name]; ok {
			return k, nil
		}
	case CategoryMark.String():
		if m, ok := markByName[name]; ok {
			return m, nil
		}
	default:
		return nil, fmt.Errorf("token: unknown category %q", category)
	}
	return nil, fmt.Errorf("token: unknown %s %q", category, name)
}
