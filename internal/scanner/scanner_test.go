package scanner

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/I-Language-Development/ilex/diag"
	"github.com/I-Language-Development/ilex/token"
)

const file = "<stdin>"

func loc(line, col int) token.Location {
	return token.Location{File: file, Line: line, Column: col}
}

func tok(line, col int, typ token.Type, content string) token.Token {
	return token.Token{Location: loc(line, col), Content: content, Type: typ}
}

func scan(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := New(src, Config{File: file}).Scan()
	require.NoError(t, err)
	return toks
}

func scanErr(t *testing.T, src string) *diag.Diagnostic {
	t.Helper()
	toks, err := New(src, Config{File: file}).Scan()
	require.Error(t, err)
	assert.Nil(t, toks)
	var d *diag.Diagnostic
	require.True(t, errors.As(err, &d))
	return d
}

func TestScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []token.Token
	}{
		{
			name: "addition",
			src:  "1 + 1",
			want: []token.Token{
				tok(1, 1, token.LiteralInteger, "1"),
				tok(1, 3, token.Add, "+"),
				tok(1, 5, token.LiteralInteger, "1"),
			},
		},
		{
			name: "comments",
			src:  "my/* cool */code // works",
			want: []token.Token{
				tok(1, 1, token.Identifier, "my"),
				tok(1, 3, token.BlockComment, "cool"),
				tok(1, 13, token.Identifier, "code"),
				tok(1, 18, token.Comment, "works"),
			},
		},
		{
			name: "shift left assign",
			src:  "<<=",
			want: []token.Token{tok(1, 1, token.ShiftLeftAssign, "<<=")},
		},
		{
			name: "literal keywords",
			src:  "true none",
			want: []token.Token{
				tok(1, 1, token.LiteralBoolean, "true"),
				tok(1, 6, token.LiteralNone, "none"),
			},
		},
		{
			name: "call",
			src:  `print("Hello World");`,
			want: []token.Token{
				tok(1, 1, token.Identifier, "print"),
				tok(1, 6, token.ParenthesisOpen, "("),
				tok(1, 7, token.LiteralString, "Hello World"),
				tok(1, 20, token.ParenthesisClose, ")"),
				tok(1, 21, token.Semicolon, ";"),
			},
		},
		{
			name: "lines reset columns",
			src:  "x\n  y\r\n\tz",
			want: []token.Token{
				tok(1, 1, token.Identifier, "x"),
				tok(2, 3, token.Identifier, "y"),
				tok(3, 2, token.Identifier, "z"),
			},
		},
		{
			name: "block comment across lines",
			src:  "/* a\nb */ c",
			want: []token.Token{
				tok(1, 1, token.BlockComment, "a\nb"),
				tok(2, 6, token.Identifier, "c"),
			},
		},
		{
			name: "empty block comment",
			src:  "/**/",
			want: []token.Token{tok(1, 1, token.BlockComment, "")},
		},
		{
			name: "line comment ends at newline",
			src:  "// hi there  \nx",
			want: []token.Token{
				tok(1, 1, token.Comment, "hi there"),
				tok(2, 1, token.Identifier, "x"),
			},
		},
		{
			name: "digits end identifiers",
			src:  "x1",
			want: []token.Token{
				tok(1, 1, token.Identifier, "x"),
				tok(1, 2, token.LiteralInteger, "1"),
			},
		},
		{
			name: "unicode columns",
			src:  "äö + _b",
			want: []token.Token{
				tok(1, 1, token.Identifier, "äö"),
				tok(1, 4, token.Add, "+"),
				tok(1, 6, token.Identifier, "_b"),
			},
		},
		{
			name: "type aliases",
			src:  "str int bool",
			want: []token.Token{
				tok(1, 1, token.TypeString, "string"),
				tok(1, 5, token.TypeInteger, "integer"),
				tok(1, 9, token.TypeBoolean, "boolean"),
			},
		},
		{
			name: "numbers",
			src:  "1_000 3.14 7.",
			want: []token.Token{
				tok(1, 1, token.LiteralInteger, "1_000"),
				tok(1, 7, token.LiteralFloat, "3.14"),
				tok(1, 12, token.LiteralFloat, "7."),
			},
		},
		{
			name: "char literal",
			src:  `'a'`,
			want: []token.Token{tok(1, 1, token.LiteralString, "a")},
		},
		{
			name: "whitespace only",
			src:  " \t\r\n  ",
			want: nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, scan(t, tc.src))
		})
	}
}

func TestEveryMarkLexesAlone(t *testing.T) {
	t.Parallel()

	for _, m := range token.Marks() {
		toks := scan(t, m.Lexeme())
		require.Len(t, toks, 1, m.Lexeme())
		assert.Equal(t, tok(1, 1, m, m.Lexeme()), toks[0])
	}
}

func TestEveryKeywordLexesAlone(t *testing.T) {
	t.Parallel()

	for _, k := range token.Keywords() {
		toks := scan(t, k.String())
		require.Len(t, toks, 1)
		assert.Equal(t, tok(1, 1, k, k.String()), toks[0])
	}
}

func TestGreedyMarks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want []token.Mark
	}{
		{"++", []token.Mark{token.Increase}},
		{"+++", []token.Mark{token.Increase, token.Add}},
		{">>=", []token.Mark{token.ShiftRightAssign}},
		{"<<<", []token.Mark{token.ShiftLeft, token.Less}},
		{"->", []token.Mark{token.Arrow}},
		{"a.b", []token.Mark{token.Dot}},
		{"...", []token.Mark{token.Range, token.Dot}},
		{"!x", []token.Mark{token.Bang}},
	}
	for _, tc := range tests {
		var got []token.Mark
		for _, tk := range scan(t, tc.src) {
			if m, ok := tk.Type.(token.Mark); ok {
				got = append(got, m)
			}
		}
		assert.Equal(t, tc.want, got, tc.src)
	}
}

func TestStringEscapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"escaped quote", `"a\""`, `a"`},
		{"escaped backslash then quote", `"a\\"`, `a\`},
		{"escaped backslash and escaped quote", `"a\\\""`, `a\"`},
		{"newline and tab", `"x\ny\tz"`, "x\ny\tz"},
		{"nul", `"\0"`, "\x00"},
		{"single quote in double", `"it's"`, "it's"},
		{"escaped single quote", `'\''`, "'"},
		{"unknown escape kept", `"\d"`, `\d`},
		{"empty", `""`, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			toks := scan(t, tc.src)
			require.Len(t, toks, 1)
			assert.Equal(t, token.LiteralString, toks[0].Type)
			assert.Equal(t, tc.want, toks[0].Content)
		})
	}
}

func TestStringFollowedByToken(t *testing.T) {
	t.Parallel()

	toks := scan(t, `"a\\" b`)
	assert.Equal(t, []token.Token{
		tok(1, 1, token.LiteralString, `a\`),
		tok(1, 7, token.Identifier, "b"),
	}, toks)
}

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		kind   diag.Kind
		loc    token.Location
		width  int
		hint   string
		hintAt int
	}{
		{"unterminated string", `"abc`, diag.UnterminatedString, loc(1, 1), 1, "add a `\"` here", 5},
		{"string ends at newline", "x = 'ab\n'", diag.UnterminatedString, loc(1, 5), 1, "add a `'` here", 8},
		{"escaped closing quote", `"ab\"`, diag.UnterminatedString, loc(1, 1), 1, "remove the `\\` here", 4},
		{"unterminated comment", "x /* never", diag.UnterminatedComment, loc(1, 3), 2, "add `*/` to close the comment", 0},
		{"half closed comment", "/*/", diag.UnterminatedComment, loc(1, 1), 2, "add `*/` to close the comment", 0},
		{"unexpected character", "#", diag.UnexpectedCharacter, loc(1, 1), 1, "remove this character", 0},
		{"unexpected later", "a\n  $", diag.UnexpectedCharacter, loc(2, 3), 1, "remove this character", 0},
		{"invalid mark", "x =- 1", diag.InvalidMark, loc(1, 3), 2, "separate the characters with a space", 0},
		{"invalid shift arrow", "->=", diag.InvalidMark, loc(1, 1), 3, "separate the characters with a space", 0},
		{"too many dots", "1.2.3", diag.InvalidNumber, loc(1, 1), 5, "a number may contain at most one `.`", 0},
		{"double separator", "1__0", diag.InvalidNumber, loc(1, 1), 4, "`_` may only appear between two digits", 0},
		{"trailing separator", "1_", diag.InvalidNumber, loc(1, 1), 2, "`_` may only appear between two digits", 0},
		{"separator before dot", "1_.5", diag.InvalidNumber, loc(1, 1), 4, "`_` may only appear between two digits", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d := scanErr(t, tc.src)
			assert.Equal(t, tc.kind, d.Kind)
			assert.Equal(t, tc.loc, d.Location)
			assert.Equal(t, tc.width, d.Width)
			assert.Equal(t, tc.hint, d.Hint)
			assert.Equal(t, tc.hintAt, d.HintColumn)
			assert.True(t, errors.Is(d, tc.kind.Err()))
			assert.Contains(t, d.Rendered, "error["+tc.kind.Code()+"]")
			assert.Contains(t, d.Rendered, tc.loc.String())
		})
	}
}

func TestUnterminatedStringRendered(t *testing.T) {
	t.Parallel()

	d := scanErr(t, `say("hi);`)
	want := "error[E0002]: unterminated string literal\n" +
		" --> <stdin>:1:5\n" +
		"  |\n" +
		"1 | say(\"hi);\n" +
		"  |     ^    - add a `\"` here\n" +
		"  |     |\n" +
		"  |     string starts here\n" +
		"  |\n" +
		"  = help: add a `\"` here\n"
	assert.Equal(t, want, d.Rendered)
}

func TestUnexpectedCharacterMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unexpected character `#`", scanErr(t, "#").Message)
	assert.Equal(t, "unexpected character U+0007", scanErr(t, "\a").Message)
}

func TestRecover(t *testing.T) {
	t.Parallel()

	var sink diag.Collector
	toks, err := New("a # b =- c\n\"open", Config{File: file, Recover: true, Sink: &sink}).Scan()
	require.Error(t, err)
	assert.Equal(t, []token.Token{
		tok(1, 1, token.Identifier, "a"),
		tok(1, 5, token.Identifier, "b"),
		tok(1, 10, token.Identifier, "c"),
	}, toks)

	diags := sink.Diagnostics()
	require.Len(t, diags, 3)
	assert.Equal(t, diag.UnexpectedCharacter, diags[0].Kind)
	assert.Equal(t, diag.InvalidMark, diags[1].Kind)
	assert.Equal(t, diag.UnterminatedString, diags[2].Kind)
	assert.True(t, errors.Is(err, diag.ErrUnexpectedCharacter))
	assert.True(t, errors.Is(err, diag.ErrInvalidMark))
	assert.True(t, errors.Is(err, diag.ErrUnterminatedString))
}

func TestRecoverWithoutDiagnostics(t *testing.T) {
	t.Parallel()

	toks, err := New("a b", Config{File: file, Recover: true}).Scan()
	require.NoError(t, err)
	assert.Len(t, toks, 2)
}

func TestFailFastRecordsToSink(t *testing.T) {
	t.Parallel()

	var sink diag.Collector
	_, err := New("# #", Config{File: file, Sink: &sink}).Scan()
	require.Error(t, err)
	assert.Equal(t, 1, sink.Len())
}

func TestIdempotent(t *testing.T) {
	t.Parallel()

	src := "function add(a, b) {\n  return a + b; // sum\n}\n/* done */"
	first := scan(t, src)
	second := scan(t, src)
	assert.Equal(t, first, second)
	assert.Len(t, first, 16)
}

func TestTraceLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := New("x #", Config{File: file, Logger: logger, Recover: true}).Scan()
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=token")
	assert.Contains(t, out, "category=identifier")
	assert.Contains(t, out, "msg=diagnostic")
	assert.Contains(t, out, "code=E0003")
}

func TestEveryWordSpellingLexesAlone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word    string
		typ     token.Type
		content string
	}{
		{"str", token.TypeString, "string"},
		{"string", token.TypeString, "string"},
		{"int", token.TypeInteger, "integer"},
		{"integer", token.TypeInteger, "integer"},
		{"bool", token.TypeBoolean, "boolean"},
		{"boolean", token.TypeBoolean, "boolean"},
		{"true", token.LiteralBoolean, "true"},
		{"false", token.LiteralBoolean, "false"},
		{"none", token.LiteralNone, "none"},
		{"None", token.LiteralNone, "none"},
	}
	for _, tc := range tests {
		toks := scan(t, tc.word)
		require.Len(t, toks, 1, tc.word)
		assert.Equal(t, tok(1, 1, tc.typ, tc.content), toks[0])
	}
}
