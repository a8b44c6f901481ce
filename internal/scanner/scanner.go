// Package scanner implements the ilex scanning engine: a single left-to-right
// pass that dispatches on the class of each character to the mark, comment,
// string, number and word scanners.
package scanner

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/I-Language-Development/ilex/diag"
	"github.com/I-Language-Development/ilex/internal/cursor"
	"github.com/I-Language-Development/ilex/token"
)

// Config controls a single scan.
type Config struct {
	// File is recorded in every token location.
	File string
	// Recover keeps scanning after a diagnostic instead of stopping at the
	// first one.
	Recover bool
	// Sink, if set, receives every diagnostic as it is produced.
	Sink diag.Sink
	// Logger receives debug trace records. Nil disables tracing.
	Logger *slog.Logger
}

// Scanner turns source text into tokens. A Scanner is single use.
type Scanner struct {
	cfg    Config
	log    *slog.Logger
	cur    *cursor.Cursor
	lines  []string
	tokens []token.Token
	diags  []error
}

// New creates a Scanner for src.
func New(src string, cfg Config) *Scanner {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Scanner{
		cfg:   cfg,
		log:   log,
		cur:   cursor.New(src),
		lines: strings.Split(src, "\n"),
	}
}

// Scan runs the scanner to the end of input.
//
// Without Recover, the first diagnostic stops the scan and is returned as a
// [*diag.Diagnostic] with no tokens. With Recover, all tokens found are
// returned together with the joined diagnostics, if any.
func (s *Scanner) Scan() ([]token.Token, error) {
	for !s.cur.Done() {
		r := s.cur.Peek()
		if unicode.IsSpace(r) {
			s.cur.Next()
			continue
		}

		loc := s.location()
		var d *diag.Diagnostic
		switch {
		case r == '"' || r == '\'':
			d = s.scanString(loc)
		case token.IsMarkStart(r):
			d = s.scanMark(loc)
		case isDigit(r):
			d = s.scanNumber(loc)
		case isWordStart(r):
			s.scanWord(loc)
		default:
			s.cur.Next()
			d = s.newDiagnostic(diag.UnexpectedCharacter, loc, 1,
				"unexpected character "+quoteRune(r),
				"", "remove this character", 0)
		}

		if d != nil {
			s.report(d)
			if !s.cfg.Recover {
				return nil, d
			}
		}
	}

	if len(s.diags) > 0 {
		return s.tokens, errors.Join(s.diags...)
	}
	return s.tokens, nil
}

// location returns the location of the next unconsumed rune.
func (s *Scanner) location() token.Location {
	return token.Location{File: s.cfg.File, Line: s.cur.Line(), Column: s.cur.Column()}
}

func (s *Scanner) emit(loc token.Location, typ token.Type, content string) {
	s.log.Debug("token",
		slog.String("category", typ.Category().String()),
		slog.String("kind", typ.String()),
		slog.String("content", content),
		slog.String("location", loc.String()),
	)
	s.tokens = append(s.tokens, token.Token{Location: loc, Content: content, Type: typ})
}

func (s *Scanner) report(d *diag.Diagnostic) {
	s.log.Debug("diagnostic",
		slog.String("code", d.Kind.Code()),
		slog.String("location", d.Location.String()),
		slog.String("message", d.Message),
	)
	s.diags = append(s.diags, d)
	if s.cfg.Sink != nil {
		s.cfg.Sink.Record(d)
	}
}

// newDiagnostic builds a diagnostic and renders it against the source line it
// points into.
func (s *Scanner) newDiagnostic(kind diag.Kind, loc token.Location, width int, msg, label, hint string, hintColumn int) *diag.Diagnostic {
	d := &diag.Diagnostic{
		Kind:       kind,
		Location:   loc,
		Width:      width,
		Message:    msg,
		Label:      label,
		Hint:       hint,
		HintColumn: hintColumn,
	}
	d.Rendered = diag.Render(d, s.sourceLine(loc.Line))
	return d
}

func (s *Scanner) sourceLine(line int) string {
	if line < 1 || line > len(s.lines) {
		return ""
	}
	return s.lines[line-1]
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWordStart reports whether r can begin an identifier or keyword.
func isWordStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func quoteRune(r rune) string {
	if unicode.IsPrint(r) {
		return "`" + string(r) + "`"
	}
	return fmt.Sprintf("%U", r)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// columnAfter returns the column just past a run that starts at column col.
func columnAfter(col int, run string) int {
	return col + runeLen(run)
}
