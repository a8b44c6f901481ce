// Package diag describes lexical errors and renders them as source snippets
// with a caret under the offending text and a remediation hint.
//
// A [*Diagnostic] is an error. It unwraps to the sentinel of its [Kind], so
// callers can test for a kind with errors.Is:
//
//	if errors.Is(err, diag.ErrUnterminatedString) { ... }
package diag

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/I-Language-Development/ilex/token"
)

// Kind classifies a diagnostic.
type Kind uint8

const (
	InvalidMark         Kind = iota + 1 // operator-looking run with no table entry
	UnterminatedString                  // quote never closed on its line
	UnexpectedCharacter                 // character outside every lexical class
	UnterminatedComment                 // /* never closed
	InvalidNumber                       // too many dots or misplaced digit separator
)

var kindNames = [...]string{
	InvalidMark:         "invalid mark",
	UnterminatedString:  "unterminated string",
	UnexpectedCharacter: "unexpected character",
	UnterminatedComment: "unterminated comment",
	InvalidNumber:       "invalid number",
}

// String returns the human-readable name of k.
func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Code returns the stable identifier of k, e.g. "E0002".
func (k Kind) Code() string {
	return fmt.Sprintf("E%04d", int(k))
}

// Sentinel errors, one per [Kind].
var (
	ErrInvalidMark         = errors.New("invalid mark")
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedComment = errors.New("unterminated comment")
	ErrInvalidNumber       = errors.New("invalid number")
)

var kindErrors = [...]error{
	InvalidMark:         ErrInvalidMark,
	UnterminatedString:  ErrUnterminatedString,
	UnexpectedCharacter: ErrUnexpectedCharacter,
	UnterminatedComment: ErrUnterminatedComment,
	InvalidNumber:       ErrInvalidNumber,
}

// Err returns the sentinel error of k, or nil for an unknown kind.
func (k Kind) Err() error {
	if k > 0 && int(k) < len(kindErrors) {
		return kindErrors[k]
	}
	return nil
}

// Diagnostic is a single lexical error.
type Diagnostic struct {
	Kind     Kind
	Location token.Location
	// Width is the number of columns underlined at Location; at least 1.
	Width int
	// Message is the one-line description, e.g. "unterminated string literal".
	Message string
	// Label annotates the underlined span.
	Label string
	// Hint is the remediation, e.g. "add a `\"` here".
	Hint string
	// HintColumn, when positive, is the column the hint points at on the
	// same line as Location.
	HintColumn int
	// Rendered is the full source-pointer message; see [Render].
	Rendered string
}

// Error returns the short form "file:line:col: message".
func (d *Diagnostic) Error() string {
	return d.Location.String() + ": " + d.Message
}

// Unwrap returns the sentinel error of the diagnostic's kind.
func (d *Diagnostic) Unwrap() error { return d.Kind.Err() }

// Sink receives diagnostics as they are produced. The scanner never keeps
// diagnostics in package state; callers that want them pass a Sink.
type Sink interface {
	Record(d *Diagnostic)
}

// SinkFunc adapts a function to a [Sink].
type SinkFunc func(d *Diagnostic)

// Record calls f(d).
func (f SinkFunc) Record(d *Diagnostic) { f(d) }

// Collector is a [Sink] that keeps every diagnostic in order. It is safe for
// concurrent use, so one Collector can serve several lexing goroutines.
type Collector struct {
	mu    sync.Mutex
	diags []*Diagnostic
}

// Record appends d.
func (c *Collector) Record(d *Diagnostic) {
	c.mu.Lock()
	c.diags = append(c.diags, d)
	c.mu.Unlock()
}

// Diagnostics returns a copy of the recorded diagnostics.
func (c *Collector) Diagnostics() []*Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*Diagnostic(nil), c.diags...)
}

// Len returns the number of recorded diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diags)
}

// Err joins the recorded diagnostics into one error, or returns nil.
func (c *Collector) Err() error {
	diags := c.Diagnostics()
	if len(diags) == 0 {
		return nil
	}
	errs := make([]error, len(diags))
	for i, d := range diags {
		errs[i] = d
	}
	return errors.Join(errs...)
}

// LogSink returns a [Sink] that writes each diagnostic to logger at error
// level.
func LogSink(logger *slog.Logger) Sink {
	return SinkFunc(func(d *Diagnostic) {
		logger.Error(d.Message,
			"code", d.Kind.Code(),
			"kind", d.Kind.String(),
			"location", d.Location.String(),
		)
	})
}
