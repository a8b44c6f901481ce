package ilex

import (
	"fmt"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"

	"github.com/I-Language-Development/ilex/diag"
	"github.com/I-Language-Development/ilex/internal/scanner"
	"github.com/I-Language-Development/ilex/token"
)

// Option configures a [Lexer].
type Option func(*lexerOptions)

// lexerOptions holds configuration for a [Lexer].
type lexerOptions struct {
	recover     bool
	sink        diag.Sink
	logger      *slog.Logger
	defaultFile string
}

// WithRecovery selects the error policy. By default lexing stops at the
// first diagnostic; with recovery on, scanning continues and every
// diagnostic is reported together with the tokens that could be read.
func WithRecovery(on bool) Option {
	return func(o *lexerOptions) {
		o.recover = on
	}
}

// WithSink delivers each diagnostic to sink as soon as it is produced, in
// addition to the returned error.
func WithSink(sink diag.Sink) Option {
	return func(o *lexerOptions) {
		o.sink = sink
	}
}

// WithLogger sends debug trace records for every token and diagnostic to
// logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *lexerOptions) {
		o.logger = logger
	}
}

// WithLogHandlers is like [WithLogger] but fans records out to every handler.
func WithLogHandlers(handlers ...slog.Handler) Option {
	return func(o *lexerOptions) {
		o.logger = slog.New(slogmulti.Fanout(handlers...))
	}
}

// WithDefaultFile sets the file identifier used when Lex is called with an
// empty one. The default is [token.DefaultFile].
func WithDefaultFile(name string) Option {
	return func(o *lexerOptions) {
		o.defaultFile = name
	}
}

// Lexer lexes source text with a fixed configuration. A Lexer holds no
// per-call state and is safe for concurrent use as long as its sink is.
type Lexer struct {
	opts lexerOptions
}

// NewLexer creates a new [Lexer] configured by opts.
func NewLexer(opts ...Option) *Lexer {
	l := &Lexer{
		opts: lexerOptions{
			defaultFile: token.DefaultFile,
		},
	}
	for _, o := range opts {
		o(&l.opts)
	}
	return l
}

// Lex turns src into tokens, recording file in every location. Returns an
// error wrapping [ErrLex] and the diagnostics on failure. In recovery mode
// the tokens read so far are returned alongside the error.
func (l *Lexer) Lex(src, file string) ([]Token, error) {
	if file == "" {
		file = l.opts.defaultFile
	}
	s := scanner.New(src, scanner.Config{
		File:    file,
		Recover: l.opts.recover,
		Sink:    l.opts.sink,
		Logger:  l.opts.logger,
	})
	tokens, err := s.Scan()
	if err != nil {
		return tokens, fmt.Errorf("%w: %w", ErrLex, err)
	}
	return tokens, nil
}

// MustLex is like Lex but panics on failure.
func (l *Lexer) MustLex(src, file string) []Token {
	tokens, err := l.Lex(src, file)
	if err != nil {
		panic(err)
	}
	return tokens
}
