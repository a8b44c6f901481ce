package ilex

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/I-Language-Development/ilex/token"
)

// tokenRecord is the persisted form of a token. Kind is empty for types
// without a sub-kind (identifiers and comments).
type tokenRecord struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Kind     string `json:"kind,omitempty"`
}

func toRecords(tokens []Token) []tokenRecord {
	recs := make([]tokenRecord, len(tokens))
	for i, t := range tokens {
		recs[i] = tokenRecord{
			File:     t.Location.File,
			Line:     t.Location.Line,
			Column:   t.Location.Column,
			Content:  t.Content,
			Category: t.Type.Category().String(),
		}
		if _, simple := t.Type.(token.Simple); !simple {
			recs[i].Kind = t.Type.String()
		}
	}
	return recs
}

func fromRecords(recs []tokenRecord) ([]Token, error) {
	tokens := make([]Token, len(recs))
	for i, r := range recs {
		typ, err := token.ParseType(r.Category, r.Kind)
		if err != nil {
			return nil, errors.Join(ErrDecode, fmt.Errorf("token %d: %w", i, err))
		}
		tokens[i] = Token{
			Location: Location{File: r.File, Line: r.Line, Column: r.Column},
			Content:  r.Content,
			Type:     typ,
		}
	}
	return tokens, nil
}

// MarshalTokens encodes tokens as a compact JSON array.
func MarshalTokens(tokens []Token) ([]byte, error) {
	return json.Marshal(toRecords(tokens), json.Deterministic(true))
}

// EncodeJSON writes tokens to w as an indented JSON array.
func EncodeJSON(w io.Writer, tokens []Token) error {
	return json.MarshalWrite(w, toRecords(tokens), json.Deterministic(true), jsontext.WithIndent("  "))
}

// UnmarshalTokens decodes a JSON array produced by [MarshalTokens] or
// [EncodeJSON]. Returns [ErrDecode] on failure.
func UnmarshalTokens(data []byte) ([]Token, error) {
	var recs []tokenRecord
	if err := json.Unmarshal(data, &recs, json.DefaultOptionsV2()); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return fromRecords(recs)
}

// DecodeJSON reads a JSON token array from r. Returns [ErrDecode] on
// failure.
func DecodeJSON(r io.Reader) ([]Token, error) {
	var recs []tokenRecord
	if err := json.UnmarshalRead(r, &recs, json.DefaultOptionsV2()); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return fromRecords(recs)
}
