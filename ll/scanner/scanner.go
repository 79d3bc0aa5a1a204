/*
Package scanner defines the interface for token sources to be used with the
parsers of package ll.

Parsers pull tokens one at a time, and only when they need the next lookahead.
A token source signals the end of input with a token of type EOF.

Three implementations are provided: (1) a tokenizer for Go-like input, built on
'text/scanner', (2) a tokenizer over a slice of pre-lexed tokens, and (3) an
adapter for lexmachine, living in sub-package `lexmach`.

Token types and grammars

Token categories of text/scanner (identifiers, numbers, strings, …) have negative
token types, single characters have their code point as their token type.
Grammars bind terminals to token types. Terminals for keywords and operators
('if', ':=', …) are literals: they match exactly one lexeme. A Vocabulary tells a
tokenizer about the literals of a language; *ll.Grammar is a Vocabulary.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"strconv"
	"text/scanner"

	"github.com/npillmayer/gorll"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gorll.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gorll.scanner")
}

// Token categories, identical to the ones of text/scanner.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() gorll.Token
	SetErrorHandler(func(error))
}

// Vocabulary knows the literal lexemes of a language and their token types.
type Vocabulary interface {
	Literal(lexeme string) (gorll.TokType, bool)
}

// Literals is a Vocabulary given as a map from lexemes to token types.
type Literals map[string]gorll.TokType

// Literal is part of the Vocabulary interface.
func (l Literals) Literal(lexeme string) (gorll.TokType, bool) {
	typ, ok := l[lexeme]
	return typ, ok
}

// DefaultTokenizer tokenizes Go-like input. Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	Error func(error) // error handler
	voc   Vocabulary
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// GoTokenizer creates a tokenizer accepting tokens similar to the Go language.
// Comments are skipped.
//
// Identifiers and operators found in voc get the token type voc assigns to them.
// Operators of two characters (e.g., ':=') are recognized if voc contains them.
// Without a vocabulary (voc == nil), identifiers are of type Ident and every
// operator character is a token of its own.
//
// Tokens for numbers, characters and strings carry their value (int64, float64,
// rune or string).
func GoTokenizer(sourceID string, input io.Reader, voc Vocabulary) *DefaultTokenizer {
	t := &DefaultTokenizer{Error: logError, voc: voc}
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() gorll.Token {
	cat := t.Scan()
	token := DefaultToken{
		kind:   gorll.TokType(cat),
		lexeme: t.TokenText(),
		span:   gorll.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
	switch {
	case cat == scanner.EOF:
		tracer().Debugf("GoTokenizer reached end of input")
	case cat == scanner.Ident || cat >= 0:
		t.literal(&token, cat >= 0)
	default:
		token.Val = t.value(cat, token.lexeme)
	}
	return token
}

// literal retypes token if it is a literal of the vocabulary. Operators are
// extended by the next character if the pair is a literal.
func (t *DefaultTokenizer) literal(token *DefaultToken, operator bool) {
	if t.voc == nil {
		return
	}
	if operator {
		if next := t.Peek(); next != scanner.EOF {
			pair := token.lexeme + string(next)
			if typ, ok := t.voc.Literal(pair); ok {
				t.Next()
				token.kind, token.lexeme = typ, pair
				token.span[1] = uint64(t.Pos().Offset)
				return
			}
		}
	}
	if typ, ok := t.voc.Literal(token.lexeme); ok {
		token.kind = typ
	}
}

// value converts the lexeme of a number, char or string token.
func (t *DefaultTokenizer) value(cat rune, lexeme string) interface{} {
	v, err := Value(gorll.TokType(cat), lexeme)
	if err != nil {
		t.Error(fmt.Errorf("%s: %w", t.Position, err))
		return nil
	}
	return v
}

// Value converts the lexeme of a token of category cat to a Go value: Int to
// int64, Float to float64, Char to rune, String and RawString to string.
// Lexemes of other categories have no value.
func Value(cat gorll.TokType, lexeme string) (interface{}, error) {
	var v interface{}
	var err error
	switch cat {
	case Int:
		v, err = strconv.ParseInt(lexeme, 0, 64)
	case Float:
		v, err = strconv.ParseFloat(lexeme, 64)
	case String, RawString:
		v, err = strconv.Unquote(lexeme)
	case Char:
		var s string
		if s, err = strconv.Unquote(lexeme); err == nil {
			v = []rune(s)[0]
		}
	default:
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot convert %s: %w", lexeme, err)
	}
	return v, nil
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the Go
// tokenizer as well as the LexMachine scanner.
type DefaultToken struct {
	kind   gorll.TokType
	lexeme string
	Val    interface{}
	span   gorll.Span
}

// MakeDefaultToken creates a token from its parts.
func MakeDefaultToken(typ gorll.TokType, lexeme string, span gorll.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

// TokType is part of the gorll.Token interface.
func (t DefaultToken) TokType() gorll.TokType {
	return t.kind
}

// Value is part of the gorll.Token interface.
func (t DefaultToken) Value() interface{} {
	return t.Val
}

// Lexeme is part of the gorll.Token interface.
func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span is part of the gorll.Token interface.
func (t DefaultToken) Span() gorll.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%q|%d@%d", t.lexeme, t.kind, t.span.From())
}
